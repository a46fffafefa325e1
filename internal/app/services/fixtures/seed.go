package fixtures

// seedResources holds the starting inventory of a fixture-mode store. Each
// entry is stored verbatim, so unknown fields in the seeds survive the same
// round-trip guarantees the live store gets.
var seedResources = []string{
	`{
		"resourceType": "Practitioner",
		"id": "fixture-practitioner-1",
		"active": true,
		"name": [{"text": "Dr. Amelia Hart", "family": "Hart", "given": ["Amelia"], "prefix": ["Dr."]}],
		"gender": "female",
		"telecom": [
			{"system": "email", "value": "amelia.hart@example.org"},
			{"system": "phone", "value": "+1-555-0101"}
		],
		"qualification": [{"code": {"text": "Psychiatry"}}]
	}`,
	`{
		"resourceType": "Practitioner",
		"id": "fixture-practitioner-2",
		"active": false,
		"name": [{"family": "Okafor", "given": ["Chidi"]}],
		"gender": "male",
		"telecom": [{"system": "email", "value": "c.okafor@example.org"}],
		"qualification": [{"code": {"coding": [{"display": "Clinical Psychology"}]}}]
	}`,
	`{
		"resourceType": "Coverage",
		"id": "fixture-coverage-1",
		"status": "active",
		"type": {"text": "Employer Group Plan"},
		"subscriberId": "SUB-1001",
		"beneficiary": {"display": "Rosa Delgado"},
		"payor": [{"display": "Northwind Health"}],
		"period": {"start": "2026-01-01", "end": "2026-12-31"},
		"extension": [
			{"url": "http://example.org/fhir/StructureDefinition/coverage-copay", "valueDecimal": 25},
			{"url": "http://example.org/fhir/StructureDefinition/coverage-deductible", "valueDecimal": 500}
		]
	}`,
	`{
		"resourceType": "Task",
		"id": "fixture-task-1",
		"status": "requested",
		"priority": "urgent",
		"description": "Review intake questionnaire",
		"for": {"display": "Rosa Delgado"},
		"owner": {"display": "Dr. Amelia Hart"},
		"authoredOn": "2026-08-20T09:30:00Z",
		"lastModified": "2026-08-21T14:05:00Z"
	}`,
	`{
		"resourceType": "Task",
		"id": "fixture-task-2",
		"status": "completed",
		"priority": "routine",
		"description": "Send follow-up survey",
		"for": {"display": "Chen Wei"},
		"owner": {"display": "Dr. Amelia Hart"},
		"authoredOn": "2026-08-10T11:00:00Z",
		"lastModified": "2026-08-12T08:45:00Z"
	}`,
	`{
		"resourceType": "Medication",
		"id": "fixture-medication-1",
		"status": "active",
		"code": {"text": "Sertraline 50mg"},
		"manufacturer": {"display": "Acme Pharma"},
		"form": {"text": "Tablet"},
		"extension": [
			{"url": "http://example.org/fhir/StructureDefinition/medication-unit-price", "valueDecimal": 12.5}
		]
	}`,
	`{
		"resourceType": "DocumentReference",
		"id": "fixture-document-1",
		"status": "current",
		"type": {"text": "Intake Form"},
		"subject": {"display": "Rosa Delgado"},
		"date": "2026-08-18T10:00:00Z",
		"description": "Signed intake form",
		"content": [{
			"attachment": {
				"contentType": "application/pdf",
				"url": "documents/fixture-document-1.pdf",
				"title": "intake-form.pdf",
				"size": 48211
			}
		}]
	}`,
	`{
		"resourceType": "ChargeItem",
		"id": "fixture-charge-item-1",
		"status": "billable",
		"code": {"text": "Therapy Session 60min"},
		"subject": {"display": "Rosa Delgado"},
		"quantity": {"value": 1},
		"occurrenceDateTime": "2026-08-19T15:00:00Z",
		"priceOverride": {"value": 120, "currency": "USD"},
		"extension": [
			{"url": "http://example.org/fhir/StructureDefinition/charge-item-percentage", "valueDecimal": 10},
			{"url": "http://example.org/fhir/StructureDefinition/charge-item-category", "valueCode": "session"}
		]
	}`,
	`{
		"resourceType": "CodeSystem",
		"id": "fixture-code-system-1",
		"status": "active",
		"name": "SessionTypes",
		"title": "Session Types",
		"url": "http://example.org/fhir/CodeSystem/session-types",
		"version": "1.2.0",
		"content": "complete",
		"count": 4,
		"description": "Billable session categories used by the console.",
		"concept": [
			{"code": "initial", "display": "Initial Consultation"},
			{"code": "followup", "display": "Follow-up"},
			{"code": "group", "display": "Group Session"},
			{"code": "crisis", "display": "Crisis Intervention"}
		]
	}`,
	`{
		"resourceType": "AuditEvent",
		"id": "fixture-audit-event-1",
		"action": "U",
		"outcome": "0",
		"recorded": "2026-08-21T14:05:12Z",
		"type": {"display": "Restful Operation"},
		"subtype": [{"display": "update"}],
		"agent": [{"who": {"display": "admin@example.org"}, "requestor": true}],
		"source": {"site": "admin-console", "observer": {"display": "caregate"}}
	}`,
}
