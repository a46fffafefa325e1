package constvars

// Logical dataset keys as the page layer addresses them. Each maps to one
// FHIR resource type; the mode selector decides live vs fixture per key.
const (
	DatasetProviders   = "providers"
	DatasetCoverage    = "coverage"
	DatasetTasks       = "tasks"
	DatasetMedications = "medications"
	DatasetDocuments   = "documents"
	DatasetChargeItems = "charge-items"
	DatasetCodeSystems = "code-systems"
	DatasetAuditEvents = "audit-events"
)

const (
	DataSourceModeLive    = "live"
	DataSourceModeFixture = "fixture"
)

const MongoCollectionMutationAudit = "mutation_audit"

// DatasetResourceTypes maps dataset keys to their FHIR resource types.
var DatasetResourceTypes = map[string]string{
	DatasetProviders:   ResourcePractitioner,
	DatasetCoverage:    ResourceCoverage,
	DatasetTasks:       ResourceTask,
	DatasetMedications: ResourceMedication,
	DatasetDocuments:   ResourceDocumentReference,
	DatasetChargeItems: ResourceChargeItem,
	DatasetCodeSystems: ResourceCodeSystem,
	DatasetAuditEvents: ResourceAuditEvent,
}
