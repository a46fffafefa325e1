package constvars

const (
	ResourcePatient           = "Patient"
	ResourcePractitioner      = "Practitioner"
	ResourceCoverage          = "Coverage"
	ResourceTask              = "Task"
	ResourceMedication        = "Medication"
	ResourceDocumentReference = "DocumentReference"
	ResourceChargeItem        = "ChargeItem"
	ResourceCodeSystem        = "CodeSystem"
	ResourceAuditEvent        = "AuditEvent"
	ResourceBundle            = "Bundle"
	ResourceOperationOutcome  = "OperationOutcome"
)

const (
	FhirFieldResourceType = "resourceType"
	FhirFieldID           = "id"
	FhirFieldMeta         = "meta"
	FhirFieldExtension    = "extension"
	FhirFieldStatus       = "status"
)

const (
	FhirTaskStatusRequested  = "requested"
	FhirTaskStatusInProgress = "in-progress"
	FhirTaskStatusCompleted  = "completed"
	FhirTaskStatusCancelled  = "cancelled"
)

const (
	FhirCoverageStatusActive    = "active"
	FhirCoverageStatusCancelled = "cancelled"
	FhirCoverageStatusDraft     = "draft"
)

const (
	FhirDocumentStatusCurrent    = "current"
	FhirDocumentStatusSuperseded = "superseded"
)

const (
	FhirChargeItemStatusBillable = "billable"
	FhirChargeItemStatusPlanned  = "planned"
	FhirChargeItemStatusAborted  = "aborted"
)

const (
	FhirCodeSystemStatusActive = "active"
	FhirCodeSystemStatusDraft  = "draft"
)

const FhirMedicationStatusActive = "active"

// Extension URL tokens. Lookup is by case-sensitive substring match against
// extension.url, first match in array order wins. Kept as a substring
// convention for wire compatibility with data already in the store.
const (
	ExtTokenPercentage = "percentage"
	ExtTokenCopay      = "copay"
	ExtTokenDeductible = "deductible"
	ExtTokenUnitPrice  = "unit-price"
	ExtTokenCategory   = "category"
)

const (
	ViewModelUnknownDisplay = "Unknown"
	ViewModelCopySuffix     = " (Copy)"
)
