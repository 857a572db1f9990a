package log

// Common field names for structured logging
const (
	FieldComponent     = "component"
	FieldRequestID     = "request_id"
	FieldMethod        = "method"
	FieldPath          = "path"
	FieldStatusCode    = "status_code"
	FieldDuration      = "duration_ms"
	FieldError         = "error"
	FieldErrorKind     = "error_kind"
	FieldOperation     = "operation"
	FieldCurrency      = "currency"
	FieldMonth         = "month"
	FieldTransactionID = "transaction_id"
	FieldMessageID     = "message_id"
	FieldAmountCents   = "amount_cents"
	FieldMember        = "member"
	FieldCategory      = "category"
	FieldCount         = "count"
	FieldImagePath     = "image_path"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentAPI       = "api"
	ComponentDashboard = "dashboard"
	ComponentSnapshot  = "snapshot"
	ComponentScheduler = "scheduler"
	ComponentStorage   = "storage"
	ComponentAMQP      = "amqp"
	ComponentWorker    = "worker"
	ComponentOCR       = "ocr"
)

// Operations defines standard operation names
const (
	OpCreate   = "create"
	OpList     = "list"
	OpReset    = "reset"
	OpFetch    = "fetch"
	OpIngest   = "ingest"
	OpResolve  = "resolve"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
