package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldChannel         = "channel"
	FieldChatID          = "chat-id"
	FieldContainerID     = "container-id"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldItemID          = "item-id"
	FieldOutcome         = "outcome"
	FieldReason          = "reason"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldRequestedBy     = "requested-by"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldStack           = "stack"
	FieldTaskType        = "task-type"
	FieldTemplateID      = "template-id"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
)
