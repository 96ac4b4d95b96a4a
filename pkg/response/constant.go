package response

const (
	stackTraceDepth         = 32
	discordMaxMessageLen    = 4000
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	ValidationErrorCode     = 400
	ValidationErrorMsg      = "Validation error"
	InternalServerErrorCode = 500
)
