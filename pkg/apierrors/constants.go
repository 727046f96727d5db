package apierrors

const (
	MsgValidationError     = "validationError"
	MsgResourceNotFound    = "resourceNotFound"
	MsgResourceConflict    = "resourceConflict"
	MsgInternalServerError = "internalServerError"
)
