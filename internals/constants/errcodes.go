package constants

// Machine-readable error codes carried in the response envelope.
const (
	CodeValidationError           = "VALIDATION_ERROR"
	CodeInvalidOtp                = "INVALID_OTP"
	CodeUnauthorized              = "UNAUTHORIZED"
	CodeInvalidToken              = "INVALID_TOKEN"
	CodeExpired                   = "EXPIRED"
	CodeForbidden                 = "FORBIDDEN"
	CodeNotFound                  = "NOT_FOUND"
	CodeConflict                  = "CONFLICT"
	CodePaymentVerificationFailed = "PAYMENT_VERIFICATION_FAILED"
	CodePaymentGatewayError       = "PAYMENT_GATEWAY_ERROR"
	CodeMissingRequiredFields     = "MISSING_REQUIRED_FIELDS"
	CodeInternalError             = "INTERNAL_ERROR"
)
