package constant

const (
	ERR_VALIDATION_CODE                 = "VALIDATION_ERROR"
	ERR_INVALID_REQUEST_BODY_ERROR_CODE = "INVALID_REQUEST_BODY_ERROR"
	ERR_INTERNAL_SERVER_ERROR_CODE      = "INTERNAL_SERVER_ERROR"
	ERR_INTENRAL_SERVER_ERROR_MESSAGE   = "Something went wrong. If the problem persists, please contact support"
	ERR_INVALID_REQUEST_BODY_MESSAGE    = "The request is invalid or malformed"
	ERR_NOT_FOUND_ERROR                 = "NOT_FOUND_ERROR"
	ERR_UNATHORIZED_ERROR               = "UNAUTHORIEZED_ERROR"
	ERR_UPLOAD_ERROR_CODE               = "UPLOAD_ERROR"
	ERR_PERSISTENCE_ERROR_CODE          = "PERSISTENCE_ERROR"
)

const MAX_FILE_SIZE = 4 * 1024 * 1024

// Defaults applied at registration so downstream consumers never see
// partial member records.
const (
	DEFAULT_QUALIFICATION = "Not specified"
	DEFAULT_BLOOD_GROUP   = "Unknown"
)
