package errors

// ErrorCode identifies an application error in API responses
type ErrorCode int32

const (
	ErrorCode_UNSPECIFIED ErrorCode = 0
	ErrorCode_HTTP_OK     ErrorCode = 200

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001

	// Events
	ErrorCode_EVENT_NOT_FOUND            ErrorCode = 2000
	ErrorCode_EVENT_INVALID_CONFIG       ErrorCode = 2001
	ErrorCode_EVENT_AUTO_ASSIGNMENT_OFF  ErrorCode = 2002
	ErrorCode_EVENT_NO_ELIGIBLE_SNAPSHOT ErrorCode = 2003

	// Assignments
	ErrorCode_ASSIGNMENT_IN_PROGRESS        ErrorCode = 3000
	ErrorCode_ASSIGNMENT_NOT_FOUND          ErrorCode = 3001
	ErrorCode_ASSIGNMENT_STATISTICS_MISSING ErrorCode = 3002
	ErrorCode_ASSIGNMENT_EXPORT_FAILED      ErrorCode = 3003

	// Integrations
	ErrorCode_INTEGRATION_CACHE_FAILED ErrorCode = 4000
	ErrorCode_DB_QUERY_FAILED          ErrorCode = 4100
	ErrorCode_DB_TRANSACTION_FAILED    ErrorCode = 4101
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNSPECIFIED:                   "UNSPECIFIED",
	ErrorCode_HTTP_OK:                       "OK",
	ErrorCode_INTERNAL:                      "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:              "INVALID_ARGUMENT",
	ErrorCode_EVENT_NOT_FOUND:               "EVENT_NOT_FOUND",
	ErrorCode_EVENT_INVALID_CONFIG:          "EVENT_INVALID_CONFIG",
	ErrorCode_EVENT_AUTO_ASSIGNMENT_OFF:     "EVENT_AUTO_ASSIGNMENT_OFF",
	ErrorCode_EVENT_NO_ELIGIBLE_SNAPSHOT:    "EVENT_NO_ELIGIBLE_SNAPSHOT",
	ErrorCode_ASSIGNMENT_IN_PROGRESS:        "ASSIGNMENT_IN_PROGRESS",
	ErrorCode_ASSIGNMENT_NOT_FOUND:          "ASSIGNMENT_NOT_FOUND",
	ErrorCode_ASSIGNMENT_STATISTICS_MISSING: "ASSIGNMENT_STATISTICS_MISSING",
	ErrorCode_ASSIGNMENT_EXPORT_FAILED:      "ASSIGNMENT_EXPORT_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:      "INTEGRATION_CACHE_FAILED",
	ErrorCode_DB_QUERY_FAILED:               "DB_QUERY_FAILED",
	ErrorCode_DB_TRANSACTION_FAILED:         "DB_TRANSACTION_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
