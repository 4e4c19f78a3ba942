package errors

// ErrorCode is the machine readable classification carried by AppError
type ErrorCode int32

const (
	ErrorCode_UNSPECIFIED ErrorCode = 0
	ErrorCode_HTTP_OK     ErrorCode = 200

	ErrorCode_INTERNAL           ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT   ErrorCode = 1001
	ErrorCode_NOT_FOUND          ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD    ErrorCode = 1003
	ErrorCode_PAYLOAD_TOO_LARGE  ErrorCode = 1004
	ErrorCode_METHOD_NOT_ALLOWED ErrorCode = 1005

	ErrorCode_AI_TRANSCRIPTION_FAILED  ErrorCode = 3000
	ErrorCode_AI_TRANSCRIPTION_TIMEOUT ErrorCode = 3001
	ErrorCode_AI_GENERATION_FAILED     ErrorCode = 3002
	ErrorCode_AI_SERVICE_UNAVAILABLE   ErrorCode = 3003

	ErrorCode_INTEGRATION_CACHE_FAILED ErrorCode = 4000

	ErrorCode_DB_CONNECTION_FAILED ErrorCode = 5000
	ErrorCode_DB_QUERY_FAILED      ErrorCode = 5001
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNSPECIFIED:              "UNSPECIFIED",
	ErrorCode_HTTP_OK:                  "HTTP_OK",
	ErrorCode_INTERNAL:                 "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:         "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:          "INVALID_PAYLOAD",
	ErrorCode_PAYLOAD_TOO_LARGE:        "PAYLOAD_TOO_LARGE",
	ErrorCode_METHOD_NOT_ALLOWED:       "METHOD_NOT_ALLOWED",
	ErrorCode_AI_TRANSCRIPTION_FAILED:  "AI_TRANSCRIPTION_FAILED",
	ErrorCode_AI_TRANSCRIPTION_TIMEOUT: "AI_TRANSCRIPTION_TIMEOUT",
	ErrorCode_AI_GENERATION_FAILED:     "AI_GENERATION_FAILED",
	ErrorCode_AI_SERVICE_UNAVAILABLE:   "AI_SERVICE_UNAVAILABLE",
	ErrorCode_INTEGRATION_CACHE_FAILED: "INTEGRATION_CACHE_FAILED",
	ErrorCode_DB_CONNECTION_FAILED:     "DB_CONNECTION_FAILED",
	ErrorCode_DB_QUERY_FAILED:          "DB_QUERY_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
