package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY  = contextKey("requestID")
	CONTEXT_CLAIM_EMAIL_KEY = contextKey("claimEmail")
)

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingQueryKey      = "query"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
)
