package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingSessionDataKey    = "session_data"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseKey       = "response"
	LoggingRequestKey        = "request"
	LoggingResponseLengthKey = "response_length"
	LoggingErrorKey          = "error"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
)

const (
	LoggingUserIDKey            = "user_id"
	LoggingUserRoleKey          = "user_role"
	LoggingEmailKey             = "email"
	LoggingAppointmentIDKey     = "appointment_id"
	LoggingChildIDKey           = "child_id"
	LoggingArticleIDKey         = "article_id"
	LoggingNotificationKey      = "notification_id"
	LoggingStatusKey            = "appointment_status"
	LoggingEventNameKey         = "event_name"
	LoggingRecipientKey         = "recipient"
	LoggingRedisKey             = "redis_key"
	LoggingLockValueKey         = "lock_value"
	LoggingLockExpirationKey    = "lock_expiration"
	LoggingLockStoredValueKey   = "stored_value"
	LoggingLockExpectedValueKey = "expected_value"
	LoggingBucketNameKey        = "bucket_name"
	LoggingObjectNameKey        = "object_name"
	LoggingExchangeKey          = "exchange"
	LoggingQueueKey             = "queue"
	LoggingClientIDKey          = "client_id"
)
