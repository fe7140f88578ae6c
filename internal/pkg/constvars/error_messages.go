package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"required_if":      "is required when %s",
	"email":            "must be a valid email",
	"min":              "must be at least %s characters long",
	"max":              "maximum at %s characters long",
	"oneof":            "must be one of [%s]",
	"url":              "must be a valid URL",
	"datetime":         "must follow the %s format",
	"mongodb":          "must be a valid id",
	"appointment_mode": "must be either 'Physical' or 'Online'",
	"user_role":        "must be one of [user, doctor, admin]",
	"date_of_birth":    "must follow the DD/MM/YYYY format",
	"time_of_day":      "must follow the HH:MM format",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":         true,
	"max":         true,
	"oneof":       true,
	"datetime":    true,
	"required_if": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidCredentials            = "Invalid credentials"
	ErrClientUserAlreadyExists             = "User already exists"
	ErrClientUserNotFound                  = "User not found"
	ErrClientDoctorNotFound                = "Doctor not found"
	ErrClientChildNotFound                 = "Child not found"
	ErrClientArticleNotFound               = "Article not found"
	ErrClientNotificationNotFound          = "Notification not found"
	ErrClientAppointmentNotFound           = "Appointment not found"
	ErrClientAppointmentBusy               = "Appointment is being updated, please try again"
	ErrClientInvalidTransition             = "Appointment cannot be %s in its current status"
	ErrClientOnlyDoctorCanDecide           = "Only doctors can %s appointments"
	ErrClientOnlyParentCanModify           = "Only the parent can %s this appointment"
	ErrClientMeetingLinkRequired           = "meeting_link is required for online appointments"
	ErrClientDoctorFieldsRequired          = "specialization, available_from and available_to are required for doctors"
	ErrClientNothingToUpdate               = "At least one field is required to update"
	ErrClientInvalidImageFormat            = "picture must be a jpeg, png or webp image"
	ErrClientImageTooLarge                 = "picture must not exceed 5MB"
	ErrClientTooManyLoginAttempts          = "too many login attempts, please try again later"
	ErrClientTooManyRequests               = "too many requests, please slow down"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotParseMultipartForm   = "cannot parse multipart form"
	ErrDevCannotParseDate            = "cannot parse date"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevURLParamIDValidationFailed = "URL param %s is not a valid id"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevMissingRequestID           = "request id missing from context"
	ErrDevMissingSessionData         = "session data missing from context"
	ErrDevFailedToHashPassword       = "failed to hash password"
	ErrDevInvalidCredentials         = "invalid credentials"
	ErrDevEmailAlreadyExists         = "email already exists"
	ErrDevUserNotExists              = "user does not exist"
	ErrDevDoctorNotExists            = "doctor does not exist"
	ErrDevChildNotExists             = "child does not exist for this parent"
	ErrDevArticleNotExists           = "article does not exist"
	ErrDevNotificationNotExists      = "notification does not exist for this recipient"
	ErrDevAppointmentNotExists       = "appointment does not exist in caller scope"
	ErrDevAppointmentLocked          = "appointment lock held by another request"
	ErrDevInvalidTransition          = "transition %s is not allowed from status %s"
	ErrDevRoleTypeDoesntMatch        = "role %s cannot perform %s"
	ErrDevMeetingLinkRequired        = "online appointment without meeting link"
	ErrDevDoctorFieldsMissing        = "doctor registration without specialization or availability"
	ErrDevNothingToUpdate            = "update request carries no fields"
	ErrDevImageValidationFailed      = "image validation failed"
	ErrDevImageTooLarge              = "image exceeds size limit"
	ErrDevLoginRateLimited           = "login attempts exceeded fixed window quota"
	ErrDevTooManyRequests            = "request rate exceeded per-ip quota"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalid          = "invalid token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthSessionNotFound       = "session not found"

	// Mongo messages
	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBFailedToCreateIndex      = "failed to create index"
	ErrDevDBStringNotObjectID        = "string is not a valid ObjectID"

	// Redis messages
	ErrDevRedisGetNoData     = "failed to get data from redis with key %s"
	ErrDevRedisSetData       = "failed to set data to redis"
	ErrDevRedisDeleteData    = "failed to delete data from redis"
	ErrDevRedisIncrementData = "failed to increment data in redis"
	ErrDevRedisUnlock        = "failed to release redis lock"

	// Minio messages
	ErrDevMinioFailedToCreateObject = "failed to create object in bucket %s"

	// RabbitMQ messages
	ErrDevRabbitMQOpenChannel      = "failed to open rabbitmq channel"
	ErrDevRabbitMQDeclareExchange  = "failed to declare rabbitmq exchange %s"
	ErrDevRabbitMQPublishMessage   = "failed to publish message to exchange %s"
	ErrDevRabbitMQConsumeQueue     = "failed to consume rabbitmq queue %s"
	ErrDevRabbitMQDeclareQueue     = "failed to declare rabbitmq queue %s"
	ErrDevRabbitMQChannelNotOpened = "rabbitmq channel is not opened"
)
