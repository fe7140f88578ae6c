package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "MAMACARE_SVC_"
)

const (
	RoleUser   = "user"
	RoleDoctor = "doctor"
	RoleAdmin  = "admin"
)

const (
	DateOfBirthLayout = "02/01/2006"
	ScheduleDateFmt   = "2006-01-02"
	ScheduleTimeFmt   = "15:04"
)

const (
	ArticleSortAlphabetical = "alphabetical"
	ArticleSortNewest       = "newest"
	ArticleSortOldest       = "oldest"
)

const (
	DefaultUserPicture   = "https://cdn-icons-png.flaticon.com/512/3135/3135715.png"
	DefaultDoctorPicture = "https://cdn-icons-png.flaticon.com/512/3774/3774299.png"
)

const (
	SessionKeyPrefix         = "session:"
	AppointmentLockKeyFormat = "appointment:lock:%s"
	LoginLimiterGroup        = "login-attempt"
	MaxPictureSizeInBytes    = 5 << 20
)
