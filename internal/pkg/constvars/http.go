package constvars

const (
	MethodGet     = "GET"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodPatch   = "PATCH"
	MethodDelete  = "DELETE"
	MethodOptions = "OPTIONS"
)

const (
	MIMEApplicationJSON = "application/json"
	MIMEMultipartForm   = "multipart/form-data"
	MIMEOctetStream     = "application/octet-stream"
	MIMEImageJPEG       = "image/jpeg"
	MIMEImagePNG        = "image/png"
	MIMEImageWEBP       = "image/webp"
)

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusNoContent           = 204
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusConflict            = 409
	StatusRequestEntityLarge  = 413
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderXRequestID    = "X-Request-ID"
	HeaderRetryAfter    = "Retry-After"
)

const (
	AuthorizationBearerPrefix = "Bearer "
	WebsocketTokenQueryParam  = "token"
)
