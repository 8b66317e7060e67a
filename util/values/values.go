package values

type contextKey string

// ContextTracingKey is the context key under which the request tracing
// context is stored.
const ContextTracingKey = contextKey("tracing-context")

// Request headers
const (
	HeaderRequestID     = "X-Request-Id"
	HeaderRequestSource = "X-Request-Source"
)

// Symbolic response statuses. Handlers speak in these and util.StatusCode
// maps them to HTTP status codes.
const (
	Success        = "success"
	Created        = "created"
	Error          = "error"
	BadRequestBody = "bad-request-body"
	Unprocessable  = "unprocessable"
	NotAllowed     = "not-allowed"
	Conflict       = "conflict"
	NotFound       = "not-found"
	NotAuthorised  = "not-authorised"
	TokenExpired   = "token-expired"
)
