package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage    = 1
	DefaultPerPage = 15
	MaxPerPage     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeySessionID = "session_id"

	// Database table names
	TableUsers    = "users"
	TableSessions = "sessions"
	TableDevices  = "devices"

	// Field length limits shared by validation and schema
	MaxNameLength     = 255
	MaxEmailLength    = 255
	MaxLocationLength = 255
	MinPasswordLength = 8

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgDeviceNotFound      = "Device not found"
	ErrMsgInvalidCredentials  = "Invalid email or password"
)
