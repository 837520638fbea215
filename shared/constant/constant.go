package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeySession  contextKey = "session"
	ContextKeyUsername contextKey = "username"
	ContextKeyTokenID  contextKey = "token_id"
)

const (
	DefaultCountryCode      = "91"
	DefaultAdminWhatsApp    = "918149003738"
	WhatsAppBaseURL         = "https://wa.me/"
	WhatsAppFallbackMaxRune = 1000
)

const (
	BookingListLimit      = 100
	GalleryListLimit      = 20
	BookingNameMaxRune    = 50
	BookingPackageMaxRune = 30
	BookingDetailsMaxRune = 100
	DebugMessageMaxRune   = 200
	PasswordMinLength     = 8
	BookingNameMinLength  = 2
	BookingPhoneMinLength = 8
)

const (
	RequestParamLimit = "limit"
	RequestMaxMemory  = 10 << 20 // 10 MB
)

const (
	FieldID        = "id"
	FieldCreatedAt = "created_at"
	FieldUsername  = "username"
	SortDirDesc    = "DESC"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

const (
	PqErrorCodeUniqueViolation = "23505"
)

const (
	DateFormat = time.RFC3339
)

const (
	MinutesToSeconds = 60
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
)

const (
	CacheKeyGalleryList = "gallery:list"
	CacheKeyHomeImages  = "home:images"
	CacheKeySiteAssets  = "site:assets"
	CacheKeyRevokedJTI  = "session:revoked:"
	CacheKeyRateLimit   = "ratelimit:"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON              = "application/json"
	ContentTypeHTML              = "text/html; charset=utf-8"
	ContentTypeFormURLEncoded    = "application/x-www-form-urlencoded"
	ContentTypeMultipartFormData = "multipart/form-data"
	FormFileImage                = "image"
	FormFieldCaption             = "caption"
	FormFieldUsername            = "username"
	FormFieldPassword            = "password"
	FormFieldCurrentPassword     = "current_password"
	FormFieldNewPassword         = "new_password"
	FormFieldConfirmPassword     = "confirm_password"
	FormFieldDisplayOrder        = "display_order"
	FormFieldAssetType           = "asset_type"
	FormFieldAltText             = "alt_text"
)

const (
	RoutePathIndex          = "/"
	RoutePathAdminLogin     = "/admin_login"
	RoutePathDashboard      = "/dashboard"
	RoutePathLogout         = "/logout"
	RoutePathChangePassword = "/change_password"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"

	ResponseErrorJSONRequired        = "JSON required"
	ResponseErrorInvalidJSON         = "Invalid JSON"
	ResponseErrorNoData              = "No data"
	ResponseErrorBookingFailed       = "Booking failed"
	ResponseMessageBookingConfirmed  = "Booking confirmed!"
	ResponseErrorNoImage             = "No image"
	ResponseErrorEmptyFilename       = "Empty filename"
	ResponseErrorImageNotFound       = "Image not found"
	ResponseErrorInvalidImageID      = "Invalid image id"
	ResponseErrorInvalidDisplayOrder = "Invalid display order"
	ResponseErrorAssetTypeRequired   = "Asset type required"
	ResponseErrorCredentialsRequired = "Username and password required"
	ResponseErrorLoginFailed         = "Login failed, please try again"
	ResponseMessagePasswordChanged   = "Password updated"
	HealthStatusOK                   = "ok"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
