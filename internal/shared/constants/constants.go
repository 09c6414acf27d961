package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// API prefix
	APIVersionPrefix = "/api/v1"

	// Context keys set by middleware
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyTokenID   = "token_id"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableUsers               = "users"
	TablePlans               = "subscription_plans"
	TableSubscriptions       = "subscriptions"
	TableSubscriptionHistory = "subscription_history"
)
