package constants

const (
	EnvDevelopment      = "development"
	EnvProduction       = "production"
	EnvTest             = "test"
	CsrfInputName       = "_csrf"
	CsrfHeaderName      = "X-CSRF-Token"
	CsrfTokenContextKey = "csrf.token"
	CsrfCookieName      = "shelf_csrf"
	HtmxRequestKey      = "htmx.request"
	LoginPath           = "/login"
	RegisterPath        = "/register"
	HomePath            = "/"
)
