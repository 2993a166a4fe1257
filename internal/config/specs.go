package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	KratosPublicURL string `envconfig:"kratos_public_url" required:"true"`
	KratosAdminURL  string `envconfig:"kratos_admin_url" required:"true"`

	InvitationLifetime string `envconfig:"invitation_lifetime" default:"24h"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	StripeSecretKey     string `envconfig:"stripe_secret_key"`
	StripeWebhookSecret string `envconfig:"stripe_webhook_secret"`
	BillingSuccessURL   string `envconfig:"billing_success_url" default:"http://localhost:3000/dashboard"`
	BillingCancelURL    string `envconfig:"billing_cancel_url" default:"http://localhost:3000/pricing"`
	TrialPeriodDays     int64  `envconfig:"trial_period_days" default:"14"`

	ActivityLogLimit uint64 `envconfig:"activity_log_limit" default:"50"`

	AdminAuthEnabled     bool     `envconfig:"admin_auth_enabled" default:"false"`
	OIDCIssuer           string   `envconfig:"oidc_issuer"`
	JWKSURL              string   `envconfig:"jwks_url"`
	AdminAllowedSubjects []string `envconfig:"admin_allowed_subjects"`
	AdminRequiredScope   string   `envconfig:"admin_required_scope" default:"saas:admin"`
}
