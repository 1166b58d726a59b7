package config

import "strings"

// AuthConfig groups the admin identity and token signing configuration.
// Values are passed as an explicit dependency into the credential service
// rather than being read from process-global state.
type AuthConfig struct {
	// AdminUsername is the single configured administrative username.
	AdminUsername string `env:"ADMIN_USERNAME,required,notEmpty"`

	// AdminPassword is the password for the administrative identity.
	AdminPassword string `env:"ADMIN_PASSWORD,required,notEmpty"`

	// TokenSecret is the shared HMAC secret used to sign and verify
	// access tokens. Must be kept private and non-empty; an empty HMAC
	// secret would sign forgeable tokens.
	TokenSecret string `env:"TOKEN_SECRET,required,notEmpty"`

	// TokenIssuer is the issuer claim stamped into and required from tokens.
	TokenIssuer string `env:"TOKEN_ISSUER" envDefault:"catalog-api"`

	// TokenAudience is the audience claim stamped into and required from tokens.
	TokenAudience string `env:"TOKEN_AUDIENCE" envDefault:"catalog-clients"`
}

// Sanitize trims whitespace from identity fields. Passwords and secrets are
// left untouched so deliberate leading/trailing characters survive.
func (a *AuthConfig) Sanitize() {
	a.AdminUsername = strings.TrimSpace(a.AdminUsername)
	a.TokenIssuer = strings.TrimSpace(a.TokenIssuer)
	a.TokenAudience = strings.TrimSpace(a.TokenAudience)
}
