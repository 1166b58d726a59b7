package service

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"
	"github.com/google/uuid"

	"github.com/hireground/catalog-api/config"
	domainauth "github.com/hireground/catalog-api/internal/domain/auth"
	apperrors "github.com/hireground/catalog-api/internal/errors"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Config config.AuthConfig
	// Now overrides the clock. Nil means time.Now.
	Now func() time.Time
}

// AuthService verifies the configured administrator credentials and issues
// and validates signed bearer tokens. Every failure path returns the same
// unauthorized error so callers cannot probe which check rejected them.
type AuthService struct {
	cfg config.AuthConfig
	now func() time.Time
}

// tokenTTL is the fixed token lifetime. Expiry is always issued-at plus
// exactly this duration.
const tokenTTL = time.Hour

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &AuthService{cfg: opts.Config, now: now}
}

// TokenResult contains a freshly issued token and its expiry.
type TokenResult struct {
	Token     string
	ExpiresAt time.Time
}

// tokenClaims carries the private claims alongside the registered set.
type tokenClaims struct {
	Roles []string `json:"roles"`
}

func errInvalidCredentials() error {
	return apperrors.Unauthorized("invalid credentials")
}

// IssueToken checks the username and password against the configured
// administrator account and returns a signed token carrying both the
// Administrator and User roles.
func (s *AuthService) IssueToken(_ context.Context, username, password string) (*TokenResult, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) == 1
	if !userOK || !passOK {
		return nil, errInvalidCredentials()
	}

	signer, err := jose.NewSigner(
		jose.SigningKey{Algorithm: jose.HS256, Key: []byte(s.cfg.TokenSecret)},
		(&jose.SignerOptions{}).WithType("JWT"),
	)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "create token signer")
	}

	issuedAt := s.now().UTC()
	expiresAt := issuedAt.Add(tokenTTL)
	registered := jwt.Claims{
		Subject:  username,
		Issuer:   s.cfg.TokenIssuer,
		Audience: jwt.Audience{s.cfg.TokenAudience},
		ID:       uuid.NewString(),
		IssuedAt: jwt.NewNumericDate(issuedAt),
		Expiry:   jwt.NewNumericDate(expiresAt),
	}
	private := tokenClaims{Roles: []string{
		string(domainauth.RoleAdministrator),
		string(domainauth.RoleUser),
	}}

	token, err := jwt.Signed(signer).Claims(registered).Claims(private).Serialize()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "sign token")
	}
	return &TokenResult{Token: token, ExpiresAt: expiresAt}, nil
}

// ValidateToken verifies the token signature and claims and returns the
// authenticated identity. A token is valid from its issued-at instant up to,
// but not including, its expiry; there is no clock leeway.
func (s *AuthService) ValidateToken(_ context.Context, raw string) (*domainauth.Claims, error) {
	parsed, err := jwt.ParseSigned(raw, []jose.SignatureAlgorithm{jose.HS256})
	if err != nil {
		return nil, errInvalidCredentials()
	}

	var registered jwt.Claims
	var private tokenClaims
	if claimsErr := parsed.Claims([]byte(s.cfg.TokenSecret), &registered, &private); claimsErr != nil {
		return nil, errInvalidCredentials()
	}

	if registered.Issuer != s.cfg.TokenIssuer {
		return nil, errInvalidCredentials()
	}
	if !registered.Audience.Contains(s.cfg.TokenAudience) {
		return nil, errInvalidCredentials()
	}
	if registered.IssuedAt == nil || registered.Expiry == nil {
		return nil, errInvalidCredentials()
	}

	// Half-open validity window: expiry itself is already expired.
	now := s.now().UTC()
	issuedAt := registered.IssuedAt.Time().UTC()
	expiresAt := registered.Expiry.Time().UTC()
	if now.Before(issuedAt) || !now.Before(expiresAt) {
		return nil, errInvalidCredentials()
	}

	roles := make([]domainauth.Role, 0, len(private.Roles))
	for _, r := range private.Roles {
		roles = append(roles, domainauth.Role(r))
	}
	return &domainauth.Claims{
		Subject:   registered.Subject,
		TokenID:   registered.ID,
		Roles:     roles,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}
