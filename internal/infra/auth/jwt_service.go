package auth

import (
	"strconv"
	"time"

	"messenger/config"
	"messenger/internal/domain/entity"
	"messenger/internal/domain/service"
	"messenger/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// issuedAtLeeway tolerates clock skew between the issuing and verifying nodes.
// It applies to "iat" only; "exp" is enforced exactly.
const issuedAtLeeway = 5 * time.Second

var (
	// ErrSigningKeyTooShort is returned when the secret is shorter than an HS512 key.
	ErrSigningKeyTooShort = errors.New("jwt signing key must be at least 64 bytes")

	// ErrSubjectMismatch is returned when "sub" and "UserId" disagree.
	ErrSubjectMismatch = errors.New("token subject does not match user id")
)

// jwtService signs and verifies HS512 access tokens.
// All fields are read-only after construction.
type jwtService struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	options  []jwt.ParserOption
}

// NewJWTService is the constructor for jwtService.
// A missing or weak configuration is reported here so the process fails at startup.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	j := cfg.JWT
	if j.Secret == "" || j.Issuer == "" || j.Audience == "" {
		return nil, errors.New("jwt secret, issuer and audience must be provided")
	}
	if len(j.Secret) < config.MinSecretLength {
		return nil, ErrSigningKeyTooShort
	}

	return &jwtService{
		secret:   []byte(j.Secret),
		issuer:   j.Issuer,
		audience: j.Audience,
		ttl:      config.TokenTTL,
		options: []jwt.ParserOption{
			jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
			jwt.WithIssuer(j.Issuer),
			jwt.WithAudience(j.Audience),
			jwt.WithExpirationRequired(),
		},
	}, nil
}

// Issue builds the claim set for user and signs it with HS512.
func (s *jwtService) Issue(user *entity.User, now time.Time) (string, error) {
	jti, err := uuid.NewRandom()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate token id")
	}

	issuedAt := now.UTC().Truncate(time.Second)

	claims := service.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti.String(),
			Subject:   user.Subject(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}
	if user.IsAdmin() {
		claims.Role = entity.RoleAdmin.String()
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return token, nil
}

// Verify parses token and validates it as of now. No storage is consulted.
func (s *jwtService) Verify(token string, now time.Time) (*service.Claims, error) {
	claims := &service.Claims{}

	opts := make([]jwt.ParserOption, 0, len(s.options)+1)
	opts = append(opts, s.options...)
	opts = append(opts, jwt.WithTimeFunc(func() time.Time { return now }))

	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}

	if claims.IssuedAt != nil && claims.IssuedAt.After(now.Add(issuedAtLeeway)) {
		return nil, errors.Wrap(jwt.ErrTokenUsedBeforeIssued, "invalid token")
	}

	if claims.Subject != strconv.FormatInt(claims.UserID, 10) {
		return nil, ErrSubjectMismatch
	}

	return claims, nil
}
