package jwt

import (
	"errors"
	"time"

	"group-deal-engine/internal/domain/user"
	"group-deal-engine/internal/pkg/clock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims carry the user id in the registered subject.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Principal is the verified caller identity.
type Principal struct {
	UserID uuid.UUID
	Role   user.Role
}

type Service struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
	clock     clock.Clock
	parser    *jwt.Parser
}

func NewService(secretKey, issuer string, ttl time.Duration, clk clock.Clock) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		ttl:       ttl,
		clock:     clk,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
			jwt.WithTimeFunc(clk.Now),
		),
	}
}

// Sign is used by operator tooling and tests; end-user token issuance lives outside this service.
func (s *Service) Sign(userID uuid.UUID, role user.Role) (string, error) {
	now := s.clock.Now()
	claims := Claims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
}

func (s *Service) Verify(tokenString string) (*Principal, error) {
	claims := &Claims{}
	token, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &Principal{UserID: userID, Role: role}, nil
}
