package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/config"
)

var (
	ErrInvalidToken  = errors.New("token: invalid token")
	ErrExpiredToken  = errors.New("token: expired token")
	ErrInvalidClaims = errors.New("token: invalid claims")
)

const (
	ACCESS  = "access"
	REFRESH = "refresh"
)

// Claims: exp, iat, sub, iss 는 RegisteredClaims 가 담당한다
type Claims struct {
	MemberID  string `json:"member_id"`
	Username  string `json:"username"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

type Manager interface {
	GenerateAccessToken(memberID string, username string) (string, error)
	GenerateRefreshToken(memberID string, username string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type JWTManager struct {
	secret        []byte
	issuer        string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewJWTManager(cfg *config.Config) *JWTManager {
	return &JWTManager{
		secret:        []byte(cfg.JWT.Secret),
		issuer:        cfg.App.Name,
		accessExpiry:  cfg.JWT.Expiry,
		refreshExpiry: cfg.JWT.RefreshExpiry,
	}
}

func (m *JWTManager) GenerateAccessToken(memberID, username string) (string, error) {
	return m.sign(memberID, username, ACCESS, m.accessExpiry)
}

func (m *JWTManager) GenerateRefreshToken(memberID, username string) (string, error) {
	return m.sign(memberID, username, REFRESH, m.refreshExpiry)
}

func (m *JWTManager) sign(memberID, username, tokenType string, expiry time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		MemberID:  memberID,
		Username:  username,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    m.issuer,
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// ValidateToken accepts only unexpired HS256 access tokens issued by this server.
func (m *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
	)

	token, err := parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	// refresh token 으로는 API 를 호출할 수 없다
	if claims.TokenType != ACCESS || claims.Username == "" {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}
