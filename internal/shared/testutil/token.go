package testutil

import (
	"fmt"
	"sync"

	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/token"
)

// MockTokenManager issues opaque tokens that it can resolve back to their claims.
// Set Err to make every call fail.
type MockTokenManager struct {
	Err error

	mu     sync.Mutex
	issued map[string]*token.Claims
}

var _ token.Manager = (*MockTokenManager)(nil)

func NewMockTokenManager() *MockTokenManager {
	return &MockTokenManager{issued: map[string]*token.Claims{}}
}

func (m *MockTokenManager) GenerateAccessToken(memberID, username string) (string, error) {
	return m.issue(token.ACCESS, memberID, username)
}

func (m *MockTokenManager) GenerateRefreshToken(memberID, username string) (string, error) {
	return m.issue(token.REFRESH, memberID, username)
}

// ValidateToken accepts only access tokens issued by this manager.
func (m *MockTokenManager) ValidateToken(raw string) (*token.Claims, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	claims, ok := m.issued[raw]
	if !ok {
		return nil, token.ErrInvalidToken
	}
	if claims.TokenType != token.ACCESS {
		return nil, token.ErrInvalidClaims
	}
	return claims, nil
}

// Issued returns the claims of every token handed out so far.
func (m *MockTokenManager) Issued() []token.Claims {
	m.mu.Lock()
	defer m.mu.Unlock()

	claims := make([]token.Claims, 0, len(m.issued))
	for _, c := range m.issued {
		claims = append(claims, *c)
	}
	return claims
}

func (m *MockTokenManager) issue(tokenType, memberID, username string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	raw := fmt.Sprintf("%s-%s-%s", tokenType, memberID, username)
	m.issued[raw] = &token.Claims{MemberID: memberID, Username: username, TokenType: tokenType}
	return raw, nil
}
