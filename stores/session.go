package stores

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/chakula-app/chakula-client/models"
)

// Session holds the authenticated user and token pair. The access token is
// attached to outgoing requests by the API client; the refresh token is only
// ever sent to the refresh endpoint.
type Session struct {
	mu     sync.RWMutex
	user   *models.User
	tokens models.TokenPair
}

func NewSession() *Session { return &Session{} }

func (s *Session) SetTokens(tokens models.TokenPair) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = tokens
}

// SetAccessToken replaces only the access token, keeping the refresh token.
// Used after a silent refresh.
func (s *Session) SetAccessToken(access string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens.Access = access
}

func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens.Access
}

func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens.Refresh
}

func (s *Session) SetUser(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
}

func (s *Session) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.tokens.Access != ""
}

// Clear wipes the session. Called when a token refresh fails and the user
// must re-authenticate.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.tokens = models.TokenPair{}
}

// Role returns the current user's role, or empty when signed out.
func (s *Session) Role() models.UserRole {
	user, ok := s.User()
	if !ok {
		return ""
	}
	return user.Role
}

// Require gates role-restricted surfaces (manager and delivery dashboards).
func (s *Session) Require(role models.UserRole) error {
	if s.Role() != role {
		return &models.APIError{Op: "session.Require", Message: string(role) + " access required", Err: models.ErrForbidden}
	}
	return nil
}

// Expired reports whether the access token's exp claim has passed. The
// signature is not checked here; the server remains the authority and an
// expired-looking token simply prompts an early refresh.
func (s *Session) Expired() bool {
	token := s.AccessToken()
	if token == "" {
		return true
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
