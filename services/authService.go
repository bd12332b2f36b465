package services

import (
	"context"
	"log"

	"github.com/go-resty/resty/v2"

	"github.com/chakula-app/chakula-client/api"
	"github.com/chakula-app/chakula-client/models"
	"github.com/chakula-app/chakula-client/stores"
)

const (
	tokenCreatePath  = "/api/v1/auth/jwt/create/"
	logoutPath       = "/api/v1/auth/jwt/logout/"
	usersPath        = "/api/v1/auth/users/"
	currentUserPath  = "/api/v1/auth/users/me/"
	resetPath        = "/api/v1/auth/users/reset_password/"
	resetConfirmPath = "/api/v1/auth/users/reset_password_confirm/"
)

// AuthService signs users in and out and keeps the session store current.
type AuthService struct {
	client  *api.Client
	session *stores.Session
}

func NewAuthService(client *api.Client, session *stores.Session) *AuthService {
	return &AuthService{client: client, session: session}
}

// Login exchanges credentials for a token pair, then loads the user's
// profile into the session. Any failure leaves the session cleared.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	req := s.client.R(ctx).SetBody(models.LoginData{Email: email, Password: password})

	var tokens models.TokenPair
	if err := s.client.Execute("auth.Login", req, resty.MethodPost, tokenCreatePath, &tokens); err != nil {
		s.session.Clear()
		return models.User{}, err
	}
	s.session.SetTokens(tokens)

	user, err := s.CurrentUser(ctx)
	if err != nil {
		s.session.Clear()
		return models.User{}, err
	}
	s.session.SetUser(user)
	return user, nil
}

// Logout invalidates the server-side session. The local session is cleared
// even when the request fails.
func (s *AuthService) Logout(ctx context.Context) error {
	err := s.client.Execute("auth.Logout", s.client.R(ctx), resty.MethodPost, logoutPath, nil)
	if err != nil {
		log.Println("Logout request failed, clearing local session anyway:", err)
	}
	s.session.Clear()
	return err
}

// Register creates a new customer account. The user still has to log in.
func (s *AuthService) Register(ctx context.Context, data models.RegisterData) error {
	req := s.client.R(ctx).SetBody(map[string]string{
		"email":       data.Email,
		"password":    data.Password,
		"re_password": data.Password,
		"first_name":  data.FirstName,
		"last_name":   data.LastName,
	})
	return s.client.Execute("auth.Register", req, resty.MethodPost, usersPath, nil)
}

// CurrentUser fetches the authenticated user's profile.
func (s *AuthService) CurrentUser(ctx context.Context) (models.User, error) {
	var user models.User
	err := s.client.Execute("auth.CurrentUser", s.client.R(ctx), resty.MethodGet, currentUserPath, &user)
	return user, err
}

// RequestPasswordReset asks the server to mail a reset link.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	req := s.client.R(ctx).SetBody(map[string]string{"email": email})
	return s.client.Execute("auth.RequestPasswordReset", req, resty.MethodPost, resetPath, nil)
}

// ConfirmPasswordReset completes the reset flow with the emailed uid/token.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, uid, token, newPassword string) error {
	req := s.client.R(ctx).SetBody(map[string]string{
		"uid":             uid,
		"token":           token,
		"new_password":    newPassword,
		"re_new_password": newPassword,
	})
	return s.client.Execute("auth.ConfirmPasswordReset", req, resty.MethodPost, resetConfirmPath, nil)
}
