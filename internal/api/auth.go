package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/danimarcos10/feedback-platform/internal/model"
)

// Auth calls the backend's authentication endpoints.
type Auth struct {
	pipeline *Pipeline
}

// NewAuth creates an Auth client over the given pipeline.
func NewAuth(pipeline *Pipeline) *Auth {
	return &Auth{pipeline: pipeline}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register creates a new account and returns its profile.
func (a *Auth) Register(ctx context.Context, email, password string) (model.UserProfile, error) {
	var profile model.UserProfile
	err := a.pipeline.Do(ctx, http.MethodPost, "/auth/register", nil, registerRequest{Email: email, Password: password}, &profile)
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("failed to register: %w", err)
	}
	return profile, nil
}

// Login exchanges credentials for a bearer token. The backend expects
// the form-encoded OAuth2 password flow with the email as username.
func (a *Auth) Login(ctx context.Context, email, password string) (string, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var resp tokenResponse
	err := a.pipeline.DoForm(ctx, http.MethodPost, "/auth/login", form, &resp)
	if err != nil {
		return "", fmt.Errorf("failed to login: %w", err)
	}
	return resp.AccessToken, nil
}

// Me fetches the profile of the currently authenticated user.
func (a *Auth) Me(ctx context.Context) (model.UserProfile, error) {
	var profile model.UserProfile
	err := a.pipeline.Do(ctx, http.MethodGet, "/auth/me", nil, nil, &profile)
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return profile, nil
}
