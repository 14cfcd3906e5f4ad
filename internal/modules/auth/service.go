package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"staybook/internal/config"
	"staybook/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"
)

const graphMeURL = "https://graph.microsoft.com/v1.0/me"

// Identity is what the provider tells us about the signed-in person.
// This service never validates tokens beyond the code exchange itself;
// the provider is trusted.
type Identity struct {
	Name     string
	Email    string
	JobTitle string
}

type UserStore interface {
	UpsertByEmail(ctx context.Context, u *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
}

type Service struct {
	oauth    *oauth2.Config
	users    UserStore
	client   *http.Client
	graphURL string
}

func NewService(cfg config.OAuthConfig, users UserStore) *Service {
	return &Service{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Endpoint:     microsoft.AzureADEndpoint(cfg.TenantID),
			Scopes:       []string{"openid", "profile", "email", "User.Read"},
		},
		users:    users,
		client:   &http.Client{Timeout: 10 * time.Second},
		graphURL: graphMeURL,
	}
}

func (s *Service) LoginURL(state string) string {
	return s.oauth.AuthCodeURL(state)
}

// HandleCallback exchanges the authorization code, extracts the
// identity, and records the user locally keyed by email.
func (s *Service) HandleCallback(ctx context.Context, code string) (*Identity, error) {
	tok, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("token exchange: %w", err)
	}

	id := identityFromIDToken(tok)
	if id == nil {
		id, err = s.fetchGraphProfile(ctx, tok.AccessToken)
		if err != nil {
			return nil, err
		}
	}
	if id.JobTitle == "" {
		id.JobTitle = "Not specified"
	}

	if s.users != nil && id.Email != "" {
		err := s.users.UpsertByEmail(ctx, &domain.User{
			Name:  id.Name,
			Email: id.Email,
			Role:  id.JobTitle,
		})
		if err != nil {
			return nil, err
		}
	}
	return id, nil
}

// ListUsers exposes the known users so the frontend can resolve ids.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// identityFromIDToken reads the OIDC id_token claims without signature
// verification. The token came straight from the provider's token
// endpoint over TLS, which is the same trust the access token gets.
func identityFromIDToken(tok *oauth2.Token) *Identity {
	raw, ok := tok.Extra("id_token").(string)
	if !ok || raw == "" {
		return nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil
	}

	email, _ := claims["email"].(string)
	if email == "" {
		email, _ = claims["preferred_username"].(string)
	}
	if email == "" {
		return nil
	}
	name, _ := claims["name"].(string)

	return &Identity{Name: name, Email: email}
}

func (s *Service) fetchGraphProfile(ctx context.Context, accessToken string) (*Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.graphURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("graph profile: status %d", resp.StatusCode)
	}

	var body struct {
		DisplayName       string `json:"displayName"`
		Mail              string `json:"mail"`
		UserPrincipalName string `json:"userPrincipalName"`
		JobTitle          string `json:"jobTitle"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	email := body.Mail
	if email == "" {
		email = body.UserPrincipalName
	}
	return &Identity{Name: body.DisplayName, Email: email, JobTitle: body.JobTitle}, nil
}
