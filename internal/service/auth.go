package service

import (
	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/deppfellow/portal-api/internal/server"
)

// AuthService configures the Clerk SDK when API authentication is enabled.
type AuthService struct {
	server  *server.Server
	enabled bool
}

func NewAuthService(s *server.Server) *AuthService {
	if s.Config.Auth.Enabled {
		clerk.SetKey(s.Config.Auth.SecretKey)
	}
	return &AuthService{
		server:  s,
		enabled: s.Config.Auth.Enabled,
	}
}

func (a *AuthService) Enabled() bool {
	return a.enabled
}
