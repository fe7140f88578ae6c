package models

import (
	"mamacare-service/internal/pkg/constvars"
	"time"
)

type Session struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) IsDoctor() bool {
	return s.Role == constvars.RoleDoctor
}

func (s *Session) IsAdmin() bool {
	return s.Role == constvars.RoleAdmin
}
