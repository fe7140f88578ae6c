package responses

import (
	"mamacare-service/internal/app/models"
)

type Auth struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type Profile struct {
	Token    string          `json:"token"`
	User     *models.User    `json:"user"`
	Children []*models.Child `json:"children,omitempty"`
}

// UserSummary is the embedded view of a user inside other resources.
type UserSummary struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Picture        string  `json:"picture"`
	Specialization *string `json:"specialization,omitempty"`
}

func NewUserSummary(user *models.User) *UserSummary {
	if user == nil {
		return nil
	}
	return &UserSummary{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Picture:        user.Picture,
		Specialization: user.Specialization,
	}
}
