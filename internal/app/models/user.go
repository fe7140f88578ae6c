package models

import "mamacare-service/internal/pkg/constvars"

type User struct {
	ID             string  `json:"id" bson:"_id,omitempty"`
	Name           string  `json:"name" bson:"name"`
	Email          string  `json:"email" bson:"email"`
	Password       string  `json:"-" bson:"password"`
	Role           string  `json:"role" bson:"role"`
	Picture        string  `json:"picture" bson:"picture"`
	Specialization *string `json:"specialization,omitempty" bson:"specialization,omitempty"`
	AvailableFrom  *string `json:"available_from,omitempty" bson:"available_from,omitempty"`
	AvailableTo    *string `json:"available_to,omitempty" bson:"available_to,omitempty"`
	TimeModel      `bson:",inline"`
}

func (u *User) IsDoctor() bool {
	return u.Role == constvars.RoleDoctor
}

func (u *User) IsAdmin() bool {
	return u.Role == constvars.RoleAdmin
}
