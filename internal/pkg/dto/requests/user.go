package requests

import "mime/multipart"

type RegisterUser struct {
	Name           string                `form:"name" validate:"required,min=2,max=100"`
	Email          string                `form:"email" validate:"required,email"`
	Password       string                `form:"password" validate:"required,min=6,max=72"`
	Role           string                `form:"role" validate:"omitempty,user_role"`
	Specialization string                `form:"specialization" validate:"omitempty,max=100"`
	AvailableFrom  string                `form:"available_from" validate:"omitempty,time_of_day"`
	AvailableTo    string                `form:"available_to" validate:"omitempty,time_of_day"`
	Picture        *multipart.FileHeader `form:"-" validate:"-"`
}

type LoginUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfile struct {
	Name    *string               `form:"name" validate:"omitempty,min=2,max=100"`
	Email   *string               `form:"email" validate:"omitempty,email"`
	Picture *multipart.FileHeader `form:"-" validate:"-"`
}

type UpdateDoctor struct {
	Name           *string `json:"name" validate:"omitempty,min=2,max=100"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Specialization *string `json:"specialization" validate:"omitempty,max=100"`
	AvailableFrom  *string `json:"available_from" validate:"omitempty,time_of_day"`
	AvailableTo    *string `json:"available_to" validate:"omitempty,time_of_day"`
}

func (r *UpdateDoctor) IsEmpty() bool {
	return r.Name == nil && r.Email == nil && r.Specialization == nil && r.AvailableFrom == nil && r.AvailableTo == nil
}
