package requests

type CreateChild struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	DateOfBirth string  `json:"date_of_birth" validate:"required,date_of_birth"`
	Sex         string  `json:"sex" validate:"required,oneof=male female"`
	Height      float64 `json:"height" validate:"gte=0"`
	Weight      float64 `json:"weight" validate:"gte=0"`
}
