package requests

type URLParamID struct {
	ID string `json:"id" validate:"required,mongodb"`
}
