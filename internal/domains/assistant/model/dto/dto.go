package dto

type AskRequest struct {
	Question string `json:"question" validate:"required,max=1000"`
}

type AskResponse struct {
	Answer string `json:"answer"`
}
