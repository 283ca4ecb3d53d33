package dto

type ContactRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Message        string `json:"message" validate:"required"`
	Newsletter     bool   `json:"newsletter"`
	RecaptchaToken string `json:"recaptcha_token"`
}

type ContactStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new read replied"`
}

type NewsletterRequest struct {
	Email string  `json:"email" validate:"required,email"`
	Name  *string `json:"name"`
}
