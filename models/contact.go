package models

// ContactRequest holds the contact form fields
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}
