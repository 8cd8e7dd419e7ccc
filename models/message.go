package models

// Message holds the structure for a message board entry
type Message struct {
	ID        string `json:"id" validate:"required,numeric"`
	Author    string `json:"author" validate:"required"`
	Message   string `json:"message" validate:"required"`
	CreatedAt string `json:"createdAt" validate:"required"`
}

// CreateMessageResponse is returned after a message has been saved
type CreateMessageResponse struct {
	Success bool    `json:"success"`
	Message Message `json:"message"`
}
