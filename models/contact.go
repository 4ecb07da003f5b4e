package models

// ContactRequest is the public contact form payload. Validated explicitly in
// the handler rather than through binding tags, so field errors can be
// reported per field.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=32"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}
