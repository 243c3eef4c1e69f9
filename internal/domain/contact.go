package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Contact form field names, in the order they appear on the page.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldCompany = "company"
	FieldPhone   = "phone"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// ContactForm holds the values typed into the contact page form.
type ContactForm struct {
	Name    string `json:"name" form:"name" binding:"required"`
	Email   string `json:"email" form:"email" binding:"required"`
	Company string `json:"company" form:"company"`
	Phone   string `json:"phone" form:"phone"`
	Subject string `json:"subject" form:"subject" binding:"required"`
	Message string `json:"message" form:"message" binding:"required"`
}

// Set updates a single field by name. It is the only way handlers change a form.
func (f *ContactForm) Set(field, value string) error {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldCompany:
		f.Company = value
	case FieldPhone:
		f.Phone = value
	case FieldSubject:
		f.Subject = value
	case FieldMessage:
		f.Message = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// Missing returns the required fields that are empty, in form order.
// Presence is the only check; whitespace counts as a value.
func (f *ContactForm) Missing() []string {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{FieldName, f.Name},
		{FieldEmail, f.Email},
		{FieldSubject, f.Subject},
		{FieldMessage, f.Message},
	}
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.name)
		}
	}
	return missing
}

// Inquiry is an accepted contact form submission.
type Inquiry struct {
	ID         uuid.UUID   `json:"id"`
	Form       ContactForm `json:"form"`
	ReceivedAt time.Time   `json:"receivedAt"`
}

// InitMeta assigns the inquiry id and receive time.
func (i *Inquiry) InitMeta() {
	i.ID = uuid.New()
	i.ReceivedAt = time.Now()
}
