package models

import (
	"time"

	"github.com/m04kA/KDR-BookingService/internal/domain"
)

// SubmitContactRequest запрос на создание заявки обратной связи
type SubmitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactResponse ответ с данными заявки обратной связи
type ContactResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Subject   string  `json:"subject"`
	Message   string  `json:"message"`
	CreatedAt *string `json:"created_at"`
}

// FromDomainContact конвертирует domain модель в DTO
func FromDomainContact(c *domain.Contact) *ContactResponse {
	if c == nil {
		return nil
	}

	resp := &ContactResponse{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Subject: c.Subject,
		Message: c.Message,
	}

	if !c.CreatedAt.IsZero() {
		createdStr := c.CreatedAt.Format(time.RFC3339)
		resp.CreatedAt = &createdStr
	}

	return resp
}

// FromDomainContactList конвертирует список domain моделей в DTO
func FromDomainContactList(contacts []*domain.Contact) []ContactResponse {
	result := make([]ContactResponse, 0, len(contacts))

	for _, contact := range contacts {
		if resp := FromDomainContact(contact); resp != nil {
			result = append(result, *resp)
		}
	}

	return result
}
