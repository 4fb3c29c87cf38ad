package contacts

import (
	"context"
	"fmt"

	"github.com/m04kA/KDR-BookingService/internal/domain"
	"github.com/m04kA/KDR-BookingService/internal/service/contacts/models"
)

// Service сервис для работы с заявками обратной связи
type Service struct {
	contactRepo ContactRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(contactRepo ContactRepository, logger Logger) *Service {
	return &Service{
		contactRepo: contactRepo,
		logger:      logger,
	}
}

// Submit валидирует и сохраняет заявку обратной связи.
// Валидация — только проверка заполненности: первое незаполненное поле
// из name, email, subject, message даёт ошибку с его именем.
func (s *Service) Submit(ctx context.Context, req *models.SubmitContactRequest) error {
	s.logger.Info("Submit: contact form submission from email=%s", req.Email)

	if err := validateRequest(req); err != nil {
		s.logger.Warn("Submit: validation failed: %v", err)
		return err
	}

	contact := &domain.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if _, err := s.contactRepo.Create(ctx, contact); err != nil {
		s.logger.Error("Submit: repository error: %v", err)
		return fmt.Errorf("%w: Submit - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Submit: contact saved, id=%d", contact.ID)
	return nil
}

// validateRequest проверяет заполненность обязательных полей в порядке формы
func validateRequest(req *models.SubmitContactRequest) error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", req.Name},
		{"email", req.Email},
		{"subject", req.Subject},
		{"message", req.Message},
	}

	for _, f := range fields {
		if f.value == "" {
			return &MissingFieldError{Field: f.name}
		}
	}

	return nil
}
