package services

import (
	"context"
	"fmt"

	"contactbox/internal/common"
	"contactbox/internal/models"
	"contactbox/internal/repositories"

	"github.com/google/uuid"
)

// MessageService implements the contact-form workflow: validate, verify
// the CAPTCHA, then persist. No side effect happens on invalid input.
type MessageService interface {
	Submit(ctx context.Context, input *common.ContactInput) (*models.Message, error)
	List(ctx context.Context) ([]*models.Message, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

type messageService struct {
	messageRepo repositories.MessageRepository
	captcha     CaptchaService
}

func NewMessageService(messageRepo repositories.MessageRepository, captcha CaptchaService) MessageService {
	return &messageService{
		messageRepo: messageRepo,
		captcha:     captcha,
	}
}

// Submit validates the form, checks the CAPTCHA and stores the message
// with the default status.
func (s *messageService) Submit(ctx context.Context, input *common.ContactInput) (*models.Message, error) {
	if err := common.ValidateContact(input); err != nil {
		return nil, err
	}

	if err := s.captcha.Verify(ctx, input.Captcha); err != nil {
		return nil, err
	}

	message := &models.Message{
		ID:      uuid.New(),
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Message: input.Message,
		Status:  models.StatusNew,
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}
	return message, nil
}

// List returns all messages, most recent first.
func (s *messageService) List(ctx context.Context) ([]*models.Message, error) {
	return s.messageRepo.List(ctx)
}

// UpdateStatus moves a message to another workflow state. The status is
// checked against the enumerated set before the database is touched.
func (s *messageService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if !models.IsValidMessageStatus(status) {
		return ErrInvalidStatus
	}

	affected, err := s.messageRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return fmt.Errorf("failed to update message status: %w", err)
	}
	if affected == 0 {
		return ErrMessageNotFound
	}
	return nil
}
