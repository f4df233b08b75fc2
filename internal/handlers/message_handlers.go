package handlers

import (
	"errors"
	"log"
	"net/http"

	"contactbox/internal/common"
	"contactbox/internal/models"
	"contactbox/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// MessageHandlers handles contact-form submission and the staff message
// workflow routes.
type MessageHandlers struct {
	messageService services.MessageService
}

// NewMessageHandlers creates a new message handlers instance
func NewMessageHandlers(messageService services.MessageService) *MessageHandlers {
	return &MessageHandlers{
		messageService: messageService,
	}
}

// SubmitContact handles POST /api/contact
func (h *MessageHandlers) SubmitContact(c echo.Context) error {
	ctx := c.Request().Context()

	var req common.ContactInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if _, err := h.messageService.Submit(ctx, &req); err != nil {
		var validationErr *common.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return echo.NewHTTPError(http.StatusBadRequest, validationErr.Message)
		case errors.Is(err, services.ErrInvalidCaptcha):
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid captcha, try again")
		default:
			log.Printf("Failed to store contact message: %v", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Message saved successfully",
	})
}

// ListMessages handles GET /api/mensajes
func (h *MessageHandlers) ListMessages(c echo.Context) error {
	ctx := c.Request().Context()

	messages, err := h.messageService.List(ctx)
	if err != nil {
		log.Printf("Failed to list messages: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	if messages == nil {
		messages = []*models.Message{}
	}
	return c.JSON(http.StatusOK, messages)
}

// UpdateStatusRequest represents the status update payload
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateMessageStatus handles PUT /api/mensajes/:id/status
func (h *MessageHandlers) UpdateMessageStatus(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid message ID format")
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := h.messageService.UpdateStatus(ctx, id, req.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid status")
		case errors.Is(err, services.ErrMessageNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Message not found")
		default:
			log.Printf("Failed to update message %s: %v", id, err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Status updated successfully",
	})
}
