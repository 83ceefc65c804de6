package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aciky/community-api/internal/core/domain"
	"github.com/aciky/community-api/internal/core/ports"
)

// ContactHandler is the HTTP layer for contact and booking submissions.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type bookingRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	ActivityID int64  `json:"activity_id"`
	Activity   string `json:"activity"`
	Date       string `json:"date"`
	Notes      string `json:"notes"`
}

// Contact forwards a contact-form message to the association mailbox.
//
// @Summary      Send contact message
// @Tags         contact
// @Router       /api/contact [post]
func (h *ContactHandler) Contact(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	err := h.service.SendContactMessage(c.Request().Context(), domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Message sent successfully",
	})
}

// Booking forwards a class or space booking request.
//
// @Summary      Send booking request
// @Tags         contact
// @Router       /api/booking [post]
func (h *ContactHandler) Booking(c echo.Context) error {
	var req bookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	err := h.service.SendBookingRequest(c.Request().Context(), domain.BookingRequest{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		ActivityID: req.ActivityID,
		Activity:   req.Activity,
		Date:       req.Date,
		Notes:      req.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Booking request sent successfully",
	})
}
