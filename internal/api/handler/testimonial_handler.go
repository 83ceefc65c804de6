package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aciky/community-api/internal/core/ports"
)

// TestimonialHandler is the HTTP layer for visitor reviews.
type TestimonialHandler struct {
	service ports.TestimonialService
}

func NewTestimonialHandler(service ports.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{service: service}
}

type submitTestimonialRequest struct {
	AuthorName string `json:"author_name"`
	Location   string `json:"location"`
	Content    string `json:"content"`
	Rating     int    `json:"rating"`
	ActivityID *int64 `json:"activity_id"`
}

type approvalRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}

// ListApproved returns the published testimonials.
//
// @Summary      List approved testimonials
// @Tags         testimonials
// @Router       /api/testimonials [get]
func (h *TestimonialHandler) ListApproved(c echo.Context) error {
	testimonials, err := h.service.Approved(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    testimonials,
	})
}

// Submit accepts a public review; it stays hidden until approved.
//
// @Summary      Submit testimonial
// @Tags         testimonials
// @Router       /api/testimonials [post]
func (h *TestimonialHandler) Submit(c echo.Context) error {
	var req submitTestimonialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	id, err := h.service.Submit(c.Request().Context(), ports.SubmitTestimonialParams{
		AuthorName: req.AuthorName,
		Location:   req.Location,
		Content:    req.Content,
		Rating:     req.Rating,
		ActivityID: req.ActivityID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "Testimonial submitted for review",
		"id":      id,
	})
}

// ListAll returns every testimonial for moderation. Admin only.
//
// @Summary      List all testimonials
// @Tags         testimonials
// @Router       /api/testimonials/all [get]
func (h *TestimonialHandler) ListAll(c echo.Context) error {
	testimonials, err := h.service.All(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    testimonials,
	})
}

// SetApproval publishes or hides a testimonial. Admin only.
//
// @Summary      Approve or hide testimonial
// @Tags         testimonials
// @Router       /api/testimonials/{id}/approval [put]
func (h *TestimonialHandler) SetApproval(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req approvalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.SetApproval(c.Request().Context(), id, *req.Approved); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Testimonial updated",
	})
}

// Delete removes a testimonial. Admin only.
//
// @Summary      Delete testimonial
// @Tags         testimonials
// @Router       /api/testimonials/{id} [delete]
func (h *TestimonialHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Testimonial deleted",
	})
}
