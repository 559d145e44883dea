package handler

import (
	"net/http"
	"time"

	"internhub/internal/delivery/http/middleware"
	"internhub/internal/delivery/http/response"
	"internhub/internal/domain/entity"
	"internhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InternshipHandler holds dependencies for internship endpoints.
type InternshipHandler struct {
	internshipUC usecase.InternshipUsecase
}

// NewInternshipHandler is the constructor for InternshipHandler, injected by Fx.
func NewInternshipHandler(internshipUC usecase.InternshipUsecase) *InternshipHandler {
	return &InternshipHandler{internshipUC: internshipUC}
}

type internshipPayload struct {
	ID          uuid.UUID               `json:"id"`
	StudentID   uuid.UUID               `json:"studentId"`
	TeacherID   uuid.UUID               `json:"teacherId"`
	WorkplaceID uuid.UUID               `json:"workplaceId"`
	Status      entity.InternshipStatus `json:"status"`
	StartDate   *time.Time              `json:"startDate,omitempty"`
	EndDate     *time.Time              `json:"endDate,omitempty"`
}

// ListMine returns the placements the caller participates in.
func (h *InternshipHandler) ListMine(c echo.Context) error {
	internships, err := h.internshipUC.ListMine(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return errors.WithStack(err)
	}

	payload := make([]internshipPayload, 0, len(internships))
	for _, i := range internships {
		payload = append(payload, internshipPayload{
			ID:          i.ID,
			StudentID:   i.StudentID,
			TeacherID:   i.TeacherID,
			WorkplaceID: i.WorkplaceID,
			Status:      i.Status,
			StartDate:   i.StartDate,
			EndDate:     i.EndDate,
		})
	}

	return response.Success(c, http.StatusOK, payload)
}
