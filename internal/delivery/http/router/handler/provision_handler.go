package handler

import (
	"net/http"

	"internhub/internal/delivery/http/middleware"
	"internhub/internal/delivery/http/response"
	"internhub/internal/domain/entity"
	"internhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProvisionHandler holds dependencies for account provisioning endpoints.
type ProvisionHandler struct {
	provisionUC usecase.ProvisionUsecase
}

// NewProvisionHandler is the constructor for ProvisionHandler, injected by Fx.
func NewProvisionHandler(provisionUC usecase.ProvisionUsecase) *ProvisionHandler {
	return &ProvisionHandler{provisionUC: provisionUC}
}

type createStaffRequest struct {
	Role     string `json:"role" validate:"required,oneof=teacher workplace"`
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone"`

	Department string `json:"department" validate:"required_if=Role teacher"`

	CompanyName     string `json:"companyName" validate:"required_if=Role workplace"`
	BranchName      string `json:"branchName"`
	ContactName     string `json:"contactName" validate:"required_if=Role workplace"`
	ContactEmail    string `json:"contactEmail"`
	ContactPhone    string `json:"contactPhone"`
	ContactPosition string `json:"contactPosition"`
	Address         string `json:"address"`
	Notes           string `json:"notes"`
}

// CreateStaffUser provisions a teacher or workplace account. Admin only.
// The usecase re-validates; the tags here just reject malformed requests
// before they reach it.
func (h *ProvisionHandler) CreateStaffUser(c echo.Context) error {
	var req createStaffRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid provisioning input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.provisionUC.CreateStaffUser(c.Request().Context(), usecase.CreateStaffInput{
		Role:            entity.Role(req.Role),
		Name:            req.Name,
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		Phone:           req.Phone,
		Department:      req.Department,
		CompanyName:     req.CompanyName,
		BranchName:      req.BranchName,
		ContactName:     req.ContactName,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		ContactPosition: req.ContactPosition,
		Address:         req.Address,
		Notes:           req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUserPayload(output.User))
}

type createStudentRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=8"`
	Phone         string `json:"phone"`
	StudentNumber string `json:"studentId" validate:"required"`
	Level         string `json:"level" validate:"required"`
	Year          int    `json:"year" validate:"required"`
	Department    string `json:"department" validate:"required"`
	Classroom     string `json:"classroom" validate:"required"`
}

// CreateStudent provisions a student supervised by the calling teacher.
func (h *ProvisionHandler) CreateStudent(c echo.Context) error {
	var req createStudentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid provisioning input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.provisionUC.CreateStudent(c.Request().Context(), middleware.CurrentUser(c), usecase.CreateStudentInput{
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		Phone:         req.Phone,
		StudentNumber: req.StudentNumber,
		Level:         req.Level,
		Year:          req.Year,
		Department:    req.Department,
		Classroom:     req.Classroom,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUserPayload(output.User))
}
