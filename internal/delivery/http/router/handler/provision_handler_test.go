package handler

import (
	"net/http"
	"testing"

	"internhub/internal/delivery/http/middleware"
	"internhub/internal/domain/entity"
	domainerrors "internhub/internal/domain/errors"
	mockusecase "internhub/internal/mocks/usecase"
	"internhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProvisionHandler_CreateStaffUser_Teacher(t *testing.T) {
	provisionUC := mockusecase.NewMockProvisionUsecase(t)
	handler := NewProvisionHandler(provisionUC)

	created := sessionUser(entity.RoleTeacher)
	provisionUC.EXPECT().
		CreateStaffUser(mock.Anything, usecase.CreateStaffInput{
			Role:       entity.RoleTeacher,
			Name:       "Teacher One",
			Username:   "teacher1",
			Email:      "teacher1@school.ac.th",
			Password:   "secret123",
			Department: "IT",
		}).
		Return(&usecase.ProvisionOutput{User: created}, nil)

	c, rec := jsonContext(http.MethodPost, "/admin/users",
		`{"role":"teacher","name":"Teacher One","username":"teacher1","email":"teacher1@school.ac.th","password":"secret123","department":"IT"}`)

	require.NoError(t, handler.CreateStaffUser(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), created.Email)
}

func TestProvisionHandler_CreateStaffUser_RejectsInvalidRole(t *testing.T) {
	provisionUC := mockusecase.NewMockProvisionUsecase(t)
	handler := NewProvisionHandler(provisionUC)

	// Rejected at the delivery layer; the usecase is never called.
	c, _ := jsonContext(http.MethodPost, "/admin/users",
		`{"role":"student","name":"X","username":"x1","email":"x@school.ac.th","password":"secret123","department":"IT"}`)

	err := handler.CreateStaffUser(c)

	var got *domainerrors.ValidationError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, []string{"role"}, violatedFields(got))
}

func TestProvisionHandler_CreateStaffUser_RequiresRoleDependentFields(t *testing.T) {
	provisionUC := mockusecase.NewMockProvisionUsecase(t)
	handler := NewProvisionHandler(provisionUC)

	c, _ := jsonContext(http.MethodPost, "/admin/users",
		`{"role":"workplace","name":"Workplace One","username":"wp1","email":"wp1@company.co.th","password":"secret123"}`)

	err := handler.CreateStaffUser(c)

	var got *domainerrors.ValidationError
	require.ErrorAs(t, err, &got)
	assert.ElementsMatch(t, []string{"companyName", "contactName"}, violatedFields(got))
}

func TestProvisionHandler_CreateStaffUser_PropagatesValidationError(t *testing.T) {
	provisionUC := mockusecase.NewMockProvisionUsecase(t)
	handler := NewProvisionHandler(provisionUC)

	validationErr := domainerrors.NewValidationError(
		domainerrors.FieldViolation{Field: "password", Reason: "must contain an uppercase letter"},
	)
	provisionUC.EXPECT().
		CreateStaffUser(mock.Anything, mock.Anything).
		Return(nil, validationErr)

	// Passes the request-shape checks, fails the usecase's own validation.
	c, _ := jsonContext(http.MethodPost, "/admin/users",
		`{"role":"teacher","name":"Teacher One","username":"teacher1","email":"teacher1@school.ac.th","password":"secret123","department":"IT"}`)

	err := handler.CreateStaffUser(c)

	var got *domainerrors.ValidationError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, validationErr.Violations(), got.Violations())
}

func TestProvisionHandler_CreateStudent_PassesActor(t *testing.T) {
	provisionUC := mockusecase.NewMockProvisionUsecase(t)
	handler := NewProvisionHandler(provisionUC)

	actor := sessionUser(entity.RoleTeacher)
	created := &entity.User{
		ID:       uuid.New(),
		Name:     "Student One",
		Email:    "student1@school.ac.th",
		Username: "6501234",
		Role:     entity.RoleStudent,
		Active:   true,
	}

	provisionUC.EXPECT().
		CreateStudent(mock.Anything, actor, usecase.CreateStudentInput{
			Name:          "Student One",
			Email:         "student1@school.ac.th",
			Password:      "secret123",
			StudentNumber: "6501234",
			Level:         "ปวช.",
			Year:          2,
			Department:    "IT",
			Classroom:     "2/1",
		}).
		Return(&usecase.ProvisionOutput{User: created}, nil)

	c, rec := jsonContext(http.MethodPost, "/teacher/students",
		`{"name":"Student One","email":"student1@school.ac.th","password":"secret123","studentId":"6501234","level":"ปวช.","year":2,"department":"IT","classroom":"2/1"}`)
	c.Set(middleware.ContextKeyUser, actor)

	require.NoError(t, handler.CreateStudent(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "6501234")
}

func TestProvisionHandler_CreateStudent_ListsAllMissingFields(t *testing.T) {
	provisionUC := mockusecase.NewMockProvisionUsecase(t)
	handler := NewProvisionHandler(provisionUC)

	c, _ := jsonContext(http.MethodPost, "/teacher/students", `{}`)
	c.Set(middleware.ContextKeyUser, sessionUser(entity.RoleTeacher))

	err := handler.CreateStudent(c)

	var got *domainerrors.ValidationError
	require.ErrorAs(t, err, &got)
	assert.ElementsMatch(t,
		[]string{"name", "email", "password", "studentNumber", "level", "year", "department", "classroom"},
		violatedFields(got))
}

func TestProvisionHandler_CreateStudent_DuplicateStudentNumber(t *testing.T) {
	provisionUC := mockusecase.NewMockProvisionUsecase(t)
	handler := NewProvisionHandler(provisionUC)

	provisionUC.EXPECT().
		CreateStudent(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrStudentNumberTaken)

	c, _ := jsonContext(http.MethodPost, "/teacher/students",
		`{"name":"Student One","email":"student1@school.ac.th","password":"secret123","studentId":"6501234","level":"ปวช.","year":2,"department":"IT","classroom":"2/1"}`)
	c.Set(middleware.ContextKeyUser, sessionUser(entity.RoleTeacher))

	assert.ErrorIs(t, handler.CreateStudent(c), domainerrors.ErrStudentNumberTaken)
}
