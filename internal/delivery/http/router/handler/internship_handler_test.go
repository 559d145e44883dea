package handler

import (
	"net/http"
	"testing"

	"internhub/internal/delivery/http/middleware"
	"internhub/internal/domain/entity"
	domainerrors "internhub/internal/domain/errors"
	mockusecase "internhub/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInternshipHandler_ListMine(t *testing.T) {
	internshipUC := mockusecase.NewMockInternshipUsecase(t)
	handler := NewInternshipHandler(internshipUC)

	actor := sessionUser(entity.RoleStudent)
	placement := &entity.Internship{
		ID:          uuid.New(),
		StudentID:   uuid.New(),
		TeacherID:   uuid.New(),
		WorkplaceID: uuid.New(),
		Status:      entity.InternshipStatusActive,
	}

	internshipUC.EXPECT().
		ListMine(mock.Anything, actor).
		Return([]*entity.Internship{placement}, nil)

	c, rec := jsonContext(http.MethodGet, "/internships", "")
	c.Set(middleware.ContextKeyUser, actor)

	require.NoError(t, handler.ListMine(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), placement.ID.String())
	assert.Contains(t, rec.Body.String(), string(entity.InternshipStatusActive))
}

func TestInternshipHandler_ListMine_EmptyListIsAnArray(t *testing.T) {
	internshipUC := mockusecase.NewMockInternshipUsecase(t)
	handler := NewInternshipHandler(internshipUC)

	actor := sessionUser(entity.RoleAdmin)
	internshipUC.EXPECT().
		ListMine(mock.Anything, actor).
		Return([]*entity.Internship{}, nil)

	c, rec := jsonContext(http.MethodGet, "/internships", "")
	c.Set(middleware.ContextKeyUser, actor)

	require.NoError(t, handler.ListMine(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestInternshipHandler_ListMine_WithoutSession(t *testing.T) {
	internshipUC := mockusecase.NewMockInternshipUsecase(t)
	handler := NewInternshipHandler(internshipUC)

	internshipUC.EXPECT().
		ListMine(mock.Anything, (*entity.User)(nil)).
		Return(nil, domainerrors.ErrSessionMissing)

	c, _ := jsonContext(http.MethodGet, "/internships", "")

	assert.ErrorIs(t, handler.ListMine(c), domainerrors.ErrSessionMissing)
}
