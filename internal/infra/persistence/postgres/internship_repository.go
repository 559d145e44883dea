package postgres

import (
	"context"

	"internhub/internal/domain/entity"
	"internhub/internal/domain/repository"
	"internhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// internshipRepository implements the domain.InternshipRepository interface using GORM.
type internshipRepository struct {
	db *gorm.DB
}

// NewInternshipRepository is the constructor for internshipRepository.
func NewInternshipRepository(db *gorm.DB) repository.InternshipRepository {
	return &internshipRepository{db: db}
}

// ListByProfile lists placements in which the given profile participates.
func (repo *internshipRepository) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.Internship, error) {
	var models []model.InternshipModel
	err := repo.db.WithContext(ctx).
		Where("student_id = ? OR teacher_id = ? OR workplace_id = ?", profileID, profileID, profileID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list internships by profile")
	}

	internships := make([]*entity.Internship, 0, len(models))
	for i := range models {
		internships = append(internships, toInternshipDomain(&models[i]))
	}

	return internships, nil
}

func toInternshipDomain(data *model.InternshipModel) *entity.Internship {
	if data == nil {
		return nil
	}

	return &entity.Internship{
		ID:          data.ID,
		StudentID:   data.StudentID,
		TeacherID:   data.TeacherID,
		WorkplaceID: data.WorkplaceID,
		Status:      entity.InternshipStatus(data.Status),
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
