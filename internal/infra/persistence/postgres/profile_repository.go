package postgres

import (
	"context"
	"strings"

	"internhub/internal/domain/entity"
	domainerrors "internhub/internal/domain/errors"
	"internhub/internal/domain/repository"
	"internhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// --- Teacher profiles ---

type teacherProfileRepository struct {
	db *gorm.DB
}

// NewTeacherProfileRepository is the constructor for teacherProfileRepository.
func NewTeacherProfileRepository(db *gorm.DB) repository.TeacherProfileRepository {
	return &teacherProfileRepository{db: db}
}

// FindByID retrieves a teacher profile by its row id.
func (repo *teacherProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TeacherProfile, error) {
	var m model.TeacherProfileModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find teacher profile by id")
	}

	return toTeacherProfileDomain(&m), nil
}

// FindByUserID retrieves the teacher profile owned by the given user.
func (repo *teacherProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.TeacherProfile, error) {
	var m model.TeacherProfileModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find teacher profile by user id")
	}

	return toTeacherProfileDomain(&m), nil
}

// Create persists a new teacher profile.
func (repo *teacherProfileRepository) Create(ctx context.Context, profile *entity.TeacherProfile) error {
	m := fromTeacherProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("teacher profile email or user already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create teacher profile")
	}

	profile.ID = m.ID
	profile.CreatedAt = m.CreatedAt
	profile.UpdatedAt = m.UpdatedAt

	return nil
}

func toTeacherProfileDomain(data *model.TeacherProfileModel) *entity.TeacherProfile {
	if data == nil {
		return nil
	}

	return &entity.TeacherProfile{
		ID:         data.ID,
		UserID:     data.UserID,
		Name:       data.Name,
		Email:      data.Email,
		Phone:      data.Phone,
		Department: data.Department,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromTeacherProfileDomain(data *entity.TeacherProfile) *model.TeacherProfileModel {
	if data == nil {
		return nil
	}

	return &model.TeacherProfileModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Name:       data.Name,
		Email:      strings.ToLower(data.Email),
		Phone:      data.Phone,
		Department: data.Department,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// --- Student profiles ---

type studentProfileRepository struct {
	db *gorm.DB
}

// NewStudentProfileRepository is the constructor for studentProfileRepository.
func NewStudentProfileRepository(db *gorm.DB) repository.StudentProfileRepository {
	return &studentProfileRepository{db: db}
}

// FindByID retrieves a student profile by its row id.
func (repo *studentProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.StudentProfile, error) {
	var m model.StudentProfileModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find student profile by id")
	}

	return toStudentProfileDomain(&m), nil
}

// FindByUserID retrieves the student profile owned by the given user.
func (repo *studentProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.StudentProfile, error) {
	var m model.StudentProfileModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find student profile by user id")
	}

	return toStudentProfileDomain(&m), nil
}

// FindByStudentNumber retrieves a student profile by its natural key.
// Student numbers are stored verbatim but matched case-insensitively,
// because they double as login usernames.
func (repo *studentProfileRepository) FindByStudentNumber(ctx context.Context, studentNumber string) (*entity.StudentProfile, error) {
	needle := strings.ToLower(strings.TrimSpace(studentNumber))

	var m model.StudentProfileModel
	if err := repo.db.WithContext(ctx).Where("LOWER(student_number) = ?", needle).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find student profile by student number")
	}

	return toStudentProfileDomain(&m), nil
}

// ExistsByStudentNumber reports whether the natural key is already taken.
func (repo *studentProfileRepository) ExistsByStudentNumber(ctx context.Context, studentNumber string) (bool, error) {
	needle := strings.ToLower(strings.TrimSpace(studentNumber))

	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.StudentProfileModel{}).
		Where("LOWER(student_number) = ?", needle).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check student number existence")
	}

	return count > 0, nil
}

// Create persists a new student profile.
func (repo *studentProfileRepository) Create(ctx context.Context, profile *entity.StudentProfile) error {
	m := fromStudentProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrStudentNumberTaken.WrapMessage("student number or email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create student profile")
	}

	profile.ID = m.ID
	profile.CreatedAt = m.CreatedAt
	profile.UpdatedAt = m.UpdatedAt

	return nil
}

func toStudentProfileDomain(data *model.StudentProfileModel) *entity.StudentProfile {
	if data == nil {
		return nil
	}

	return &entity.StudentProfile{
		ID:            data.ID,
		UserID:        data.UserID,
		Name:          data.Name,
		Email:         data.Email,
		Phone:         data.Phone,
		StudentNumber: data.StudentNumber,
		Level:         entity.StudentLevel(data.Level),
		Year:          data.Year,
		Department:    data.Department,
		Classroom:     data.Classroom,
		TeacherID:     data.TeacherID,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromStudentProfileDomain(data *entity.StudentProfile) *model.StudentProfileModel {
	if data == nil {
		return nil
	}

	return &model.StudentProfileModel{
		ID:            data.ID,
		UserID:        data.UserID,
		Name:          data.Name,
		Email:         strings.ToLower(data.Email),
		Phone:         data.Phone,
		StudentNumber: data.StudentNumber,
		Level:         string(data.Level),
		Year:          data.Year,
		Department:    data.Department,
		Classroom:     data.Classroom,
		TeacherID:     data.TeacherID,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// --- Workplace profiles ---

type workplaceProfileRepository struct {
	db *gorm.DB
}

// NewWorkplaceProfileRepository is the constructor for workplaceProfileRepository.
func NewWorkplaceProfileRepository(db *gorm.DB) repository.WorkplaceProfileRepository {
	return &workplaceProfileRepository{db: db}
}

// FindByID retrieves a workplace profile by its row id.
func (repo *workplaceProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.WorkplaceProfile, error) {
	var m model.WorkplaceProfileModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find workplace profile by id")
	}

	return toWorkplaceProfileDomain(&m), nil
}

// FindByUserID retrieves the workplace profile owned by the given user.
func (repo *workplaceProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.WorkplaceProfile, error) {
	var m model.WorkplaceProfileModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find workplace profile by user id")
	}

	return toWorkplaceProfileDomain(&m), nil
}

// Create persists a new workplace profile.
func (repo *workplaceProfileRepository) Create(ctx context.Context, profile *entity.WorkplaceProfile) error {
	m := fromWorkplaceProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("workplace profile user already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create workplace profile")
	}

	profile.ID = m.ID
	profile.CreatedAt = m.CreatedAt
	profile.UpdatedAt = m.UpdatedAt

	return nil
}

func toWorkplaceProfileDomain(data *model.WorkplaceProfileModel) *entity.WorkplaceProfile {
	if data == nil {
		return nil
	}

	return &entity.WorkplaceProfile{
		ID:              data.ID,
		UserID:          data.UserID,
		CompanyName:     data.CompanyName,
		BranchName:      data.BranchName,
		ContactName:     data.ContactName,
		ContactEmail:    data.ContactEmail,
		ContactPhone:    data.ContactPhone,
		ContactPosition: data.ContactPosition,
		Address:         data.Address,
		Status:          entity.WorkplaceStatus(data.Status),
		Notes:           data.Notes,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromWorkplaceProfileDomain(data *entity.WorkplaceProfile) *model.WorkplaceProfileModel {
	if data == nil {
		return nil
	}

	status := data.Status
	if status == "" {
		status = entity.WorkplaceStatusPending
	}

	return &model.WorkplaceProfileModel{
		ID:              data.ID,
		UserID:          data.UserID,
		CompanyName:     data.CompanyName,
		BranchName:      data.BranchName,
		ContactName:     data.ContactName,
		ContactEmail:    strings.ToLower(data.ContactEmail),
		ContactPhone:    data.ContactPhone,
		ContactPosition: data.ContactPosition,
		Address:         data.Address,
		Status:          string(status),
		Notes:           data.Notes,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// --- Admin profiles ---

type adminProfileRepository struct {
	db *gorm.DB
}

// NewAdminProfileRepository is the constructor for adminProfileRepository.
func NewAdminProfileRepository(db *gorm.DB) repository.AdminProfileRepository {
	return &adminProfileRepository{db: db}
}

// FindByUserID retrieves the admin profile owned by the given user.
func (repo *adminProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.AdminProfile, error) {
	var m model.AdminProfileModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin profile by user id")
	}

	return toAdminProfileDomain(&m), nil
}

// Create persists a new admin profile.
func (repo *adminProfileRepository) Create(ctx context.Context, profile *entity.AdminProfile) error {
	m := fromAdminProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("admin profile email or user already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin profile")
	}

	profile.ID = m.ID
	profile.CreatedAt = m.CreatedAt
	profile.UpdatedAt = m.UpdatedAt

	return nil
}

func toAdminProfileDomain(data *model.AdminProfileModel) *entity.AdminProfile {
	if data == nil {
		return nil
	}

	return &entity.AdminProfile{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Email:     data.Email,
		Username:  data.Username,
		Active:    data.Active,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromAdminProfileDomain(data *entity.AdminProfile) *model.AdminProfileModel {
	if data == nil {
		return nil
	}

	return &model.AdminProfileModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Email:     strings.ToLower(data.Email),
		Username:  strings.ToLower(data.Username),
		Active:    data.Active,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
