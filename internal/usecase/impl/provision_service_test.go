package impl

import (
	"context"
	"testing"

	"internhub/config"
	"internhub/internal/domain/entity"
	domainerrors "internhub/internal/domain/errors"
	"internhub/internal/domain/repository"
	mockRepo "internhub/internal/mocks/repository"
	mockSvc "internhub/internal/mocks/service"
	"internhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// provisionServiceFixtures holds all test dependencies for provisioning tests.
type provisionServiceFixtures struct {
	service     usecase.ProvisionUsecase
	txManager   *mockRepo.MockTransactionManager
	userRepo    *mockRepo.MockUserRepository
	teacherRepo *mockRepo.MockTeacherProfileRepository
	studentRepo *mockRepo.MockStudentProfileRepository
	hasher      *mockSvc.MockPasswordHasher
}

func createTestProvisionService(t *testing.T) provisionServiceFixtures {
	return createTestProvisionServiceWithConfig(t, &config.Config{})
}

func createTestProvisionServiceWithConfig(t *testing.T, cfg *config.Config) provisionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	teacherRepo := mockRepo.NewMockTeacherProfileRepository(t)
	studentRepo := mockRepo.NewMockStudentProfileRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	svc := NewProvisionService(ProvisionServiceParams{
		Config:      cfg,
		TxManager:   txManager,
		UserRepo:    userRepo,
		TeacherRepo: teacherRepo,
		StudentRepo: studentRepo,
		Hasher:      hasher,
		Logger:      newDiscardLogger(),
	})

	return provisionServiceFixtures{
		service:     svc,
		txManager:   txManager,
		userRepo:    userRepo,
		teacherRepo: teacherRepo,
		studentRepo: studentRepo,
		hasher:      hasher,
	}
}

func violationFields(t *testing.T, err error) []string {
	t.Helper()

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))

	fields := make([]string, 0, len(validationErr.Violations()))
	for _, v := range validationErr.Violations() {
		fields = append(fields, v.Field)
	}

	return fields
}

func TestProvisionService_CreateStaffUser_Teacher_Success(t *testing.T) {
	fx := createTestProvisionService(t)

	ctx := context.Background()
	input := usecase.CreateStaffInput{
		Role:       entity.RoleTeacher,
		Name:       "Teacher One",
		Username:   "Teacher1",
		Email:      "Teacher1@School.ac.th",
		Password:   "Password123!",
		Department: "IT",
	}

	profileID := uuid.New()

	fx.userRepo.EXPECT().ExistsByEmailOrUsername(ctx, input.Email, input.Username).Return(false, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockTeacherRepo := mockRepo.NewMockTeacherProfileRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewTeacherProfileRepository().Return(mockTeacherRepo)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			mockTeacherRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.TeacherProfile")).
				Run(func(ctx context.Context, profile *entity.TeacherProfile) {
					profile.ID = profileID
				}).
				Return(nil)

			mockUserRepo.EXPECT().
				LinkProfile(ctx, mock.AnythingOfType("uuid.UUID"), entity.ProfileRef{Kind: entity.ProfileKindTeacher, ID: profileID}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.CreateStaffUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleTeacher, output.User.Role)
	// Identifiers are normalized to lowercase.
	assert.Equal(t, "teacher1@school.ac.th", output.User.Email)
	assert.Equal(t, "teacher1", output.User.Username)
	assert.Equal(t, profileID, output.User.Profile.ID)
	assert.Equal(t, entity.ProfileKindTeacher, output.User.Profile.Kind)
}

func TestProvisionService_CreateStaffUser_Workplace_Success(t *testing.T) {
	fx := createTestProvisionService(t)

	ctx := context.Background()
	input := usecase.CreateStaffInput{
		Role:        entity.RoleWorkplace,
		Name:        "Acme Supervisor",
		Username:    "acme",
		Email:       "hr@acme.example",
		Password:    "Password123!",
		CompanyName: "Acme Co",
		ContactName: "Somchai",
	}

	fx.userRepo.EXPECT().ExistsByEmailOrUsername(ctx, input.Email, input.Username).Return(false, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockWorkplaceRepo := mockRepo.NewMockWorkplaceProfileRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewWorkplaceProfileRepository().Return(mockWorkplaceRepo)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			mockWorkplaceRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.WorkplaceProfile")).
				Run(func(ctx context.Context, profile *entity.WorkplaceProfile) {
					// New partnerships always start pending.
					assert.Equal(t, entity.WorkplaceStatusPending, profile.Status)
					profile.ID = uuid.New()
				}).
				Return(nil)

			mockUserRepo.EXPECT().
				LinkProfile(ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("entity.ProfileRef")).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.CreateStaffUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.ProfileKindWorkplace, output.User.Profile.Kind)
}

func TestProvisionService_CreateStaffUser_CollectsAllViolations(t *testing.T) {
	fx := createTestProvisionService(t)

	output, err := fx.service.CreateStaffUser(context.Background(), usecase.CreateStaffInput{
		Role:     entity.RoleTeacher,
		Email:    "not-an-email",
		Password: "short",
	})

	assert.Nil(t, output)

	fields := violationFields(t, err)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "username")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "department")
}

func TestProvisionService_PasswordPolicy_ConfiguredMinLength(t *testing.T) {
	cfg := &config.Config{
		PasswordStrength: &config.PasswordStrengthConfig{MinLength: 12},
	}
	fx := createTestProvisionServiceWithConfig(t, cfg)

	output, err := fx.service.CreateStaffUser(context.Background(), usecase.CreateStaffInput{
		Role:       entity.RoleTeacher,
		Name:       "Teacher One",
		Username:   "teacher1",
		Email:      "teacher1@school.ac.th",
		Password:   "elevenchars",
		Department: "IT",
	})

	assert.Nil(t, output)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Len(t, validationErr.Violations(), 1)
	assert.Equal(t, "password", validationErr.Violations()[0].Field)
	assert.Equal(t, "must be at least 12 characters", validationErr.Violations()[0].Reason)
}

func TestProvisionService_PasswordPolicy_CharacterClasses(t *testing.T) {
	cfg := &config.Config{
		PasswordStrength: &config.PasswordStrengthConfig{
			RequireUppercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		},
	}
	fx := createTestProvisionServiceWithConfig(t, cfg)

	output, err := fx.service.CreateStaffUser(context.Background(), usecase.CreateStaffInput{
		Role:       entity.RoleTeacher,
		Name:       "Teacher One",
		Username:   "teacher1",
		Email:      "teacher1@school.ac.th",
		Password:   "alllowercase",
		Department: "IT",
	})

	assert.Nil(t, output)

	reasons := make([]string, 0, 3)
	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	for _, v := range validationErr.Violations() {
		assert.Equal(t, "password", v.Field)
		reasons = append(reasons, v.Reason)
	}
	assert.ElementsMatch(t, []string{
		"must contain an uppercase letter",
		"must contain a digit",
		"must contain a special character",
	}, reasons)
}

func TestProvisionService_PasswordPolicy_ConfigCannotWeakenFloor(t *testing.T) {
	cfg := &config.Config{
		PasswordStrength: &config.PasswordStrengthConfig{MinLength: 4},
	}
	fx := createTestProvisionServiceWithConfig(t, cfg)

	output, err := fx.service.CreateStaffUser(context.Background(), usecase.CreateStaffInput{
		Role:       entity.RoleTeacher,
		Name:       "Teacher One",
		Username:   "teacher1",
		Email:      "teacher1@school.ac.th",
		Password:   "seven77",
		Department: "IT",
	})

	assert.Nil(t, output)
	assert.Contains(t, violationFields(t, err), "password")
}

func TestProvisionService_CreateStaffUser_RejectsUnknownRole(t *testing.T) {
	fx := createTestProvisionService(t)

	output, err := fx.service.CreateStaffUser(context.Background(), usecase.CreateStaffInput{
		Role:     entity.RoleStudent,
		Name:     "Somebody",
		Username: "somebody",
		Email:    "somebody@example.com",
		Password: "Password123!",
	})

	assert.Nil(t, output)
	assert.Contains(t, violationFields(t, err), "role")
}

func TestProvisionService_CreateStaffUser_DuplicateRejected(t *testing.T) {
	fx := createTestProvisionService(t)

	ctx := context.Background()
	input := usecase.CreateStaffInput{
		Role:       entity.RoleTeacher,
		Name:       "Teacher One",
		Username:   "teacher1",
		Email:      "teacher1@school.ac.th",
		Password:   "Password123!",
		Department: "IT",
	}

	fx.userRepo.EXPECT().ExistsByEmailOrUsername(ctx, input.Email, input.Username).Return(true, nil)

	output, err := fx.service.CreateStaffUser(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestProvisionService_CreateStaffUser_RollbackOnProfileFailure(t *testing.T) {
	fx := createTestProvisionService(t)

	ctx := context.Background()
	input := usecase.CreateStaffInput{
		Role:       entity.RoleTeacher,
		Name:       "Teacher One",
		Username:   "teacher1",
		Email:      "teacher1@school.ac.th",
		Password:   "Password123!",
		Department: "IT",
	}

	fx.userRepo.EXPECT().ExistsByEmailOrUsername(ctx, input.Email, input.Username).Return(false, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockTeacherRepo := mockRepo.NewMockTeacherProfileRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewTeacherProfileRepository().Return(mockTeacherRepo)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			// The profile write fails; the manager rolls the user row back
			// with it, so LinkProfile must never run.
			mockTeacherRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.TeacherProfile")).
				Return(errors.New("insert failed"))

			return fn(mockFactory)
		})

	output, err := fx.service.CreateStaffUser(ctx, input)

	assert.Nil(t, output)
	assert.Error(t, err)
}

func TestProvisionService_CreateStudent_Success(t *testing.T) {
	fx := createTestProvisionService(t)

	ctx := context.Background()
	actor := activeUser(entity.RoleTeacher)
	supervisor := &entity.TeacherProfile{ID: uuid.New(), UserID: actor.ID}
	input := usecase.CreateStudentInput{
		Name:          "Student One",
		Email:         "student1@school.ac.th",
		Password:      "Password123!",
		StudentNumber: "6501234",
		Level:         string(entity.LevelVocational),
		Year:          2,
		Department:    "IT",
		Classroom:     "IT-2A",
	}

	fx.teacherRepo.EXPECT().FindByUserID(ctx, actor.ID).Return(supervisor, nil)
	fx.userRepo.EXPECT().ExistsByEmailOrUsername(ctx, input.Email, "6501234").Return(false, nil)
	fx.studentRepo.EXPECT().ExistsByStudentNumber(ctx, input.StudentNumber).Return(false, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockStudentRepo := mockRepo.NewMockStudentProfileRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewStudentProfileRepository().Return(mockStudentRepo)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			mockStudentRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.StudentProfile")).
				Run(func(ctx context.Context, profile *entity.StudentProfile) {
					assert.Equal(t, supervisor.ID, profile.TeacherID)
					assert.Equal(t, "6501234", profile.StudentNumber)
					profile.ID = uuid.New()
				}).
				Return(nil)

			mockUserRepo.EXPECT().
				LinkProfile(ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("entity.ProfileRef")).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.CreateStudent(ctx, actor, input)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleStudent, output.User.Role)
	// The student number doubles as the login username.
	assert.Equal(t, "6501234", output.User.Username)
	assert.Equal(t, entity.ProfileKindStudent, output.User.Profile.Kind)
}

func TestProvisionService_CreateStudent_NilActor(t *testing.T) {
	fx := createTestProvisionService(t)

	output, err := fx.service.CreateStudent(context.Background(), nil, usecase.CreateStudentInput{})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionMissing))
}

func TestProvisionService_CreateStudent_ActorWithoutTeacherProfile(t *testing.T) {
	fx := createTestProvisionService(t)

	ctx := context.Background()
	actor := activeUser(entity.RoleTeacher)

	fx.teacherRepo.EXPECT().FindByUserID(ctx, actor.ID).Return(nil, repository.ErrProfileNotFound)

	output, err := fx.service.CreateStudent(ctx, actor, usecase.CreateStudentInput{})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestProvisionService_CreateStudent_YearOutOfRangeForLevel(t *testing.T) {
	fx := createTestProvisionService(t)

	ctx := context.Background()
	actor := activeUser(entity.RoleTeacher)
	supervisor := &entity.TeacherProfile{ID: uuid.New(), UserID: actor.ID}

	fx.teacherRepo.EXPECT().FindByUserID(ctx, actor.ID).Return(supervisor, nil)

	output, err := fx.service.CreateStudent(ctx, actor, usecase.CreateStudentInput{
		Name:          "Student One",
		Email:         "student1@school.ac.th",
		Password:      "Password123!",
		StudentNumber: "6501234",
		Level:         string(entity.LevelHighVocational),
		Year:          3,
		Department:    "IT",
		Classroom:     "IT-3A",
	})

	assert.Nil(t, output)
	assert.Contains(t, violationFields(t, err), "year")
}

func TestProvisionService_CreateStudent_StudentNumberTaken(t *testing.T) {
	fx := createTestProvisionService(t)

	ctx := context.Background()
	actor := activeUser(entity.RoleTeacher)
	supervisor := &entity.TeacherProfile{ID: uuid.New(), UserID: actor.ID}
	input := usecase.CreateStudentInput{
		Name:          "Student One",
		Email:         "student1@school.ac.th",
		Password:      "Password123!",
		StudentNumber: "6501234",
		Level:         string(entity.LevelVocational),
		Year:          1,
		Department:    "IT",
		Classroom:     "IT-1A",
	}

	fx.teacherRepo.EXPECT().FindByUserID(ctx, actor.ID).Return(supervisor, nil)
	fx.userRepo.EXPECT().ExistsByEmailOrUsername(ctx, input.Email, "6501234").Return(false, nil)
	fx.studentRepo.EXPECT().ExistsByStudentNumber(ctx, input.StudentNumber).Return(true, nil)

	output, err := fx.service.CreateStudent(ctx, actor, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrStudentNumberTaken))
}

func TestProvisionService_EnsureAdmin_SkipsWhenExists(t *testing.T) {
	fx := createTestProvisionService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().ExistsByEmailOrUsername(ctx, "admin@school.ac.th", "admin").Return(true, nil)

	err := fx.service.EnsureAdmin(ctx, "Admin", "admin", "admin@school.ac.th", "Password123!")

	require.NoError(t, err)
}

func TestProvisionService_EnsureAdmin_CreatesWhenMissing(t *testing.T) {
	fx := createTestProvisionService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().ExistsByEmailOrUsername(ctx, "admin@school.ac.th", "admin").Return(false, nil)
	fx.hasher.EXPECT().Hash("Password123!").Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAdminRepo := mockRepo.NewMockAdminProfileRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewAdminProfileRepository().Return(mockAdminRepo)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, entity.RoleAdmin, user.Role)
					user.ID = uuid.New()
				}).
				Return(nil)

			mockAdminRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.AdminProfile")).
				Run(func(ctx context.Context, profile *entity.AdminProfile) {
					profile.ID = uuid.New()
				}).
				Return(nil)

			mockUserRepo.EXPECT().
				LinkProfile(ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("entity.ProfileRef")).
				Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.EnsureAdmin(ctx, "Admin", "admin", "admin@school.ac.th", "Password123!")

	require.NoError(t, err)
}

func TestProvisionService_EnsureAdmin_LosesRaceGracefully(t *testing.T) {
	fx := createTestProvisionService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().ExistsByEmailOrUsername(ctx, "admin@school.ac.th", "admin").Return(false, nil)
	fx.hasher.EXPECT().Hash("Password123!").Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.Wrap(domainerrors.ErrUserAlreadyExists, "duplicate key"))

	err := fx.service.EnsureAdmin(ctx, "Admin", "admin", "admin@school.ac.th", "Password123!")

	require.NoError(t, err)
}
