package impl

import (
	"context"
	"testing"

	"internhub/internal/domain/entity"
	domainerrors "internhub/internal/domain/errors"
	"internhub/internal/domain/repository"
	"internhub/internal/domain/service"
	mockRepo "internhub/internal/mocks/repository"
	mockSvc "internhub/internal/mocks/service"
	"internhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service       usecase.AuthUsecase
	userRepo      *mockRepo.MockUserRepository
	adminRepo     *mockRepo.MockAdminProfileRepository
	teacherRepo   *mockRepo.MockTeacherProfileRepository
	studentRepo   *mockRepo.MockStudentProfileRepository
	workplaceRepo *mockRepo.MockWorkplaceProfileRepository
	hasher        *mockSvc.MockPasswordHasher
	tokenService  *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	adminRepo := mockRepo.NewMockAdminProfileRepository(t)
	teacherRepo := mockRepo.NewMockTeacherProfileRepository(t)
	studentRepo := mockRepo.NewMockStudentProfileRepository(t)
	workplaceRepo := mockRepo.NewMockWorkplaceProfileRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewAuthService(AuthServiceParams{
		UserRepo:      userRepo,
		AdminRepo:     adminRepo,
		TeacherRepo:   teacherRepo,
		StudentRepo:   studentRepo,
		WorkplaceRepo: workplaceRepo,
		Hasher:        hasher,
		TokenService:  tokenService,
		Logger:        newDiscardLogger(),
	})

	return authServiceFixtures{
		service:       svc,
		userRepo:      userRepo,
		adminRepo:     adminRepo,
		teacherRepo:   teacherRepo,
		studentRepo:   studentRepo,
		workplaceRepo: workplaceRepo,
		hasher:        hasher,
		tokenService:  tokenService,
	}
}

func activeUser(role entity.Role) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Name:         "Test User",
		Email:        "test@example.com",
		Username:     "testuser",
		PasswordHash: "hashed_password",
		Role:         role,
		Active:       true,
	}
}

func TestAuthService_Login_ByUsername_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeUser(entity.RoleTeacher)
	pair := &service.TokenPair{AccessToken: "access", RefreshToken: "refresh"}

	fx.userRepo.EXPECT().FindByLogin(ctx, "testuser").Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().IssuePair(user).Return(pair, nil)
	fx.userRepo.EXPECT().StampLastLogin(ctx, user.ID).Return(nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Identifier: "testuser", Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, user.ID, output.User.ID)
	assert.Equal(t, "access", output.Pair.AccessToken)
	assert.Equal(t, "refresh", output.Pair.RefreshToken)
}

func TestAuthService_Login_ByStudentNumber_Fallback(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeUser(entity.RoleStudent)
	profile := &entity.StudentProfile{ID: uuid.New(), UserID: user.ID, StudentNumber: "6501234"}
	pair := &service.TokenPair{AccessToken: "access", RefreshToken: "refresh"}

	fx.userRepo.EXPECT().FindByLogin(ctx, "6501234").Return(nil, repository.ErrUserNotFound)
	fx.studentRepo.EXPECT().FindByStudentNumber(ctx, "6501234").Return(profile, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().IssuePair(user).Return(pair, nil)
	fx.userRepo.EXPECT().StampLastLogin(ctx, user.ID).Return(nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Identifier: "6501234", Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestAuthService_Login_MixedCaseIdentifierIsLowered(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeUser(entity.RoleStudent)
	profile := &entity.StudentProfile{ID: uuid.New(), UserID: user.ID, StudentNumber: "stu001"}
	pair := &service.TokenPair{AccessToken: "access", RefreshToken: "refresh"}

	// The store holds lowercase identifiers, so the lookups must receive
	// the lowered form no matter how the caller typed it.
	fx.userRepo.EXPECT().FindByLogin(ctx, "stu001").Return(nil, repository.ErrUserNotFound)
	fx.studentRepo.EXPECT().FindByStudentNumber(ctx, "stu001").Return(profile, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().IssuePair(user).Return(pair, nil)
	fx.userRepo.EXPECT().StampLastLogin(ctx, user.ID).Return(nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Identifier: "  STU001 ", Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestAuthService_Login_LoadsLinkedProfile(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeUser(entity.RoleTeacher)
	profileID := uuid.New()
	user.Profile = entity.ProfileRef{Kind: entity.ProfileKindTeacher, ID: profileID}
	profile := &entity.TeacherProfile{ID: profileID, UserID: user.ID, Department: "IT"}
	pair := &service.TokenPair{AccessToken: "access", RefreshToken: "refresh"}

	fx.userRepo.EXPECT().FindByLogin(ctx, "testuser").Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", user.PasswordHash).Return(true)
	fx.teacherRepo.EXPECT().FindByID(ctx, profileID).Return(profile, nil)
	fx.tokenService.EXPECT().IssuePair(user).Return(pair, nil)
	fx.userRepo.EXPECT().StampLastLogin(ctx, user.ID).Return(nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Identifier: "testuser", Password: "Password123!"})

	require.NoError(t, err)
	require.NotNil(t, output.User.TeacherProfile)
	assert.Equal(t, "IT", output.User.TeacherProfile.Department)
}

func TestAuthService_Login_ProfileKindDisagreesWithRole(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeUser(entity.RoleTeacher)
	user.Profile = entity.ProfileRef{Kind: entity.ProfileKindStudent, ID: uuid.New()}

	fx.userRepo.EXPECT().FindByLogin(ctx, "testuser").Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", user.PasswordHash).Return(true)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Identifier: "testuser", Password: "Password123!"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileMismatch))
}

func TestAuthService_Login_UnknownIdentifier_GenericError(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByLogin(ctx, "nobody").Return(nil, repository.ErrUserNotFound)
	fx.studentRepo.EXPECT().FindByStudentNumber(ctx, "nobody").Return(nil, repository.ErrProfileNotFound)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Identifier: "nobody", Password: "whatever"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_DeactivatedAccount_GenericError(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeUser(entity.RoleTeacher)
	user.Active = false

	fx.userRepo.EXPECT().FindByLogin(ctx, "testuser").Return(user, nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Identifier: "testuser", Password: "Password123!"})

	assert.Nil(t, output)
	// Deactivation must be indistinguishable from a bad password.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeUser(entity.RoleStudent)

	fx.userRepo.EXPECT().FindByLogin(ctx, "testuser").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Identifier: "testuser", Password: "wrong"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_StampFailureDoesNotFailLogin(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeUser(entity.RoleAdmin)
	pair := &service.TokenPair{AccessToken: "access", RefreshToken: "refresh"}

	fx.userRepo.EXPECT().FindByLogin(ctx, "testuser").Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().IssuePair(user).Return(pair, nil)
	fx.userRepo.EXPECT().StampLastLogin(ctx, user.ID).Return(errors.New("db down"))

	output, err := fx.service.Login(ctx, usecase.LoginInput{Identifier: "testuser", Password: "Password123!"})

	require.NoError(t, err)
	assert.NotNil(t, output)
}

func TestAuthService_Resolve_EmptyToken(t *testing.T) {
	fx := createTestAuthService(t)

	user, err := fx.service.Resolve(context.Background(), "")

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionMissing))
}

func TestAuthService_Resolve_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().VerifyAccess("garbage").Return(nil, errors.New("bad signature"))

	user, err := fx.service.Resolve(context.Background(), "garbage")

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestAuthService_Resolve_UnknownSubject(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	claims := &service.Claims{UserID: uuid.New(), Kind: service.TokenKindAccess}

	fx.tokenService.EXPECT().VerifyAccess("token").Return(claims, nil)
	fx.userRepo.EXPECT().FindByID(ctx, claims.UserID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.Resolve(ctx, "token")

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestAuthService_Resolve_DeactivatedAfterIssue(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeUser(entity.RoleWorkplace)
	user.Active = false
	claims := &service.Claims{UserID: user.ID, Role: user.Role, Kind: service.TokenKindAccess}

	fx.tokenService.EXPECT().VerifyAccess("token").Return(claims, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	resolved, err := fx.service.Resolve(ctx, "token")

	assert.Nil(t, resolved)
	assert.True(t, errors.Is(err, domainerrors.ErrUserInactive))
}

func TestAuthService_Resolve_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeUser(entity.RoleTeacher)
	claims := &service.Claims{UserID: user.ID, Role: user.Role, Kind: service.TokenKindAccess}

	fx.tokenService.EXPECT().VerifyAccess("token").Return(claims, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	resolved, err := fx.service.Resolve(ctx, "token")

	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
}

func TestAuthService_Resolve_LoadsStudentProfile(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeUser(entity.RoleStudent)
	profileID := uuid.New()
	user.Profile = entity.ProfileRef{Kind: entity.ProfileKindStudent, ID: profileID}
	profile := &entity.StudentProfile{ID: profileID, UserID: user.ID, StudentNumber: "6501234"}
	claims := &service.Claims{UserID: user.ID, Role: user.Role, Kind: service.TokenKindAccess}

	fx.tokenService.EXPECT().VerifyAccess("token").Return(claims, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.studentRepo.EXPECT().FindByID(ctx, profileID).Return(profile, nil)

	resolved, err := fx.service.Resolve(ctx, "token")

	require.NoError(t, err)
	require.NotNil(t, resolved.StudentProfile)
	assert.Equal(t, "6501234", resolved.StudentProfile.StudentNumber)
}

func TestAuthService_Resolve_LoadsAdminProfileByUserID(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeUser(entity.RoleAdmin)
	user.Profile = entity.ProfileRef{Kind: entity.ProfileKindAdmin, ID: uuid.New()}
	profile := &entity.AdminProfile{ID: user.Profile.ID, UserID: user.ID, Username: user.Username}
	claims := &service.Claims{UserID: user.ID, Role: user.Role, Kind: service.TokenKindAccess}

	fx.tokenService.EXPECT().VerifyAccess("token").Return(claims, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.adminRepo.EXPECT().FindByUserID(ctx, user.ID).Return(profile, nil)

	resolved, err := fx.service.Resolve(ctx, "token")

	require.NoError(t, err)
	assert.NotNil(t, resolved.AdminProfile)
}

func TestAuthService_Refresh_RotatesBothTokens(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeUser(entity.RoleStudent)
	claims := &service.Claims{UserID: user.ID, Kind: service.TokenKindRefresh}
	rotated := &service.TokenPair{AccessToken: "new_access", RefreshToken: "new_refresh"}

	fx.tokenService.EXPECT().VerifyRefresh("old_refresh").Return(claims, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().IssuePair(user).Return(rotated, nil)

	output, err := fx.service.Refresh(ctx, "old_refresh")

	require.NoError(t, err)
	assert.Equal(t, "new_access", output.Pair.AccessToken)
	assert.Equal(t, "new_refresh", output.Pair.RefreshToken)
	assert.NotEqual(t, "old_refresh", output.Pair.RefreshToken)
}

func TestAuthService_Refresh_LoadsWorkplaceProfile(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeUser(entity.RoleWorkplace)
	profileID := uuid.New()
	user.Profile = entity.ProfileRef{Kind: entity.ProfileKindWorkplace, ID: profileID}
	profile := &entity.WorkplaceProfile{ID: profileID, UserID: user.ID, CompanyName: "Acme Co"}
	claims := &service.Claims{UserID: user.ID, Kind: service.TokenKindRefresh}
	rotated := &service.TokenPair{AccessToken: "new_access", RefreshToken: "new_refresh"}

	fx.tokenService.EXPECT().VerifyRefresh("old_refresh").Return(claims, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.workplaceRepo.EXPECT().FindByID(ctx, profileID).Return(profile, nil)
	fx.tokenService.EXPECT().IssuePair(user).Return(rotated, nil)

	output, err := fx.service.Refresh(ctx, "old_refresh")

	require.NoError(t, err)
	require.NotNil(t, output.User.WorkplaceProfile)
	assert.Equal(t, "Acme Co", output.User.WorkplaceProfile.CompanyName)
}

func TestAuthService_Refresh_EmptyToken(t *testing.T) {
	fx := createTestAuthService(t)

	output, err := fx.service.Refresh(context.Background(), "")

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().VerifyRefresh("garbage").Return(nil, errors.New("bad signature"))

	output, err := fx.service.Refresh(context.Background(), "garbage")

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestAuthService_Refresh_DeactivatedAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeUser(entity.RoleTeacher)
	user.Active = false
	claims := &service.Claims{UserID: user.ID, Kind: service.TokenKindRefresh}

	fx.tokenService.EXPECT().VerifyRefresh("token").Return(claims, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	output, err := fx.service.Refresh(ctx, "token")

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}
