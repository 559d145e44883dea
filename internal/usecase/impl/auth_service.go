// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "internhub/internal/delivery/context"
	"internhub/internal/domain/entity"
	domainerrors "internhub/internal/domain/errors"
	"internhub/internal/domain/repository"
	"internhub/internal/domain/service"
	"internhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo      repository.UserRepository
	adminRepo     repository.AdminProfileRepository
	teacherRepo   repository.TeacherProfileRepository
	studentRepo   repository.StudentProfileRepository
	workplaceRepo repository.WorkplaceProfileRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	logger        *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	AdminRepo     repository.AdminProfileRepository
	TeacherRepo   repository.TeacherProfileRepository
	StudentRepo   repository.StudentProfileRepository
	WorkplaceRepo repository.WorkplaceProfileRepository
	Hasher        service.PasswordHasher
	TokenService  service.TokenService
	Logger        *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:      params.UserRepo,
		adminRepo:     params.AdminRepo,
		teacherRepo:   params.TeacherRepo,
		studentRepo:   params.StudentRepo,
		workplaceRepo: params.WorkplaceRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies credentials and issues a fresh token pair.
// Every credential failure collapses into the same generic error so the
// response never reveals whether the account exists or is deactivated.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.SessionOutput, error) {
	// Identifiers are stored lowercase, so the lookup lowers its input too.
	identifier := strings.ToLower(strings.TrimSpace(input.Identifier))

	srv.log(ctx).Debug("Starting login", slog.String("identifier", identifier))

	user, err := srv.findLoginUser(ctx, identifier)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("identifier", identifier), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if !user.CanAuthenticate() {
		srv.log(ctx).Warn("Login attempt on deactivated account", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if err := srv.loadProfile(ctx, user); err != nil {
		return nil, err
	}

	pair, err := srv.tokenService.IssuePair(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token pair")
	}

	// A lost stamp must not fail an otherwise valid login.
	if err := srv.userRepo.StampLastLogin(ctx, user.ID); err != nil {
		srv.log(ctx).Warn("Failed to stamp last login", slog.Any("userID", user.ID), slog.Any("error", err))
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID), slog.String("role", user.Role.String()))

	return &usecase.SessionOutput{User: user, Pair: pair}, nil
}

// findLoginUser looks the account up by username or email first, then
// falls back to the student-number natural key.
func (srv *authService) findLoginUser(ctx context.Context, identifier string) (*entity.User, error) {
	user, err := srv.userRepo.FindByLogin(ctx, identifier)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by login")
	}

	profile, err := srv.studentRepo.FindByStudentNumber(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find student by number")
	}

	user, err = srv.userRepo.FindByID(ctx, profile.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load student account")
	}

	return user, nil
}

// Resolve verifies an access token and loads its live user record, failing
// closed on every branch. Deactivation after issuance rejects here even
// though the token signature is still valid.
func (srv *authService) Resolve(ctx context.Context, accessToken string) (*entity.User, error) {
	if accessToken == "" {
		return nil, domainerrors.ErrSessionMissing
	}

	claims, err := srv.tokenService.VerifyAccess(accessToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "access token rejected")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "token subject unknown")
		}

		return nil, errors.Wrap(err, "failed to load token subject")
	}

	if !user.CanAuthenticate() {
		srv.log(ctx).Warn("Token presented for deactivated account", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrUserInactive, "account deactivated")
	}

	if err := srv.loadProfile(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// loadProfile resolves the user's profile reference into the matching typed
// row on the entity, so session responses can embed role-specific fields.
// An unlinked reference loads nothing; a reference whose kind disagrees with
// the account role means the row was provisioned wrong and fails closed.
func (srv *authService) loadProfile(ctx context.Context, user *entity.User) error {
	if !user.Profile.IsLinked() {
		return nil
	}
	if !user.Profile.AgreesWith(user.Role) {
		srv.log(ctx).Error("Profile reference disagrees with role",
			slog.Any("userID", user.ID),
			slog.String("role", user.Role.String()),
			slog.String("profileKind", string(user.Profile.Kind)))

		return errors.Wrap(domainerrors.ErrProfileMismatch, "load profile")
	}

	var err error
	switch user.Profile.Kind {
	case entity.ProfileKindAdmin:
		user.AdminProfile, err = srv.adminRepo.FindByUserID(ctx, user.ID)
	case entity.ProfileKindTeacher:
		user.TeacherProfile, err = srv.teacherRepo.FindByID(ctx, user.Profile.ID)
	case entity.ProfileKindStudent:
		user.StudentProfile, err = srv.studentRepo.FindByID(ctx, user.Profile.ID)
	case entity.ProfileKindWorkplace:
		user.WorkplaceProfile, err = srv.workplaceRepo.FindByID(ctx, user.Profile.ID)
	}
	if err != nil {
		return errors.Wrap(err, "failed to load linked profile")
	}

	return nil
}

// Refresh verifies a refresh token and rotates BOTH tokens. Failures never
// clear the caller's cookies; that is the transport's concern on logout only.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.SessionOutput, error) {
	if refreshToken == "" {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	claims, err := srv.tokenService.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token rejected")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "token subject unknown")
		}

		return nil, errors.Wrap(err, "failed to load token subject")
	}

	if !user.CanAuthenticate() {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "account deactivated")
	}

	if err := srv.loadProfile(ctx, user); err != nil {
		return nil, err
	}

	pair, err := srv.tokenService.IssuePair(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rotate token pair")
	}

	srv.log(ctx).Debug("Session refreshed", slog.Any("userID", user.ID))

	return &usecase.SessionOutput{User: user, Pair: pair}, nil
}
