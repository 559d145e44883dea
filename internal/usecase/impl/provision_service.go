package impl

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode"

	"internhub/config"
	deliverycontext "internhub/internal/delivery/context"
	"internhub/internal/domain/entity"
	domainerrors "internhub/internal/domain/errors"
	"internhub/internal/domain/repository"
	"internhub/internal/domain/service"
	"internhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultMinPasswordLength is the floor below which configuration cannot
// weaken the policy.
const defaultMinPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// passwordPolicy is the effective password strength policy derived from
// configuration.
type passwordPolicy struct {
	minLength        int
	maxLength        int
	requireUppercase bool
	requireLowercase bool
	requireNumbers   bool
	requireSpecial   bool
}

func newPasswordPolicy(cfg *config.PasswordStrengthConfig) passwordPolicy {
	policy := passwordPolicy{minLength: defaultMinPasswordLength}
	if cfg == nil {
		return policy
	}

	if cfg.MinLength > policy.minLength {
		policy.minLength = cfg.MinLength
	}
	policy.maxLength = cfg.MaxLength
	policy.requireUppercase = cfg.RequireUppercase
	policy.requireLowercase = cfg.RequireLowercase
	policy.requireNumbers = cfg.RequireNumbers
	policy.requireSpecial = cfg.RequireSpecial

	return policy
}

func (p passwordPolicy) validate(password string) []domainerrors.FieldViolation {
	var violations []domainerrors.FieldViolation

	if len(password) < p.minLength {
		violations = append(violations, domainerrors.FieldViolation{
			Field: "password", Reason: fmt.Sprintf("must be at least %d characters", p.minLength),
		})
	}
	if p.maxLength > 0 && len(password) > p.maxLength {
		violations = append(violations, domainerrors.FieldViolation{
			Field: "password", Reason: fmt.Sprintf("must be at most %d characters", p.maxLength),
		})
	}
	if p.requireUppercase && !strings.ContainsFunc(password, unicode.IsUpper) {
		violations = append(violations, domainerrors.FieldViolation{
			Field: "password", Reason: "must contain an uppercase letter",
		})
	}
	if p.requireLowercase && !strings.ContainsFunc(password, unicode.IsLower) {
		violations = append(violations, domainerrors.FieldViolation{
			Field: "password", Reason: "must contain a lowercase letter",
		})
	}
	if p.requireNumbers && !strings.ContainsAny(password, "0123456789") {
		violations = append(violations, domainerrors.FieldViolation{
			Field: "password", Reason: "must contain a digit",
		})
	}
	if p.requireSpecial && !strings.ContainsFunc(password, isSpecialRune) {
		violations = append(violations, domainerrors.FieldViolation{
			Field: "password", Reason: "must contain a special character",
		})
	}

	return violations
}

func isSpecialRune(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// provisionService implements the ProvisionUsecase interface.
// Account creation is two rows in one transaction: the User row first with
// an unlinked profile reference, then the profile row with its user
// back-reference, then the link. Any failure rolls the whole unit back.
type provisionService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	teacherRepo repository.TeacherProfileRepository
	studentRepo repository.StudentProfileRepository
	hasher      service.PasswordHasher
	password    passwordPolicy
	logger      *slog.Logger
}

// ProvisionServiceParams holds dependencies for provisionService, injected by Fx.
type ProvisionServiceParams struct {
	fx.In

	Config      *config.Config
	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	TeacherRepo repository.TeacherProfileRepository
	StudentRepo repository.StudentProfileRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewProvisionService is the constructor for provisionService.
func NewProvisionService(params ProvisionServiceParams) usecase.ProvisionUsecase {
	var strength *config.PasswordStrengthConfig
	if params.Config != nil {
		strength = params.Config.PasswordStrength
	}

	return &provisionService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		teacherRepo: params.TeacherRepo,
		studentRepo: params.StudentRepo,
		hasher:      params.Hasher,
		password:    newPasswordPolicy(strength),
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *provisionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateStaffUser provisions a teacher or workplace account.
func (srv *provisionService) CreateStaffUser(ctx context.Context, input usecase.CreateStaffInput) (*usecase.ProvisionOutput, error) {
	if violations := srv.validateStaffInput(input); len(violations) > 0 {
		return nil, domainerrors.NewValidationError(violations...)
	}

	// Best-effort duplicate pre-check; the unique indexes still back races.
	taken, err := srv.userRepo.ExistsByEmailOrUsername(ctx, input.Email, input.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to pre-check duplicates")
	}
	if taken {
		return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "staff provisioning rejected")
	}

	// Hash outside the transaction (bcrypt is CPU-bound).
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password")
	}

	newUser := &entity.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		Username:     strings.ToLower(strings.TrimSpace(input.Username)),
		PasswordHash: passwordHash,
		Role:         input.Role,
		Active:       true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create staff user")
		}

		ref, err := srv.createStaffProfile(ctx, repoFactory, newUser, input)
		if err != nil {
			return err
		}

		if err := userRepo.LinkProfile(ctx, newUser.ID, ref); err != nil {
			return errors.Wrap(err, "failed to link staff profile")
		}
		newUser.Profile = ref

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Staff provisioning aborted",
			slog.String("role", input.Role.String()), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Staff account provisioned",
		slog.Any("userID", newUser.ID), slog.String("role", newUser.Role.String()))

	return &usecase.ProvisionOutput{User: newUser}, nil
}

// createStaffProfile writes the role-specific profile row inside the transaction.
func (srv *provisionService) createStaffProfile(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	user *entity.User,
	input usecase.CreateStaffInput,
) (entity.ProfileRef, error) {
	switch input.Role {
	case entity.RoleTeacher:
		profile := &entity.TeacherProfile{
			UserID:     user.ID,
			Name:       strings.TrimSpace(input.Name),
			Email:      strings.ToLower(strings.TrimSpace(input.Email)),
			Phone:      strings.TrimSpace(input.Phone),
			Department: strings.TrimSpace(input.Department),
		}
		if err := repoFactory.NewTeacherProfileRepository().Create(ctx, profile); err != nil {
			return entity.ProfileRef{}, errors.Wrap(err, "failed to create teacher profile")
		}
		user.TeacherProfile = profile

		return entity.NewProfileRef(entity.RoleTeacher, profile.ID)

	case entity.RoleWorkplace:
		profile := &entity.WorkplaceProfile{
			UserID:          user.ID,
			CompanyName:     strings.TrimSpace(input.CompanyName),
			BranchName:      strings.TrimSpace(input.BranchName),
			ContactName:     strings.TrimSpace(input.ContactName),
			ContactEmail:    strings.ToLower(strings.TrimSpace(input.ContactEmail)),
			ContactPhone:    strings.TrimSpace(input.ContactPhone),
			ContactPosition: strings.TrimSpace(input.ContactPosition),
			Address:         strings.TrimSpace(input.Address),
			Status:          entity.WorkplaceStatusPending,
			Notes:           strings.TrimSpace(input.Notes),
		}
		if err := repoFactory.NewWorkplaceProfileRepository().Create(ctx, profile); err != nil {
			return entity.ProfileRef{}, errors.Wrap(err, "failed to create workplace profile")
		}
		user.WorkplaceProfile = profile

		return entity.NewProfileRef(entity.RoleWorkplace, profile.ID)

	default:
		// Unreachable after validation; kept so the transaction fails closed.
		return entity.ProfileRef{}, errors.Errorf("unsupported staff role %q", input.Role)
	}
}

// CreateStudent provisions a student account supervised by the calling teacher.
func (srv *provisionService) CreateStudent(ctx context.Context, actor *entity.User, input usecase.CreateStudentInput) (*usecase.ProvisionOutput, error) {
	if actor == nil {
		return nil, domainerrors.ErrSessionMissing
	}

	// The supervising reference is the caller's profile row, not the account.
	supervisor, err := srv.teacherRepo.FindByUserID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "caller has no teacher profile")
		}

		return nil, errors.Wrap(err, "failed to load caller's teacher profile")
	}

	if violations := srv.validateStudentInput(input); len(violations) > 0 {
		return nil, domainerrors.NewValidationError(violations...)
	}

	// The student number doubles as the login username.
	username := strings.ToLower(strings.TrimSpace(input.StudentNumber))

	taken, err := srv.userRepo.ExistsByEmailOrUsername(ctx, input.Email, username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to pre-check duplicates")
	}
	if taken {
		return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "student provisioning rejected")
	}

	numberTaken, err := srv.studentRepo.ExistsByStudentNumber(ctx, input.StudentNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to pre-check student number")
	}
	if numberTaken {
		return nil, errors.Wrap(domainerrors.ErrStudentNumberTaken, "student provisioning rejected")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password")
	}

	newUser := &entity.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		Username:     username,
		PasswordHash: passwordHash,
		Role:         entity.RoleStudent,
		Active:       true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create student user")
		}

		profile := &entity.StudentProfile{
			UserID:        newUser.ID,
			Name:          newUser.Name,
			Email:         newUser.Email,
			Phone:         strings.TrimSpace(input.Phone),
			StudentNumber: strings.TrimSpace(input.StudentNumber),
			Level:         entity.StudentLevel(input.Level),
			Year:          input.Year,
			Department:    strings.TrimSpace(input.Department),
			Classroom:     strings.TrimSpace(input.Classroom),
			TeacherID:     supervisor.ID,
		}
		if err := repoFactory.NewStudentProfileRepository().Create(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create student profile")
		}
		newUser.StudentProfile = profile

		ref, err := entity.NewProfileRef(entity.RoleStudent, profile.ID)
		if err != nil {
			return err
		}

		if err := userRepo.LinkProfile(ctx, newUser.ID, ref); err != nil {
			return errors.Wrap(err, "failed to link student profile")
		}
		newUser.Profile = ref

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Student provisioning aborted", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Student account provisioned",
		slog.Any("userID", newUser.ID), slog.Any("teacherProfileID", supervisor.ID))

	return &usecase.ProvisionOutput{User: newUser}, nil
}

// EnsureAdmin creates the bootstrap administrator account once.
func (srv *provisionService) EnsureAdmin(ctx context.Context, name, username, email, password string) error {
	if email == "" || password == "" {
		return errors.New("bootstrap admin requires email and password")
	}

	taken, err := srv.userRepo.ExistsByEmailOrUsername(ctx, email, username)
	if err != nil {
		return errors.Wrap(err, "failed to check for existing admin")
	}
	if taken {
		return nil
	}

	passwordHash, err := srv.hasher.Hash(password)
	if err != nil {
		return errors.Wrap(err, "failed to hash bootstrap admin password")
	}

	newUser := &entity.User{
		Name:         name,
		Email:        strings.ToLower(email),
		Username:     strings.ToLower(username),
		PasswordHash: passwordHash,
		Role:         entity.RoleAdmin,
		Active:       true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create bootstrap admin user")
		}

		profile := &entity.AdminProfile{
			UserID:   newUser.ID,
			Name:     name,
			Email:    newUser.Email,
			Username: newUser.Username,
			Active:   true,
		}
		if err := repoFactory.NewAdminProfileRepository().Create(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create bootstrap admin profile")
		}
		newUser.AdminProfile = profile

		ref, err := entity.NewProfileRef(entity.RoleAdmin, profile.ID)
		if err != nil {
			return err
		}

		if err := userRepo.LinkProfile(ctx, newUser.ID, ref); err != nil {
			return errors.Wrap(err, "failed to link bootstrap admin profile")
		}
		newUser.Profile = ref

		return nil
	})
	if err != nil {
		// A concurrent boot may have won the race; the unique index decides.
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			return nil
		}

		return err
	}

	srv.logger.Info("Bootstrap admin provisioned", slog.Any("userID", newUser.ID))

	return nil
}

// --- Validation ---
// Validation collects every violation before returning so the caller can
// fix a form in one round trip.

func (srv *provisionService) validateStaffInput(input usecase.CreateStaffInput) []domainerrors.FieldViolation {
	var violations []domainerrors.FieldViolation

	if input.Role != entity.RoleTeacher && input.Role != entity.RoleWorkplace {
		violations = append(violations, domainerrors.FieldViolation{
			Field: "role", Reason: "must be teacher or workplace",
		})
	}

	violations = append(violations, srv.validateCommonFields(input.Name, input.Username, input.Email, input.Password)...)

	switch input.Role {
	case entity.RoleTeacher:
		if strings.TrimSpace(input.Department) == "" {
			violations = append(violations, domainerrors.FieldViolation{
				Field: "department", Reason: "is required",
			})
		}
	case entity.RoleWorkplace:
		if strings.TrimSpace(input.CompanyName) == "" {
			violations = append(violations, domainerrors.FieldViolation{
				Field: "companyName", Reason: "is required",
			})
		}
		if strings.TrimSpace(input.ContactName) == "" {
			violations = append(violations, domainerrors.FieldViolation{
				Field: "contactName", Reason: "is required",
			})
		}
	}

	return violations
}

func (srv *provisionService) validateStudentInput(input usecase.CreateStudentInput) []domainerrors.FieldViolation {
	var violations []domainerrors.FieldViolation

	if strings.TrimSpace(input.Name) == "" {
		violations = append(violations, domainerrors.FieldViolation{Field: "name", Reason: "is required"})
	}
	if !emailPattern.MatchString(strings.TrimSpace(input.Email)) {
		violations = append(violations, domainerrors.FieldViolation{Field: "email", Reason: "must be a valid email address"})
	}
	violations = append(violations, srv.password.validate(input.Password)...)
	if strings.TrimSpace(input.StudentNumber) == "" {
		violations = append(violations, domainerrors.FieldViolation{Field: "studentNumber", Reason: "is required"})
	}
	if strings.TrimSpace(input.Department) == "" {
		violations = append(violations, domainerrors.FieldViolation{Field: "department", Reason: "is required"})
	}
	if strings.TrimSpace(input.Classroom) == "" {
		violations = append(violations, domainerrors.FieldViolation{Field: "classroom", Reason: "is required"})
	}

	level := entity.StudentLevel(input.Level)
	if !level.IsValid() {
		violations = append(violations, domainerrors.FieldViolation{
			Field: "level", Reason: "must be " + string(entity.LevelVocational) + " or " + string(entity.LevelHighVocational),
		})
	} else if !level.AllowsYear(input.Year) {
		violations = append(violations, domainerrors.FieldViolation{
			Field: "year", Reason: "is out of range for the selected level",
		})
	}

	return violations
}

func (srv *provisionService) validateCommonFields(name, username, email, password string) []domainerrors.FieldViolation {
	var violations []domainerrors.FieldViolation

	if strings.TrimSpace(name) == "" {
		violations = append(violations, domainerrors.FieldViolation{Field: "name", Reason: "is required"})
	}
	if strings.TrimSpace(username) == "" {
		violations = append(violations, domainerrors.FieldViolation{Field: "username", Reason: "is required"})
	}
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		violations = append(violations, domainerrors.FieldViolation{Field: "email", Reason: "must be a valid email address"})
	}
	violations = append(violations, srv.password.validate(password)...)

	return violations
}
