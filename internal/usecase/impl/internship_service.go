package impl

import (
	"context"
	"log/slog"

	deliverycontext "internhub/internal/delivery/context"
	"internhub/internal/domain/entity"
	domainerrors "internhub/internal/domain/errors"
	"internhub/internal/domain/repository"
	"internhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// internshipService implements the InternshipUsecase interface.
type internshipService struct {
	internshipRepo repository.InternshipRepository
	logger         *slog.Logger
}

// InternshipServiceParams holds dependencies for internshipService, injected by Fx.
type InternshipServiceParams struct {
	fx.In

	InternshipRepo repository.InternshipRepository
	Logger         *slog.Logger
}

// NewInternshipService is the constructor for internshipService.
func NewInternshipService(params InternshipServiceParams) usecase.InternshipUsecase {
	return &internshipService{
		internshipRepo: params.InternshipRepo,
		logger:         params.Logger,
	}
}

func (srv *internshipService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListMine returns the internships the caller participates in, matched
// through the profile reference. Accounts without a linked profile, such
// as administrators, see an empty list rather than an error.
func (srv *internshipService) ListMine(ctx context.Context, actor *entity.User) ([]*entity.Internship, error) {
	if actor == nil {
		return nil, domainerrors.ErrSessionMissing
	}

	if !actor.Profile.IsLinked() {
		return []*entity.Internship{}, nil
	}

	internships, err := srv.internshipRepo.ListByProfile(ctx, actor.Profile.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to list internships",
			slog.Any("profileID", actor.Profile.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list internships")
	}

	return internships, nil
}
