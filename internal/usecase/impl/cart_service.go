package impl

import (
	"context"
	"log/slog"

	deliverycontext "greencart/internal/delivery/context"
	"greencart/internal/domain/entity"
	domainerrors "greencart/internal/domain/errors"
	"greencart/internal/domain/repository"
	"greencart/internal/domain/service"
	"greencart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cartService struct {
	userRepo repository.UserRepository
	metrics  service.SessionMetrics
	logger   *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Metrics  service.SessionMetrics
	Logger   *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		userRepo: params.UserRepo,
		metrics:  params.Metrics,
		logger:   params.Logger,
	}
}

// UpdateCart overwrites the stored snapshot. Entries with a non-positive quantity are dropped.
func (srv *cartService) UpdateCart(ctx context.Context, input *usecase.UpdateCartInput) error {
	if input == nil || input.UserID == uuid.Nil {
		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	cart := entity.NewCart(input.CartItems)
	if err := srv.userRepo.UpdateCart(ctx, input.UserID, cart); err != nil {
		srv.metrics.RecordCartUpdate(service.OutcomeFailure)
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return errors.Wrap(err, "failed to update cart")
	}

	srv.metrics.RecordCartUpdate(service.OutcomeSuccess)
	deliverycontext.LoggerFrom(ctx, srv.logger).Debug("Cart updated",
		slog.String("userID", input.UserID.String()),
		slog.Int("items", cart.Count()),
	)

	return nil
}
