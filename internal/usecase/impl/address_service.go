package impl

import (
	"context"
	"log/slog"

	deliverycontext "greencart/internal/delivery/context"
	"greencart/internal/domain/entity"
	domainerrors "greencart/internal/domain/errors"
	"greencart/internal/domain/repository"
	"greencart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type addressService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

// AddAddress appends the address and returns the full, updated address book.
func (srv *addressService) AddAddress(ctx context.Context, input *usecase.AddAddressInput) ([]*entity.Address, error) {
	if input == nil || input.UserID == uuid.Nil || input.Address == nil {
		return nil, errors.WithStack(domainerrors.ErrMissingDetails.WithMessage("Missing details"))
	}

	address := *input.Address
	address.ID = uuid.Nil
	address.UserID = input.UserID

	var addresses []*entity.Address
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.UserRepo().FindByID(ctx, input.UserID); err != nil {
			return err
		}

		addressRepo := repoFactory.AddressRepo()
		if err := addressRepo.AppendAddress(ctx, &address); err != nil {
			return errors.Wrap(err, "failed to append address")
		}

		list, err := addressRepo.FindAddressesByUser(ctx, input.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to reload addresses")
		}
		addresses = list

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, err
	}

	deliverycontext.LoggerFrom(ctx, srv.logger).Debug("Address added",
		slog.String("userID", input.UserID.String()),
		slog.Int("count", len(addresses)),
	)

	return addresses, nil
}

// GetAddresses returns the user's addresses in insertion order.
func (srv *addressService) GetAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	if userID == uuid.Nil {
		return nil, errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	if user.Addresses == nil {
		return []*entity.Address{}, nil
	}

	return user.Addresses, nil
}
