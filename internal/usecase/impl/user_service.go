// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

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

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	metrics      service.SessionMetrics
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Metrics      service.SessionMetrics
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Register creates a user with a hashed password and signs them in.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.SessionOutput, error) {
	if input == nil || isBlank(input.Name) || isBlank(input.Email) || isBlank(input.Password) {
		return nil, errors.WithStack(domainerrors.ErrMissingDetails)
	}

	var registered *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return errors.WithStack(domainerrors.ErrUserAlreadyExists)
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to look up email")
		}

		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
		}

		user := &entity.User{
			Email:        input.Email,
			Name:         input.Name,
			PasswordHash: hash,
			CartItems:    entity.Cart{},
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}
		registered = user

		return nil
	})
	if err != nil {
		srv.metrics.RecordRegistration(service.OutcomeFailure)
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	output, err := srv.openSession(registered)
	if err != nil {
		return nil, err
	}

	srv.metrics.RecordRegistration(service.OutcomeSuccess)
	srv.log(ctx).Info("User registered", slog.String("userID", registered.ID.String()))

	return output, nil
}

// Login verifies the email and password pair. Unknown email and wrong password fail identically.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	if input == nil || isBlank(input.Email) || isBlank(input.Password) {
		return nil, errors.WithStack(domainerrors.ErrMissingCredentials)
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		srv.metrics.RecordLogin(entity.AudienceUser, service.OutcomeFailure)
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.metrics.RecordLogin(entity.AudienceUser, service.OutcomeFailure)
		srv.log(ctx).Debug("Password mismatch", slog.String("userID", user.ID.String()))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	output, err := srv.openSession(user)
	if err != nil {
		return nil, err
	}

	srv.metrics.RecordLogin(entity.AudienceUser, service.OutcomeSuccess)

	return output, nil
}

// GetUser loads the user behind a session, addresses and cart included, without the password hash.
func (srv *userService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}
	user.PasswordHash = ""

	return user, nil
}

func (srv *userService) openSession(user *entity.User) (*usecase.SessionOutput, error) {
	token, err := srv.tokenService.Issue(service.IdentityClaim{UserID: user.ID}, entity.AudienceUser)
	if err != nil {
		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage(err.Error())
	}

	return &usecase.SessionOutput{
		User:  user,
		Token: token,
		TTL:   srv.tokenService.TTL(),
	}, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
