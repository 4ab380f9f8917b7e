package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"greencart/config"
	deliverycontext "greencart/internal/delivery/context"
	"greencart/internal/domain/entity"
	domainerrors "greencart/internal/domain/errors"
	"greencart/internal/domain/service"
	"greencart/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type sellerService struct {
	email        string
	password     string
	tokenService service.TokenService
	metrics      service.SessionMetrics
	logger       *slog.Logger
}

// SellerServiceParams holds dependencies for SellerService, injected by Fx.
type SellerServiceParams struct {
	fx.In

	Config       *config.Config
	TokenService service.TokenService
	Metrics      service.SessionMetrics
	Logger       *slog.Logger
}

// NewSellerService builds the seller login against the configured credentials.
func NewSellerService(params SellerServiceParams) usecase.SellerUsecase {
	return &sellerService{
		email:        params.Config.SellerEmail(),
		password:     params.Config.Seller.Password,
		tokenService: params.TokenService,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

// Login accepts only the exact configured email and password.
func (srv *sellerService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	logger := deliverycontext.LoggerFrom(ctx, srv.logger)

	if input == nil || srv.password == "" || !equalConstantTime(input.Email, srv.email) || !equalConstantTime(input.Password, srv.password) {
		srv.metrics.RecordLogin(entity.AudienceSeller, service.OutcomeFailure)
		logger.Warn("Seller login rejected")

		return nil, errors.WithStack(domainerrors.ErrInvalidSellerCredentials)
	}

	token, err := srv.tokenService.Issue(service.IdentityClaim{Email: srv.email}, entity.AudienceSeller)
	if err != nil {
		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage(err.Error())
	}

	srv.metrics.RecordLogin(entity.AudienceSeller, service.OutcomeSuccess)

	return &usecase.SessionOutput{Token: token, TTL: srv.tokenService.TTL()}, nil
}

func equalConstantTime(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
