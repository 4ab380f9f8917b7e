// Package persistence selects the storage backend named by configuration.
package persistence

import (
	"log/slog"

	"greencart/config"
	"greencart/internal/domain/repository"
	"greencart/internal/infra/persistence/memory"
	"greencart/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the repository provider, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the set of repository ports made available to the use cases.
type Repositories struct {
	fx.Out

	Users     repository.UserRepository
	Addresses repository.AddressRepository
	Products  repository.ProductRepository
	TxManager repository.TransactionManager
}

// NewRepositories builds every repository on the configured driver.
func NewRepositories(params Params) (Repositories, error) {
	driver := params.Config.Storage.Driver
	logger := params.Logger.With(slog.String("driver", driver))

	switch driver {
	case config.StorageDriverMemory:
		logger.Warn("Using in-memory storage, data is lost on restart")
		store := memory.NewStoreFromConfig(params.Config)

		return Repositories{
			Users:     store.Users(),
			Addresses: store.Addresses(),
			Products:  store.Products(),
			TxManager: store.TransactionManager(),
		}, nil

	case config.StorageDriverPostgres:
		logger.Info("Using PostgreSQL storage")
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Users:     postgres.NewUserRepository(db),
			Addresses: postgres.NewAddressRepository(db),
			Products:  postgres.NewProductRepository(db),
			TxManager: postgres.NewTransactionManager(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unsupported storage driver: %s", driver)
	}
}
