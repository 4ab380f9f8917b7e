package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"greencart/internal/domain/repository"
	mockRepo "greencart/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTransaction makes txManager run the callback against a factory that hands out the given repositories.
func expectTransaction(
	t *testing.T,
	txManager *mockRepo.MockTransactionManager,
	userRepo repository.UserRepository,
	addressRepo repository.AddressRepository,
) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	if userRepo != nil {
		factory.EXPECT().UserRepo().Return(userRepo).Maybe()
	}
	if addressRepo != nil {
		factory.EXPECT().AddressRepo().Return(addressRepo).Maybe()
	}

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
