package impl

import (
	"context"
	"testing"

	"greencart/internal/domain/entity"
	"greencart/internal/domain/repository"
	"greencart/internal/domain/service"
	mockRepo "greencart/internal/mocks/repository"
	mockSvc "greencart/internal/mocks/service"
	"greencart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCartService(t *testing.T) (usecase.CartUsecase, *mockRepo.MockUserRepository, *mockSvc.MockSessionMetrics) {
	userRepo := mockRepo.NewMockUserRepository(t)
	metrics := mockSvc.NewMockSessionMetrics(t)

	return NewCartService(CartServiceParams{
		UserRepo: userRepo,
		Metrics:  metrics,
		Logger:   newDiscardLogger(),
	}), userRepo, metrics
}

func TestCartService_UpdateCart_DropsEmptyEntries(t *testing.T) {
	svc, userRepo, metrics := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().UpdateCart(ctx, userID, entity.Cart{"p1": 2}).Return(nil)
	metrics.EXPECT().RecordCartUpdate(service.OutcomeSuccess).Return()

	err := svc.UpdateCart(ctx, &usecase.UpdateCartInput{
		UserID:    userID,
		CartItems: entity.Cart{"p1": 2, "p2": 0, "p3": -1},
	})

	require.NoError(t, err)
}

func TestCartService_UpdateCart_UnknownUser(t *testing.T) {
	svc, userRepo, metrics := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().UpdateCart(ctx, userID, entity.Cart{}).Return(errors.WithStack(repository.ErrUserNotFound))
	metrics.EXPECT().RecordCartUpdate(service.OutcomeFailure).Return()

	err := svc.UpdateCart(ctx, &usecase.UpdateCartInput{UserID: userID})

	assert.Equal(t, "User not found", appErrorMessage(t, err))
}

func TestCartService_UpdateCart_RequiresUser(t *testing.T) {
	svc, _, _ := createTestCartService(t)

	err := svc.UpdateCart(context.Background(), &usecase.UpdateCartInput{})

	assert.Equal(t, "User not authenticated", appErrorMessage(t, err))
}
