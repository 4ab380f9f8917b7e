package usecase

import "context"

// SellerUsecase authenticates the single configured seller.
type SellerUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*SessionOutput, error)
}
