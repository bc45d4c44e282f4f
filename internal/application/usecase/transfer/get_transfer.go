// Package transfer contains transfer-related use cases.
package transfer

import (
	"context"

	"github.com/google/uuid"

	"github.com/dumpmycash/backend/internal/application/adapter"
	"github.com/dumpmycash/backend/internal/domain/entity"
	domainerror "github.com/dumpmycash/backend/internal/domain/error"
)

// GetTransferInput represents the input for retrieving a transfer.
type GetTransferInput struct {
	UserID     uuid.UUID
	TransferID uuid.UUID
}

// GetTransferOutput represents the output of retrieving a transfer.
type GetTransferOutput struct {
	Transfer *entity.Transfer
}

// GetTransferUseCase handles transfer retrieval logic.
type GetTransferUseCase struct {
	transferRepo adapter.TransferRepository
}

// NewGetTransferUseCase creates a new GetTransferUseCase instance.
func NewGetTransferUseCase(transferRepo adapter.TransferRepository) *GetTransferUseCase {
	return &GetTransferUseCase{
		transferRepo: transferRepo,
	}
}

// Execute performs the transfer retrieval with ownership check.
func (uc *GetTransferUseCase) Execute(ctx context.Context, input GetTransferInput) (*GetTransferOutput, error) {
	transfer, err := uc.transferRepo.FindByIDAndUser(ctx, input.TransferID, input.UserID)
	if err != nil {
		return nil, domainerror.NewTransferError(
			domainerror.ErrCodeTransferNotFound,
			"transfer not found",
			domainerror.ErrTransferNotFound,
		)
	}

	return &GetTransferOutput{Transfer: transfer}, nil
}
