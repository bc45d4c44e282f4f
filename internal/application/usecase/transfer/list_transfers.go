// Package transfer contains transfer-related use cases.
package transfer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dumpmycash/backend/internal/application/adapter"
	"github.com/dumpmycash/backend/internal/domain/entity"
)

// ListTransfersInput represents the input for listing transfers.
type ListTransfersInput struct {
	UserID uuid.UUID
	Page   int
	Limit  int
}

// ListTransfersOutput represents the output of listing transfers.
type ListTransfersOutput struct {
	Transfers  []*entity.TransferWithAccounts
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ListTransfersUseCase handles listing transfers logic.
type ListTransfersUseCase struct {
	transferRepo adapter.TransferRepository
}

// NewListTransfersUseCase creates a new ListTransfersUseCase instance.
func NewListTransfersUseCase(transferRepo adapter.TransferRepository) *ListTransfersUseCase {
	return &ListTransfersUseCase{
		transferRepo: transferRepo,
	}
}

// Execute performs the transfer listing, newest first.
func (uc *ListTransfersUseCase) Execute(ctx context.Context, input ListTransfersInput) (*ListTransfersOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	result, err := uc.transferRepo.FindByUser(ctx, input.UserID, adapter.TransferPagination{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}

	return &ListTransfersOutput{
		Transfers:  result.Transfers,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	}, nil
}
