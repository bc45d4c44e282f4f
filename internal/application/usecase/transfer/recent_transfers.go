// Package transfer contains transfer-related use cases.
package transfer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dumpmycash/backend/internal/application/adapter"
	"github.com/dumpmycash/backend/internal/domain/entity"
)

// DefaultRecentTransfersLimit caps the recent-transfers widget.
const DefaultRecentTransfersLimit = 5

// RecentTransfersInput represents the input for listing recent transfers.
type RecentTransfersInput struct {
	UserID uuid.UUID
	Limit  int
}

// RecentTransfersOutput represents the output of listing recent transfers.
type RecentTransfersOutput struct {
	Transfers []*entity.TransferWithAccounts
}

// RecentTransfersUseCase handles listing the most recent transfers.
type RecentTransfersUseCase struct {
	transferRepo adapter.TransferRepository
}

// NewRecentTransfersUseCase creates a new RecentTransfersUseCase instance.
func NewRecentTransfersUseCase(transferRepo adapter.TransferRepository) *RecentTransfersUseCase {
	return &RecentTransfersUseCase{
		transferRepo: transferRepo,
	}
}

// Execute retrieves the user's most recent transfers, newest first.
func (uc *RecentTransfersUseCase) Execute(ctx context.Context, input RecentTransfersInput) (*RecentTransfersOutput, error) {
	limit := input.Limit
	if limit < 1 {
		limit = DefaultRecentTransfersLimit
	}

	transfers, err := uc.transferRepo.FindRecent(ctx, input.UserID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent transfers: %w", err)
	}

	return &RecentTransfersOutput{Transfers: transfers}, nil
}
