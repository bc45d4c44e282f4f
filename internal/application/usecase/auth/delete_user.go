// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dumpmycash/backend/internal/application/adapter"
	domainerror "github.com/dumpmycash/backend/internal/domain/error"
)

// deleteConfirmationPhrase is what the client must echo back before the
// profile and all of its data are removed.
const deleteConfirmationPhrase = "DELETE"

// DeleteUserInput represents the input for deleting a user profile.
type DeleteUserInput struct {
	UserID       uuid.UUID
	Password     string
	Confirmation string
}

// DeleteUserOutput represents the output of a user profile deletion.
type DeleteUserOutput struct {
	Success bool
}

// DeleteUserUseCase removes a user together with every account, category,
// transaction and transfer they own.
type DeleteUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewDeleteUserUseCase creates a new DeleteUserUseCase instance.
func NewDeleteUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the user profile deletion. The caller must supply their
// password and the literal confirmation phrase "DELETE". Sessions are revoked
// before the data is removed, and the removal itself is atomic.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, input DeleteUserInput) (*DeleteUserOutput, error) {
	if input.Confirmation != deleteConfirmationPhrase {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidConfirmation,
			"confirmation phrase must be DELETE",
			domainerror.ErrInvalidConfirmation,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"password is incorrect",
			domainerror.ErrInvalidCredentials,
		)
	}

	if err := uc.tokenService.InvalidateAllUserTokens(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to revoke sessions: %w", err)
	}

	if err := uc.userRepo.Delete(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}

	return &DeleteUserOutput{Success: true}, nil
}
