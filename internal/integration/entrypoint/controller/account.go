// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dumpmycash/backend/internal/application/usecase/account"
	domainerror "github.com/dumpmycash/backend/internal/domain/error"
	"github.com/dumpmycash/backend/internal/integration/entrypoint/dto"
	"github.com/dumpmycash/backend/internal/integration/entrypoint/middleware"
)

// AccountController handles account endpoints.
type AccountController struct {
	createUseCase    *account.CreateAccountUseCase
	listUseCase      *account.ListAccountsUseCase
	getUseCase       *account.GetAccountUseCase
	updateUseCase    *account.UpdateAccountUseCase
	deleteUseCase    *account.DeleteAccountUseCase
	chartDataUseCase *account.ChartDataUseCase
}

// NewAccountController creates a new account controller instance.
func NewAccountController(
	createUseCase *account.CreateAccountUseCase,
	listUseCase *account.ListAccountsUseCase,
	getUseCase *account.GetAccountUseCase,
	updateUseCase *account.UpdateAccountUseCase,
	deleteUseCase *account.DeleteAccountUseCase,
	chartDataUseCase *account.ChartDataUseCase,
) *AccountController {
	return &AccountController{
		createUseCase:    createUseCase,
		listUseCase:      listUseCase,
		getUseCase:       getUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
		chartDataUseCase: chartDataUseCase,
	}
}

// Create handles POST /accounts requests.
func (c *AccountController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeEmptyAccountName),
		})
		return
	}

	balance := decimal.Zero
	if req.Balance != "" {
		parsed, err := decimal.NewFromString(req.Balance)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid balance format",
				Code:  string(domainerror.ErrCodeNegativeInitialBalance),
			})
			return
		}
		balance = parsed
	}

	input := account.CreateAccountInput{
		UserID:  userID,
		Name:    req.Name,
		Balance: balance,
		Color:   req.Color,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAccountResponse(output.Account))
}

// List handles GET /accounts requests.
func (c *AccountController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), account.ListAccountsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	accounts := make([]dto.AccountResponse, 0, len(output.Accounts))
	for _, a := range output.Accounts {
		accounts = append(accounts, dto.ToAccountResponse(a))
	}

	ctx.JSON(http.StatusOK, dto.AccountListResponse{
		Accounts:     accounts,
		TotalBalance: output.TotalBalance.StringFixed(2),
	})
}

// ChartData handles GET /accounts/chart-data requests. Only accounts with a
// positive balance are returned.
func (c *AccountController) ChartData(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.chartDataUseCase.Execute(ctx.Request.Context(), account.ChartDataInput{
		UserID: userID,
	})
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	items := make([]dto.AccountChartItem, 0, len(output.Accounts))
	for _, a := range output.Accounts {
		items = append(items, dto.ToAccountChartItem(a))
	}

	ctx.JSON(http.StatusOK, dto.AccountChartDataResponse{
		Accounts: items,
	})
}

// Get handles GET /accounts/:id requests.
func (c *AccountController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID",
			Code:  string(domainerror.ErrCodeAccountNotFound),
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), account.GetAccountInput{
		UserID:    userID,
		AccountID: accountID,
	})
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountResponse(output.Account))
}

// Update handles PUT /accounts/:id requests.
func (c *AccountController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID",
			Code:  string(domainerror.ErrCodeAccountNotFound),
		})
		return
	}

	var req dto.UpdateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeEmptyAccountName),
		})
		return
	}

	input := account.UpdateAccountInput{
		UserID:    userID,
		AccountID: accountID,
		Name:      req.Name,
		Color:     req.Color,
	}

	if req.Balance != nil {
		parsed, err := decimal.NewFromString(*req.Balance)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid balance format",
				Code:  string(domainerror.ErrCodeNegativeInitialBalance),
			})
			return
		}
		input.Balance = &parsed
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountResponse(output.Account))
}

// Delete handles DELETE /accounts/:id requests.
func (c *AccountController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID",
			Code:  string(domainerror.ErrCodeAccountNotFound),
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), account.DeleteAccountInput{
		UserID:    userID,
		AccountID: accountID,
	}); err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Account deleted successfully",
	})
}

// handleAccountError handles account errors and returns appropriate HTTP responses.
func (c *AccountController) handleAccountError(ctx *gin.Context, err error) {
	var accountErr *domainerror.AccountError
	if errors.As(err, &accountErr) {
		statusCode := c.getStatusCodeForAccountError(accountErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: accountErr.Message,
			Code:  string(accountErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAccountError maps account error codes to HTTP status codes.
func (c *AccountController) getStatusCodeForAccountError(code domainerror.AccountErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmptyAccountName,
		domainerror.ErrCodeAccountNameTooLong,
		domainerror.ErrCodeNegativeInitialBalance:
		return http.StatusBadRequest
	case domainerror.ErrCodeAccountNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedAccount:
		return http.StatusForbidden
	case domainerror.ErrCodeAccountHasActivity:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondUnauthenticated writes the shared missing-authentication response.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "Authentication required",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}
