// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dumpmycash/backend/internal/application/usecase/transfer"
	domainerror "github.com/dumpmycash/backend/internal/domain/error"
	"github.com/dumpmycash/backend/internal/integration/entrypoint/dto"
	"github.com/dumpmycash/backend/internal/integration/entrypoint/middleware"
)

// TransferController handles transfer endpoints.
type TransferController struct {
	createUseCase  *transfer.CreateTransferUseCase
	listUseCase    *transfer.ListTransfersUseCase
	recentUseCase  *transfer.RecentTransfersUseCase
	getUseCase     *transfer.GetTransferUseCase
	reverseUseCase *transfer.ReverseTransferUseCase
	summaryUseCase *transfer.TransferSummaryUseCase
}

// NewTransferController creates a new transfer controller instance.
func NewTransferController(
	createUseCase *transfer.CreateTransferUseCase,
	listUseCase *transfer.ListTransfersUseCase,
	recentUseCase *transfer.RecentTransfersUseCase,
	getUseCase *transfer.GetTransferUseCase,
	reverseUseCase *transfer.ReverseTransferUseCase,
	summaryUseCase *transfer.TransferSummaryUseCase,
) *TransferController {
	return &TransferController{
		createUseCase:  createUseCase,
		listUseCase:    listUseCase,
		recentUseCase:  recentUseCase,
		getUseCase:     getUseCase,
		reverseUseCase: reverseUseCase,
		summaryUseCase: summaryUseCase,
	}
}

// Create handles POST /transfers requests.
func (c *TransferController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateTransferRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingTransferAccounts),
		})
		return
	}

	fromAccountID, err := uuid.Parse(req.FromAccountID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid source account ID",
			Code:  string(domainerror.ErrCodeTransferAccountNotFound),
		})
		return
	}

	toAccountID, err := uuid.Parse(req.ToAccountID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid destination account ID",
			Code:  string(domainerror.ErrCodeTransferAccountNotFound),
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount format",
			Code:  string(domainerror.ErrCodeInvalidTransferAmount),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transfer.CreateTransferInput{
		UserID:        userID,
		FromAccountID: fromAccountID,
		ToAccountID:   toAccountID,
		Amount:        amount,
		Description:   req.Description,
	})
	if err != nil {
		c.handleTransferError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateTransferResponse{
		Transfer:           dto.ToTransferResponse(output.Transfer),
		FromAccountBalance: output.FromAccount.Balance.StringFixed(2),
		ToAccountBalance:   output.ToAccount.Balance.StringFixed(2),
	})
}

// List handles GET /transfers requests with pagination.
func (c *TransferController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	output, err := c.listUseCase.Execute(ctx.Request.Context(), transfer.ListTransfersInput{
		UserID: userID,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		c.handleTransferError(ctx, err)
		return
	}

	transfers := make([]dto.TransferWithAccountsResponse, 0, len(output.Transfers))
	for _, tw := range output.Transfers {
		transfers = append(transfers, dto.ToTransferWithAccountsResponse(tw))
	}

	ctx.JSON(http.StatusOK, dto.TransferListResponse{
		Transfers: transfers,
		Pagination: dto.PaginationResponse{
			Page:       output.Page,
			Limit:      output.Limit,
			Total:      output.Total,
			TotalPages: output.TotalPages,
		},
	})
}

// Recent handles GET /transfers/recent requests.
func (c *TransferController) Recent(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "5"))

	output, err := c.recentUseCase.Execute(ctx.Request.Context(), transfer.RecentTransfersInput{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		c.handleTransferError(ctx, err)
		return
	}

	transfers := make([]dto.TransferWithAccountsResponse, 0, len(output.Transfers))
	for _, tw := range output.Transfers {
		transfers = append(transfers, dto.ToTransferWithAccountsResponse(tw))
	}

	ctx.JSON(http.StatusOK, dto.RecentTransfersResponse{
		Transfers: transfers,
	})
}

// Summary handles GET /transfers/summary requests.
func (c *TransferController) Summary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), transfer.TransferSummaryInput{
		UserID: userID,
	})
	if err != nil {
		c.handleTransferError(ctx, err)
		return
	}

	pairs := make([]dto.TransferPairResponse, 0, len(output.FrequentPair))
	for _, pair := range output.FrequentPair {
		pairs = append(pairs, dto.TransferPairResponse{
			FromAccountID:   pair.FromAccountID.String(),
			FromAccountName: pair.FromAccountName,
			ToAccountID:     pair.ToAccountID.String(),
			ToAccountName:   pair.ToAccountName,
			Count:           pair.Count,
			Amount:          pair.Amount.StringFixed(2),
		})
	}

	ctx.JSON(http.StatusOK, dto.TransferSummaryResponse{
		TotalCount:    output.TotalCount,
		TotalAmount:   output.TotalAmount.StringFixed(2),
		MonthCount:    output.MonthCount,
		MonthAmount:   output.MonthAmount.StringFixed(2),
		FrequentPairs: pairs,
	})
}

// Get handles GET /transfers/:id requests.
func (c *TransferController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	transferID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transfer ID",
			Code:  string(domainerror.ErrCodeTransferNotFound),
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), transfer.GetTransferInput{
		UserID:     userID,
		TransferID: transferID,
	})
	if err != nil {
		c.handleTransferError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransferResponse(output.Transfer))
}

// Reverse handles DELETE /transfers/:id requests. Reversal is the only way
// to undo a transfer; both balances are restored atomically.
func (c *TransferController) Reverse(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	transferID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transfer ID",
			Code:  string(domainerror.ErrCodeTransferNotFound),
		})
		return
	}

	output, err := c.reverseUseCase.Execute(ctx.Request.Context(), transfer.ReverseTransferInput{
		UserID:     userID,
		TransferID: transferID,
	})
	if err != nil {
		c.handleTransferError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ReverseTransferResponse{
		Message:            "Transfer reversed successfully",
		Amount:             output.Amount.StringFixed(2),
		FromAccountBalance: output.FromAccountBalance.StringFixed(2),
		ToAccountBalance:   output.ToAccountBalance.StringFixed(2),
	})
}

// handleTransferError handles transfer errors and returns appropriate HTTP responses.
func (c *TransferController) handleTransferError(ctx *gin.Context, err error) {
	var transferErr *domainerror.TransferError
	if errors.As(err, &transferErr) {
		statusCode := c.getStatusCodeForTransferError(transferErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: transferErr.Message,
			Code:  string(transferErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTransferError maps transfer error codes to HTTP status codes.
func (c *TransferController) getStatusCodeForTransferError(code domainerror.TransferErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingTransferAccounts,
		domainerror.ErrCodeSameTransferAccount,
		domainerror.ErrCodeInvalidTransferAmount:
		return http.StatusBadRequest
	case domainerror.ErrCodeTransferAccountNotFound,
		domainerror.ErrCodeTransferNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedTransfer:
		return http.StatusForbidden
	case domainerror.ErrCodeInsufficientBalance:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
