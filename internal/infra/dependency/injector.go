// Package dependency provides dependency injection for the application.
package dependency

import (
	"gorm.io/gorm"

	"github.com/dumpmycash/backend/config"
	"github.com/dumpmycash/backend/internal/application/usecase/account"
	"github.com/dumpmycash/backend/internal/application/usecase/auth"
	"github.com/dumpmycash/backend/internal/application/usecase/category"
	"github.com/dumpmycash/backend/internal/application/usecase/report"
	"github.com/dumpmycash/backend/internal/application/usecase/transaction"
	"github.com/dumpmycash/backend/internal/application/usecase/transfer"
	"github.com/dumpmycash/backend/internal/infra/server/router"
	"github.com/dumpmycash/backend/internal/integration/adapters"
	"github.com/dumpmycash/backend/internal/integration/entrypoint/controller"
	"github.com/dumpmycash/backend/internal/integration/entrypoint/middleware"
	"github.com/dumpmycash/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, dbHealthCheck func() bool) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	accountRepo := persistence.NewAccountRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	transferRepo := persistence.NewTransferRepository(db)
	reportRepo := persistence.NewReportRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	changePasswordUseCase := auth.NewChangePasswordUseCase(userRepo, passwordService)
	deleteUserUseCase := auth.NewDeleteUserUseCase(userRepo, passwordService, tokenService)

	// Create account use cases
	createAccountUseCase := account.NewCreateAccountUseCase(accountRepo, categoryRepo)
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo)
	getAccountUseCase := account.NewGetAccountUseCase(accountRepo)
	updateAccountUseCase := account.NewUpdateAccountUseCase(accountRepo, categoryRepo)
	deleteAccountUseCase := account.NewDeleteAccountUseCase(accountRepo)
	chartDataUseCase := account.NewChartDataUseCase(accountRepo)

	// Create category use cases
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	listCategoriesWithTotalsUseCase := category.NewListCategoriesWithTotalsUseCase(categoryRepo)
	getCategoryUseCase := category.NewGetCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)
	categoryStatsUseCase := category.NewGetCategoryStatsUseCase(categoryRepo)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, accountRepo, categoryRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, accountRepo, categoryRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, accountRepo, categoryRepo)
	bulkDeleteTransactionsUseCase := transaction.NewBulkDeleteTransactionsUseCase(transactionRepo)

	// Create transfer use cases
	createTransferUseCase := transfer.NewCreateTransferUseCase(transferRepo, accountRepo)
	listTransfersUseCase := transfer.NewListTransfersUseCase(transferRepo)
	recentTransfersUseCase := transfer.NewRecentTransfersUseCase(transferRepo)
	getTransferUseCase := transfer.NewGetTransferUseCase(transferRepo)
	reverseTransferUseCase := transfer.NewReverseTransferUseCase(transferRepo, accountRepo)
	transferSummaryUseCase := transfer.NewTransferSummaryUseCase(transferRepo)

	// Create report use cases
	overviewUseCase := report.NewGetOverviewUseCase(reportRepo)
	breakdownUseCase := report.NewGetCategoryBreakdownUseCase(reportRepo)
	topExpensesUseCase := report.NewGetTopExpensesUseCase(reportRepo)
	monthlyTrendUseCase := report.NewGetMonthlyTrendUseCase(reportRepo)
	dailyActivityUseCase := report.NewGetDailyActivityUseCase(reportRepo)
	totalsUseCase := report.NewGetTotalsUseCase(reportRepo)

	// Create controllers
	healthController := controller.NewHealthController(dbHealthCheck)
	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		changePasswordUseCase,
		deleteUserUseCase,
	)
	accountController := controller.NewAccountController(
		createAccountUseCase,
		listAccountsUseCase,
		getAccountUseCase,
		updateAccountUseCase,
		deleteAccountUseCase,
		chartDataUseCase,
	)
	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
		listCategoriesWithTotalsUseCase,
		getCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
		categoryStatsUseCase,
	)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		getTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		bulkDeleteTransactionsUseCase,
	)
	transferController := controller.NewTransferController(
		createTransferUseCase,
		listTransfersUseCase,
		recentTransfersUseCase,
		getTransferUseCase,
		reverseTransferUseCase,
		transferSummaryUseCase,
	)
	reportController := controller.NewReportController(
		overviewUseCase,
		breakdownUseCase,
		topExpensesUseCase,
		monthlyTrendUseCase,
		dailyActivityUseCase,
		totalsUseCase,
	)

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		accountController,
		categoryController,
		transactionController,
		transferController,
		reportController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
