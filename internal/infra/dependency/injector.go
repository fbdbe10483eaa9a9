// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/alquimia/backend/config"
	"github.com/alquimia/backend/internal/application/adapter"
	"github.com/alquimia/backend/internal/application/usecase/advisor"
	"github.com/alquimia/backend/internal/application/usecase/auth"
	"github.com/alquimia/backend/internal/application/usecase/list"
	"github.com/alquimia/backend/internal/application/usecase/settings"
	"github.com/alquimia/backend/internal/application/usecase/summary"
	"github.com/alquimia/backend/internal/application/usecase/sync"
	"github.com/alquimia/backend/internal/application/usecase/transaction"
	"github.com/alquimia/backend/internal/application/usecase/wallet"
	"github.com/alquimia/backend/internal/infra/server/router"
	"github.com/alquimia/backend/internal/integration/adapters"
	"github.com/alquimia/backend/internal/integration/email"
	"github.com/alquimia/backend/internal/integration/email/templates"
	"github.com/alquimia/backend/internal/integration/entrypoint/controller"
	"github.com/alquimia/backend/internal/integration/entrypoint/middleware"
	"github.com/alquimia/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router

	// EmailWorker and ReminderScanner are nil when the email pipeline is
	// disabled or not configured.
	EmailWorker     *email.Worker
	ReminderScanner *email.ReminderScanner
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The redis client may be nil; change notifications are skipped in that case.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	walletRepo := persistence.NewWalletRepository(db)
	listRepo := persistence.NewTransmutationListRepository(db)
	settingsRepo := persistence.NewSettingsRepository(db)
	syncRepo := persistence.NewSyncRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	advisorService := adapters.NewGeminiService(cfg.Gemini.APIKey)

	var notifier adapter.ChangeNotifier
	if redisClient != nil {
		notifier = adapters.NewRedisChangeNotifier(redisClient)
	}

	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	deleteAccountUseCase := auth.NewDeleteAccountUseCase(userRepo, passwordService, tokenService)

	// Transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, walletRepo, listRepo, notifier)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, notifier)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, notifier)
	deleteGroupUseCase := transaction.NewDeleteInstallmentGroupUseCase(transactionRepo, notifier)

	// Wallet use cases
	createWalletUseCase := wallet.NewCreateWalletUseCase(walletRepo, notifier)
	listWalletsUseCase := wallet.NewListWalletsUseCase(walletRepo)
	updateWalletUseCase := wallet.NewUpdateWalletUseCase(walletRepo, notifier)
	deleteWalletUseCase := wallet.NewDeleteWalletUseCase(walletRepo, notifier)

	// List use cases
	createListUseCase := list.NewCreateListUseCase(listRepo, notifier)
	listListsUseCase := list.NewListListsUseCase(listRepo)
	updateListUseCase := list.NewUpdateListUseCase(listRepo, notifier)
	deleteListUseCase := list.NewDeleteListUseCase(listRepo, notifier)
	addItemUseCase := list.NewAddItemUseCase(listRepo, notifier)
	toggleItemUseCase := list.NewToggleItemUseCase(listRepo, notifier)
	completeItemUseCase := list.NewCompleteItemUseCase(listRepo, transactionRepo, walletRepo, notifier)
	deleteItemUseCase := list.NewDeleteItemUseCase(listRepo, notifier)

	// Settings use cases
	getSettingsUseCase := settings.NewGetSettingsUseCase(settingsRepo)
	updateSettingsUseCase := settings.NewUpdateSettingsUseCase(settingsRepo, notifier)

	// Summary use cases
	monthlySummaryUseCase := summary.NewMonthlySummaryUseCase(transactionRepo, settingsRepo)
	yearlySummaryUseCase := summary.NewYearlySummaryUseCase(transactionRepo)
	hoursEquivalentUseCase := summary.NewHoursEquivalentUseCase(settingsRepo)

	// Advisor use cases
	getTipUseCase := advisor.NewGetTipUseCase(advisorService, transactionRepo)
	getPromotionsUseCase := advisor.NewGetPromotionsUseCase(advisorService)
	analyzeReceiptUseCase := advisor.NewAnalyzeReceiptUseCase(advisorService)

	// Sync use cases
	getSnapshotUseCase := sync.NewGetSnapshotUseCase(transactionRepo, walletRepo, listRepo, settingsRepo, userRepo)
	applyPatchUseCase := sync.NewApplyPatchUseCase(syncRepo, settingsRepo, userRepo, notifier)

	// Controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		deleteAccountUseCase,
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		deleteGroupUseCase,
	)

	walletController := controller.NewWalletController(
		createWalletUseCase,
		listWalletsUseCase,
		updateWalletUseCase,
		deleteWalletUseCase,
	)

	listController := controller.NewListController(
		createListUseCase,
		listListsUseCase,
		updateListUseCase,
		deleteListUseCase,
		addItemUseCase,
		toggleItemUseCase,
		completeItemUseCase,
		deleteItemUseCase,
	)

	settingsController := controller.NewSettingsController(getSettingsUseCase, updateSettingsUseCase)
	summaryController := controller.NewSummaryController(monthlySummaryUseCase, yearlySummaryUseCase, hoursEquivalentUseCase)
	advisorController := controller.NewAdvisorController(getTipUseCase, getPromotionsUseCase, analyzeReceiptUseCase)
	syncController := controller.NewSyncController(getSnapshotUseCase, applyPatchUseCase)

	// Middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		transactionController,
		walletController,
		listController,
		settingsController,
		summaryController,
		advisorController,
		syncController,
		loginRateLimiter,
		authMiddleware,
	)

	injector := &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}

	// Email pipeline: queue worker plus the installment reminder scanner.
	if cfg.Email.WorkerEnabled && cfg.Email.ResendAPIKey != "" {
		renderer, err := templates.NewRenderer()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize email templates: %w", err)
		}
		sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		injector.EmailWorker = email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
			PollInterval: cfg.Email.PollInterval,
			BatchSize:    cfg.Email.BatchSize,
		})
		injector.ReminderScanner = email.NewReminderScanner(
			transactionRepo,
			walletRepo,
			userRepo,
			emailQueueRepo,
			emailService,
			email.ReminderScannerConfig{
				WindowDays:   cfg.Email.ReminderWindowDays,
				ScanInterval: cfg.Email.ScanInterval,
			},
		)
	}

	return injector, nil
}
