// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/receipt-match/backend/config"
	"github.com/receipt-match/backend/internal/application/usecase/auth"
	"github.com/receipt-match/backend/internal/application/usecase/group"
	"github.com/receipt-match/backend/internal/application/usecase/matching"
	"github.com/receipt-match/backend/internal/application/usecase/prediction"
	"github.com/receipt-match/backend/internal/application/usecase/receipt"
	"github.com/receipt-match/backend/internal/application/usecase/transaction"
	"github.com/receipt-match/backend/internal/infra/server/router"
	"github.com/receipt-match/backend/internal/integration/adapters"
	"github.com/receipt-match/backend/internal/integration/email"
	"github.com/receipt-match/backend/internal/integration/entrypoint/controller"
	"github.com/receipt-match/backend/internal/integration/entrypoint/middleware"
	"github.com/receipt-match/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config     *config.Config
	DB         *gorm.DB
	Router     *router.Router
	EmailQueue *email.Service
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The redis client is optional; a nil client disables the vendor alias cache.
func NewInjector(cfg *config.Config, db *gorm.DB, cache *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	receiptRepo := persistence.NewReceiptRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	groupRepo := persistence.NewTransactionGroupRepository(db)
	matchRepo := persistence.NewMatchRepository(db)
	patternRepo := persistence.NewPatternRepository(db)
	predictionRepo := persistence.NewPredictionRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)
	aliasLookup := adapters.NewVendorAliasService(db, cache)
	similarity := adapters.NewBigramSimilarity()
	scorer := matching.NewScorer(aliasLookup, similarity)
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)

	// Create receipt use cases
	createReceiptUseCase := receipt.NewCreateReceiptUseCase(receiptRepo)
	listReceiptsUseCase := receipt.NewListReceiptsUseCase(receiptRepo)
	deleteReceiptUseCase := receipt.NewDeleteReceiptUseCase(receiptRepo)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)

	// Create transaction group use cases
	createGroupUseCase := group.NewCreateGroupUseCase(transactionRepo, groupRepo)
	listGroupsUseCase := group.NewListGroupsUseCase(groupRepo)

	// Create matching use cases
	proposeMatchesUseCase := matching.NewProposeMatchesUseCase(
		receiptRepo, transactionRepo, groupRepo, matchRepo, userRepo, emailService, scorer,
	)
	selectCandidatesUseCase := matching.NewSelectCandidatesUseCase(
		receiptRepo, transactionRepo, groupRepo, scorer,
	)
	createManualMatchUseCase := matching.NewCreateManualMatchUseCase(
		receiptRepo, transactionRepo, groupRepo, matchRepo,
	)
	confirmMatchUseCase := matching.NewConfirmMatchUseCase(transactionRepo, groupRepo, matchRepo)
	rejectMatchUseCase := matching.NewRejectMatchUseCase(transactionRepo, groupRepo, matchRepo)

	// Create prediction use cases
	generatePredictionsUseCase := prediction.NewGeneratePredictionsUseCase(
		transactionRepo, patternRepo, predictionRepo, userRepo, emailService,
	)
	listPredictionsUseCase := prediction.NewListPredictionsUseCase(predictionRepo)
	recordFeedbackUseCase := prediction.NewRecordFeedbackUseCase(transactionRepo, patternRepo, predictionRepo)
	createManualOverrideUseCase := prediction.NewCreateManualOverrideUseCase(transactionRepo, predictionRepo)
	listPatternsUseCase := prediction.NewListPatternsUseCase(patternRepo)
	updatePatternUseCase := prediction.NewUpdatePatternUseCase(patternRepo)

	// Create controllers
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
	)

	receiptController := controller.NewReceiptController(
		createReceiptUseCase,
		listReceiptsUseCase,
		deleteReceiptUseCase,
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
	)

	groupController := controller.NewGroupController(
		createGroupUseCase,
		listGroupsUseCase,
	)

	matchingController := controller.NewMatchingController(
		proposeMatchesUseCase,
		selectCandidatesUseCase,
		createManualMatchUseCase,
		confirmMatchUseCase,
		rejectMatchUseCase,
	)

	predictionController := controller.NewPredictionController(
		generatePredictionsUseCase,
		listPredictionsUseCase,
		recordFeedbackUseCase,
		createManualOverrideUseCase,
		listPatternsUseCase,
		updatePatternUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		receiptController,
		transactionController,
		groupController,
		matchingController,
		predictionController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:     cfg,
		DB:         db,
		Router:     r,
		EmailQueue: emailService,
	}
}
