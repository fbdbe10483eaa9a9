// Package steps provides step definitions for the BDD integration suite.
package steps

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/alquimia/backend/internal/application/usecase/advisor"
	"github.com/alquimia/backend/internal/application/usecase/auth"
	"github.com/alquimia/backend/internal/application/usecase/list"
	"github.com/alquimia/backend/internal/application/usecase/settings"
	"github.com/alquimia/backend/internal/application/usecase/summary"
	syncuc "github.com/alquimia/backend/internal/application/usecase/sync"
	"github.com/alquimia/backend/internal/application/usecase/transaction"
	"github.com/alquimia/backend/internal/application/usecase/wallet"
	"github.com/alquimia/backend/internal/infra/server/router"
	"github.com/alquimia/backend/internal/integration/adapters"
	"github.com/alquimia/backend/internal/integration/entrypoint/controller"
	"github.com/alquimia/backend/internal/integration/entrypoint/middleware"
	"github.com/alquimia/backend/internal/integration/persistence"
	"github.com/alquimia/backend/internal/integration/persistence/model"
	"github.com/alquimia/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// testContext holds per-scenario state: the request being built, the last
// response, and IDs captured from earlier steps for placeholder substitution.
type testContext struct {
	uri          string
	headers      map[string]string
	client       *http.Client
	response     *response
	db           *mock.Db
	serverPort   int
	accessToken  string
	refreshToken string

	currentUserID   uuid.UUID
	currentWalletID uuid.UUID
	currentListID   uuid.UUID
	currentItemID   uuid.UUID
	originalID      uuid.UUID
	transactionIDs  []uuid.UUID
	lastID          uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeTestSuite sets up suite-level resources.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions and wires the scenario state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb(map[string]any{
			"users":               &model.UserModel{},
			"refresh_tokens":      &model.RefreshTokenModel{},
			"transactions":        &model.TransactionModel{},
			"wallets":             &model.WalletModel{},
			"transmutation_lists": &model.TransmutationListModel{},
			"transmutation_items": &model.TransmutationItemModel{},
			"settings":            &model.SettingsModel{},
			"email_queue":         &model.EmailQueueModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)

	// Domain setup steps
	ctx.Given(`^a wallet exists with name "([^"]*)" and kind "([^"]*)"$`, test.aWalletExistsWithNameAndKind)
	ctx.Given(`^a credit card wallet exists closing on day (\d+) due on day (\d+)$`, test.aCreditCardWalletExists)
	ctx.Given(`^a list exists with name "([^"]*)"$`, test.aListExistsWithName)
	ctx.Given(`^the list has a pending item "([^"]*)" with amount "([^"]*)"$`, test.theListHasAPendingItem)
	ctx.Given(`^a transaction exists with description "([^"]*)" and amount "([^"]*)"$`, test.aTransactionExistsWithDescriptionAndAmount)
	ctx.Given(`^an installment purchase "([^"]*)" of "([^"]*)" in (\d+) installments exists$`, test.anInstallmentPurchaseExists)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.currentWalletID = uuid.Nil
	t.currentListID = uuid.Nil
	t.currentItemID = uuid.Nil
	t.originalID = uuid.Nil
	t.transactionIDs = nil
	t.lastID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
}

// startServer boots the full HTTP stack once, backed by the in-memory
// database and an embedded redis for change notifications.
func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)
			walletRepo := persistence.NewWalletRepository(testDB.DbConn)
			listRepo := persistence.NewTransmutationListRepository(testDB.DbConn)
			settingsRepo := persistence.NewSettingsRepository(testDB.DbConn)
			syncRepo := persistence.NewSyncRepository(testDB.DbConn)

			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
			advisorService := adapters.NewGeminiService("")
			notifier := adapters.NewRedisChangeNotifier(mock.NewRedis())

			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
			deleteAccountUseCase := auth.NewDeleteAccountUseCase(userRepo, passwordService, tokenService)

			createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, walletRepo, listRepo, notifier)
			listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
			updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, notifier)
			deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, notifier)
			deleteGroupUseCase := transaction.NewDeleteInstallmentGroupUseCase(transactionRepo, notifier)

			createWalletUseCase := wallet.NewCreateWalletUseCase(walletRepo, notifier)
			listWalletsUseCase := wallet.NewListWalletsUseCase(walletRepo)
			updateWalletUseCase := wallet.NewUpdateWalletUseCase(walletRepo, notifier)
			deleteWalletUseCase := wallet.NewDeleteWalletUseCase(walletRepo, notifier)

			createListUseCase := list.NewCreateListUseCase(listRepo, notifier)
			listListsUseCase := list.NewListListsUseCase(listRepo)
			updateListUseCase := list.NewUpdateListUseCase(listRepo, notifier)
			deleteListUseCase := list.NewDeleteListUseCase(listRepo, notifier)
			addItemUseCase := list.NewAddItemUseCase(listRepo, notifier)
			toggleItemUseCase := list.NewToggleItemUseCase(listRepo, notifier)
			completeItemUseCase := list.NewCompleteItemUseCase(listRepo, transactionRepo, walletRepo, notifier)
			deleteItemUseCase := list.NewDeleteItemUseCase(listRepo, notifier)

			getSettingsUseCase := settings.NewGetSettingsUseCase(settingsRepo)
			updateSettingsUseCase := settings.NewUpdateSettingsUseCase(settingsRepo, notifier)

			monthlySummaryUseCase := summary.NewMonthlySummaryUseCase(transactionRepo, settingsRepo)
			yearlySummaryUseCase := summary.NewYearlySummaryUseCase(transactionRepo)
			hoursEquivalentUseCase := summary.NewHoursEquivalentUseCase(settingsRepo)

			getTipUseCase := advisor.NewGetTipUseCase(advisorService, transactionRepo)
			getPromotionsUseCase := advisor.NewGetPromotionsUseCase(advisorService)
			analyzeReceiptUseCase := advisor.NewAnalyzeReceiptUseCase(advisorService)

			getSnapshotUseCase := syncuc.NewGetSnapshotUseCase(transactionRepo, walletRepo, listRepo, settingsRepo, userRepo)
			applyPatchUseCase := syncuc.NewApplyPatchUseCase(syncRepo, settingsRepo, userRepo, notifier)

			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
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

			loginRateLimiter := middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
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
			engine := r.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}
			_ = server.ListenAndServe()
		}()
	})

	// Wait for the server to accept requests.
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}
