// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/receipt-match/backend/internal/application/usecase/auth"
	"github.com/receipt-match/backend/internal/application/usecase/group"
	"github.com/receipt-match/backend/internal/application/usecase/matching"
	"github.com/receipt-match/backend/internal/application/usecase/prediction"
	"github.com/receipt-match/backend/internal/application/usecase/receipt"
	"github.com/receipt-match/backend/internal/application/usecase/transaction"
	"github.com/receipt-match/backend/internal/domain/valueobject"
	"github.com/receipt-match/backend/internal/infra/server/router"
	"github.com/receipt-match/backend/internal/integration/adapters"
	"github.com/receipt-match/backend/internal/integration/email"
	"github.com/receipt-match/backend/internal/integration/entrypoint/controller"
	"github.com/receipt-match/backend/internal/integration/entrypoint/middleware"
	"github.com/receipt-match/backend/internal/integration/persistence"
	"github.com/receipt-match/backend/internal/integration/persistence/model"
	"github.com/receipt-match/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

type testContext struct {
	uri        string
	headers    map[string]string
	client     *http.Client
	response   *response
	db         *mock.Db
	serverPort int

	accessToken  string
	refreshToken string

	currentUserID       uuid.UUID
	currentReceiptID    uuid.UUID
	lastTransactionID   uuid.UUID
	transactionIDs      []uuid.UUID
	currentGroupID      uuid.UUID
	currentMatchID      uuid.UUID
	currentPatternID    uuid.UUID
	currentPredictionID uuid.UUID
}

type response struct {
	status int
	body   any
	raw    []byte
}

var serverInit sync.Once
var portInit sync.Once
var testDB *mock.Db
var testServerPort int

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
	})
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb(map[string]any{
			"users":                   &model.UserModel{},
			"receipts":                &model.ReceiptModel{},
			"transactions":            &model.TransactionModel{},
			"transaction_groups":      &model.TransactionGroupModel{},
			"receipt_matches":         &model.ReceiptMatchModel{},
			"expense_patterns":        &model.ExpensePatternModel{},
			"transaction_predictions": &model.TransactionPredictionModel{},
			"vendor_aliases":          &model.VendorAliasModel{},
			"email_queue":             &model.EmailQueueModel{},
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
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)

	// Data setup steps
	ctx.Given(`^a receipt exists for vendor "([^"]*)" with amount "([^"]*)" on "([^"]*)"$`, test.aReceiptExists)
	ctx.Given(`^a transaction exists with description "([^"]*)" and amount "([^"]*)" on "([^"]*)"$`, test.aTransactionExists)
	ctx.Given(`^a transaction group exists named "([^"]*)" with total "([^"]*)" on "([^"]*)"$`, test.aTransactionGroupExists)
	ctx.Given(`^the transaction is assigned to the group$`, test.theTransactionIsAssignedToTheGroup)
	ctx.Given(`^a proposed match exists for the receipt and the transaction$`, test.aProposedMatchExists)
	ctx.Given(`^an expense pattern exists for vendor "([^"]*)" with (\d+) confirms and (\d+) rejects$`, test.anExpensePatternExists)
	ctx.Given(`^the pattern is suppressed$`, test.thePatternIsSuppressed)
	ctx.Given(`^the pattern requires a confirmed receipt match$`, test.thePatternRequiresReceiptMatch)
	ctx.Given(`^a pending prediction exists for the transaction$`, test.aPendingPredictionExists)
	ctx.Given(`^a vendor alias maps "([^"]*)" to "([^"]*)"$`, test.aVendorAliasMaps)

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
	t.currentReceiptID = uuid.Nil
	t.lastTransactionID = uuid.Nil
	t.transactionIDs = nil
	t.currentGroupID = uuid.Nil
	t.currentMatchID = uuid.Nil
	t.currentPatternID = uuid.Nil
	t.currentPredictionID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	// Flush the alias cache so negative cache entries from one scenario
	// cannot mask aliases seeded by the next.
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			receiptRepo := persistence.NewReceiptRepository(testDB.DbConn)
			transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)
			groupRepo := persistence.NewTransactionGroupRepository(testDB.DbConn)
			matchRepo := persistence.NewMatchRepository(testDB.DbConn)
			patternRepo := persistence.NewPatternRepository(testDB.DbConn)
			predictionRepo := persistence.NewPredictionRepository(testDB.DbConn)
			emailQueueRepo := persistence.NewEmailQueueRepository(testDB.DbConn)

			// Create adapters/services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret)
			aliasLookup := adapters.NewVendorAliasService(testDB.DbConn, mock.NewRedis())
			similarity := adapters.NewBigramSimilarity()
			scorer := matching.NewScorer(aliasLookup, similarity)
			emailService := email.NewService(emailQueueRepo, "http://localhost:3000")

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
				return testDB != nil && testDB.DbConn != nil
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

			// Create middleware. The login limiter is raised so scenarios
			// exercising the login endpoint repeatedly never trip it.
			loginRateLimiter := middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

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
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
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

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:                 userID,
		Email:              email,
		Name:               name,
		PasswordHash:       hashPassword(password),
		EmailNotifications: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	return t.db.DbConn.Create(user).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

// iAmLoggedInAs creates the user on demand and signs tokens for them directly,
// so scenarios do not have to pass through the login endpoint first.
func (t *testContext) iAmLoggedInAs(email string) error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		if err := t.createUser(email, "DefaultPass123!", "Test User"); err != nil {
			return err
		}
		if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
			return fmt.Errorf("user not found after create: %w", err)
		}
	}

	t.currentUserID = userModel.ID

	accessToken, err := t.signToken(email, "access", 15*time.Minute)
	if err != nil {
		return err
	}
	t.accessToken = accessToken

	refreshToken, err := t.signToken(email, "refresh", 7*24*time.Hour)
	if err != nil {
		return err
	}
	t.refreshToken = refreshToken

	return nil
}

// signToken mints a JWT with the same claims layout the token service emits.
func (t *testContext) signToken(email, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      email,
		"token_type": tokenType,
		"exp":        jwt.NewNumericDate(now.Add(ttl)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "receipt-match",
		"sub":        t.currentUserID.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

func (t *testContext) aReceiptExists(vendor, amount, date string) error {
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	receiptID := uuid.New()
	t.currentReceiptID = receiptID

	now := time.Now().UTC()
	receiptModel := &model.ReceiptModel{
		ID:         receiptID,
		UserID:     t.currentUserID,
		Date:       parsedDate,
		VendorText: vendor,
		Amount:     parsedAmount,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	return t.db.DbConn.Create(receiptModel).Error
}

func (t *testContext) aTransactionExists(description, amount, date string) error {
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	transactionID := uuid.New()
	t.lastTransactionID = transactionID
	t.transactionIDs = append(t.transactionIDs, transactionID)

	now := time.Now().UTC()
	transactionModel := &model.TransactionModel{
		ID:          transactionID,
		UserID:      t.currentUserID,
		Date:        parsedDate,
		Description: description,
		Amount:      parsedAmount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return t.db.DbConn.Create(transactionModel).Error
}

func (t *testContext) aTransactionGroupExists(name, total, date string) error {
	parsedTotal, err := decimal.NewFromString(total)
	if err != nil {
		return fmt.Errorf("invalid total %q: %w", total, err)
	}
	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	groupID := uuid.New()
	t.currentGroupID = groupID

	now := time.Now().UTC()
	groupModel := &model.TransactionGroupModel{
		ID:               groupID,
		UserID:           t.currentUserID,
		DisplayName:      name,
		CombinedAmount:   parsedTotal,
		TransactionCount: 2,
		DisplayDate:      parsedDate,
		MatchStatus:      "unmatched",
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	return t.db.DbConn.Create(groupModel).Error
}

func (t *testContext) theTransactionIsAssignedToTheGroup() error {
	if t.lastTransactionID == uuid.Nil || t.currentGroupID == uuid.Nil {
		return errors.New("scenario must create a transaction and a group first")
	}
	return t.db.DbConn.Model(&model.TransactionModel{}).
		Where("id = ?", t.lastTransactionID).
		Update("group_id", t.currentGroupID).Error
}

func (t *testContext) aProposedMatchExists() error {
	if t.currentReceiptID == uuid.Nil || t.lastTransactionID == uuid.Nil {
		return errors.New("scenario must create a receipt and a transaction first")
	}

	matchID := uuid.New()
	t.currentMatchID = matchID

	transactionID := t.lastTransactionID
	now := time.Now().UTC()
	matchModel := &model.ReceiptMatchModel{
		ID:            matchID,
		UserID:        t.currentUserID,
		ReceiptID:     t.currentReceiptID,
		TransactionID: &transactionID,
		Score:         85,
		Status:        "proposed",
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	return t.db.DbConn.Create(matchModel).Error
}

func (t *testContext) anExpensePatternExists(vendor string, confirms, rejects int) error {
	patternID := uuid.New()
	t.currentPatternID = patternID

	now := time.Now().UTC()
	patternModel := &model.ExpensePatternModel{
		ID:               patternID,
		UserID:           t.currentUserID,
		NormalizedVendor: valueobject.NormalizeVendor(vendor),
		ConfirmCount:     confirms,
		RejectCount:      rejects,
		OccurrenceCount:  confirms + rejects,
		LastSeenAt:       now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	return t.db.DbConn.Create(patternModel).Error
}

func (t *testContext) thePatternIsSuppressed() error {
	return t.db.DbConn.Model(&model.ExpensePatternModel{}).
		Where("id = ?", t.currentPatternID).
		Update("is_suppressed", true).Error
}

func (t *testContext) thePatternRequiresReceiptMatch() error {
	return t.db.DbConn.Model(&model.ExpensePatternModel{}).
		Where("id = ?", t.currentPatternID).
		Update("requires_receipt_match", true).Error
}

func (t *testContext) aPendingPredictionExists() error {
	if t.lastTransactionID == uuid.Nil {
		return errors.New("scenario must create a transaction first")
	}

	predictionID := uuid.New()
	t.currentPredictionID = predictionID

	now := time.Now().UTC()
	predictionModel := &model.TransactionPredictionModel{
		ID:              predictionID,
		UserID:          t.currentUserID,
		TransactionID:   t.lastTransactionID,
		ConfidenceScore: 0.75,
		ConfidenceLevel: "high",
		Status:          "pending",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if t.currentPatternID != uuid.Nil {
		patternID := t.currentPatternID
		predictionModel.PatternID = &patternID
	}

	return t.db.DbConn.Create(predictionModel).Error
}

func (t *testContext) aVendorAliasMaps(vendor, canonical string) error {
	now := time.Now().UTC()
	aliasModel := &model.VendorAliasModel{
		ID:        uuid.New(),
		Vendor:    valueobject.NormalizeVendor(vendor),
		Canonical: valueobject.NormalizeVendor(canonical),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return t.db.DbConn.Create(aliasModel).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Clear access token to simulate unauthenticated request
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{receipt_id}}", t.currentReceiptID.String())
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.lastTransactionID.String())
	content = strings.ReplaceAll(content, "{{group_id}}", t.currentGroupID.String())
	content = strings.ReplaceAll(content, "{{match_id}}", t.currentMatchID.String())
	content = strings.ReplaceAll(content, "{{pattern_id}}", t.currentPatternID.String())
	content = strings.ReplaceAll(content, "{{prediction_id}}", t.currentPredictionID.String())

	if len(t.transactionIDs) > 0 {
		ids := make([]string, len(t.transactionIDs))
		for i, id := range t.transactionIDs {
			ids[i] = fmt.Sprintf(`"%s"`, id.String())
		}
		content = strings.ReplaceAll(content, "{{transaction_ids}}", "["+strings.Join(ids, ", ")+"]")
	}

	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
		raw:    bodyBytes,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody
	t.captureFromResponse(responseBody)

	return nil
}

// captureFromResponse records ids and tokens from a response body so later
// steps can reference them through placeholders. The resource kind is inferred
// from fields unique to each response shape.
func (t *testContext) captureFromResponse(body map[string]any) {
	if token, ok := body["access_token"].(string); ok && token != "" {
		t.accessToken = token
	}
	if token, ok := body["refresh_token"].(string); ok && token != "" {
		t.refreshToken = token
	}

	if id, ok := parseIDField(body, "id"); ok {
		switch {
		case hasField(body, "vendor_text"):
			t.currentReceiptID = id
		case hasField(body, "display_name"):
			t.currentGroupID = id
		case hasField(body, "receipt_id"):
			t.currentMatchID = id
		case hasField(body, "confidence_level"):
			t.currentPredictionID = id
		case hasField(body, "normalized_vendor"):
			t.currentPatternID = id
		case hasField(body, "description"):
			t.lastTransactionID = id
			t.transactionIDs = append(t.transactionIDs, id)
		}
	}

	if matches, ok := body["matches"].([]any); ok && len(matches) > 0 {
		if first, ok := matches[0].(map[string]any); ok {
			if id, ok := parseIDField(first, "id"); ok {
				t.currentMatchID = id
			}
		}
	}

	if generated, ok := body["generated"].([]any); ok && len(generated) > 0 {
		if first, ok := generated[0].(map[string]any); ok {
			if id, ok := parseIDField(first, "id"); ok {
				t.currentPredictionID = id
			}
		}
	}
}

func hasField(body map[string]any, field string) bool {
	_, ok := body[field]
	return ok
}

func parseIDField(body map[string]any, field string) (uuid.UUID, bool) {
	raw, ok := body[field].(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %s)", expectedStatus, t.response.status, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if !strings.Contains(string(t.response.raw), expected) {
		return fmt.Errorf("response does not contain %q. Body: %s", expected, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %s", field, string(t.response.raw))
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	if value := getFieldValue(t.response.body, field); value == nil {
		return fmt.Errorf("field '%s' not found in response: %s", field, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
	if result.Error != nil {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
