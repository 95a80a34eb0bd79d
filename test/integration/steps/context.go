// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/usecase/analytics"
	"github.com/expense-tracker/backend/internal/application/usecase/category"
	"github.com/expense-tracker/backend/internal/application/usecase/status"
	"github.com/expense-tracker/backend/internal/application/usecase/transaction"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/infra/server/router"
	"github.com/expense-tracker/backend/internal/integration/cache"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/persistence"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
	"github.com/expense-tracker/backend/test/integration/mock"
)

// testContext holds per-scenario state for the feature suite.
type testContext struct {
	server       *httptest.Server
	client       *http.Client
	headers      map[string]string
	response     *http.Response
	responseBody []byte

	db                *mock.Db
	seedUseCase       *category.SeedDefaultCategoriesUseCase
	lastTransactionID uuid.UUID
}

// InitializeScenario wires the full application against in-memory backends
// and registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	gin.SetMode(gin.TestMode)

	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb(
			&model.CategoryModel{},
			&model.TransactionModel{},
			&model.StatusCheckModel{},
		),
	}

	redisClient := mock.NewRedis()
	analyticsCache := cache.NewRedisAnalyticsCache(redisClient, time.Minute)

	categoryRepo := persistence.NewCategoryRepository(test.db.DbConn)
	transactionRepo := persistence.NewTransactionRepository(test.db.DbConn)
	statusRepo := persistence.NewStatusCheckRepository(test.db.DbConn)

	test.seedUseCase = category.NewSeedDefaultCategoriesUseCase(categoryRepo)

	healthController := controller.NewHealthController(func() bool {
		return test.db != nil && test.db.DbConn != nil
	})
	categoryController := controller.NewCategoryController(
		category.NewListCategoriesUseCase(categoryRepo),
		category.NewCreateCategoryUseCase(categoryRepo),
		category.NewDeleteCategoryUseCase(categoryRepo, transactionRepo, analyticsCache),
	)
	transactionController := controller.NewTransactionController(
		transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, analyticsCache),
		transaction.NewGetTransactionUseCase(transactionRepo),
		transaction.NewListTransactionsUseCase(transactionRepo),
		transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo, analyticsCache),
		transaction.NewDeleteTransactionUseCase(transactionRepo, analyticsCache),
	)
	analyticsController := controller.NewAnalyticsController(
		analytics.NewGetMonthlyAnalyticsUseCase(transactionRepo, analyticsCache),
		analytics.NewGetCategorySummaryUseCase(transactionRepo, analyticsCache),
	)
	statusController := controller.NewStatusController(
		status.NewCreateStatusCheckUseCase(statusRepo),
		status.NewListStatusChecksUseCase(statusRepo),
	)

	r := router.NewRouter(
		healthController,
		categoryController,
		transactionController,
		analyticsController,
		statusController,
	)
	engine := r.Setup("test")

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.headers = make(map[string]string)
		test.response = nil
		test.responseBody = nil
		test.lastTransactionID = uuid.Nil

		if err := test.db.ClearDB(); err != nil {
			return ctx, err
		}
		if err := mock.ClearRedis(redisClient); err != nil {
			return ctx, err
		}

		test.server = httptest.NewServer(engine)
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if test.server != nil {
			test.server.Close()
			test.server = nil
		}
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^the default categories are seeded$`, test.theDefaultCategoriesAreSeeded)
	ctx.Given(`^a custom category exists with name "([^"]*)"$`, test.aCustomCategoryExistsWithName)
	ctx.Given(`^a transaction exists with amount "([^"]*)", type "([^"]*)", category "([^"]*)" and date "([^"]*)"$`, test.aTransactionExists)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response list should have (\d+) items$`, test.theResponseListShouldHaveItems)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
}

// Setup steps

func (t *testContext) theAPIServerIsRunning() error {
	if t.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func (t *testContext) theDefaultCategoriesAreSeeded() error {
	_, err := t.seedUseCase.Execute(context.Background())
	return err
}

func (t *testContext) aCustomCategoryExistsWithName(name string) error {
	row := &model.CategoryModel{
		ID:        uuid.New(),
		Name:      name,
		Color:     entity.DefaultCategoryColor,
		Icon:      entity.DefaultCategoryIcon,
		IsCustom:  true,
		CreatedAt: time.Now().UTC(),
	}
	return t.db.DbConn.Create(row).Error
}

func (t *testContext) aTransactionExists(amount, transactionType, categoryName, date string) error {
	categoryID, err := t.categoryIDByName(categoryName)
	if err != nil {
		return err
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	if date == "today" {
		date = time.Now().UTC().Format(entity.TransactionDateLayout)
	}

	row := &model.TransactionModel{
		ID:              uuid.New(),
		Amount:          value,
		CategoryID:      categoryID,
		CategoryName:    categoryName,
		Type:            transactionType,
		Currency:        entity.DefaultCurrency,
		TransactionDate: date,
		CreatedAt:       time.Now().UTC(),
	}
	if err := t.db.DbConn.Create(row).Error; err != nil {
		return err
	}

	t.lastTransactionID = row.ID
	return nil
}

// Request steps

func (t *testContext) iSendARequestTo(method, endpoint string) error {
	return t.sendRequest(method, endpoint, nil)
}

func (t *testContext) iSendARequestToWithBody(method, endpoint string, body *godog.DocString) error {
	content, err := t.substitute(body.Content)
	if err != nil {
		return err
	}
	return t.sendRequest(method, endpoint, bytes.NewBufferString(content))
}

func (t *testContext) sendRequest(method, endpoint string, body io.Reader) error {
	endpoint, err := t.substitute(endpoint)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(method, t.server.URL+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	t.response = resp
	t.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	return nil
}

// substitute resolves placeholders in endpoints and request bodies:
// {category:Name} becomes the stored id of that category, and
// {transaction_id} becomes the id of the last fixture transaction.
func (t *testContext) substitute(input string) (string, error) {
	for {
		start := strings.Index(input, "{category:")
		if start < 0 {
			break
		}
		end := strings.Index(input[start:], "}")
		if end < 0 {
			return "", fmt.Errorf("unterminated placeholder in %q", input)
		}
		name := input[start+len("{category:") : start+end]
		id, err := t.categoryIDByName(name)
		if err != nil {
			return "", err
		}
		input = input[:start] + id.String() + input[start+end+1:]
	}

	if strings.Contains(input, "{transaction_id}") {
		if t.lastTransactionID == uuid.Nil {
			return "", fmt.Errorf("no fixture transaction recorded")
		}
		input = strings.ReplaceAll(input, "{transaction_id}", t.lastTransactionID.String())
	}

	return input, nil
}

func (t *testContext) categoryIDByName(name string) (uuid.UUID, error) {
	var row model.CategoryModel
	if err := t.db.DbConn.Where("name = ?", name).First(&row).Error; err != nil {
		return uuid.Nil, fmt.Errorf("category %q not found: %w", name, err)
	}
	return row.ID, nil
}

// Response assertion steps

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	if t.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, t.response.StatusCode, string(t.responseBody))
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	var js json.RawMessage
	if err := json.Unmarshal(t.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if !strings.Contains(string(t.responseBody), expected) {
		return fmt.Errorf("response does not contain %q. Body: %s", expected, string(t.responseBody))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expected string) error {
	var data map[string]interface{}
	if err := json.Unmarshal(t.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	value, ok := data[field]
	if !ok {
		return fmt.Errorf("field %q not found in response. Body: %s", field, string(t.responseBody))
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q", field, expected, actual)
	}

	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	var data map[string]interface{}
	if err := json.Unmarshal(t.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	if _, ok := data[field]; !ok {
		return fmt.Errorf("field %q not found in response. Body: %s", field, string(t.responseBody))
	}

	return nil
}

func (t *testContext) theResponseListShouldHaveItems(expected int) error {
	var items []interface{}
	if err := json.Unmarshal(t.responseBody, &items); err != nil {
		return fmt.Errorf("response is not a JSON list: %w. Body: %s", err, string(t.responseBody))
	}

	if len(items) != expected {
		return fmt.Errorf("expected %d items, got %d. Body: %s", expected, len(items), string(t.responseBody))
	}

	return nil
}

// Database assertion steps

func (t *testContext) theDbShouldContainObjectsInTheTable(expected int, table string) error {
	count, err := t.db.Count(table)
	if err != nil {
		return fmt.Errorf("failed to count rows in %q: %w", table, err)
	}
	if count != int64(expected) {
		return fmt.Errorf("expected %d rows in %q, got %d", expected, table, count)
	}
	return nil
}
