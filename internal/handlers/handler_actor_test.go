package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/vttkeeper/coin_purse_app/internal/apperrors"
	"github.com/vttkeeper/coin_purse_app/internal/core/domain"
	portssvc "github.com/vttkeeper/coin_purse_app/internal/core/ports/services"
	"github.com/vttkeeper/coin_purse_app/internal/dto"
	"github.com/vttkeeper/coin_purse_app/internal/handlers"
	"github.com/vttkeeper/coin_purse_app/internal/middleware"
)

const testJWTSecret = "test-secret-key"

// generateTestToken creates a signed JWT whose subject is the acting user.
func generateTestToken(t *testing.T, userID string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}

// --- Mock ActorService ---
type MockActorService struct {
	mock.Mock
}

func (m *MockActorService) CreateActor(ctx context.Context, req dto.CreateActorRequest, creatorUserID string) (*domain.Actor, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Actor), args.Error(1)
}

func (m *MockActorService) GetActorByID(ctx context.Context, actorID string) (*domain.Actor, error) {
	args := m.Called(ctx, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Actor), args.Error(1)
}

func (m *MockActorService) UpdateActorMoney(ctx context.Context, actorID string, money domain.Money, opts domain.WriteOptions) (*domain.Actor, error) {
	args := m.Called(ctx, actorID, money, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Actor), args.Error(1)
}

func (m *MockActorService) AddChangeListener(listener func(ctx context.Context, n domain.ChangeNotification)) {
	// not exercised by handlers
}

var _ portssvc.ActorSvcFacade = (*MockActorService)(nil)

// --- Mock PurseService ---
type MockPurseService struct {
	mock.Mock
}

func (m *MockPurseService) HandleChange(ctx context.Context, n domain.ChangeNotification) {
	m.Called(ctx, n)
}

func (m *MockPurseService) Shutdown() {
	m.Called()
}

func (m *MockPurseService) PerformConversion(ctx context.Context, actorID string, manual bool) (dto.ExchangeResponse, error) {
	args := m.Called(ctx, actorID, manual)
	return args.Get(0).(dto.ExchangeResponse), args.Error(1)
}

var _ portssvc.PurseSvcFacade = (*MockPurseService)(nil)

// --- Test Suite ---
type ActorHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockActorSvc *MockActorService
	mockPurseSvc *MockPurseService
}

func (suite *ActorHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockActorSvc = new(MockActorService)
	suite.mockPurseSvc = new(MockPurseService)

	suite.router = gin.New()
	api := suite.router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(testJWTSecret))
	handlers.RegisterActorRoutes(api, suite.mockActorSvc, suite.mockPurseSvc)
	handlers.RegisterChangeRoutes(api, suite.mockPurseSvc, "60-M")
}

// performJSONRequest issues an authenticated JSON request against the router.
// An empty userID leaves the Authorization header off.
func performJSONRequest(t *testing.T, router *gin.Engine, method, path, userID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req, err := http.NewRequest(method, path, &buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+generateTestToken(t, userID))
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func (suite *ActorHandlerTestSuite) performRequest(method, path, userID string, body interface{}) *httptest.ResponseRecorder {
	return performJSONRequest(suite.T(), suite.router, method, path, userID, body)
}

// --- Test Cases ---

func (suite *ActorHandlerTestSuite) TestCreateActor_Success() {
	gold := int64(5)
	reqBody := dto.CreateActorRequest{
		Name:        "Tavi",
		Kind:        domain.ActorKindCharacter,
		OwnerUserID: "user-1",
		Money:       &dto.MoneyPayload{Gold: &gold},
	}
	created := &domain.Actor{
		ActorID:     "actor-1",
		Name:        "Tavi",
		Kind:        domain.ActorKindCharacter,
		OwnerUserID: "user-1",
		Money:       domain.Money{Gold: 5},
	}

	suite.mockActorSvc.On("CreateActor", mock.Anything, mock.AnythingOfType("dto.CreateActorRequest"), "gm-1").
		Return(created, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/actors", "gm-1", reqBody)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ActorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("actor-1", resp.ActorID)
	suite.Equal("5", resp.TotalWorth)
	suite.mockActorSvc.AssertExpectations(suite.T())
}

func (suite *ActorHandlerTestSuite) TestCreateActor_Unauthorized() {
	w := suite.performRequest(http.MethodPost, "/api/v1/actors", "", dto.CreateActorRequest{})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockActorSvc.AssertNotCalled(suite.T(), "CreateActor", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ActorHandlerTestSuite) TestCreateActor_InvalidBody() {
	w := suite.performRequest(http.MethodPost, "/api/v1/actors", "gm-1", gin.H{"kind": "character"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockActorSvc.AssertNotCalled(suite.T(), "CreateActor", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ActorHandlerTestSuite) TestGetActor_NotFound() {
	suite.mockActorSvc.On("GetActorByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/actors/missing", "user-1", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ActorHandlerTestSuite) TestUpdateMoney_TagsWriteWithActingUser() {
	silver := int64(12)
	reqBody := dto.UpdateMoneyRequest{Money: dto.MoneyPayload{Silver: &silver}}
	updated := &domain.Actor{
		ActorID:     "actor-1",
		Name:        "Tavi",
		Kind:        domain.ActorKindCharacter,
		OwnerUserID: "user-1",
		Money:       domain.Money{Silver: 12},
	}

	suite.mockActorSvc.On("UpdateActorMoney", mock.Anything, "actor-1", domain.Money{Silver: 12},
		domain.WriteOptions{Internal: false, UserID: "user-1"}).Return(updated, nil).Once()

	w := suite.performRequest(http.MethodPut, "/api/v1/actors/actor-1/money", "user-1", reqBody)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ActorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.Money{Silver: 12}, resp.Money)
	suite.mockActorSvc.AssertExpectations(suite.T())
}

func (suite *ActorHandlerTestSuite) TestExchange_RequiresConfirmation() {
	w := suite.performRequest(http.MethodPost, "/api/v1/actors/actor-1/money/exchange", "user-1",
		gin.H{"confirm": false})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPurseSvc.AssertNotCalled(suite.T(), "PerformConversion", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ActorHandlerTestSuite) TestExchange_ConfirmedRunsManualConversion() {
	optimized := domain.Money{Gold: 2, Silver: 2}
	suite.mockPurseSvc.On("PerformConversion", mock.Anything, "actor-1", true).
		Return(dto.ExchangeResponse{Outcome: dto.OutcomeOptimized, Money: &optimized}, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/actors/actor-1/money/exchange", "user-1",
		dto.ExchangeRequest{Confirm: true})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ExchangeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(dto.OutcomeOptimized, resp.Outcome)
	suite.mockPurseSvc.AssertExpectations(suite.T())
}

func (suite *ActorHandlerTestSuite) TestExchange_ActorGone() {
	suite.mockPurseSvc.On("PerformConversion", mock.Anything, "missing", true).
		Return(dto.ExchangeResponse{Outcome: dto.OutcomeActorGone}, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/actors/missing/money/exchange", "user-1",
		dto.ExchangeRequest{Confirm: true})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ActorHandlerTestSuite) TestHandleChange_AcceptedAndForwarded() {
	reqBody := dto.ChangeWebhookRequest{
		ActorID:       "actor-1",
		Kind:          domain.ActorKindCharacter,
		ChangedFields: []string{"money"},
		UserID:        "user-1",
	}
	expected := reqBody.ToDomain()

	suite.mockPurseSvc.On("HandleChange", mock.Anything, expected).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/changes", "host", reqBody)

	suite.Equal(http.StatusAccepted, w.Code)
	suite.mockPurseSvc.AssertExpectations(suite.T())
}

func (suite *ActorHandlerTestSuite) TestHandleChange_InvalidBody() {
	w := suite.performRequest(http.MethodPost, "/api/v1/changes", "host", gin.H{"kind": "character"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPurseSvc.AssertNotCalled(suite.T(), "HandleChange", mock.Anything, mock.Anything)
}

func TestActorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ActorHandlerTestSuite))
}
