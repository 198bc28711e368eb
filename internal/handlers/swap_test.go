package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/skillswap-api/internal/constants"
	"github.com/yukikurage/skillswap-api/internal/dto"
	apierrors "github.com/yukikurage/skillswap-api/internal/errors"
	"github.com/yukikurage/skillswap-api/internal/lock"
	"github.com/yukikurage/skillswap-api/internal/models"
	"github.com/yukikurage/skillswap-api/internal/repository"
	"github.com/yukikurage/skillswap-api/internal/services"
	"github.com/yukikurage/skillswap-api/internal/testutil"
	"gorm.io/gorm"
)

// SwapHandlerTestSuite defines the test suite for SwapHandler
type SwapHandlerTestSuite struct {
	suite.Suite
	db       *gorm.DB
	handler  *SwapHandler
	service  *services.SwapService
	router   *gin.Engine
	actingAs string
	alice    *models.User
	bob      *models.User
	carol    *models.User
}

type swapResponse struct {
	Success bool        `json:"success"`
	Swap    dto.SwapDTO `json:"swap"`
}

type swapListResponse struct {
	Success bool                  `json:"success"`
	Swaps   []dto.SwapListItemDTO `json:"swaps"`
}

// SetupTest runs before each test
func (suite *SwapHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.db = testutil.NewDB(suite.T())

	userRepo := repository.NewUserRepository(suite.db)
	swapRepo := repository.NewSwapRepository(suite.db)
	feedback := services.NewFeedbackService(
		repository.NewFeedbackRepository(suite.db), userRepo, swapRepo, lock.NewKeyedMutex(), zerolog.Nop(),
	)
	suite.service = services.NewSwapService(swapRepo, userRepo, feedback, zerolog.Nop())
	suite.handler = NewSwapHandler(suite.service)

	suite.alice = testutil.CreateUser(suite.T(), suite.db, "Alice", "alice@example.com")
	suite.bob = testutil.CreateUser(suite.T(), suite.db, "Bob", "bob@example.com")
	suite.carol = testutil.CreateUser(suite.T(), suite.db, "Carol", "carol@example.com")
	suite.actingAs = suite.alice.ID

	// Stand-in for RequireAuth
	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, suite.actingAs)
		c.Next()
	})
	suite.router.GET("/api/swaps", suite.handler.ListSwaps)
	suite.router.POST("/api/swaps", suite.handler.CreateSwap)
	suite.router.GET("/api/swaps/:id", suite.handler.GetSwap)
	suite.router.PATCH("/api/swaps/:id", suite.handler.UpdateSwap)
	suite.router.DELETE("/api/swaps/:id", suite.handler.DeleteSwap)
}

func (suite *SwapHandlerTestSuite) do(method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		suite.Require().NoError(json.NewEncoder(&body).Encode(payload))
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *SwapHandlerTestSuite) createSwap() *models.SwapRequest {
	swap, err := suite.service.Create(context.Background(), services.CreateSwapInput{
		RequesterID:  suite.alice.ID,
		TargetID:     suite.bob.ID,
		SkillOffered: "Guitar",
		SkillWanted:  "Spanish",
	})
	suite.Require().NoError(err)
	return swap
}

func (suite *SwapHandlerTestSuite) TestCreateSwap_Success() {
	w := suite.do(http.MethodPost, "/api/swaps", map[string]string{
		"target_id":     suite.bob.ID,
		"skill_offered": "Guitar",
		"skill_wanted":  "Spanish",
		"message":       "Weekly sessions?",
	})

	suite.Require().Equal(http.StatusCreated, w.Code)

	var response swapResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.True(response.Success)
	suite.Equal(models.SwapStatusPending, response.Swap.Status)
	suite.Equal("Bob", response.Swap.TargetName)
}

func (suite *SwapHandlerTestSuite) TestCreateSwap_MissingSkills() {
	w := suite.do(http.MethodPost, "/api/swaps", map[string]string{
		"target_id": suite.bob.ID,
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *SwapHandlerTestSuite) TestCreateSwap_UnknownTarget() {
	w := suite.do(http.MethodPost, "/api/swaps", map[string]string{
		"target_id":     "missing",
		"skill_offered": "Guitar",
		"skill_wanted":  "Spanish",
	})
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *SwapHandlerTestSuite) TestListSwaps_TypedByDirection() {
	suite.createSwap()

	w := suite.do(http.MethodGet, "/api/swaps", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var response swapListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Swaps, 1)
	suite.Equal(services.SwapOutgoing, response.Swaps[0].Type)

	suite.actingAs = suite.bob.ID
	w = suite.do(http.MethodGet, "/api/swaps?status=pending", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Swaps, 1)
	suite.Equal(services.SwapIncoming, response.Swaps[0].Type)
}

func (suite *SwapHandlerTestSuite) TestUpdateSwap_CompleteWithRating() {
	swap := suite.createSwap()

	w := suite.do(http.MethodPatch, "/api/swaps/"+swap.ID, map[string]interface{}{
		"status":   "completed",
		"rating":   5,
		"feedback": "Excellent",
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	var response swapResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal(models.SwapStatusCompleted, response.Swap.Status)

	suite.Equal(5.0, testutil.Reload(suite.T(), suite.db, suite.bob.ID).Rating)
	suite.Equal(1, testutil.Reload(suite.T(), suite.db, suite.alice.ID).SwapsCompleted)
}

func (suite *SwapHandlerTestSuite) TestUpdateSwap_Outsider() {
	swap := suite.createSwap()
	suite.actingAs = suite.carol.ID

	w := suite.do(http.MethodPatch, "/api/swaps/"+swap.ID, map[string]string{"status": "accepted"})
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *SwapHandlerTestSuite) TestDeleteSwap() {
	swap := suite.createSwap()

	suite.actingAs = suite.bob.ID
	w := suite.do(http.MethodDelete, "/api/swaps/"+swap.ID, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	_, err := suite.service.Transition(context.Background(), services.TransitionInput{
		SwapID: swap.ID, ActorID: suite.bob.ID, Status: models.SwapStatusAccepted,
	})
	suite.Require().NoError(err)

	suite.actingAs = suite.alice.ID
	w = suite.do(http.MethodDelete, "/api/swaps/"+swap.ID, nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	var body apierrors.APIError
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(suite.T(), apierrors.ErrCodeInvalidState, body.Code)

	pending := suite.createSwap()
	w = suite.do(http.MethodDelete, "/api/swaps/"+pending.ID, nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodGet, "/api/swaps/"+pending.ID, nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

// TestSwapHandlerTestSuite runs the test suite
func TestSwapHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SwapHandlerTestSuite))
}
