//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"atelier-store/internal/domain/reservation"
	"atelier-store/internal/handler/api"
	"atelier-store/internal/usecase/commands"
	"atelier-store/internal/usecase/queries"
	commandsmock "atelier-store/tests/mock/commands"
	queriesmock "atelier-store/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testSessionID = "aabbccddeeff00112233445566778899"

var handlerNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockCartQueries
	handler      *api.CartHandler
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCommands, s.mockQueries)

	// Stand-in for the session cookie middleware.
	sessionMiddleware := func(c *gin.Context) {
		c.Set("cart_session_id", testSessionID)
		c.Next()
	}

	s.router.POST("/api/cart/items", sessionMiddleware, s.handler.AddItem)
	s.router.DELETE("/api/cart/items/:productID", sessionMiddleware, s.handler.RemoveItem)
	s.router.GET("/api/cart", sessionMiddleware, s.handler.GetCart)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) postItem(productID string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]string{"product_id": productID})
	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *CartHandlerTestSuite) TestAddItem_Success() {
	productID := uuid.New()
	hold, err := reservation.NewHold(handlerNow, productID, testSessionID, 15*time.Minute)
	s.Require().NoError(err)

	s.mockCommands.EXPECT().
		Reserve(gomock.Any(), testSessionID, productID).
		Return(hold, nil)

	w := s.postItem(productID.String())
	s.Equal(http.StatusCreated, w.Code)

	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(productID.String(), resp["product_id"])
	s.Equal("active", resp["status"])
}

func (s *CartHandlerTestSuite) TestAddItem_JustTaken() {
	productID := uuid.New()
	s.mockCommands.EXPECT().
		Reserve(gomock.Any(), testSessionID, productID).
		Return(nil, commands.ErrProductHeld)

	w := s.postItem(productID.String())
	s.Equal(http.StatusConflict, w.Code)
	s.Contains(w.Body.String(), "just taken")
}

func (s *CartHandlerTestSuite) TestAddItem_Sold() {
	productID := uuid.New()
	s.mockCommands.EXPECT().
		Reserve(gomock.Any(), testSessionID, productID).
		Return(nil, commands.ErrProductSold)

	w := s.postItem(productID.String())
	s.Equal(http.StatusGone, w.Code)
}

func (s *CartHandlerTestSuite) TestAddItem_NotFound() {
	productID := uuid.New()
	s.mockCommands.EXPECT().
		Reserve(gomock.Any(), testSessionID, productID).
		Return(nil, commands.ErrProductNotFound)

	w := s.postItem(productID.String())
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *CartHandlerTestSuite) TestAddItem_MalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", bytes.NewReader([]byte(`{"product_id":"not-a-uuid"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *CartHandlerTestSuite) TestRemoveItem_NoContent() {
	productID := uuid.New()
	s.mockCommands.EXPECT().
		Release(gomock.Any(), testSessionID, productID).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/cart/items/"+productID.String(), nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusNoContent, w.Code)
}

func (s *CartHandlerTestSuite) TestRemoveItem_BadID() {
	req := httptest.NewRequest(http.MethodDelete, "/api/cart/items/not-a-uuid", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *CartHandlerTestSuite) TestGetCart() {
	views := []*queries.HoldView{
		{
			ID:        uuid.New(),
			ProductID: uuid.New(),
			SessionID: testSessionID,
			Status:    "active",
			CreatedAt: handlerNow,
			ExpiresAt: handlerNow.Add(15 * time.Minute),
		},
	}
	s.mockQueries.EXPECT().
		ListActive(gomock.Any(), testSessionID).
		Return(views, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusOK, w.Code)

	var resp struct {
		Items []map[string]any `json:"items"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Len(resp.Items, 1)
	s.Equal(views[0].ProductID.String(), resp.Items[0]["product_id"])
}
