package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gallerist/gallery-api/internal/api/middleware"
	"github.com/gallerist/gallery-api/internal/domain"
	"github.com/gallerist/gallery-api/internal/service"
)

type stubCartService struct {
	addItemResult  domain.CartItem
	addItemErr     error
	checkoutResult domain.CheckoutResult
	checkoutErr    error
	view           domain.CartView
	viewErr        error
}

func (s *stubCartService) AddItem(_ context.Context, _, artPieceID uint, quantity int) (domain.CartItem, error) {
	if s.addItemErr != nil {
		return domain.CartItem{}, s.addItemErr
	}

	return s.addItemResult, nil
}

func (s *stubCartService) RemoveItem(_ context.Context, _, _ uint) error { return nil }

func (s *stubCartService) GetCart(_ context.Context, _ uint) (domain.CartView, error) {
	if s.viewErr != nil {
		return domain.CartView{}, s.viewErr
	}

	return s.view, nil
}

func (s *stubCartService) Checkout(_ context.Context, _ uint, _, _ string) (domain.CheckoutResult, error) {
	if s.checkoutErr != nil {
		return domain.CheckoutResult{}, s.checkoutErr
	}

	return s.checkoutResult, nil
}

func newCartTestRouter(svc CartService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewCartHandler(svc)

	authed := router.Group("/api/v1", func(ctx *gin.Context) {
		ctx.Set(middleware.ContextKeyUserID, uint(7))
	})
	authed.GET("/cart", handler.HandleGetCart)
	authed.POST("/cart/items", handler.HandleAddItem)
	authed.POST("/cart/checkout", handler.HandleCheckout)

	return router
}

func TestCartHandler_HandleCheckout(t *testing.T) {
	svc := &stubCartService{
		checkoutResult: domain.CheckoutResult{OrderID: 42, TotalAmount: decimal.NewFromInt(300)},
	}
	router := newCartTestRouter(svc)

	body := `{"order_type":"pickup"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/checkout", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusCreated, resp.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.EqualValues(t, 42, got["order_id"])
}

func TestCartHandler_HandleCheckoutInsufficientStock(t *testing.T) {
	svc := &stubCartService{
		checkoutErr: &service.InsufficientStockError{ArtPieceID: 3, Requested: 2, Available: 1},
	}
	router := newCartTestRouter(svc)

	body := `{"order_type":"pickup"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/checkout", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "art piece 3")
	assert.Contains(t, resp.Body.String(), "requested 2, available 1")
}

func TestCartHandler_HandleCheckoutEmptyCart(t *testing.T) {
	svc := &stubCartService{checkoutErr: service.ErrCartEmpty}
	router := newCartTestRouter(svc)

	body := `{"order_type":"pickup"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/checkout", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCartHandler_HandleCheckoutMissingDeliveryAddress(t *testing.T) {
	router := newCartTestRouter(&stubCartService{})

	body := `{"order_type":"delivery"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/checkout", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCartHandler_HandleAddItemNotAvailable(t *testing.T) {
	svc := &stubCartService{addItemErr: service.ErrArtPieceNotAvailable}
	router := newCartTestRouter(svc)

	body := `{"art_piece_id":1,"quantity":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCartHandler_HandleGetCart(t *testing.T) {
	svc := &stubCartService{
		view: domain.CartView{
			CartID: 5,
			Items: []domain.CartLine{
				{ArtPieceID: 1, Title: "Dawn", Quantity: 2, Price: decimal.NewFromInt(100)},
				{ArtPieceID: 2, Title: "Dusk", Quantity: 1, Price: decimal.NewFromInt(50)},
			},
		},
	}
	router := newCartTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var got struct {
		CartID uint   `json:"cart_id"`
		Total  string `json:"total"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.EqualValues(t, 5, got.CartID)
	assert.Equal(t, "250", got.Total)
}

func TestCartHandler_Unauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewCartHandler(&stubCartService{})
	router.GET("/api/v1/cart", handler.HandleGetCart)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
