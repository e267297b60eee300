package v1

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/gallerist/gallery-api/internal/api/middleware"
	"github.com/gallerist/gallery-api/internal/domain"
)

type stubOrderService struct {
	order      domain.Order
	lastCaller domain.User
}

func (s *stubOrderService) GetOrder(_ context.Context, id uint, caller domain.User) (domain.Order, error) {
	s.lastCaller = caller

	return s.order, nil
}

func (s *stubOrderService) ListMyOrders(_ context.Context, _ uint) ([]domain.Order, error) {
	return nil, nil
}

func (s *stubOrderService) ListOrders(_ context.Context) ([]domain.Order, error) { return nil, nil }

func (s *stubOrderService) Pay(_ context.Context, payment domain.Payment, _ domain.User) (domain.Payment, error) {
	return payment, nil
}

type stubUserService struct {
	user    domain.User
	userErr error
	calls   int
}

func (s *stubUserService) GetUser(_ context.Context, _ uint) (domain.User, error) {
	s.calls++
	if s.userErr != nil {
		return domain.User{}, s.userErr
	}

	return s.user, nil
}

func (s *stubUserService) ListUsers(_ context.Context) ([]domain.User, error) { return nil, nil }

func (s *stubUserService) UpdateProfile(_ context.Context, _ uint, _, _ string) (domain.User, error) {
	return domain.User{}, nil
}

func (s *stubUserService) DeleteAccount(_ context.Context, _ uint) error { return nil }

func TestOrderHandler_CallerFromRoleGate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	clerk := domain.User{ID: 2, Role: domain.RoleClerk}
	orderSvc := &stubOrderService{order: domain.Order{ID: 1, UserID: 9}}
	userSvc := &stubUserService{userErr: errors.New("must not be called")}

	router := gin.New()
	handler := NewOrderHandler(orderSvc, userSvc)
	router.GET("/api/v1/orders/:orderID", func(ctx *gin.Context) {
		ctx.Set(middleware.ContextKeyUserID, clerk.ID)
		ctx.Set(middleware.ContextKeyUser, clerk)
	}, handler.HandleGetOrder)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, clerk, orderSvc.lastCaller, "gate-loaded user should be reused")
	assert.Zero(t, userSvc.calls, "no second lookup when the gate already ran")
}

func TestOrderHandler_CallerLookupFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)

	visitor := domain.User{ID: 7, Role: domain.RoleVisitor}
	orderSvc := &stubOrderService{order: domain.Order{ID: 1, UserID: visitor.ID}}
	userSvc := &stubUserService{user: visitor}

	router := gin.New()
	handler := NewOrderHandler(orderSvc, userSvc)
	router.GET("/api/v1/orders/:orderID", func(ctx *gin.Context) {
		ctx.Set(middleware.ContextKeyUserID, visitor.ID)
	}, handler.HandleGetOrder)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, visitor, orderSvc.lastCaller)
	assert.Equal(t, 1, userSvc.calls)
}
