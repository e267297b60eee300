package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gallerist/gallery-api/internal/api/handler/v1/request"
	"github.com/gallerist/gallery-api/internal/api/handler/v1/response"
	"github.com/gallerist/gallery-api/internal/domain"
	"github.com/gallerist/gallery-api/internal/service"
)

type OrderService interface {
	GetOrder(ctx context.Context, id uint, caller domain.User) (domain.Order, error)
	ListMyOrders(ctx context.Context, userID uint) ([]domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	Pay(ctx context.Context, payment domain.Payment, caller domain.User) (domain.Payment, error)
}

type OrderHandler struct {
	svc     OrderService
	userSvc UserService
}

func NewOrderHandler(svc OrderService, userSvc UserService) *OrderHandler {
	return &OrderHandler{
		svc:     svc,
		userSvc: userSvc,
	}
}

func (h *OrderHandler) caller(ctx *gin.Context) (domain.User, bool) {
	// A role gate already loaded the user on staff routes; only fall back to
	// a lookup when the route carries just the token's user ID.
	if user, err := getUserFromContext(ctx); err == nil {
		return user, true
	}

	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err.Error()))

		return domain.User{}, false
	}

	user, err := h.userSvc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized("unknown user"))

		return domain.User{}, false
	}

	return user, true
}

// HandleGetOrder godoc
// @Summary      Get an order by ID
// @Tags         orders
// @Produce      json
// @Param        orderID   path      int  true "order ID"
// @Success      200      {object}   domain.Order
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /orders/{orderID} [get]
func (h *OrderHandler) HandleGetOrder(ctx *gin.Context) {
	rawOrderID := ctx.Param("orderID")
	orderID, err := strconv.ParseUint(rawOrderID, 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, ok := h.caller(ctx)
	if !ok {
		return
	}

	order, err := h.svc.GetOrder(ctx.Request.Context(), uint(orderID), user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			response.RenderErr(ctx, response.ErrNotFound("order", "ID", rawOrderID))
		case errors.Is(err, service.ErrNotOrderOwner):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotOrderOwner.Error()))
		default:
			err = fmt.Errorf("v1.HandleGetOrder -> h.svc.GetOrder -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, order)
}

// HandleListMyOrders godoc
// @Summary      List the caller's orders
// @Tags         orders
// @Produce      json
// @Success      200      {array}    domain.Order
// @Failure      500      {object}   response.Err
// @Router       /orders/mine [get]
func (h *OrderHandler) HandleListMyOrders(ctx *gin.Context) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err.Error()))

		return
	}

	orders, err := h.svc.ListMyOrders(ctx.Request.Context(), userID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListMyOrders -> h.svc.ListMyOrders -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, orders)
}

// HandleListOrders godoc
// @Summary      List all orders
// @Tags         orders
// @Produce      json
// @Success      200      {array}    domain.Order
// @Failure      500      {object}   response.Err
// @Router       /orders [get]
func (h *OrderHandler) HandleListOrders(ctx *gin.Context) {
	orders, err := h.svc.ListOrders(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListOrders -> h.svc.ListOrders -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, orders)
}

// HandlePay godoc
// @Summary      Pay for a pending order
// @Tags         orders
// @Produce      json
// @Param        orderID   path      int  true "order ID"
// @Param        request   body      request.PaymentRequest true "request body"
// @Success      201      {object}   domain.Payment
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /orders/{orderID}/payments [post]
func (h *OrderHandler) HandlePay(ctx *gin.Context) {
	rawOrderID := ctx.Param("orderID")
	orderID, err := strconv.ParseUint(rawOrderID, 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, ok := h.caller(ctx)
	if !ok {
		return
	}

	var req request.PaymentRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	payment, err := h.svc.Pay(ctx.Request.Context(), domain.Payment{
		OrderID:            uint(orderID),
		PayerName:          req.PayerName,
		PayerCardNumber:    req.PayerCardNumber,
		PayerExpiry:        req.PayerExpiry,
		PayerCardType:      req.PayerCardType,
		ReceiverName:       req.ReceiverName,
		ReceiverCardNumber: req.ReceiverCardNumber,
	}, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			response.RenderErr(ctx, response.ErrNotFound("order", "ID", rawOrderID))
		case errors.Is(err, service.ErrNotOrderOwner):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotOrderOwner.Error()))
		case errors.Is(err, service.ErrOrderCompleted):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrOrderCompleted))
		default:
			err = fmt.Errorf("v1.HandlePay -> h.svc.Pay -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, payment)
}
