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

type CartService interface {
	AddItem(ctx context.Context, userID, artPieceID uint, quantity int) (domain.CartItem, error)
	RemoveItem(ctx context.Context, userID, artPieceID uint) error
	GetCart(ctx context.Context, userID uint) (domain.CartView, error)
	Checkout(ctx context.Context, userID uint, orderType, deliveryAddress string) (domain.CheckoutResult, error)
}

type CartHandler struct {
	svc CartService
}

func NewCartHandler(svc CartService) *CartHandler {
	return &CartHandler{
		svc: svc,
	}
}

// HandleAddItem godoc
// @Summary      Add an art piece to the caller's cart
// @Tags         cart
// @Produce      json
// @Param        request   body      request.AddToCartRequest true "request body"
// @Success      201      {object}   domain.CartItem
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /cart/items [post]
func (h *CartHandler) HandleAddItem(ctx *gin.Context) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err.Error()))

		return
	}

	var req request.AddToCartRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	item, err := h.svc.AddItem(ctx.Request.Context(), userID, req.ArtPieceID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrArtPieceNotFound):
			response.RenderErr(ctx, response.ErrNotFound("art piece", "ID", req.ArtPieceID))
		case errors.Is(err, service.ErrArtPieceNotAvailable):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrArtPieceNotAvailable))
		default:
			err = fmt.Errorf("v1.HandleAddItem -> h.svc.AddItem -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, item)
}

// HandleRemoveItem godoc
// @Summary      Remove an art piece from the caller's cart
// @Tags         cart
// @Produce      json
// @Param        artPieceID path     int  true "art piece ID"
// @Success      204
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /cart/items/{artPieceID} [delete]
func (h *CartHandler) HandleRemoveItem(ctx *gin.Context) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err.Error()))

		return
	}

	rawArtPieceID := ctx.Param("artPieceID")
	artPieceID, err := strconv.ParseUint(rawArtPieceID, 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.RemoveItem(ctx.Request.Context(), userID, uint(artPieceID)); err != nil {
		if errors.Is(err, service.ErrCartNotFound) || errors.Is(err, service.ErrCartItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("cart item", "art piece ID", rawArtPieceID))

			return
		}

		err = fmt.Errorf("v1.HandleRemoveItem -> h.svc.RemoveItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGetCart godoc
// @Summary      View the caller's open cart
// @Tags         cart
// @Produce      json
// @Success      200      {object}   response.CartResponse
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /cart [get]
func (h *CartHandler) HandleGetCart(ctx *gin.Context) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err.Error()))

		return
	}

	view, err := h.svc.GetCart(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrCartNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("cart", "user ID", userID))

			return
		}

		err = fmt.Errorf("v1.HandleGetCart -> h.svc.GetCart -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewCartResponse(view))
}

// HandleCheckout godoc
// @Summary      Convert the caller's open cart into an order
// @Tags         cart
// @Produce      json
// @Param        request   body      request.CheckoutRequest true "request body"
// @Success      201      {object}   response.CheckoutResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /cart/checkout [post]
func (h *CartHandler) HandleCheckout(ctx *gin.Context) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err.Error()))

		return
	}

	var req request.CheckoutRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	result, err := h.svc.Checkout(ctx.Request.Context(), userID, req.OrderType, req.DeliveryAddress)
	if err != nil {
		var stockErr *service.InsufficientStockError

		switch {
		case errors.Is(err, service.ErrCartNotFound):
			response.RenderErr(ctx, response.ErrNotFound("cart", "user ID", userID))
		case errors.Is(err, service.ErrCartEmpty):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrCartEmpty))
		case errors.As(err, &stockErr):
			response.RenderErr(ctx, response.ErrBadRequest(stockErr))
		default:
			err = fmt.Errorf("v1.HandleCheckout -> h.svc.Checkout -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, response.CheckoutResponse{
		OrderID:     result.OrderID,
		TotalAmount: result.TotalAmount,
		Message:     "order created, awaiting payment",
	})
}
