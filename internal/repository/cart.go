package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gallerist/gallery-api/internal/domain"
	"github.com/gallerist/gallery-api/internal/repository/dao"
)

var (
	ErrCartNotFound     = dao.ErrCartNotFound
	ErrCartEmpty        = dao.ErrCartEmpty
	ErrCartItemNotFound = dao.ErrCartItemNotFound
)

// InsufficientStockError is re-exported so callers above the DAO can match on
// it without importing the dao package.
type InsufficientStockError = dao.InsufficientStockError

type CartDAO interface {
	AddItem(ctx context.Context, userID, artPieceID uint, quantity int, price decimal.Decimal) (dao.CartItem, error)
	RemoveItem(ctx context.Context, userID, artPieceID uint) error
	FindView(ctx context.Context, userID uint) (uint, []dao.CartLineView, error)
	Checkout(ctx context.Context, userID uint, orderType, deliveryAddress string) (dao.Order, error)
}

type CartRepository struct {
	dao CartDAO
}

func NewCartRepository(dao CartDAO) *CartRepository {
	return &CartRepository{
		dao: dao,
	}
}

func (r *CartRepository) AddItem(ctx context.Context, userID, artPieceID uint, quantity int, price decimal.Decimal) (domain.CartItem, error) {
	item, err := r.dao.AddItem(ctx, userID, artPieceID, quantity, price)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("r.dao.AddItem -> %w", err)
	}

	return domain.CartItem{
		ID:         item.ID,
		CartID:     item.CartID,
		ArtPieceID: item.ArtPieceID,
		Quantity:   item.Quantity,
		Price:      item.Price,
	}, nil
}

func (r *CartRepository) RemoveItem(ctx context.Context, userID, artPieceID uint) error {
	if err := r.dao.RemoveItem(ctx, userID, artPieceID); err != nil {
		return fmt.Errorf("r.dao.RemoveItem -> %w", err)
	}

	return nil
}

func (r *CartRepository) FindView(ctx context.Context, userID uint) (domain.CartView, error) {
	cartID, lines, err := r.dao.FindView(ctx, userID)
	if err != nil {
		return domain.CartView{}, fmt.Errorf("r.dao.FindView -> %w", err)
	}

	view := domain.CartView{
		CartID: cartID,
		Items:  make([]domain.CartLine, len(lines)),
	}
	for i, line := range lines {
		view.Items[i] = domain.CartLine{
			ArtPieceID: line.ArtPieceID,
			Title:      line.Title,
			Quantity:   line.Quantity,
			Price:      line.Price,
		}
	}

	return view, nil
}

func (r *CartRepository) Checkout(ctx context.Context, userID uint, orderType, deliveryAddress string) (domain.Order, error) {
	order, err := r.dao.Checkout(ctx, userID, orderType, deliveryAddress)
	if err != nil {
		return domain.Order{}, fmt.Errorf("r.dao.Checkout -> %w", err)
	}

	return domain.Order{
		ID:              order.ID,
		UserID:          order.UserID,
		OrderType:       order.OrderType,
		DeliveryAddress: order.DeliveryAddress,
		TotalAmount:     order.TotalAmount,
		Status:          order.Status,
		CreatedAt:       order.CreatedAt,
	}, nil
}
