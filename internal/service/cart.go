package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gallerist/gallery-api/internal/domain"
	"github.com/gallerist/gallery-api/internal/repository"
)

var (
	ErrCartNotFound     = repository.ErrCartNotFound
	ErrCartEmpty        = repository.ErrCartEmpty
	ErrCartItemNotFound = repository.ErrCartItemNotFound

	ErrArtPieceNotAvailable = errors.New("art piece is not available for purchase")
)

// InsufficientStockError identifies the offending line when a checkout or an
// add exceeds the remaining stock.
type InsufficientStockError = repository.InsufficientStockError

type CartRepository interface {
	AddItem(ctx context.Context, userID, artPieceID uint, quantity int, price decimal.Decimal) (domain.CartItem, error)
	RemoveItem(ctx context.Context, userID, artPieceID uint) error
	FindView(ctx context.Context, userID uint) (domain.CartView, error)
	Checkout(ctx context.Context, userID uint, orderType, deliveryAddress string) (domain.Order, error)
}

type CartService struct {
	repo      CartRepository
	pieceRepo ArtPieceRepository
}

func NewCartService(repo CartRepository, pieceRepo ArtPieceRepository) *CartService {
	return &CartService{
		repo:      repo,
		pieceRepo: pieceRepo,
	}
}

// AddItem puts an art piece into the caller's open cart, creating the cart on
// first use. The unit price is snapshotted from the piece at add time.
func (s *CartService) AddItem(ctx context.Context, userID, artPieceID uint, quantity int) (domain.CartItem, error) {
	piece, err := s.pieceRepo.FindByID(ctx, artPieceID)
	if err != nil {
		if errors.Is(err, repository.ErrArtPieceNotFound) {
			return domain.CartItem{}, ErrArtPieceNotFound
		}

		return domain.CartItem{}, fmt.Errorf("s.pieceRepo.FindByID -> %w", err)
	}

	if !piece.IsPurchasable() {
		return domain.CartItem{}, ErrArtPieceNotAvailable
	}

	item, err := s.repo.AddItem(ctx, userID, artPieceID, quantity, piece.EstimatedValue)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("s.repo.AddItem -> %w", err)
	}

	return item, nil
}

func (s *CartService) RemoveItem(ctx context.Context, userID, artPieceID uint) error {
	if err := s.repo.RemoveItem(ctx, userID, artPieceID); err != nil {
		return fmt.Errorf("s.repo.RemoveItem -> %w", err)
	}

	return nil
}

func (s *CartService) GetCart(ctx context.Context, userID uint) (domain.CartView, error) {
	view, err := s.repo.FindView(ctx, userID)
	if err != nil {
		return domain.CartView{}, fmt.Errorf("s.repo.FindView -> %w", err)
	}

	return view, nil
}

// Checkout converts the caller's open cart into a pending order. Stock checks,
// decrements and the cart close happen in one database transaction, so a
// failed line leaves every piece untouched.
func (s *CartService) Checkout(ctx context.Context, userID uint, orderType, deliveryAddress string) (domain.CheckoutResult, error) {
	if orderType == domain.OrderTypePickup {
		deliveryAddress = domain.PickupAddress
	}

	order, err := s.repo.Checkout(ctx, userID, orderType, deliveryAddress)
	if err != nil {
		return domain.CheckoutResult{}, fmt.Errorf("s.repo.Checkout -> %w", err)
	}

	return domain.CheckoutResult{
		OrderID:     order.ID,
		TotalAmount: order.TotalAmount,
	}, nil
}
