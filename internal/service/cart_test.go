package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gallerist/gallery-api/internal/domain"
	"github.com/gallerist/gallery-api/internal/repository"
)

type fakeArtPieceRepo struct {
	pieces map[uint]domain.ArtPiece
}

func newFakeArtPieceRepo(pieces ...domain.ArtPiece) *fakeArtPieceRepo {
	repo := &fakeArtPieceRepo{pieces: map[uint]domain.ArtPiece{}}
	for _, p := range pieces {
		repo.pieces[p.ID] = p
	}

	return repo
}

func (r *fakeArtPieceRepo) Create(_ context.Context, piece domain.ArtPiece) (domain.ArtPiece, error) {
	r.pieces[piece.ID] = piece

	return piece, nil
}

func (r *fakeArtPieceRepo) FindByID(_ context.Context, id uint) (domain.ArtPiece, error) {
	piece, exists := r.pieces[id]
	if !exists {
		return domain.ArtPiece{}, repository.ErrArtPieceNotFound
	}

	return piece, nil
}

func (r *fakeArtPieceRepo) FindAll(_ context.Context) ([]domain.ArtPiece, error) { return nil, nil }

func (r *fakeArtPieceRepo) FindAvailable(_ context.Context) ([]domain.ArtPiece, error) {
	return nil, nil
}

func (r *fakeArtPieceRepo) Update(_ context.Context, piece domain.ArtPiece) (domain.ArtPiece, error) {
	r.pieces[piece.ID] = piece

	return piece, nil
}

func (r *fakeArtPieceRepo) Delete(_ context.Context, id uint) error {
	delete(r.pieces, id)

	return nil
}

type fakeCartRepo struct {
	addedPrice      decimal.Decimal
	checkoutAddress string
	checkoutType    string
	checkoutErr     error
	checkoutOrder   domain.Order
}

func (r *fakeCartRepo) AddItem(_ context.Context, userID, artPieceID uint, quantity int, price decimal.Decimal) (domain.CartItem, error) {
	r.addedPrice = price

	return domain.CartItem{
		ID:         1,
		CartID:     1,
		ArtPieceID: artPieceID,
		Quantity:   quantity,
		Price:      price,
	}, nil
}

func (r *fakeCartRepo) RemoveItem(_ context.Context, _, _ uint) error { return nil }

func (r *fakeCartRepo) FindView(_ context.Context, _ uint) (domain.CartView, error) {
	return domain.CartView{}, nil
}

func (r *fakeCartRepo) Checkout(_ context.Context, _ uint, orderType, deliveryAddress string) (domain.Order, error) {
	r.checkoutType = orderType
	r.checkoutAddress = deliveryAddress
	if r.checkoutErr != nil {
		return domain.Order{}, r.checkoutErr
	}

	return r.checkoutOrder, nil
}

func availablePiece(id uint, price int64, stock int) domain.ArtPiece {
	return domain.ArtPiece{
		ID:             id,
		Title:          fmt.Sprintf("Piece %d", id),
		Category:       domain.CategoryNature,
		EstimatedValue: decimal.NewFromInt(price),
		Availability:   domain.AvailabilityAvailable,
		IsActive:       true,
		Quantity:       stock,
		ArtistID:       1,
	}
}

func TestCartService_AddItem(t *testing.T) {
	piece := availablePiece(1, 250, 3)
	cartRepo := &fakeCartRepo{}
	svc := NewCartService(cartRepo, newFakeArtPieceRepo(piece))

	item, err := svc.AddItem(context.Background(), 7, 1, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, item.Quantity)
	assert.True(t, item.Price.Equal(decimal.NewFromInt(250)), "price snapshot should match the piece value")
	assert.True(t, cartRepo.addedPrice.Equal(decimal.NewFromInt(250)))
}

func TestCartService_AddItemRejectsUnavailable(t *testing.T) {
	displayed := availablePiece(1, 100, 5)
	displayed.Availability = domain.AvailabilityDisplayed

	inactive := availablePiece(2, 100, 5)
	inactive.IsActive = false

	outOfStock := availablePiece(3, 100, 0)

	svc := NewCartService(&fakeCartRepo{}, newFakeArtPieceRepo(displayed, inactive, outOfStock))

	for _, id := range []uint{1, 2, 3} {
		_, err := svc.AddItem(context.Background(), 7, id, 1)
		assert.ErrorIs(t, err, ErrArtPieceNotAvailable, "piece %d", id)
	}
}

func TestCartService_AddItemUnknownPiece(t *testing.T) {
	svc := NewCartService(&fakeCartRepo{}, newFakeArtPieceRepo())

	_, err := svc.AddItem(context.Background(), 7, 404, 1)
	assert.ErrorIs(t, err, ErrArtPieceNotFound)
}

func TestCartService_CheckoutPickupAddress(t *testing.T) {
	cartRepo := &fakeCartRepo{
		checkoutOrder: domain.Order{ID: 11, TotalAmount: decimal.NewFromInt(500)},
	}
	svc := NewCartService(cartRepo, newFakeArtPieceRepo())

	result, err := svc.Checkout(context.Background(), 7, domain.OrderTypePickup, "should be ignored")
	require.NoError(t, err)

	assert.Equal(t, domain.PickupAddress, cartRepo.checkoutAddress)
	assert.Equal(t, uint(11), result.OrderID)
	assert.True(t, result.TotalAmount.Equal(decimal.NewFromInt(500)))
}

func TestCartService_CheckoutDeliveryAddress(t *testing.T) {
	cartRepo := &fakeCartRepo{checkoutOrder: domain.Order{ID: 12}}
	svc := NewCartService(cartRepo, newFakeArtPieceRepo())

	_, err := svc.Checkout(context.Background(), 7, domain.OrderTypeDelivery, "12 Gallery Lane")
	require.NoError(t, err)

	assert.Equal(t, "12 Gallery Lane", cartRepo.checkoutAddress)
	assert.Equal(t, domain.OrderTypeDelivery, cartRepo.checkoutType)
}

func TestCartService_CheckoutInsufficientStock(t *testing.T) {
	stockErr := &InsufficientStockError{ArtPieceID: 3, Requested: 2, Available: 1}
	cartRepo := &fakeCartRepo{checkoutErr: stockErr}
	svc := NewCartService(cartRepo, newFakeArtPieceRepo())

	_, err := svc.Checkout(context.Background(), 7, domain.OrderTypePickup, "")
	require.Error(t, err)

	var got *InsufficientStockError
	require.True(t, errors.As(err, &got), "typed stock error should survive wrapping")
	assert.Equal(t, uint(3), got.ArtPieceID)
	assert.Equal(t, 2, got.Requested)
	assert.Equal(t, 1, got.Available)
}

func TestCartService_CheckoutEmptyCart(t *testing.T) {
	cartRepo := &fakeCartRepo{checkoutErr: repository.ErrCartEmpty}
	svc := NewCartService(cartRepo, newFakeArtPieceRepo())

	_, err := svc.Checkout(context.Background(), 7, domain.OrderTypePickup, "")
	assert.ErrorIs(t, err, ErrCartEmpty)
}
