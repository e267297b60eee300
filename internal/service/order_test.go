package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gallerist/gallery-api/internal/domain"
	"github.com/gallerist/gallery-api/internal/repository"
)

type fakeOrderRepo struct {
	orders   map[uint]domain.Order
	payments []domain.Payment
}

func newFakeOrderRepo(orders ...domain.Order) *fakeOrderRepo {
	repo := &fakeOrderRepo{orders: map[uint]domain.Order{}}
	for _, o := range orders {
		repo.orders[o.ID] = o
	}

	return repo
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id uint) (domain.Order, error) {
	order, exists := r.orders[id]
	if !exists {
		return domain.Order{}, repository.ErrOrderNotFound
	}

	return order, nil
}

func (r *fakeOrderRepo) FindByUserID(_ context.Context, userID uint) ([]domain.Order, error) {
	var result []domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			result = append(result, o)
		}
	}

	return result, nil
}

func (r *fakeOrderRepo) FindAll(_ context.Context) ([]domain.Order, error) {
	result := make([]domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		result = append(result, o)
	}

	return result, nil
}

func (r *fakeOrderRepo) CreatePayment(_ context.Context, payment domain.Payment) (domain.Payment, error) {
	payment.ID = uint(len(r.payments) + 1)
	r.payments = append(r.payments, payment)

	order := r.orders[payment.OrderID]
	order.Status = domain.OrderCompleted
	r.orders[payment.OrderID] = order

	return payment, nil
}

var (
	visitor = domain.User{ID: 7, Role: domain.RoleVisitor}
	clerk   = domain.User{ID: 2, Role: domain.RoleClerk}
)

func pendingOrder(id, userID uint, total int64) domain.Order {
	return domain.Order{
		ID:          id,
		UserID:      userID,
		OrderType:   domain.OrderTypePickup,
		TotalAmount: decimal.NewFromInt(total),
		Status:      domain.OrderPending,
	}
}

func TestOrderService_GetOrder(t *testing.T) {
	repo := newFakeOrderRepo(pendingOrder(1, visitor.ID, 100))
	svc := NewOrderService(repo)

	t.Run("owner can read", func(t *testing.T) {
		order, err := svc.GetOrder(context.Background(), 1, visitor)
		require.NoError(t, err)
		assert.Equal(t, uint(1), order.ID)
	})

	t.Run("staff can read any", func(t *testing.T) {
		_, err := svc.GetOrder(context.Background(), 1, clerk)
		assert.NoError(t, err)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		stranger := domain.User{ID: 99, Role: domain.RoleVisitor}
		_, err := svc.GetOrder(context.Background(), 1, stranger)
		assert.ErrorIs(t, err, ErrNotOrderOwner)
	})

	t.Run("unknown order", func(t *testing.T) {
		_, err := svc.GetOrder(context.Background(), 404, visitor)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestOrderService_Pay(t *testing.T) {
	repo := newFakeOrderRepo(pendingOrder(1, visitor.ID, 750))
	svc := NewOrderService(repo)

	payment, err := svc.Pay(context.Background(), domain.Payment{
		OrderID:         1,
		PayerName:       "Visitor",
		PayerCardNumber: "4111111111111111",
	}, visitor)
	require.NoError(t, err)

	assert.True(t, payment.Amount.Equal(decimal.NewFromInt(750)), "amount must come from the order, not the caller")
	assert.Equal(t, domain.OrderCompleted, repo.orders[1].Status)
}

func TestOrderService_PayRejectsForeignOrder(t *testing.T) {
	repo := newFakeOrderRepo(pendingOrder(1, 42, 100))
	svc := NewOrderService(repo)

	_, err := svc.Pay(context.Background(), domain.Payment{OrderID: 1}, visitor)
	assert.ErrorIs(t, err, ErrNotOrderOwner)
	assert.Empty(t, repo.payments)
}

func TestOrderService_PayRejectsCompletedOrder(t *testing.T) {
	order := pendingOrder(1, visitor.ID, 100)
	order.Status = domain.OrderCompleted
	repo := newFakeOrderRepo(order)
	svc := NewOrderService(repo)

	_, err := svc.Pay(context.Background(), domain.Payment{OrderID: 1}, visitor)
	assert.ErrorIs(t, err, ErrOrderCompleted)
	assert.Empty(t, repo.payments)
}

func TestOrderService_PayUnknownOrder(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo())

	_, err := svc.Pay(context.Background(), domain.Payment{OrderID: 404}, visitor)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
