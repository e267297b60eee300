package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gallerist/gallery-api/internal/domain"
	"github.com/gallerist/gallery-api/internal/repository"
)

var (
	ErrOrderNotFound  = repository.ErrOrderNotFound
	ErrNotOrderOwner  = errors.New("order belongs to another user")
	ErrOrderCompleted = errors.New("order has already been paid")
)

type OrderRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Order, error)
	FindByUserID(ctx context.Context, userID uint) ([]domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	CreatePayment(ctx context.Context, payment domain.Payment) (domain.Payment, error)
}

type OrderService struct {
	repo OrderRepository
}

func NewOrderService(repo OrderRepository) *OrderService {
	return &OrderService{
		repo: repo,
	}
}

// GetOrder returns a single order. Visitors may only read their own orders,
// staff may read any.
func (s *OrderService) GetOrder(ctx context.Context, id uint, caller domain.User) (domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if order.UserID != caller.ID && !caller.IsStaff() {
		return domain.Order{}, ErrNotOrderOwner
	}

	return order, nil
}

func (s *OrderService) ListMyOrders(ctx context.Context, userID uint) ([]domain.Order, error) {
	orders, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}

	return orders, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return orders, nil
}

// Pay records a payment against a pending order and marks it completed. The
// amount charged is the order total, never a caller-supplied figure.
func (s *OrderService) Pay(ctx context.Context, payment domain.Payment, caller domain.User) (domain.Payment, error) {
	order, err := s.repo.FindByID(ctx, payment.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domain.Payment{}, ErrOrderNotFound
		}

		return domain.Payment{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if order.UserID != caller.ID {
		return domain.Payment{}, ErrNotOrderOwner
	}

	if order.Status == domain.OrderCompleted {
		return domain.Payment{}, ErrOrderCompleted
	}

	payment.Amount = order.TotalAmount

	created, err := s.repo.CreatePayment(ctx, payment)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("s.repo.CreatePayment -> %w", err)
	}

	return created, nil
}
