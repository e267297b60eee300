package repository

import (
	"context"
	"fmt"

	"github.com/gallerist/gallery-api/internal/domain"
	"github.com/gallerist/gallery-api/internal/repository/dao"
)

var ErrOrderNotFound = dao.ErrOrderNotFound

type OrderDAO interface {
	FindByID(ctx context.Context, id uint) (dao.Order, error)
	FindByUserID(ctx context.Context, userID uint) ([]dao.Order, error)
	FindAll(ctx context.Context) ([]dao.Order, error)
	InsertPayment(ctx context.Context, payment dao.Payment) (dao.Payment, error)
}

type OrderRepository struct {
	dao OrderDAO
}

func NewOrderRepository(dao OrderDAO) *OrderRepository {
	return &OrderRepository{
		dao: dao,
	}
}

func (r *OrderRepository) FindByID(ctx context.Context, id uint) (domain.Order, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *OrderRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Order, error) {
	found, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *OrderRepository) CreatePayment(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	created, err := r.dao.InsertPayment(ctx, dao.Payment{
		OrderID:            payment.OrderID,
		PayerName:          payment.PayerName,
		PayerCardNumber:    payment.PayerCardNumber,
		PayerExpiry:        payment.PayerExpiry,
		PayerCardType:      payment.PayerCardType,
		ReceiverName:       payment.ReceiverName,
		ReceiverCardNumber: payment.ReceiverCardNumber,
		Amount:             payment.Amount,
	})
	if err != nil {
		return domain.Payment{}, fmt.Errorf("r.dao.InsertPayment -> %w", err)
	}

	return domain.Payment{
		ID:                 created.ID,
		OrderID:            created.OrderID,
		PayerName:          created.PayerName,
		PayerCardNumber:    created.PayerCardNumber,
		PayerExpiry:        created.PayerExpiry,
		PayerCardType:      created.PayerCardType,
		ReceiverName:       created.ReceiverName,
		ReceiverCardNumber: created.ReceiverCardNumber,
		Amount:             created.Amount,
		CreatedAt:          created.CreatedAt,
	}, nil
}

func (r *OrderRepository) daoToDomain(o dao.Order) domain.Order {
	return domain.Order{
		ID:              o.ID,
		UserID:          o.UserID,
		OrderType:       o.OrderType,
		DeliveryAddress: o.DeliveryAddress,
		TotalAmount:     o.TotalAmount,
		Status:          o.Status,
		CreatedAt:       o.CreatedAt,
	}
}

func (r *OrderRepository) daosToDomain(orders []dao.Order) []domain.Order {
	result := make([]domain.Order, len(orders))
	for i, o := range orders {
		result[i] = r.daoToDomain(o)
	}

	return result
}
