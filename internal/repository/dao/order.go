package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound = errors.New("order not found")
)

type Order struct {
	ID uint `gorm:"primaryKey"`

	UserID          uint            `gorm:"index;not null"`
	OrderType       string          `gorm:"not null"` // "pickup" or "delivery"
	DeliveryAddress string          `gorm:"not null"` // "N/A" for pickup orders
	TotalAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status          string          `gorm:"not null;default:pending"`

	CreatedAt time.Time
}

type Payment struct {
	ID uint `gorm:"primaryKey"`

	OrderID            uint            `gorm:"index;not null"`
	PayerName          string          `gorm:"not null"`
	PayerCardNumber    string          `gorm:"not null"` // demo data only, no real PCI handling
	PayerExpiry        string          `gorm:"not null"`
	PayerCardType      string
	ReceiverName       string          `gorm:"not null"`
	ReceiverCardNumber string          `gorm:"not null"`
	Amount             decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	CreatedAt time.Time
}

type OrderDAO struct {
	db *gorm.DB
}

func NewOrderDAO(db *gorm.DB) *OrderDAO {
	return &OrderDAO{
		db: db,
	}
}

func (d *OrderDAO) FindByID(ctx context.Context, id uint) (Order, error) {
	var order Order

	result := d.db.WithContext(ctx).First(&order, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Order{}, ErrOrderNotFound
		}

		return Order{}, result.Error
	}

	return order, nil
}

func (d *OrderDAO) FindByUserID(ctx context.Context, userID uint) ([]Order, error) {
	var orders []Order

	result := d.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&orders)
	if result.Error != nil {
		return nil, result.Error
	}

	return orders, nil
}

func (d *OrderDAO) FindAll(ctx context.Context) ([]Order, error) {
	var orders []Order

	result := d.db.WithContext(ctx).Order("id").Find(&orders)
	if result.Error != nil {
		return nil, result.Error
	}

	return orders, nil
}

// InsertPayment records a payment against an existing order and marks the
// order completed. There is no idempotency key; a retried request records a
// second payment row.
func (d *OrderDAO) InsertPayment(ctx context.Context, payment Payment) (Payment, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&Order{}, payment.OrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}

			return err
		}

		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		return tx.Model(&Order{ID: payment.OrderID}).Update("status", "completed").Error
	})
	if err != nil {
		return Payment{}, err
	}

	return payment, nil
}
