package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrCartNotFound     = errors.New("no open cart for user")
	ErrCartEmpty        = errors.New("cart is empty")
	ErrCartItemNotFound = errors.New("art piece not in cart")
)

// InsufficientStockError names the first cart line whose requested quantity
// exceeds the piece's current stock. The whole checkout aborts on it.
type InsufficientStockError struct {
	ArtPieceID uint
	Requested  int
	Available  int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for art piece %v: requested %v, available %v",
		e.ArtPieceID, e.Requested, e.Available)
}

const (
	cartOpen   = 1
	cartClosed = 0
)

type Cart struct {
	ID uint `gorm:"primaryKey"`

	UserID uint `gorm:"index;not null"`
	Status int  `gorm:"not null;default:1"` // 1 open, 0 closed; closed carts are never reopened

	CreatedAt time.Time
	UpdatedAt time.Time
}

type CartItem struct {
	ID uint `gorm:"primaryKey"`

	CartID     uint            `gorm:"not null;uniqueIndex:uni_cart_art_piece"`
	ArtPieceID uint            `gorm:"not null;uniqueIndex:uni_cart_art_piece"`
	Quantity   int             `gorm:"not null"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2);not null"` // unit price snapshot taken at add time
}

// CartLineView is a cart item joined with its art piece.
type CartLineView struct {
	ArtPieceID uint
	Title      string
	Quantity   int
	Price      decimal.Decimal
}

type CartDAO struct {
	db *gorm.DB
}

func NewCartDAO(db *gorm.DB) *CartDAO {
	return &CartDAO{
		db: db,
	}
}

func (d *CartDAO) findOpenCart(tx *gorm.DB, userID uint) (Cart, error) {
	var cart Cart

	result := tx.Where("user_id = ? AND status = ?", userID, cartOpen).First(&cart)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Cart{}, ErrCartNotFound
		}

		return Cart{}, result.Error
	}

	return cart, nil
}

// AddItem puts quantity units of an art piece into the user's open cart,
// creating the cart lazily. An existing line for the same piece is
// incremented instead of duplicated. Stock is not checked here; only
// checkout validates against stock.
func (d *CartDAO) AddItem(ctx context.Context, userID, artPieceID uint, quantity int, price decimal.Decimal) (CartItem, error) {
	var item CartItem

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&ArtPiece{}, artPieceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrArtPieceNotFound
			}

			return err
		}

		cart, err := d.findOpenCart(tx, userID)
		if errors.Is(err, ErrCartNotFound) {
			// A concurrent request may create the open cart first. ON CONFLICT
			// DO NOTHING keeps the transaction alive when the partial unique
			// index fires; zero rows affected means the winner's cart must be
			// re-read.
			cart = Cart{UserID: userID, Status: cartOpen}
			result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&cart)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				cart, err = d.findOpenCart(tx, userID)
				if err != nil {
					return err
				}
			}
		} else if err != nil {
			return err
		}

		result := tx.Where("cart_id = ? AND art_piece_id = ?", cart.ID, artPieceID).First(&item)
		if result.Error != nil {
			if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return result.Error
			}

			item = CartItem{
				CartID:     cart.ID,
				ArtPieceID: artPieceID,
				Quantity:   quantity,
				Price:      price,
			}

			return tx.Create(&item).Error
		}

		item.Quantity += quantity

		return tx.Model(&CartItem{ID: item.ID}).Update("quantity", item.Quantity).Error
	})
	if err != nil {
		return CartItem{}, err
	}

	return item, nil
}

// RemoveItem deletes one line from the user's open cart. Other lines are
// untouched.
func (d *CartDAO) RemoveItem(ctx context.Context, userID, artPieceID uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := d.findOpenCart(tx, userID)
		if err != nil {
			return err
		}

		result := tx.Where("cart_id = ? AND art_piece_id = ?", cart.ID, artPieceID).
			Delete(&CartItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCartItemNotFound
		}

		return nil
	})
}

// FindView returns the open cart's id and its lines joined with art piece
// titles. The total stays derived on the caller's side.
func (d *CartDAO) FindView(ctx context.Context, userID uint) (uint, []CartLineView, error) {
	cart, err := d.findOpenCart(d.db.WithContext(ctx), userID)
	if err != nil {
		return 0, nil, err
	}

	var lines []CartLineView
	result := d.db.WithContext(ctx).
		Model(&CartItem{}).
		Select("cart_items.art_piece_id, art_pieces.title, cart_items.quantity, cart_items.price").
		Joins("JOIN art_pieces ON art_pieces.id = cart_items.art_piece_id").
		Where("cart_items.cart_id = ?", cart.ID).
		Order("cart_items.id").
		Scan(&lines)
	if result.Error != nil {
		return 0, nil, result.Error
	}

	return cart.ID, lines, nil
}

type checkoutLine struct {
	ArtPieceID uint
	Quantity   int
	Price      decimal.Decimal
	Stock      int
}

// Checkout converts the user's open cart into an order inside one database
// transaction: validate every line against stock, decrement stock, insert the
// order, close the cart. Any failure rolls the whole sequence back, leaving
// stock untouched and the cart open. Art piece rows are locked FOR UPDATE so
// concurrent checkouts cannot both pass validation on the same stock.
func (d *CartDAO) Checkout(ctx context.Context, userID uint, orderType, deliveryAddress string) (Order, error) {
	var order Order

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := d.findOpenCart(tx, userID)
		if err != nil {
			return err
		}

		var lines []checkoutLine
		result := tx.Model(&CartItem{}).
			Select("cart_items.art_piece_id, cart_items.quantity, cart_items.price, art_pieces.quantity AS stock").
			Joins("JOIN art_pieces ON art_pieces.id = cart_items.art_piece_id").
			Where("cart_items.cart_id = ?", cart.ID).
			Order("cart_items.id").
			Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "art_pieces"}}).
			Scan(&lines)
		if result.Error != nil {
			return result.Error
		}
		if len(lines) == 0 {
			return ErrCartEmpty
		}

		total := decimal.Zero
		for _, line := range lines {
			if line.Quantity > line.Stock {
				return &InsufficientStockError{
					ArtPieceID: line.ArtPieceID,
					Requested:  line.Quantity,
					Available:  line.Stock,
				}
			}
			total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}

		for _, line := range lines {
			err = tx.Model(&ArtPiece{ID: line.ArtPieceID}).
				Update("quantity", gorm.Expr("quantity - ?", line.Quantity)).Error
			if err != nil {
				return err
			}
		}

		order = Order{
			UserID:          userID,
			OrderType:       orderType,
			DeliveryAddress: deliveryAddress,
			TotalAmount:     total,
			Status:          "pending",
		}
		if err = tx.Create(&order).Error; err != nil {
			return err
		}

		return tx.Model(&Cart{ID: cart.ID}).Update("status", cartClosed).Error
	})
	if err != nil {
		return Order{}, err
	}

	return order, nil
}
