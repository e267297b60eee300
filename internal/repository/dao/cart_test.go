package dao

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/ory/dockertest/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)
	require.NoError(t, pool.Client.Ping())

	resource, err := pool.Run("postgres", "16-alpine", []string{
		"POSTGRES_USER=gallery",
		"POSTGRES_PASSWORD=secret",
		"POSTGRES_DB=gallery_test",
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, pool.Purge(resource))
	})

	var db *gorm.DB
	err = pool.Retry(func() error {
		dsn := fmt.Sprintf("host=localhost port=%v user=gallery password=secret dbname=gallery_test sslmode=disable",
			resource.GetPort("5432/tcp"))

		var openErr error
		db, openErr = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if openErr != nil {
			return openErr
		}

		sqlDB, dbErr := db.DB()
		if dbErr != nil {
			return dbErr
		}

		return sqlDB.Ping()
	})
	require.NoError(t, err)

	require.NoError(t, InitTables(db))

	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) (User, ArtPiece, ArtPiece) {
	t.Helper()

	ctx := context.Background()

	user, err := NewUserDAO(db).Insert(ctx, User{
		Email:    "buyer@example.com",
		Password: "hashed",
		Name:     "Buyer",
		Role:     "visitor",
	})
	require.NoError(t, err)

	artist, err := NewArtistDAO(db).Insert(ctx, Artist{
		IDNumber:  "A-001",
		FirstName: "Hilma",
		Surname:   "Klint",
		IsActive:  true,
	})
	require.NoError(t, err)

	pieceDAO := NewArtPieceDAO(db)

	plentiful, err := pieceDAO.Insert(ctx, ArtPiece{
		Title:          "Dawn Prints",
		Category:       "Nature",
		EstimatedValue: decimal.NewFromInt(100),
		Availability:   "available",
		IsActive:       true,
		Quantity:       3,
		ArtistID:       artist.ID,
	})
	require.NoError(t, err)

	scarce, err := pieceDAO.Insert(ctx, ArtPiece{
		Title:          "Dusk Prints",
		Category:       "Nature",
		EstimatedValue: decimal.NewFromInt(200),
		Availability:   "available",
		IsActive:       true,
		Quantity:       1,
		ArtistID:       artist.ID,
	})
	require.NoError(t, err)

	return user, plentiful, scarce
}

func TestCartDAO_CheckoutAllOrNothing(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	user, plentiful, scarce := seedCatalog(t, db)
	cartDAO := NewCartDAO(db)
	pieceDAO := NewArtPieceDAO(db)

	_, err := cartDAO.AddItem(ctx, user.ID, plentiful.ID, 2, plentiful.EstimatedValue)
	require.NoError(t, err)
	_, err = cartDAO.AddItem(ctx, user.ID, scarce.ID, 2, scarce.EstimatedValue)
	require.NoError(t, err)

	_, err = cartDAO.Checkout(ctx, user.ID, "pickup", "N/A")
	require.Error(t, err)

	var stockErr *InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, scarce.ID, stockErr.ArtPieceID)
	assert.Equal(t, 2, stockErr.Requested)
	assert.Equal(t, 1, stockErr.Available)

	// The failed line must not have consumed stock from the passing line.
	after, err := pieceDAO.FindByID(ctx, plentiful.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, after.Quantity)

	after, err = pieceDAO.FindByID(ctx, scarce.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, after.Quantity)

	// The cart stays open and can be fixed up.
	err = cartDAO.RemoveItem(ctx, user.ID, scarce.ID)
	require.NoError(t, err)

	order, err := cartDAO.Checkout(ctx, user.ID, "pickup", "N/A")
	require.NoError(t, err)
	assert.Equal(t, "pending", order.Status)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(200)))

	after, err = pieceDAO.FindByID(ctx, plentiful.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, after.Quantity)
}

func TestCartDAO_CheckoutClosesCart(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	user, plentiful, _ := seedCatalog(t, db)
	cartDAO := NewCartDAO(db)

	item, err := cartDAO.AddItem(ctx, user.ID, plentiful.ID, 1, plentiful.EstimatedValue)
	require.NoError(t, err)

	_, err = cartDAO.Checkout(ctx, user.ID, "delivery", "12 Gallery Lane")
	require.NoError(t, err)

	// A closed cart is invisible; a later add starts a fresh one.
	_, _, err = cartDAO.FindView(ctx, user.ID)
	assert.ErrorIs(t, err, ErrCartNotFound)

	fresh, err := cartDAO.AddItem(ctx, user.ID, plentiful.ID, 1, plentiful.EstimatedValue)
	require.NoError(t, err)
	assert.NotEqual(t, item.CartID, fresh.CartID)
}

func TestCartDAO_CheckoutWithoutCart(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	user, _, _ := seedCatalog(t, db)
	cartDAO := NewCartDAO(db)

	_, err := cartDAO.Checkout(ctx, user.ID, "pickup", "N/A")
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestCartDAO_CheckoutEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	user, plentiful, _ := seedCatalog(t, db)
	cartDAO := NewCartDAO(db)

	_, err := cartDAO.AddItem(ctx, user.ID, plentiful.ID, 1, plentiful.EstimatedValue)
	require.NoError(t, err)
	require.NoError(t, cartDAO.RemoveItem(ctx, user.ID, plentiful.ID))

	// Removing the last line leaves the cart open but empty.
	_, err = cartDAO.Checkout(ctx, user.ID, "pickup", "N/A")
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestCartDAO_ConcurrentAddItemSingleCart(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	user, plentiful, scarce := seedCatalog(t, db)
	cartDAO := NewCartDAO(db)

	// Both adds race on creating the open cart; the loser must land in the
	// winner's cart instead of failing.
	pieces := []uint{plentiful.ID, scarce.ID}
	items := make([]CartItem, len(pieces))
	errs := make([]error, len(pieces))

	var wg sync.WaitGroup
	for i, pieceID := range pieces {
		wg.Add(1)
		go func(i int, pieceID uint) {
			defer wg.Done()
			items[i], errs[i] = cartDAO.AddItem(ctx, user.ID, pieceID, 1, decimal.NewFromInt(100))
		}(i, pieceID)
	}
	wg.Wait()

	for i := range pieces {
		require.NoError(t, errs[i])
	}
	assert.Equal(t, items[0].CartID, items[1].CartID)

	var count int64
	require.NoError(t, db.Model(&Cart{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCartDAO_RemoveMissingItem(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	user, plentiful, scarce := seedCatalog(t, db)
	cartDAO := NewCartDAO(db)

	_, err := cartDAO.AddItem(ctx, user.ID, plentiful.ID, 1, plentiful.EstimatedValue)
	require.NoError(t, err)

	err = cartDAO.RemoveItem(ctx, user.ID, scarce.ID)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestCartDAO_AddItemMergesLines(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	user, plentiful, _ := seedCatalog(t, db)
	cartDAO := NewCartDAO(db)

	first, err := cartDAO.AddItem(ctx, user.ID, plentiful.ID, 1, plentiful.EstimatedValue)
	require.NoError(t, err)

	second, err := cartDAO.AddItem(ctx, user.ID, plentiful.ID, 2, plentiful.EstimatedValue)
	require.NoError(t, err)

	assert.Equal(t, first.CartID, second.CartID)
	assert.Equal(t, 3, second.Quantity)
}
