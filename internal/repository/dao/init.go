package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	err := db.AutoMigrate(
		&User{},
		&Artist{},
		&ArtPiece{},
		&Exhibition{},
		&ExhibitionArt{},
		&Registration{},
		&Cart{},
		&CartItem{},
		&Order{},
		&Payment{},
	)
	if err != nil {
		return err
	}

	// One open cart per user, enforced at the data layer. AutoMigrate cannot
	// express a partial index, so it is created directly.
	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS uni_carts_open_user ON carts (user_id) WHERE status = 1`,
	).Error
}
