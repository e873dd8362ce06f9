package booking

import (
	"context"

	"gorm.io/gorm"
)

// UnitOfWork runs a function against a Repository bound to one
// transaction: committed when fn returns nil, rolled back on error or panic.
type UnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

func (u *UnitOfWork) Do(ctx context.Context, fn func(repo *Repository) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newRepository(tx))
	})
}
