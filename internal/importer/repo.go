package importer

import (
	"context"

	pkgdb "github.com/dashboardvendas/importer/pkg/db"
	"github.com/dashboardvendas/importer/pkg/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds an import repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) InsertOrderIgnore(ctx context.Context, order *models.Order) (bool, error) {
	res := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "numero_pedido"}},
			DoNothing: true,
		}).
		Create(order)
	if res.Error != nil {
		// A writer racing past the conflict clause still hits the unique
		// index; that is the same "already present" outcome, not a failure.
		if pkgdb.IsUniqueViolation(res.Error, "") {
			return false, nil
		}
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) InsertItems(ctx context.Context, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}
