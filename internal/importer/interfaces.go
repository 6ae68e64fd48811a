package importer

import (
	"context"

	"github.com/dashboardvendas/importer/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines the two destination contracts the loader depends on.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	// InsertOrderIgnore inserts the header unless its order number already
	// exists; it reports whether a row was actually inserted and backfills
	// the generated id when it was.
	InsertOrderIgnore(ctx context.Context, order *models.Order) (bool, error)
	// InsertItems inserts line items unconditionally; items carry no
	// uniqueness constraint.
	InsertItems(ctx context.Context, items []models.OrderItem) error
}
