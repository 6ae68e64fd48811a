package importer

import (
	"context"
	"testing"

	"github.com/dashboardvendas/importer/pkg/db/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertOrderIgnore(t *testing.T) {
	db := newLoaderDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	first := models.Order{OrderNumber: "9001", Total: decimal.RequireFromString("10.50")}
	inserted, err := repo.InsertOrderIgnore(ctx, &first)
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.NotZero(t, first.ID, "insert must backfill the generated id")

	// Same order number again: ignored, nothing written.
	dup := models.Order{OrderNumber: "9001", Total: decimal.RequireFromString("99.99")}
	inserted, err = repo.InsertOrderIgnore(ctx, &dup)
	require.NoError(t, err)
	assert.False(t, inserted)

	assert.Equal(t, int64(1), countRows(t, db, &models.Order{}))

	var stored models.Order
	require.NoError(t, db.Where("numero_pedido = ?", "9001").First(&stored).Error)
	assert.True(t, stored.Total.Equal(decimal.RequireFromString("10.5")),
		"the first write wins; a duplicate must not overwrite")
}

func TestInsertOrderIgnoreTreatsUniqueViolationAsSkip(t *testing.T) {
	db := newLoaderDB(t)
	// sqlite's conflict clause never misses the index, so a trigger stands in
	// for a driver surfacing the unique violation directly.
	require.NoError(t, db.Exec(`CREATE TRIGGER pedidos_race BEFORE INSERT ON pedidos
		WHEN NEW.numero_pedido = '9100' BEGIN
			SELECT RAISE(ABORT, 'UNIQUE constraint failed: pedidos.numero_pedido');
		END`).Error)

	repo := NewRepository(db)
	inserted, err := repo.InsertOrderIgnore(context.Background(), &models.Order{OrderNumber: "9100"})
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.Equal(t, int64(0), countRows(t, db, &models.Order{}))
}

func TestInsertItems(t *testing.T) {
	db := newLoaderDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	order := models.Order{OrderNumber: "9002"}
	_, err := repo.InsertOrderIgnore(ctx, &order)
	require.NoError(t, err)

	items := []models.OrderItem{
		{OrderID: order.ID, OrderNumber: "9002", ProductName: "Camiseta", Quantity: 1},
		{OrderID: order.ID, OrderNumber: "9002", ProductName: "Boné", Quantity: 2},
	}
	require.NoError(t, repo.InsertItems(ctx, items))
	assert.Equal(t, int64(2), countRows(t, db, &models.OrderItem{}))
}

func TestInsertItemsEmptySliceIsNoop(t *testing.T) {
	db := newLoaderDB(t)
	repo := NewRepository(db)
	require.NoError(t, repo.InsertItems(context.Background(), nil))
	assert.Equal(t, int64(0), countRows(t, db, &models.OrderItem{}))
}

func TestWithTxNilFallsBackToBase(t *testing.T) {
	db := newLoaderDB(t)
	repo := NewRepository(db)
	assert.Equal(t, repo, repo.WithTx(nil))
}
