package importer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dashboardvendas/importer/pkg/config"
	"github.com/dashboardvendas/importer/pkg/db/models"
	pkgerrors "github.com/dashboardvendas/importer/pkg/errors"
	"github.com/dashboardvendas/importer/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newLoaderDB opens a per-test in-memory database. The DSN is named after the
// test so parallel packages never share state.
func newLoaderDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Order{}, &models.OrderItem{}))
	return conn
}

func newLoader(db *gorm.DB, repo Repository, cfg config.ImportConfig) *Loader {
	return newLoaderTo(io.Discard, db, repo, cfg)
}

func newLoaderTo(out io.Writer, db *gorm.DB, repo Repository, cfg config.ImportConfig) *Loader {
	return NewLoader(db, repo, logger.New(logger.Options{ServiceName: "importer-test", Output: out}), cfg)
}

var loaderCols = []string{
	colOrderNumber, colOrderedAt, colOrderStatus, colTotal,
	colProductName, colSKU, colUnitPrice, colQuantity,
}

func loaderRow(order, product, sku, qty string) []string {
	return []string{order, "15/11/2025 10:00:00", "Aberto", "100,00", product, sku, "50,00", qty}
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestLoaderRunInsertsOrdersAndItems(t *testing.T) {
	db := newLoaderDB(t)
	src := sliceSource{records: makeRecords(t, loaderCols, [][]string{
		loaderRow("1001", "Camiseta", "sku-1", "2"),
		loaderRow("1001", "Boné", "sku-2", "1"),
		loaderRow("1002", "Caneca", "sku-3", "3"),
	})}

	l := newLoader(db, NewRepository(db), config.ImportConfig{CheckpointEvery: 100})
	sum, err := l.Run(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, 2, sum.OrdersSeen)
	assert.Equal(t, 2, sum.OrdersInserted)
	assert.Equal(t, 3, sum.ItemsInserted)

	assert.Equal(t, int64(2), countRows(t, db, &models.Order{}))
	assert.Equal(t, int64(3), countRows(t, db, &models.OrderItem{}))

	var order models.Order
	require.NoError(t, db.Where("numero_pedido = ?", "1001").First(&order).Error)
	require.NotNil(t, order.OrderedAt)
	assert.Equal(t, "Aberto", order.OrderStatus)

	var items []models.OrderItem
	require.NoError(t, db.Where("pedido_id = ?", order.ID).Order("id").Find(&items).Error)
	require.Len(t, items, 2)
	assert.Equal(t, "Camiseta", items[0].ProductName)
	assert.Equal(t, "Boné", items[1].ProductName)
	assert.Equal(t, "1001", items[0].OrderNumber)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestLoaderRunRerunIsNoop(t *testing.T) {
	db := newLoaderDB(t)
	src := sliceSource{records: makeRecords(t, loaderCols, [][]string{
		loaderRow("2001", "Camiseta", "sku-1", "1"),
		loaderRow("2002", "Caneca", "sku-2", "1"),
	})}

	l := newLoader(db, NewRepository(db), config.ImportConfig{CheckpointEvery: 100})

	_, err := l.Run(context.Background(), src)
	require.NoError(t, err)

	sum, err := l.Run(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, 2, sum.OrdersSeen)
	assert.Equal(t, 0, sum.OrdersInserted)
	assert.Equal(t, 0, sum.ItemsInserted)

	assert.Equal(t, int64(2), countRows(t, db, &models.Order{}))
	assert.Equal(t, int64(2), countRows(t, db, &models.OrderItem{}))
}

func TestLoaderRunSkipsItemsForExistingOrders(t *testing.T) {
	db := newLoaderDB(t)
	require.NoError(t, db.Create(&models.Order{OrderNumber: "3001"}).Error)

	src := sliceSource{records: makeRecords(t, loaderCols, [][]string{
		loaderRow("3001", "Camiseta", "sku-1", "1"),
		loaderRow("3002", "Caneca", "sku-2", "1"),
	})}

	l := newLoader(db, NewRepository(db), config.ImportConfig{CheckpointEvery: 100})
	sum, err := l.Run(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, 2, sum.OrdersSeen)
	assert.Equal(t, 1, sum.OrdersInserted)
	assert.Equal(t, 1, sum.ItemsInserted)

	var leftover int64
	require.NoError(t, db.Model(&models.OrderItem{}).Where("numero_pedido = ?", "3001").Count(&leftover).Error)
	assert.Zero(t, leftover, "pre-existing orders must not receive items")
}

// failingRepo injects a failure on one specific order number and passes
// everything else through.
type failingRepo struct {
	inner  Repository
	failOn string
}

func (f *failingRepo) WithTx(tx *gorm.DB) Repository {
	return &failingRepo{inner: f.inner.WithTx(tx), failOn: f.failOn}
}

func (f *failingRepo) InsertOrderIgnore(ctx context.Context, order *models.Order) (bool, error) {
	if order.OrderNumber == f.failOn {
		return false, errors.New("injected insert failure")
	}
	return f.inner.InsertOrderIgnore(ctx, order)
}

func (f *failingRepo) InsertItems(ctx context.Context, items []models.OrderItem) error {
	return f.inner.InsertItems(ctx, items)
}

func TestLoaderRunCheckpointSurvivesFailure(t *testing.T) {
	db := newLoaderDB(t)
	records := makeRecords(t, loaderCols, [][]string{
		loaderRow("A", "p", "s1", "1"),
		loaderRow("B", "p", "s2", "1"),
		loaderRow("C", "p", "s3", "1"),
		loaderRow("D", "p", "s4", "1"),
		loaderRow("E", "p", "s5", "1"),
	})
	src := sliceSource{records: records}
	cfg := config.ImportConfig{CheckpointEvery: 2}

	broken := newLoader(db, &failingRepo{inner: NewRepository(db), failOn: "D"}, cfg)
	sum, err := broken.Run(context.Background(), src)
	require.Error(t, err)

	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeDatabase, appErr.Code())

	// A and B were committed at the checkpoint; C rolled back with the failure.
	assert.Equal(t, int64(2), countRows(t, db, &models.Order{}))
	assert.Equal(t, int64(2), countRows(t, db, &models.OrderItem{}))

	// The next run picks up where the last commit left off.
	healed := newLoader(db, NewRepository(db), cfg)
	sum, err = healed.Run(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, 5, sum.OrdersSeen)
	assert.Equal(t, 3, sum.OrdersInserted)
	assert.Equal(t, 3, sum.ItemsInserted)
	assert.Equal(t, int64(5), countRows(t, db, &models.Order{}))
	assert.Equal(t, int64(5), countRows(t, db, &models.OrderItem{}))
}

func TestLoaderRunEmptyOrderNumberGroup(t *testing.T) {
	db := newLoaderDB(t)
	src := sliceSource{records: makeRecords(t, loaderCols, [][]string{
		loaderRow("", "Camiseta", "sku-1", "1"),
		loaderRow("", "Boné", "sku-2", "1"),
	})}

	l := newLoader(db, NewRepository(db), config.ImportConfig{CheckpointEvery: 100})
	sum, err := l.Run(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, 1, sum.OrdersSeen)
	assert.Equal(t, 1, sum.OrdersInserted)
	assert.Equal(t, 2, sum.ItemsInserted)

	var order models.Order
	require.NoError(t, db.Where("numero_pedido = ?", "").First(&order).Error)
	assert.Equal(t, int64(2), countRows(t, db, &models.OrderItem{}))
}

func TestLoaderRunTagsLogsWithOrderNumber(t *testing.T) {
	db := newLoaderDB(t)
	src := sliceSource{records: makeRecords(t, loaderCols, [][]string{
		loaderRow("4001", "Camiseta", "sku-1", "1"),
		loaderRow("4002", "Caneca", "sku-2", "1"),
	})}

	var out bytes.Buffer
	l := newLoaderTo(&out, db, NewRepository(db), config.ImportConfig{CheckpointEvery: 1})
	_, err := l.Run(context.Background(), src)
	require.NoError(t, err)

	logs := out.String()
	assert.Contains(t, logs, `"order_number":"4001"`)
	assert.Contains(t, logs, `"order_number":"4002"`)
}

func TestLoaderRunWrapsSourceErrors(t *testing.T) {
	db := newLoaderDB(t)
	boom := errors.New("disk gone")

	l := newLoader(db, NewRepository(db), config.ImportConfig{CheckpointEvery: 100})
	_, err := l.Run(context.Background(), erroringSource{err: boom})
	require.Error(t, err)
	require.ErrorIs(t, err, boom)

	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeSource, appErr.Code())
}

func TestLoaderRunStatementTimeoutZeroMeansUnbounded(t *testing.T) {
	l := &Loader{stmtTimeout: 0}
	ctx, cancel := l.stmtCtx(context.Background())
	defer cancel()
	_, ok := ctx.Deadline()
	assert.False(t, ok)

	l.stmtTimeout = time.Second
	ctx, cancel = l.stmtCtx(context.Background())
	defer cancel()
	_, ok = ctx.Deadline()
	assert.True(t, ok)
}
