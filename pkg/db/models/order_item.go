package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is one product line within an order. The order number is carried
// redundantly for query convenience alongside the foreign key.
type OrderItem struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID     int64  `gorm:"column:pedido_id;not null"`
	OrderNumber string `gorm:"column:numero_pedido"`

	ProductName string          `gorm:"column:nome_produto"`
	SKU         string          `gorm:"column:sku"`
	UnitPrice   decimal.Decimal `gorm:"column:valor_produto;type:numeric(12,2)"`
	Quantity    int             `gorm:"column:quantidade;not null"`
	// The source defaults the physical-good flag to true when unspecified.
	PhysicalProduct bool `gorm:"column:produto_fisico;default:true"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (OrderItem) TableName() string {
	return "itens_pedido"
}
