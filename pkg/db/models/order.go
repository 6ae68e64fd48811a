package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the header row for one purchase, keyed by the platform-assigned
// order number. Column names follow the existing dashboard schema, which the
// previous importer already populated.
type Order struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"`
	OrderNumber string `gorm:"column:numero_pedido;uniqueIndex:pedidos_numero_pedido_key;not null"`
	ExternalID  string `gorm:"column:identificador_pedido"`

	OrderedAt  *time.Time `gorm:"column:data_pedido"`
	PaidAt     *time.Time `gorm:"column:data_pagamento"`
	ShippedAt  *time.Time `gorm:"column:data_envio"`
	CanceledAt *time.Time `gorm:"column:data_cancelamento"`

	// Platform-defined free text, not a closed set.
	OrderStatus    string `gorm:"column:status_pedido"`
	PaymentStatus  string `gorm:"column:status_pagamento"`
	ShippingStatus string `gorm:"column:status_envio"`

	Currency     string          `gorm:"column:moeda"`
	Subtotal     decimal.Decimal `gorm:"column:subtotal;type:numeric(12,2)"`
	Discount     decimal.Decimal `gorm:"column:desconto;type:numeric(12,2)"`
	ShippingCost decimal.Decimal `gorm:"column:valor_frete;type:numeric(12,2)"`
	Total        decimal.Decimal `gorm:"column:total;type:numeric(12,2)"`

	Email          string `gorm:"column:email"`
	BuyerName      string `gorm:"column:nome_comprador"`
	TaxID          string `gorm:"column:cpf_cnpj"`
	Phone          string `gorm:"column:telefone"`
	RecipientName  string `gorm:"column:nome_entrega"`
	RecipientPhone string `gorm:"column:telefone_entrega"`
	Street         string `gorm:"column:endereco"`
	StreetNumber   string `gorm:"column:numero"`
	Complement     string `gorm:"column:complemento"`
	Neighborhood   string `gorm:"column:bairro"`
	City           string `gorm:"column:cidade"`
	PostalCode     string `gorm:"column:codigo_postal"`
	State          string `gorm:"column:estado"`
	Country        string `gorm:"column:pais"`

	ShippingMethod string `gorm:"column:forma_entrega"`
	PaymentMethod  string `gorm:"column:forma_pagamento"`
	TrackingCode   string `gorm:"column:codigo_rastreio"`
	TransactionID  string `gorm:"column:identificador_transacao"`
	Coupon         string `gorm:"column:cupom_desconto"`

	BuyerNotes         string `gorm:"column:anotacoes_comprador"`
	SellerNotes        string `gorm:"column:anotacoes_vendedor"`
	CancellationReason string `gorm:"column:motivo_cancelamento"`

	Channel      string `gorm:"column:canal"`
	RegisteredBy string `gorm:"column:pessoa_registrou_venda"`
	SaleLocation string `gorm:"column:local_venda"`
	Seller       string `gorm:"column:vendedor"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Order) TableName() string {
	return "pedidos"
}
