package importer

import "github.com/dashboardvendas/importer/pkg/db/models"

// BuildOrder projects a group into its header entity. The group's first row
// is the representative: the platform repeats header fields on every line of
// an order, so any row would do, and the original import always took the
// first.
func BuildOrder(g Group) models.Order {
	rep := g.Rows[0]

	currency := rep.Get(colCurrency)
	if currency == "" {
		currency = "BRL"
	}

	return models.Order{
		OrderNumber: g.Key,
		ExternalID:  rep.Get(colExternalID),

		OrderedAt:  ParseTimestamp(rep.Get(colOrderedAt)),
		PaidAt:     ParseTimestamp(rep.Get(colPaidAt)),
		ShippedAt:  ParseTimestamp(rep.Get(colShippedAt)),
		CanceledAt: ParseTimestamp(rep.Get(colCanceledAt)),

		OrderStatus:    rep.Get(colOrderStatus),
		PaymentStatus:  rep.Get(colPaymentStatus),
		ShippingStatus: rep.Get(colShippingStatus),

		Currency:     currency,
		Subtotal:     ParseDecimal(rep.Get(colSubtotal)),
		Discount:     ParseDecimal(rep.Get(colDiscount)),
		ShippingCost: ParseDecimal(rep.Get(colShippingCost)),
		Total:        ParseDecimal(rep.Get(colTotal)),

		Email:          rep.Get(colEmail),
		BuyerName:      rep.Get(colBuyerName),
		TaxID:          rep.Get(colTaxID),
		Phone:          rep.Get(colPhone),
		RecipientName:  rep.Get(colRecipientName),
		RecipientPhone: rep.Get(colRecipientPhone),
		Street:         rep.Get(colStreet),
		StreetNumber:   rep.Get(colStreetNumber),
		Complement:     rep.Get(colComplement),
		Neighborhood:   rep.Get(colNeighborhood),
		City:           rep.Get(colCity),
		PostalCode:     rep.Get(colPostalCode),
		State:          rep.Get(colState),
		Country:        rep.Get(colCountry),

		ShippingMethod: rep.Get(colShippingMethod),
		PaymentMethod:  rep.Get(colPaymentMethod),
		TrackingCode:   rep.Get(colTrackingCode),
		TransactionID:  rep.Get(colTransactionID),
		Coupon:         rep.Get(colCoupon),

		BuyerNotes:         rep.Get(colBuyerNotes),
		SellerNotes:        rep.Get(colSellerNotes),
		CancellationReason: rep.Get(colCancellationReason),

		Channel:      rep.Get(colChannel),
		RegisteredBy: rep.Get(colRegisteredBy),
		SaleLocation: rep.Get(colSaleLocation),
		Seller:       rep.Get(colSeller),
	}
}

// BuildItem projects one flat row into a line item under the resolved parent.
// Quantity goes through the decimal normalizer first to tolerate "2,0"-style
// input, then truncates; an unparseable quantity therefore lands on 0, not 1.
func BuildItem(row RawRecord, orderID int64) models.OrderItem {
	return models.OrderItem{
		OrderID:         orderID,
		OrderNumber:     row.Get(colOrderNumber),
		ProductName:     row.Get(colProductName),
		SKU:             row.Get(colSKU),
		UnitPrice:       ParseDecimal(row.Get(colUnitPrice)),
		Quantity:        int(ParseDecimal(row.Get(colQuantity)).IntPart()),
		PhysicalProduct: ParseBool(row.Get(colPhysical)),
	}
}
