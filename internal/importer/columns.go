package importer

// Column names exactly as the platform writes them in the export header.
// The "Data de envío" spelling is the platform's, not ours.
const (
	colOrderNumber = "Número do Pedido"
	colExternalID  = "Identificador do pedido"

	colOrderedAt  = "Data"
	colPaidAt     = "Data de pagamento"
	colShippedAt  = "Data de envío"
	colCanceledAt = "Data e hora do cancelamento"

	colOrderStatus    = "Status do Pedido"
	colPaymentStatus  = "Status do Pagamento"
	colShippingStatus = "Status do Envio"

	colCurrency     = "Moeda"
	colSubtotal     = "Subtotal"
	colDiscount     = "Desconto"
	colShippingCost = "Valor do Frete"
	colTotal        = "Total"

	colEmail          = "E-mail"
	colBuyerName      = "Nome do comprador"
	colTaxID          = "CPF / CNPJ"
	colPhone          = "Telefone"
	colRecipientName  = "Nome para a entrega"
	colRecipientPhone = "Telefone para a entrega"
	colStreet         = "Endereço"
	colStreetNumber   = "Número"
	colComplement     = "Complemento"
	colNeighborhood   = "Bairro"
	colCity           = "Cidade"
	colPostalCode     = "Código postal"
	colState          = "Estado"
	colCountry        = "País"

	colShippingMethod = "Forma de Entrega"
	colPaymentMethod  = "Forma de Pagamento"
	colTrackingCode   = "Código de rastreio do envio"
	colTransactionID  = "Identificador da transação no meio de pagamento"
	colCoupon         = "Cupom de Desconto"

	colBuyerNotes         = "Anotações do Comprador"
	colSellerNotes        = "Anotações do Vendedor"
	colCancellationReason = "Motivo do cancelamento"

	colChannel      = "Canal"
	colRegisteredBy = "Pessoa que registrou a venda"
	colSaleLocation = "Local de venda"
	colSeller       = "Vendedor"

	colProductName = "Nome do Produto"
	colSKU         = "SKU"
	colUnitPrice   = "Valor do Produto"
	colQuantity    = "Quantidade Comprada"
	colPhysical    = "Produto Fisico"
)
