package model

import (
	"hms/shared/model"
	"time"
)

const (
	TableName  = "folios"
	EntityName = "folio"

	FieldID              = "id"
	FieldBookingID       = "booking_id"
	FieldSubtotal        = "subtotal"
	FieldDiscountAmount  = "discount_amount"
	FieldDiscountPercent = "discount_percent"
	FieldTaxAmount       = "tax_amount"
	FieldTaxPercent      = "tax_percent"
	FieldGrandTotal      = "grand_total"
)

const (
	LineItemTableName  = "folio_line_items"
	LineItemEntityName = "folio_line_item"

	LineItemFieldID      = "id"
	LineItemFieldFolioID = "folio_id"
	LineItemFieldType    = "type"
)

const (
	LineItemTypeRoomCharge = "ROOM_CHARGE"
	LineItemTypeExtraBed   = "EXTRA_BED"
	LineItemTypeFood       = "FOOD"
	LineItemTypeLaundry    = "LAUNDRY"
	LineItemTypeTransport  = "TRANSPORT"
	LineItemTypeMisc       = "MISC"
)

// Folio is the running bill attached 1:1 to a booking. Its totals are always
// derived from the line items and discount/tax fields through Recalculate;
// nothing else writes grand_total.
type Folio struct {
	ID              string  `db:"id"`
	BookingID       string  `db:"booking_id"`
	Subtotal        float64 `db:"subtotal"`
	DiscountAmount  float64 `db:"discount_amount"`
	DiscountPercent float64 `db:"discount_percent"`
	TaxAmount       float64 `db:"tax_amount"`
	TaxPercent      float64 `db:"tax_percent"`
	GrandTotal      float64 `db:"grand_total"`
	model.Metadata
}

type LineItem struct {
	ID          string    `db:"id"`
	FolioID     string    `db:"folio_id"`
	Type        string    `db:"type"`
	Description string    `db:"description"`
	Quantity    int       `db:"quantity"`
	UnitPrice   float64   `db:"unit_price"`
	Total       float64   `db:"total"`
	Date        time.Time `db:"date"`
	model.Metadata
}

// Recalculate derives the folio totals from the given line items:
//
//	subtotal      = Σ item.total
//	discountTotal = discountAmount + subtotal * discountPercent/100
//	afterDiscount = subtotal - discountTotal
//	taxAmount     = afterDiscount * taxPercent/100
//	grandTotal    = afterDiscount + taxAmount
//
// The flat discount and the percent discount stack.
func (f *Folio) Recalculate(items []LineItem) {
	subtotal := 0.0
	for _, item := range items {
		subtotal += item.Total
	}

	discountTotal := f.DiscountAmount + subtotal*f.DiscountPercent/100
	afterDiscount := subtotal - discountTotal

	f.Subtotal = subtotal
	f.TaxAmount = afterDiscount * f.TaxPercent / 100
	f.GrandTotal = afterDiscount + f.TaxAmount
}
