package dto

import (
	"hms/internal/domains/folio/model"
	"hms/shared/constant"
	gModel "hms/shared/model"
	"hms/shared/timezone"

	"github.com/google/uuid"
)

type AddLineItemRequest struct {
	Type        string  `json:"type"        validate:"required,oneof=ROOM_CHARGE EXTRA_BED FOOD LAUNDRY TRANSPORT MISC"`
	Description string  `json:"description" validate:"required,max=200"`
	Quantity    int     `json:"quantity"    validate:"required,gte=1"`
	UnitPrice   float64 `json:"unit_price"  validate:"gte=0"`
}

func (c *AddLineItemRequest) ToModel(folioID, user string) model.LineItem {
	return model.LineItem{
		ID:          uuid.NewString(),
		FolioID:     folioID,
		Type:        c.Type,
		Description: c.Description,
		Quantity:    c.Quantity,
		UnitPrice:   c.UnitPrice,
		Total:       float64(c.Quantity) * c.UnitPrice,
		Date:        timezone.Now(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type RemoveLineItemRequest struct {
	// Force permits removal of the system-created ROOM_CHARGE item, which is
	// otherwise protected.
	Force bool `json:"force"`
}

type ApplyDiscountRequest struct {
	Amount  float64 `json:"amount"  validate:"gte=0"`
	Percent float64 `json:"percent" validate:"gte=0,lte=100"`
}

type LineItemResponse struct {
	ID          string  `json:"id"`
	FolioID     string  `json:"folio_id"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
	Date        string  `json:"date"`
}

func (r *LineItemResponse) FromModel(mod model.LineItem) {
	r.ID = mod.ID
	r.FolioID = mod.FolioID
	r.Type = mod.Type
	r.Description = mod.Description
	r.Quantity = mod.Quantity
	r.UnitPrice = mod.UnitPrice
	r.Total = mod.Total
	r.Date = timezone.Format(mod.Date, constant.DateOnlyFormat)
}

type FolioResponse struct {
	ID              string             `json:"id"`
	BookingID       string             `json:"booking_id"`
	LineItems       []LineItemResponse `json:"line_items"`
	Subtotal        float64            `json:"subtotal"`
	DiscountAmount  float64            `json:"discount_amount"`
	DiscountPercent float64            `json:"discount_percent"`
	TaxAmount       float64            `json:"tax_amount"`
	TaxPercent      float64            `json:"tax_percent"`
	GrandTotal      float64            `json:"grand_total"`
}

func (r *FolioResponse) FromModel(mod model.Folio, items []model.LineItem) {
	r.ID = mod.ID
	r.BookingID = mod.BookingID
	r.Subtotal = mod.Subtotal
	r.DiscountAmount = mod.DiscountAmount
	r.DiscountPercent = mod.DiscountPercent
	r.TaxAmount = mod.TaxAmount
	r.TaxPercent = mod.TaxPercent
	r.GrandTotal = mod.GrandTotal

	r.LineItems = make([]LineItemResponse, len(items))
	for i, item := range items {
		r.LineItems[i].FromModel(item)
	}
}

type BalanceSummaryResponse struct {
	BookingID   string  `json:"booking_id"`
	TotalBilled float64 `json:"total_billed"`
	TotalPaid   float64 `json:"total_paid"`
	BalanceDue  float64 `json:"balance_due"`
}
