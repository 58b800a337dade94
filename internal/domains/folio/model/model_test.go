package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hms/internal/domains/folio/model"
)

func TestFolioRecalculate(t *testing.T) {
	items := []model.LineItem{
		{Type: model.LineItemTypeRoomCharge, Quantity: 2, UnitPrice: 1200, Total: 2400},
		{Type: model.LineItemTypeFood, Quantity: 1, UnitPrice: 500, Total: 500},
	}

	tests := []struct {
		name           string
		folio          model.Folio
		items          []model.LineItem
		wantSubtotal   float64
		wantTaxAmount  float64
		wantGrandTotal float64
	}{
		{
			name:           "no discount no tax",
			folio:          model.Folio{},
			items:          items,
			wantSubtotal:   2900,
			wantTaxAmount:  0,
			wantGrandTotal: 2900,
		},
		{
			name:           "percent discount",
			folio:          model.Folio{DiscountPercent: 10},
			items:          items,
			wantSubtotal:   2900,
			wantTaxAmount:  0,
			wantGrandTotal: 2610,
		},
		{
			name:           "flat discount",
			folio:          model.Folio{DiscountAmount: 400},
			items:          items,
			wantSubtotal:   2900,
			wantTaxAmount:  0,
			wantGrandTotal: 2500,
		},
		{
			name:           "flat and percent discounts stack",
			folio:          model.Folio{DiscountAmount: 100, DiscountPercent: 10},
			items:          items,
			wantSubtotal:   2900,
			wantTaxAmount:  0,
			wantGrandTotal: 2510,
		},
		{
			name:           "tax applies after discount",
			folio:          model.Folio{DiscountPercent: 10, TaxPercent: 12},
			items:          items,
			wantSubtotal:   2900,
			wantTaxAmount:  313.2,
			wantGrandTotal: 2923.2,
		},
		{
			name:           "no line items",
			folio:          model.Folio{TaxPercent: 12},
			items:          nil,
			wantSubtotal:   0,
			wantTaxAmount:  0,
			wantGrandTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.folio.Recalculate(tt.items)

			assert.InDelta(t, tt.wantSubtotal, tt.folio.Subtotal, 0.001)
			assert.InDelta(t, tt.wantTaxAmount, tt.folio.TaxAmount, 0.001)
			assert.InDelta(t, tt.wantGrandTotal, tt.folio.GrandTotal, 0.001)
		})
	}
}

func TestFolioRecalculateIsIdempotent(t *testing.T) {
	folio := model.Folio{DiscountPercent: 10, TaxPercent: 5}
	items := []model.LineItem{{Total: 1000}}

	folio.Recalculate(items)
	first := folio.GrandTotal

	folio.Recalculate(items)

	assert.InDelta(t, first, folio.GrandTotal, 0.001)
}
