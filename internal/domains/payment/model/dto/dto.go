package dto

import (
	"hms/internal/domains/payment/model"
	"hms/shared"
	"hms/shared/constant"
	gModel "hms/shared/model"
	"hms/shared/timezone"

	"github.com/google/uuid"
)

type AddPaymentRequest struct {
	BookingID string  `json:"booking_id" validate:"required"`
	Amount    float64 `json:"amount"     validate:"required,gt=0"`
	Method    string  `json:"method"     validate:"required,oneof=CASH UPI CARD ONLINE"`
	Reference string  `json:"reference"  validate:"omitempty,max=100"`
	Notes     string  `json:"notes"      validate:"omitempty"`
}

func (c *AddPaymentRequest) ToModel(folioID, user string) model.Payment {
	return model.Payment{
		ID:        uuid.NewString(),
		FolioID:   folioID,
		BookingID: c.BookingID,
		Amount:    c.Amount,
		Method:    c.Method,
		Reference: c.Reference,
		Notes:     c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePaymentRequest struct {
	Amount    float64 `db:"amount"    json:"amount"    validate:"omitempty,gt=0"`
	Method    string  `db:"method"    json:"method"    validate:"omitempty,oneof=CASH UPI CARD ONLINE"`
	Reference string  `db:"reference" json:"reference" validate:"omitempty,max=100"`
	Notes     string  `db:"notes"     json:"notes"     validate:"omitempty"`
	Reason    string  `json:"reason"                   validate:"required"`
}

type DeletePaymentRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type PaymentResponse struct {
	ID        string  `json:"id"`
	FolioID   string  `json:"folio_id"`
	BookingID string  `json:"booking_id"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	Reference string  `json:"reference,omitempty"`
	Notes     string  `json:"notes,omitempty"`
	CreatedAt string  `json:"created_at"`
	CreatedBy string  `json:"created_by"`
}

func (r *PaymentResponse) FromModel(mod model.Payment) {
	r.ID = mod.ID
	r.FolioID = mod.FolioID
	r.BookingID = mod.BookingID
	r.Amount = mod.Amount
	r.Method = mod.Method
	r.Reference = mod.Reference
	r.Notes = mod.Notes
	r.CreatedAt = timezone.Format(mod.CreatedAt, constant.DateFormat)
	r.CreatedBy = mod.CreatedBy
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}
