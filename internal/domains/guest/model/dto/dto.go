package dto

import (
	"hms/internal/domains/guest/model"
	"hms/shared"
	gModel "hms/shared/model"
	"hms/shared/timezone"
	"mime/multipart"

	"github.com/google/uuid"
)

type CreateGuestRequest struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Phone string `json:"phone" validate:"required,max=20"`
	Email string `json:"email" validate:"omitempty,email,max=100"`
	City  string `json:"city"  validate:"omitempty,max=100"`
}

func (c *CreateGuestRequest) ToModel(user string) model.Guest {
	return model.Guest{
		ID:    uuid.NewString(),
		Name:  c.Name,
		Phone: c.Phone,
		Email: c.Email,
		City:  c.City,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateGuestRequest struct {
	Name  string `db:"name"  json:"name"  validate:"omitempty,max=100"`
	Phone string `db:"phone" json:"phone" validate:"omitempty,max=20"`
	Email string `db:"email" json:"email" validate:"omitempty,email,max=100"`
	City  string `db:"city"  json:"city"  validate:"omitempty,max=100"`
}

type UploadIDProofRequest struct {
	File       multipart.File
	FileHeader *multipart.FileHeader `validate:"required,mimetypes=image/jpeg image/png application/pdf,maxfilesize=5"`
}

type GuestResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	City    string `json:"city,omitempty"`
	IDProof string `json:"id_proof,omitempty"`
}

func (r *GuestResponse) FromModel(mod model.Guest) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Phone = mod.Phone
	r.Email = mod.Email
	r.City = mod.City
	r.IDProof = mod.IDProof
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
