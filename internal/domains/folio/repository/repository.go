package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/internal/domains/folio/model"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	gRepo "hms/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Folio interface {
	Insert(ctx context.Context, model model.Folio) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Folio) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Folio, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error

	GetLineItems(ctx context.Context, folioID string) ([]model.LineItem, error)
	InsertLineItem(ctx context.Context, item model.LineItem) error
	InsertLineItemsTx(ctx context.Context, sqltx *sqlx.Tx, items []model.LineItem) error
	GetLineItem(ctx context.Context, filter gDto.FilterGroup) (model.LineItem, error)
	DeleteLineItem(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Folio]
	lineItems gRepo.Repository[model.LineItem]
	db        *postgres.Connection
	otel      otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Folio {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Folio](model.EntityName, model.TableName, model.FieldID, db, otel),
		lineItems:  gRepo.NewRepository[model.LineItem](model.LineItemEntityName, model.LineItemTableName, model.LineItemFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetLineItems(ctx context.Context, folioID string) ([]model.LineItem, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.LineItemFieldFolioID,
				Value:    folioID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.LineItemTableName,
			},
		},
	}

	params := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}

	return repo.lineItems.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) InsertLineItem(ctx context.Context, item model.LineItem) error {
	return repo.lineItems.Insert(ctx, item) //nolint:wrapcheck
}

func (repo *repositoryImpl) InsertLineItemsTx(ctx context.Context, sqltx *sqlx.Tx, items []model.LineItem) error {
	return repo.lineItems.InsertBulkTx(ctx, sqltx, items) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetLineItem(ctx context.Context, filter gDto.FilterGroup) (model.LineItem, error) {
	return repo.lineItems.Get(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) DeleteLineItem(ctx context.Context, filter gDto.FilterGroup) error {
	return repo.lineItems.Delete(ctx, filter) //nolint:wrapcheck
}
