package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/internal/domains/payment/model"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/logger"
	gRepo "hms/shared/repository"
)

type Payment interface {
	Insert(ctx context.Context, model model.Payment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Payment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Payment, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	SumByBooking(ctx context.Context, bookingID string) (float64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Payment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Payment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Payment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// SumByBooking totals all recorded payments for a booking.
func (repo *repositoryImpl) SumByBooking(ctx context.Context, bookingID string) (total float64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".payment.SumByBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := "SELECT COALESCE(SUM(amount), 0) FROM payments WHERE booking_id = $1"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.QueryRowxContext(ctx, query, bookingID).Scan(&total)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to sum payments: %w", err)
	}

	return total, nil
}
