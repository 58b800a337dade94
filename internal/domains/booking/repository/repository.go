package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/internal/domains/booking/model"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/logger"
	gRepo "hms/shared/repository"
	"time"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	NextSequence(ctx context.Context) (int, error)
	FindOverlapping(ctx context.Context, checkIn, checkOut time.Time) ([]model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// NextSequence advances and returns the persisted booking counter. The
// single-row UPDATE serializes concurrent callers on the row lock, keeping
// the sequence monotonic.
func (repo *repositoryImpl) NextSequence(ctx context.Context) (seq int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.NextSequence")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := "UPDATE booking_sequence SET value = value + 1, modified_at = NOW() RETURNING value"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Write.QueryRowxContext(ctx, query).Scan(&seq)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to advance booking sequence: %w", err)
	}

	return seq, nil
}

// FindOverlapping returns every booking that still holds a claim on its room
// and whose stay shares at least one night with the half-open range
// [checkIn, checkOut).
func (repo *repositoryImpl) FindOverlapping(ctx context.Context, checkIn, checkOut time.Time) (models []model.Booking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.FindOverlapping")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT id, booking_code, guest_id, room_id, check_in, check_out, status
		FROM bookings
		WHERE status NOT IN ($1, $2, $3)
		AND check_in < $4 AND check_out > $5`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.SelectContext(ctx, &models, query,
		model.StatusCancelled, model.StatusCheckedOut, model.StatusNoShow,
		checkOut, checkIn,
	)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to find overlapping bookings: %w", err)
	}

	return models, nil
}
