package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/internal/domains/audit/model"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/logger"
	gRepo "hms/shared/repository"
)

type Audit interface {
	Insert(ctx context.Context, model model.AuditLog) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.AuditLog, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.AuditLog, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Prune(ctx context.Context, keep int) error
}

type repositoryImpl struct {
	gRepo.Repository[model.AuditLog]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Audit {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.AuditLog](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Prune drops the oldest entries beyond the retention cap.
func (repo *repositoryImpl) Prune(ctx context.Context, keep int) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".audit_log.Prune")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `DELETE FROM audit_logs
		WHERE id NOT IN (SELECT id FROM audit_logs ORDER BY created_at DESC LIMIT $1)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err = repo.db.Write.ExecContext(ctx, query, keep)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to prune audit logs: %w", err)
	}

	return nil
}
