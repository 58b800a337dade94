package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Audit=MockAuditService

import (
	"context"
	"fmt"
	"hms/config"
	"hms/infras/kafka"
	"hms/infras/otel"
	"hms/internal/domains/audit/model"
	"hms/internal/domains/audit/model/dto"
	"hms/internal/domains/audit/repository"
	"hms/shared"
	"hms/shared/cache"
	"hms/shared/constant"
	gDto "hms/shared/dto"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllAuditLog = "audit_log:gets"
	cacheCountAuditLog  = "audit_log:count"
)

// Audit records state transitions and serves the audit trail. Record is
// called after the mutation it describes has been committed, so a recording
// failure never rolls back the operation itself.
type Audit interface {
	Record(ctx context.Context, entry dto.Entry) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAuditLogsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
}

type serviceImpl struct {
	repo  repository.Audit
	cfg   *config.Config
	cache cache.RedisCache
	kafka kafka.Client
	otel  otel.Otel
}

func New(repo repository.Audit, cfg *config.Config, cache cache.RedisCache, kafkaClient kafka.Client, otel otel.Otel) Audit {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		kafka: kafkaClient,
		otel:  otel,
	}
}

func (s *serviceImpl) Record(ctx context.Context, entry dto.Entry) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Record")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	mod := entry.ToModel(user)

	if err = s.repo.Insert(ctx, mod); err != nil {
		log.Error().Err(err).Str("action", string(mod.Action)).Msg("failed to append audit log")

		return fmt.Errorf("failed to append audit log: %w", err)
	}

	if err = s.repo.Prune(ctx, s.cfg.Audit.RetentionLimit); err != nil {
		log.Error().Err(err).Msg("failed to prune audit logs")

		return fmt.Errorf("failed to prune audit logs: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.publish(c, mod)

		shared.InvalidateCaches(c, s.cache, cacheGetAllAuditLog)
		shared.InvalidateCaches(c, s.cache, cacheCountAuditLog)
	}()

	return nil
}

// publish mirrors each committed audit entry onto the audit topic for
// downstream consumers. Fire and forget.
func (s *serviceImpl) publish(ctx context.Context, mod model.AuditLog) {
	if !s.cfg.Audit.PublishEnable {
		return
	}

	var res dto.AuditLogResponse
	res.FromModel(mod)

	err := s.kafka.SendMessages(ctx, s.cfg.Audit.Topic, kafka.Message{
		Key:   mod.ID,
		Value: res,
	})
	if err != nil {
		log.Error().Err(err).Str("topic", s.cfg.Audit.Topic).Msg("failed to publish audit entry")
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAuditLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllAuditLog, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for audit logs")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count audit logs")

		return res, fmt.Errorf("failed to count audit logs: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get audit logs")

		return res, fmt.Errorf("failed to get audit logs: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save audit logs to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountAuditLog, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for audit log count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count audit logs")

		return res, fmt.Errorf("failed to count audit logs: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save audit log count to cache")
		}
	}()

	return res, nil
}
