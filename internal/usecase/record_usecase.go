package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"clinic-records/internal/domain/repository"
	"clinic-records/internal/service"
	"clinic-records/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidRequest   = errors.New("invalid request body")
	ErrStoreUnavailable = errors.New("record store unavailable")
)

// ValidationError reports which fields of a candidate record were rejected.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, len(keys))
	for i, k := range keys {
		msgs[i] = e.Fields[k]
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// RecordSchema binds one entity to its create request and response shapes.
type RecordSchema[T any, Req any, Resp any] struct {
	// Resource is the plural name used in routes and cache keys ("doctors").
	Resource string
	// Entity is the singular name used in audit actions ("doctor").
	Entity      string
	FromRequest func(req *Req) *T
	ToResponse  func(record *T) *Resp
	IDOf        func(record *T) int64
}

type RecordUsecase[Req any, Resp any] interface {
	List(ctx context.Context) ([]Resp, error)
	Create(ctx context.Context, req *Req) (*Resp, error)
}

type recordUsecase[T any, Req any, Resp any] struct {
	db           *gorm.DB
	log          *logrus.Logger
	schema       RecordSchema[T, Req, Resp]
	repo         repository.RecordRepository[T]
	validator    *validator.CustomValidator
	auditService service.AuditService
	listCache    service.ListCache

	// listStale is set when an invalidation after create failed. Until a
	// later invalidation succeeds, List reads the store directly.
	listStale atomic.Bool
}

func NewRecordUsecase[T any, Req any, Resp any](
	schema RecordSchema[T, Req, Resp],
	db *gorm.DB,
	log *logrus.Logger,
	repo repository.RecordRepository[T],
	validator *validator.CustomValidator,
	auditService service.AuditService,
	listCache service.ListCache,
) RecordUsecase[Req, Resp] {
	if listCache == nil {
		listCache = service.NewNoopListCache()
	}
	return &recordUsecase[T, Req, Resp]{
		db:           db,
		log:          log,
		schema:       schema,
		repo:         repo,
		validator:    validator,
		auditService: auditService,
		listCache:    listCache,
	}
}

func (u *recordUsecase[T, Req, Resp]) List(ctx context.Context) ([]Resp, error) {
	if u.listStale.Load() {
		if err := u.listCache.Invalidate(ctx, u.schema.Resource); err != nil {
			return u.findAll(ctx)
		}
		u.listStale.Store(false)
	}

	payload, generation, hit := u.listCache.Lookup(ctx, u.schema.Resource)
	if hit {
		var cached []Resp
		if err := json.Unmarshal(payload, &cached); err == nil && cached != nil {
			return cached, nil
		}
		u.log.Warnf("Discarding unreadable cached %s list", u.schema.Resource)
	}

	responses, err := u.findAll(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(responses); err == nil {
		u.listCache.Store(ctx, u.schema.Resource, generation, payload)
	}

	return responses, nil
}

func (u *recordUsecase[T, Req, Resp]) findAll(ctx context.Context) ([]Resp, error) {
	records, err := u.repo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all %s: %+v", u.schema.Resource, err)
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	responses := make([]Resp, len(records))
	for i := range records {
		responses[i] = *u.schema.ToResponse(&records[i])
	}
	return responses, nil
}

func (u *recordUsecase[T, Req, Resp]) Create(ctx context.Context, req *Req) (*Resp, error) {
	if req == nil {
		return nil, ErrInvalidRequest
	}

	if err := u.validator.Validate(req); err != nil {
		fields := u.validator.FormatValidationErrors(err)
		if len(fields) == 0 {
			return nil, err
		}
		return nil, &ValidationError{Fields: fields}
	}

	record := u.schema.FromRequest(req)

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, tx.Error)
	}
	defer tx.Rollback()

	if err := u.repo.Create(tx, record); err != nil {
		u.log.Warnf("Failed to create %s: %+v", u.schema.Entity, err)
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	created := u.schema.ToResponse(record)

	if err := u.auditService.LogCreate(ctx, tx, u.schema.Entity, u.schema.IDOf(record), created); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if err := u.listCache.Invalidate(ctx, u.schema.Resource); err != nil {
		u.log.Warnf("Bypassing cached %s list until invalidation succeeds: %+v", u.schema.Resource, err)
		u.listStale.Store(true)
	}

	return created, nil
}
