package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-proxy-keeper/internal/logger"
	"github.com/MKhiriev/go-proxy-keeper/models"
)

const jobRequestsTable = "job_requests"

var jobRequestColumns = []string{
	"id",
	"tag",
	"kind",
	"route",
	"earliest_at",
	"latest_at",
	"network_type",
	"requires_charging",
	"requirements_enforced",
	"update_current",
	"attempts",
	"next_run_at",
	"created_at",
}

// jobRequestRepository is the SQL implementation of [JobRequestRepository]
// for both SQLite and PostgreSQL. Queries are built with squirrel using the
// placeholder format of the underlying [DB].
type jobRequestRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewJobRequestRepository constructs a [JobRequestRepository] on db.
func NewJobRequestRepository(db *DB, logger *logger.Logger) JobRequestRepository {
	logger.Debug().Msg("creating job request repository")
	return &jobRequestRepository{
		db:     db,
		logger: logger,
	}
}

// Upsert implements [JobRequestRepository]. The lookup, delete and insert
// run in one transaction; if a concurrent writer inserts the same tag first
// the whole transaction is retried once.
func (r *jobRequestRepository) Upsert(ctx context.Context, req models.SyncJobRequest) (models.SyncJobRequest, error) {
	log := logger.FromContext(ctx)

	stored, err := r.upsertTx(ctx, req)
	if err == nil {
		return stored, nil
	}

	switch r.db.errorClassificator.Classify(err) {
	case Conflict, Retryable:
		log.Warn().Err(err).
			Str("func", "*jobRequestRepository.Upsert").
			Str("tag", req.Tag).
			Msg("upsert conflicted, retrying once")
		return r.upsertTx(ctx, req)
	default:
		return models.SyncJobRequest{}, err
	}
}

func (r *jobRequestRepository) upsertTx(ctx context.Context, req models.SyncJobRequest) (stored models.SyncJobRequest, err error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*jobRequestRepository.Upsert").Msg("failed to begin transaction")
		return models.SyncJobRequest{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	existing, err := r.getOne(ctx, tx, sq.Eq{"tag": req.Tag})
	switch {
	case err == nil && !req.UpdateCurrent:
		if err = tx.Commit(); err != nil {
			return models.SyncJobRequest{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		}
		log.Debug().Str("tag", req.Tag).Str("id", existing.ID).Msg("keeping current job request")
		return existing, nil
	case err == nil:
		if err = r.exec(ctx, tx, r.db.builder.Delete(jobRequestsTable).Where(sq.Eq{"id": existing.ID})); err != nil {
			return models.SyncJobRequest{}, err
		}
	case errors.Is(err, ErrNotFound):
		err = nil
	default:
		return models.SyncJobRequest{}, err
	}

	insert := r.db.builder.
		Insert(jobRequestsTable).
		Columns(jobRequestColumns...).
		Values(
			req.ID,
			req.Tag,
			req.Kind,
			req.Route,
			req.EarliestAt.UTC(),
			req.LatestAt.UTC(),
			int(req.NetworkType),
			req.RequiresCharging,
			req.RequirementsEnforced,
			req.UpdateCurrent,
			req.Attempts,
			nullTime(req.NextRunAt),
			req.CreatedAt.UTC(),
		)
	if err = r.exec(ctx, tx, insert); err != nil {
		return models.SyncJobRequest{}, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*jobRequestRepository.Upsert").Msg("failed to commit transaction")
		return models.SyncJobRequest{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return req, nil
}

// GetByID implements [JobRequestRepository].
func (r *jobRequestRepository) GetByID(ctx context.Context, id string) (models.SyncJobRequest, error) {
	return r.getOne(ctx, r.db, sq.Eq{"id": id})
}

// ListDue implements [JobRequestRepository].
func (r *jobRequestRepository) ListDue(ctx context.Context, now time.Time) ([]models.SyncJobRequest, error) {
	now = now.UTC()
	return r.list(ctx, sq.And{
		sq.LtOrEq{"earliest_at": now},
		sq.Or{sq.Eq{"next_run_at": nil}, sq.LtOrEq{"next_run_at": now}},
	})
}

// ListAll implements [JobRequestRepository].
func (r *jobRequestRepository) ListAll(ctx context.Context) ([]models.SyncJobRequest, error) {
	return r.list(ctx, nil)
}

// Delete implements [JobRequestRepository].
func (r *jobRequestRepository) Delete(ctx context.Context, id string) error {
	return r.execAffectingOne(ctx, r.db.builder.Delete(jobRequestsTable).Where(sq.Eq{"id": id}))
}

// Reschedule implements [JobRequestRepository].
func (r *jobRequestRepository) Reschedule(ctx context.Context, id string, attempts int, nextRunAt, latestAt time.Time) error {
	update := r.db.builder.
		Update(jobRequestsTable).
		Set("attempts", attempts).
		Set("next_run_at", nextRunAt.UTC()).
		Set("latest_at", latestAt.UTC()).
		Where(sq.Eq{"id": id})

	return r.execAffectingOne(ctx, update)
}

func (r *jobRequestRepository) getOne(ctx context.Context, runner sq.QueryerContext, where sq.Sqlizer) (models.SyncJobRequest, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(jobRequestColumns...).
		From(jobRequestsTable).
		Where(where).
		ToSql()
	if err != nil {
		return models.SyncJobRequest{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := runner.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*jobRequestRepository.getOne").Msg("failed to query job request")
		return models.SyncJobRequest{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return models.SyncJobRequest{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		return models.SyncJobRequest{}, ErrNotFound
	}

	req, err := scanJobRequest(rows)
	if err != nil {
		log.Err(err).Str("func", "*jobRequestRepository.getOne").Msg("failed to scan job request row")
		return models.SyncJobRequest{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return req, nil
}

func (r *jobRequestRepository) list(ctx context.Context, where sq.Sqlizer) ([]models.SyncJobRequest, error) {
	log := logger.FromContext(ctx)

	builder := r.db.builder.
		Select(jobRequestColumns...).
		From(jobRequestsTable).
		OrderBy("created_at", "id")
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*jobRequestRepository.list").Msg("failed to query job requests")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var requests []models.SyncJobRequest
	for rows.Next() {
		req, scanErr := scanJobRequest(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*jobRequestRepository.list").Msg("failed to scan job request row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*jobRequestRepository.list").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return requests, nil
}

func (r *jobRequestRepository) exec(ctx context.Context, runner sq.ExecerContext, builder sq.Sqlizer) error {
	_, err := r.execResult(ctx, runner, builder)
	return err
}

func (r *jobRequestRepository) execAffectingOne(ctx context.Context, builder sq.Sqlizer) error {
	res, err := r.execResult(ctx, r.db, builder)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *jobRequestRepository) execResult(ctx context.Context, runner sq.ExecerContext, builder sq.Sqlizer) (sql.Result, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := runner.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*jobRequestRepository.exec").
			Msg("failed to execute statement")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return res, nil
}

func scanJobRequest(rows *sql.Rows) (models.SyncJobRequest, error) {
	var (
		req         models.SyncJobRequest
		networkType int
		nextRunAt   sql.NullTime
	)

	err := rows.Scan(
		&req.ID,
		&req.Tag,
		&req.Kind,
		&req.Route,
		&req.EarliestAt,
		&req.LatestAt,
		&networkType,
		&req.RequiresCharging,
		&req.RequirementsEnforced,
		&req.UpdateCurrent,
		&req.Attempts,
		&nextRunAt,
		&req.CreatedAt,
	)
	if err != nil {
		return models.SyncJobRequest{}, err
	}

	req.NetworkType = models.NetworkType(networkType)
	if nextRunAt.Valid {
		req.NextRunAt = nextRunAt.Time
	}

	return req, nil
}

func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
