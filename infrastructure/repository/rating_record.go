package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/maxreviewer/reviews-api/infrastructure/database/postgres"
	"github.com/maxreviewer/reviews-api/internal/domain"
	"github.com/maxreviewer/reviews-api/pkg/utils"
)

const (
	ratingRecordsTable = "rating_records"
	// Limite de linhas por INSERT para ficar abaixo do máximo de parâmetros do Postgres
	insertBatchSize = 1000
)

var ratingRecordColumns = []string{"id", "record_key", "rating", "day", "sync_id"}

type RatingRecordRepository interface {
	Name() domain.Source
	FetchRecords(ctx context.Context) ([]domain.RatingRecord, error)
	FetchRecordsSince(ctx context.Context, start time.Time) ([]domain.RatingRecord, error)

	ListAll(ctx context.Context) ([]domain.RatingRecord, error)
	ListSince(ctx context.Context, start time.Time) ([]domain.RatingRecord, error)
	ReplaceAll(ctx context.Context, records []domain.RatingRecord, syncID string) error
	Count(ctx context.Context) (int, error)
}

type ratingRecordRepository struct {
	conn     postgres.Conn
	location *time.Location
	newID    func() (string, error)
}

func NewRatingRecordRepository(conn postgres.Conn, loc *time.Location) RatingRecordRepository {
	if loc == nil {
		loc = time.UTC
	}

	return &ratingRecordRepository{
		conn:     conn,
		location: loc,
		newID:    utils.GenerateID,
	}
}

func (r *ratingRecordRepository) Name() domain.Source {
	return domain.SourceDatabase
}

func (r *ratingRecordRepository) FetchRecords(ctx context.Context) ([]domain.RatingRecord, error) {
	return r.ListAll(ctx)
}

func (r *ratingRecordRepository) FetchRecordsSince(ctx context.Context, start time.Time) ([]domain.RatingRecord, error) {
	return r.ListSince(ctx, start)
}

func (r *ratingRecordRepository) ListAll(ctx context.Context) ([]domain.RatingRecord, error) {
	query, args, err := buildListQuery(nil)
	if err != nil {
		return nil, err
	}

	return r.list(ctx, query, args)
}

// ListSince devolve os registros com day >= start (comparação por data de calendário)
func (r *ratingRecordRepository) ListSince(ctx context.Context, start time.Time) ([]domain.RatingRecord, error) {
	query, args, err := buildListQuery(&start)
	if err != nil {
		return nil, err
	}

	return r.list(ctx, query, args)
}

func (r *ratingRecordRepository) list(ctx context.Context, query string, args []interface{}) ([]domain.RatingRecord, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar avaliações")
	}
	defer rows.Close()

	records := make([]domain.RatingRecord, 0)
	for rows.Next() {
		var (
			record domain.RatingRecord
			day    time.Time
		)

		if err := rows.Scan(&record.Key, &record.Rating, &day); err != nil {
			return nil, errors.Wrap(err, "erro ao ler avaliação")
		}

		record.Day = calendarDay(day, r.location)
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro ao percorrer avaliações")
	}

	return records, nil
}

// ReplaceAll substitui o snapshot inteiro numa única transação
func (r *ratingRecordRepository) ReplaceAll(ctx context.Context, records []domain.RatingRecord, syncID string) error {
	inserts, err := r.buildInsertQueries(records, syncID)
	if err != nil {
		return err
	}

	return r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		deleteSQL, deleteArgs, err := squirrel.
			Delete(ratingRecordsTable).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		if _, err := q.Exec(ctx, deleteSQL, deleteArgs...); err != nil {
			return wrapPqError(err, "erro ao limpar avaliações")
		}

		for _, insert := range inserts {
			if _, err := q.Exec(ctx, insert.sql, insert.args...); err != nil {
				return wrapPqError(err, "erro ao inserir avaliações")
			}
		}

		logrus.WithFields(logrus.Fields{
			"sync_id":      syncID,
			"review_count": len(records),
		}).Debug("reviews: snapshot de avaliações substituído")

		return nil
	})
}

func (r *ratingRecordRepository) Count(ctx context.Context) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(ratingRecordsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, errors.Wrap(err, "erro ao contar avaliações")
	}

	return count, nil
}

type statement struct {
	sql  string
	args []interface{}
}

func buildListQuery(since *time.Time) (string, []interface{}, error) {
	builder := squirrel.
		Select("record_key", "rating", "day").
		From(ratingRecordsTable).
		OrderBy("day ASC", "record_key ASC").
		PlaceholderFormat(squirrel.Dollar)

	if since != nil {
		builder = builder.Where(squirrel.GtOrEq{"day": since.Format(time.DateOnly)})
	}

	return builder.ToSql()
}

func (r *ratingRecordRepository) buildInsertQueries(records []domain.RatingRecord, syncID string) ([]statement, error) {
	statements := make([]statement, 0, len(records)/insertBatchSize+1)

	for start := 0; start < len(records); start += insertBatchSize {
		end := min(start+insertBatchSize, len(records))

		builder := squirrel.
			Insert(ratingRecordsTable).
			Columns(ratingRecordColumns...).
			PlaceholderFormat(squirrel.Dollar)

		for _, record := range records[start:end] {
			id, err := r.newID()
			if err != nil {
				return nil, errors.Wrap(err, "erro ao gerar id da avaliação")
			}

			builder = builder.Values(
				id,
				record.Key,
				record.Rating,
				record.Day.Format(time.DateOnly),
				syncID,
			)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return nil, err
		}

		statements = append(statements, statement{sql: query, args: args})
	}

	return statements, nil
}

// calendarDay reinterpreta a data lida do banco (DATE chega como meia-noite UTC) no fuso de referência
func calendarDay(day time.Time, loc *time.Location) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
}

func wrapPqError(err error, message string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("%s: %w (code: %s)", message, pqErr, pqErr.Code)
	}
	return errors.Wrap(err, message)
}

const createRatingRecordsTable = `
CREATE TABLE IF NOT EXISTS rating_records (
	id         TEXT PRIMARY KEY,
	record_key TEXT NOT NULL UNIQUE,
	rating     SMALLINT NOT NULL CHECK (rating BETWEEN 1 AND 5),
	day        DATE NOT NULL,
	sync_id    TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS rating_records_day_idx ON rating_records (day);
`

// EnsureSchema cria a tabela de avaliações caso ainda não exista
func EnsureSchema(ctx context.Context, conn postgres.Queryer) error {
	if _, err := conn.Exec(ctx, createRatingRecordsTable); err != nil {
		return wrapPqError(err, "erro ao criar tabela rating_records")
	}
	return nil
}
