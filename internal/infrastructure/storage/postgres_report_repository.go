package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver

	"vision-report/internal/domain/entity"
	"vision-report/internal/domain/port"
)

const reportSchema = `
create table if not exists report_journal (
    id            text primary key,
    chat_id       bigint not null default 0,
    source_path   text not null,
    output_dir    text not null,
    document_path text not null,
    segment_count integer not null,
    extracted     text not null,
    created_at    timestamptz not null
);
create index if not exists report_journal_chat_idx on report_journal (chat_id, created_at desc);`

// PostgresReportRepository журнал отчётов в Postgres
type PostgresReportRepository struct {
	DB *sql.DB
}

// OpenPostgres открывает пул соединений через драйвер pgx и проверяет доступность.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(5)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db.Ping: %w", err)
	}
	return db, nil
}

// NewPostgresReportRepository создаёт репозиторий и таблицу журнала
func NewPostgresReportRepository(ctx context.Context, db *sql.DB) (*PostgresReportRepository, error) {
	if _, err := db.ExecContext(ctx, reportSchema); err != nil {
		return nil, fmt.Errorf("create report_journal: %w", err)
	}
	return &PostgresReportRepository{DB: db}, nil
}

// Save добавляет запись в журнал
func (r *PostgresReportRepository) Save(ctx context.Context, rec *entity.ReportRecord) error {
	const q = `
insert into report_journal (id, chat_id, source_path, output_dir, document_path, segment_count, extracted, created_at)
values ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.DB.ExecContext(ctx, q,
		rec.ID, rec.ChatID, rec.SourcePath, rec.OutputDir, rec.DocumentPath,
		rec.SegmentCount, rec.Text, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert report_journal: %w", err)
	}
	return nil
}

// ListByChat возвращает последние записи чата, новые первыми
func (r *PostgresReportRepository) ListByChat(ctx context.Context, chatID int64, limit int) ([]entity.ReportRecord, error) {
	const q = `
select id, chat_id, source_path, output_dir, document_path, segment_count, extracted, created_at
from report_journal
where chat_id = $1
order by created_at desc
limit $2`
	rows, err := r.DB.QueryContext(ctx, q, chatID, limitArg(limit))
	if err != nil {
		return nil, fmt.Errorf("select report_journal: %w", err)
	}
	defer rows.Close()

	var out []entity.ReportRecord
	for rows.Next() {
		var rec entity.ReportRecord
		if err := rows.Scan(&rec.ID, &rec.ChatID, &rec.SourcePath, &rec.OutputDir,
			&rec.DocumentPath, &rec.SegmentCount, &rec.Text, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// limitArg: limit <= 0 означает "без ограничения", в Postgres это LIMIT NULL.
func limitArg(limit int) sql.NullInt64 {
	if limit <= 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(limit), Valid: true}
}

// Проверка реализации интерфейса
var _ port.ReportRepository = (*PostgresReportRepository)(nil)
