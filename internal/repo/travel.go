package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pereras/fueltrackr/backend/internal/domain"
)

// TravelLogRepo defines the persistence operations for travel logs.
// Logs are append-only: there is no update or delete through this interface.
type TravelLogRepo interface {
	// Create inserts a new travel log and returns the persisted record
	// (with DB-generated id and created_at populated).
	Create(ctx context.Context, log domain.TravelLog) (domain.TravelLog, error)

	// ListByUserEmail returns one user's logs ordered by date descending.
	ListByUserEmail(ctx context.Context, email string) ([]domain.TravelLog, error)

	// ListAll returns every user's logs ordered by date descending.
	ListAll(ctx context.Context) ([]domain.TravelLog, error)
}

// pgTravelLogRepo is the Postgres implementation of TravelLogRepo.
type pgTravelLogRepo struct {
	db db
}

// NewTravelLogRepo constructs a TravelLogRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTravelLogRepo(db db) TravelLogRepo {
	return &pgTravelLogRepo{db: db}
}

// Create inserts a new travel log row and returns the full persisted record.
func (r *pgTravelLogRepo) Create(ctx context.Context, log domain.TravelLog) (domain.TravelLog, error) {
	const q = `
		INSERT INTO travel_logs (user_email, date, meter_start, meter_end, official_km, private_km, total_km, remarks)
		VALUES (@user_email, @date, @meter_start, @meter_end, @official_km, @private_km, @total_km, @remarks)
		RETURNING id, user_email, date, meter_start, meter_end, official_km, private_km, total_km, remarks, created_at`

	args := pgx.NamedArgs{
		"user_email":  log.UserEmail,
		"date":        log.Date,
		"meter_start": log.MeterStart,
		"meter_end":   log.MeterEnd,
		"official_km": log.OfficialKm,
		"private_km":  log.PrivateKm,
		"total_km":    log.TotalKm,
		"remarks":     log.Remarks,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTravelLog(row)
	if err != nil {
		return domain.TravelLog{}, fmt.Errorf("repo.TravelLogRepo.Create: %w", err)
	}
	return result, nil
}

// ListByUserEmail returns one user's logs, most recent date first.
func (r *pgTravelLogRepo) ListByUserEmail(ctx context.Context, email string) ([]domain.TravelLog, error) {
	const q = `
		SELECT id, user_email, date, meter_start, meter_end, official_km, private_km, total_km, remarks, created_at
		FROM travel_logs
		WHERE user_email = @user_email
		ORDER BY date DESC, created_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_email": email})
	if err != nil {
		return nil, fmt.Errorf("repo.TravelLogRepo.ListByUserEmail: %w", err)
	}
	defer rows.Close()

	logs, err := collectTravelLogs(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.TravelLogRepo.ListByUserEmail: %w", err)
	}
	return logs, nil
}

// ListAll returns every log in the system, most recent date first.
func (r *pgTravelLogRepo) ListAll(ctx context.Context) ([]domain.TravelLog, error) {
	const q = `
		SELECT id, user_email, date, meter_start, meter_end, official_km, private_km, total_km, remarks, created_at
		FROM travel_logs
		ORDER BY date DESC, created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TravelLogRepo.ListAll: %w", err)
	}
	defer rows.Close()

	logs, err := collectTravelLogs(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.TravelLogRepo.ListAll: %w", err)
	}
	return logs, nil
}

// collectTravelLogs drains a result set into a slice.
func collectTravelLogs(rows pgx.Rows) ([]domain.TravelLog, error) {
	var logs []domain.TravelLog
	for rows.Next() {
		l, err := scanTravelLog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return logs, nil
}

// scanTravelLog maps a single database row into a domain.TravelLog.
// It handles the UUID and DATE column conversions.
func scanTravelLog(s scanner) (domain.TravelLog, error) {
	var (
		l    domain.TravelLog
		id   pgtype.UUID
		date pgtype.Date
	)

	err := s.Scan(&id, &l.UserEmail, &date, &l.MeterStart, &l.MeterEnd,
		&l.OfficialKm, &l.PrivateKm, &l.TotalKm, &l.Remarks, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TravelLog{}, domain.ErrNotFound
		}
		return domain.TravelLog{}, err
	}

	l.ID = uuid.UUID(id.Bytes)
	l.Date = date.Time
	return l, nil
}
