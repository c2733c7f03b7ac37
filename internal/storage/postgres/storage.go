package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/tntx/fleetport/internal/domain/errors"
	"github.com/tntx/fleetport/internal/domain/model"
	"github.com/tntx/fleetport/internal/domain/repository"
)

// Pool is the subset of pgxpool.Pool the storage uses. Mock pools satisfy
// it as well.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   Pool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type companyRepository struct {
	storage *Storage
}

type ticketRepository struct {
	storage *Storage
}

type chatRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// NewWithPool wraps an existing pool without schema initialization.
func NewWithPool(pool Pool, logger *slog.Logger) *Storage {
	return &Storage{pool: pool, logger: logger}
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Companies() repository.CompanyRepository {
	return &companyRepository{storage: s}
}

func (s *Storage) Tickets() repository.TicketRepository {
	return &ticketRepository{storage: s}
}

func (s *Storage) Chats() repository.ChatRepository {
	return &chatRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS companies (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            trimble_code TEXT UNIQUE NOT NULL,
            address TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            login TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL,
            company_id BIGINT REFERENCES companies(id),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS tickets (
            id SERIAL PRIMARY KEY,
            number TEXT UNIQUE NOT NULL,
            status TEXT NOT NULL,
            unit_number TEXT NOT NULL,
            complaint TEXT NOT NULL,
            location TEXT NOT NULL DEFAULT '',
            company_id BIGINT REFERENCES companies(id),
            created_by BIGINT NOT NULL REFERENCES users(id),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS chat_messages (
            id SERIAL PRIMARY KEY,
            ticket_id BIGINT NOT NULL REFERENCES tickets(id),
            user_id BIGINT NOT NULL REFERENCES users(id),
            body TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_tickets_company ON tickets(company_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_tickets_creator ON tickets(created_by, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_chat_ticket ON chat_messages(ticket_id, created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, login, passwordHash string, role model.Role, companyID *int64) (*model.User, error) {
	const query = `INSERT INTO users (login, password_hash, role, company_id) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login, passwordHash, role, companyID).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Login = login
	u.PasswordHash = passwordHash
	u.Role = role
	u.CompanyID = companyID
	return &u, nil
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	const query = `SELECT id, login, password_hash, role, company_id, created_at FROM users WHERE login=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Role, &u.CompanyID, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, login, password_hash, role, company_id, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Role, &u.CompanyID, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- CompanyRepository implementation ---

func (r *companyRepository) Create(ctx context.Context, name, trimbleCode, address string) (*model.Company, error) {
	const query = `INSERT INTO companies (name, trimble_code, address) VALUES ($1, $2, $3) RETURNING id, created_at`
	var c model.Company
	err := r.storage.pool.QueryRow(ctx, query, name, trimbleCode, address).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	c.Name = name
	c.TrimbleCode = trimbleCode
	c.Address = address
	return &c, nil
}

func (r *companyRepository) List(ctx context.Context) ([]model.Company, error) {
	const query = `SELECT id, name, trimble_code, address, created_at FROM companies ORDER BY name`
	return r.storage.queryCompanies(ctx, query)
}

func (r *companyRepository) ListByTrimbleCodes(ctx context.Context, codes []string) ([]model.Company, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	const query = `SELECT id, name, trimble_code, address, created_at FROM companies
                   WHERE UPPER(trimble_code) = ANY($1) ORDER BY name`
	upper := make([]string, len(codes))
	for i, c := range codes {
		upper[i] = strings.ToUpper(c)
	}
	return r.storage.queryCompanies(ctx, query, upper)
}

func (s *Storage) queryCompanies(ctx context.Context, query string, args ...any) ([]model.Company, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Company
	for rows.Next() {
		var c model.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.TrimbleCode, &c.Address, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- TicketRepository implementation ---

func (r *ticketRepository) Create(ctx context.Context, t *model.Ticket) (*model.Ticket, error) {
	const query = `INSERT INTO tickets (number, status, unit_number, complaint, location, company_id, created_by)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING id, created_at, updated_at`
	created := *t
	err := r.storage.pool.QueryRow(ctx, query,
		t.Number, t.Status, t.UnitNumber, t.Complaint, t.Location, t.CompanyID, t.CreatedBy,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id int64) (*model.Ticket, error) {
	const query = `SELECT id, number, status, unit_number, complaint, location, company_id, created_by, created_at, updated_at
                   FROM tickets WHERE id=$1`
	var t model.Ticket
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Number, &t.Status, &t.UnitNumber, &t.Complaint, &t.Location,
		&t.CompanyID, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *ticketRepository) List(ctx context.Context, filter repository.TicketFilter) ([]model.Ticket, error) {
	query := `SELECT id, number, status, unit_number, complaint, location, company_id, created_by, created_at, updated_at
              FROM tickets`
	var (
		conds []string
		args  []any
	)
	if filter.CompanyID != nil {
		args = append(args, *filter.CompanyID)
		conds = append(conds, fmt.Sprintf("company_id=$%d", len(args)))
	}
	if filter.CreatedBy != nil {
		args = append(args, *filter.CreatedBy)
		conds = append(conds, fmt.Sprintf("created_by=$%d", len(args)))
	}
	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Ticket
	for rows.Next() {
		var t model.Ticket
		if err := rows.Scan(
			&t.ID, &t.Number, &t.Status, &t.UnitNumber, &t.Complaint, &t.Location,
			&t.CompanyID, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *ticketRepository) UpdateStatus(ctx context.Context, id int64, status model.TicketStatus) error {
	const query = `UPDATE tickets SET status=$1, updated_at=NOW() WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- ChatRepository implementation ---

func (r *chatRepository) Append(ctx context.Context, ticketID, userID int64, body string) (*model.ChatMessage, error) {
	const query = `INSERT INTO chat_messages (ticket_id, user_id, body) VALUES ($1, $2, $3) RETURNING id, created_at`
	msg := model.ChatMessage{TicketID: ticketID, UserID: userID, Body: body}
	err := r.storage.pool.QueryRow(ctx, query, ticketID, userID, body).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &msg, nil
}

func (r *chatRepository) ListByTicket(ctx context.Context, ticketID int64) ([]model.ChatMessage, error) {
	const query = `SELECT id, ticket_id, user_id, body, created_at
                   FROM chat_messages WHERE ticket_id=$1 ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ChatMessage
	for rows.Next() {
		var m model.ChatMessage
		if err := rows.Scan(&m.ID, &m.TicketID, &m.UserID, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
