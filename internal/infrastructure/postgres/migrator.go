package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// migrations na ordem de criação. Idempotentes: rodar de novo não muda nada.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'usuario',
		phone         TEXT NOT NULL DEFAULT '',
		department    TEXT NOT NULL DEFAULT '',
		is_active     BOOLEAN NOT NULL DEFAULT TRUE,
		status        TEXT NOT NULL DEFAULT 'active',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		last_login    TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id         BIGSERIAL PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL,
		phone      TEXT NOT NULL DEFAULT '',
		company    TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id             BIGSERIAL PRIMARY KEY,
		client_id      BIGINT NOT NULL DEFAULT 0,
		client_name    TEXT NOT NULL,
		product        TEXT NOT NULL,
		value          DOUBLE PRECISION NOT NULL DEFAULT 0,
		status         TEXT NOT NULL DEFAULT 'Pendente',
		representative TEXT NOT NULL DEFAULT '',
		date           TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS leads (
		id          BIGSERIAL PRIMARY KEY,
		name        TEXT NOT NULL,
		email       TEXT NOT NULL,
		status      TEXT NOT NULL DEFAULT 'Novo',
		source      TEXT NOT NULL DEFAULT '',
		assigned_to TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS quotes (
		id             BIGSERIAL PRIMARY KEY,
		client_id      BIGINT NOT NULL DEFAULT 0,
		client_name    TEXT NOT NULL,
		title          TEXT NOT NULL,
		description    TEXT NOT NULL DEFAULT '',
		value          DOUBLE PRECISION NOT NULL DEFAULT 0,
		status         TEXT NOT NULL DEFAULT 'Pendente',
		representative TEXT NOT NULL DEFAULT '',
		valid_until    TIMESTAMPTZ NOT NULL,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		id               BIGSERIAL PRIMARY KEY,
		title            TEXT NOT NULL,
		description      TEXT NOT NULL DEFAULT '',
		client_id        BIGINT,
		client_name      TEXT NOT NULL DEFAULT '',
		representative   TEXT NOT NULL,
		appointment_date TIMESTAMPTZ NOT NULL,
		duration         INTEGER NOT NULL DEFAULT 60,
		location         TEXT NOT NULL DEFAULT '',
		type             TEXT NOT NULL DEFAULT 'Reunião',
		status           TEXT NOT NULL DEFAULT 'Agendado',
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS companies (
		id              BIGSERIAL PRIMARY KEY,
		name            TEXT NOT NULL,
		cnpj            TEXT NOT NULL DEFAULT '',
		email           TEXT NOT NULL DEFAULT '',
		phone           TEXT NOT NULL DEFAULT '',
		website         TEXT NOT NULL DEFAULT '',
		address         TEXT NOT NULL DEFAULT '',
		city            TEXT NOT NULL DEFAULT '',
		state           TEXT NOT NULL DEFAULT '',
		zip_code        TEXT NOT NULL DEFAULT '',
		segment         TEXT NOT NULL DEFAULT '',
		contact_person  TEXT NOT NULL DEFAULT '',
		contact_email   TEXT NOT NULL DEFAULT '',
		contact_phone   TEXT NOT NULL DEFAULT '',
		commission_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
		status          TEXT NOT NULL DEFAULT 'Ativa',
		contract_start  TIMESTAMPTZ,
		contract_end    TIMESTAMPTZ,
		notes           TEXT NOT NULL DEFAULT '',
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS companies_cnpj_key ON companies (cnpj) WHERE cnpj <> ''`,
	`CREATE TABLE IF NOT EXISTS reports (
		id           BIGSERIAL PRIMARY KEY,
		title        TEXT NOT NULL,
		type         TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		generated_by TEXT NOT NULL DEFAULT '',
		period_start TIMESTAMPTZ NOT NULL,
		period_end   TIMESTAMPTZ NOT NULL,
		data         JSONB NOT NULL DEFAULT '{}'::jsonb,
		status       TEXT NOT NULL DEFAULT 'Gerado',
		file_path    TEXT NOT NULL DEFAULT '',
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS sales_date_idx ON sales (date)`,
	`CREATE INDEX IF NOT EXISTS appointments_date_idx ON appointments (appointment_date)`,
	`CREATE INDEX IF NOT EXISTS quotes_status_idx ON quotes (status)`,
}

// Migrate cria o schema se ainda não existe.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("aplicar migração: %w", err)
		}
	}
	return nil
}
