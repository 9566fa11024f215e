package database

import "context"

// Migrate creates the three lending tables. Safe to run on every
// start; every statement is IF NOT EXISTS.
func (d *DB) Migrate(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            BIGSERIAL PRIMARY KEY,
	name          TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	address       TEXT,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS books (
	id          BIGSERIAL PRIMARY KEY,
	title       TEXT NOT NULL,
	location    TEXT NOT NULL,
	description TEXT
);

CREATE TABLE IF NOT EXISTS loans (
	id            BIGSERIAL PRIMARY KEY,
	user_id       BIGINT NOT NULL REFERENCES users(id),
	book_id       BIGINT NOT NULL REFERENCES books(id),
	checkout_date DATE NOT NULL,
	due_date      DATE
);`
	_, err := d.Pool.Exec(ctx, schema)
	return err
}
