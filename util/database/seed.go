package database

import (
	"context"

	"booklending/util/hash"
)

type seedBook struct {
	title       string
	location    string
	description string
}

var seedBooks = []seedBook{
	{"Atomic Habits", "Shelf A1", "Practical system for building good habits and breaking bad ones."},
	{"Clean Code", "Shelf A2", "Guidelines for writing readable, maintainable software."},
	{"Deep Work", "Shelf B1", "Strategies for focused work and better productivity in a distracted world."},
	{"The Pragmatic Programmer", "Shelf B2", "Journeyman-to-master advice on software craftsmanship."},
	{"Thinking, Fast and Slow", "Shelf C1", "Two systems of thought and the biases they produce."},
	{"The Design of Everyday Things", "Shelf C2", "Why some products satisfy while others frustrate."},
}

// SeedIfEmpty inserts the baseline catalog (and optionally a demo
// member) the first time the process runs against an empty database.
// The count check and the inserts share one transaction, so a
// concurrent reader never observes a half-seeded catalog and a second
// run inserts nothing.
func (d *DB) SeedIfEmpty(ctx context.Context, withDemoUser bool) error {
	tx, err := d.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var n int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM books`).Scan(&n); err != nil {
		return err
	}
	if n == 0 {
		const ins = `INSERT INTO books (title, location, description) VALUES ($1,$2,$3)`
		for _, b := range seedBooks {
			if _, err := tx.Exec(ctx, ins, b.title, b.location, b.description); err != nil {
				return err
			}
		}
	}

	if withDemoUser {
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
			return err
		}
		if n == 0 {
			h, err := hash.HashPassword("demo-password")
			if err != nil {
				return err
			}
			const ins = `INSERT INTO users (name, email, address, password_hash) VALUES ($1,$2,$3,$4)`
			if _, err := tx.Exec(ctx, ins, "Demo Member", "demo@library.local", nil, h); err != nil {
				return err
			}
		}
	}

	return tx.Commit(ctx)
}
