// Package repo implements the user and joke stores of src/core/ports on
// PostgreSQL through pgx.
//
// Repositories take a DBTX, satisfied by *pgxpool.Pool in production and by a
// pgxmock pool in tests. Unique and foreign key violations are translated to
// domain conflict and not-found errors; pgx.ErrNoRows becomes not-found.
package repo
