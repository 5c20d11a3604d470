// Package db owns the PostgreSQL side of the service: the pgx pool, the
// embedded golang-migrate migrations and the pool metrics collector.
//
//	pg, err := db.New(ctx, cfg.Database, log)
//	if err != nil {
//	    return err
//	}
//	defer pg.Close()
//	registry.MustRegister(pg.Collector())
package db
