// Package pg stores fingerprinted events in PostgreSQL using pgx/v5.
//
// Connect opens a *pgxpool.Pool from Config with retries, and Migrate applies
// the goose migrations embedded in this package. The bundled migration
// creates the events table named by PG_EVENTS_TABLE (hashid_events by
// default).
//
// Store is a pipeline sink. Rows are keyed by fingerprint and inserted with
// a plain INSERT whose unique violation counts as success, so replaying a stream leaves the first copy of
// each event in place:
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
//	    return err
//	}
//	store, _ := pg.NewStore(pool, cfg.EventsTable)
//
// Store.Ping backs the readiness probe.
package pg
