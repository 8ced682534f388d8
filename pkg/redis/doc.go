// Package redis connects to Redis and provides a shared fingerprint deduper.
//
// Connect parses Config.ConnectionURL, pings the server and retries
// according to Config.
//
// Deduper implements the pipeline deduplication contract with SET NX, so
// concurrent workers and separate processes agree on which event with a
// given fingerprint was first:
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	dedup, _ := redis.NewDeduperFromConfig(client, cfg)
//	proc, _ := pipeline.New(f, pipeline.WithDeduper(dedup))
//
// Deduper.Ping backs the readiness probe. Keys expire after Config.DedupTTL. Errors wrap the sentinels in errors.go
// with errors.Join.
package redis
