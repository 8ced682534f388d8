// Package opensearch connects to an OpenSearch cluster and indexes
// fingerprinted events.
//
// Config is populated from environment variables through
// github.com/dmitrymomot/hashid/pkg/config. New builds a client from it and
// pings the cluster once so a misconfigured cluster fails at startup.
//
// Indexer is a pipeline sink. It stores each event as a document whose ID is
// the event fingerprint, which makes repeated deliveries of the same event
// idempotent:
//
//	var cfg opensearch.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//	client, err := opensearch.New(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	idx, _ := opensearch.NewIndexer(client, cfg.Index)
//	proc, _ := pipeline.New(f, pipeline.WithSinks(idx))
//
// Indexer.Ping backs the readiness probe and fails with ErrHealthcheckFailed.
// Write failures wrap ErrIndexFailed.
package opensearch
