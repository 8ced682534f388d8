package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Deduper remembers fingerprints in Redis so that several processes share
// one view of what has been seen.
type Deduper struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewDeduper returns a Deduper storing keys as prefix+fingerprint with the
// given ttl. A zero ttl keeps keys forever.
func NewDeduper(client redis.UniversalClient, prefix string, ttl time.Duration) (*Deduper, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	return &Deduper{client: client, prefix: prefix, ttl: ttl}, nil
}

// NewDeduperFromConfig uses cfg.DedupPrefix and cfg.DedupTTL.
func NewDeduperFromConfig(client redis.UniversalClient, cfg Config) (*Deduper, error) {
	return NewDeduper(client, cfg.DedupPrefix, cfg.DedupTTL)
}

// Seen sets the fingerprint key if absent and reports whether it already existed.
func (d *Deduper) Seen(ctx context.Context, id string) (bool, error) {
	created, err := d.client.SetNX(ctx, d.key(id), 1, d.ttl).Result()
	if err != nil {
		return false, errors.Join(ErrDedupFailed, err)
	}
	return !created, nil
}

// Forget removes a fingerprint so the next Seen reports it as new.
func (d *Deduper) Forget(ctx context.Context, id string) error {
	if err := d.client.Del(ctx, d.key(id)).Err(); err != nil {
		return errors.Join(ErrDedupFailed, err)
	}
	return nil
}

// Ping reports whether the server answers. It backs the readiness probe.
func (d *Deduper) Ping(ctx context.Context) error {
	if err := d.client.Ping(ctx).Err(); err != nil {
		return errors.Join(ErrHealthcheckFailed, err)
	}
	return nil
}

func (d *Deduper) key(id string) string {
	return d.prefix + id
}
