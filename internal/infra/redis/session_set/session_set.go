package infra_redis_session_set

import (
	"time"

	"github.com/go-redis/redis"
)

// Driver records "this session id exists" under a prefixed key with a TTL.
// It is the non-authoritative shadow of the sessions table.
type Driver struct {
	client *redis.Client
	key    string
}

func New(
	client *redis.Client,
	key string,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
	}
}

func (d *Driver) Set(key string, ttl time.Duration) error {
	return d.client.Set(d.getFullKey(key), 1, ttl).Err()
}

func (d *Driver) Exists(key string) (bool, error) {
	n, err := d.client.Exists(d.getFullKey(key)).Result()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func (d *Driver) Del(key string) error {
	return d.client.Del(d.getFullKey(key)).Err()
}

func (d *Driver) getFullKey(key string) string {
	if d.key != "" {
		return d.key + ":" + key
	}
	return key
}
