package infra_session_cache

import (
	"fmt"
	"time"

	"github.com/go-redis/redis"
)

const revokedValue = "revoked"

// Client is the subset of *redis.Client the cache needs.
//
//go:generate mockery --name=Client --output=./mocks --outpkg=mocks --filename=client.go
type Client interface {
	Set(key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(key string) *redis.StringCmd
}

// Driver keeps ids of revoked tokens until the tokens would have expired
// anyway.
type Driver struct {
	client Client
	key    string
}

func New(
	client Client,
	key string,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
	}
}

// Revoke marks tokenID revoked for ttl. A non-positive ttl is a no-op since
// the token is already expired.
func (d *Driver) Revoke(tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	if err := d.client.Set(d.getFullKey(tokenID), revokedValue, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (d *Driver) IsRevoked(tokenID string) (bool, error) {
	val, err := d.client.Get(d.getFullKey(tokenID)).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}

	return val != "", nil
}

func (d *Driver) getFullKey(key string) string {
	if d.key != "" {
		return d.key + ":" + key
	}
	return key
}
