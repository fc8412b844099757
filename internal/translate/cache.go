package translate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/Lee0514/travel-app-backend/internal/redis"
)

const cacheTTL = 24 * time.Hour

// Cache memoizes translation responses in redis. Translations of a fixed
// text/language pair are stable, so a long TTL is safe.
type Cache struct {
	client *redis.Client
	prefix string
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{
		client: client,
		prefix: "translate:",
	}
}

func (c *Cache) key(text, sourceLang, targetLang string) string {
	sum := sha256.Sum256([]byte(sourceLang + "\x00" + targetLang + "\x00" + text))
	return c.prefix + hex.EncodeToString(sum[:])
}

func (c *Cache) Get(ctx context.Context, text, sourceLang, targetLang string) (json.RawMessage, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	// cache trouble must never break translation; a miss and an error
	// look the same to the caller
	val, err := c.client.Get(ctx, c.key(text, sourceLang, targetLang)).Bytes()
	if err != nil {
		return nil, false
	}

	return json.RawMessage(val), true
}

func (c *Cache) Set(ctx context.Context, text, sourceLang, targetLang string, result json.RawMessage) {
	if c == nil || c.client == nil {
		return
	}

	_ = c.client.Set(ctx, c.key(text, sourceLang, targetLang), []byte(result), cacheTTL).Err()
}
