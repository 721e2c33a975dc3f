package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/agriconnect/marketplace-api/internal/config"
	"github.com/agriconnect/marketplace-api/internal/dto"
)

const (
	catalogKey = "catalog:all"
	catalogTTL = 30 * time.Second
)

// Catalog keeps the unfiltered public listing warm in Redis. Every failure
// degrades to a cache miss so the store stays the source of truth.
type Catalog struct {
	rdb *redis.Client
}

func NewCatalog(cfg *config.Config) *Catalog {
	return &Catalog{
		rdb: redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}),
	}
}

func (c *Catalog) Get(ctx context.Context) ([]dto.ProductListDTO, bool) {
	raw, err := c.rdb.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Println("catalog cache get:", err)
		}
		return nil, false
	}

	var items []dto.ProductListDTO
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Println("catalog cache decode:", err)
		return nil, false
	}
	return items, true
}

func (c *Catalog) Set(ctx context.Context, items []dto.ProductListDTO) {
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, catalogKey, raw, catalogTTL).Err(); err != nil {
		log.Println("catalog cache set:", err)
	}
}

func (c *Catalog) Invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, catalogKey).Err(); err != nil {
		log.Println("catalog cache invalidate:", err)
	}
}
