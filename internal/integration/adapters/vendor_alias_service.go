// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/receipt-match/backend/internal/application/adapter"
	"github.com/receipt-match/backend/internal/integration/persistence/model"
)

const (
	// aliasCacheTTL bounds staleness after the alias table is edited.
	aliasCacheTTL = 1 * time.Hour

	aliasKeyPrefix = "vendor_alias:"

	// aliasCacheMiss marks a vendor with no alias so the database is not
	// re-queried on every scoring pass.
	aliasCacheMiss = "\x00none"
)

// vendorAliasService resolves canonical vendor aliases from the vendor_aliases
// table, with a Redis read-through cache in front. Cache failures degrade to a
// direct database lookup.
type vendorAliasService struct {
	db    *gorm.DB
	cache *redis.Client
}

// NewVendorAliasService creates a new vendor alias lookup instance. The cache
// client may be nil, in which case every lookup hits the database.
func NewVendorAliasService(db *gorm.DB, cache *redis.Client) adapter.VendorAliasLookup {
	return &vendorAliasService{
		db:    db,
		cache: cache,
	}
}

// CanonicalAlias returns the canonical alias for a normalized vendor string.
func (s *vendorAliasService) CanonicalAlias(ctx context.Context, normalizedVendor string) (string, bool, error) {
	if normalizedVendor == "" {
		return "", false, nil
	}

	if s.cache != nil {
		key := aliasKeyPrefix + normalizedVendor
		val, err := s.cache.Get(ctx, key).Result()
		switch {
		case err == nil:
			if val == aliasCacheMiss {
				return "", false, nil
			}
			return val, true, nil
		case errors.Is(err, redis.Nil):
			// fall through to the database
		default:
			slog.Warn("vendor alias cache read failed", "error", err)
		}
	}

	var aliasModel model.VendorAliasModel
	result := s.db.WithContext(ctx).
		Where("vendor = ?", normalizedVendor).
		First(&aliasModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			s.cacheSet(ctx, normalizedVendor, aliasCacheMiss)
			return "", false, nil
		}
		return "", false, result.Error
	}

	s.cacheSet(ctx, normalizedVendor, aliasModel.Canonical)
	return aliasModel.Canonical, true, nil
}

func (s *vendorAliasService) cacheSet(ctx context.Context, normalizedVendor, value string) {
	if s.cache == nil {
		return
	}
	key := aliasKeyPrefix + normalizedVendor
	if err := s.cache.Set(ctx, key, value, aliasCacheTTL).Err(); err != nil {
		slog.Warn("vendor alias cache write failed", "error", err)
	}
}
