package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/receipt-match/backend/internal/integration/persistence/model"
)

func newAliasTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.AutoMigrate(&model.VendorAliasModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func newAliasTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mini, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mini.Close)

	return redis.NewClient(&redis.Options{Addr: mini.Addr()})
}

func seedAlias(t *testing.T, db *gorm.DB, vendor, canonical string) {
	t.Helper()

	now := time.Now().UTC()
	err := db.Create(&model.VendorAliasModel{
		ID:        uuid.New(),
		Vendor:    vendor,
		Canonical: canonical,
		CreatedAt: now,
		UpdatedAt: now,
	}).Error
	if err != nil {
		t.Fatalf("failed to seed alias: %v", err)
	}
}

func TestVendorAliasService(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves alias from database", func(t *testing.T) {
		db := newAliasTestDB(t)
		seedAlias(t, db, "AMZN MKTP", "AMAZON")
		svc := NewVendorAliasService(db, newAliasTestRedis(t))

		alias, found, err := svc.CanonicalAlias(ctx, "AMZN MKTP")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found || alias != "AMAZON" {
			t.Errorf("got (%q, %v), want (AMAZON, true)", alias, found)
		}
	})

	t.Run("serves repeat lookup from cache", func(t *testing.T) {
		db := newAliasTestDB(t)
		seedAlias(t, db, "AMZN MKTP", "AMAZON")
		svc := NewVendorAliasService(db, newAliasTestRedis(t))

		if _, _, err := svc.CanonicalAlias(ctx, "AMZN MKTP"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Remove the row; the cached value must still answer.
		if err := db.Where("vendor = ?", "AMZN MKTP").Delete(&model.VendorAliasModel{}).Error; err != nil {
			t.Fatalf("failed to delete alias: %v", err)
		}

		alias, found, err := svc.CanonicalAlias(ctx, "AMZN MKTP")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found || alias != "AMAZON" {
			t.Errorf("got (%q, %v), want cached (AMAZON, true)", alias, found)
		}
	})

	t.Run("caches negative lookups", func(t *testing.T) {
		db := newAliasTestDB(t)
		svc := NewVendorAliasService(db, newAliasTestRedis(t))

		if _, found, err := svc.CanonicalAlias(ctx, "UNKNOWN VENDOR"); err != nil || found {
			t.Fatalf("got (found=%v, err=%v), want miss", found, err)
		}

		// Seeding after the miss must not surface until the TTL lapses.
		seedAlias(t, db, "UNKNOWN VENDOR", "KNOWN")

		_, found, err := svc.CanonicalAlias(ctx, "UNKNOWN VENDOR")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found {
			t.Error("negative cache entry was not honored")
		}
	})

	t.Run("works without a cache client", func(t *testing.T) {
		db := newAliasTestDB(t)
		seedAlias(t, db, "SBUX", "STARBUCKS")
		svc := NewVendorAliasService(db, nil)

		alias, found, err := svc.CanonicalAlias(ctx, "SBUX")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found || alias != "STARBUCKS" {
			t.Errorf("got (%q, %v), want (STARBUCKS, true)", alias, found)
		}
	})

	t.Run("empty vendor is a miss", func(t *testing.T) {
		svc := NewVendorAliasService(newAliasTestDB(t), nil)

		_, found, err := svc.CanonicalAlias(ctx, "")
		if err != nil || found {
			t.Errorf("got (found=%v, err=%v), want clean miss", found, err)
		}
	})
}
