package technician

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	technicianRepo "garagedesk/database/repository/technician"
	"garagedesk/models"
	"garagedesk/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const directoryCacheKey = "technicians:directory"

// Directory serves technician lookups with a short-lived Redis cache in
// front of the store. The cache is constructor-injected: there is no hidden
// package-level state, and Invalidate is explicit.
type Directory struct {
	Repo  technicianRepo.TechnicianRepository
	Cache *redis.Client
	TTL   time.Duration
}

// NewDirectory builds a Directory with the standard 5-minute cache TTL.
func NewDirectory(repo technicianRepo.TechnicianRepository, cache *redis.Client, ttl time.Duration) *Directory {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Directory{Repo: repo, Cache: cache, TTL: ttl}
}

// List returns all technicians in display order, from cache when fresh.
func (d *Directory) List(ctx context.Context) ([]models.Technician, error) {
	logger := utils.GetLogger()

	if d.Cache != nil {
		cached, err := d.Cache.Get(ctx, directoryCacheKey).Result()
		if err == nil {
			var techs []models.Technician
			if err := json.Unmarshal([]byte(cached), &techs); err == nil {
				return techs, nil
			}
			logger.Warn("Discarding unreadable technician cache entry", zap.Error(err))
		} else if err != redis.Nil {
			logger.Warn("Technician cache read failed", zap.Error(err))
		}
	}

	techs, err := d.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing technicians: %w", err)
	}

	if d.Cache != nil {
		if data, err := json.Marshal(techs); err == nil {
			if err := d.Cache.Set(ctx, directoryCacheKey, data, d.TTL).Err(); err != nil {
				logger.Warn("Technician cache write failed", zap.Error(err))
			}
		}
	}
	return techs, nil
}

// Invalidate drops the cached directory. Called after any technician write.
func (d *Directory) Invalidate(ctx context.Context) {
	if d.Cache == nil {
		return
	}
	if err := d.Cache.Del(ctx, directoryCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("Technician cache invalidation failed", zap.Error(err))
	}
}

// Resolve canonicalizes a technician reference. An id passes through after
// a directory check; a legacy name-only reference is upgraded to the
// matching directory id when one exists. Name-only references with no
// directory entry are returned as-is so pre-migration records keep working.
func (d *Directory) Resolve(ctx context.Context, ref models.TechnicianRef) (models.TechnicianRef, error) {
	if ref.IsZero() {
		return ref, fmt.Errorf("technician reference is empty")
	}

	techs, err := d.List(ctx)
	if err != nil {
		return ref, err
	}

	if ref.ID != "" {
		for _, t := range techs {
			if t.ID == ref.ID {
				return models.TechnicianRef{ID: t.ID, Name: t.Name}, nil
			}
		}
		return ref, fmt.Errorf("unknown technician id %q", ref.ID)
	}

	for _, t := range techs {
		if t.Name == ref.Name {
			return models.TechnicianRef{ID: t.ID, Name: t.Name}, nil
		}
	}
	// Legacy record whose technician was removed from the directory.
	return ref, nil
}

// Create adds a technician and invalidates the cache.
func (d *Directory) Create(ctx context.Context, tech *models.Technician) error {
	if tech.ID == "" {
		tech.ID = uuid.New().String()
	}
	if err := d.Repo.Create(ctx, tech); err != nil {
		return err
	}
	d.Invalidate(ctx)
	return nil
}

// Update modifies a technician and invalidates the cache.
func (d *Directory) Update(ctx context.Context, id string, tech *models.Technician) error {
	if err := d.Repo.Update(ctx, id, tech); err != nil {
		return err
	}
	d.Invalidate(ctx)
	return nil
}

// Delete removes a technician and invalidates the cache.
func (d *Directory) Delete(ctx context.Context, id string) error {
	if err := d.Repo.Delete(ctx, id); err != nil {
		return err
	}
	d.Invalidate(ctx)
	return nil
}
