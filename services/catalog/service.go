package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	catalogRepo "lstours/database/repository/catalog"
	"lstours/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Collection names used with the fetch gate.
const (
	CollectionPackages     = "packages"
	CollectionDestinations = "destinations"
)

const viewCacheTTL = 5 * time.Minute

// CatalogService defines the catalog read operations.
type CatalogService interface {
	// Packages returns the loaded package collection, triggering a fetch on
	// first call. While a fetch is in flight, or after a failed fetch, the
	// collection is empty.
	Packages(ctx context.Context) ([]models.TourPackage, error)
	// Destinations behaves like Packages for the destination collection.
	Destinations(ctx context.Context) ([]models.Destination, error)
	// PackageBySlug returns the package with the given slug, or nil.
	PackageBySlug(ctx context.Context, slug string) (*models.TourPackage, error)
	// DestinationBySlug returns the destination with the given slug, or nil.
	DestinationBySlug(ctx context.Context, slug string) (*models.Destination, error)
	// FeaturedPackages returns packages flagged as featured.
	FeaturedPackages(ctx context.Context) ([]models.TourPackage, error)
	// PackagesByRegion returns packages matching a region name substring.
	PackagesByRegion(ctx context.Context, region string) ([]models.TourPackage, error)
	// DestinationsByRegion returns destinations matching a region substring.
	DestinationsByRegion(ctx context.Context, region string) ([]models.Destination, error)
	// FilteredPackages applies the filter state to the loaded packages,
	// consulting the view cache when one is configured.
	FilteredPackages(ctx context.Context, filters models.FilterState) ([]models.TourPackage, error)
	// Statuses reports the fetch status of each named collection.
	Statuses() map[string]string
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo     catalogRepo.PackageRepository
	DestRepo catalogRepo.DestinationRepository
	Cache    *redis.Client // Optional; nil disables the view cache.
	Logger   *zap.Logger
	Gate     *CollectionGate

	mu           sync.RWMutex
	packages     []models.TourPackage
	destinations []models.Destination
}

// NewDefaultCatalogService wires a catalog service over the given repositories.
func NewDefaultCatalogService(repo catalogRepo.PackageRepository, destRepo catalogRepo.DestinationRepository, cache *redis.Client, logger *zap.Logger) *DefaultCatalogService {
	return &DefaultCatalogService{
		Repo:     repo,
		DestRepo: destRepo,
		Cache:    cache,
		Logger:   logger,
		Gate:     NewCollectionGate(),
	}
}

func (s *DefaultCatalogService) Packages(ctx context.Context) ([]models.TourPackage, error) {
	if s.Gate.Begin(CollectionPackages) {
		items, err := s.Repo.GetAll(ctx)
		if err != nil {
			s.Gate.Fail(CollectionPackages, err.Error())
			s.Logger.Warn("package fetch failed", zap.Error(err))
			return nil, fmt.Errorf("failed to fetch packages: %w", err)
		}
		s.mu.Lock()
		s.packages = items
		s.mu.Unlock()
		s.Gate.Succeed(CollectionPackages)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TourPackage, len(s.packages))
	copy(out, s.packages)
	return out, nil
}

func (s *DefaultCatalogService) Destinations(ctx context.Context) ([]models.Destination, error) {
	if s.Gate.Begin(CollectionDestinations) {
		items, err := s.DestRepo.GetAll(ctx)
		if err != nil {
			s.Gate.Fail(CollectionDestinations, err.Error())
			s.Logger.Warn("destination fetch failed", zap.Error(err))
			return nil, fmt.Errorf("failed to fetch destinations: %w", err)
		}
		s.mu.Lock()
		s.destinations = items
		s.mu.Unlock()
		s.Gate.Succeed(CollectionDestinations)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Destination, len(s.destinations))
	copy(out, s.destinations)
	return out, nil
}

func (s *DefaultCatalogService) PackageBySlug(ctx context.Context, slug string) (*models.TourPackage, error) {
	return s.Repo.GetBySlug(ctx, slug)
}

func (s *DefaultCatalogService) DestinationBySlug(ctx context.Context, slug string) (*models.Destination, error) {
	return s.DestRepo.GetBySlug(ctx, slug)
}

func (s *DefaultCatalogService) FeaturedPackages(ctx context.Context) ([]models.TourPackage, error) {
	return s.Repo.GetFeatured(ctx)
}

func (s *DefaultCatalogService) PackagesByRegion(ctx context.Context, region string) ([]models.TourPackage, error) {
	return s.Repo.GetByRegion(ctx, region)
}

func (s *DefaultCatalogService) DestinationsByRegion(ctx context.Context, region string) ([]models.Destination, error) {
	return s.DestRepo.GetByRegion(ctx, region)
}

func (s *DefaultCatalogService) FilteredPackages(ctx context.Context, filters models.FilterState) ([]models.TourPackage, error) {
	items, err := s.Packages(ctx)
	if err != nil {
		return nil, err
	}

	key := viewCacheKey(filters)
	if cached, ok := s.cachedView(ctx, key); ok {
		return cached, nil
	}

	filtered := ApplyFilters(items, filters)
	s.storeView(ctx, key, filtered)
	return filtered, nil
}

func (s *DefaultCatalogService) Statuses() map[string]string {
	out := make(map[string]string, 2)
	for _, name := range []string{CollectionPackages, CollectionDestinations} {
		status, errMsg := s.Gate.Status(name)
		if errMsg != "" {
			out[name] = fmt.Sprintf("%s: %s", status, errMsg)
		} else {
			out[name] = string(status)
		}
	}
	return out
}

// cachedView looks up a filtered view in the cache. Any cache error is
// treated as a miss.
func (s *DefaultCatalogService) cachedView(ctx context.Context, key string) ([]models.TourPackage, bool) {
	if s.Cache == nil {
		return nil, false
	}
	raw, err := s.Cache.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			s.Logger.Debug("view cache get failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	var items []models.TourPackage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.Logger.Debug("view cache decode failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return items, true
}

// storeView writes a filtered view to the cache, best effort.
func (s *DefaultCatalogService) storeView(ctx context.Context, key string, items []models.TourPackage) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, raw, viewCacheTTL).Err(); err != nil {
		s.Logger.Debug("view cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// viewCacheKey renders a filter state as a canonical cache key. Slice order
// is preserved: two states that differ only in selection order are distinct
// keys, which only costs a recompute.
func viewCacheKey(filters models.FilterState) string {
	return fmt.Sprintf("catalog:view:d=%s|r=%s|s=%s|i=%s|p=%g-%g|o=%s",
		strings.Join(filters.Duration, ","),
		strings.Join(filters.Regions, ","),
		strings.Join(filters.TravelStyle, ","),
		strings.Join(filters.Interests, ","),
		filters.PriceRange[0], filters.PriceRange[1],
		filters.SortBy,
	)
}
