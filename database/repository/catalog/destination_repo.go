package catalog

import (
	"context"
	"strings"
	"time"

	"lstours/database"
	"lstours/models"
)

// MemoryDestinationRepo serves destinations from the fixed dataset.
type MemoryDestinationRepo struct {
	data    *database.Dataset
	latency time.Duration
}

func NewMemoryDestinationRepo(data *database.Dataset, latency time.Duration) *MemoryDestinationRepo {
	return &MemoryDestinationRepo{data: data, latency: latency}
}

func (r *MemoryDestinationRepo) GetAll(ctx context.Context) ([]models.Destination, error) {
	if err := simulateLatency(ctx, r.latency); err != nil {
		return nil, err
	}
	out := make([]models.Destination, len(r.data.Destinations))
	copy(out, r.data.Destinations)
	return out, nil
}

func (r *MemoryDestinationRepo) GetBySlug(ctx context.Context, slug string) (*models.Destination, error) {
	if err := simulateLatency(ctx, lookupLatency(r.latency)); err != nil {
		return nil, err
	}
	for i := range r.data.Destinations {
		if r.data.Destinations[i].Slug == slug {
			dest := r.data.Destinations[i]
			return &dest, nil
		}
	}
	return nil, nil
}

func (r *MemoryDestinationRepo) GetByRegion(ctx context.Context, region string) ([]models.Destination, error) {
	if err := simulateLatency(ctx, lookupLatency(r.latency)); err != nil {
		return nil, err
	}
	needle := strings.ToLower(region)
	var out []models.Destination
	for _, dest := range r.data.Destinations {
		if strings.Contains(strings.ToLower(dest.Region), needle) {
			out = append(out, dest)
		}
	}
	return out, nil
}
