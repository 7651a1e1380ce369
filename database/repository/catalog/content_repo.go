package catalog

import (
	"context"
	"time"

	"lstours/database"
	"lstours/models"
)

// MemoryContentRepo serves the static page content from the fixed dataset.
type MemoryContentRepo struct {
	data    *database.Dataset
	latency time.Duration
}

func NewMemoryContentRepo(data *database.Dataset, latency time.Duration) *MemoryContentRepo {
	return &MemoryContentRepo{data: data, latency: latency}
}

func (r *MemoryContentRepo) Services(ctx context.Context) ([]models.TravelService, error) {
	if err := simulateLatency(ctx, lookupLatency(r.latency)); err != nil {
		return nil, err
	}
	out := make([]models.TravelService, len(r.data.Services))
	copy(out, r.data.Services)
	return out, nil
}

func (r *MemoryContentRepo) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	if err := simulateLatency(ctx, lookupLatency(r.latency)); err != nil {
		return nil, err
	}
	out := make([]models.Testimonial, len(r.data.Testimonials))
	copy(out, r.data.Testimonials)
	return out, nil
}
