// Package inquiry handles inquiry submissions and the outbound WhatsApp
// handoff. There is no real backend: submission simulates latency and can
// reject only on its hard-coded precondition.
package inquiry

import (
	"context"
	"fmt"
	"time"

	"lstours/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const thankYouMessage = "Thank you for your inquiry! Our team will contact you within 24 hours."

// InquiryService defines business logic for inquiry handling.
type InquiryService interface {
	// Submit validates and records an inquiry, returning the confirmation.
	Submit(ctx context.Context, form models.Inquiry) (*models.InquiryResult, error)
	// QuoteLink builds the quote-request WhatsApp link.
	QuoteLink(req models.QuoteRequest) models.WhatsAppLink
	// ReservationLink builds the reservation link for a package. Pax, when
	// present, must be a positive integer.
	ReservationLink(pkg models.TourPackage, req models.ReservationRequest) (models.WhatsAppLink, error)
	// TripRequestLink builds the custom trip planner link.
	TripRequestLink(req models.TripRequest) models.WhatsAppLink
}

// DefaultInquiryService is the production implementation.
type DefaultInquiryService struct {
	WhatsAppNumber string
	Latency        time.Duration
	Logger         *zap.Logger
}

// Submit simulates the inquiry round trip. The only rejection is the
// hard-coded precondition that name and email are present.
func (s *DefaultInquiryService) Submit(ctx context.Context, form models.Inquiry) (*models.InquiryResult, error) {
	if s.Latency > 0 {
		timer := time.NewTimer(s.Latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if form.Name == "" || form.Email == "" {
		return nil, fmt.Errorf("name and email are required")
	}

	ref := uuid.New().String()
	s.Logger.Info("inquiry submitted",
		zap.String("referenceId", ref),
		zap.String("email", form.Email),
		zap.String("packageSlug", form.PackageSlug),
	)

	return &models.InquiryResult{
		Success:     true,
		Message:     thankYouMessage,
		ReferenceID: ref,
	}, nil
}

func (s *DefaultInquiryService) QuoteLink(req models.QuoteRequest) models.WhatsAppLink {
	return BuildQuoteLink(s.WhatsAppNumber, req)
}

func (s *DefaultInquiryService) ReservationLink(pkg models.TourPackage, req models.ReservationRequest) (models.WhatsAppLink, error) {
	if req.Pax != "" {
		var pax int
		if _, err := fmt.Sscanf(req.Pax, "%d", &pax); err != nil || pax < 1 {
			return models.WhatsAppLink{}, fmt.Errorf("pax must be at least 1")
		}
	}
	return BuildReservationLink(s.WhatsAppNumber, pkg, req), nil
}

func (s *DefaultInquiryService) TripRequestLink(req models.TripRequest) models.WhatsAppLink {
	return BuildTripRequestLink(s.WhatsAppNumber, req)
}
