package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates every route handler for registration.
type HandlerBundle struct {
	// Package endpoints
	ListPackagesHandler        gin.HandlerFunc
	GetPackageBySlugHandler    gin.HandlerFunc
	GetFeaturedPackagesHandler gin.HandlerFunc
	GetPackagesByRegionHandler gin.HandlerFunc
	GetPackageItineraryHandler gin.HandlerFunc

	// Destination endpoints
	ListDestinationsHandler        gin.HandlerFunc
	GetDestinationBySlugHandler    gin.HandlerFunc
	GetDestinationsByRegionHandler gin.HandlerFunc

	// Content endpoints
	GetServicesHandler     gin.HandlerFunc
	GetTestimonialsHandler gin.HandlerFunc

	// Inquiry endpoints
	SubmitInquiryHandler   gin.HandlerFunc
	QuoteLinkHandler       gin.HandlerFunc
	ReservationLinkHandler gin.HandlerFunc
	TripRequestLinkHandler gin.HandlerFunc

	// Session endpoints
	SetFiltersHandler   gin.HandlerFunc
	ResetFiltersHandler gin.HandlerFunc
	SetPageHandler      gin.HandlerFunc
	GetViewHandler      gin.HandlerFunc
}
