package handlers

import (
	"net/http"

	"lstours/models"
	"lstours/services/catalog"
	"lstours/services/inquiry"
	"lstours/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InquiryHandler serves inquiry submissions and WhatsApp handoffs.
type InquiryHandler struct {
	Svc     inquiry.InquiryService
	Catalog catalog.CatalogService
	Logger  *zap.Logger
}

func NewInquiryHandler(svc inquiry.InquiryService, catalogSvc catalog.CatalogService, logger *zap.Logger) *InquiryHandler {
	return &InquiryHandler{Svc: svc, Catalog: catalogSvc, Logger: logger}
}

// SubmitInquiry handles POST /api/inquiries.
func (h *InquiryHandler) SubmitInquiry(c *gin.Context) {
	var form models.Inquiry
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.Svc.Submit(c.Request.Context(), form)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "inquiry rejected", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// QuoteLink handles POST /api/inquiries/quote.
func (h *InquiryHandler) QuoteLink(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	c.JSON(http.StatusOK, h.Svc.QuoteLink(req))
}

// ReservationLink handles POST /api/inquiries/reserve/:slug.
func (h *InquiryHandler) ReservationLink(c *gin.Context) {
	slug := c.Param("slug")
	var req models.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	pkg, err := h.Catalog.PackageBySlug(c.Request.Context(), slug)
	if err != nil {
		h.Logger.Error("ReservationLink: package lookup failed", zap.String("slug", slug), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch package", err.Error())
		return
	}
	if pkg == nil {
		utils.JSONError(c, http.StatusNotFound, "package not found", slug)
		return
	}

	wa, err := h.Svc.ReservationLink(*pkg, req)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid reservation", err.Error())
		return
	}
	c.JSON(http.StatusOK, wa)
}

// TripRequestLink handles POST /api/inquiries/custom-trip.
func (h *InquiryHandler) TripRequestLink(c *gin.Context) {
	var req models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	c.JSON(http.StatusOK, h.Svc.TripRequestLink(req))
}
