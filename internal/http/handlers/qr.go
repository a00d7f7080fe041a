package handlers

import (
	"encoding/base64"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"truckqr/internal/domain/models"
	"truckqr/internal/http/middleware"
	"truckqr/internal/services"
)

// QR serves the generation endpoints. Every request gets its own
// GeneratorService; nothing is shared between submissions.
type QR struct {
	Location *time.Location
	Clock    func() time.Time
}

// GenerateResponse is returned by POST /api/qr.
type GenerateResponse struct {
	Payload     string         `json:"payload"`
	Summary     models.Summary `json:"summary"`
	Version     int            `json:"version"`
	ImageBase64 string         `json:"image_base64"`
	ImageType   string         `json:"image_type"`
	Filename    string         `json:"filename"`
	RequestID   string         `json:"request_id,omitempty"`
}

func (h QR) service(c *gin.Context) services.GeneratorService {
	return services.GeneratorService{
		RequestID: middleware.GetRequestID(c),
		Clock:     h.Clock,
		Location:  h.Location,
	}
}

// Generate validates the form and returns the symbol with its payload and summary.
func (h QR) Generate(c *gin.Context) {
	var form models.DeliveryForm
	if !BindOrError(c, &form) {
		return
	}
	res, err := h.service(c).Generate(form)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, GenerateResponse{
		Payload:     res.Payload,
		Summary:     res.Summary,
		Version:     res.Version,
		ImageBase64: base64.StdEncoding.EncodeToString(res.PNG),
		ImageType:   "image/png",
		Filename:    res.Filename,
		RequestID:   middleware.GetRequestID(c),
	})
}

// GeneratePNG returns the symbol image only (inline).
func (h QR) GeneratePNG(c *gin.Context) {
	var form models.DeliveryForm
	if !BindOrError(c, &form) {
		return
	}
	res, err := h.service(c).Generate(form)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+res.Filename+`"`)
	c.Data(http.StatusOK, "image/png", res.PNG)
}

// GenerateGatePass returns a printable PDF with the symbol and summary (inline).
func (h QR) GenerateGatePass(c *gin.Context) {
	var form models.DeliveryForm
	if !BindOrError(c, &form) {
		return
	}
	pdfBytes, filename, err := h.service(c).GenerateGatePass(form)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// Validate checks the form without encoding and returns the canonical payload.
func (h QR) Validate(c *gin.Context) {
	var form models.DeliveryForm
	if !BindOrError(c, &form) {
		return
	}
	p, err := h.service(c).Validate(form)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true, "payload": p})
}
