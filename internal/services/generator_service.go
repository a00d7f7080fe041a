package services

import (
	"encoding/hex"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"

	"truckqr/internal/domain"
	"truckqr/internal/domain/models"
	"truckqr/internal/metrics"
	"truckqr/internal/payload"
	"truckqr/internal/qr"
	"truckqr/internal/utils"
	"truckqr/internal/validation"
)

// GeneratorService turns one submitted form into a QR symbol. Build a fresh
// value per request; it holds no state between calls.
type GeneratorService struct {
	RequestID string
	Clock     func() time.Time
	Location  *time.Location
}

// GenerateResult is what the presentation layer needs to show a symbol.
type GenerateResult struct {
	PNG      []byte
	Payload  string
	Summary  models.Summary
	Version  int
	Filename string
}

// Generate validates form and encodes the resulting payload. Validation
// failures come back as domain.ValidationErrors holding every message;
// oversized payloads as domain.PayloadTooLargeError.
func (s GeneratorService) Generate(form models.DeliveryForm) (GenerateResult, error) {
	start := time.Now()
	defer func() { metrics.GenerationDuration.Observe(time.Since(start).Seconds()) }()

	p, err := s.validate(form)
	if err != nil {
		return GenerateResult{}, err
	}

	text, err := payload.Marshal(p)
	if err != nil {
		metrics.GenerationsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return GenerateResult{}, domain.InternalError{Msg: "serialize payload", Err: err}
	}
	metrics.PayloadBytes.Observe(float64(len(text)))

	art, err := qr.Encode(text)
	if err != nil {
		s.recordEncodeFailure(text, err)
		return GenerateResult{}, err
	}

	metrics.GenerationsTotal.WithLabelValues(metrics.OutcomeOK).Inc()
	utils.LogEvent(s.RequestID, "qr", "generate", "qr generated",
		zap.Int("version", art.Version),
		zap.Int("payload_bytes", len(text)),
		zap.String("payload_digest", digest(text)),
		zap.Int("items", len(p.ItemList)),
	)

	return GenerateResult{
		PNG:      art.PNG,
		Payload:  art.Payload,
		Summary:  payload.Summarize(p),
		Version:  art.Version,
		Filename: filename("QR", p, "png"),
	}, nil
}

// Validate runs only the validation phase and returns the canonical payload.
func (s GeneratorService) Validate(form models.DeliveryForm) (models.DeliveryPayload, error) {
	return s.validate(form)
}

func (s GeneratorService) validate(form models.DeliveryForm) (models.DeliveryPayload, error) {
	res := validation.Validate(form, s.now(), s.location())
	if !res.OK() {
		metrics.GenerationsTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		for _, fe := range res.Errors {
			metrics.ValidationErrorsTotal.WithLabelValues(fe.Field).Inc()
		}
		utils.LogEvent(s.RequestID, "qr", "validate", "submission rejected",
			zap.Int("errors", len(res.Errors)))
		return models.DeliveryPayload{}, res.Err()
	}
	return *res.Payload, nil
}

func (s GeneratorService) recordEncodeFailure(text string, err error) {
	if domain.IsPayloadTooLarge(err) {
		metrics.GenerationsTotal.WithLabelValues(metrics.OutcomeTooLarge).Inc()
		utils.LogEvent(s.RequestID, "qr", "encode", "payload exceeds qr capacity",
			zap.Int("payload_bytes", len(text)))
		return
	}
	metrics.GenerationsTotal.WithLabelValues(metrics.OutcomeError).Inc()
	utils.L().Error("unexpected qr encoding failure",
		zap.String("request_id", s.RequestID),
		zap.String("payload_digest", digest(text)),
		zap.Error(err),
	)
}

func (s GeneratorService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

func (s GeneratorService) location() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return time.Local
}

// digest identifies a payload in logs without revealing it.
func digest(text string) string {
	sum := blake2b.Sum256([]byte(text))
	return hex.EncodeToString(sum[:8])
}

func filename(prefix string, p models.DeliveryPayload, ext string) string {
	stamp := p.DateTimeAtGate
	if len(stamp) >= 16 {
		stamp = stamp[:10] + "_" + stamp[11:13] + stamp[14:16]
	}
	return fmt.Sprintf("%s_%s_%s.%s", prefix, utils.SafeFilenamePart(p.Plate), utils.SafeFilenamePart(stamp), ext)
}
