package services

import (
	"bytes"
	"fmt"
	"image/png"
	"strings"

	"github.com/phpdave11/gofpdf"
	"go.uber.org/zap"

	"truckqr/internal/domain"
	"truckqr/internal/domain/models"
	"truckqr/internal/metrics"
	"truckqr/internal/payload"
	"truckqr/internal/qr"
	"truckqr/internal/utils"
)

// qrEdgeMM is the printed edge length of the symbol on the gate pass.
const qrEdgeMM = 90.0

// GenerateGatePass renders a printable A4 gate pass holding the QR symbol,
// the summary and the embedded payload text.
func (s GeneratorService) GenerateGatePass(form models.DeliveryForm) ([]byte, string, error) {
	p, err := s.validate(form)
	if err != nil {
		return nil, "", err
	}
	text, err := payload.Marshal(p)
	if err != nil {
		return nil, "", domain.InternalError{Msg: "serialize payload", Err: err}
	}
	img, err := qr.Image(text)
	if err != nil {
		s.recordEncodeFailure(text, err)
		return nil, "", err
	}

	var qrPNG bytes.Buffer
	if err := png.Encode(&qrPNG, img); err != nil {
		return nil, "", domain.InternalError{Msg: "encode gate pass image", Err: err}
	}

	out, err := buildGatePassPDF(p, text, qrPNG.Bytes())
	if err != nil {
		metrics.GenerationsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, "", domain.InternalError{Msg: "render gate pass", Err: err}
	}

	metrics.GenerationsTotal.WithLabelValues(metrics.OutcomeOK).Inc()
	utils.LogEvent(s.RequestID, "docs", "generate_gate_pass", "gate pass generated",
		zap.String("payload_digest", digest(text)),
		zap.Int("pdf_bytes", len(out)))
	return out, filename("GATEPASS", p, "pdf"), nil
}

func buildGatePassPDF(p models.DeliveryPayload, text string, qrPNG []byte) ([]byte, error) {
	sum := payload.Summarize(p)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Truck Gate Pass", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRUCK GATE PASS")
	pdf.Ln(14)

	opt := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader("qr", opt, bytes.NewReader(qrPNG))
	pageW, _ := pdf.GetPageSize()
	pdf.ImageOptions("qr", (pageW-qrEdgeMM)/2, pdf.GetY(), qrEdgeMM, qrEdgeMM, true, opt, 0, "")
	pdf.Ln(6)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Plate          : %s", safe(sum.Plate, "N/A")),
		fmt.Sprintf("Driver         : %s", safe(sum.DriverName, "N/A")),
		fmt.Sprintf("Customer ID    : %s", safe(sum.CustomerID, "N/A")),
		fmt.Sprintf("Date/Time      : %s", safe(sum.DateTimeAtGate, "N/A")),
		fmt.Sprintf("Truck type     : %s", safe(p.TruckType, "-")),
		fmt.Sprintf("Company        : %s", safe(p.Company, "-")),
		fmt.Sprintf("Delivery ref   : %s", safe(p.DeliveryOrderRef, "-")),
		fmt.Sprintf("Total items    : %d", sum.TotalItems),
		fmt.Sprintf("Total quantity : %d", sum.TotalQuantity),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, tr(l))
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, "QR content:")
	pdf.Ln(7)
	pdf.SetFont("Courier", "", 8)
	pdf.MultiCell(0, 3.5, tr(text), "", "", false)

	if pdf.Err() {
		return nil, pdf.Error()
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
