package services

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"truckqr/internal/domain"
	"truckqr/internal/domain/models"
)

var fixedNow = time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)

func testService() GeneratorService {
	return GeneratorService{
		RequestID: "test",
		Clock:     func() time.Time { return fixedNow },
		Location:  time.UTC,
	}
}

func sampleForm() models.DeliveryForm {
	return models.DeliveryForm{
		Plate:      "abc-123",
		DriverName: "john doe",
		CustomerID: "cust001",
		Date:       "2026-10-17",
		Hour:       "07",
		Minute:     "30",
		Meridiem:   "PM",
		Company:    "Acme",
		Items:      "item001:10, item002:5",
	}
}

func TestGeneratorServiceGenerate(t *testing.T) {
	res, err := testService().Generate(sampleForm())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !bytes.HasPrefix(res.PNG, []byte("\x89PNG")) {
		t.Fatalf("Generate did not return a PNG")
	}
	if !strings.Contains(res.Payload, `"date_time_at_gate": "2026-10-17T19:30:00"`) {
		t.Fatalf("payload missing gate time:\n%s", res.Payload)
	}
	if !strings.Contains(res.Payload, `"company": "Acme"`) {
		t.Fatalf("payload missing company:\n%s", res.Payload)
	}
	if res.Summary.TotalItems != 2 || res.Summary.TotalQuantity != 15 {
		t.Fatalf("unexpected summary: %+v", res.Summary)
	}
	if res.Version < 1 {
		t.Fatalf("unexpected version %d", res.Version)
	}
	if res.Filename != "QR_ABC-123_2026-10-17_1930.png" {
		t.Fatalf("unexpected filename %q", res.Filename)
	}
}

func TestGeneratorServiceValidationErrors(t *testing.T) {
	form := sampleForm()
	form.Plate = ""
	form.Items = ""

	_, err := testService().Generate(form)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	msgs := domain.ValidationMessages(err)
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %v", msgs)
	}
	if msgs[1] != "The 'Items' field is required." {
		t.Fatalf("unexpected item message %q", msgs[1])
	}
}

func TestGeneratorServiceFutureDate(t *testing.T) {
	form := sampleForm()
	form.Date = "2026-10-19"

	_, err := testService().Validate(form)
	msgs := domain.ValidationMessages(err)
	if len(msgs) != 1 || msgs[0] != "Date and time cannot be in the future." {
		t.Fatalf("expected future date rejection, got %v", msgs)
	}
}

func TestGeneratorServicePayloadTooLarge(t *testing.T) {
	parts := make([]string, 0, 300)
	for i := 0; i < 300; i++ {
		parts = append(parts, fmt.Sprintf("SKU%04d:1", i))
	}
	form := sampleForm()
	form.Items = strings.Join(parts, ",")

	res, err := testService().Generate(form)
	if !domain.IsPayloadTooLarge(err) {
		t.Fatalf("expected payload too large, got %v", err)
	}
	if res.PNG != nil {
		t.Fatalf("no image expected on capacity error")
	}

	if _, _, err := testService().GenerateGatePass(form); !domain.IsPayloadTooLarge(err) {
		t.Fatalf("expected payload too large for gate pass, got %v", err)
	}
}

func TestGeneratorServiceGatePass(t *testing.T) {
	form := sampleForm()
	form.TruckType = "Type A"
	form.DeliveryOrderRef = "DO-2024-001"

	pdf, filename, err := testService().GenerateGatePass(form)
	if err != nil {
		t.Fatalf("GenerateGatePass returned error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("GenerateGatePass did not return a PDF")
	}
	if filename != "GATEPASS_ABC-123_2026-10-17_1930.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestDigestIsStable(t *testing.T) {
	a := digest("payload")
	if a != digest("payload") || len(a) != 16 {
		t.Fatalf("unexpected digest %q", a)
	}
	if a == digest("payload2") {
		t.Fatalf("digest collision")
	}
}
