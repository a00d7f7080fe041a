// Package payload assembles and serializes the canonical QR payload.
package payload

import (
	"bytes"
	"encoding/json"
	"fmt"

	"truckqr/internal/domain"
	"truckqr/internal/domain/models"
	"truckqr/internal/utils"
)

// Input holds values that already passed validation.
type Input struct {
	Plate            string
	DriverName       string
	CustomerID       string
	DateTimeAtGate   string
	Items            []models.ItemRecord
	TruckType        string
	Company          string
	DeliveryOrderRef string
}

// Build normalizes casing and drops empty optional fields. It does not validate.
func Build(in Input) models.DeliveryPayload {
	items := make([]models.ItemRecord, len(in.Items))
	copy(items, in.Items)

	p := models.DeliveryPayload{
		Plate:          utils.UpperTrim(in.Plate),
		DriverName:     utils.TitleCase(in.DriverName),
		CustomerID:     utils.UpperTrim(in.CustomerID),
		DateTimeAtGate: in.DateTimeAtGate,
		ItemList:       items,
	}
	if t := utils.TrimOrEmpty(in.TruckType); t != "" {
		if known, ok := domain.ParseTruckType(t); ok {
			t = string(known)
		}
		p.TruckType = t
	}
	if c := utils.TrimOrEmpty(in.Company); c != "" {
		p.Company = c
	}
	if r := utils.UpperTrim(in.DeliveryOrderRef); r != "" {
		p.DeliveryOrderRef = r
	}
	return p
}

// Marshal serializes p with a fixed key order and two-space indentation.
// Non-ASCII text is kept as UTF-8 and HTML characters are not escaped.
func Marshal(p models.DeliveryPayload) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// Summarize derives the totals shown next to a generated symbol.
func Summarize(p models.DeliveryPayload) models.Summary {
	s := models.Summary{
		Plate:          p.Plate,
		DriverName:     p.DriverName,
		CustomerID:     p.CustomerID,
		DateTimeAtGate: p.DateTimeAtGate,
		TotalItems:     len(p.ItemList),
	}
	for _, it := range p.ItemList {
		s.TotalQuantity += it.Quantity
	}
	return s
}
