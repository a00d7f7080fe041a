package validation

import (
	"fmt"
	"strconv"
	"strings"

	"truckqr/internal/domain/models"
	"truckqr/internal/utils"
)

const (
	MsgItemsRequired = "The 'Items' field is required."
	MsgItemsEmpty    = "The 'Items' field is required and does not contain valid items."
)

// ItemsResult is the outcome of parsing an item list.
type ItemsResult struct {
	OK     bool
	Items  []models.ItemRecord
	Errors []string
}

// ParseItems parses "SKU:QTY, SKU:QTY, ..." into item records. Every bad token
// produces its own error; parsing continues past it.
func ParseItems(raw string) ItemsResult {
	if utils.TrimOrEmpty(raw) == "" {
		return ItemsResult{Errors: []string{MsgItemsRequired}}
	}

	tokens := utils.SplitItemTokens(raw)
	if len(tokens) == 0 {
		return ItemsResult{Errors: []string{MsgItemsEmpty}}
	}

	res := ItemsResult{Items: make([]models.ItemRecord, 0, len(tokens))}
	seen := make(map[string]struct{}, len(tokens))

	for _, tok := range tokens {
		sku, qty, ok := strings.Cut(tok, ":")
		if !ok || strings.Contains(qty, ":") {
			res.Errors = append(res.Errors, fmt.Sprintf("Invalid item format: '%s'. Use 'SKU:Quantity'.", tok))
			continue
		}

		id := utils.UpperTrim(sku)
		qty = utils.TrimOrEmpty(qty)

		if !ValidItemID(id) {
			res.Errors = append(res.Errors, fmt.Sprintf("Invalid item ID format: '%s'. Use only letters, numbers, hyphens and underscores.", id))
			continue
		}
		if _, dup := seen[id]; dup {
			res.Errors = append(res.Errors, fmt.Sprintf("Duplicate item ID: '%s'.", id))
			continue
		}
		seen[id] = struct{}{}

		n, err := strconv.Atoi(qty)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("Quantity '%s' for '%s' is not a valid number.", qty, id))
			continue
		}
		if n <= 0 {
			res.Errors = append(res.Errors, fmt.Sprintf("Quantity for '%s' must be a positive number.", id))
			continue
		}
		res.Items = append(res.Items, models.ItemRecord{ItemID: id, Quantity: n})
	}

	// at least one item must survive, independent of the error count
	res.OK = len(res.Errors) == 0 && len(res.Items) > 0
	if len(res.Errors) == 0 && len(res.Items) == 0 {
		res.Errors = append(res.Errors, MsgItemsEmpty)
	}
	return res
}
