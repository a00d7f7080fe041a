package validation

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"truckqr/internal/domain/models"
)

func TestParseItemsIgnoresWhitespace(t *testing.T) {
	want := []models.ItemRecord{{ItemID: "A", Quantity: 1}, {ItemID: "B", Quantity: 2}}
	for _, raw := range []string{"A:1, B:2", "A:1,B:2", " A:1 , B:2 ", "a : 1,b:2,"} {
		res := ParseItems(raw)
		require.True(t, res.OK, "input %q: %v", raw, res.Errors)
		if diff := cmp.Diff(want, res.Items); diff != "" {
			t.Fatalf("input %q: items mismatch (-want +got):\n%s", raw, diff)
		}
	}
}

func TestParseItemsDuplicateIsCaseInsensitive(t *testing.T) {
	res := ParseItems("sku1:1,SKU1:2")
	assert.False(t, res.OK)
	assert.Equal(t, []string{"Duplicate item ID: 'SKU1'."}, res.Errors)
	assert.Equal(t, []models.ItemRecord{{ItemID: "SKU1", Quantity: 1}}, res.Items)
}

func TestParseItemsRequired(t *testing.T) {
	assert.Equal(t, []string{MsgItemsRequired}, ParseItems("").Errors)
	assert.Equal(t, []string{MsgItemsRequired}, ParseItems("   \n").Errors)

	res := ParseItems(" , ,,")
	assert.False(t, res.OK)
	assert.Equal(t, []string{MsgItemsEmpty}, res.Errors)
	assert.Empty(t, res.Items)
}

func TestParseItemsTokenErrors(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"A1", "Invalid item format: 'A1'. Use 'SKU:Quantity'."},
		{"A:1:2", "Invalid item format: 'A:1:2'. Use 'SKU:Quantity'."},
		{"A B:1", "Invalid item ID format: 'A B'. Use only letters, numbers, hyphens and underscores."},
		{":5", "Invalid item ID format: ''. Use only letters, numbers, hyphens and underscores."},
		{strings.Repeat("S", 21) + ":1", "Invalid item ID format: '" + strings.Repeat("S", 21) + "'. Use only letters, numbers, hyphens and underscores."},
		{"A:0", "Quantity for 'A' must be a positive number."},
		{"A:-3", "Quantity for 'A' must be a positive number."},
		{"A:x", "Quantity 'x' for 'A' is not a valid number."},
		{"A:1.5", "Quantity '1.5' for 'A' is not a valid number."},
		{"A:", "Quantity '' for 'A' is not a valid number."},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			res := ParseItems(tt.raw)
			assert.False(t, res.OK)
			assert.Equal(t, []string{tt.want}, res.Errors)
			assert.Empty(t, res.Items)
		})
	}
}

func TestParseItemsCollectsEveryError(t *testing.T) {
	res := ParseItems("A:0, B, C:2, c:3, D-1_x:7")
	assert.False(t, res.OK)
	assert.Equal(t, []string{
		"Quantity for 'A' must be a positive number.",
		"Invalid item format: 'B'. Use 'SKU:Quantity'.",
		"Duplicate item ID: 'C'.",
	}, res.Errors)
	assert.Equal(t, []models.ItemRecord{
		{ItemID: "C", Quantity: 2},
		{ItemID: "D-1_X", Quantity: 7},
	}, res.Items)
}

func TestParseItemsSeenBeforeQuantityCheck(t *testing.T) {
	res := ParseItems("A:x, a:1")
	assert.Equal(t, []string{
		"Quantity 'x' for 'A' is not a valid number.",
		"Duplicate item ID: 'A'.",
	}, res.Errors)
	assert.Empty(t, res.Items)
}

func TestParseItemsKeepsOrder(t *testing.T) {
	res := ParseItems("item002:5, item001:10, x9:+3")
	require.True(t, res.OK, res.Errors)
	assert.Equal(t, []models.ItemRecord{
		{ItemID: "ITEM002", Quantity: 5},
		{ItemID: "ITEM001", Quantity: 10},
		{ItemID: "X9", Quantity: 3},
	}, res.Items)
}
