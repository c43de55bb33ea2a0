package submission

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_Scalars(t *testing.T) {
	tests := []struct {
		name  string
		raw   any
		kind  ValueKind
		field string
		want  string
	}{
		{name: "nil", raw: nil, kind: ValueKindPlain, want: "—"},
		{name: "whitespace", raw: "   ", kind: ValueKindPlain, want: "—"},
		{name: "empty array", raw: []any{}, kind: ValueKindArray, want: "—"},
		{name: "empty object", raw: map[string]any{}, kind: ValueKindObject, want: "—"},
		{name: "uuid as plain", raw: "3f2b8c1e-9a4d-4c7e-8f10-2b3c4d5e6f70", kind: ValueKindPlain, want: "—"},
		{name: "uuid as currency", raw: "3f2b8c1e-9a4d-4c7e-8f10-2b3c4d5e6f70", kind: ValueKindCurrency, want: "—"},
		{name: "uuid as date", raw: "3f2b8c1e-9a4d-4c7e-8f10-2b3c4d5e6f70", kind: ValueKindDate, want: "—"},
		{name: "iso date", raw: "2025-03-05", kind: ValueKindDate, want: "5 March 2025"},
		{name: "rfc3339 date", raw: "2025-03-05T10:30:00Z", kind: ValueKindDate, want: "5 March 2025"},
		{name: "uk slash date", raw: "05/03/2025", kind: ValueKindDate, want: "5 March 2025"},
		{name: "unparseable date", raw: "next week", kind: ValueKindDate, want: "next week"},
		{name: "iso date in plain field", raw: "2025-12-01", kind: ValueKindPlain, want: "1 December 2025"},
		{name: "currency rounds half away from zero", raw: json.Number("12.005"), kind: ValueKindCurrency, want: "£12.01"},
		{name: "currency float", raw: 450.0, kind: ValueKindCurrency, want: "£450.00"},
		{name: "currency text with code", raw: "12.5 GBP", kind: ValueKindCurrency, want: "£12.50"},
		{name: "currency text with symbol", raw: "£1,200", kind: ValueKindCurrency, want: "£1200.00"},
		{name: "currency not a number", raw: "to be confirmed", kind: ValueKindCurrency, want: "To Be Confirmed"},
		{name: "hyphen token", raw: "cool-white", kind: ValueKindPlain, want: "Cool White"},
		{name: "underscore token", raw: "warm_white_led", kind: ValueKindPlain, want: "Warm White Led"},
		{name: "plain text", raw: "matt finish", kind: ValueKindPlain, want: "Matt finish"},
		{name: "plain keeps inner case", raw: "oak veneer, MDF core", kind: ValueKindPlain, want: "Oak veneer, MDF core"},
		{name: "number", raw: json.Number("12.50"), kind: ValueKindPlain, want: "12.5"},
		{name: "integer", raw: 3, kind: ValueKindPlain, want: "3"},
		{name: "true", raw: true, kind: ValueKindPlain, want: "true"},
		{name: "false", raw: false, kind: ValueKindPlain, want: "false"},
		{name: "identifier text", raw: "CUST-0042", kind: ValueKindIdentifier, want: "CUST-0042"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.raw, tt.kind, tt.field)
			assert.Equal(t, FormattedText, got.Type)
			assert.Equal(t, tt.want, got.Text)
		})
	}
}

func TestFormat_UUIDSuppressedForEveryKind(t *testing.T) {
	id := uuid.NewString()
	for _, kind := range []ValueKind{
		ValueKindPlain, ValueKindCurrency, ValueKindDate, ValueKindIdentifier,
		ValueKindArray, ValueKindObject, ValueKindImage,
	} {
		assert.Equal(t, "—", Format(id, kind, "customer_id").Text, "kind %s", kind)
	}
}

func TestFormat_List(t *testing.T) {
	got := Format([]any{"carpet-protection", "", nil, "floor tile protection"}, ValueKindArray, "floor_protection")

	assert.Equal(t, FormattedList, got.Type)
	assert.Equal(t, []string{"Carpet Protection", "Floor tile protection"}, got.Items)
	assert.Equal(t, "Carpet Protection, Floor tile protection", got.Text)
}

func TestFormat_ListOfObjects(t *testing.T) {
	got := Format([]any{
		map[string]any{"make": "Bosch", "model": "HBS534", "order_date": "2025-01-10"},
		map[string]any{"make": "", "model": ""},
	}, ValueKindArray, "appliances")

	require.Equal(t, FormattedList, got.Type)
	assert.Equal(t, []string{"Make: Bosch, Model: HBS534, Order Date: 10 January 2025"}, got.Items)
}

func TestFormat_FlatObject(t *testing.T) {
	got := Format(map[string]any{
		"qty":      json.Number("2"),
		"item":     "door hinge",
		"colour":   "",
		"features": []any{"soft-close"},
	}, ValueKindObject, "item")

	require.Equal(t, FormattedPairs, got.Type)
	assert.Equal(t, []Pair{
		{Key: "colour", Label: "Colour", Value: "—"},
		{Key: "features", Label: "Features", Value: "Soft Close"},
		{Key: "item", Label: "Item", Value: "Door hinge"},
		{Key: "qty", Label: "Qty", Value: "2"},
	}, got.Pairs)
	assert.Equal(t, "Colour: —, Features: Soft Close, Item: Door hinge, Qty: 2", got.Text)
}

func TestFormat_NestedObjectIsStructured(t *testing.T) {
	raw := map[string]any{
		"dimensions": map[string]any{"width": json.Number("600")},
		"note":       "x",
	}
	got := Format(raw, ValueKindObject, "spec")

	require.Equal(t, FormattedStructured, got.Type)
	var back map[string]any
	require.NoError(t, json.Unmarshal([]byte(got.Text), &back))
	assert.Equal(t, "x", back["note"])
	assert.Contains(t, got.Text, "\n  \"dimensions\"")
}

func TestFormat_SignatureImage(t *testing.T) {
	data := "data:image/png;base64,iVBORw0KGgo="
	got := Format(data, ValueKindImage, "signature_data")

	assert.Equal(t, FormattedImage, got.Type)
	assert.Equal(t, SignatureImageText, got.Text)
	assert.Equal(t, data, got.Source)
}

func TestFormat_Idempotent(t *testing.T) {
	inputs := []struct {
		raw  any
		kind ValueKind
	}{
		{raw: "cool-white", kind: ValueKindPlain},
		{raw: "matt finish", kind: ValueKindPlain},
		{raw: "2025-03-05", kind: ValueKindDate},
		{raw: "2025-03-05", kind: ValueKindPlain},
		{raw: json.Number("12.005"), kind: ValueKindCurrency},
		{raw: "12.5 GBP", kind: ValueKindCurrency},
		{raw: "not sure", kind: ValueKindCurrency},
		{raw: json.Number("7"), kind: ValueKindPlain},
		{raw: nil, kind: ValueKindPlain},
		{raw: "HC-12", kind: ValueKindPlain},
	}
	for _, in := range inputs {
		once := Format(in.raw, in.kind, "").Text
		twice := Format(once, in.kind, "").Text
		assert.Equal(t, once, twice, "input %v (%s)", in.raw, in.kind)
	}
}

func TestFormatter_Options(t *testing.T) {
	f := NewFormatter(FormatterOptions{CurrencySymbol: "€", Placeholder: "n/a"})

	assert.Equal(t, "€10.00", f.Format(json.Number("10"), ValueKindCurrency, "total_amount").Text)
	assert.Equal(t, "n/a", f.Format("", ValueKindPlain, "door_style").Text)
	assert.Equal(t, "n/a", f.Format([]any{""}, ValueKindArray, "floor_protection").Text)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2 January 2006", FormatDate("January 2, 2006"))
	assert.Equal(t, "2 January 2006", FormatDate("2 January 2006"))
	assert.Equal(t, "31/02/2025", FormatDate("31/02/2025"))
}

func TestIsUUID(t *testing.T) {
	assert.True(t, IsUUID(uuid.NewString()))
	assert.False(t, IsUUID("3f2b8c1e9a4d4c7e8f102b3c4d5e6f70"))
	assert.False(t, IsUUID("HC-12"))
}
