package submission

import (
	"fmt"
	"strings"
	"time"

	"github.com/interiors/backend/internal/domain/shared"
	"github.com/interiors/backend/internal/domain/shared/valueobject"
)

// StandardAppliances labels the fixed appliance slots of a kitchen checklist
var StandardAppliances = []string{
	"Oven",
	"Microwave",
	"Washing Machine",
	"Dryer",
	"HOB",
	"Extractor",
	"INTG Dishwasher",
}

const notAvailable = "N/A"

type extractionRule func(raw RawSubmission) []string

var extractionRules = map[string]extractionRule{
	SectionMaterialSpecifications: extractMaterialSpecs,
	SectionHardwareSpecifications: extractHardware,
	SectionWorktopSpecifications:  extractWorktop,
	SectionAppliances:             extractAppliances,
	SectionBedroomFurniture:       extractBedroomFurniture,
	SectionLighting:               extractLighting,
	SectionAccessories:            extractAccessories,
}

// HasExtractionRule reports whether materials can be ordered from a section
func HasExtractionRule(sectionTitle string) bool {
	_, ok := extractionRules[sectionTitle]
	return ok
}

// ExtractMaterials returns the material line items of a section. Unknown
// titles yield an empty list. Items are trimmed and blank items dropped.
func ExtractMaterials(sectionTitle string, raw RawSubmission) []string {
	rule, ok := extractionRules[sectionTitle]
	if !ok {
		return []string{}
	}
	out := []string{}
	for _, item := range rule(raw) {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// RemoveLineItem returns a copy of items without the entry at index i.
// An out of range index returns an unchanged copy.
func RemoveLineItem(items []string, i int) []string {
	out := make([]string, 0, len(items))
	for j, item := range items {
		if j != i {
			out = append(out, item)
		}
	}
	return out
}

func valueOf(raw RawSubmission, name string) string {
	return strings.TrimSpace(raw.String(name))
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// joinNonEmpty joins the non-blank parts with sep
func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func labelled(items []string, raw RawSubmission, label, name string) []string {
	if v := valueOf(raw, name); v != "" {
		items = append(items, label+": "+v)
	}
	return items
}

func extractMaterialSpecs(raw RawSubmission) []string {
	var items []string
	items = labelled(items, raw, "Door Style", "door_style")
	items = labelled(items, raw, "Door Color", "door_color")
	items = labelled(items, raw, "Door Manufacturer", "door_manufacturer")
	items = labelled(items, raw, "Door Name", "door_name")
	items = labelled(items, raw, "Glazing Material", "glazing_material")
	items = labelled(items, raw, "Panel Color", "end_panel_color")
	items = labelled(items, raw, "Plinth/Filler Color", "plinth_filler_color")
	items = labelled(items, raw, "Cabinet Color", "cabinet_color")
	items = labelled(items, raw, "Worktop Color", "worktop_material_color")

	for i, door := range raw.Objects("additional_doors") {
		style := strings.TrimSpace(mapText(door, "door_style"))
		color := strings.TrimSpace(mapText(door, "door_color"))
		qty := strings.TrimSpace(mapText(door, "quantity"))
		if style == "" && color == "" && qty == "" {
			continue
		}
		items = append(items, fmt.Sprintf("Additional Door %d: %s - %s (Qty: %s)",
			i+1, orDefault(style, notAvailable), orDefault(color, notAvailable), orDefault(qty, notAvailable)))
	}
	return items
}

func extractHardware(raw RawSubmission) []string {
	var items []string
	if code := valueOf(raw, "handles_code"); code != "" {
		items = append(items, fmt.Sprintf("Handle Code: %s (Qty: %s, Size: %s)",
			code,
			orDefault(valueOf(raw, "handles_quantity"), notAvailable),
			orDefault(valueOf(raw, "handles_size"), notAvailable)))
	}
	items = labelled(items, raw, "Accessories", "accessories")
	items = labelled(items, raw, "Lighting", "lighting_spec")
	if color := valueOf(raw, "under_wall_unit_lights_color"); color != "" {
		items = append(items, "Under Wall Unit Lights: "+joinNonEmpty(" - ", color, valueOf(raw, "under_wall_unit_lights_profile")))
	}
	items = labelled(items, raw, "Under Worktop Lights", "under_worktop_lights_color")
	return items
}

func extractWorktop(raw RawSubmission) []string {
	var items []string
	items = labelled(items, raw, "Worktop Material", "worktop_material_type")
	items = labelled(items, raw, "Worktop Color", "worktop_material_color")
	items = labelled(items, raw, "Worktop Size", "worktop_size")
	for _, feature := range raw.Strings("worktop_features") {
		items = append(items, "Worktop Feature: "+strings.TrimSpace(feature))
	}
	items = labelled(items, raw, "Other Details", "worktop_other_details")
	return items
}

func extractAppliances(raw RawSubmission) []string {
	var items []string
	for i, app := range raw.Objects("appliances") {
		makeName := strings.TrimSpace(mapText(app, "make"))
		model := strings.TrimSpace(mapText(app, "model"))
		if makeName == "" && model == "" {
			continue
		}
		name := fmt.Sprintf("Appliance %d", i+1)
		if i < len(StandardAppliances) {
			name = StandardAppliances[i]
		}
		items = append(items, name+": "+joinNonEmpty(" ", makeName, model))
	}

	for _, integ := range []struct{ label, prefix string }{
		{"INTG Fridge", "integ_fridge"},
		{"INTG Freezer", "integ_freezer"},
	} {
		makeName := valueOf(raw, integ.prefix+"_make")
		model := valueOf(raw, integ.prefix+"_model")
		if makeName == "" && model == "" {
			continue
		}
		items = append(items, fmt.Sprintf("%s: %s (Qty: %s)",
			integ.label, joinNonEmpty(" ", makeName, model), orDefault(valueOf(raw, integ.prefix+"_qty"), "1")))
	}

	if sink := valueOf(raw, "sink_details"); sink != "" {
		items = append(items, fmt.Sprintf("Sink: %s (Model: %s)", sink, orDefault(valueOf(raw, "sink_model"), notAvailable)))
	}
	if tap := valueOf(raw, "tap_details"); tap != "" {
		items = append(items, fmt.Sprintf("Tap: %s (Model: %s)", tap, orDefault(valueOf(raw, "tap_model"), notAvailable)))
	}
	return items
}

func extractBedroomFurniture(raw RawSubmission) []string {
	var items []string
	if t := valueOf(raw, "bedside_cabinets_type"); t != "" {
		items = append(items, fmt.Sprintf("Bedside Cabinets: %s (Qty: %s)", t, orDefault(valueOf(raw, "bedside_cabinets_qty"), notAvailable)))
	}
	if strings.EqualFold(valueOf(raw, "dresser_desk"), "yes") {
		items = append(items, "Dresser/Desk: "+orDefault(valueOf(raw, "dresser_desk_details"), "Yes"))
	}
	if strings.EqualFold(valueOf(raw, "internal_mirror"), "yes") {
		items = append(items, "Internal Mirror: "+orDefault(valueOf(raw, "internal_mirror_details"), "Yes"))
	}
	if t := valueOf(raw, "mirror_type"); t != "" {
		items = append(items, fmt.Sprintf("Mirror: %s (Qty: %s)", t, orDefault(valueOf(raw, "mirror_qty"), notAvailable)))
	}
	return items
}

func extractLighting(raw RawSubmission) []string {
	var items []string
	if t := valueOf(raw, "soffit_lights_type"); t != "" {
		items = append(items, "Soffit Lights: "+joinNonEmpty(" - ", t, valueOf(raw, "soffit_lights_color")))
	}
	if t := valueOf(raw, "gable_lights_type"); t != "" {
		colors := joinNonEmpty(" / ", valueOf(raw, "gable_lights_main_color"), valueOf(raw, "gable_lights_profile_color"))
		items = append(items, "Gable Lights: "+joinNonEmpty(" - ", t, colors))
	}
	return items
}

func extractAccessories(raw RawSubmission) []string {
	var items []string
	items = labelled(items, raw, "Accessories", "other_accessories")
	for _, option := range raw.Strings("floor_protection") {
		items = append(items, "Floor Protection: "+strings.TrimSpace(option))
	}
	return items
}

// OrderStatusOrdered is the status of a freshly drafted material order
const OrderStatusOrdered = "ordered"

// MaterialOrderInput is what a user confirms in the order dialog
type MaterialOrderInput struct {
	SectionTitle         string
	Items                []string
	SupplierName         string
	EstimatedCost        string
	OrderDate            string
	ExpectedDeliveryDate string
	Notes                string
}

// MaterialOrder is the procurement payload handed to the materials backend
type MaterialOrder struct {
	CustomerID           *string  `json:"customer_id"`
	MaterialDescription  string   `json:"material_description"`
	SupplierName         *string  `json:"supplier_name"`
	EstimatedCost        *float64 `json:"estimated_cost"`
	OrderDate            string   `json:"order_date"`
	ExpectedDeliveryDate *string  `json:"expected_delivery_date"`
	Notes                *string  `json:"notes"`
	Status               string   `json:"status"`
}

// BuildMaterialOrder drafts a material order from confirmed line items.
// It returns shared.ErrNoMaterials when no non-blank item remains.
func BuildMaterialOrder(raw RawSubmission, in MaterialOrderInput, now time.Time) (MaterialOrder, error) {
	var items []string
	for _, item := range in.Items {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return MaterialOrder{}, shared.ErrNoMaterials
	}

	order := MaterialOrder{
		CustomerID:           optional(raw.String("customer_id")),
		MaterialDescription:  strings.TrimSpace(in.SectionTitle) + "\n" + strings.Join(items, "\n"),
		SupplierName:         optional(in.SupplierName),
		OrderDate:            strings.TrimSpace(in.OrderDate),
		ExpectedDeliveryDate: optional(in.ExpectedDeliveryDate),
		Notes:                optional(in.Notes),
		Status:               OrderStatusOrdered,
	}
	if order.OrderDate == "" {
		order.OrderDate = now.Format("2006-01-02")
	}
	if cost, err := valueobject.ParseLeading(in.EstimatedCost, valueobject.DefaultCurrency); err == nil {
		f := cost.Float64()
		order.EstimatedCost = &f
	}
	return order, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
