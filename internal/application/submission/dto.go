package submission

import (
	"encoding/json"

	"github.com/interiors/backend/internal/domain/submission"
)

// ClassifyRequest carries a raw submission. FormData may be a JSON object or
// a JSON string holding an encoded object.
type ClassifyRequest struct {
	FormData json.RawMessage `json:"form_data" binding:"required"`
}

// ClassifyResponse reports the resolved kind and the rule that decided it
type ClassifyResponse struct {
	Kind          string `json:"kind"`
	Title         string `json:"title"`
	Rule          string `json:"rule"`
	Discriminator string `json:"discriminator,omitempty"`
}

// RenderRequest asks for the display sections of a submission
type RenderRequest struct {
	FormData json.RawMessage `json:"form_data" binding:"required"`
	CanEdit  bool            `json:"can_edit"`
	// Kind overrides classification when set
	Kind string `json:"kind" binding:"omitempty,oneof=kitchen bedroom remedial financialDocument genericForm"`
}

// RenderResponse is the ordered, formatted view of a submission
type RenderResponse struct {
	Kind     string            `json:"kind"`
	Title    string            `json:"title"`
	Sections []SectionResponse `json:"sections"`
}

// SectionResponse is one display section
type SectionResponse struct {
	Title      string          `json:"title"`
	Kind       string          `json:"kind,omitempty"`
	ResetTag   string          `json:"reset_tag,omitempty"`
	OrderTitle string          `json:"order_title,omitempty"`
	Actions    []string        `json:"actions"`
	Fields     []FieldResponse `json:"fields"`
}

// FieldResponse is one formatted field inside a section
type FieldResponse struct {
	Name      string                    `json:"name"`
	Label     string                    `json:"label"`
	ValueKind string                    `json:"value_kind"`
	Value     submission.FormattedValue `json:"value"`
}

// ExtractMaterialsRequest asks for the material line items of one section
type ExtractMaterialsRequest struct {
	FormData     json.RawMessage `json:"form_data" binding:"required"`
	SectionTitle string          `json:"section_title" binding:"required"`
}

// ExtractMaterialsResponse lists the extracted items. Supported is false when
// the section has no extraction rule; Items is then empty.
type ExtractMaterialsResponse struct {
	SectionTitle string   `json:"section_title"`
	Supported    bool     `json:"supported"`
	Items        []string `json:"items"`
}

// CreateMaterialOrderRequest drafts a material order. When Items is empty the
// items are extracted from FormData for SectionTitle. RemoveItems holds
// zero-based positions, in the item list before any removal, of lines the
// user dropped from the order.
type CreateMaterialOrderRequest struct {
	FormData             json.RawMessage `json:"form_data"`
	SectionTitle         string          `json:"section_title" binding:"required"`
	Items                []string        `json:"items" binding:"omitempty,max=200"`
	RemoveItems          []int           `json:"remove_items" binding:"omitempty,dive,min=0"`
	SupplierName         string          `json:"supplier_name" binding:"max=200"`
	EstimatedCost        string          `json:"estimated_cost" binding:"max=50"`
	OrderDate            string          `json:"order_date" binding:"omitempty,datetime=2006-01-02"`
	ExpectedDeliveryDate string          `json:"expected_delivery_date" binding:"omitempty,datetime=2006-01-02"`
	Notes                string          `json:"notes" binding:"max=2000"`
}

// MaterialOrderResponse is the procurement payload
type MaterialOrderResponse struct {
	CustomerID           *string  `json:"customer_id"`
	MaterialDescription  string   `json:"material_description"`
	SupplierName         *string  `json:"supplier_name"`
	EstimatedCost        *float64 `json:"estimated_cost"`
	OrderDate            string   `json:"order_date"`
	ExpectedDeliveryDate *string  `json:"expected_delivery_date"`
	Notes                *string  `json:"notes"`
	Status               string   `json:"status"`
	Items                []string `json:"items"`
}

// MarkNotApplicableRequest asks for the Mark N/A patch of a section. When
// FormData is present the patch is also merged into it.
type MarkNotApplicableRequest struct {
	SectionTag string          `json:"section_tag" binding:"required"`
	FormData   json.RawMessage `json:"form_data"`
}

// MarkNotApplicableResponse carries the patch. Known is false for tags with no
// reset rule, in which case Patch is empty.
type MarkNotApplicableResponse struct {
	SectionTag string         `json:"section_tag"`
	Known      bool           `json:"known"`
	Fields     []string       `json:"fields"`
	Patch      map[string]any `json:"patch"`
	Merged     map[string]any `json:"merged,omitempty"`
}

func toRenderResponse(r submission.Rendering) *RenderResponse {
	sections := make([]SectionResponse, len(r.Sections))
	for i, s := range r.Sections {
		sections[i] = toSectionResponse(s)
	}
	return &RenderResponse{
		Kind:     string(r.Kind),
		Title:    r.Title,
		Sections: sections,
	}
}

func toSectionResponse(s submission.Section) SectionResponse {
	actions := make([]string, len(s.Actions))
	for i, a := range s.Actions {
		actions[i] = string(a)
	}
	fields := make([]FieldResponse, len(s.Fields))
	for i, f := range s.Fields {
		fields[i] = FieldResponse{
			Name:      f.Name,
			Label:     f.Label,
			ValueKind: string(f.ValueKind),
			Value:     f.Value,
		}
	}
	return SectionResponse{
		Title:      s.Title,
		Kind:       string(s.Kind),
		ResetTag:   string(s.ResetTag),
		OrderTitle: s.OrderTitle,
		Actions:    actions,
		Fields:     fields,
	}
}

func toMaterialOrderResponse(o submission.MaterialOrder, items []string) *MaterialOrderResponse {
	return &MaterialOrderResponse{
		CustomerID:           o.CustomerID,
		MaterialDescription:  o.MaterialDescription,
		SupplierName:         o.SupplierName,
		EstimatedCost:        o.EstimatedCost,
		OrderDate:            o.OrderDate,
		ExpectedDeliveryDate: o.ExpectedDeliveryDate,
		Notes:                o.Notes,
		Status:               o.Status,
		Items:                items,
	}
}
