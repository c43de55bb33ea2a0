package submission

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ValueKind tells the formatter how a field's raw value should be rendered
type ValueKind string

const (
	ValueKindPlain      ValueKind = "plain"
	ValueKindCurrency   ValueKind = "currency"
	ValueKindDate       ValueKind = "date"
	ValueKindIdentifier ValueKind = "identifier"
	ValueKindArray      ValueKind = "array"
	ValueKindObject     ValueKind = "object"
	ValueKindImage      ValueKind = "image"
)

// IsValid checks if the ValueKind is a valid value
func (v ValueKind) IsValid() bool {
	switch v {
	case ValueKindPlain, ValueKindCurrency, ValueKindDate, ValueKindIdentifier,
		ValueKindArray, ValueKindObject, ValueKindImage:
		return true
	}
	return false
}

// Section titles, in display order
const (
	SectionCustomerInformation    = "Customer Information"
	SectionMaterialSpecifications = "Material Specifications"
	SectionDesignPreferences      = "Design Preferences"
	SectionHardwareSpecifications = "Hardware Specifications"
	SectionWorktopSpecifications  = "Worktop Specifications"
	SectionAppliances             = "Appliances"
	SectionBedroomFurniture       = "Bedroom Furniture"
	SectionLighting               = "Lighting"
	SectionAccessories            = "Accessories"
	SectionRemedialActions        = "Remedial Actions"
	SectionFinancialOverview      = "Financial Overview"
	SectionPaymentDetails         = "Payment Details"
	SectionProjectDetails         = "Project Details"
	SectionTerms                  = "Terms & Information"
	SectionSignature              = "Customer Signature"

	// SectionAdditionalInformation is the catch-all for unclaimed fields
	SectionAdditionalInformation = "Additional Information"
)

// TaxonomyVersion identifies the revision of the static tables below.
// Bump it whenever a field moves between sections.
const TaxonomyVersion = "2026.10"

// FieldDescriptor is a taxonomy entry for a known form field
type FieldDescriptor struct {
	Name      string
	Label     string
	ValueKind ValueKind
	// LabelByKind overrides Label for specific submission kinds
	LabelByKind map[Kind]string
	// Sections maps a submission kind to the named section that owns the
	// field for that kind. Kinds without an entry fall to the catch-all.
	Sections map[Kind]string
}

// LabelFor returns the display label of the field for a submission kind
func (d FieldDescriptor) LabelFor(kind Kind) string {
	if l, ok := d.LabelByKind[kind]; ok {
		return l
	}
	return d.Label
}

// SectionFor returns the named section owning the field for a kind
func (d FieldDescriptor) SectionFor(kind Kind) (string, bool) {
	s, ok := d.Sections[kind]
	return s, ok
}

// SectionDefinition describes a named display section
type SectionDefinition struct {
	Title string
	Kinds []Kind
	// ResetTag is the bulk reset tag covering this section, if any
	ResetTag SectionTag
	// Orderable marks sections that have a material extraction rule
	Orderable bool
	members   []member
}

// AppliesTo reports whether the section is rendered for a kind
func (s SectionDefinition) AppliesTo(kind Kind) bool {
	for _, k := range s.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// KindAgnostic reports whether the section is shared by every kind
func (s SectionDefinition) KindAgnostic() bool {
	return len(s.Kinds) == len(AllKinds())
}

// Members returns the fields of the section for a kind, in display order
func (s SectionDefinition) Members(kind Kind) []string {
	if !s.AppliesTo(kind) {
		return nil
	}
	out := make([]string, 0, len(s.members))
	for _, m := range s.members {
		if m.appliesTo(kind) {
			out = append(out, m.field)
		}
	}
	return out
}

type member struct {
	field string
	kinds []Kind // nil means every kind of the section
}

func (m member) appliesTo(kind Kind) bool {
	if m.kinds == nil {
		return true
	}
	for _, k := range m.kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func all(field string) member { return member{field: field} }

func only(field string, kinds ...Kind) member { return member{field: field, kinds: kinds} }

var (
	checklistKinds = []Kind{KindKitchen, KindBedroom}
	kitchenOnly    = []Kind{KindKitchen}
	bedroomOnly    = []Kind{KindBedroom}
)

// sectionCatalogue lists every named section in display order:
// customer info, design/material, kind specific specification, terms, signature.
var sectionCatalogue = []SectionDefinition{
	{
		Title: SectionCustomerInformation,
		Kinds: AllKinds(),
		members: []member{
			all("customer_name"), all("customerName"),
			all("customer_phone"), all("customerPhone"),
			all("customer_email"), all("customerEmail"),
			all("customer_address"), all("customerAddress"),
			only("room", KindBedroom),
			only("survey_date", checklistKinds...),
			only("appointment_date", checklistKinds...),
			only("installation_date", checklistKinds...),
			only("completion_date", checklistKinds...),
			only("deposit_date", checklistKinds...),
		},
	},
	{
		Title:     SectionMaterialSpecifications,
		Kinds:     checklistKinds,
		ResetTag:  TagMaterialSpecs,
		Orderable: true,
		members: []member{
			all("door_style"), all("door_color"), all("door_manufacturer"), all("door_name"),
			all("glazing_material"), all("end_panel_color"), all("plinth_filler_color"),
			all("cabinet_color"), only("worktop_material_color", KindBedroom), all("additional_doors"),
		},
	},
	{
		Title: SectionDesignPreferences,
		Kinds: []Kind{KindGenericForm},
		members: []member{
			all("door_style"), all("door_colour"), all("worktop_style"), all("worktop_colour"),
			all("handles_style"), all("handles_colour"),
		},
	},
	{
		Title:     SectionHardwareSpecifications,
		Kinds:     checklistKinds,
		ResetTag:  TagHardwareSpecs,
		Orderable: true,
		members: []member{
			all("handles_code"), all("handles_quantity"), all("handles_size"),
			only("accessories", kitchenOnly...), only("lighting_spec", kitchenOnly...),
			only("under_wall_unit_lights_color", kitchenOnly...),
			only("under_wall_unit_lights_profile", kitchenOnly...),
			only("under_worktop_lights_color", kitchenOnly...),
			only("kitchen_accessories", kitchenOnly...),
		},
	},
	{
		Title:     SectionWorktopSpecifications,
		Kinds:     kitchenOnly,
		ResetTag:  TagWorktopSpecs,
		Orderable: true,
		members: []member{
			all("worktop_material_type"), all("worktop_material_color"), all("worktop_size"),
			all("worktop_features"), all("worktop_other_details"),
		},
	},
	{
		Title:     SectionAppliances,
		Kinds:     kitchenOnly,
		ResetTag:  TagAppliances,
		Orderable: true,
		members: []member{
			all("appliances_customer_owned"), all("appliances"),
			all("integ_fridge_qty"), all("integ_fridge_make"), all("integ_fridge_model"), all("integ_fridge_order_date"),
			all("integ_freezer_qty"), all("integ_freezer_make"), all("integ_freezer_model"), all("integ_freezer_order_date"),
			all("other_appliances"), all("sink_tap_customer_owned"),
			all("sink_details"), all("sink_model"), all("tap_details"), all("tap_model"),
		},
	},
	{
		Title:     SectionBedroomFurniture,
		Kinds:     bedroomOnly,
		ResetTag:  TagBedroomFurniture,
		Orderable: true,
		members: []member{
			all("bedside_cabinets_type"), all("bedside_cabinets_qty"),
			all("dresser_desk"), all("dresser_desk_details"),
			all("internal_mirror"), all("internal_mirror_details"),
			all("mirror_type"), all("mirror_qty"),
		},
	},
	{
		Title:     SectionLighting,
		Kinds:     bedroomOnly,
		ResetTag:  TagLighting,
		Orderable: true,
		members: []member{
			all("soffit_lights_type"), all("soffit_lights_color"),
			all("gable_lights_type"), all("gable_lights_main_color"), all("gable_lights_profile_color"),
		},
	},
	{
		Title:     SectionAccessories,
		Kinds:     bedroomOnly,
		ResetTag:  TagAccessories,
		Orderable: true,
		members:   []member{all("other_accessories"), all("floor_protection")},
	},
	{
		Title:   SectionRemedialActions,
		Kinds:   []Kind{KindRemedial},
		members: []member{all("date"), all("fitters"), all("items"), all("floor_protection")},
	},
	{
		Title: SectionFinancialOverview,
		Kinds: []Kind{KindFinancialDocument},
		members: []member{
			all("receipt_type"), all("document_type"),
			all("invoice_number"), all("receipt_number"), all("quotation_number"), all("reference_number"),
			all("document_date"), all("invoice_date"), all("receipt_date"),
			all("subtotal"), all("vat_amount"), all("total_amount"), all("deposit_amount"),
			all("amount_paid"), all("balance_to_pay"), all("due_date"),
		},
	},
	{
		Title: SectionPaymentDetails,
		Kinds: []Kind{KindFinancialDocument},
		members: []member{
			all("payment_method"), all("payment_date"), all("payment_reference"), all("paid_by"),
			all("bank_name"), all("account_name"), all("sort_code"), all("account_number"),
		},
	},
	{
		Title: SectionProjectDetails,
		Kinds: []Kind{KindGenericForm},
		members: []member{
			all("project_name"), all("project_type"), all("budget_range"),
			all("preferred_completion_date"), all("special_requirements"),
		},
	},
	{
		Title:    SectionTerms,
		Kinds:    []Kind{KindKitchen, KindBedroom, KindFinancialDocument, KindGenericForm},
		ResetTag: TagTerms,
		members: []member{
			all("terms_date"), only("gas_electric_info", checklistKinds...),
			only("appliance_promotion_info", kitchenOnly...),
			only("floor_protection", kitchenOnly...),
			all("terms_accepted"), all("terms_text"),
		},
	},
	{
		Title: SectionSignature,
		Kinds: AllKinds(),
		members: []member{
			all("signature_data"), all("customer_signature"), all("signature_date"), all("signed_by"),
		},
	},
}

// fieldTable holds labels and value kinds of every known field
var fieldTable = []FieldDescriptor{
	{Name: "id", Label: "ID", ValueKind: ValueKindIdentifier},
	{Name: "customer_id", Label: "Customer ID", ValueKind: ValueKindIdentifier},
	{Name: "customerId", Label: "Customer ID", ValueKind: ValueKindIdentifier},
	{Name: "project_id", Label: "Project ID", ValueKind: ValueKindIdentifier},
	{Name: "submission_id", Label: "Submission ID", ValueKind: ValueKindIdentifier},
	{Name: "token_used", Label: "Form Token", ValueKind: ValueKindIdentifier},

	{Name: "customer_name", Label: "Customer Name", ValueKind: ValueKindPlain},
	{Name: "customerName", Label: "Customer Name", ValueKind: ValueKindPlain},
	{Name: "customer_phone", Label: "Tel/Mobile Number", ValueKind: ValueKindPlain},
	{Name: "customerPhone", Label: "Tel/Mobile Number", ValueKind: ValueKindPlain},
	{Name: "customer_email", Label: "Email", ValueKind: ValueKindPlain},
	{Name: "customerEmail", Label: "Email", ValueKind: ValueKindPlain},
	{Name: "customer_address", Label: "Address", ValueKind: ValueKindPlain},
	{Name: "customerAddress", Label: "Address", ValueKind: ValueKindPlain},
	{Name: "room", Label: "Room", ValueKind: ValueKindPlain},
	{Name: "survey_date", Label: "Survey Date", ValueKind: ValueKindDate},
	{Name: "appointment_date", Label: "Appointment Date", ValueKind: ValueKindDate},
	{Name: "installation_date", Label: "Installation Date", ValueKind: ValueKindDate},
	{Name: "completion_date", Label: "Completion Date", ValueKind: ValueKindDate},
	{Name: "deposit_date", Label: "Deposit Date", ValueKind: ValueKindDate},

	{Name: "door_style", Label: "Door Style", ValueKind: ValueKindPlain},
	{Name: "door_color", Label: "Door Color", ValueKind: ValueKindPlain},
	{Name: "door_manufacturer", Label: "Door Manufacturer", ValueKind: ValueKindPlain},
	{Name: "door_name", Label: "Door Name", ValueKind: ValueKindPlain},
	{Name: "glazing_material", Label: "Glazing Material", ValueKind: ValueKindPlain},
	{Name: "end_panel_color", Label: "Panel Color", ValueKind: ValueKindPlain},
	{Name: "plinth_filler_color", Label: "Plinth/Filler Color", ValueKind: ValueKindPlain},
	{Name: "cabinet_color", Label: "Cabinet Color", ValueKind: ValueKindPlain},
	{Name: "additional_doors", Label: "Door Details (Additional Doors)", ValueKind: ValueKindArray},

	{Name: "door_colour", Label: "Door Colour", ValueKind: ValueKindPlain},
	{Name: "worktop_style", Label: "Worktop Style", ValueKind: ValueKindPlain},
	{Name: "worktop_colour", Label: "Worktop Colour", ValueKind: ValueKindPlain},
	{Name: "handles_style", Label: "Handles Style", ValueKind: ValueKindPlain},
	{Name: "handles_colour", Label: "Handles Colour", ValueKind: ValueKindPlain},

	{Name: "handles_code", Label: "Handle Code", ValueKind: ValueKindPlain},
	{Name: "handles_quantity", Label: "Handle Quantity", ValueKind: ValueKindPlain},
	{Name: "handles_size", Label: "Handle Size", ValueKind: ValueKindPlain},
	{Name: "accessories", Label: "Accessories (e.g., Pullouts)", ValueKind: ValueKindPlain},
	{Name: "lighting_spec", Label: "Lighting Specification", ValueKind: ValueKindPlain},
	{Name: "under_wall_unit_lights_color", Label: "Under Wall Unit Lights Color", ValueKind: ValueKindPlain},
	{Name: "under_wall_unit_lights_profile", Label: "Under Wall Unit Lights Profile", ValueKind: ValueKindPlain},
	{Name: "under_worktop_lights_color", Label: "Under Worktop Lights", ValueKind: ValueKindPlain},
	{Name: "kitchen_accessories", Label: "Kitchen Accessories", ValueKind: ValueKindPlain},

	{Name: "worktop_material_type", Label: "Worktop Material Type", ValueKind: ValueKindPlain},
	{
		Name: "worktop_material_color", Label: "Worktop Color", ValueKind: ValueKindPlain,
		LabelByKind: map[Kind]string{KindKitchen: "Worktop Material Color"},
	},
	{Name: "worktop_size", Label: "Worktop Size/Thickness", ValueKind: ValueKindPlain},
	{Name: "worktop_features", Label: "Worktop Further Info", ValueKind: ValueKindArray},
	{Name: "worktop_other_details", Label: "Worktop Other Details", ValueKind: ValueKindPlain},

	{Name: "appliances_customer_owned", Label: "Appliances Customer Owned", ValueKind: ValueKindPlain},
	{Name: "appliances", Label: "Appliances", ValueKind: ValueKindArray},
	{Name: "integ_fridge_qty", Label: "INTG Fridge Quantity", ValueKind: ValueKindPlain},
	{Name: "integ_fridge_make", Label: "INTG Fridge Make", ValueKind: ValueKindPlain},
	{Name: "integ_fridge_model", Label: "INTG Fridge Model", ValueKind: ValueKindPlain},
	{Name: "integ_fridge_order_date", Label: "INTG Fridge Order Date", ValueKind: ValueKindDate},
	{Name: "integ_freezer_qty", Label: "INTG Freezer Quantity", ValueKind: ValueKindPlain},
	{Name: "integ_freezer_make", Label: "INTG Freezer Make", ValueKind: ValueKindPlain},
	{Name: "integ_freezer_model", Label: "INTG Freezer Model", ValueKind: ValueKindPlain},
	{Name: "integ_freezer_order_date", Label: "INTG Freezer Order Date", ValueKind: ValueKindDate},
	{Name: "other_appliances", Label: "Other / Misc Appliances", ValueKind: ValueKindPlain},
	{Name: "sink_tap_customer_owned", Label: "Sink & Tap Customer Owned", ValueKind: ValueKindPlain},
	{Name: "sink_details", Label: "Sink Details", ValueKind: ValueKindPlain},
	{Name: "sink_model", Label: "Sink Model", ValueKind: ValueKindPlain},
	{Name: "tap_details", Label: "Tap Details", ValueKind: ValueKindPlain},
	{Name: "tap_model", Label: "Tap Model", ValueKind: ValueKindPlain},

	{Name: "bedside_cabinets_type", Label: "Bedside Cabinets", ValueKind: ValueKindPlain},
	{Name: "bedside_cabinets_qty", Label: "Bedside Cabinets Quantity", ValueKind: ValueKindPlain},
	{Name: "dresser_desk", Label: "Dresser/Desk", ValueKind: ValueKindPlain},
	{Name: "dresser_desk_details", Label: "Dresser/Desk Details", ValueKind: ValueKindPlain},
	{Name: "internal_mirror", Label: "Internal Mirror", ValueKind: ValueKindPlain},
	{Name: "internal_mirror_details", Label: "Internal Mirror Details", ValueKind: ValueKindPlain},
	{Name: "mirror_type", Label: "Mirror", ValueKind: ValueKindPlain},
	{Name: "mirror_qty", Label: "Mirror Quantity", ValueKind: ValueKindPlain},

	{Name: "soffit_lights_type", Label: "Soffit Lights", ValueKind: ValueKindPlain},
	{Name: "soffit_lights_color", Label: "Soffit Lights Color", ValueKind: ValueKindPlain},
	{Name: "gable_lights_type", Label: "Gable Lights", ValueKind: ValueKindPlain},
	{Name: "gable_lights_main_color", Label: "Gable Lights Main Color", ValueKind: ValueKindPlain},
	{Name: "gable_lights_profile_color", Label: "Gable Lights Profile Color", ValueKind: ValueKindPlain},

	{Name: "other_accessories", Label: "Other/Misc/Accessories", ValueKind: ValueKindPlain},
	{Name: "floor_protection", Label: "Floor Protection", ValueKind: ValueKindArray},

	{Name: "date", Label: "Date", ValueKind: ValueKindDate},
	{Name: "fitters", Label: "Fitters", ValueKind: ValueKindPlain},
	{Name: "items", Label: "Remedial Items", ValueKind: ValueKindArray},

	{Name: "receipt_type", Label: "Receipt Type", ValueKind: ValueKindPlain},
	{Name: "document_type", Label: "Document Type", ValueKind: ValueKindPlain},
	{Name: "invoice_number", Label: "Invoice Number", ValueKind: ValueKindPlain},
	{Name: "receipt_number", Label: "Receipt Number", ValueKind: ValueKindPlain},
	{Name: "quotation_number", Label: "Quotation Number", ValueKind: ValueKindPlain},
	{Name: "reference_number", Label: "Reference Number", ValueKind: ValueKindPlain},
	{Name: "document_date", Label: "Document Date", ValueKind: ValueKindDate},
	{Name: "invoice_date", Label: "Invoice Date", ValueKind: ValueKindDate},
	{Name: "receipt_date", Label: "Receipt Date", ValueKind: ValueKindDate},
	{Name: "subtotal", Label: "Subtotal", ValueKind: ValueKindCurrency},
	{Name: "vat_amount", Label: "VAT", ValueKind: ValueKindCurrency},
	{Name: "total_amount", Label: "Total Amount", ValueKind: ValueKindCurrency},
	{Name: "deposit_amount", Label: "Deposit Amount", ValueKind: ValueKindCurrency},
	{Name: "amount_paid", Label: "Paid Amount", ValueKind: ValueKindCurrency},
	{Name: "balance_to_pay", Label: "Balance To Pay", ValueKind: ValueKindCurrency},
	{Name: "due_date", Label: "Due Date", ValueKind: ValueKindDate},
	{Name: "payment_method", Label: "Payment Method", ValueKind: ValueKindPlain},
	{Name: "payment_date", Label: "Payment Date", ValueKind: ValueKindDate},
	{Name: "payment_reference", Label: "Payment Reference", ValueKind: ValueKindPlain},
	{Name: "paid_by", Label: "Paid By", ValueKind: ValueKindPlain},
	{Name: "bank_name", Label: "Bank Name", ValueKind: ValueKindPlain},
	{Name: "account_name", Label: "Account Name", ValueKind: ValueKindPlain},
	{Name: "sort_code", Label: "Sort Code", ValueKind: ValueKindPlain},
	{Name: "account_number", Label: "Account Number", ValueKind: ValueKindPlain},

	{Name: "project_name", Label: "Project Name", ValueKind: ValueKindPlain},
	{Name: "project_type", Label: "Project Type", ValueKind: ValueKindPlain},
	{Name: "budget_range", Label: "Budget Range", ValueKind: ValueKindPlain},
	{Name: "preferred_completion_date", Label: "Preferred Completion Date", ValueKind: ValueKindDate},
	{Name: "special_requirements", Label: "Special Requirements", ValueKind: ValueKindPlain},

	{Name: "terms_date", Label: "Date Terms and Conditions Given", ValueKind: ValueKindDate},
	{
		Name: "gas_electric_info", Label: "Gas and Electric Installation Terms Given", ValueKind: ValueKindPlain,
		LabelByKind: map[Kind]string{KindKitchen: "Gas and Electric Installation Information Given"},
	},
	{Name: "appliance_promotion_info", Label: "Appliance Promotion Information Given", ValueKind: ValueKindPlain},
	{Name: "terms_accepted", Label: "Terms Accepted", ValueKind: ValueKindPlain},
	{Name: "terms_text", Label: "Terms", ValueKind: ValueKindPlain},

	{Name: "signature_data", Label: "Signature", ValueKind: ValueKindImage},
	{Name: "customer_signature", Label: "Customer Signature", ValueKind: ValueKindImage},
	{Name: "signature_date", Label: "Signature Date", ValueKind: ValueKindDate},
	{Name: "signed_by", Label: "Signed By", ValueKind: ValueKindPlain},
}

// discriminatorFields are internal kind markers never shown to users
var discriminatorFields = map[string]bool{
	"form_type":      true,
	"formType":       true,
	"checklistType":  true,
	"checklist_type": true,
	"type":           true,
}

// fieldIndex is built once from fieldTable and sectionCatalogue and is
// read-only afterwards
var fieldIndex = buildFieldIndex()

func buildFieldIndex() map[string]FieldDescriptor {
	index := make(map[string]FieldDescriptor, len(fieldTable))
	for _, d := range fieldTable {
		d.Sections = make(map[Kind]string)
		index[d.Name] = d
	}
	for _, sec := range sectionCatalogue {
		for _, kind := range sec.Kinds {
			for _, name := range sec.Members(kind) {
				d, ok := index[name]
				if !ok {
					d = inferDescriptor(name)
					d.Sections = make(map[Kind]string)
				}
				if _, claimed := d.Sections[kind]; !claimed {
					d.Sections[kind] = sec.Title
				}
				index[name] = d
			}
		}
	}
	return index
}

// Sections returns the catalogue of named sections in display order
func Sections() []SectionDefinition {
	out := make([]SectionDefinition, len(sectionCatalogue))
	copy(out, sectionCatalogue)
	return out
}

// SectionsFor returns the named sections applicable to a kind, in order
func SectionsFor(kind Kind) []SectionDefinition {
	var out []SectionDefinition
	for _, s := range sectionCatalogue {
		if s.AppliesTo(kind) {
			out = append(out, s)
		}
	}
	return out
}

// LookupSection finds a section definition by title
func LookupSection(title string) (SectionDefinition, bool) {
	for _, s := range sectionCatalogue {
		if s.Title == title {
			return s, true
		}
	}
	return SectionDefinition{}, false
}

// Describe returns the descriptor of a field. Unknown fields get a
// descriptor inferred from their name with no section mapping.
func Describe(name string) FieldDescriptor {
	if d, ok := fieldIndex[name]; ok {
		return d
	}
	return inferDescriptor(name)
}

// IsKnownField reports whether the field is part of the static taxonomy
func IsKnownField(name string) bool {
	_, ok := fieldIndex[name]
	return ok
}

// IsDiscriminator reports whether the field is an internal kind marker
func IsDiscriminator(name string) bool {
	return discriminatorFields[name]
}

// IsExcluded reports whether a field never appears in any section
func IsExcluded(name string) bool {
	return IsDiscriminator(name) || Describe(name).ValueKind == ValueKindIdentifier
}

func inferDescriptor(name string) FieldDescriptor {
	return FieldDescriptor{
		Name:      name,
		Label:     HumanizeFieldName(name),
		ValueKind: InferValueKind(name),
	}
}

var currencyWords = map[string]bool{
	"amount": true, "price": true, "cost": true, "total": true, "subtotal": true,
	"balance": true, "paid": true, "deposit": true, "vat": true, "fee": true,
}

// InferValueKind guesses the value kind of an unknown field from its name
func InferValueKind(name string) ValueKind {
	words := splitFieldName(name)
	if len(words) == 0 {
		return ValueKindPlain
	}
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	last := words[len(words)-1]
	if last == "id" || last == "uuid" {
		return ValueKindIdentifier
	}
	for _, w := range words {
		if w == "date" || w == "dob" {
			return ValueKindDate
		}
	}
	if last == "at" && len(words) > 1 {
		return ValueKindDate
	}
	for _, w := range words {
		if currencyWords[w] {
			return ValueKindCurrency
		}
	}
	return ValueKindPlain
}

var titleCaser = cases.Title(language.English, cases.NoLower)

// HumanizeFieldName turns a snake_case or camelCase field name into a label
func HumanizeFieldName(name string) string {
	words := splitFieldName(name)
	if len(words) == 0 {
		return name
	}
	return titleCaser.String(strings.Join(words, " "))
}

// splitFieldName splits snake_case, kebab-case and camelCase names into
// words, keeping acronyms such as ID together
func splitFieldName(name string) []string {
	var words []string
	var current []rune
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}
	runes := []rune(name)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ' || r == '.':
			flush()
		case unicode.IsUpper(r):
			// "customerID" stays one acronym, "customerName" splits before N
			if i > 0 && (unicode.IsLower(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1]) && unicode.IsUpper(runes[i-1]))) {
				flush()
			}
			current = append(current, r)
		default:
			current = append(current, r)
		}
	}
	flush()
	return words
}
