package submission

// SectionTag identifies a group of fields that can be marked not applicable
type SectionTag string

const (
	TagMaterialSpecs    SectionTag = "material_specs"
	TagHardwareSpecs    SectionTag = "hardware_specs"
	TagWorktopSpecs     SectionTag = "worktop_specs"
	TagAppliances       SectionTag = "appliances"
	TagBedroomFurniture SectionTag = "bedroom_furniture"
	TagLighting         SectionTag = "lighting"
	TagAccessories      SectionTag = "accessories"
	TagTerms            SectionTag = "terms"
)

// IsValid checks if the SectionTag is a valid value
func (t SectionTag) IsValid() bool {
	_, ok := resetTable[t]
	return ok
}

// String returns the string representation of SectionTag
func (t SectionTag) String() string {
	return string(t)
}

// AllSectionTags returns all reset tags in display order
func AllSectionTags() []SectionTag {
	return []SectionTag{
		TagMaterialSpecs,
		TagHardwareSpecs,
		TagWorktopSpecs,
		TagAppliances,
		TagBedroomFurniture,
		TagLighting,
		TagAccessories,
		TagTerms,
	}
}

// Patch is a set of field values to merge into a submission
type Patch map[string]any

// Reset values
const (
	NotApplicable     = "N/A"
	NoQuantity        = "0"
	NoFloorProtection = "No Floor Protection Required"
)

const applianceSlotCount = 7

type resetMode int

const (
	resetText resetMode = iota
	resetQuantity
	resetDate
	resetEmptyList
	resetAppliances
	resetDoors
	resetFloorProtection
)

type resetField struct {
	name string
	mode resetMode
}

func textField(name string) resetField { return resetField{name, resetText} }
func qtyField(name string) resetField  { return resetField{name, resetQuantity} }
func dateField(name string) resetField { return resetField{name, resetDate} }

// doorFields are the keys of an additional door entry
var doorFields = []string{
	"door_style", "door_color", "door_manufacturer", "door_name", "glazing_material",
	"panel_color", "plinth_color", "cabinet_color", "worktop_color",
}

var resetTable = map[SectionTag][]resetField{
	TagMaterialSpecs: {
		textField("door_style"), textField("door_color"), textField("door_manufacturer"), textField("door_name"),
		textField("glazing_material"), textField("end_panel_color"), textField("plinth_filler_color"),
		textField("cabinet_color"), textField("worktop_material_color"),
		{name: "additional_doors", mode: resetDoors},
	},
	TagHardwareSpecs: {
		textField("handles_code"), qtyField("handles_quantity"), textField("handles_size"),
		textField("accessories"), textField("lighting_spec"),
		textField("under_wall_unit_lights_color"), textField("under_wall_unit_lights_profile"),
		textField("under_worktop_lights_color"), textField("kitchen_accessories"),
	},
	TagWorktopSpecs: {
		textField("worktop_material_type"), textField("worktop_material_color"), textField("worktop_size"),
		{name: "worktop_features", mode: resetEmptyList},
		textField("worktop_other_details"),
	},
	TagAppliances: {
		textField("appliances_customer_owned"),
		{name: "appliances", mode: resetAppliances},
		qtyField("integ_fridge_qty"), textField("integ_fridge_make"), textField("integ_fridge_model"), dateField("integ_fridge_order_date"),
		qtyField("integ_freezer_qty"), textField("integ_freezer_make"), textField("integ_freezer_model"), dateField("integ_freezer_order_date"),
		textField("other_appliances"), textField("sink_tap_customer_owned"),
		textField("sink_details"), textField("sink_model"), textField("tap_details"), textField("tap_model"),
	},
	TagBedroomFurniture: {
		textField("bedside_cabinets_type"), qtyField("bedside_cabinets_qty"),
		textField("dresser_desk"), textField("dresser_desk_details"),
		textField("internal_mirror"), textField("internal_mirror_details"),
		textField("mirror_type"), qtyField("mirror_qty"),
	},
	TagLighting: {
		textField("soffit_lights_type"), textField("soffit_lights_color"),
		textField("gable_lights_type"), textField("gable_lights_main_color"), textField("gable_lights_profile_color"),
	},
	TagAccessories: {
		textField("other_accessories"),
		{name: "floor_protection", mode: resetFloorProtection},
	},
	TagTerms: {
		dateField("terms_date"), textField("gas_electric_info"), textField("appliance_promotion_info"),
	},
}

// MarkNotApplicable returns the patch that marks every field under a tag as
// not applicable. Unknown tags yield an empty patch. The patch is freshly
// allocated on each call.
func MarkNotApplicable(tag SectionTag) Patch {
	fields := resetTable[tag]
	patch := make(Patch, len(fields))
	for _, f := range fields {
		patch[f.name] = resetValue(f.mode)
	}
	return patch
}

// FieldsFor lists the fields a tag resets
func FieldsFor(tag SectionTag) []string {
	fields := resetTable[tag]
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.name
	}
	return out
}

func resetValue(mode resetMode) any {
	switch mode {
	case resetQuantity:
		return NoQuantity
	case resetDate:
		return ""
	case resetEmptyList:
		return []any{}
	case resetAppliances:
		slots := make([]any, applianceSlotCount)
		for i := range slots {
			slots[i] = map[string]any{"make": NotApplicable, "model": NotApplicable, "order_date": ""}
		}
		return slots
	case resetDoors:
		door := make(map[string]any, len(doorFields)+1)
		for _, f := range doorFields {
			door[f] = NotApplicable
		}
		door["quantity"] = NoQuantity
		return []any{door}
	case resetFloorProtection:
		return []any{NoFloorProtection}
	default:
		return NotApplicable
	}
}
