package submission

import "strings"

// ClassificationRule names the rule that decided a submission's kind
type ClassificationRule string

const (
	RuleFinancialDiscriminator ClassificationRule = "financial_discriminator"
	RuleRemedialChecklist      ClassificationRule = "remedial_checklist"
	RuleFormTypeHint           ClassificationRule = "form_type_hint"
	RuleKitchenSignals         ClassificationRule = "kitchen_signals"
	RuleBedroomSignals         ClassificationRule = "bedroom_signals"
	RuleMixedSignals           ClassificationRule = "mixed_signals"
	RuleChecklistDefault       ClassificationRule = "checklist_default"
	RuleFallback               ClassificationRule = "fallback"
)

// Classification is the outcome of classifying a submission
type Classification struct {
	Kind Kind
	Rule ClassificationRule
	// Discriminator is the field that triggered the rule, empty for content heuristics
	Discriminator string
}

var (
	financialDiscriminators = []string{"form_type", "formType", "document_type", "receipt_type", "type"}
	financialTokens         = []string{"receipt", "deposit", "final", "invoice", "proforma", "terms"}
	remedialDiscriminators  = []string{"checklistType", "checklist_type"}
	kitchenSignals          = []string{"worktop_material_type", "appliances", "sink_details", "integ_fridge_make"}
	bedroomSignals          = []string{"bedside_cabinets_type", "mirror_type", "dresser_desk", "soffit_lights_type"}
)

// Classify infers the kind of a submission. It never fails: a submission
// matching no rule is a generic form.
func Classify(raw RawSubmission) Kind {
	return Explain(raw).Kind
}

// Explain classifies a submission and reports which rule fired
func Explain(raw RawSubmission) Classification {
	for _, field := range financialDiscriminators {
		value := strings.ToLower(raw.String(field))
		if value == "" {
			continue
		}
		for _, token := range financialTokens {
			if strings.Contains(value, token) {
				return Classification{Kind: KindFinancialDocument, Rule: RuleFinancialDiscriminator, Discriminator: field}
			}
		}
	}

	for _, field := range remedialDiscriminators {
		if strings.EqualFold(strings.TrimSpace(raw.String(field)), "remedial") {
			return Classification{Kind: KindRemedial, Rule: RuleRemedialChecklist, Discriminator: field}
		}
	}

	formType := strings.ToLower(raw.String("form_type"))
	switch {
	case strings.Contains(formType, "bed"):
		return Classification{Kind: KindBedroom, Rule: RuleFormTypeHint, Discriminator: "form_type"}
	case strings.Contains(formType, "kitchen"):
		return Classification{Kind: KindKitchen, Rule: RuleFormTypeHint, Discriminator: "form_type"}
	}

	kitchen := hasAny(raw, kitchenSignals)
	bedroom := hasAny(raw, bedroomSignals)
	switch {
	case kitchen && !bedroom:
		return Classification{Kind: KindKitchen, Rule: RuleKitchenSignals}
	case bedroom && !kitchen:
		return Classification{Kind: KindBedroom, Rule: RuleBedroomSignals}
	case kitchen && bedroom:
		// both checklists share most fields; bedroom wins ties
		return Classification{Kind: KindBedroom, Rule: RuleMixedSignals}
	case strings.Contains(formType, "checklist"):
		return Classification{Kind: KindBedroom, Rule: RuleChecklistDefault, Discriminator: "form_type"}
	}

	return Classification{Kind: KindGenericForm, Rule: RuleFallback}
}

func hasAny(raw RawSubmission, fields []string) bool {
	for _, f := range fields {
		if raw.Has(f) {
			return true
		}
	}
	return false
}
