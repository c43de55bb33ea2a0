package submission

// Kind represents the classified kind of a form submission
type Kind string

const (
	KindKitchen           Kind = "kitchen"
	KindBedroom           Kind = "bedroom"
	KindRemedial          Kind = "remedial"
	KindFinancialDocument Kind = "financialDocument"
	KindGenericForm       Kind = "genericForm"
)

// IsValid checks if the Kind is a valid value
func (k Kind) IsValid() bool {
	switch k {
	case KindKitchen, KindBedroom, KindRemedial, KindFinancialDocument, KindGenericForm:
		return true
	}
	return false
}

// String returns the string representation of Kind
func (k Kind) String() string {
	return string(k)
}

// Title returns the heading shown above a rendered submission of this kind
func (k Kind) Title() string {
	switch k {
	case KindKitchen:
		return "Kitchen Installation Checklist"
	case KindBedroom:
		return "Bedroom Installation Checklist"
	case KindRemedial:
		return "Remedial Action Checklist"
	case KindFinancialDocument:
		return "Financial Document"
	case KindGenericForm:
		return "Form Submission"
	default:
		return string(k)
	}
}

// IsChecklist reports whether the kind is one of the installation checklists
func (k Kind) IsChecklist() bool {
	return k == KindKitchen || k == KindBedroom || k == KindRemedial
}

// AllKinds returns all valid Kind values
func AllKinds() []Kind {
	return []Kind{KindKitchen, KindBedroom, KindRemedial, KindFinancialDocument, KindGenericForm}
}
