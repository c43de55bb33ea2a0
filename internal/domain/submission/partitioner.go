package submission

// SectionAction is an operation a viewer may offer on a section
type SectionAction string

const (
	ActionOrder  SectionAction = "order"
	ActionMarkNA SectionAction = "mark_na"
)

// FieldView is one displayed field
type FieldView struct {
	Name      string         `json:"name"`
	Label     string         `json:"label"`
	ValueKind ValueKind      `json:"value_kind"`
	Value     FormattedValue `json:"value"`
}

// Section is an ordered group of displayed fields
type Section struct {
	Title string `json:"title"`
	// Kind is empty for sections shared by every kind
	Kind       Kind            `json:"kind,omitempty"`
	ResetTag   SectionTag      `json:"reset_tag,omitempty"`
	OrderTitle string          `json:"order_title,omitempty"`
	Actions    []SectionAction `json:"actions,omitempty"`
	Fields     []FieldView     `json:"fields"`
}

// HasAction reports whether the section offers an action
func (s Section) HasAction(a SectionAction) bool {
	for _, have := range s.Actions {
		if have == a {
			return true
		}
	}
	return false
}

// RenderOptions carries the caller's permission decision
type RenderOptions struct {
	CanEdit bool
}

// Rendering is a classified and partitioned submission
type Rendering struct {
	Kind     Kind      `json:"kind"`
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

// Partitioner groups submission fields into display sections
type Partitioner struct {
	formatter Formatter
}

// NewPartitioner creates a partitioner that formats values with f
func NewPartitioner(f Formatter) Partitioner {
	return Partitioner{formatter: f}
}

// Partition groups fields with the default formatter and no edit actions
func Partition(raw RawSubmission, kind Kind) []Section {
	return NewPartitioner(defaultFormatter).Partition(raw, kind, RenderOptions{})
}

// Render classifies the submission and partitions it for its kind
func (p Partitioner) Render(raw RawSubmission, opts RenderOptions) Rendering {
	kind := Classify(raw)
	return Rendering{
		Kind:     kind,
		Title:    kind.Title(),
		Sections: p.Partition(raw, kind, opts),
	}
}

// Partition returns the named sections applicable to kind, followed by the
// Additional Information catch-all. Empty sections are omitted. Every
// non-empty field that is neither a discriminator nor an identifier lands
// in exactly one section.
func (p Partitioner) Partition(raw RawSubmission, kind Kind, opts RenderOptions) []Section {
	claimed := make(map[string]bool, len(raw))
	var sections []Section

	for _, def := range SectionsFor(kind) {
		var fields []FieldView
		for _, name := range def.Members(kind) {
			if claimed[name] || IsExcluded(name) || !raw.Has(name) {
				continue
			}
			claimed[name] = true
			fields = append(fields, p.view(raw, name, kind))
		}
		if len(fields) == 0 {
			continue
		}

		sec := Section{Title: def.Title, ResetTag: def.ResetTag, Fields: fields}
		if !def.KindAgnostic() {
			sec.Kind = kind
		}
		if def.Orderable {
			sec.OrderTitle = def.Title
		}
		if opts.CanEdit {
			if def.Orderable {
				sec.Actions = append(sec.Actions, ActionOrder)
			}
			if def.ResetTag != "" {
				sec.Actions = append(sec.Actions, ActionMarkNA)
			}
		}
		sections = append(sections, sec)
	}

	var extra []FieldView
	for _, name := range raw.Fields() {
		if claimed[name] || IsExcluded(name) || !raw.Has(name) {
			continue
		}
		claimed[name] = true
		extra = append(extra, p.view(raw, name, kind))
	}
	if len(extra) > 0 {
		sections = append(sections, Section{Title: SectionAdditionalInformation, Fields: extra})
	}

	return sections
}

func (p Partitioner) view(raw RawSubmission, name string, kind Kind) FieldView {
	d := Describe(name)
	return FieldView{
		Name:      name,
		Label:     d.LabelFor(kind),
		ValueKind: d.ValueKind,
		Value:     p.formatter.Format(raw[name], d.ValueKind, name),
	}
}
