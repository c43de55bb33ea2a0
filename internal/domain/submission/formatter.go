package submission

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/interiors/backend/internal/domain/shared/valueobject"
)

// FormattedType tells a renderer which member of FormattedValue to use
type FormattedType string

const (
	FormattedText       FormattedType = "text"
	FormattedList       FormattedType = "list"
	FormattedPairs      FormattedType = "pairs"
	FormattedStructured FormattedType = "structured"
	FormattedImage      FormattedType = "image"
)

// SignatureImageText is the flat display text of an embedded image
const SignatureImageText = "[signature image]"

// Pair is one key/value entry of a flat object rendering
type Pair struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// FormattedValue is a display-ready value. Text is always the flat display
// string; Items, Pairs and Source carry structure for list, pairs and image
// values.
type FormattedValue struct {
	Type   FormattedType `json:"type"`
	Text   string        `json:"text"`
	Items  []string      `json:"items,omitempty"`
	Pairs  []Pair        `json:"pairs,omitempty"`
	Source string        `json:"source,omitempty"`
}

// FormatterOptions configures display conventions
type FormatterOptions struct {
	CurrencySymbol string
	Placeholder    string
	Currency       valueobject.Currency
}

// DefaultFormatterOptions returns the GBP display conventions
func DefaultFormatterOptions() FormatterOptions {
	return FormatterOptions{
		CurrencySymbol: "£",
		Placeholder:    "—",
		Currency:       valueobject.GBP,
	}
}

// Formatter turns raw values into display values. It is stateless apart
// from its options and safe for concurrent use.
type Formatter struct {
	opts FormatterOptions
}

// NewFormatter creates a formatter; zero option fields take defaults
func NewFormatter(opts FormatterOptions) Formatter {
	def := DefaultFormatterOptions()
	if opts.CurrencySymbol == "" {
		opts.CurrencySymbol = def.CurrencySymbol
	}
	if opts.Placeholder == "" {
		opts.Placeholder = def.Placeholder
	}
	if opts.Currency == "" {
		opts.Currency = def.Currency
	}
	return Formatter{opts: opts}
}

// Options returns the formatter's effective options
func (f Formatter) Options() FormatterOptions {
	return f.opts
}

var defaultFormatter = NewFormatter(DefaultFormatterOptions())

// Format renders a raw value with the default GBP conventions
func Format(raw any, kind ValueKind, fieldName string) FormattedValue {
	return defaultFormatter.Format(raw, kind, fieldName)
}

// Format renders a raw value according to its value kind
func (f Formatter) Format(raw any, kind ValueKind, fieldName string) FormattedValue {
	if IsEmptyValue(raw) {
		return f.placeholder()
	}

	switch v := raw.(type) {
	case string:
		return f.formatString(strings.TrimSpace(v), kind)
	case json.Number:
		return f.formatNumber(v.String(), kind)
	case float64, float32, int, int64:
		return f.formatNumber(scalarText(v), kind)
	case bool:
		return text(strconv.FormatBool(v))
	case []any:
		return f.formatList(v, kind, fieldName)
	case []string:
		items := make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
		return f.formatList(items, kind, fieldName)
	case []map[string]any:
		items := make([]any, len(v))
		for i, m := range v {
			items[i] = m
		}
		return f.formatList(items, kind, fieldName)
	case map[string]any:
		return f.formatObject(v)
	default:
		return text(fmt.Sprint(v))
	}
}

func (f Formatter) placeholder() FormattedValue {
	return text(f.opts.Placeholder)
}

func text(s string) FormattedValue {
	return FormattedValue{Type: FormattedText, Text: s}
}

func (f Formatter) formatString(s string, kind ValueKind) FormattedValue {
	if IsUUID(s) {
		return f.placeholder()
	}
	if strings.HasPrefix(strings.ToLower(s), "data:image/") {
		return FormattedValue{Type: FormattedImage, Text: SignatureImageText, Source: s}
	}

	switch kind {
	case ValueKindDate:
		return text(FormatDate(s))
	case ValueKindCurrency:
		m, err := valueobject.ParseLenient(s, f.opts.Currency)
		if err != nil {
			return text(titleCaser.String(s))
		}
		return text(m.Display(f.opts.CurrencySymbol))
	case ValueKindIdentifier:
		return text(s)
	}

	if isCalendarDate(s) {
		return text(FormatDate(s))
	}
	if isCompoundToken(s) {
		return text(titleCaser.String(strings.NewReplacer("-", " ", "_", " ").Replace(s)))
	}
	return text(capitalizeFirst(s))
}

func (f Formatter) formatNumber(n string, kind ValueKind) FormattedValue {
	d, err := decimal.NewFromString(n)
	if err != nil {
		return text(n)
	}
	if kind == ValueKindCurrency {
		m, err := valueobject.NewMoney(d, f.opts.Currency)
		if err != nil {
			return text(d.String())
		}
		return text(m.Display(f.opts.CurrencySymbol))
	}
	return text(d.String())
}

func (f Formatter) formatList(items []any, kind ValueKind, fieldName string) FormattedValue {
	elemKind := ValueKindPlain
	if kind == ValueKindCurrency || kind == ValueKindDate {
		elemKind = kind
	}

	var out []string
	for _, item := range items {
		if IsEmptyValue(item) {
			continue
		}
		fv := f.Format(item, elemKind, fieldName)
		if fv.Text == f.opts.Placeholder {
			continue
		}
		out = append(out, fv.Text)
	}
	if len(out) == 0 {
		return f.placeholder()
	}
	return FormattedValue{Type: FormattedList, Text: strings.Join(out, ", "), Items: out}
}

func (f Formatter) formatObject(obj map[string]any) FormattedValue {
	for _, v := range obj {
		if _, nested := v.(map[string]any); nested {
			data, err := json.MarshalIndent(obj, "", "  ")
			if err != nil {
				return text(fmt.Sprint(obj))
			}
			return FormattedValue{Type: FormattedStructured, Text: string(data)}
		}
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]Pair, 0, len(keys))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		label := HumanizeFieldName(k)
		value := f.Format(obj[k], InferValueKind(k), k).Text
		pairs = append(pairs, Pair{Key: k, Label: label, Value: value})
		parts = append(parts, label+": "+value)
	}
	return FormattedValue{Type: FormattedPairs, Text: strings.Join(parts, ", "), Pairs: pairs}
}

// IsUUID reports whether s is a canonical 8-4-4-4-12 UUID
func IsUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// DisplayDateLayout is the long-form date used for display
const DisplayDateLayout = "2 January 2006"

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"02/01/2006",
	DisplayDateLayout,
	"January 2, 2006",
}

// FormatDate renders a calendar date in long form. Text that does not
// parse is returned unchanged.
func FormatDate(s string) string {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DisplayDateLayout)
		}
	}
	return s
}

var (
	calendarDatePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	compoundTokenPattern = regexp.MustCompile(`^[A-Za-z0-9]+([-_][A-Za-z0-9]+)+$`)
)

func isCalendarDate(s string) bool {
	if !calendarDatePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func isCompoundToken(s string) bool {
	return compoundTokenPattern.MatchString(s) && strings.IndexFunc(s, unicode.IsLetter) >= 0
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
