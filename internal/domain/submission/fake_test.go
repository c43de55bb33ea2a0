package submission

import (
	"github.com/brianvoe/gofakeit/v7"
)

// fakeSubmission builds a random submission mixing known taxonomy fields,
// discriminators and arbitrary extra fields
func fakeSubmission(f *gofakeit.Faker) RawSubmission {
	raw := RawSubmission{}

	known := make([]string, 0, len(fieldTable))
	for _, d := range fieldTable {
		known = append(known, d.Name)
	}
	for i := 0; i < f.Number(0, 25); i++ {
		name := f.RandomString(known)
		raw[name] = fakeValue(f, 0)
	}
	for i := 0; i < f.Number(0, 5); i++ {
		raw[f.Word()+"_"+f.Word()] = fakeValue(f, 0)
	}
	if f.Bool() {
		raw["form_type"] = f.RandomString([]string{
			"kitchen_checklist", "bedroom_checklist", "checklist", "deposit_receipt",
			"final_invoice", "proforma", "terms", "design_consultation", "",
		})
	}
	if f.Number(0, 5) == 0 {
		raw["checklistType"] = f.RandomString([]string{"remedial", "Remedial ", "standard"})
	}
	return raw
}

func fakeValue(f *gofakeit.Faker, depth int) any {
	choice := f.Number(0, 9)
	if depth > 1 && choice >= 7 {
		choice = 0
	}
	switch choice {
	case 0:
		return f.Word()
	case 1:
		return f.Sentence(4)
	case 2:
		return f.UUID()
	case 3:
		return f.Date().Format("2006-01-02")
	case 4:
		return f.Float64Range(0, 5000)
	case 5:
		return f.Bool()
	case 6:
		return ""
	case 7:
		return []any{f.Color(), fakeValue(f, depth+1)}
	case 8:
		return map[string]any{"make": f.Company(), "model": f.Word(), "order_date": ""}
	default:
		return nil
	}
}
