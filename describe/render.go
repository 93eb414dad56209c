package describe

import (
	"custdesc/customer"
	"fmt"
)

// Description is one rendered sentence together with the record it describes.
type Description struct {
	Record customer.Record
	Text   string
}

type Renderer struct {
	lang Language
}

func NewRenderer(lang Language) *Renderer {
	return &Renderer{lang: lang}
}

func (r *Renderer) Language() Language {
	return r.lang
}

// Render builds the purchase sentence for record. Missing fields fall back to
// the language defaults; the text always ends with a single newline.
func (r *Renderer) Render(record customer.Record) Description {
	gender := r.lang.Gender(record.GetOr(customer.FieldGender, ""))
	device := r.lang.Device(record.GetOr(customer.FieldDevice, ""))
	defaults := r.lang.defaults

	text := fmt.Sprintf(r.lang.sentence,
		record.GetOr(customer.FieldName, defaults.Name),
		gender.Descriptor,
		record.GetOr(customer.FieldAge, defaults.Age),
		gender.Verb,
		record.GetOr(customer.FieldAmount, defaults.Amount),
		device,
		record.GetOr(customer.FieldBrowser, defaults.Browser),
		record.GetOr(customer.FieldRegion, defaults.Region),
	)

	return Description{Record: record, Text: text + "\n"}
}

func (r *Renderer) RenderAll(records []customer.Record) []Description {
	out := make([]Description, 0, len(records))
	for _, record := range records {
		out = append(out, r.Render(record))
	}
	return out
}
