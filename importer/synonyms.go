package importer

import (
	"custdesc/customer"
	"sort"
	"strings"
)

// fieldSynonyms maps lowercase header spellings to canonical field names.
var fieldSynonyms = map[string]string{
	"name": customer.FieldName,
	"fio":  customer.FieldName,
	"фио":  customer.FieldName,

	"device_type": customer.FieldDevice,
	"device":      customer.FieldDevice,
	"устройство":  customer.FieldDevice,

	"browser": customer.FieldBrowser,
	"браузер": customer.FieldBrowser,

	"sex":    customer.FieldGender,
	"gender": customer.FieldGender,
	"пол":    customer.FieldGender,

	"age":     customer.FieldAge,
	"возраст": customer.FieldAge,

	"bill":   customer.FieldAmount,
	"amount": customer.FieldAmount,
	"сумма":  customer.FieldAmount,

	"region": customer.FieldRegion,
	"регион": customer.FieldRegion,
}

// CanonicalField resolves a header token to its canonical field name.
// Unknown tokens are returned trimmed but with their original casing.
func CanonicalField(header string) string {
	trimmed := strings.TrimSpace(header)
	if canonical, ok := fieldSynonyms[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// SynonymsFor returns the sorted header spellings that resolve to canonical.
func SynonymsFor(canonical string) []string {
	out := make([]string, 0, 3)
	for synonym, target := range fieldSynonyms {
		if target == canonical {
			out = append(out, synonym)
		}
	}
	sort.Strings(out)
	return out
}
