package customer

// Canonical field names shared by every header convention.
const (
	FieldName    = "ФИО"
	FieldDevice  = "Устройство"
	FieldBrowser = "Браузер"
	FieldGender  = "Пол"
	FieldAge     = "Возраст"
	FieldAmount  = "Сумма"
	FieldRegion  = "Регион"
)

// CanonicalFields lists the canonical names in the order of the fixed header.
var CanonicalFields = [...]string{
	FieldName,
	FieldDevice,
	FieldBrowser,
	FieldGender,
	FieldAge,
	FieldAmount,
	FieldRegion,
}

// Record is one customer row keyed by canonical field name.
type Record struct {
	LineNumber int
	Values     map[string]string
}

// Lookup returns the raw value stored under field and whether it was present.
func (r Record) Lookup(field string) (string, bool) {
	value, ok := r.Values[field]
	return value, ok
}

// GetOr returns the value for field, or defaultValue when the field is absent.
// A present but empty value is returned as is.
func (r Record) GetOr(field, defaultValue string) string {
	if value, ok := r.Values[field]; ok {
		return value
	}
	return defaultValue
}
