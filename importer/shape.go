package importer

import (
	"custdesc/customer"
	"strings"
)

// FixedHeader is the literal header of the known export layout.
const FixedHeader = "name,device_type,browser,sex,age,bill,region"

const fieldSeparator = ","

type ShapeKind int

const (
	ShapeFixedKnown ShapeKind = iota + 1
	ShapeGeneric
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeFixedKnown:
		return "fixed"
	case ShapeGeneric:
		return "generic"
	default:
		return "unknown"
	}
}

// HeaderShape is resolved once from the header line and then drives how every
// data row is mapped to a record.
type HeaderShape struct {
	Kind    ShapeKind
	Columns []string
}

// DetectShape picks the fixed layout when header starts with FixedHeader and
// otherwise resolves each comma separated token through the synonym table.
func DetectShape(header string) HeaderShape {
	if strings.HasPrefix(header, FixedHeader) {
		columns := make([]string, len(customer.CanonicalFields))
		copy(columns, customer.CanonicalFields[:])
		return HeaderShape{Kind: ShapeFixedKnown, Columns: columns}
	}

	tokens := strings.Split(header, fieldSeparator)
	columns := make([]string, len(tokens))
	for i, token := range tokens {
		columns[i] = CanonicalField(token)
	}
	return HeaderShape{Kind: ShapeGeneric, Columns: columns}
}

// mapFields builds record values from the split fields of one data row.
// The second return value is false when the row does not fit the shape.
func (s HeaderShape) mapFields(fields []string) (map[string]string, bool) {
	switch s.Kind {
	case ShapeFixedKnown:
		if len(fields) < len(s.Columns) {
			return nil, false
		}
		values := make(map[string]string, len(s.Columns))
		for i, column := range s.Columns {
			values[column] = strings.TrimSpace(fields[i])
		}
		return values, true
	case ShapeGeneric:
		if len(fields) != len(s.Columns) {
			return nil, false
		}
		values := make(map[string]string, len(s.Columns))
		for i, column := range s.Columns {
			// later duplicate columns overwrite earlier ones
			values[column] = strings.TrimSpace(fields[i])
		}
		return values, true
	default:
		return nil, false
	}
}
