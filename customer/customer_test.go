package customer

import "testing"

func TestRecordGetOr_DefaultOnlyWhenAbsent(t *testing.T) {
	t.Parallel()

	record := Record{
		LineNumber: 2,
		Values: map[string]string{
			FieldName: "",
			FieldAge:  "29",
		},
	}

	if got := record.GetOr(FieldAge, "unknown"); got != "29" {
		t.Fatalf("unexpected age: want 29, got %q", got)
	}
	if got := record.GetOr(FieldName, "Unknown"); got != "" {
		t.Fatalf("expected present empty name to be kept, got %q", got)
	}
	if got := record.GetOr(FieldRegion, "unknown"); got != "unknown" {
		t.Fatalf("expected default region, got %q", got)
	}
	if _, ok := record.Lookup(FieldBrowser); ok {
		t.Fatalf("expected browser to be absent")
	}
}

func TestCanonicalFieldsAreDistinct(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{}, len(CanonicalFields))
	for _, field := range CanonicalFields {
		if _, exists := seen[field]; exists {
			t.Fatalf("duplicate canonical field %q", field)
		}
		seen[field] = struct{}{}
	}
	if len(seen) != 7 {
		t.Fatalf("expected 7 canonical fields, got %d", len(seen))
	}
}
