package describe

import "testing"

func TestClassifyGender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Gender
	}{
		{input: "Female", want: GenderFemale},
		{input: "жен", want: GenderFemale},
		{input: "Женский", want: GenderFemale},
		{input: "F", want: GenderFemale},
		{input: "Ж", want: GenderFemale},
		{input: "Male", want: GenderMale},
		{input: "MALE", want: GenderMale},
		{input: "м", want: GenderMale},
		// "муж" contains the female marker "ж", which is checked first
		{input: "муж", want: GenderFemale},
		{input: "мужской", want: GenderFemale},
		{input: "m", want: GenderMale},
		{input: "", want: GenderUnknown},
		{input: "xyz", want: GenderUnknown},
		{input: "   ", want: GenderUnknown},
		// female markers are checked before male ones
		{input: "fm", want: GenderFemale},
	}

	for _, tc := range tests {
		if got := ClassifyGender(tc.input); got != tc.want {
			t.Fatalf("ClassifyGender(%q): want %d, got %d", tc.input, tc.want, got)
		}
	}
}

func TestClassifyDevice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Device
	}{
		{input: "Mobile Safari", want: DeviceMobile},
		{input: "mobile", want: DeviceMobile},
		{input: "Desktop", want: DeviceDesktop},
		{input: "gaming laptop", want: DeviceLaptop},
		{input: "TABLET", want: DeviceTablet},
		{input: "mobile tablet", want: DeviceMobile},
		{input: "", want: DeviceGeneric},
		{input: "SmartFridge", want: DeviceGeneric},
	}

	for _, tc := range tests {
		if got := ClassifyDevice(tc.input); got != tc.want {
			t.Fatalf("ClassifyDevice(%q): want %d, got %d", tc.input, tc.want, got)
		}
	}
}

func TestLanguageForms(t *testing.T) {
	t.Parallel()

	if got := Russian.Gender("Female"); got != (GenderForm{Descriptor: "женского", Verb: "совершила"}) {
		t.Fatalf("unexpected russian female form: %+v", got)
	}
	if got := Russian.Gender("м"); got != (GenderForm{Descriptor: "мужского", Verb: "совершил"}) {
		t.Fatalf("unexpected russian male form: %+v", got)
	}
	if got := Russian.Gender(""); got != (GenderForm{Descriptor: "неизвестного", Verb: "совершил(а)"}) {
		t.Fatalf("unexpected russian unknown form: %+v", got)
	}
	if got := Russian.Device("Mobile Safari"); got != "мобильного" {
		t.Fatalf("unexpected russian device: %q", got)
	}
	if got := English.Device("SmartFridge"); got != "generic" {
		t.Fatalf("unexpected english device: %q", got)
	}
	if got := English.Gender("xyz").Descriptor; got != "unspecified" {
		t.Fatalf("unexpected english unknown descriptor: %q", got)
	}
}

func TestLanguageByCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code    string
		want    string
		wantErr bool
	}{
		{code: "", want: "ru"},
		{code: "ru", want: "ru"},
		{code: " EN ", want: "en"},
		{code: "de", wantErr: true},
	}

	for _, tc := range tests {
		lang, err := LanguageByCode(tc.code)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("expected error for %q", tc.code)
			}
			continue
		}
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tc.code, err)
		}
		if lang.Code != tc.want {
			t.Fatalf("LanguageByCode(%q): want %q, got %q", tc.code, tc.want, lang.Code)
		}
	}
}
