package describe

import (
	"fmt"
	"strings"
)

// GenderForm holds the words used for one gender in a rendered sentence.
type GenderForm struct {
	Descriptor string
	Verb       string
}

// Language holds every word and template needed to render descriptions.
// Sentence arguments by index: 1 name, 2 gender descriptor, 3 age, 4 verb,
// 5 amount, 6 device descriptor, 7 browser, 8 region.
type Language struct {
	Code     string
	genders  map[Gender]GenderForm
	devices  map[Device]string
	defaults fieldDefaults
	sentence string
}

type fieldDefaults struct {
	Name    string
	Age     string
	Amount  string
	Browser string
	Region  string
}

var Russian = Language{
	Code: "ru",
	genders: map[Gender]GenderForm{
		GenderFemale:  {Descriptor: "женского", Verb: "совершила"},
		GenderMale:    {Descriptor: "мужского", Verb: "совершил"},
		GenderUnknown: {Descriptor: "неизвестного", Verb: "совершил(а)"},
	},
	devices: map[Device]string{
		DeviceMobile:  "мобильного",
		DeviceDesktop: "компьютерного",
		DeviceLaptop:  "ноутбука",
		DeviceTablet:  "планшетного",
		DeviceGeneric: "устройства",
	},
	defaults: fieldDefaults{
		Name:    "Неизвестно",
		Age:     "неизвестно",
		Amount:  "0",
		Browser: "неизвестно",
		Region:  "неизвестно",
	},
	sentence: "Пользователь %[1]s %[2]s пола, %[3]s лет %[4]s покупку на %[5]s у.е. с %[6]s браузера %[7]s. " +
		"Регион, из которого совершалась покупка: %[8]s.",
}

var English = Language{
	Code: "en",
	genders: map[Gender]GenderForm{
		GenderFemale:  {Descriptor: "female", Verb: "made"},
		GenderMale:    {Descriptor: "male", Verb: "made"},
		GenderUnknown: {Descriptor: "unspecified", Verb: "made"},
	},
	devices: map[Device]string{
		DeviceMobile:  "mobile",
		DeviceDesktop: "desktop",
		DeviceLaptop:  "laptop",
		DeviceTablet:  "tablet",
		DeviceGeneric: "generic",
	},
	defaults: fieldDefaults{
		Name:    "Unknown",
		Age:     "unknown",
		Amount:  "0",
		Browser: "unknown",
		Region:  "unknown",
	},
	sentence: "Customer %[1]s, %[2]s gender, aged %[3]s, %[4]s a purchase of %[5]s c.u. from a %[6]s device in the %[7]s browser. " +
		"Purchase region: %[8]s.",
}

func SupportedLanguages() []string {
	return []string{Russian.Code, English.Code}
}

func LanguageByCode(code string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "", "ru":
		return Russian, nil
	case "en":
		return English, nil
	default:
		return Language{}, fmt.Errorf("unsupported language: %s", code)
	}
}

// Gender returns the descriptor and verb form for a raw gender token.
func (l Language) Gender(raw string) GenderForm {
	return l.genders[ClassifyGender(raw)]
}

// Device returns the descriptor for a raw device token.
func (l Language) Device(raw string) string {
	return l.devices[ClassifyDevice(raw)]
}
