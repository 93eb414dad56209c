package describe

import "strings"

type Gender int

const (
	GenderUnknown Gender = iota
	GenderFemale
	GenderMale
)

type Device int

const (
	DeviceGeneric Device = iota
	DeviceMobile
	DeviceDesktop
	DeviceLaptop
	DeviceTablet
)

// The female markers are checked first, so single letter markers such as "f"
// win over any male marker contained in the same token.
var (
	femaleMarkers = []string{"female", "жен", "f", "ж"}
	maleMarkers   = []string{"male", "муж", "m", "м"}
)

var deviceMarkers = []struct {
	marker string
	device Device
}{
	{marker: "mobile", device: DeviceMobile},
	{marker: "desktop", device: DeviceDesktop},
	{marker: "laptop", device: DeviceLaptop},
	{marker: "tablet", device: DeviceTablet},
}

// ClassifyGender matches raw case-insensitively against the known gender
// markers.
func ClassifyGender(raw string) Gender {
	if raw == "" {
		return GenderUnknown
	}

	lower := strings.ToLower(raw)
	switch {
	case containsAny(lower, femaleMarkers):
		return GenderFemale
	case containsAny(lower, maleMarkers):
		return GenderMale
	default:
		return GenderUnknown
	}
}

// ClassifyDevice matches raw case-insensitively against the known device
// markers in order.
func ClassifyDevice(raw string) Device {
	if raw == "" {
		return DeviceGeneric
	}

	lower := strings.ToLower(raw)
	for _, candidate := range deviceMarkers {
		if strings.Contains(lower, candidate.marker) {
			return candidate.device
		}
	}
	return DeviceGeneric
}

func containsAny(value string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(value, marker) {
			return true
		}
	}
	return false
}
