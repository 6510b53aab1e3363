package playerlog

// Protocol version registry: a fixed table mapping human-readable version
// labels to single-byte wire codes. The table is built once at init and never
// mutated, so concurrent reads need no locking.

var versionEntries = []struct {
	Label string
	Code  uint8
}{
	{"1.8", 1},
	{"1.9", 2},
	{"1.10", 3},
	{"1.11", 4},
	{"1.12", 5},
	{"1.13", 6},
	{"1.14", 7},
	{"1.15", 8},
	{"1.16", 9},
	{"1.17", 10},
	{"1.18", 11},
	{"1.19", 12},
	{"1.20", 13},
	{"1.21", 14},
}

var (
	versionCodes  map[string]uint8
	versionLabels map[uint8]string
)

func init() {
	versionCodes = make(map[string]uint8, len(versionEntries))
	versionLabels = make(map[uint8]string, len(versionEntries))
	for _, e := range versionEntries {
		if _, dup := versionLabels[e.Code]; dup {
			// Codes must stay unique or code→label resolution is ambiguous.
			panic("playerlog: duplicate version code in registry")
		}
		versionCodes[e.Label] = e.Code
		versionLabels[e.Code] = e.Label
	}
}

// VersionCode resolves a version label (e.g. "1.20") to its wire code.
func VersionCode(label string) (uint8, error) {
	code, ok := versionCodes[label]
	if !ok {
		return 0, ErrUnknownVersion
	}
	return code, nil
}

// VersionLabel resolves a wire code back to its version label.
func VersionLabel(code uint8) (string, error) {
	label, ok := versionLabels[code]
	if !ok {
		return "", ErrUnknownVersionCode
	}
	return label, nil
}

// VersionLabels returns the registered labels in registry order.
func VersionLabels() []string {
	labels := make([]string, len(versionEntries))
	for i, e := range versionEntries {
		labels[i] = e.Label
	}
	return labels
}
