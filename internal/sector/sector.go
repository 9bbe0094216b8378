package sector

import "strings"

// Sector is one of the ten fixed business-classification categories
// a company can be assigned to.
type Sector string

const (
	Technology        Sector = "Technology"
	ConsumerCyclical  Sector = "Consumer Cyclical"
	Industrials       Sector = "Industrials"
	Utilities         Sector = "Utilities"
	Healthcare        Sector = "Healthcare"
	Communication     Sector = "Communication"
	Energy            Sector = "Energy"
	ConsumerDefensive Sector = "Consumer Defensive"
	RealEstate        Sector = "Real Estate"
	Financial         Sector = "Financial"

	// Unclassified marks rows whose classification failed. It is never a
	// valid model answer and is excluded from the ranked summary.
	Unclassified Sector = "Unclassified"
)

// All returns the ten valid sectors in their canonical order.
// Unclassified is not included.
func All() []Sector {
	return []Sector{
		Technology,
		ConsumerCyclical,
		Industrials,
		Utilities,
		Healthcare,
		Communication,
		Energy,
		ConsumerDefensive,
		RealEstate,
		Financial,
	}
}

// List returns the ten valid sector names joined by ", ", suitable for
// embedding in a prompt.
func List() string {
	all := All()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// Parse matches a free-form label against the ten valid sectors.
// Matching is case-insensitive and ignores surrounding whitespace and a
// trailing period, since completion models frequently add both.
// The second return value reports whether the label matched.
func Parse(label string) (Sector, bool) {
	cleaned := strings.TrimSpace(label)
	cleaned = strings.TrimSuffix(cleaned, ".")
	cleaned = strings.TrimSpace(cleaned)

	for _, s := range All() {
		if strings.EqualFold(cleaned, string(s)) {
			return s, true
		}
	}
	return "", false
}

// String implements fmt.Stringer.
func (s Sector) String() string {
	return string(s)
}
