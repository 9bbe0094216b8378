package sector

import "testing"

func TestAll_HasTenSectors(t *testing.T) {
	all := All()
	if len(all) != 10 {
		t.Fatalf("All() returned %d sectors, want 10", len(all))
	}

	seen := make(map[Sector]bool)
	for _, s := range all {
		if seen[s] {
			t.Errorf("All() contains duplicate sector %q", s)
		}
		seen[s] = true
	}

	if seen[Unclassified] {
		t.Error("All() must not contain Unclassified")
	}
}

func TestParse_ValidLabels(t *testing.T) {
	tests := []struct {
		label string
		want  Sector
	}{
		{"Technology", Technology},
		{"technology", Technology},
		{"TECHNOLOGY", Technology},
		{"  Technology  ", Technology},
		{"Technology.", Technology},
		{"consumer cyclical", ConsumerCyclical},
		{"Consumer Defensive", ConsumerDefensive},
		{"real estate", RealEstate},
		{"Financial", Financial},
		{"healthcare.", Healthcare},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := Parse(tt.label)
			if !ok {
				t.Fatalf("Parse(%q) did not match, want %q", tt.label, tt.want)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

func TestParse_InvalidLabels(t *testing.T) {
	tests := []string{
		"",
		"Crypto",
		"Tech",
		"Consumer",
		"Unclassified",
		"The sector is Technology",
	}

	for _, label := range tests {
		t.Run(label, func(t *testing.T) {
			if got, ok := Parse(label); ok {
				t.Errorf("Parse(%q) = %q, want no match", label, got)
			}
		})
	}
}

func TestList_ContainsAllSectors(t *testing.T) {
	list := List()
	expected := "Technology, Consumer Cyclical, Industrials, Utilities, Healthcare, Communication, Energy, Consumer Defensive, Real Estate, Financial"
	if list != expected {
		t.Errorf("List() = %q, want %q", list, expected)
	}
}
