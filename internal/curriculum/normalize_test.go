package curriculum

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"PP&E", "ppe"},
		{"Property, Plant & Equipment", "property plant equipment"},
		{"  Revenue   Recognition  ", "revenue recognition"},
		{"GAAP", "gaap"},
		{"S-Corporations", "scorporations"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.expected {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}

func TestTopicsMatch(t *testing.T) {
	tests := []struct {
		a, b     string
		expected bool
	}{
		{"Inventory", "Inventory", true},
		{"Inventory", "inventory", true},
		{"Revenue", "Revenue Recognition", true}, // substring
		{"Revenue", "Inventory", false},
		{"PP&E", "Property Plant Equipment", true}, // synonym group
		{"PP&E", "Fixed Assets", true},
		{"GAAP", "Generally Accepted Accounting Principles", true},
		{"Leases", "Bonds", false},
		{"Receivables", "Accounts Receivable", true},
	}
	for _, tt := range tests {
		if got := TopicsMatch(tt.a, tt.b); got != tt.expected {
			t.Errorf("TopicsMatch(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestTopicsMatch_EmptyMatchesAnything(t *testing.T) {
	// Substring-of-empty is trivially true. Intentional quirk; callers
	// filter empties when they need strictness.
	if !TopicsMatch("", "Inventory") {
		t.Error("empty topic should match anything")
	}
	if !TopicsMatch("Inventory", "") {
		t.Error("empty topic should match anything")
	}
}

func TestMatchesAny(t *testing.T) {
	set := map[string]bool{"Inventory": true, "Leases": true}
	if !MatchesAny("inventory", set) {
		t.Error("expected case-insensitive match against set")
	}
	if MatchesAny("Bonds", set) {
		t.Error("Bonds should not match {Inventory, Leases}")
	}
}
