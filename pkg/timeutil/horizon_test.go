package timeutil

import "testing"

func TestParseHorizon(t *testing.T) {
	tests := map[string]struct {
		in    string
		days  int
		label string
	}{
		"empty":     {in: "", days: 0, label: "0d"},
		"zero":      {in: "0", days: 0, label: "0d"},
		"days":      {in: "3d", days: 3, label: "3d"},
		"week":      {in: "1 week", days: 7, label: "1w"},
		"composite": {in: "1w2d", days: 9, label: "1w2d"},
		"overflow":  {in: "10d", days: 10, label: "1w3d"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			days, label, err := ParseHorizon(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if days != tc.days {
				t.Fatalf("expected %d days, got %d", tc.days, days)
			}
			if label != tc.label {
				t.Fatalf("expected label %s, got %s", tc.label, label)
			}
		})
	}
}

func TestParseHorizonInvalid(t *testing.T) {
	for _, in := range []string{"noop", "3h", "-1d"} {
		if _, _, err := ParseHorizon(in); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}
