package date

import (
	"encoding/json"
	"testing"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNew_normalizes(t *testing.T) {
	// Day 32 of January must roll over to February 1st.
	d := New(2024, 1, 32)
	if got, want := d.String(), "2024-02-01"; got != want {
		t.Errorf("New(2024, 1, 32) = %s, want %s", got, want)
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2024-01-15", want: "2024-01-15"},
		{in: "2024-1-5", want: "2024-01-05"}, // permissive read format
		{in: "not-a-date", wantErr: true},
		{in: "2024-13-01", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tc.in, err)
			}
			if got.String() != tc.want {
				t.Errorf("Parse(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestBeforeAfter(t *testing.T) {
	a, b := MustParse("2024-01-01"), MustParse("2024-01-02")
	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before is inconsistent for %s and %s", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("After is inconsistent for %s and %s", a, b)
	}
	if a.Before(a) || a.After(a) {
		t.Errorf("a date must be neither before nor after itself")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := MustParse("2024-03-09")
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"2024-03-09"` {
		t.Errorf("Marshal = %s, want %q", b, `"2024-03-09"`)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != d {
		t.Errorf("round trip: got %s, want %s", back, d)
	}
}
