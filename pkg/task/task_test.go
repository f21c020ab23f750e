package task

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) *Date {
	return &Date{Year: y, Month: m, Day: d}
}

func TestDecode(t *testing.T) {
	tests := map[string]struct {
		line string
		want *Task
	}{
		"full record": {
			line: "- [ ] &5 Buy milk %2024-01-01 @home",
			want: &Task{ID: 5, Title: "Buy milk", Due: date(2024, time.January, 1), Labels: []string{"@home"}},
		},
		"done": {
			line: "- [x] &12 Write report",
			want: &Task{Done: true, ID: 12, Title: "Write report"},
		},
		"no id": {
			line: "- [ ] Call mum @family",
			want: &Task{ID: NoID, Title: "Call mum", Labels: []string{"@family"}},
		},
		"negative id": {
			line: "- [ ] &-1 pending",
			want: &Task{ID: -1, Title: "pending"},
		},
		"invalid date is title": {
			line: "- [ ] &3 pay %rent now",
			want: &Task{ID: 3, Title: "pay %rent now"},
		},
		"second date is title": {
			line: "- [ ] &3 a %2024-02-03 b %2024-05-06",
			want: &Task{ID: 3, Title: "a b %2024-05-06", Due: date(2024, time.February, 3)},
		},
		"duplicate labels kept in order": {
			line: "- [ ] &4 x @b @a @b",
			want: &Task{ID: 4, Title: "x", Labels: []string{"@b", "@a", "@b"}},
		},
		"first token is never a label": {
			line: "- [ ] @home later",
			want: &Task{ID: NoID, Title: "@home later"},
		},
		"interleaved title words": {
			line: "- [ ] &8 one @l two %2023-12-31 three",
			want: &Task{ID: 8, Title: "one two three", Due: date(2023, time.December, 31), Labels: []string{"@l"}},
		},
		"extra whitespace": {
			line: "- [ ]   &9   spaced    out\t",
			want: &Task{ID: 9, Title: "spaced out"},
		},
		"no delimiter after marker": {
			line: "- [ ]&2 tight",
			want: &Task{ID: 2, Title: "tight"},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Decode(tc.line)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("decode(%q)\n got %#v\nwant %#v", tc.line, got, tc.want)
			}
		})
	}
}

func TestDecodeNotATask(t *testing.T) {
	for _, line := range []string{
		"",
		"# Heading",
		"- plain bullet",
		"- [X] capital x is not a marker",
		" - [ ] indented",
		"- [ ]",
		"- [x]   ",
	} {
		got, err := Decode(line)
		if err != nil {
			t.Fatalf("decode(%q): %v", line, err)
		}
		if got != nil {
			t.Fatalf("decode(%q) = %#v, want nil", line, got)
		}
	}
}

func TestDecodeMalformedID(t *testing.T) {
	for _, line := range []string{"- [ ] &abc title", "- [x] & title", "- [ ] &1.5 x"} {
		_, err := Decode(line)
		if !errors.Is(err, ErrMalformedRecord) {
			t.Fatalf("decode(%q): expected ErrMalformedRecord, got %v", line, err)
		}
		var pe *ParseError
		if !errors.As(err, &pe) || pe.Line != line {
			t.Fatalf("decode(%q): expected ParseError carrying the line, got %v", line, err)
		}
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		task Task
		want string
	}{
		{Task{ID: 5, Title: "Buy milk", Due: date(2024, time.January, 1), Labels: []string{"@home"}}, "- [ ] &5 Buy milk %2024-01-01 @home"},
		{Task{Done: true, ID: 1, Title: "x"}, "- [x] &1 x"},
		{Task{ID: NoID, Title: "fresh"}, "- [ ] &-1 fresh"},
		{Task{ID: 2, Title: "tags", Labels: []string{"@a", "@b"}}, "- [ ] &2 tags @a @b"},
		{Task{ID: 1, Labels: []string{"@home"}}, "- [ ] &1 @home"},
		{Task{ID: 3, Due: date(2024, time.May, 2)}, "- [ ] &3 %2024-05-02"},
	}
	for _, tc := range tests {
		if got := Encode(tc.task); got != tc.want {
			t.Errorf("encode: got %q, want %q", got, tc.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, in := range []Task{
		{ID: 0, Title: "zero"},
		{Done: true, ID: 42, Title: "Ship it", Due: date(2025, time.March, 9), Labels: []string{"@work", "@q1", "@work"}},
		{ID: 7, Title: "", Labels: []string{"@empty"}},
		{ID: 3, Title: "see https://example.com/a?b=c"},
	} {
		in := in
		out, err := Decode(Encode(in))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !reflect.DeepEqual(*out, in) {
			t.Fatalf("round trip\n got %#v\nwant %#v", *out, in)
		}
	}
}

func TestNew(t *testing.T) {
	got, err := New("Call dentist %2024-06-01 @health")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	want := &Task{ID: NoID, Title: "Call dentist", Due: date(2024, time.June, 1), Labels: []string{"@health"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}

	if _, err := New("   "); err == nil {
		t.Fatal("expected error for empty description")
	}
}

func TestToggleDate(t *testing.T) {
	today := Date{Year: 2024, Month: time.May, Day: 4}
	tk := &Task{ID: 1, Title: "x"}
	tk.ToggleDate(today)
	if tk.Due == nil || *tk.Due != today {
		t.Fatalf("expected due %v, got %v", today, tk.Due)
	}
	tk.ToggleDate(today)
	if tk.Due != nil {
		t.Fatalf("expected due cleared, got %v", tk.Due)
	}
}

func TestHasLabelIsExact(t *testing.T) {
	tk := &Task{Labels: []string{"@workshop"}}
	if tk.HasLabel("@work") {
		t.Fatal("@work must not match @workshop")
	}
	if !tk.HasLabel("@workshop") {
		t.Fatal("expected @workshop to match")
	}
}

func TestIsLabel(t *testing.T) {
	for s, want := range map[string]bool{"@a": true, "@": true, "a": false, "": false, "@a b": false} {
		if got := IsLabel(s); got != want {
			t.Errorf("IsLabel(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestURLs(t *testing.T) {
	tk := &Task{ID: 1, Title: "read http://a.example/x and https://b.example"}
	got := tk.URLs()
	want := []string{"http://a.example/x", "https://b.example"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d.String() != "2024-02-29" {
		t.Fatalf("got %s", d)
	}
	for _, bad := range []string{"2023-02-29", "2024-1-1", "20240101", "tomorrow"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("expected %q to fail", bad)
		}
	}
	if !(Date{2024, time.January, 2}).After(Date{2024, time.January, 1}) {
		t.Fatal("expected After")
	}
}

func TestDateAddDays(t *testing.T) {
	d := Date{Year: 2024, Month: time.February, Day: 28}
	if got := d.AddDays(2); got != (Date{Year: 2024, Month: time.March, Day: 1}) {
		t.Fatalf("got %v", got)
	}
	if got := d.AddDays(-28); got != (Date{Year: 2024, Month: time.January, Day: 31}) {
		t.Fatalf("got %v", got)
	}
}
