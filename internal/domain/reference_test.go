package domain_test

import (
	"testing"

	"iconbundle/internal/domain"
)

func TestParseReference_Valid(t *testing.T) {
	cases := []struct {
		in     string
		prefix domain.Prefix
		name   domain.IconName
	}{
		{"mdi:home", "mdi", "home"},
		{"ri:alert-line", "ri", "alert-line"},
		{"fa6-solid:user", "fa6-solid", "user"},
		{"a:b", "a", "b"},
	}
	for _, c := range cases {
		ref, ok := domain.ParseReference(c.in)
		if !ok {
			t.Fatalf("ParseReference(%q) not ok", c.in)
		}
		if ref.Prefix != c.prefix || ref.Name != c.name {
			t.Fatalf("ParseReference(%q) = %v, want %s:%s", c.in, ref, c.prefix, c.name)
		}
	}
}

func TestParseReference_Malformed(t *testing.T) {
	cases := []string{
		"",
		"home",
		":home",
		"mdi:",
		":",
		"mdi:Home",
		"MDI:home",
		"mdi:ho me",
		"mdi:home:extra",
		"mdi::home",
		"-mdi:home",
		"mdi:home-",
		"mdi:ho--me",
	}
	for _, c := range cases {
		if _, ok := domain.ParseReference(c); ok {
			t.Fatalf("ParseReference(%q) = ok, want malformed", c)
		}
	}
}

func TestReferenceString_RoundTrip(t *testing.T) {
	ref, ok := domain.ParseReference("tabler:circle-dot")
	if !ok {
		t.Fatalf("parse failed")
	}
	if got := ref.String(); got != "tabler:circle-dot" {
		t.Fatalf("String() = %q", got)
	}
}

// FuzzParseReference checks the parser never panics and only accepts
// strings that survive a round trip.
func FuzzParseReference(f *testing.F) {
	for _, seed := range []string{"mdi:home", "a:b", "mdi:", "::", "mdi:ho me", "é:名"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, s string) {
		ref, ok := domain.ParseReference(s)
		if !ok {
			return
		}
		if ref.Prefix == "" || ref.Name == "" {
			t.Fatalf("accepted reference with empty part: %q", s)
		}
		if ref.String() != s {
			t.Fatalf("round trip mismatch: %q -> %q", s, ref.String())
		}
	})
}
