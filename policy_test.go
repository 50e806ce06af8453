package pitchmd

import (
	"errors"
	"testing"
)

func TestParsePolicy(t *testing.T) {
	t.Parallel()
	cases := map[string]ContentBlockingPolicy{
		"":                {},
		"none":            {},
		"all":             Untrusted(),
		"image":           {Image: true},
		"images, links":   {Image: true, Link: true},
		"IMG,code":        {Image: true, Code: true},
		"link,,code":      {Link: true, Code: true},
		"image,link,code": Untrusted(),
		" all , none ":    Untrusted(),
	}
	for input, want := range cases {
		got, err := ParsePolicy(input)
		if err != nil {
			t.Fatalf("ParsePolicy(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("ParsePolicy(%q) = %#v, want %#v", input, got, want)
		}
	}
	if _, err := ParsePolicy("image,video"); !errors.Is(err, ErrUnknownPolicy) {
		t.Fatalf("expected ErrUnknownPolicy, got %v", err)
	}
}

func TestPolicyStringRoundTrip(t *testing.T) {
	t.Parallel()
	policies := []ContentBlockingPolicy{
		{},
		{Image: true},
		{Link: true},
		{Code: true},
		{Image: true, Code: true},
		Untrusted(),
	}
	for _, p := range policies {
		back, err := ParsePolicy(p.String())
		if err != nil {
			t.Fatalf("ParsePolicy(%q): %v", p.String(), err)
		}
		if back != p {
			t.Fatalf("round trip of %#v gave %#v", p, back)
		}
	}
	if got := Untrusted().String(); got != "image,link,code" {
		t.Fatalf("unexpected untrusted string %q", got)
	}
	if got := (ContentBlockingPolicy{}).String(); got != "none" {
		t.Fatalf("unexpected zero string %q", got)
	}
}

func TestPolicyUnionAndIsZero(t *testing.T) {
	t.Parallel()
	if !(ContentBlockingPolicy{}).IsZero() {
		t.Fatalf("zero policy should report IsZero")
	}
	u := ContentBlockingPolicy{Image: true}.Union(ContentBlockingPolicy{Code: true})
	if u != (ContentBlockingPolicy{Image: true, Code: true}) {
		t.Fatalf("unexpected union %#v", u)
	}
	if u.IsZero() {
		t.Fatalf("union should not be zero")
	}
	if Untrusted().Union(ContentBlockingPolicy{}) != Untrusted() {
		t.Fatalf("union with zero must not unblock")
	}
}
