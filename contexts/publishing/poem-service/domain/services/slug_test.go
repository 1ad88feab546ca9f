package services

import (
	"regexp"
	"strings"
	"testing"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestSlugExamples(t *testing.T) {
	cases := map[string]string{
		"Autumn Leaves":             "autumn-leaves",
		"  Hello,   World!  ":       "hello-world",
		"rock&roll":                 "rockroll",
		"Café au lait":              "cafe-au-lait",
		"--lead and trail--":        "lead-and-trail",
		"a - b":                     "a-b",
		"Tabs\tand\nnewlines":       "tabs-and-newlines",
		"2024: A Space Odyssey":     "2024-a-space-odyssey",
		"!!!":                       "",
		"":                          "",
		"Ünïcödé   Ströñg---Títle ": "unicode-strong-title",
	}
	for in, want := range cases {
		if got := Slug(in); got != want {
			t.Fatalf("Slug(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSlugIsIdempotentAndWellFormed(t *testing.T) {
	inputs := []string{
		"The Road Not Taken",
		"  spaces   everywhere ",
		"日本語 haiku",
		"emoji 🌙 night",
		"under_score and.dots",
		"---",
		"MiXeD CaSe 42",
		"ça va? très bien",
	}
	for _, in := range inputs {
		once := Slug(in)
		if twice := Slug(once); twice != once {
			t.Fatalf("slug not idempotent for %q: %q then %q", in, once, twice)
		}
		if once != "" && !slugPattern.MatchString(once) {
			t.Fatalf("slug %q for %q does not match pattern", once, in)
		}
	}
}

func TestSlugCapsLengthWithoutTrailingHyphen(t *testing.T) {
	title := strings.Repeat("abcd ", 30)
	got := Slug(title)
	if len(got) > MaxSlugLength {
		t.Fatalf("slug length %d exceeds %d", len(got), MaxSlugLength)
	}
	if strings.HasSuffix(got, "-") {
		t.Fatalf("slug %q ends with a hyphen", got)
	}
	if Slug(got) != got {
		t.Fatalf("capped slug not idempotent: %q", got)
	}
}
