package hostname_test

import (
	"testing"

	"focusflow/internal/platform/hostname"
)

func TestNormalize(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"FACEBOOK.com":                    "facebook.com",
		"https://www.youtube.com/watch":   "youtube.com",
		"  http://News.ycombinator.com  ": "news.ycombinator.com",
		"www.reddit.com/r/golang":         "reddit.com",
		"twitter.com?ref=home":            "twitter.com",
		"https://":                        "",
		"   ":                             "",
	}
	for in, want := range cases {
		if got := hostname.Normalize(in); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMatches(t *testing.T) {
	t.Parallel()
	if !hostname.Matches("youtube.com", "youtube.com") || !hostname.Matches("m.youtube.com", "youtube.com") {
		t.Fatalf("expected exact and subdomain match")
	}
	if hostname.Matches("notyoutube.com", "youtube.com") || hostname.Matches("", "youtube.com") {
		t.Fatalf("unexpected match")
	}
}
