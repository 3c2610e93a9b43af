package domain_test

import (
	"reflect"
	"testing"

	"focusflow/internal/modules/blocklist/domain"
)

func TestCandidatesNormalizeAndCollapse(t *testing.T) {
	t.Parallel()
	got := domain.Candidates(
		[]string{"FACEBOOK.com", "https://www.youtube.com/watch", "  ", "facebook.com"},
		[]string{" Slack ", "slack", ""},
	)
	want := []domain.Candidate{
		{Type: domain.TypeWebsite, Value: "facebook.com"},
		{Type: domain.TypeWebsite, Value: "youtube.com"},
		{Type: domain.TypeApp, Value: "slack"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if len(domain.Candidates(nil, []string{" "})) != 0 {
		t.Fatalf("blank input must yield no candidates")
	}
}

func TestAppValuesKeepPathCharacters(t *testing.T) {
	t.Parallel()
	if got := domain.NormalizeValue(domain.TypeApp, " /Applications/Slack.app "); got != "/applications/slack.app" {
		t.Fatalf("unexpected app normalization %q", got)
	}
}

func TestWebsitesFiltersApps(t *testing.T) {
	t.Parallel()
	entries := []domain.Entry{
		{Type: domain.TypeWebsite, Value: "a.com"},
		{Type: domain.TypeApp, Value: "slack"},
		{Type: domain.TypeWebsite, Value: "b.com"},
	}
	if got := domain.Websites(entries); !reflect.DeepEqual(got, []string{"a.com", "b.com"}) {
		t.Fatalf("unexpected websites %v", got)
	}
	if err := domain.EntryType("game").Validate(); err == nil {
		t.Fatalf("expected unknown type error")
	}
}
