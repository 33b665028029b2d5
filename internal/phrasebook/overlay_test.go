package phrasebook

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const testOverlay = `
categories:
  - id: football
    label: Soccer
    color: from-lime-900 to-slate-900
    icon: "⚽"
    data:
      - keys: [derby]
        me: "Derby day and I'm the underdog."
        you: "You're playing the derby with ten men."
      - keys: [generic]
        me: "I'm warming the bench."
        you: "You're on the transfer list."
  - id: gaming
    label: Gaming
    data:
      - keys: [lag]
        me: "My ping is in the thousands."
        you: "You're rubber-banding through life."
      - keys: [generic]
        me: "Respawning."
        you: "Press start to continue."
`

func TestLoadWithOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phrasebook.yaml")
	if err := os.WriteFile(path, []byte(testOverlay), 0o600); err != nil {
		t.Fatalf("failed to write overlay: %v", err)
	}

	book, err := LoadWithOverlay(path)
	if err != nil {
		t.Fatalf("LoadWithOverlay() error = %v", err)
	}

	football := book.Table("football")
	if football == nil || football.Label != "Soccer" {
		t.Fatalf("football table was not replaced: %+v", football)
	}
	if _, ok := Match(football, "win"); ok {
		t.Error("replaced football table still matches built-in keywords")
	}
	if entry, ok := Match(football, "big derby"); !ok || entry.Me != "Derby day and I'm the underdog." {
		t.Errorf("Match(big derby) = %+v, %v", entry, ok)
	}

	categories := book.Categories()
	if categories[0].ID != "football" {
		t.Errorf("replaced category moved to position of %q", categories[0].ID)
	}
	if last := categories[len(categories)-1]; last.ID != "gaming" {
		t.Errorf("new category should be appended, last = %q", last.ID)
	}
}

func TestLoadWithOverlay_EmptyPath(t *testing.T) {
	book, err := LoadWithOverlay("")
	if err != nil {
		t.Fatalf("LoadWithOverlay(\"\") error = %v", err)
	}
	if book.Table("football") == nil {
		t.Error("built-in football table missing")
	}
}

func TestParseOverlay_Invalid(t *testing.T) {
	data := []byte(`
categories:
  - id: broken
    data:
      - keys: [win]
        me: a
        you: b
`)
	if _, err := ParseOverlay(data); !errors.Is(err, ErrGenericCount) {
		t.Errorf("ParseOverlay() error = %v, want %v", err, ErrGenericCount)
	}

	if _, err := ParseOverlay([]byte("categories: [")); err == nil {
		t.Error("ParseOverlay() accepted malformed YAML")
	}
}
