package textnorm

import (
	"reflect"
	"testing"
)

func TestParseLowercasesAndTokenizes(t *testing.T) {
	meta := Parse("  Movies That Require a LOT of Thinking ")
	if meta.Normalized != "movies that require a lot of thinking" {
		t.Fatalf("unexpected normalized query: %q", meta.Normalized)
	}
	want := []string{"movies", "that", "require", "thinking"}
	if !reflect.DeepEqual(meta.Tokens, want) {
		t.Fatalf("unexpected tokens: %v", meta.Tokens)
	}
}

func TestParseDiscardsShortTokens(t *testing.T) {
	meta := Parse("man on the run")
	for _, token := range meta.Tokens {
		if len(token) <= 3 {
			t.Fatalf("short token %q should have been discarded", token)
		}
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n"} {
		meta := Parse(raw)
		if !meta.Empty() {
			t.Fatalf("expected empty meta for %q, got %#v", raw, meta)
		}
		if len(meta.Tokens) != 0 {
			t.Fatalf("expected no tokens for %q", raw)
		}
	}
}

func TestParseDeduplicatesTokens(t *testing.T) {
	meta := Parse("space space SPACE movies")
	count := 0
	for _, token := range meta.Tokens {
		if token == "space" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected one space token, got %d", count)
	}
}

func TestHasToken(t *testing.T) {
	meta := Parse("inspiring true story about space")
	if !meta.HasToken("inspiring") {
		t.Fatal("expected token inspiring")
	}
	if !meta.HasToken("SPACE") {
		t.Fatal("HasToken should be case-insensitive")
	}
	if meta.HasToken("nasa") {
		t.Fatal("unexpected token nasa")
	}
}
