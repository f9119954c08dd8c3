package compile

import (
	"reflect"
	"testing"
)

func TestExtractPhrases_MultiLine(t *testing.T) {
	text := "screen: Home\n- header: Home\n* button: Go\n•  input: Search\n\n"
	got := ExtractPhrases(text)
	want := []string{"screen: Home", "header: Home", "button: Go", "input: Search"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractPhrases = %v, want %v", got, want)
	}
}

func TestExtractPhrases_Separators(t *testing.T) {
	got := ExtractPhrases("header: Home; button: Go | input: Search")
	want := []string{"header: Home", "button: Go", "input: Search"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractPhrases = %v, want %v", got, want)
	}
}

func TestExtractPhrases_SentenceFallback(t *testing.T) {
	got := ExtractPhrases("Add a title. Add a subtitle. Add a button")
	if len(got) != 3 {
		t.Fatalf("ExtractPhrases = %v, want 3 phrases", got)
	}
	if got[0] != "Add a title" {
		t.Errorf("first phrase = %q", got[0])
	}
}

func TestExtractPhrases_SinglePhrase(t *testing.T) {
	got := ExtractPhrases("login form")
	if len(got) != 1 || got[0] != "login form" {
		t.Errorf("ExtractPhrases = %v", got)
	}
}

func TestSplitItems(t *testing.T) {
	got := SplitItems("All, New, Trending")
	want := []string{"All", "New", "Trending"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitItems = %v, want %v", got, want)
	}
}

func TestSplitItems_QuotedCommaKept(t *testing.T) {
	got := SplitItems(`"Books, Music", Films`)
	want := []string{"Books, Music", "Films"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitItems = %v, want %v", got, want)
	}
}

func TestSplitItems_Empty(t *testing.T) {
	if got := SplitItems("   "); got != nil {
		t.Errorf("SplitItems = %v, want nil", got)
	}
}
