package edgetts

import (
	"sort"
	"testing"
)

func TestKnownVoice(t *testing.T) {
	if !KnownVoice("en-US-GuyNeural") {
		t.Error("en-US-GuyNeural should be in the catalog")
	}
	if KnownVoice("en-US-NoSuchNeural") {
		t.Error("made-up voice should not be in the catalog")
	}
	if KnownVoice("") {
		t.Error("empty identifier should not be in the catalog")
	}
}

func TestLanguagesSorted(t *testing.T) {
	langs := Languages()
	if len(langs) == 0 {
		t.Fatal("catalog should cover at least one language")
	}
	if !sort.StringsAreSorted(langs) {
		t.Error("Languages() should be sorted")
	}
}

func TestVoicesFor(t *testing.T) {
	ids := VoicesFor("en-US")
	if len(ids) == 0 {
		t.Fatal("en-US should have voices")
	}
	if !sort.StringsAreSorted(ids) {
		t.Error("VoicesFor should return sorted identifiers")
	}
	for _, id := range ids {
		if supportedVoices[id] != "en-US" {
			t.Errorf("voice %s listed under en-US but belongs to %s", id, supportedVoices[id])
		}
	}

	if VoicesFor("xx-XX") != nil {
		t.Error("unknown language should return nil")
	}
}

func TestDefaultVoiceFor(t *testing.T) {
	voice, ok := DefaultVoiceFor("en-US")
	if !ok {
		t.Fatal("en-US should have a default voice")
	}
	if voice != VoicesFor("en-US")[0] {
		t.Errorf("default voice %s should be the first sorted voice", voice)
	}

	if _, ok := DefaultVoiceFor("xx-XX"); ok {
		t.Error("unknown language should have no default voice")
	}
}

func TestCatalogCoversNonLatinLanguages(t *testing.T) {
	for _, lang := range []string{
		"af-ZA", "am-ET", "ar-EG", "az-AZ", "he-IL", "hi-IN",
		"ja-JP", "ru-RU", "th-TH", "zh-CN", "zh-HK", "zh-TW",
	} {
		if _, ok := DefaultVoiceFor(lang); !ok {
			t.Errorf("language %s missing from the catalog", lang)
		}
	}
	if got := len(Languages()); got < 130 {
		t.Errorf("catalog covers %d languages, want the full set", got)
	}
	if got := len(supportedVoices); got < 290 {
		t.Errorf("catalog carries %d voices, want the full set", got)
	}
}

func TestLookupsDoNotAliasInternalState(t *testing.T) {
	langs := Languages()
	langs[0] = "mutated"
	if Languages()[0] == "mutated" {
		t.Error("Languages() must return a copy")
	}

	ids := VoicesFor("en-US")
	ids[0] = "mutated"
	if VoicesFor("en-US")[0] == "mutated" {
		t.Error("VoicesFor() must return a copy")
	}
}
