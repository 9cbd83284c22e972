package edgetts

import (
	"errors"
	"testing"
)

func TestNormalizeProsody(t *testing.T) {
	tests := []struct {
		name    string
		option  string
		value   string
		def     string
		want    string
		wantErr bool
	}{
		{name: "empty uses default", option: "rate", value: "", def: DefaultRate, want: "+0%"},
		{name: "signed percent", option: "rate", value: "+10%", def: DefaultRate, want: "+10%"},
		{name: "negative percent", option: "volume", value: "-25%", def: DefaultVolume, want: "-25%"},
		{name: "fractional percent", option: "rate", value: "+12.5%", def: DefaultRate, want: "+12.5%"},
		{name: "bare int coerced", option: "rate", value: "10", def: DefaultRate, want: "+10%"},
		{name: "bare negative int coerced", option: "volume", value: "-5", def: DefaultVolume, want: "-5%"},
		{name: "bare zero coerced", option: "rate", value: "0", def: DefaultRate, want: "+0%"},
		{name: "pitch hz", option: "pitch", value: "-50Hz", def: DefaultPitch, want: "-50Hz"},
		{name: "pitch percent", option: "pitch", value: "+5%", def: DefaultPitch, want: "+5%"},
		{name: "pitch bare int coerced to hz", option: "pitch", value: "20", def: DefaultPitch, want: "+20Hz"},
		{name: "missing sign", option: "rate", value: "10%", def: DefaultRate, wantErr: true},
		{name: "garbage", option: "rate", value: "abc%", def: DefaultRate, wantErr: true},
		{name: "hz on rate rejected", option: "rate", value: "+10Hz", def: DefaultRate, wantErr: true},
		{name: "bare word", option: "pitch", value: "high", def: DefaultPitch, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeProsody(tt.option, tt.value, tt.def)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("normalizeProsody(%q, %q) = %q, want error", tt.option, tt.value, got)
				}
				var invalid *InvalidOptionError
				if !errors.As(err, &invalid) {
					t.Errorf("error = %v, want InvalidOptionError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("normalizeProsody(%q, %q) failed: %v", tt.option, tt.value, err)
			}
			if got != tt.want {
				t.Errorf("normalizeProsody(%q, %q) = %q, want %q", tt.option, tt.value, got, tt.want)
			}
		})
	}
}

func TestFingerprintDeterministic(t *testing.T) {
	a := request{Text: "Hello", Voice: "en-US-GuyNeural", Rate: "+0%", Volume: "+10%", Pitch: "+0Hz"}
	b := request{Text: "Hello", Voice: "en-US-GuyNeural", Rate: "+0%", Volume: "+10%", Pitch: "+0Hz"}

	if a.fingerprint() != b.fingerprint() {
		t.Error("identical requests should share a fingerprint")
	}
	if len(a.fingerprint()) != 64 {
		t.Errorf("fingerprint length = %d, want 64 hex chars", len(a.fingerprint()))
	}
}

func TestFingerprintDistinct(t *testing.T) {
	base := request{Text: "Hello", Voice: "en-US-GuyNeural", Rate: "+0%", Volume: "+0%", Pitch: "+0Hz"}

	variants := []request{
		{Text: "Hello!", Voice: "en-US-GuyNeural", Rate: "+0%", Volume: "+0%", Pitch: "+0Hz"},
		{Text: "Hello", Voice: "en-US-JennyNeural", Rate: "+0%", Volume: "+0%", Pitch: "+0Hz"},
		{Text: "Hello", Voice: "en-US-GuyNeural", Rate: "+10%", Volume: "+0%", Pitch: "+0Hz"},
		{Text: "Hello", Voice: "en-US-GuyNeural", Rate: "+0%", Volume: "-5%", Pitch: "+0Hz"},
		{Text: "Hello", Voice: "en-US-GuyNeural", Rate: "+0%", Volume: "+0%", Pitch: "-50Hz"},
	}

	for i, v := range variants {
		if v.fingerprint() == base.fingerprint() {
			t.Errorf("variant %d collides with base fingerprint", i)
		}
	}
}

func TestFingerprintNoConcatenationCollision(t *testing.T) {
	// Length prefixing must keep ("ab", "c") distinct from ("a", "bc").
	a := request{Text: "ab", Voice: "c"}
	b := request{Text: "a", Voice: "bc"}
	if a.fingerprint() == b.fingerprint() {
		t.Error("field boundaries must be part of the fingerprint")
	}
}
