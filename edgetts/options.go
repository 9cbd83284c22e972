package edgetts

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
)

// Neutral prosody values. Attributes at these values are omitted from the
// generated payload.
const (
	DefaultRate   = "+0%"
	DefaultVolume = "+0%"
	DefaultPitch  = "+0Hz"
)

// Options carries per-request synthesis settings. Zero values mean the
// neutral defaults. Rate and Volume are signed percentages ("+10%", "-25%"),
// Pitch is a signed Hz delta ("-50Hz") or a signed percentage. Bare integers
// ("10", "-5") are accepted and coerced to signed percentages (Hz for pitch).
//
// Extra carries options this service does not support. Any entry there is
// rejected with InvalidOptionError; the legacy style, styledegree, role and
// contour options in particular are never silently reinterpreted.
type Options struct {
	Voice  string
	Rate   string
	Volume string
	Pitch  string

	// StrictVoices disables the fallback to the client's default voice when
	// the requested voice is not in the catalog.
	StrictVoices bool

	Extra map[string]string
}

var (
	percentPattern = regexp.MustCompile(`^[+-]\d+(\.\d+)?%$`)
	hertzPattern   = regexp.MustCompile(`^[+-]\d+(\.\d+)?Hz$`)
)

// removed service options; kept by name so the rejection message can say why
var legacyOptions = map[string]bool{
	"style":       true,
	"styledegree": true,
	"role":        true,
	"contour":     true,
}

// normalizeProsody validates value for the named option and canonicalizes
// bare integers into the signed form the service expects.
func normalizeProsody(option, value, def string) (string, error) {
	if value == "" {
		return def, nil
	}
	if n, err := strconv.Atoi(value); err == nil {
		suffix := "%"
		if option == "pitch" {
			suffix = "Hz"
		}
		return fmt.Sprintf("%+d%s", n, suffix), nil
	}
	if percentPattern.MatchString(value) {
		return value, nil
	}
	if option == "pitch" && hertzPattern.MatchString(value) {
		return value, nil
	}
	reason := "want a signed percentage like +10% or a bare integer"
	if option == "pitch" {
		reason = "want a signed Hz delta like -50Hz, a signed percentage or a bare integer"
	}
	return "", &InvalidOptionError{Option: option, Value: value, Reason: reason}
}

// request is the validated, canonical form of one synthesis call. It is
// immutable once built and is what the cache fingerprint is derived from.
type request struct {
	Text   string
	Voice  string
	Rate   string
	Volume string
	Pitch  string
}

// fingerprint returns a deterministic hash over the canonicalized request
// tuple, used as the cache key. Fields are length-prefixed so distinct
// tuples can never collide by concatenation.
func (r request) fingerprint() string {
	h := sha256.New()
	for _, s := range []string{r.Text, r.Voice, r.Rate, r.Volume, r.Pitch} {
		fmt.Fprintf(h, "%d:%s", len(s), s)
	}
	return hex.EncodeToString(h.Sum(nil))
}
