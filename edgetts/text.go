package edgetts

import (
	"regexp"
	"strings"
)

// maxChunkChars is the forced-split threshold for text with no sentence
// boundary. The service degrades on very long single turns.
const maxChunkChars = 200

const decimalPlaceholder = "\x00DEC\x00"

var (
	decimalPattern = regexp.MustCompile(`(\d)\.(\d)`)
	sentenceEnd    = regexp.MustCompile(`[.!?]`)
	// Any letter or digit in any script; \w would be ASCII-only and drop
	// Cyrillic, CJK, Arabic and other catalog languages wholesale.
	wordChar        = regexp.MustCompile(`[\p{L}\p{N}]`)
	incompatibleRun = regexp.MustCompile("[\x00-\x08\x0b\x0c\x0e-\x1f]")
)

// cleanText strips characters the service rejects (control characters) and
// inline emphasis markers before markup assembly.
func cleanText(text string) string {
	text = incompatibleRun.ReplaceAllString(text, "")
	return strings.ReplaceAll(text, "*", "")
}

// nextSentence extracts the first complete sentence from buf. Decimal points
// inside numbers are protected so "3.14" never splits a sentence. When no
// boundary exists but buf exceeds maxChunkChars, it force-splits at the last
// space. Returns ("", buf) when buf is an incomplete remainder.
func nextSentence(buf string) (sentence, rest string) {
	if buf == "" {
		return "", ""
	}
	safe := decimalPattern.ReplaceAllString(buf, "$1"+decimalPlaceholder+"$2")

	if loc := sentenceEnd.FindStringIndex(safe); loc != nil {
		end := loc[0] + 1
		sentence = restoreDecimals(safe[:end])
		rest = restoreDecimals(safe[end:])
		return strings.TrimSpace(sentence), strings.TrimSpace(rest)
	}

	// Split on rune indices; byte indices could cut a multi-byte rune in
	// half and feed invalid UTF-8 into the markup payload.
	if runes := []rune(safe); len(runes) > maxChunkChars {
		searchArea := runes
		if len(searchArea) > maxChunkChars+20 {
			searchArea = runes[:maxChunkChars+20]
		}
		split := -1
		for i, r := range searchArea {
			if r == ' ' {
				split = i
			}
		}
		if split <= 0 {
			split = maxChunkChars
		}
		sentence = restoreDecimals(string(runes[:split]))
		rest = restoreDecimals(string(runes[split:]))
		return strings.TrimSpace(sentence), strings.TrimSpace(rest)
	}

	return "", buf
}

func restoreDecimals(s string) string {
	return strings.ReplaceAll(s, decimalPlaceholder, ".")
}

// splitSentences breaks cleaned text into speakable chunks, dropping chunks
// with no word characters (bare punctuation synthesizes to silence).
func splitSentences(text string) []string {
	var out []string
	buf := text
	for {
		sentence, rest := nextSentence(buf)
		if sentence == "" {
			break
		}
		if wordChar.MatchString(sentence) {
			out = append(out, sentence)
		}
		buf = rest
	}
	if tail := strings.TrimSpace(buf); tail != "" && wordChar.MatchString(tail) {
		out = append(out, tail)
	}
	return out
}
