package edgetts

import "strings"

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&apos;",
	`"`, "&quot;",
)

// buildSSML renders the markup payload for one synthesis turn. Prosody
// attributes are emitted only when they differ from the neutral defaults so
// the common case stays as small as possible. Pure function.
func buildSSML(text, voice, rate, volume, pitch string) string {
	var b strings.Builder
	b.WriteString(`<speak version='1.0' xmlns='http://www.w3.org/2001/10/synthesis' xml:lang='en-US'>`)
	b.WriteString(`<voice name='`)
	b.WriteString(voice)
	b.WriteString(`'>`)

	var attrs []string
	if rate != "" && rate != DefaultRate {
		attrs = append(attrs, "rate='"+rate+"'")
	}
	if volume != "" && volume != DefaultVolume {
		attrs = append(attrs, "volume='"+volume+"'")
	}
	if pitch != "" && pitch != DefaultPitch {
		attrs = append(attrs, "pitch='"+pitch+"'")
	}

	if len(attrs) > 0 {
		b.WriteString("<prosody ")
		b.WriteString(strings.Join(attrs, " "))
		b.WriteString(">")
	}
	b.WriteString(xmlEscaper.Replace(text))
	if len(attrs) > 0 {
		b.WriteString("</prosody>")
	}

	b.WriteString("</voice></speak>")
	return b.String()
}
