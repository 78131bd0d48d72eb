package filter

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// Marker is the annotation every returned description must carry.
const Marker = "(gambar referensi)"

// bannedTerms lists appearance attributes the service must not echo back:
// ethnicity, hair, facial hair, eyebrows, eyelashes and skin-color phrases.
var bannedTerms = []string{
	"tionghoa",
	"pribumi",
	"kaukasia",
	"asia",
	"rambut",
	"rambutnya",
	"berambut",
	"kumis",
	"berkumis",
	"jenggot",
	"janggut",
	"berjenggot",
	"alis",
	"bulu mata",
	"kulit putih",
	"kulit hitam",
	"kulit gelap",
	"kulit sawo matang",
	"kulit kuning langsat",
	"warna kulit",
}

// One compiled whole-word matcher per term. Case-insensitive, word-boundary
// anchored, so a term embedded inside a longer word is left alone.
var bannedPatterns = lo.Map(bannedTerms, func(term string, _ int) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
})

// subjectPattern matches a leading subject phrase ("seorang pria",
// "sekelompok anak", ...) after which the marker reads naturally.
var subjectPattern = regexp.MustCompile(`(?i)^((?:seorang|seseorang|sebuah|seekor|sekelompok)\s+\S+)`)

// Apply sanitizes a raw model description: it redacts banned terms, then
// makes sure the reference-image marker is present. It is total — any input
// comes back lightly modified, never rejected.
func Apply(text string) string {
	return annotate(redact(text))
}

func redact(text string) string {
	for _, re := range bannedPatterns {
		text = re.ReplaceAllString(text, "")
	}
	return text
}

func annotate(text string) string {
	if strings.Contains(text, Marker) {
		return text
	}
	if text == "" {
		return Marker
	}
	if loc := subjectPattern.FindStringIndex(text); loc != nil {
		return text[:loc[1]] + " " + Marker + text[loc[1]:]
	}
	return Marker + " " + text
}
