package filter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply_RedactsWholeWordsOnly(t *testing.T) {
	out := Apply("Alisa menaikkan alis sambil tersenyum")

	assert.NotContains(t, strings.ToLower(out), " alis ")
	assert.Contains(t, out, "Alisa")
}

func TestApply_RedactionIsCaseInsensitive(t *testing.T) {
	out := Apply("KUMIS dan Jenggot terlihat jelas")

	assert.NotContains(t, strings.ToLower(out), "kumis")
	assert.NotContains(t, strings.ToLower(out), "jenggot")
}

func TestApply_RedactsMultiWordPhrases(t *testing.T) {
	out := Apply("Orang itu memiliki kulit sawo matang dan bulu mata lentik")

	assert.NotContains(t, strings.ToLower(out), "kulit sawo matang")
	assert.NotContains(t, strings.ToLower(out), "bulu mata")
}

func TestApply_InsertsMarkerAfterSubjectPhrase(t *testing.T) {
	out := Apply("Seorang pria dengan kumis tebal tersenyum")

	assert.Equal(t, "Seorang pria (gambar referensi) dengan  tebal tersenyum", out)
}

func TestApply_PrependsMarkerWithoutSubjectPhrase(t *testing.T) {
	out := Apply("Pemandangan gunung saat senja")

	assert.Equal(t, "(gambar referensi) Pemandangan gunung saat senja", out)
}

func TestApply_KeepsExistingMarker(t *testing.T) {
	in := "Seorang wanita (gambar referensi) sedang membaca"

	out := Apply(in)

	assert.Equal(t, in, out)
	assert.Equal(t, 1, strings.Count(out, Marker))
}

func TestApply_MarkerAppearsExactlyOnce(t *testing.T) {
	for _, in := range []string{
		"",
		"Seekor kucing tidur di sofa",
		"sekelompok anak bermain bola",
		"Foto close-up bunga matahari",
	} {
		out := Apply(in)
		assert.Equalf(t, 1, strings.Count(out, Marker), "input %q", in)
	}
}

func TestApply_IsIdempotent(t *testing.T) {
	once := Apply("Seorang pria dengan kumis tebal tersenyum")

	assert.Equal(t, once, Apply(once))
}

func TestApply_EmptyInput(t *testing.T) {
	assert.Equal(t, Marker, Apply(""))
}
