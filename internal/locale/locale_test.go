package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalizer(t *testing.T, def string) *Localizer {
	t.Helper()
	l, err := New(def)
	require.NoError(t, err)
	return l
}

func TestText_MatchesLocale(t *testing.T) {
	l := newTestLocalizer(t, "en")

	tests := []struct {
		locale string
		want   string
	}{
		{"en", "This field is required"},
		{"fr", "Ce champ est obligatoire"},
		{"fr-CH", "Ce champ est obligatoire"},
		{"de-CH", "Dieses Feld ist erforderlich"},
		{"it", "Questo campo è obbligatorio"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, l.Text(tt.locale, "mandatoryField"))
		})
	}
}

func TestText_FallsBackToDefault(t *testing.T) {
	l := newTestLocalizer(t, "fr")

	assert.Equal(t, "Démarrer", l.Text("", "createButton"))
	assert.Equal(t, "Démarrer", l.Text("not a tag!", "createButton"))
}

func TestText_UnknownKey(t *testing.T) {
	l := newTestLocalizer(t, "en")

	assert.Equal(t, "someUnknownKey", l.Text("en", "someUnknownKey"))
	assert.Empty(t, l.Text("en", ""))
}

func TestCatalog_IsComplete(t *testing.T) {
	l := newTestLocalizer(t, "en")

	for key := range messages {
		for _, tag := range supported {
			assert.NotEqual(t, key, l.Text(tag.String(), key), "missing %s for %s", key, tag)
		}
	}
}
