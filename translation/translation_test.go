package translation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	translator := NewDictionaryTranslator()

	t.Run("should translate known outcomes into both target languages", func(t *testing.T) {
		fr, err := translator.Translate("recovered", "fr")
		require.NoError(t, err)
		assert.Equal(t, "Récupéré", fr)

		sw, err := translator.Translate("recovered", "sw")
		require.NoError(t, err)
		assert.Equal(t, "Amepona", sw)
	})

	t.Run("should fail for an unsupported language", func(t *testing.T) {
		_, err := translator.Translate("recovered", "de")
		assert.ErrorIs(t, err, ErrTranslationNotFound)
	})

	t.Run("should fail for an unrecognized outcome", func(t *testing.T) {
		_, err := translator.Translate("feeling great", "fr")
		assert.ErrorIs(t, err, ErrTranslationNotFound)
	})

	t.Run("should match outcome and language case-insensitively", func(t *testing.T) {
		translated, err := translator.Translate("Recovered", "FR")
		require.NoError(t, err)
		assert.Equal(t, "Récupéré", translated)
	})

	t.Run("should cover every canonical outcome in every supported language", func(t *testing.T) {
		outcomes := []string{"recovered", "fully recovered", "recovering", "not recovered", "improved", "ongoing", "fatal", "unknown"}
		for _, outcome := range outcomes {
			for _, lang := range SupportedLanguages {
				translated, err := translator.Translate(outcome, lang)
				require.NoError(t, err, "missing dictionary entry for %s/%s", outcome, lang)
				assert.NotEmpty(t, translated)
			}
		}
	})
}
