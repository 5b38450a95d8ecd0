// Package translation maps canonical outcome values to fixed translations in
// the supported target languages. This is a dictionary lookup, not machine
// translation.
package translation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/medwatch-dev/medwatch/database/models"
)

var ErrTranslationNotFound = errors.New("translation not found")

// SupportedLanguages lists the target language codes the dictionary covers.
var SupportedLanguages = []string{"fr", "sw"}

var dictionary = map[models.Outcome]map[string]string{
	models.OutcomeRecovered: {
		"fr": "Récupéré",
		"sw": "Amepona",
	},
	models.OutcomeFullyRecovered: {
		"fr": "Complètement rétabli",
		"sw": "Amepona kabisa",
	},
	models.OutcomeRecovering: {
		"fr": "En convalescence",
		"sw": "Anapona",
	},
	models.OutcomeNotRecovered: {
		"fr": "Non rétabli",
		"sw": "Hajapona",
	},
	models.OutcomeImproved: {
		"fr": "Amélioré",
		"sw": "Kupata nafuu",
	},
	models.OutcomeOngoing: {
		"fr": "En cours",
		"sw": "Inaendelea",
	},
	models.OutcomeFatal: {
		"fr": "Fatal",
		"sw": "Mbaya",
	},
	models.OutcomeUnknown: {
		"fr": "Inconnu",
		"sw": "Haijulikani",
	},
}

type dictionaryTranslator struct{}

func NewDictionaryTranslator() *dictionaryTranslator {
	return &dictionaryTranslator{}
}

// Translate looks up the translation for an outcome value. Both arguments are
// matched case-insensitively. An unrecognized outcome or an unsupported
// language returns an error wrapping ErrTranslationNotFound.
func (t *dictionaryTranslator) Translate(outcome string, language string) (string, error) {
	entry, ok := dictionary[models.Outcome(strings.ToLower(strings.TrimSpace(outcome)))]
	if !ok {
		return "", fmt.Errorf("%w: unrecognized outcome %q", ErrTranslationNotFound, outcome)
	}

	translated, ok := entry[strings.ToLower(strings.TrimSpace(language))]
	if !ok {
		return "", fmt.Errorf("%w: unsupported language %q", ErrTranslationNotFound, language)
	}

	return translated, nil
}
