package shared

import (
	"github.com/medwatch-dev/medwatch/common"
	"github.com/medwatch-dev/medwatch/database/models"
)

type ReportRepository interface {
	common.Repository[uint, models.Report, DB]
	// ListAll returns every stored report ordered by id ascending,
	// which is equivalent to insertion order.
	ListAll() ([]models.Report, error)
}

type OutcomeTranslator interface {
	// Translate maps a canonical outcome value to its translation in the
	// given target language. Returns translation.ErrTranslationNotFound
	// (wrapped) when the outcome or language is not part of the dictionary.
	Translate(outcome string, language string) (string, error)
}
