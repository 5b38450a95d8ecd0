package translation

import (
	"github.com/medwatch-dev/medwatch/shared"
	"go.uber.org/fx"
)

// Module provides the dictionary translator
var Module = fx.Options(
	fx.Provide(func() shared.OutcomeTranslator {
		return NewDictionaryTranslator()
	}),
)
