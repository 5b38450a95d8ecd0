package controllers

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/medwatch-dev/medwatch/monitoring"
	"github.com/medwatch-dev/medwatch/shared"
	"github.com/medwatch-dev/medwatch/translation"
)

type TranslationController struct {
	translator shared.OutcomeTranslator
}

func NewTranslationController(translator shared.OutcomeTranslator) *TranslationController {
	return &TranslationController{
		translator: translator,
	}
}

type translateRequest struct {
	Outcome  string `json:"outcome" validate:"required"`
	Language string `json:"language" validate:"required"`
}

type translateResponse struct {
	Original    string `json:"original"`
	Language    string `json:"language"`
	Translation string `json:"translation"`
}

func (c *TranslationController) Translate(ctx shared.Context) error {
	var req translateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to parse request body").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, "missing 'outcome' or 'language' field").WithInternal(err)
	}

	language := strings.ToLower(req.Language)

	translated, err := c.translator.Translate(req.Outcome, language)
	if err != nil {
		if errors.Is(err, translation.ErrTranslationNotFound) {
			monitoring.TranslationLookupsAmount.WithLabelValues(language, "not_found").Inc()
			return echo.NewHTTPError(400, err.Error())
		}
		return err
	}
	monitoring.TranslationLookupsAmount.WithLabelValues(language, "ok").Inc()

	return ctx.JSON(200, translateResponse{
		Original:    req.Outcome,
		Language:    language,
		Translation: translated,
	})
}
