package extraction

import (
	"testing"

	"github.com/medwatch-dev/medwatch/database/models"
	databasetypes "github.com/medwatch-dev/medwatch/database/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	t.Run("should extract all fields from a full report", func(t *testing.T) {
		report := Extract("Patient experienced severe nausea and headache after taking Drug X. Patient recovered.")

		require.NotNil(t, report.Drug)
		assert.Equal(t, "Drug X", *report.Drug)
		assert.Equal(t, databasetypes.StringArray{"nausea", "headache"}, report.AdverseEvents)
		assert.Equal(t, models.SeveritySevere, report.Severity)
		assert.Equal(t, models.OutcomeRecovered, report.Outcome)
	})

	t.Run("should degrade to nil and unknown when no cue matches", func(t *testing.T) {
		report := Extract("the patient reported nothing remarkable")

		assert.Nil(t, report.Drug)
		assert.Empty(t, report.AdverseEvents)
		assert.Equal(t, models.SeverityUnknown, report.Severity)
		assert.Equal(t, models.OutcomeUnknown, report.Outcome)
	})

	t.Run("should keep the raw text", func(t *testing.T) {
		report := Extract("mild rash, ongoing")
		assert.Equal(t, "mild rash, ongoing", report.RawText)
	})
}

func TestExtractDrug(t *testing.T) {
	t.Run("should capture a multi token capitalized name", func(t *testing.T) {
		drug := extractDrug("after taking Drug X. Patient recovered.")
		require.NotNil(t, drug)
		assert.Equal(t, "Drug X", *drug)
	})

	t.Run("should take the first candidate by position", func(t *testing.T) {
		drug := extractDrug("Patient was taking Aspirin and was later given Tylenol.")
		require.NotNil(t, drug)
		assert.Equal(t, "Aspirin", *drug)
	})

	t.Run("should skip cues followed by lowercase tokens", func(t *testing.T) {
		drug := extractDrug("after taking the medication Ibuprofen")
		assert.Nil(t, drug)
	})

	t.Run("should stop the capture at punctuation", func(t *testing.T) {
		drug := extractDrug("started Metformin, Lisinopril and rest")
		require.NotNil(t, drug)
		assert.Equal(t, "Metformin", *drug)
	})

	t.Run("should match cues case-insensitively", func(t *testing.T) {
		drug := extractDrug("Taking Warfarin caused bleeding")
		require.NotNil(t, drug)
		assert.Equal(t, "Warfarin", *drug)
	})

	t.Run("should return nil when no cue exists", func(t *testing.T) {
		assert.Nil(t, extractDrug("Patient felt dizzy all week"))
	})
}

func TestExtractAdverseEvents(t *testing.T) {
	t.Run("should list each keyword once regardless of repetition", func(t *testing.T) {
		events := extractAdverseEvents("nausea in the morning, nausea at night, and more nausea")
		assert.Equal(t, databasetypes.StringArray{"nausea"}, events)
	})

	t.Run("should order by first occurrence in text, not by table order", func(t *testing.T) {
		// rash comes after headache in the keyword table but first in the text
		events := extractAdverseEvents("a rash appeared, then vomiting, then nausea")
		assert.Equal(t, databasetypes.StringArray{"rash", "vomiting", "nausea"}, events)
	})

	t.Run("should match whole words only", func(t *testing.T) {
		events := extractAdverseEvents("the rashomon effect is not a symptom")
		assert.Empty(t, events)
	})

	t.Run("should match multi word keywords", func(t *testing.T) {
		events := extractAdverseEvents("complained about shortness of breath and chest pain")
		assert.Equal(t, databasetypes.StringArray{"shortness of breath", "chest pain"}, events)
	})

	t.Run("should be case-insensitive", func(t *testing.T) {
		events := extractAdverseEvents("SEVERE Headache reported")
		assert.Equal(t, databasetypes.StringArray{"headache"}, events)
	})

	t.Run("should return an empty, non-nil list for no matches", func(t *testing.T) {
		events := extractAdverseEvents("nothing to report")
		assert.NotNil(t, events)
		assert.Len(t, events, 0)
	})
}

func TestExtractSeverity(t *testing.T) {
	t.Run("should prefer the more severe cue regardless of position", func(t *testing.T) {
		assert.Equal(t, models.SeveritySevere, extractSeverity("mild at first, later severe"))
		assert.Equal(t, models.SeveritySevere, extractSeverity("severe at first, later mild"))
		assert.Equal(t, models.SeveritySevere, extractSeverity("moderate, then severe"))
		assert.Equal(t, models.SeverityModerate, extractSeverity("mild nausea and moderate headache"))
	})

	t.Run("should map synonyms onto the closed set", func(t *testing.T) {
		assert.Equal(t, models.SeveritySevere, extractSeverity("a life-threatening reaction"))
		assert.Equal(t, models.SeveritySevere, extractSeverity("patient is in critical condition"))
		assert.Equal(t, models.SeverityMild, extractSeverity("slight discomfort"))
	})

	t.Run("should default to unknown", func(t *testing.T) {
		assert.Equal(t, models.SeverityUnknown, extractSeverity("no qualifier present"))
	})
}

func TestExtractOutcome(t *testing.T) {
	t.Run("should prefer the longest matching cue", func(t *testing.T) {
		assert.Equal(t, models.OutcomeFullyRecovered, extractOutcome("patient recovered, in fact fully recovered"))
		assert.Equal(t, models.OutcomeNotRecovered, extractOutcome("patient has not recovered"))
	})

	t.Run("should match single cues", func(t *testing.T) {
		assert.Equal(t, models.OutcomeRecovered, extractOutcome("Patient recovered."))
		assert.Equal(t, models.OutcomeRecovering, extractOutcome("patient is recovering"))
		assert.Equal(t, models.OutcomeOngoing, extractOutcome("symptoms are ongoing"))
		assert.Equal(t, models.OutcomeOngoing, extractOutcome("the headache persists"))
		assert.Equal(t, models.OutcomeFatal, extractOutcome("the patient died"))
		assert.Equal(t, models.OutcomeFatal, extractOutcome("patient passed away overnight"))
		assert.Equal(t, models.OutcomeImproved, extractOutcome("condition improved"))
	})

	t.Run("should default to unknown", func(t *testing.T) {
		assert.Equal(t, models.OutcomeUnknown, extractOutcome("status unclear"))
	})
}
