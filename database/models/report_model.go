package models

import (
	"time"

	databasetypes "github.com/medwatch-dev/medwatch/database/types"
)

type Severity string

const (
	SeverityUnknown  Severity = "unknown"
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

type Outcome string

const (
	OutcomeUnknown        Outcome = "unknown"
	OutcomeRecovered      Outcome = "recovered"
	OutcomeFullyRecovered Outcome = "fully recovered"
	OutcomeRecovering     Outcome = "recovering"
	OutcomeNotRecovered   Outcome = "not recovered"
	OutcomeImproved       Outcome = "improved"
	OutcomeOngoing        Outcome = "ongoing"
	OutcomeFatal          Outcome = "fatal"
)

// Report is a single submitted adverse-event text and the structured fields
// derived from it. Rows are immutable once stored.
type Report struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"timestamp"`

	// Drug is the best-effort extracted medication name. nil when no cue
	// phrase matched.
	Drug          *string                   `json:"drug" gorm:"type:text"`
	AdverseEvents databasetypes.StringArray `json:"adverse_events" gorm:"type:text"`
	Severity      Severity                  `json:"severity" gorm:"type:text;not null"`
	Outcome       Outcome                   `json:"outcome" gorm:"type:text;not null"`

	// RawText keeps the original input for the audit/history view.
	RawText string `json:"raw_text" gorm:"type:text;not null"`
}

func (m Report) TableName() string {
	return "reports"
}
