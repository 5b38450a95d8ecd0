package extraction

import "github.com/medwatch-dev/medwatch/database/models"

// The rule tables below are ordered configuration data. Each field uses its
// own tie-break policy (see extraction.go), so the tables stay independent of
// the matching code and can be extended without touching it.

// drugCues are the words that introduce a medication name. The capitalized
// token run following a cue is captured as the drug name.
var drugCues = []string{
	"taking",
	"took",
	"given",
	"administered",
	"prescribed",
	"started",
	"on",
	"after",
}

// eventKeywords is the closed symptom vocabulary. Matching is
// case-insensitive and whole-word; the result is ordered by first occurrence
// in the text, not by position in this table.
var eventKeywords = []string{
	"nausea",
	"headache",
	"rash",
	"vomiting",
	"dizziness",
	"fatigue",
	"fever",
	"diarrhea",
	"itching",
	"swelling",
	"insomnia",
	"palpitations",
	"seizure",
	"tremor",
	"bleeding",
	"chest pain",
	"shortness of breath",
}

// severityRank orders classifications from least to most severe. When several
// cues appear in one report the highest rank wins, regardless of position.
var severityRank = map[models.Severity]int{
	models.SeverityMild:     1,
	models.SeverityModerate: 2,
	models.SeveritySevere:   3,
}

var severityCues = map[string]models.Severity{
	"mild":             models.SeverityMild,
	"slight":           models.SeverityMild,
	"moderate":         models.SeverityModerate,
	"severe":           models.SeveritySevere,
	"critical":         models.SeveritySevere,
	"serious":          models.SeveritySevere,
	"life-threatening": models.SeveritySevere,
}

type outcomeCue struct {
	phrase  string
	outcome models.Outcome
}

// outcomeCues resolve with longest-match-wins, so "fully recovered" beats
// "recovered" and "not recovered" beats "recovered". Equal lengths break by
// earliest position in the text, then by table order.
var outcomeCues = []outcomeCue{
	{"fully recovered", models.OutcomeFullyRecovered},
	{"not recovered", models.OutcomeNotRecovered},
	{"recovered", models.OutcomeRecovered},
	{"resolved", models.OutcomeRecovered},
	{"recovering", models.OutcomeRecovering},
	{"improved", models.OutcomeImproved},
	{"improving", models.OutcomeImproved},
	{"ongoing", models.OutcomeOngoing},
	{"persists", models.OutcomeOngoing},
	{"persisting", models.OutcomeOngoing},
	{"died", models.OutcomeFatal},
	{"death", models.OutcomeFatal},
	{"fatal", models.OutcomeFatal},
	{"passed away", models.OutcomeFatal},
}
