// Package predict maps a patient record to a risk label, class probabilities
// and the text shown for them.
package predict

const (
	LabelNoRisk = 0
	LabelRisk   = 1
)

type Severity string

const (
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
)

const (
	WarningMessage = "Warning! You have a high risk of heart disease."
	SuccessMessage = "You are not at risk of heart disease."
)

// Result is the classifier's answer for one record.
type Result struct {
	Label      int     `json:"label"`
	ProbNoRisk float64 `json:"prob_no_risk"`
	ProbRisk   float64 `json:"prob_risk"`
}

func (r Result) AtRisk() bool {
	return r.Label == LabelRisk
}

// Outcome is the styled message for a label.
type Outcome struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

func (r Result) Outcome() Outcome {
	if r.AtRisk() {
		return Outcome{Severity: SeverityWarning, Message: WarningMessage}
	}
	return Outcome{Severity: SeveritySuccess, Message: SuccessMessage}
}
