package predict

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const ProbabilityHeading = "Prediction Probability"

// Line is one labelled percentage in the result block.
type Line struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func (l Line) String() string {
	return l.Label + ": " + l.Value
}

// Formatter renders probabilities as percentages with two decimals using
// the number conventions of a locale.
type Formatter struct {
	printer *message.Printer
}

func NewFormatter(locale string) (*Formatter, error) {
	if locale == "" {
		locale = "en"
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &Formatter{printer: message.NewPrinter(tag)}, nil
}

// Percent formats p in [0,1] as "XX.XX%".
func (f *Formatter) Percent(p float64) string {
	return f.printer.Sprintf("%.2f%%", p*100)
}

// Lines returns the risk line followed by the no-risk line.
func (f *Formatter) Lines(r Result) []Line {
	return []Line{
		{Label: "Risk of Heart Disease", Value: f.Percent(r.ProbRisk)},
		{Label: "No Risk", Value: f.Percent(r.ProbNoRisk)},
	}
}
