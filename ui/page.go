// Package ui renders the single prediction page.
package ui

import (
	"html/template"
	"net/url"
	"strconv"

	"heartcheck/patient"
	"heartcheck/predict"
)

const (
	HeaderImagePath = "/static/header"
	StylesheetPath  = "/static/style.css"
	ActionLabel     = "Predict Heart Disease"
)

// Widget is one form control with its current value.
type Widget struct {
	patient.Field
	Value string
	Error string
}

func (w Widget) Selected(option string) bool {
	return w.Value == option
}

// ResultView is the block shown after a prediction.
type ResultView struct {
	Outcome predict.Outcome
	Heading string
	Lines   []predict.Line
}

// Page is everything the template needs. Result is nil while idle.
type Page struct {
	Title       string
	Description template.HTML
	HeaderURL   string
	Action      string
	Top         []Widget
	Left        []Widget
	Right       []Widget
	Result      *ResultView
	Failure     string
}

// NewPage lays out the widgets, filling them from values and falling back to
// field defaults for anything missing.
func NewPage(title string, description template.HTML, values url.Values, fieldErrors map[string]string) Page {
	page := Page{
		Title:       title,
		Description: description,
		HeaderURL:   HeaderImagePath,
		Action:      ActionLabel,
	}
	for _, field := range patient.Fields() {
		w := Widget{Field: field, Value: field.Default}
		if v, ok := values[field.Name]; ok && len(v) > 0 {
			w.Value = v[0]
		}
		if fieldErrors != nil {
			w.Error = fieldErrors[field.Name]
		}
		switch field.Group {
		case patient.GroupTop:
			page.Top = append(page.Top, w)
		case patient.GroupLeft:
			page.Left = append(page.Left, w)
		default:
			page.Right = append(page.Right, w)
		}
	}
	return page
}

// WithResult attaches the prediction block for result.
func (p Page) WithResult(result predict.Result, formatter *predict.Formatter) Page {
	p.Result = &ResultView{
		Outcome: result.Outcome(),
		Heading: predict.ProbabilityHeading,
		Lines:   formatter.Lines(result),
	}
	return p
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
