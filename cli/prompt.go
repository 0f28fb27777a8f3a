package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"heartcheck/patient"
)

// Prompter asks for one field value at a time.
type Prompter interface {
	Input(ctx context.Context, field patient.Field) (string, error)
	Select(ctx context.Context, field patient.Field) (string, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Input(ctx context.Context, field patient.Field) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: field.Label,
		Help:    field.Help,
		Default: field.Default,
	}
	if err := survey.AskOne(prompt, &out, survey.WithValidator(numberValidator(field))); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (surveyPrompter) Select(ctx context.Context, field patient.Field) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Select{
		Message: field.Label,
		Options: field.Options,
		Default: field.Default,
		Help:    field.Help,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

// numberValidator rejects input outside the field's range before the form
// is submitted.
func numberValidator(field patient.Field) survey.Validator {
	return func(ans interface{}) error {
		s, ok := ans.(string)
		if !ok {
			return fmt.Errorf("unexpected answer type %T", ans)
		}
		var v float64
		if field.Kind == patient.KindInteger {
			n, err := strconv.Atoi(s)
			if err != nil {
				return errors.New("enter a whole number")
			}
			v = float64(n)
		} else {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return errors.New("enter a number")
			}
			v = f
		}
		if v < field.Min || v > field.Max {
			return fmt.Errorf("enter a value between %g and %g", field.Min, field.Max)
		}
		return nil
	}
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return context.Canceled
	}
	return err
}
