package cli

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"heartcheck/config"
	"heartcheck/logging"
	"heartcheck/ml"
	"heartcheck/patient"
	"heartcheck/predict"
)

func newPredictCommand(opts *options) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict heart disease risk for one patient",
		Long: `Predict heart disease risk for one patient record.

With --input the record is read as JSON keyed by column name ("-" reads
stdin). Without it every field is asked for interactively, starting from
the same defaults the web form shows.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log)
			if err != nil {
				return err
			}
			defer logger.Sync()

			adapter, formatter, err := buildPredictor(cfg)
			if err != nil {
				logger.Error("startup failed", zap.Error(err))
				return err
			}

			var rec patient.Record
			if input != "" {
				rec, err = readRecord(cmd.InOrStdin(), input)
			} else {
				rec, err = askRecord(cmd.Context(), opts.prompter)
			}
			if err != nil {
				return err
			}

			result, err := adapter.Predict(cmd.Context(), rec)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), result, formatter)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", `JSON patient record file, "-" for stdin`)
	return cmd
}

func buildPredictor(cfg *config.Config) (*predict.Adapter, *predict.Formatter, error) {
	model, err := ml.LoadModel(cfg.Model.Type, cfg.Model.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("load model %s: %w", cfg.Model.Path, err)
	}
	adapter, err := predict.NewAdapter(model)
	if err != nil {
		return nil, nil, err
	}
	formatter, err := predict.NewFormatter(cfg.UI.Locale)
	if err != nil {
		return nil, nil, err
	}
	return adapter, formatter, nil
}

func readRecord(stdin io.Reader, path string) (patient.Record, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return patient.Record{}, fmt.Errorf("read patient record: %w", err)
	}
	return patient.FromJSON(data)
}

// askRecord walks the fields in page order and checks the answers the same
// way a form submission is checked.
func askRecord(ctx context.Context, prompter Prompter) (patient.Record, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	values := url.Values{}
	for _, field := range patient.Fields() {
		var (
			answer string
			err    error
		)
		if field.Numeric() {
			answer, err = prompter.Input(ctx, field)
		} else {
			answer, err = prompter.Select(ctx, field)
		}
		if err != nil {
			return patient.Record{}, err
		}
		values.Set(field.Name, answer)
	}
	return patient.FromForm(values)
}

func writeResult(w io.Writer, result predict.Result, formatter *predict.Formatter) error {
	outcome := result.Outcome()
	if _, err := fmt.Fprintf(w, "%s\n\n%s\n", outcome.Message, predict.ProbabilityHeading); err != nil {
		return err
	}
	for _, line := range formatter.Lines(result) {
		if _, err := fmt.Fprintln(w, line.String()); err != nil {
			return err
		}
	}
	return nil
}
