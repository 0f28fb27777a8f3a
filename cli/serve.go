package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"heartcheck/config"
	qhttp "heartcheck/http"
	"heartcheck/logging"
	"heartcheck/ml"
	"heartcheck/predict"
	"heartcheck/ui"
)

func newServeCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the prediction page",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}
	cmd.Flags().Int("port", 0, "HTTP port")
	_ = opts.v.BindPFlag("http.port", cmd.Flags().Lookup("port"))
	return cmd
}

func runServe(ctx context.Context, cfg *config.Config) error {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	app, err := buildApp(cfg, logger)
	if err != nil {
		logger.Error("startup failed", zap.Error(err))
		return err
	}

	server := qhttp.NewServer(qhttp.ServerConfig{
		Port:           cfg.HTTP.Port,
		Timeout:        cfg.HTTP.Timeout,
		MaxBodyBytes:   cfg.HTTP.MaxBodyBytes,
		RateLimit:      cfg.HTTP.RateLimit,
		RateBurst:      cfg.HTTP.RateBurst,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
	}, app)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	if err := server.Stop(); err != nil {
		logger.Error("shutdown", zap.Error(err))
		return err
	}
	logger.Info("exiting")
	return nil
}

// buildApp loads the model and header image. Either failing is fatal: the
// page is never served without them.
func buildApp(cfg *config.Config, logger *zap.Logger) (*qhttp.App, error) {
	model, err := ml.LoadModel(cfg.Model.Type, cfg.Model.Path)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", cfg.Model.Path, err)
	}
	logger.Info("model loaded",
		zap.String("path", cfg.Model.Path),
		zap.String("type", model.Type()),
		zap.Int("features", model.Encoder().Width()),
	)

	adapter, err := predict.NewAdapter(model)
	if err != nil {
		return nil, err
	}

	header, err := ui.LoadImage(cfg.UI.HeaderImage)
	if err != nil {
		return nil, err
	}

	formatter, err := predict.NewFormatter(cfg.UI.Locale)
	if err != nil {
		return nil, err
	}

	renderer, err := ui.NewRenderer()
	if err != nil {
		return nil, err
	}

	return &qhttp.App{
		Adapter:     adapter,
		Formatter:   formatter,
		Renderer:    renderer,
		Header:      header,
		Title:       cfg.UI.Title,
		Description: ui.RenderMarkdown(ui.DefaultDescription),
		Logger:      logger,
	}, nil
}
