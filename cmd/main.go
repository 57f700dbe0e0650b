package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/wgomg/textstat/internal/api"
	"github.com/wgomg/textstat/internal/config"
	"github.com/wgomg/textstat/internal/document"
	"github.com/wgomg/textstat/internal/paperless"
	"github.com/wgomg/textstat/internal/pipeline"
	"github.com/wgomg/textstat/internal/report"
	"github.com/wgomg/textstat/internal/stopwords"
	"github.com/wgomg/textstat/internal/utils"
)

// Exit code for a document the analysis rejects as a whole.
const exitInputError = 2

func main() {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log := utils.NewLogger("error", false)
		log.Fatal("Failed to load configuration:", err)
	}
	opts.apply(cfg)
	if err := cfg.Validate(); err != nil {
		log := utils.NewLogger("error", cfg.App.RawBodyLog)
		log.Fatal("Invalid configuration:", err)
	}

	logger := utils.NewLogger(cfg.App.LogLevel, cfg.App.RawBodyLog)
	logger.Debug(nil, "Environment: %s", cfg.App.Env)
	logger.Debug(nil, "Log level: %s", cfg.App.LogLevel)

	provider := stopwords.NewProvider(logger, cfg.StopWords.File)
	runner, err := pipeline.NewRunner(cfg, logger, provider)
	if err != nil {
		logger.Fatal("Failed to create pipeline:", err)
	}

	var paperlessClient *paperless.Client
	if cfg.Paperless.URL != "" {
		paperlessClient, err = paperless.NewClient(cfg, logger)
		if err != nil {
			logger.Fatal("Failed to create Paperless client:", err)
		}
	}

	if opts.serve {
		serve(cfg, logger, runner, paperlessClient)
		return
	}

	if err := analyze(opts, cfg, logger, runner, paperlessClient); err != nil {
		if pipeline.IsInputError(err) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(exitInputError)
		}
		logger.Fatal(err)
	}
}

func analyze(opts *options, cfg *config.Config, logger *utils.Logger, runner *pipeline.Runner, client *paperless.Client) error {
	runID := uuid.NewString()

	req, err := loadRequest(opts, client, runID)
	if err != nil {
		return err
	}

	outcome, err := runner.Run(req, runID)
	if err != nil {
		return err
	}

	if _, err := runner.Export(outcome, cfg.Export.OutputDir, cfg.Export.Format, runID); err != nil {
		return err
	}

	if opts.note {
		if err := client.AddNote(opts.paperlessID, report.Note(outcome.Report), runID); err != nil {
			return fmt.Errorf("adding note to document %d: %w", opts.paperlessID, err)
		}
		logger.Info(&runID, "Added note to document %d", opts.paperlessID)
	}

	fmt.Println(report.Summary(outcome.Report))
	return nil
}

func loadRequest(opts *options, client *paperless.Client, runID string) (pipeline.Request, error) {
	if opts.paperlessID != 0 {
		if client == nil {
			return pipeline.Request{}, fmt.Errorf("--paperless-id needs PAPERLESS_URL and PAPERLESS_TOKEN")
		}
		doc, err := client.GetDocument(opts.paperlessID, runID)
		if err != nil {
			return pipeline.Request{}, fmt.Errorf("fetching document %d: %w", opts.paperlessID, err)
		}
		return pipeline.Request{
			Source:   utils.Truncate(doc.Title, 127),
			Document: document.ParseText(doc.Content),
		}, nil
	}

	content, err := os.ReadFile(opts.input)
	if err != nil {
		return pipeline.Request{}, fmt.Errorf("reading input: %w", err)
	}

	var doc document.Document
	switch opts.inputFormat() {
	case "markdown":
		doc = document.ParseMarkdown(content)
	case "text":
		doc = document.ParseText(string(content))
	default:
		return pipeline.Request{}, fmt.Errorf("unknown input format %q", opts.format)
	}
	return pipeline.Request{Source: opts.input, Document: doc}, nil
}

func serve(cfg *config.Config, logger *utils.Logger, runner *pipeline.Runner, client *paperless.Client) {
	handler := api.NewHandler(logger, runner, client)

	server := &http.Server{
		Addr:              "0.0.0.0:" + cfg.App.ServerPort,
		Handler:           api.NewRouter(handler, cfg.App.CorsOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info(nil, "Starting server on port %s", cfg.App.ServerPort)
	logger.Info(nil, "Endpoints:")
	logger.Info(nil, "  GET  /health")
	logger.Info(nil, "  POST /analyze")
	logger.Info(nil, "  POST /documents/{id}/analyze")
	logger.Fatal(server.ListenAndServe())
}
