package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/wgomg/textstat/internal/config"
	"github.com/wgomg/textstat/internal/stopwords"
)

// options are the command-line flags. Flags left unset keep the value
// loaded from the environment.
type options struct {
	flagSet *pflag.FlagSet

	input        string
	format       string
	paperlessID  int
	note         bool
	language     string
	stopWords    string
	keywords     string
	cap          int
	outputDir    string
	exportFormat string
	serve        bool
}

func parseOptions(args []string) (*options, error) {
	opts := &options{}

	flagSet := pflag.NewFlagSet("textstat", pflag.ContinueOnError)
	flagSet.StringVarP(&opts.input, "input", "i", "", "document to analyze (plain text, one paragraph per line, or Markdown)")
	flagSet.StringVar(&opts.format, "format", "", "input format: text or markdown (default: from the file extension)")
	flagSet.IntVar(&opts.paperlessID, "paperless-id", 0, "analyze this Paperless document instead of --input")
	flagSet.BoolVar(&opts.note, "note", false, "attach a result digest to the Paperless document")
	flagSet.StringVar(&opts.language, "language", "",
		fmt.Sprintf("stop-word language: %s or %s", strings.Join(stopwords.Languages(), ", "), stopwords.Auto))
	flagSet.StringVar(&opts.stopWords, "stopwords", "", "JSONC file with extra stop words")
	flagSet.StringVar(&opts.keywords, "keywords", "", "YAML file mapping keyword to root")
	flagSet.IntVar(&opts.cap, "cap", 0, "number of keywords to analyze")
	flagSet.StringVarP(&opts.outputDir, "output-dir", "o", "", "directory for exported sheets")
	flagSet.StringVar(&opts.exportFormat, "export-format", "", "sheet format: csv, json or cbor")
	flagSet.BoolVar(&opts.serve, "serve", false, "start the HTTP server instead of a one-shot run")
	opts.flagSet = flagSet

	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}
	if extra := flagSet.Args(); len(extra) > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(extra, " "))
	}
	return opts, opts.validate()
}

func (o *options) validate() error {
	if o.serve {
		return nil
	}
	if (o.input == "") == (o.paperlessID == 0) {
		return fmt.Errorf("exactly one of --input or --paperless-id is required")
	}
	if o.note && o.paperlessID == 0 {
		return fmt.Errorf("--note requires --paperless-id")
	}
	return nil
}

// apply copies the flags that were set onto cfg.
func (o *options) apply(cfg *config.Config) {
	changed := o.flagSet.Changed
	if changed("language") {
		cfg.StopWords.Language = o.language
	}
	if changed("stopwords") {
		cfg.StopWords.File = o.stopWords
	}
	if changed("keywords") {
		cfg.Frequency.KeywordsFile = o.keywords
	}
	if changed("cap") {
		cfg.Frequency.Cap = o.cap
	}
	if changed("output-dir") {
		cfg.Export.OutputDir = o.outputDir
	}
	if changed("export-format") {
		cfg.Export.Format = strings.ToLower(o.exportFormat)
	}
}

// inputFormat is --format, or markdown for .md files and text otherwise.
func (o *options) inputFormat() string {
	if o.format != "" {
		return strings.ToLower(o.format)
	}
	switch strings.ToLower(filepath.Ext(o.input)) {
	case ".md", ".markdown":
		return "markdown"
	default:
		return "text"
	}
}
