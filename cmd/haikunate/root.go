package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/haikunator/pkg/config"
	"github.com/dmitrymomot/haikunator/pkg/haikunator"
	"github.com/dmitrymomot/haikunator/pkg/logger"
	"github.com/dmitrymomot/haikunator/pkg/wordlist"
)

var errInvalidCount = errors.New("count must be at least 1")

type options struct {
	count       int
	envFiles    []string
	words       string
	delimiter   string
	tokenLength int
	hex         bool
	chars       string
	seed        uint64
	logLevel    string
	logFormat   string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "haikunate",
		Short: "Generate heroku-like random names",
		Long: `Haikunate prints memorable random names such as "misty-river-4821".

Defaults come from HAIKUNATOR_* environment variables (and a .env file in
the working directory); flags override them.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, stdout, stderr)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.count, "count", "n", 1, "number of names to generate")
	f.StringSliceVar(&opts.envFiles, "env-file", nil, "additional .env files to load before reading configuration")
	f.StringVar(&opts.words, "words", "", "YAML file with custom adjectives and/or nouns")
	f.StringVarP(&opts.delimiter, "delimiter", "d", "-", "delimiter between name segments")
	f.IntVarP(&opts.tokenLength, "token-length", "l", 4, "number of token characters, 0 drops the token")
	f.BoolVar(&opts.hex, "hex", false, "draw the token from lowercase hex digits")
	f.StringVar(&opts.chars, "chars", "0123456789", "token alphabet")
	f.Uint64Var(&opts.seed, "seed", 0, "seed for reproducible output, 0 means random")
	f.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	f.StringVar(&opts.logFormat, "log-format", string(logger.FormatText), "log format: text or json")

	return cmd
}

func run(cmd *cobra.Command, opts *options, stdout, stderr io.Writer) error {
	level, err := logger.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	format, err := logger.ParseFormat(opts.logFormat)
	if err != nil {
		return err
	}
	log := logger.New(
		logger.WithOutput(stderr),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithAttr(logger.Component("haikunate")),
	)

	if opts.count < 1 {
		return fmt.Errorf("%w: got %d", errInvalidCount, opts.count)
	}

	if len(opts.envFiles) > 0 {
		if err := config.LoadEnv(opts.envFiles...); err != nil {
			log.Error("loading env files", logger.Error(err))
			return err
		}
	}

	var cfg haikunator.Config
	if err := config.ForceReload(&cfg); err != nil {
		log.Error("parsing configuration", logger.Error(err))
		return err
	}
	applyFlags(cmd, opts, &cfg)

	params := cfg.Params()
	if opts.words != "" {
		lists, err := wordlist.Load(opts.words)
		if err != nil {
			log.Error("loading word list", logger.Path(opts.words), logger.Error(err))
			return err
		}
		lists.Apply(&params)
	}

	h, err := haikunator.New(params)
	if err != nil {
		return err
	}

	log.Debug("generator configured",
		slog.Int("adjectives", len(params.Adjectives)),
		slog.Int("nouns", len(params.Nouns)),
		slog.String("delimiter", params.Delimiter),
		slog.Int("token_length", params.TokenLength),
		slog.Bool("token_hex", params.TokenHex),
		slog.Bool("seeded", cfg.Seed != 0),
	)

	for range opts.count {
		if _, err := fmt.Fprintln(stdout, h.Haikunate()); err != nil {
			return err
		}
	}
	log.Debug("names generated", logger.Count(opts.count))
	return nil
}

// applyFlags overrides cfg with the flags set on the command line.
func applyFlags(cmd *cobra.Command, opts *options, cfg *haikunator.Config) {
	f := cmd.Flags()
	if f.Changed("delimiter") {
		cfg.Delimiter = opts.delimiter
	}
	if f.Changed("token-length") {
		cfg.TokenLength = opts.tokenLength
	}
	if f.Changed("hex") {
		cfg.TokenHex = opts.hex
	}
	if f.Changed("chars") {
		cfg.TokenChars = opts.chars
	}
	if f.Changed("seed") {
		cfg.Seed = opts.seed
	}
}
