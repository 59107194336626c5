// Command esparse parses ES5 scripts and prints their ESTree JSON or the
// regenerated source.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/t14raptor/go-esprima/ast"
	"github.com/t14raptor/go-esprima/estree"
	"github.com/t14raptor/go-esprima/generator"
	"github.com/t14raptor/go-esprima/parser"
)

var (
	configPath string
	logLevel   string

	withLoc      bool
	withRange    bool
	withValidate bool
	maxDepth     int
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "esparse",
		Short:        "parse ES5 JavaScript into ESTree",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	parseCmd := &cobra.Command{
		Use:   "parse FILE...",
		Short: "print the ESTree JSON of each file (- reads stdin)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			defer log.Sync()
			return runParse(cfg, log, cmd.InOrStdin(), cmd.OutOrStdout(), args)
		},
	}
	parseCmd.Flags().BoolVar(&withLoc, "loc", false, "include line/column locations")
	parseCmd.Flags().BoolVar(&withRange, "range", false, "include byte ranges")
	parseCmd.Flags().BoolVar(&withValidate, "validate", false, "check the output against the ESTree schema")
	parseCmd.Flags().IntVar(&maxDepth, "max-depth", 0, "maximum nesting depth (0 for no limit)")

	printCmd := &cobra.Command{
		Use:   "print FILE",
		Short: "parse a file and print the regenerated source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			defer log.Sync()
			return runPrint(cfg, log, cmd.InOrStdin(), cmd.OutOrStdout(), args[0])
		},
	}

	root.AddCommand(parseCmd, printCmd)
	return root
}

// setup merges the config file with the flags that were set explicitly.
func setup(cmd *cobra.Command) (config, *zap.Logger, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return cfg, nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("loc") {
		cfg.Locations = withLoc
	}
	if flags.Changed("range") {
		cfg.Ranges = withRange
	}
	if flags.Changed("validate") {
		cfg.Validate = withValidate
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = maxDepth
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, log, nil
}

func parseFile(cfg config, stdin io.Reader, path string) (*ast.Program, error) {
	src, err := readSource(path, stdin)
	if err != nil {
		return nil, err
	}
	opts := []parser.Option{parser.WithMaxDepth(cfg.MaxDepth)}
	if cfg.Locations {
		opts = append(opts, parser.WithSource(path))
	}
	prog, err := parser.ParseFile(src, opts...)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return prog, nil
}

func runParse(cfg config, log *zap.Logger, stdin io.Reader, out io.Writer, paths []string) error {
	opts := estree.Options{Range: cfg.Ranges, Loc: cfg.Locations}
	for _, path := range paths {
		prog, err := parseFile(cfg, stdin, path)
		if err != nil {
			log.Error("parse failed", zap.String("file", path), zap.Error(err))
			return err
		}

		buf, err := estree.MarshalIndent(prog, opts, cfg.Indent)
		if err != nil {
			return errors.Wrap(err, path)
		}
		if cfg.Validate {
			if err := estree.Validate(buf); err != nil {
				log.Error("schema validation failed", zap.String("file", path), zap.Error(err))
				return errors.Wrap(err, path)
			}
		}
		if _, err := fmt.Fprintf(out, "%s\n", buf); err != nil {
			return errors.Wrap(err, "writing output")
		}
		log.Debug("parsed", zap.String("file", path), zap.Int("statements", len(prog.Body)))
	}
	return nil
}

func runPrint(cfg config, log *zap.Logger, stdin io.Reader, out io.Writer, path string) error {
	prog, err := parseFile(cfg, stdin, path)
	if err != nil {
		log.Error("parse failed", zap.String("file", path), zap.Error(err))
		return err
	}
	if _, err := io.WriteString(out, generator.Generate(prog)); err != nil {
		return errors.Wrap(err, "writing output")
	}
	return nil
}
