// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the docling-extract CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/docling-extract/internal/convert"
	"github.com/pdiddy/docling-extract/internal/extract"
	"github.com/pdiddy/docling-extract/internal/pdftext"
	"github.com/pdiddy/docling-extract/pkg/types"
)

const usageMessage = "Usage: docling-extract <file_path>"

// errPreflight marks the usage and missing-file failures. Their JSON has
// already been written; main only has to exit non-zero.
var errPreflight = errors.New("preflight check failed")

// newConverter builds the conversion engine. Tests replace it.
var newConverter = convert.New

// readConfig resolves the effective configuration. Tests replace it.
var readConfig = loadConfig

// rootCmd is the base command for the docling-extract CLI.
var rootCmd = &cobra.Command{
	Use:   "docling-extract <file_path>",
	Short: "Extract plain text and metadata from a document as JSON",
	Long: `docling-extract converts one document with the docling engine and prints
a JSON result with the extracted text and page, table and figure metadata.

Text is taken from the first extraction method that succeeds: direct text
export, per-page structured text, Markdown export, and for PDFs a built-in
text-layer reader. The method used is reported as metadata.extraction_method.

The engine runs as a docker or podman container by default, or as a local
wrapper command with --backend command.`,
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runExtract,
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := types.DefaultConfig()

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./docling-extract.yaml or ~/.config/docling-extract/config.yaml)")

	f := rootCmd.Flags()
	f.String("backend", string(defaults.Engine.Backend), "engine backend: container or command")
	f.String("image", defaults.Engine.Image, "docling image used by the container backend")
	f.String("runtime", defaults.Engine.Runtime, "container runtime: auto, docker, or podman")
	f.String("command", defaults.Engine.Command, "docling wrapper executable used by the command backend")
	f.String("log-level", defaults.Log.Level, "stderr log level: debug, info, warn, or error")
	f.Bool("show-config", false, "print the effective configuration as YAML and exit")

	bind := map[string]string{
		"engine.backend": "backend",
		"engine.image":   "image",
		"engine.runtime": "runtime",
		"engine.command": "command",
		"log.level":      "log-level",
	}
	for key, flag := range bind {
		_ = viper.BindPFlag(key, f.Lookup(flag))
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		_ = writePreflight(cmd.OutOrStdout(), usageMessage)
		return errPreflight
	})
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("docling-extract")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "docling-extract"))
		}
	}

	viper.SetEnvPrefix("DOCLING_EXTRACT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

// loadConfig merges defaults, config file, environment and flags.
func loadConfig() (types.Config, error) {
	cfg := types.DefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	return cfg, nil
}

// newLogger writes human-readable diagnostics to stderr. stdout is reserved
// for the JSON result.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.Encoding = "console"
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.DisableStacktrace = true
	return zc.Build()
}

func runExtract(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, cfgErr := readConfig()

	if show, _ := cmd.Flags().GetBool("show-config"); show {
		if cfgErr != nil {
			return cfgErr
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("encoding configuration: %w", err)
		}
		_, err = out.Write(data)
		return err
	}

	if len(args) != 1 {
		_ = writePreflight(out, usageMessage)
		return errPreflight
	}
	path := args[0]
	if _, err := os.Stat(path); err != nil {
		_ = writePreflight(out, "File not found: "+path)
		return errPreflight
	}

	if cfgErr != nil {
		return writeResult(out, types.Failed(path, cfgErr.Error()))
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		logger, _ = newLogger(types.DefaultConfig().Log.Level)
		if logger == nil {
			logger = zap.NewNop()
		}
		logger.Warn("falling back to default log level", zap.Error(err))
	}
	defer func() { _ = logger.Sync() }()
	if used := viper.ConfigFileUsed(); used != "" {
		logger.Debug("using config file", zap.String("path", used))
	}

	return writeResult(out, process(cfg, path, logger))
}

// process builds the engine for cfg and extracts path. An engine that cannot
// be started is reported like any other conversion failure.
func process(cfg types.Config, path string, logger *zap.Logger) types.ExtractionResult {
	conv, err := newConverter(cfg.Engine)
	if err != nil {
		logger.Debug("engine unavailable", zap.String("backend", string(cfg.Engine.Backend)), zap.Error(err))
		return types.Failed(path, err.Error())
	}
	return extract.New(pdftext.Reader{}, logger).Process(conv, path)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errPreflight) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
