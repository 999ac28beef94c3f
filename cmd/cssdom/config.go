package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yacobolo/cssdom"
	"github.com/yacobolo/cssdom/internal/report"
	"github.com/yacobolo/cssdom/writer"
)

const defaultConfigPath = ".cssdom.yaml"

var defaultPaths = []string{"**/*.css"}

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}
	return loadFlags(cmd.Flags())
}

// loadFlags merges the flags the user set explicitly. Unset flags are left
// out so their defaults never shadow the config file.
func loadFlags(fs *pflag.FlagSet) error {
	if err := k.Load(posflag.Provider(fs, ".", nil), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}
	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("CSSDOM_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}
	return nil
}

// envKey maps an environment variable to a config key. The first
// underscore separates the section, the remaining ones become dashes:
//
//	CSSDOM_VERBOSE                      -> verbose
//	CSSDOM_CHECK_OUTPUT_FORMAT          -> check.output-format
//	CSSDOM_WRITE_REMOVE_UNNECESSARY_CODE -> write.remove-unnecessary-code
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, "CSSDOM_"))
	section, rest, ok := strings.Cut(s, "_")
	if !ok {
		return s
	}
	return section + "." + strings.ReplaceAll(rest, "_", "-")
}

// buildSettings constructs the writer policy from the write.* keys.
func buildSettings() (writer.Settings, error) {
	version, err := writer.ParseVersion(getStringWithFallback("target", "write.version", "3.0"))
	if err != nil {
		return writer.Settings{}, err
	}

	s := writer.NewSettings(version, getBoolWithFallback("optimized", "write.optimized", false))
	s.RemoveUnnecessaryCode = getBoolWithFallback("remove-unnecessary-code", "write.remove-unnecessary-code", false)
	s.WriteSupportsRules = getBoolWithFallback("supports-rules", "write.supports-rules", true)
	s.WriteMediaRules = getBoolWithFallback("media-rules", "write.media-rules", true)
	s.WriteFontFaceRules = getBoolWithFallback("font-face-rules", "write.font-face-rules", true)
	s.WriteImportRules = getBoolWithFallback("import-rules", "write.import-rules", true)
	s.QuoteURLs = getBoolWithFallback("quote-urls", "write.quote-urls", false)
	if k.Exists("indent") || k.Exists("write.indent") {
		s.IndentUnit = getStringWithFallback("indent", "write.indent", writer.DefaultIndentUnit)
	}
	return s, nil
}

// buildFormatConfig constructs the library's FormatConfig from koanf state.
// Positional args take the place of the configured paths.
func buildFormatConfig(args []string, log *zap.Logger) (cssdom.FormatConfig, error) {
	settings, err := buildSettings()
	if err != nil {
		return cssdom.FormatConfig{}, err
	}
	return cssdom.FormatConfig{
		Patterns:  getPaths(args, "format.paths"),
		BaseDir:   getStringWithFallback("base-dir", "format.base-dir", "."),
		OutputDir: getStringWithFallback("output-dir", "format.output-dir", ""),
		Out:       os.Stdout,
		Settings:  settings,
		Logger:    log,
	}, nil
}

// buildCheckConfig constructs the library's CheckConfig from koanf state.
func buildCheckConfig(args []string, log *zap.Logger) (cssdom.CheckConfig, error) {
	version, err := writer.ParseVersion(getStringWithFallback("target", "write.version", "3.0"))
	if err != nil {
		return cssdom.CheckConfig{}, err
	}
	return cssdom.CheckConfig{
		Patterns: getPaths(args, "check.paths"),
		Version:  version,
		Logger:   log,
	}, nil
}

// buildReportOptions constructs the issue reporter options.
func buildReportOptions() report.Options {
	return report.Options{
		UseColors:       getBoolWithFallback("color", "color", false),
		PrintLines:      getBoolWithFallback("print-lines", "check.print-lines", true),
		PrintLinterName: getBoolWithFallback("print-linter-name", "check.print-linter-name", true),
	}
}

// buildLogger returns a console logger writing to stderr: debug level with
// --verbose, warnings otherwise and nothing at all with --quiet.
func buildLogger() *zap.Logger {
	if getBoolWithFallback("quiet", "quiet", false) {
		return zap.NewNop()
	}
	level := zapcore.WarnLevel
	if getBoolWithFallback("verbose", "verbose", false) {
		level = zapcore.DebugLevel
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	if report.ShouldUseColors(getBoolWithFallback("color", "color", false)) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), level)
	return zap.New(core)
}

// getPaths prefers positional args, then the flag, then the config key.
func getPaths(args []string, configKey string) []string {
	if len(args) > 0 {
		return args
	}
	if paths := k.Strings("paths"); len(paths) > 0 {
		return paths
	}
	if paths := k.Strings(configKey); len(paths) > 0 {
		return paths
	}
	return defaultPaths
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
