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
	"github.com/yacobolo/csscontrast/internal/contrast"
)

var k = koanf.New(".")

// checkSettings is everything a check run needs, resolved from koanf state
type checkSettings struct {
	Config contrast.Config
	Output contrast.OutputOptions
	Quiet  bool
}

// loadConfig fills k from .csscontrast.yaml, CSSCONTRAST_* and then the parsed flags,
// later sources overriding earlier ones.
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".csscontrast.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// Flags last: posflag only lets an unchanged flag's default fill a key nothing else set
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads the YAML file (if present) and the environment.
// A missing file is not an error.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("CSSCONTRAST_", ".", func(s string) string {
		// Env names map onto the flag keys: CSSCONTRAST_RESOLVE_ALL -> resolve-all
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CSSCONTRAST_")),
			"_", "-",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildCheckSettings constructs the library configuration from koanf state.
func buildCheckSettings() (checkSettings, error) {
	level, err := contrast.ParseLevel(getString("level", string(contrast.LevelAA)))
	if err != nil {
		return checkSettings{}, err
	}

	return checkSettings{
		Config: contrast.Config{
			Root:             getString("root", "."),
			Output:           getString("output", contrast.DefaultOutput),
			Exclude:          k.Strings("exclude"),
			RespectGitignore: getBool("respect-gitignore", false),
			ResolveAll:       getBool("resolve-all", false),
		},
		Output: contrast.OutputOptions{
			Format:  contrast.DetermineOutputFormat(getString("format", string(contrast.OutputSummary))),
			Colors:  getBool("color", false),
			Verbose: getBool("verbose", false),
			Strict:  getBool("strict", false),
			Level:   level,
		},
		Quiet: getBool("quiet", false),
	}, nil
}

// getString returns the key's value, or the default when unset or empty.
func getString(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getBool returns the key's value, or the default when unset.
func getBool(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}
