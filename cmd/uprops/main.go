// Command uprops is the interactive query tool for the properties and
// normalization stores: one-shot subcommands for scripting, a liner-backed
// REPL for interactive exploration, and a tview "browse" TUI for walking
// the code-point space block by block.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/icu4g/ucore/config"
	"github.com/icu4g/ucore/unorm"
	"github.com/icu4g/ucore/upservice"
	"github.com/icu4g/ucore/uprops"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "uprops:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string
	var propsPath string
	var normPath string

	root := &cobra.Command{
		Use:   "uprops",
		Short: "Query Unicode character properties and normalization forms",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file (default: platform config dir)")
	root.PersistentFlags().StringVar(&propsPath, "props", "", "override the configured properties data path")
	root.PersistentFlags().StringVar(&normPath, "norm", "", "override the configured normalization data path")

	loadSvc := func() (*upservice.Service, *config.Config, error) {
		return loadService(configPath, propsPath, normPath)
	}

	root.AddCommand(charCmd(loadSvc))
	root.AddCommand(normalizeCmd(loadSvc))
	root.AddCommand(quickCheckCmd(loadSvc))
	root.AddCommand(replCmd(loadSvc))
	root.AddCommand(browseCmd(loadSvc))

	return root
}

// loadService resolves the config (explicit path, or the platform default)
// and loads whichever of the properties/normalization images it names,
// applying any --props/--norm overrides. Either store may be left nil —
// upservice.Service reports a clear error per-query rather than refusing
// to start, so "uprops char" works without normalization data loaded and
// vice versa.
func loadService(configPath, propsOverride, normOverride string) (*upservice.Service, *config.Config, error) {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	propsPath := cfg.Data.PropertiesPath
	if propsOverride != "" {
		propsPath = propsOverride
	}
	normPath := cfg.Data.NormalizationPath
	if normOverride != "" {
		normPath = normOverride
	}

	var propsStore *uprops.Store
	if data, err := os.ReadFile(propsPath); err == nil {
		propsStore, err = uprops.Load(data)
		if err != nil {
			return nil, nil, fmt.Errorf("loading properties image %s: %w", propsPath, err)
		}
	}

	var normStore *unorm.Store
	if data, err := os.ReadFile(normPath); err == nil {
		normStore, err = unorm.Load(data)
		if err != nil {
			return nil, nil, fmt.Errorf("loading normalization image %s: %w", normPath, err)
		}
	}

	return upservice.New(propsStore, normStore), cfg, nil
}
