package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/pagedit/config"
	"github.com/npillmayer/pagedit/page"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

var (
	configPath string
	debug      bool
	conf       *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "pagedit",
	Short:         "Work with pages of the visual page editor",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupTracing(debug)
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		conf = c
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (YAML)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Trace on debug level")
}

// setupTracing routes all tracers to the Go logger.
func setupTracing(debug bool) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	level := tracing.LevelError
	if debug {
		level = tracing.LevelDebug
	}
	tracing.Select("pagedit").SetTraceLevel(level)
}

// loadPage decodes a page from a JSON file. Without a path the seed page
// is returned.
func loadPage(path string) (*page.Page, error) {
	if path == "" {
		return page.New(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open page: %w", err)
	}
	defer f.Close()
	return page.Decode(f)
}

func optionalArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
