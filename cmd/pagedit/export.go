package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/pagedit/editor"
	"github.com/spf13/cobra"
)

var (
	exportPage   string
	exportOut    string
	exportScript string
	exportVars   map[string]string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a page as standalone HTML",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportPage, "page", "", "Page records (JSON); default is the seed page")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file; default is stdout")
	exportCmd.Flags().StringVar(&exportScript, "script", "", "File with a user script to embed")
	exportCmd.Flags().StringToStringVar(&exportVars, "var", nil, "Custom style properties, e.g. --var gap=4px")
}

func runExport(cmd *cobra.Command, args []string) error {
	pg, err := loadPage(exportPage)
	if err != nil {
		return err
	}
	session := editor.NewSession(conf, pg, nil)
	if exportScript != "" {
		script, err := os.ReadFile(exportScript)
		if err != nil {
			return fmt.Errorf("cannot read script: %w", err)
		}
		session.SetScript(string(script))
	}
	for k, v := range exportVars {
		session.SetStyleVar(k, v)
	}
	out, err := session.Export()
	if err != nil {
		return err
	}
	if exportOut == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	}
	return os.WriteFile(exportOut, []byte(out), 0o644)
}
