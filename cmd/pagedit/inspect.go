package main

import (
	"fmt"

	"github.com/npillmayer/pagedit/dom/domdbg"
	"github.com/npillmayer/pagedit/editor"
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree [page.json]",
	Short: "Print the record tree of a page",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pg, err := loadPage(optionalArg(args, 0))
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), pg.Dump())
		return err
	},
}

var graphCmd = &cobra.Command{
	Use:   "graph [page.json]",
	Short: "Print the materialized DOM of a page in GraphViz DOT format",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pg, err := loadPage(optionalArg(args, 0))
		if err != nil {
			return err
		}
		session := editor.NewSession(conf, pg, nil)
		return domdbg.ToGraphViz(session.Surface(), cmd.OutOrStdout(), nil)
	},
}

var propsCmd = &cobra.Command{
	Use:   "props <id> [page.json]",
	Short: "Show the property panel for an element of a page",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pg, err := loadPage(optionalArg(args, 1))
		if err != nil {
			return err
		}
		session := editor.NewSession(conf, pg, nil)
		el := session.Surface().FindByDataID(args[0])
		if el == nil {
			return fmt.Errorf("no element with id %q", args[0])
		}
		session.Click(el.HTMLNode())
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, session.Panel().Info())
		for _, c := range session.Panel().Controls() {
			d := c.Descriptor()
			fmt.Fprintf(w, "  %-20s %-8s %s%s\n", d.Label, d.Kind, c.Value(), d.Unit)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(treeCmd, graphCmd, propsCmd)
}
