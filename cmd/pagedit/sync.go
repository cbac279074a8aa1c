package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/pagedit/dom"
	"github.com/npillmayer/pagedit/editor"
	"github.com/npillmayer/pagedit/page"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"
)

var (
	syncSurface  string
	syncWriteDOM string
)

var syncCmd = &cobra.Command{
	Use:   "sync <file.html>",
	Short: "Derive page records from an HTML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.Flags().StringVar(&syncSurface, "surface", dom.SurfaceID, "Id of the surface element; empty for <body>")
	syncCmd.Flags().StringVar(&syncWriteDOM, "write-dom", "", "Write the document, with identifiers assigned, to this file")
}

func runSync(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	doc, err := html.Parse(f)
	if err != nil {
		return fmt.Errorf("cannot parse %s: %w", args[0], err)
	}
	surface, err := dom.SurfaceFromDocument(doc, syncSurface)
	if err != nil {
		return err
	}
	session := editor.NewSession(conf, page.Empty(), surface)
	fmt.Fprintf(cmd.ErrOrStderr(), "synchronized: %s\n", session.LastReport())
	if err := session.Page().Encode(cmd.OutOrStdout()); err != nil {
		return err
	}
	if syncWriteDOM == "" {
		return nil
	}
	session.Detach()
	out, err := os.Create(syncWriteDOM)
	if err != nil {
		return err
	}
	if err := surface.RenderDocument(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
