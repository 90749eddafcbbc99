// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/latticeui/lattice/layout"
	"github.com/latticeui/lattice/ui"
	"github.com/latticeui/lattice/widget"
)

func newLayoutCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout <document>",
		Short: "Print the layout tree of a document",
		Long:  `Lays out the document and prints one line per node: its offset relative to its parent and its size.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, _ := cmd.Flags().GetString("backend")
			doc, err := a.load(args[0])
			if err != nil {
				return err
			}
			r, err := a.newBackend(backend, doc)
			if err != nil {
				return err
			}
			u := ui.Build(doc.Root, ui.Cache{}, r, doc.Limits(), ui.WithLogger(a.logger))
			return layout.Fprint(cmd.OutOrStdout(), u.Root())
		},
	}
	cmd.Flags().String("backend", "headless", fmt.Sprintf("Renderer measuring text, one of %v", backends))
	return cmd
}

func newHashCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hash <document>",
		Short: "Print the structural fingerprint of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.load(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%016x\n", widget.Fingerprint(doc.Root))
			return err
		},
	}
}
