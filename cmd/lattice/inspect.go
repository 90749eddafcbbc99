// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/latticeui/lattice/scene"
	"github.com/latticeui/lattice/ui"
	"github.com/latticeui/lattice/widget"
)

func newInspectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <document>",
		Short: "Print a report on a document",
		Long:  `Lays out the document and prints a report of its widgets, fingerprint and layout tree, formatted for the terminal.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			style, _ := cmd.Flags().GetString("style")
			raw, _ := cmd.Flags().GetBool("markdown")
			doc, err := a.load(args[0])
			if err != nil {
				return err
			}
			r, err := a.newBackend("headless", doc)
			if err != nil {
				return err
			}
			start := time.Now()
			u := ui.Build(doc.Root, ui.Cache{}, r, doc.Limits(), ui.WithLogger(a.logger))
			report := inspectReport(filepath.Base(args[0]), doc, u, time.Since(start))
			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), report)
				return err
			}
			opt := glamour.WithAutoStyle()
			if style != "auto" {
				opt = glamour.WithStandardStyle(style)
			}
			gr, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(100))
			if err != nil {
				return err
			}
			out, err := gr.Render(report)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().String("style", "auto", "Glamour style: auto, dark, light, notty, ...")
	cmd.Flags().Bool("markdown", false, "Print the report as plain markdown")
	return cmd
}

// inspectReport returns the markdown report of doc and its layout.
func inspectReport(name string, doc *scene.Document, u *ui.UserInterface, d time.Duration) string {
	kinds := map[string]int{}
	depth := 0
	widget.Walk(doc.Root, func(w widget.Widget, dep int) {
		kinds[kindName(w)]++
		depth = max(depth, dep)
	})
	names := make([]string, 0, len(kinds))
	for k := range kinds {
		names = append(names, k)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", name)
	b.WriteString("| Property | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Viewport | %v |\n", doc.Viewport)
	fmt.Fprintf(&b, "| Size | %v |\n", u.Root().Size())
	fmt.Fprintf(&b, "| Fingerprint | `%016x` |\n", u.Fingerprint())
	fmt.Fprintf(&b, "| Depth | %d |\n", depth)
	fmt.Fprintf(&b, "| Layout time | %v |\n\n", d.Round(time.Microsecond))
	b.WriteString("## Widgets\n\n| Kind | Count |\n|---|---|\n")
	for _, k := range names {
		fmt.Fprintf(&b, "| %s | %d |\n", k, kinds[k])
	}
	b.WriteString("\n## Layout\n\n```\n")
	b.WriteString(u.Root().String())
	b.WriteString("```\n")
	return b.String()
}

func kindName(w widget.Widget) string {
	name := fmt.Sprintf("%T", w)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.ToLower(name)
}
