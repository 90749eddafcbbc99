// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	xterm "golang.org/x/term"

	"github.com/latticeui/lattice/f32"
	"github.com/latticeui/lattice/renderer/headless"
	"github.com/latticeui/lattice/renderer/term"
	"github.com/latticeui/lattice/ui"
)

func newRenderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <document>",
		Short: "Render a document to a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("output")
			doc, err := a.load(args[0])
			if err != nil {
				return err
			}
			br, err := a.newBackend("headless", doc)
			if err != nil {
				return err
			}
			r := br.(*headless.Renderer)
			r.Fill(color.NRGBA(a.cfg.Theme.Background))
			u := ui.Build(doc.Root, ui.Cache{}, r, doc.Limits(), ui.WithLogger(a.logger))
			u.Draw(r, a.cfg.Style(), doc.Cursor)

			var w io.Writer = cmd.OutOrStdout()
			if out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err := r.EncodePNG(w); err != nil {
				return err
			}
			a.logger.Info("rendered", "output", out, "size", r.Image().Bounds().Size())
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "out.png", "Output file, - for standard output")
	return cmd
}

func newTermCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "term <document>",
		Short: "Render a document in the terminal",
		Long:  `Renders the document into a grid of terminal cells, one cell per dp of the viewport.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			fit, _ := cmd.Flags().GetBool("fit")
			doc, err := a.load(args[0])
			if err != nil {
				return err
			}
			if fit {
				if size, ok := terminalSize(cmd.OutOrStdout()); ok {
					doc.Viewport = size
				} else {
					a.logger.Debug("output is not a terminal, keeping viewport", "viewport", doc.Viewport)
				}
			}
			br, err := a.newBackend("term", doc)
			if err != nil {
				return err
			}
			s := br.(*term.Screen)
			u := ui.Build(doc.Root, ui.Cache{}, s, doc.Limits(), ui.WithLogger(a.logger))
			u.Draw(s, a.cfg.Style(), doc.Cursor)
			profile := termenv.EnvColorProfile()
			if noColor {
				profile = termenv.Ascii
			}
			return s.Render(cmd.OutOrStdout(), profile)
		},
	}
	cmd.Flags().Bool("no-color", false, "Disable colors")
	cmd.Flags().Bool("fit", false, "Size the viewport to the terminal")
	return cmd
}

// terminalSize returns the size in cells of the terminal w writes to.
func terminalSize(w io.Writer) (f32.Size, bool) {
	f, ok := w.(*os.File)
	if !ok || !xterm.IsTerminal(int(f.Fd())) {
		return f32.Size{}, false
	}
	cols, rows, err := xterm.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 || rows <= 0 {
		return f32.Size{}, false
	}
	// Leave the last row for the prompt.
	return f32.Sz(float32(cols), float32(max(rows-1, 1))), true
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of lattice",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lattice version %s\n", version)
		},
	}
}

// version is set at link time with -ldflags "-X main.version=...".
var version = "dev"
