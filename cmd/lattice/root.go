// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/latticeui/lattice/config"
	"github.com/latticeui/lattice/internal/logging"
	"github.com/latticeui/lattice/scene"
	"github.com/latticeui/lattice/state"
)

// app is the state shared by subcommands, set up before any of them
// runs.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	store  *state.Store
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), store: state.NewStore()}
	root := &cobra.Command{
		Use:           "lattice",
		Short:         "Lattice lays out and renders widget documents",
		Long:          `Lattice loads widget trees from YAML or JSON documents and lays them out, hashes, renders or benchmarks them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().String("config", "", "Theme and settings file (YAML or JSON)")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides the config file)")

	root.AddCommand(
		newLayoutCmd(a),
		newHashCmd(a),
		newRenderCmd(a),
		newTermCmd(a),
		newInspectCmd(a),
		newBenchCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		a.cfg.LogLevel = lvl
	}
	level, err := a.cfg.Level()
	if err != nil {
		return err
	}
	a.logger = logging.New(cmd.ErrOrStderr(), level)
	return nil
}

// load reads the document at path, binding widget state to the store
// of a.
func (a *app) load(path string) (*scene.Document, error) {
	doc, err := scene.Load(path, scene.NewDecoder(a.store, a.cfg.ButtonStyle()))
	if err != nil {
		return nil, err
	}
	a.logger.Debug("document loaded", "path", path, "viewport", doc.Viewport)
	return doc, nil
}

// Execute runs the lattice command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
