// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/latticeui/lattice/metrics"
	"github.com/latticeui/lattice/scene"
	"github.com/latticeui/lattice/text"
	"github.com/latticeui/lattice/ui"
)

// frameCounter counts frames by layout status.
type frameCounter struct {
	fresh, reused int
	layout        time.Duration
}

func (c *frameCounter) LayoutCached(uint64) {
	c.reused++
}

func (c *frameCounter) LayoutComputed(_ uint64, d time.Duration) {
	c.fresh++
	c.layout += d
}

func newBenchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench <document>",
		Short: "Run frames of a document and report layout cache statistics",
		Long: `Rebuilds the widget tree of the document for every frame, as an application would,
and reports how many frames reused the layout of the previous frame.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			frames, _ := cmd.Flags().GetInt("frames")
			dropEvery, _ := cmd.Flags().GetInt("drop-cache-every")
			listen, _ := cmd.Flags().GetString("listen")
			backend, _ := cmd.Flags().GetString("backend")
			if frames <= 0 {
				return fmt.Errorf("frames must be positive, got %d", frames)
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			collector := metrics.New()
			counter := new(frameCounter)
			dec := scene.NewDecoder(a.store, a.cfg.ButtonStyle())
			var (
				cache ui.Cache
				r     text.Renderer
			)
			start := time.Now()
			for i := 0; i < frames; i++ {
				a.store.Begin()
				doc, err := scene.Parse(data, dec)
				if err != nil {
					return fmt.Errorf("%s: %w", args[0], err)
				}
				if r == nil {
					if r, err = a.newBackend(backend, doc); err != nil {
						return err
					}
				}
				if dropEvery > 0 && i%dropEvery == 0 {
					cache = ui.Cache{}
				}
				u := ui.Build(doc.Root, cache, r, doc.Limits(),
					ui.WithLogger(a.logger),
					ui.WithObserver(collector),
					ui.WithObserver(counter),
				)
				u.Draw(r, a.cfg.Style(), doc.Cursor)
				cache = u.Into()
				if n := a.store.End(); n > 0 {
					a.logger.Debug("state dropped", "frame", i, "entries", n)
				}
			}
			elapsed := time.Since(start)
			fmt.Fprintf(cmd.OutOrStdout(), "frames: %d\nfresh: %d\nreused: %d\nlayout: %v\ntotal: %v\n",
				frames, counter.fresh, counter.reused, counter.layout.Round(time.Microsecond), elapsed.Round(time.Microsecond))
			if listen == "" {
				return nil
			}
			return serveMetrics(cmd.Context(), a, listen, collector)
		},
	}
	cmd.Flags().Int("frames", 100, "Number of frames to run")
	cmd.Flags().Int("drop-cache-every", 0, "Discard the layout cache every N frames, 0 never")
	cmd.Flags().String("listen", "", "Serve the metrics at this address after the run, until interrupted")
	cmd.Flags().String("backend", "recorder", fmt.Sprintf("Renderer, one of %v", backends))
	return cmd
}

// newMetricsRouter routes /metrics to the collector and /healthz to a
// liveness probe.
func newMetricsRouter(c *metrics.Collector) http.Handler {
	r := chi.NewRouter()
	r.Handle("/metrics", c.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
	})
	return r
}

func serveMetrics(ctx context.Context, a *app, addr string, c *metrics.Collector) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	srv := &http.Server{
		Addr:              addr,
		Handler:           newMetricsRouter(c),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errs := make(chan error, 1)
	go func() {
		a.logger.Info("serving metrics", "addr", addr)
		errs <- srv.ListenAndServe()
	}()
	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}
	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdown); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
