// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticeui/lattice/metrics"
)

const document = `
viewport: {width: 40, height: 8}
root:
  kind: column
  spacing: 1
  children:
    - {kind: text, content: Hello}
    - kind: button
      padding: [0, 1]
      content: {kind: text, content: OK}
`

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLayout(t *testing.T) {
	doc := strings.Replace(document, "{width: 40, height: 8}", "{width: 200, height: 100}", 1)
	out, err := run(t, "layout", "--backend", "recorder", writeDoc(t, doc))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// Column, text, button and its text.
	require.Len(t, lines, 4)
	assert.Equal(t, "(0,0) 50x41", lines[0])
	assert.Equal(t, "  (0,0) 50x20", lines[1])
	assert.Equal(t, "  (0,21) 22x20", lines[2])
	assert.Equal(t, "    (1,0) 20x20", lines[3])
}

func TestHash(t *testing.T) {
	path := writeDoc(t, document)
	first, err := run(t, "hash", path)
	require.NoError(t, err)
	second, err := run(t, "hash", path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, strings.TrimSpace(first), 16)

	other, err := run(t, "hash", writeDoc(t, strings.Replace(document, "Hello", "Bye", 1)))
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestRender(t *testing.T) {
	path := writeDoc(t, document)
	out := filepath.Join(t.TempDir(), "out.png")
	_, err := run(t, "render", path, "-o", out)
	require.NoError(t, err)
	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())
}

func TestRenderScaled(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "lattice.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("scale: 2\n"), 0o644))
	out, err := run(t, "--config", cfg, "render", writeDoc(t, document), "-o", "-")
	require.NoError(t, err)
	img, err := png.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 80, img.Bounds().Dx())
}

func TestTerm(t *testing.T) {
	out, err := run(t, "term", "--no-color", writeDoc(t, document))
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	assert.Equal(t, "Hello", strings.TrimSpace(lines[0]))
	assert.Contains(t, out, "OK")

	// Not a terminal: --fit keeps the document viewport.
	fitted, err := run(t, "term", "--no-color", "--fit", writeDoc(t, document))
	require.NoError(t, err)
	assert.Equal(t, out, fitted)
	_, ok := terminalSize(new(strings.Builder))
	assert.False(t, ok)
}

func TestInspect(t *testing.T) {
	out, err := run(t, "inspect", "--markdown", writeDoc(t, document))
	require.NoError(t, err)
	assert.Contains(t, out, "# scene.yaml")
	assert.Contains(t, out, "| text | 2 |")
	assert.Contains(t, out, "| button | 1 |")
	assert.Contains(t, out, "| Depth | 2 |")

	out, err = run(t, "inspect", "--style", "notty", writeDoc(t, document))
	require.NoError(t, err)
	assert.Contains(t, out, "scene.yaml")
}

func TestBench(t *testing.T) {
	out, err := run(t, "bench", "--frames", "10", writeDoc(t, document))
	require.NoError(t, err)
	assert.Contains(t, out, "frames: 10\n")
	assert.Contains(t, out, "fresh: 1\n")
	assert.Contains(t, out, "reused: 9\n")

	out, err = run(t, "bench", "--frames", "10", "--drop-cache-every", "5", writeDoc(t, document))
	require.NoError(t, err)
	assert.Contains(t, out, "fresh: 2\n")

	_, err = run(t, "bench", "--frames", "0", writeDoc(t, document))
	assert.Error(t, err)
}

func TestMetricsRouter(t *testing.T) {
	c := metrics.New()
	c.LayoutCached(1)
	srv := httptest.NewServer(newMetricsRouter(c))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, string(body), `lattice_frames_total{status="Reused"} 1`)

	resp, err = http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestErrors(t *testing.T) {
	_, err := run(t, "layout", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = run(t, "layout", "--backend", "gpu", writeDoc(t, document))
	assert.ErrorContains(t, err, "unknown backend")

	_, err = run(t, "--log-level", "loud", "hash", writeDoc(t, document))
	assert.ErrorContains(t, err, "unknown level")

	_, err = run(t, "hash")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "lattice version dev\n", out)
}
