// Package export writes rendered programs to disk and runs the OpenSCAD
// renderer on them.
package export

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/signadot/go-solid/debug"
	"github.com/signadot/go-solid/format"
	"github.com/signadot/go-solid/scad"

	"github.com/zeebo/blake3"
)

// ErrRenderer is returned when the renderer exits unsuccessfully.
var ErrRenderer = errors.New("renderer failed")

// DefaultBinary is the renderer run when Exporter.Binary is empty.
const DefaultBinary = "openscad"

// Exporter writes <Dir>/<name>.scad and renders it to each requested
// format.
//
// A digest of the program is kept next to it in <name>.scad.b3. When the
// digest matches and every requested output exists, rendering is skipped
// unless Force is set.
type Exporter struct {
	Dir     string
	Binary  string
	Log     *slog.Logger
	Force   bool
	Options []scad.Option
}

// Result lists the files an export produced.
type Result struct {
	Program string
	Outputs []string
	Skipped bool
}

func (e *Exporter) log() *slog.Logger {
	if e.Log == nil {
		return slog.Default()
	}
	return e.Log
}

func (e *Exporter) binary() string {
	if e.Binary == "" {
		return DefaultBinary
	}
	return e.Binary
}

// Digest returns the hex BLAKE3 digest of a program.
func Digest(program string) string {
	sum := blake3.Sum256([]byte(program))
	return hex.EncodeToString(sum[:])
}

// Export renders v and writes the program and one file per format.
func (e *Exporter) Export(ctx context.Context, name string, v scad.Scad, formats ...format.Format) (Result, error) {
	dir := e.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, err
	}
	stem := filepath.Join(dir, name)
	res := Result{Program: stem + ".scad"}
	for _, f := range formats {
		res.Outputs = append(res.Outputs, stem+f.Suffix())
	}

	program := scad.ToScad(v, e.Options...)
	digest := Digest(program)
	digestPath := res.Program + ".b3"
	if !e.Force && e.upToDate(digestPath, digest, res.Outputs) {
		e.log().Info("up to date", "program", res.Program)
		res.Skipped = true
		return res, nil
	}

	e.log().Info("writing", "program", res.Program)
	if err := os.WriteFile(res.Program, []byte(program), 0o644); err != nil {
		return Result{}, err
	}
	// A stale digest must not outlive a failed render.
	if err := os.Remove(digestPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Result{}, err
	}
	for i, f := range formats {
		if err := e.render(ctx, res.Program, res.Outputs[i], f); err != nil {
			return Result{}, err
		}
	}
	if err := os.WriteFile(digestPath, []byte(digest+"\n"), 0o644); err != nil {
		return Result{}, err
	}
	return res, nil
}

func (e *Exporter) upToDate(digestPath, digest string, outputs []string) bool {
	d, err := os.ReadFile(digestPath)
	if err != nil || strings.TrimSpace(string(d)) != digest {
		return false
	}
	for _, out := range outputs {
		if _, err := os.Stat(out); err != nil {
			return false
		}
	}
	return true
}

func (e *Exporter) render(ctx context.Context, program, out string, f format.Format) error {
	args := []string{"-o", "-", "--export-format", f.String(), "--render", "true", program}
	if debug.Export() {
		debug.Logf("export: %s %s\n", e.binary(), strings.Join(args, " "))
	}
	e.log().Info("rendering", "output", out)
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.binary(), args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s %s: %w (stderr: %s)", ErrRenderer,
			e.binary(), f, err, strings.TrimSpace(stderr.String()))
	}
	return os.WriteFile(out, stdout.Bytes(), 0o644)
}
