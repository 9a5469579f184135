// Package graphviz renders .dot architecture diagrams to PDF by shelling
// out to the Graphviz `dot` binary.
package graphviz

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// EnsureInstalled checks that the `dot` command is available in PATH.
func EnsureInstalled() error {
	if _, err := exec.LookPath("dot"); err != nil {
		return fmt.Errorf("graphviz is not installed or `dot` is not in PATH: %w", err)
	}
	return nil
}

// OutputPath returns the PDF path for a .dot file under outDir.
func OutputPath(dotPath, outDir string) string {
	stem := strings.TrimSuffix(filepath.Base(dotPath), filepath.Ext(dotPath))
	return filepath.Join(outDir, stem+".pdf")
}

// RenderFile renders one .dot file to a PDF under outDir and returns the
// generated path.
func RenderFile(ctx context.Context, dotPath, outDir string) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}

	pdfPath := OutputPath(dotPath, outDir)
	cmd := exec.CommandContext(ctx, "dot", "-Tpdf", dotPath, "-o", pdfPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("rendering %s: %w: %s", dotPath, err, strings.TrimSpace(string(out)))
	}
	return pdfPath, nil
}

// FindDotFiles lists the .dot files under dir, optionally recursing into
// subdirectories. Results are sorted for stable output.
func FindDotFiles(dir string, recursive bool) ([]string, error) {
	var paths []string

	if recursive {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && filepath.Ext(path) == ".dot" {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if !e.IsDir() && filepath.Ext(e.Name()) == ".dot" {
				paths = append(paths, filepath.Join(dir, e.Name()))
			}
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// RenderDir renders every .dot file under inDir to PDFs under outDir and
// returns the generated paths.
func RenderDir(ctx context.Context, inDir, outDir string, recursive bool) ([]string, error) {
	dotFiles, err := FindDotFiles(inDir, recursive)
	if err != nil {
		return nil, err
	}

	rendered := make([]string, 0, len(dotFiles))
	for _, dotPath := range dotFiles {
		pdfPath, err := RenderFile(ctx, dotPath, outDir)
		if err != nil {
			return rendered, err
		}
		rendered = append(rendered, pdfPath)
	}
	return rendered, nil
}
