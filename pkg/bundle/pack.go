package bundle

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/bft-labs/memload/internal/domain"
)

// AssemblyExtensions lists the file extensions PackDir collects.
var AssemblyExtensions = []string{".dll", ".exe"}

// maxParallelReads bounds concurrent file reads in PackDir.
const maxParallelReads = 8

// PackDir builds a bundle for domain id from the assembly files directly inside
// dir. Assemblies are named by file name and ordered by name. Files are read
// concurrently.
func PackDir(ctx context.Context, dir string, id domain.DomainID) (*Bundle, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, de := range dirEntries {
		if de.IsDir() || !isAssemblyFile(de.Name()) {
			continue
		}
		names = append(names, de.Name())
	}
	sort.Strings(names)

	images := make([][]byte, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelReads)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				return err
			}
			images[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	b := New(id)
	for i, name := range names {
		b.Add(name, images[i])
	}
	return b, nil
}

func isAssemblyFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range AssemblyExtensions {
		if ext == want {
			return true
		}
	}
	return false
}
