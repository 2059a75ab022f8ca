package repository

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"storefront/internal/entity"
)

// ErrNotFound is returned when a keyed lookup matches no record.
var ErrNotFound = errors.New("record not found")

// CatalogRepository persists the product catalog as one comma-separated
// record per line.
type CatalogRepository struct {
	path string
}

// NewCatalogRepository creates a catalog repository backed by the given file.
func NewCatalogRepository(path string) *CatalogRepository {
	return &CatalogRepository{path: path}
}

// Load reads the whole catalog. A missing file yields an empty catalog; any
// malformed record fails the load.
func (r *CatalogRepository) Load(ctx context.Context) (*entity.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	catalog := entity.NewCatalog()
	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return catalog, nil
		}
		return nil, fmt.Errorf("opening catalog file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		product, err := parseProduct(line)
		if err != nil {
			return nil, fmt.Errorf("parsing catalog record: %w", err)
		}
		catalog.Add(product)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	return catalog, nil
}

// Save rewrites the whole catalog file. The write goes to a temporary file
// first and is renamed into place so a crash mid-write cannot truncate the
// existing file.
func (r *CatalogRepository) Save(ctx context.Context, catalog *entity.Catalog) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder
	for _, p := range catalog.Products() {
		b.WriteString(formatProduct(p))
		b.WriteByte('\n')
	}
	return writeAtomic(r.path, []byte(b.String()))
}

// writeAtomic writes data to a sibling temp file and renames it over path.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
