package bucket

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
)

const defaultContentType = "application/octet-stream"

// Publisher uploads every file under SiteDir to a Store, keyed by the file's
// path relative to SiteDir. Files in the Ignore list are never uploaded; the
// first upload failure aborts the run.
type Publisher struct {
	SiteDir      string
	ContentTypes map[string]string
	Ignore       []string
}

func (p Publisher) Publish(ctx context.Context, store Store) error {
	return p.upload(ctx, store, p.SiteDir, "")
}

// upload walks one directory level, recursing into subdirectories with the
// prefix extended by the subdirectory name plus separator.
func (p Publisher) upload(ctx context.Context, store Store, dir string, prefix string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("unable to read site directory '%s' (%v)", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			if err := p.upload(ctx, store, filepath.Join(dir, entry.Name()), prefix+entry.Name()+"/"); err != nil {
				return err
			}

			continue
		}

		if slices.Contains(p.Ignore, entry.Name()) {
			continue
		}

		key := prefix + entry.Name()

		contentType, ok := p.ContentTypes[filepath.Ext(entry.Name())]
		if !ok {
			contentType = defaultContentType
		}

		if err := p.put(ctx, store, filepath.Join(dir, entry.Name()), key, contentType); err != nil {
			return err
		}

		log.Printf("%-5s uploaded '%s' (%s)", "INFO", key, contentType)
	}

	return nil
}

func (p Publisher) put(ctx context.Context, store Store, file string, key string, contentType string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("unable to open '%s' (%v)", file, err)
	}

	defer f.Close()

	if err := store.Put(ctx, key, contentType, f); err != nil {
		return fmt.Errorf("unable to upload '%s' (%v)", key, err)
	}

	return nil
}
