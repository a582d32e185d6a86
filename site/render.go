package site

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"time"
)

// Renderer generates the static site from a template directory and the CSV
// files in a data directory. The site directory is cleared and recreated on
// every run.
type Renderer struct {
	TemplateDir  string
	TemplateFile string
	DataDir      string
	SiteDir      string
	Labels       map[string]string
	Ignore       []string
	IntroText    string
	MetaContent  string
	Now          func() time.Time
}

// page is the data handed to the template document. IntroText and the
// category labels are trusted HTML from the configuration, not sheet data.
type page struct {
	Lists       []Category
	IntroText   template.HTML
	LastUpdate  string
	MetaContent string
}

func (r Renderer) Render() error {
	if err := os.RemoveAll(r.SiteDir); err != nil {
		return fmt.Errorf("unable to clear site directory '%s' (%v)", r.SiteDir, err)
	}

	if err := os.MkdirAll(r.SiteDir, 0770); err != nil {
		return fmt.Errorf("unable to create site directory '%s' (%v)", r.SiteDir, err)
	}

	if err := r.copyAssets(); err != nil {
		return err
	}

	categories, err := r.categories()
	if err != nil {
		return err
	}

	t, err := template.ParseFiles(filepath.Join(r.TemplateDir, r.TemplateFile))
	if err != nil {
		return fmt.Errorf("unable to parse template '%s' (%v)", r.TemplateFile, err)
	}

	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	data := page{
		Lists:       categories,
		IntroText:   template.HTML(r.IntroText),
		LastUpdate:  now().Format("January 2, 2006"),
		MetaContent: r.MetaContent,
	}

	f, err := os.Create(filepath.Join(r.SiteDir, "index.html"))
	if err != nil {
		return fmt.Errorf("unable to create index.html (%v)", err)
	}

	defer f.Close()

	if err := t.Execute(f, data); err != nil {
		return fmt.Errorf("error rendering template '%s' (%v)", r.TemplateFile, err)
	}

	return nil
}

// copyAssets copies every template directory entry into the site directory
// verbatim, except the template document itself and the ignore list.
// Subdirectories (e.g. css) are copied recursively.
func (r Renderer) copyAssets() error {
	entries, err := os.ReadDir(r.TemplateDir)
	if err != nil {
		return fmt.Errorf("unable to read template directory '%s' (%v)", r.TemplateDir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			dst := filepath.Join(r.SiteDir, entry.Name())
			if err := os.CopyFS(dst, os.DirFS(filepath.Join(r.TemplateDir, entry.Name()))); err != nil {
				return fmt.Errorf("unable to copy '%s' (%v)", entry.Name(), err)
			}

			continue
		}

		if entry.Name() == r.TemplateFile || slices.Contains(r.Ignore, entry.Name()) {
			continue
		}

		if err := copyFile(filepath.Join(r.TemplateDir, entry.Name()), filepath.Join(r.SiteDir, entry.Name())); err != nil {
			return fmt.Errorf("unable to copy '%s' (%v)", entry.Name(), err)
		}
	}

	return nil
}

// categories assembles the ordered category list from the data directory.
// Ordering is the lexicographic order of the source filenames, which the
// ordinal prefix encodes.
func (r Renderer) categories() ([]Category, error) {
	files, err := filepath.Glob(filepath.Join(r.DataDir, "*.csv"))
	if err != nil {
		return nil, err
	}

	sort.Strings(files)

	categories := []Category{}
	for _, file := range files {
		ordinal, key, err := parseFilename(filepath.Base(file))
		if err != nil {
			return nil, err
		}

		records, err := readRecords(file)
		if err != nil {
			return nil, err
		}

		categories = append(categories, Category{
			Ordinal: ordinal,
			Key:     key,
			Label:   label(key, r.Labels),
			Records: records,
		})
	}

	return categories, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}

	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}

	return out.Close()
}
