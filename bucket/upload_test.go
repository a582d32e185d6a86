package bucket

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type object struct {
	key         string
	contentType string
	body        string
}

// fakeStore records uploads in order and optionally fails on a given key.
type fakeStore struct {
	objects []object
	fail    string
}

func (s *fakeStore) Put(ctx context.Context, key string, contentType string, body io.Reader) error {
	if key == s.fail {
		return fmt.Errorf("upload failed")
	}

	bytes, err := io.ReadAll(body)
	if err != nil {
		return err
	}

	s.objects = append(s.objects, object{key, contentType, string(bytes)})

	return nil
}

func (s *fakeStore) keys() []string {
	keys := []string{}
	for _, o := range s.objects {
		keys = append(keys, o.key)
	}

	return keys
}

func testSite(t *testing.T) string {
	site := t.TempDir()

	fixtures := map[string]string{
		"index.html":     "<html></html>",
		"robots.txt":     "User-agent: *\n",
		"favicon.jpg":    "jpg",
		".DS_Store":      "junk",
		"css/styles.css": "body {}",
	}

	for name, content := range fixtures {
		file := filepath.Join(site, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(file), 0770))
		require.NoError(t, os.WriteFile(file, []byte(content), 0660))
	}

	return site
}

func testPublisher(site string) Publisher {
	return Publisher{
		SiteDir: site,
		ContentTypes: map[string]string{
			".css":  "text/css",
			".html": "text/html",
			".jpg":  "image/jpeg",
		},
		Ignore: []string{"template.html", ".DS_Store"},
	}
}

func TestPublish(t *testing.T) {
	store := fakeStore{}
	p := testPublisher(testSite(t))

	require.NoError(t, p.Publish(context.Background(), &store))

	assert.ElementsMatch(t, []string{"index.html", "robots.txt", "favicon.jpg", "css/styles.css"}, store.keys())

	for _, o := range store.objects {
		switch o.key {
		case "index.html":
			assert.Equal(t, "text/html", o.contentType)
			assert.Equal(t, "<html></html>", o.body)
		case "css/styles.css":
			assert.Equal(t, "text/css", o.contentType)
		case "favicon.jpg":
			assert.Equal(t, "image/jpeg", o.contentType)
		case "robots.txt":
			assert.Equal(t, "application/octet-stream", o.contentType)
		}
	}
}

func TestPublishNeverUploadsIgnoredFiles(t *testing.T) {
	store := fakeStore{}
	p := testPublisher(testSite(t))

	require.NoError(t, p.Publish(context.Background(), &store))

	assert.NotContains(t, store.keys(), ".DS_Store")
}

func TestPublishAbortsOnFirstFailure(t *testing.T) {
	store := fakeStore{fail: "css/styles.css"}
	p := testPublisher(testSite(t))

	err := p.Publish(context.Background(), &store)

	assert.ErrorContains(t, err, "css/styles.css")
}

func TestPublishWithNestedDirectories(t *testing.T) {
	site := testSite(t)
	file := filepath.Join(site, "img", "banners", "header.jpg")
	require.NoError(t, os.MkdirAll(filepath.Dir(file), 0770))
	require.NoError(t, os.WriteFile(file, []byte("jpg"), 0660))

	store := fakeStore{}
	p := testPublisher(site)

	require.NoError(t, p.Publish(context.Background(), &store))

	assert.Contains(t, store.keys(), "img/banners/header.jpg")
}
