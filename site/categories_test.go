package site

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseFilename(t *testing.T) {
	tests := []struct {
		filename string
		ordinal  int
		key      string
	}{
		{"1_learning_resources.csv", 1, "learning_resources"},
		{"2_health.csv", 2, "health"},
		{"9_a.csv", 9, "a"},
	}

	for _, test := range tests {
		ordinal, key, err := parseFilename(test.filename)
		if err != nil {
			t.Fatalf("Unexpected error returned from parseFilename('%s') (%v)", test.filename, err)
		}

		if ordinal != test.ordinal {
			t.Errorf("Incorrect ordinal for '%s'\n   expected: %v\n   got:      %v\n", test.filename, test.ordinal, ordinal)
		}

		if key != test.key {
			t.Errorf("Incorrect key for '%s'\n   expected: %s\n   got:      %s\n", test.filename, test.key, key)
		}
	}
}

func TestParseFilenameWithInvalidNames(t *testing.T) {
	tests := []string{
		"learning_resources.csv",
		"10_learning_resources.csv",
		"1-learning_resources.csv",
		"1_.csv",
		"1_learning_resources.tsv",
		"x_learning_resources.csv",
		"",
	}

	for _, filename := range tests {
		if _, _, err := parseFilename(filename); err == nil {
			t.Errorf("Expected error return for invalid filename '%s', got %v", filename, err)
		}
	}
}

func TestReadRecords(t *testing.T) {
	file := filepath.Join(t.TempDir(), "1_learning_resources.csv")
	csv := `title,url
Course,http://x
Workshop,http://y
`

	if err := os.WriteFile(file, []byte(csv), 0660); err != nil {
		t.Fatalf("Unexpected error creating test fixture (%v)", err)
	}

	records, err := readRecords(file)
	if err != nil {
		t.Fatalf("Unexpected error returned from readRecords (%v)", err)
	}

	if len(records) != 2 {
		t.Fatalf("Incorrect number of records\n   expected: %v\n   got:      %v\n", 2, len(records))
	}

	if records[0]["title"] != "Course" || records[0]["url"] != "http://x" {
		t.Errorf("Incorrect first record - got %v", records[0])
	}

	if records[1]["title"] != "Workshop" || records[1]["url"] != "http://y" {
		t.Errorf("Incorrect second record - got %v", records[1])
	}
}

func TestReadRecordsWithShortRows(t *testing.T) {
	file := filepath.Join(t.TempDir(), "1_health.csv")
	csv := `title,url,description
Yoga,http://y
`

	if err := os.WriteFile(file, []byte(csv), 0660); err != nil {
		t.Fatalf("Unexpected error creating test fixture (%v)", err)
	}

	records, err := readRecords(file)
	if err != nil {
		t.Fatalf("Unexpected error returned from readRecords (%v)", err)
	}

	if len(records) != 1 {
		t.Fatalf("Incorrect number of records\n   expected: %v\n   got:      %v\n", 1, len(records))
	}

	if records[0]["description"] != "" {
		t.Errorf("Expected empty 'description' field, got '%s'", records[0]["description"])
	}
}

func TestReadRecordsWithHeaderOnly(t *testing.T) {
	file := filepath.Join(t.TempDir(), "1_health.csv")

	if err := os.WriteFile(file, []byte("title,url\n"), 0660); err != nil {
		t.Fatalf("Unexpected error creating test fixture (%v)", err)
	}

	records, err := readRecords(file)
	if err != nil {
		t.Fatalf("Unexpected error returned from readRecords (%v)", err)
	}

	if len(records) != 0 {
		t.Errorf("Expected no records for header-only file, got %v", records)
	}
}

func TestLabel(t *testing.T) {
	labels := map[string]string{
		"learning_resources": "&#128218; Learning Resources",
	}

	if v := label("learning_resources", labels); v != "&#128218; Learning Resources" {
		t.Errorf("Incorrect label\n   expected: %s\n   got:      %s\n", "&#128218; Learning Resources", v)
	}

	if v := label("gardening", labels); v != "gardening" {
		t.Errorf("Incorrect fallback label\n   expected: %s\n   got:      %s\n", "gardening", v)
	}
}
