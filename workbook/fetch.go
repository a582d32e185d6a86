// Package workbook downloads a Google Sheets workbook, one CSV file per
// sheet, into a local data directory.
package workbook

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Fetcher downloads every sheet of the named workbook to DataDir. The data
// directory is cleared and recreated on every run - there is no incremental
// mode and no partial success.
type Fetcher struct {
	Credentials string
	Workbook    string
	DataDir     string
	Debug       bool
}

func (f Fetcher) Fetch(ctx context.Context) error {
	if err := os.RemoveAll(f.DataDir); err != nil {
		return fmt.Errorf("unable to clear data directory '%s' (%v)", f.DataDir, err)
	}

	if err := os.MkdirAll(f.DataDir, 0770); err != nil {
		return fmt.Errorf("unable to create data directory '%s' (%v)", f.DataDir, err)
	}

	client, err := authorize(ctx, f.Credentials)
	if err != nil {
		return fmt.Errorf("Google Sheets authentication/authorization error (%v)", err)
	}

	gdrive, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return fmt.Errorf("unable to create new Google Drive client (%v)", err)
	}

	google, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return fmt.Errorf("unable to create new Google Sheets client (%v)", err)
	}

	spreadsheetId, err := findWorkbook(ctx, gdrive, f.Workbook)
	if err != nil {
		return err
	}

	if f.Debug {
		log.Printf("%-5s workbook '%s' resolved to spreadsheet ID %s", "DEBUG", f.Workbook, spreadsheetId)
	}

	spreadsheet, err := google.Spreadsheets.Get(spreadsheetId).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("unable to fetch workbook '%s' (%v)", f.Workbook, err)
	}

	for _, sheet := range spreadsheet.Sheets {
		title := sheet.Properties.Title

		log.Printf("%-5s downloading sheet '%s'", "INFO", title)

		response, err := google.Spreadsheets.Values.Get(spreadsheetId, title).Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("unable to retrieve data from sheet '%s' (%v)", title, err)
		}

		file := filepath.Join(f.DataDir, title+".csv")
		if err := writeCSV(file, response); err != nil {
			return fmt.Errorf("error creating CSV file for sheet '%s' (%v)", title, err)
		}
	}

	return nil
}

// findWorkbook resolves a workbook title to a spreadsheet ID using the Drive
// files list. The match is against the exact title.
func findWorkbook(ctx context.Context, gdrive *drive.Service, title string) (string, error) {
	query := fmt.Sprintf("name = '%s' and mimeType = 'application/vnd.google-apps.spreadsheet' and trashed = false",
		strings.ReplaceAll(title, `'`, `\'`))

	list, err := gdrive.Files.List().Q(query).Fields("files(id, name)").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("unable to search for workbook '%s' (%v)", title, err)
	}

	for _, file := range list.Files {
		if file.Name == title {
			return file.Id, nil
		}
	}

	return "", fmt.Errorf("workbook '%s' not found", title)
}

func writeCSV(file string, data *sheets.ValueRange) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}

	defer f.Close()

	return sheetToCSV(f, data)
}
