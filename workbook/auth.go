package workbook

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/sheets/v4"
)

// authorize builds an HTTP client from a Google service account key file. The
// pipeline runs unattended so there is no interactive OAuth flow - the key
// file is the only credential.
func authorize(ctx context.Context, credentials string) (*http.Client, error) {
	bytes, err := os.ReadFile(credentials)
	if err != nil {
		return nil, fmt.Errorf("unable to read credentials file (%v)", err)
	}

	config, err := google.JWTConfigFromJSON(bytes, sheets.SpreadsheetsReadonlyScope, drive.DriveMetadataReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("invalid service account credentials (%v)", err)
	}

	return config.Client(ctx), nil
}
