// File: utils/sheets.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"brightsmile/config"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var (
	sheetsMu     sync.Mutex
	sheetsClient *sheets.Service
)

// GetSheetsClient returns the process-wide Sheets service, building it on
// first use. The mutex makes concurrent first callers wait on a single
// construction instead of racing to build the client twice; only a
// successfully built client is cached.
func GetSheetsClient(ctx context.Context) (*sheets.Service, error) {
	sheetsMu.Lock()
	defer sheetsMu.Unlock()

	if sheetsClient != nil {
		return sheetsClient, nil
	}

	opt, err := sheetsCredentialOption()
	if err != nil {
		return nil, err
	}

	svc, err := sheets.NewService(ctx, opt, option.WithScopes(sheets.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("sheets: failed to build service: %w", err)
	}

	sheetsClient = svc
	return sheetsClient, nil
}

// sheetsCredentialOption prefers the inline GOOGLE_CLIENT_EMAIL +
// GOOGLE_PRIVATE_KEY pair and falls back to the service-account key file.
func sheetsCredentialOption() (option.ClientOption, error) {
	cfg := config.AppConfig

	if cfg.GoogleClientEmail != "" && cfg.GooglePrivateKey != "" {
		creds, err := json.Marshal(map[string]string{
			"type":         "service_account",
			"client_email": cfg.GoogleClientEmail,
			"private_key":  strings.ReplaceAll(cfg.GooglePrivateKey, `\n`, "\n"),
		})
		if err != nil {
			return nil, fmt.Errorf("sheets: failed to encode inline credentials: %w", err)
		}
		return option.WithCredentialsJSON(creds), nil
	}

	if _, err := os.Stat(cfg.GoogleServiceAccountKeyFile); err == nil {
		return option.WithCredentialsFile(cfg.GoogleServiceAccountKeyFile), nil
	}

	return nil, fmt.Errorf("sheets: google credentials missing; set GOOGLE_CLIENT_EMAIL and GOOGLE_PRIVATE_KEY or provide GOOGLE_SERVICE_ACCOUNT_KEY_FILE")
}
