package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const settingsPath = "/api/client-config"

// Settings are the calendar export options published by the server.
type Settings struct {
	CalendarName string `json:"calendar_name"`
	Timezone     string `json:"timezone"`
	ProductID    string `json:"product_id"`
}

// Apply copies the settings onto cfg. An unknown timezone is an error and leaves
// cfg unchanged.
func (st Settings) Apply(cfg *Config) error {
	var loc *time.Location
	if st.Timezone != "" {
		l, err := time.LoadLocation(st.Timezone)
		if err != nil {
			return fmt.Errorf("timezone %q: %w", st.Timezone, err)
		}
		loc = l
	}
	if st.CalendarName != "" {
		cfg.CalendarName = st.CalendarName
	}
	if st.ProductID != "" {
		cfg.ProductID = st.ProductID
	}
	cfg.Location = loc
	return nil
}

// FetchSettings reads the export settings from the server.
func FetchSettings(ctx context.Context, httpClient *http.Client, baseURL string) (Settings, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimSuffix(baseURL, "/")+settingsPath, nil)
	if err != nil {
		return Settings{}, err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return Settings{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Settings{}, fmt.Errorf("settings: unexpected status %d", resp.StatusCode)
	}

	var st Settings
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		return Settings{}, fmt.Errorf("settings: decode: %w", err)
	}
	return st, nil
}
