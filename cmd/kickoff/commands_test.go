package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mmcdole/kickoff/internal/config"
)

const sampleBody = `[
  {"id":"W6BOzpK2","name":"Real Madrid","sport":{"id":1,"name":"Football"},
   "defaultCountry":{"id":200,"name":"Spain"},"images":[{"path":"logo.png","usageId":2}]}
]`

// newTestServer serves sampleBody and records the type-ids of each request
func newTestServer(t *testing.T) (*httptest.Server, func() []string) {
	t.Helper()
	var mu sync.Mutex
	var typeIDs []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		typeIDs = append(typeIDs, r.URL.Query().Get("type-ids"))
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, sampleBody)
	}))
	t.Cleanup(srv.Close)

	return srv, func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), typeIDs...)
	}
}

func writeConfig(t *testing.T, endpoint string) string {
	t.Helper()
	dir := t.TempDir()
	cfg := fmt.Sprintf(`api:
  endpoint: %s
  rate_limit: 0
history:
  enabled: true
  path: %s
logging:
  file: %s
  level: DEBUG
`, endpoint, filepath.Join(dir, "history.db"), filepath.Join(dir, "kickoff.log"))

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestSearchAndHistoryCommands(t *testing.T) {
	srv, typeIDs := newTestServer(t)
	cfgPath := writeConfig(t, srv.URL)

	out, err := execute(t, "--config", cfgPath, "search", "real", "madrid", "--json", "--category", "teams")
	require.NoError(t, err)

	var results []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	require.Equal(t, "Real Madrid", results[0]["name"])
	require.Equal(t, "https://www.livesport.cz/res/image/data/logo.png", results[0]["image_url"])
	require.Equal(t, []string{"2,3,4"}, typeIDs())

	out, err = execute(t, "--config", cfgPath, "history")
	require.NoError(t, err)
	require.Contains(t, out, "real madrid")
	require.Contains(t, out, "Teams")

	out, err = execute(t, "--config", cfgPath, "history", "--clear")
	require.NoError(t, err)
	require.Contains(t, out, "History cleared.")
}

func TestSearchCommandRejectsShortText(t *testing.T) {
	srv, typeIDs := newTestServer(t)
	cfgPath := writeConfig(t, srv.URL)

	_, err := execute(t, "--config", cfgPath, "search", "a", "--json")
	require.Error(t, err)
	require.Contains(t, err.Error(), "at least 2 characters")
	require.Empty(t, typeIDs())
}

func TestSearchCommandRejectsUnknownCategory(t *testing.T) {
	srv, _ := newTestServer(t)
	cfgPath := writeConfig(t, srv.URL)

	_, err := execute(t, "--config", cfgPath, "search", "arsenal", "--category", "players")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown category")
}

func TestConfigInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	out, err := execute(t, "--config", path, "config", "init")
	require.NoError(t, err)
	require.Contains(t, out, "Wrote "+path)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, config.DefaultEndpoint, cfg.API.Endpoint)
	require.Equal(t, config.DefaultTimeout, cfg.API.Timeout)
	require.Equal(t, config.DefaultSportIDs, cfg.API.SportIDs)

	_, err = execute(t, "--config", path, "config", "init")
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "--config", path, "config", "init", "--force")
	require.NoError(t, err)
}
