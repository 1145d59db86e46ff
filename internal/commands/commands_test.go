package commands

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MrSnakeDoc/bonk/internal/app"
	"github.com/MrSnakeDoc/bonk/internal/config"
	"github.com/MrSnakeDoc/bonk/internal/domain"
	"github.com/MrSnakeDoc/bonk/internal/logger"
	"github.com/MrSnakeDoc/bonk/internal/store/file"
)

const testNow = int64(1700000000)

func newTestApp(t *testing.T) (*app.App, *bytes.Buffer) {
	t.Helper()

	dir := t.TempDir()
	store, err := file.New(dir)
	if err != nil {
		t.Fatalf("file.New() error = %v", err)
	}

	out := &bytes.Buffer{}
	a := &app.App{
		Cfg: &config.Config{
			DataDir:       dir,
			LogLevel:      "error",
			Editor:        "true",
			PocketTimeout: 5 * time.Second,
		},
		Log:    logger.New("error", false),
		Store:  store,
		Now:    func() time.Time { return time.Unix(testNow, 0) },
		Stdin:  strings.NewReader(""),
		Stdout: out,
	}
	return a, out
}

func run(t *testing.T, a *app.App, args ...string) error {
	t.Helper()
	root := NewRootCmd(a)
	root.SetArgs(args)
	root.SetOut(a.Stdout)
	root.SetErr(a.Stdout)
	return root.Execute()
}

func mustRun(t *testing.T, a *app.App, args ...string) {
	t.Helper()
	if err := run(t, a, args...); err != nil {
		t.Fatalf("bonk %s failed: %v", strings.Join(args, " "), err)
	}
}

func TestAddAndLs(t *testing.T) {
	a, out := newTestApp(t)

	mustRun(t, a, "add", "--title", "Example", "--url", "https://example.com", "-t", "go")

	out.Reset()
	mustRun(t, a, "ls", "--id")

	text := out.String()
	if !strings.Contains(text, "bonk showing 1 of 1 entries.") {
		t.Errorf("ls header missing:\n%s", text)
	}
	if !strings.Contains(text, domain.ComputeID("https://example.com")[:6]) {
		t.Errorf("ls --id does not show the short ID:\n%s", text)
	}
	if !strings.Contains(text, "GO (1)") {
		t.Errorf("ls does not group under the tag:\n%s", text)
	}
}

func TestLsFiltersReadByDefault(t *testing.T) {
	a, out := newTestApp(t)

	mustRun(t, a, "add", "--title", "Unread", "--url", "https://unread.example", "-t", "x")
	mustRun(t, a, "add", "--title", "Read", "--url", "https://read.example", "-t", "x", "--read")

	out.Reset()
	mustRun(t, a, "ls")
	if text := out.String(); !strings.Contains(text, "1 of 2 entries") || strings.Contains(text, "https://read.example") {
		t.Errorf("default ls should hide read entries:\n%s", text)
	}

	out.Reset()
	mustRun(t, a, "ls", "--read")
	if text := out.String(); strings.Contains(text, "https://unread.example") || !strings.Contains(text, "https://read.example") {
		t.Errorf("ls --read should show only read entries:\n%s", text)
	}
}

func TestRm(t *testing.T) {
	a, out := newTestApp(t)

	mustRun(t, a, "add", "--title", "Keep", "--url", "https://keep.example", "-t", "x")
	mustRun(t, a, "add", "--title", "Drop", "--url", "https://drop.example", "-t", "x")

	mustRun(t, a, "rm", domain.ComputeID("https://drop.example")[:6])

	entries, err := a.Store.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(entries) != 1 || entries[0].Title != "Keep" {
		t.Errorf("collection after rm = %+v, want only Keep", entries)
	}

	out.Reset()
	mustRun(t, a, "rm", "ffffff")
	if !strings.Contains(out.String(), "no records found") {
		t.Errorf("rm with zero matches should report not found, got:\n%s", out.String())
	}
}

func TestRmShortPrefixAborts(t *testing.T) {
	a, _ := newTestApp(t)

	mustRun(t, a, "add", "--title", "Keep", "--url", "https://keep.example", "-t", "x")

	if err := run(t, a, "rm", "abc12"); err == nil {
		t.Fatal("rm with a 5-char prefix should fail")
	}

	entries, err := a.Store.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(entries) != 1 {
		t.Error("aborted rm must not mutate the collection")
	}
}

func TestRmAmbiguousPrefixAborts(t *testing.T) {
	a, _ := newTestApp(t)

	first, err := domain.NewEntry("First", "https://first.example", nil, 0, testNow)
	if err != nil {
		t.Fatalf("NewEntry() error = %v", err)
	}
	second, err := domain.NewEntry("Second", "https://second.example", nil, 0, testNow)
	if err != nil {
		t.Fatalf("NewEntry() error = %v", err)
	}
	first.ID = "abc123de00000000"
	second.ID = "abc123ff00000000"
	if err := a.Store.WriteAll([]domain.Entry{*first, *second}); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}

	if err := run(t, a, "rm", "abc123"); err == nil {
		t.Fatal("rm with an ambiguous prefix should fail")
	}

	entries, err := a.Store.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(entries) != 2 {
		t.Error("aborted rm must not mutate the collection")
	}
}

func TestMarkTransitions(t *testing.T) {
	a, _ := newTestApp(t)

	mustRun(t, a, "add", "--title", "Example", "--url", "https://example.com", "-t", "x")
	prefix := domain.ComputeID("https://example.com")[:6]

	mustRun(t, a, "mark", prefix, "-r")
	entries, _ := a.Store.ReadAll()
	if !entries[0].IsRead() {
		t.Error("mark -r did not set READ")
	}

	mustRun(t, a, "mark", prefix, "-f")
	entries, _ = a.Store.ReadAll()
	if !entries[0].IsFavorite() || !entries[0].IsRead() {
		t.Error("mark -f must set FAVORITE without clearing READ")
	}

	mustRun(t, a, "mark", prefix, "-u")
	entries, _ = a.Store.ReadAll()
	if entries[0].IsRead() || !entries[0].IsFavorite() {
		t.Error("mark -u must clear only READ")
	}

	if err := run(t, a, "mark", prefix, "-r", "-f"); err == nil {
		t.Error("mark with two transitions should fail")
	}
	if err := run(t, a, "mark", prefix); err == nil {
		t.Error("mark with no transition should fail")
	}
}

func TestTagsSummary(t *testing.T) {
	a, out := newTestApp(t)

	mustRun(t, a, "add", "--title", "A", "--url", "https://a.example", "-t", "Go,cli")
	mustRun(t, a, "add", "--title", "B", "--url", "https://b.example", "-t", "go")

	bare, err := domain.NewEntry("Bare", "https://bare.example", nil, 0, testNow)
	if err != nil {
		t.Fatalf("NewEntry() error = %v", err)
	}
	entries, _ := a.Store.ReadAll()
	if err := a.Store.WriteAll(append(entries, *bare)); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}

	out.Reset()
	mustRun(t, a, "tags")

	text := out.String()
	for _, want := range []string{"2  go", "1  cli", "1  untagged"} {
		if !strings.Contains(text, want) {
			t.Errorf("tags output missing %q:\n%s", want, text)
		}
	}
}

func TestSyncAdvancesWatermarkToStartTime(t *testing.T) {
	a, out := newTestApp(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// Remote timestamps are far in the past; the watermark must still
		// advance to the local batch start.
		_, _ = w.Write([]byte(`{"list": {
			"1": {"resolved_title": "Old Article", "resolved_url": "https://old.example", "time_added": "1000", "time_updated": "2000"}
		}}`))
	}))
	defer srv.Close()
	a.Cfg.PocketURL = srv.URL

	creds := "POCKET_CONSUMER_KEY=ck\nPOCKET_ACCESS_TOKEN=at\n"
	if err := os.WriteFile(filepath.Join(a.Cfg.DataDir, ".env"), []byte(creds), 0o600); err != nil {
		t.Fatalf("failed to write credentials: %v", err)
	}

	mustRun(t, a, "sync", "--yes")

	entries, err := a.Store.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(entries) != 1 || entries[0].URL != "https://old.example" {
		t.Fatalf("collection after sync = %+v, want the fetched entry", entries)
	}
	if entries[0].CreatedAt != 1000 || entries[0].UpdatedAt != 2000 {
		t.Errorf("timestamps = (%d, %d), want remote values verbatim", entries[0].CreatedAt, entries[0].UpdatedAt)
	}

	watermark, err := a.Store.ReadSyncWatermark()
	if err != nil {
		t.Fatalf("ReadSyncWatermark() error = %v", err)
	}
	if watermark != testNow {
		t.Errorf("watermark = %d, want sync start time %d (not max remote timestamp)", watermark, testNow)
	}

	if !strings.Contains(out.String(), "saved 1 of 1") {
		t.Errorf("sync summary missing:\n%s", out.String())
	}
}

func TestSyncNothingNew(t *testing.T) {
	a, out := newTestApp(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"list": []}`))
	}))
	defer srv.Close()
	a.Cfg.PocketURL = srv.URL

	creds := "POCKET_CONSUMER_KEY=ck\nPOCKET_ACCESS_TOKEN=at\n"
	if err := os.WriteFile(filepath.Join(a.Cfg.DataDir, ".env"), []byte(creds), 0o600); err != nil {
		t.Fatalf("failed to write credentials: %v", err)
	}

	mustRun(t, a, "sync", "--yes")

	if !strings.Contains(out.String(), "nothing new") {
		t.Errorf("sync with empty list should report nothing new:\n%s", out.String())
	}
}

func TestAddPromptsForMissingFields(t *testing.T) {
	a, _ := newTestApp(t)
	a.Stdin = strings.NewReader("Prompted Title\nhttps://prompted.example\nmytag\n\n")

	mustRun(t, a, "add")

	entries, err := a.Store.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("collection = %+v, want one entry", entries)
	}
	e := entries[0]
	if e.Title != "Prompted Title" || e.URL != "https://prompted.example" {
		t.Errorf("prompted fields not applied: %+v", e)
	}
	if len(e.Tags) != 1 || e.Tags[0] != "mytag" {
		t.Errorf("prompted tags = %v, want [mytag]", e.Tags)
	}
}

func TestAddFromFile(t *testing.T) {
	a, out := newTestApp(t)

	yaml := `---
- Developer:
    - GitHub:
        - href: https://github.com
`
	path := filepath.Join(t.TempDir(), "bookmarks.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("failed to write bookmarks file: %v", err)
	}

	mustRun(t, a, "add", "--from-file", path)

	if !strings.Contains(out.String(), "imported 1 entries") {
		t.Errorf("import summary missing:\n%s", out.String())
	}

	entries, err := a.Store.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(entries) != 1 || entries[0].URL != "https://github.com" {
		t.Errorf("collection after import = %+v", entries)
	}
}
