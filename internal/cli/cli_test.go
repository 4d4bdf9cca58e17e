package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/sandeepkv93/taskline/internal/planner"
	"github.com/sandeepkv93/taskline/internal/storage"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	return home
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "taskline.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestRootRegistersCommands(t *testing.T) {
	cmd := NewRootCmd()
	for _, name := range []string{"list", "version"} {
		found, _, err := cmd.Find([]string{name})
		if err != nil || found.Name() != name {
			t.Fatalf("expected %s command, got %v (%v)", name, found, err)
		}
	}
	for _, flag := range []string{"config", "view", "demo"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Fatalf("missing persistent flag %s", flag)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2026-02-09")
	t.Cleanup(func() { SetVersionInfo("dev", "none", "unknown") })

	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "taskline 1.2.3") || !strings.Contains(out, "commit: abc123") {
		t.Fatalf("unexpected version output %q", out)
	}
}

func TestListDemoJSON(t *testing.T) {
	isolateHome(t)
	out, _, err := execute(t, "list", "--demo", "-o", "json")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var got listing
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if got.View != "daily" || len(got.Tasks) < 8 {
		t.Fatalf("unexpected listing: %+v", got)
	}
	last := got.Tasks[len(got.Tasks)-1]
	if last.ID != "demo-5" || last.Kind != "not_scheduled" || last.Start != "" {
		t.Fatalf("expected the unscheduled task last, got %+v", last)
	}
	for _, it := range got.Tasks[:len(got.Tasks)-1] {
		if it.Start == "" {
			t.Fatalf("scheduled rows must carry a start: %+v", it)
		}
	}
}

func TestListDemoYAMLWeekly(t *testing.T) {
	isolateHome(t)
	out, _, err := execute(t, "list", "--demo", "--view", "weekly", "--output", "yaml")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var got listing
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if got.View != "weekly" || len(got.Tasks) == 0 {
		t.Fatalf("unexpected listing: %+v", got)
	}
	for _, it := range got.Tasks {
		if it.Unit != "hour" {
			t.Fatalf("weekly durations are in hours, got %+v", it)
		}
	}
}

func TestListDemoTable(t *testing.T) {
	isolateHome(t)
	out, _, err := execute(t, "list", "--demo")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"ID", "TITLE", "STATUS", "Review client proposal", "not scheduled"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table output:\n%s", want, out)
		}
	}
}

func TestListRejectsBadFlags(t *testing.T) {
	isolateHome(t)
	if _, _, err := execute(t, "list", "--demo", "-o", "xml"); err == nil {
		t.Fatal("expected error for unknown output format")
	}
	if _, _, err := execute(t, "list", "--demo", "--date", "09/02/2026"); err == nil {
		t.Fatal("expected error for a malformed date")
	}
	if _, _, err := execute(t, "list", "--demo", "--cursor", "140"); err == nil {
		t.Fatal("expected error for a cursor past the window")
	}
	if _, _, err := execute(t, "list", "--demo", "--view", "yearly"); err == nil {
		t.Fatal("expected error for an unknown view")
	}
}

func TestRootFallsBackToListWithoutTerminal(t *testing.T) {
	isolateHome(t)
	prev := isTerminal
	isTerminal = func() bool { return false }
	t.Cleanup(func() { isTerminal = prev })

	out, _, err := execute(t, "--demo")
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	if !strings.Contains(out, "Review client proposal") {
		t.Fatalf("expected the demo listing, got:\n%s", out)
	}
}

func seed(t *testing.T, kv storage.KV) {
	t.Helper()
	p := planner.New(storage.NewTaskStore(kv))
	start := time.Date(2026, 2, 9, 10, 0, 0, 0, time.Local)
	if _, err := p.CreateTask(planner.NewTask{Title: "Write report", Importance: 7, StartDate: &start, Duration: 2 * time.Hour}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := p.CreateTask(planner.NewTask{Title: "Someday"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := p.LastSaveError(); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func listStored(t *testing.T, configPath string) listing {
	t.Helper()
	out, errOut, err := execute(t, "list", "--config", configPath, "--date", "2026-02-09", "--cursor", "50", "-o", "json")
	if err != nil {
		t.Fatalf("list: %v (%s)", err, errOut)
	}
	var got listing
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	return got
}

func TestListReadsSQLiteStore(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "tasks.db")
	kv, err := storage.OpenSQLite(path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	seed(t, kv)

	got := listStored(t, writeConfig(t, "storage:\n  backend: sqlite\n  path: "+path+"\n"))
	if len(got.Tasks) != 2 {
		t.Fatalf("expected two tasks, got %+v", got.Tasks)
	}
	first := got.Tasks[0]
	if first.Title != "Write report" || first.Start != "2026-02-09 10:00" || first.Duration != 2 || first.Importance != 7 {
		t.Fatalf("unexpected scheduled row %+v", first)
	}
	// Clock sits at 16:00, after the 10:00-12:00 span.
	if first.Kind != "overdue" || first.Active {
		t.Fatalf("expected overdue at the cursor, got %+v", first)
	}
	if got.Tasks[1].Title != "Someday" || got.Tasks[1].Kind != "not_scheduled" {
		t.Fatalf("unexpected unscheduled row %+v", got.Tasks[1])
	}
}

func TestListReadsDiskvStore(t *testing.T) {
	isolateHome(t)
	dir := filepath.Join(t.TempDir(), "board")
	seed(t, storage.OpenDiskv(dir))

	got := listStored(t, writeConfig(t, "storage:\n  backend: diskv\n  path: "+dir+"\n"))
	if len(got.Tasks) != 2 || got.Tasks[0].Title != "Write report" {
		t.Fatalf("unexpected listing %+v", got.Tasks)
	}
}

func TestListEmptyStoreCreatesDirectory(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "nested", "tasks.db")
	got := listStored(t, writeConfig(t, "storage:\n  path: "+path+"\n"))
	if len(got.Tasks) != 0 {
		t.Fatalf("expected an empty board, got %+v", got.Tasks)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected the database to be created: %v", err)
	}
}
