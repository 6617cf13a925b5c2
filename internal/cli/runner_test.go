package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Makepad-fr/tada/internal/api"
	"github.com/Makepad-fr/tada/internal/devserver"
	"github.com/Makepad-fr/tada/internal/model"
)

type result struct {
	code int
	out  string
	err  string
}

// isolate gives each test an empty HOME and working dir so no real config,
// .env or credentials leak in.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, k := range []string{"TADA_CONFIG", "TADA_API_URL", "TADA_THEME", "TADA_LOG_FILE", "TADA_LOG_LEVEL", "TADA_TIMEOUT", "TADA_TOKEN", "NO_COLOR"} {
		t.Setenv(k, "")
	}
	t.Chdir(t.TempDir())
}

func run(t *testing.T, in string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Run(context.Background(), append([]string{"--no-color", "--theme", "mono"}, args...), Options{
		In:  strings.NewReader(in),
		Out: &out,
		Err: &errOut,
	})
	return result{code: code, out: out.String(), err: errOut.String()}
}

// backend starts an in-memory collection and returns its URL.
func backend(t *testing.T, seed ...model.Item) string {
	t.Helper()
	srv := devserver.New(devserver.Config{Seed: seed}, nil)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts.URL + devserver.DefaultBasePath
}

func failing(t *testing.T) string {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	t.Cleanup(ts.Close)
	return ts.URL + devserver.DefaultBasePath
}

func remoteItems(t *testing.T, base string) []model.Item {
	t.Helper()
	c, err := api.New(base)
	if err != nil {
		t.Fatal(err)
	}
	items, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	return items
}

func seed() []model.Item {
	return []model.Item{
		{ID: model.NumericID(1), Title: "Buy milk"},
		{ID: model.NumericID(2), Title: "Walk dog", IsCompleted: true},
	}
}

func TestHelpAndUsage(t *testing.T) {
	isolate(t)
	tests := []struct {
		name string
		args []string
		code int
		want string
	}{
		{"help", []string{"help"}, exitOK, "Subcommands:"},
		{"no subcommand", nil, exitUsage, "Usage:"},
		{"flag help", []string{"--help"}, exitOK, "Usage:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := run(t, "", tt.args...)
			if r.code != tt.code {
				t.Fatalf("code: got %d, want %d (stderr %q)", r.code, tt.code, r.err)
			}
			if !strings.Contains(r.out, tt.want) {
				t.Errorf("stdout %q does not contain %q", r.out, tt.want)
			}
		})
	}
}

func TestUnknownSubcommand(t *testing.T) {
	isolate(t)
	r := run(t, "", "frobnicate")
	if r.code != exitUsage {
		t.Fatalf("code: got %d, want %d", r.code, exitUsage)
	}
	if !strings.Contains(r.err, "unknown subcommand: frobnicate") {
		t.Errorf("stderr: %q", r.err)
	}
}

func TestBadFlags(t *testing.T) {
	isolate(t)
	tests := []struct {
		name string
		args []string
	}{
		{"bad theme", []string{"--theme", "rainbow", "stats"}},
		{"bad api", []string{"--api", "ftp://example.com", "stats"}},
		{"unknown flag", []string{"--bogus", "stats"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			code := Run(context.Background(), tt.args, Options{In: strings.NewReader(""), Out: &out, Err: &errOut})
			if code != exitUsage {
				t.Errorf("code: got %d, want %d", code, exitUsage)
			}
		})
	}
}

func TestAddRemote(t *testing.T) {
	isolate(t)
	base := backend(t)
	r := run(t, "", "--api", base, "add", "Buy", "milk")
	if r.code != exitOK {
		t.Fatalf("code %d, stderr %q", r.code, r.err)
	}
	if !strings.Contains(r.out, "added") || strings.Contains(r.out, "local only") {
		t.Errorf("stdout: %q", r.out)
	}
	items := remoteItems(t, base)
	if len(items) != 1 || items[0].Title != "Buy milk" || items[0].IsCompleted {
		t.Errorf("remote items: %+v", items)
	}
}

func TestAddFallsBackLocally(t *testing.T) {
	isolate(t)
	r := run(t, "", "--api", failing(t), "add", "Test")
	if r.code != exitOK {
		t.Fatalf("code %d, stderr %q", r.code, r.err)
	}
	if !strings.Contains(r.out, "added (local only)") {
		t.Errorf("stdout: %q", r.out)
	}
	if !strings.Contains(r.err, localOnlyHint) {
		t.Errorf("stderr: %q", r.err)
	}
}

func TestAddWithoutServerIDFallsBack(t *testing.T) {
	isolate(t)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"title":"Test","isCompleted":false}`))
	}))
	t.Cleanup(ts.Close)

	r := run(t, "", "--api", ts.URL+devserver.DefaultBasePath, "add", "Test")
	if r.code != exitOK {
		t.Fatalf("code %d, stderr %q", r.code, r.err)
	}
	if !strings.Contains(r.out, "added (local only)") {
		t.Errorf("stdout: %q", r.out)
	}
	if strings.Contains(r.err, loginHint) {
		t.Errorf("unexpected login hint: %q", r.err)
	}
}

func TestDebugLogsGoToStderr(t *testing.T) {
	isolate(t)
	base := backend(t)

	r := run(t, "", "--api", base, "--log-level", "debug", "stats")
	if r.code != exitOK {
		t.Fatalf("code %d, stderr %q", r.code, r.err)
	}
	if !strings.Contains(r.err, "client ready") {
		t.Errorf("debug run should log to stderr, got %q", r.err)
	}

	r = run(t, "", "--api", base, "stats")
	if strings.Contains(r.err, "client ready") {
		t.Errorf("info run should not log to stderr, got %q", r.err)
	}
}

func TestAddBlankTitle(t *testing.T) {
	isolate(t)
	tests := []struct {
		name string
		args []string
	}{
		{"missing", []string{"add"}},
		{"whitespace", []string{"add", "   "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := backend(t)
			r := run(t, "", append([]string{"--api", base}, tt.args...)...)
			if r.code != exitUsage {
				t.Errorf("code: got %d, want %d", r.code, exitUsage)
			}
			if n := len(remoteItems(t, base)); n != 0 {
				t.Errorf("remote has %d items, want 0", n)
			}
		})
	}
}

func TestList(t *testing.T) {
	isolate(t)
	base := backend(t, seed()...)

	r := run(t, "", "--api", base, "list")
	if r.code != exitOK {
		t.Fatalf("code %d, stderr %q", r.code, r.err)
	}
	milk := strings.Index(r.out, "Buy milk")
	dog := strings.Index(r.out, "Walk dog")
	if milk < 0 || dog < 0 || milk > dog {
		t.Errorf("list order: %q", r.out)
	}

	r = run(t, "", "--api", base, "list", "--group")
	pending := strings.Index(r.out, "Pending")
	done := strings.Index(r.out, "Done")
	if pending < 0 || done < 0 {
		t.Fatalf("group headings missing: %q", r.out)
	}
	if i := strings.Index(r.out, "Walk dog"); i < done {
		t.Errorf("completed item listed before Done heading: %q", r.out)
	}
}

func TestListEmptyAndOffline(t *testing.T) {
	isolate(t)
	r := run(t, "", "--api", backend(t), "list")
	if r.code != exitOK || !strings.Contains(r.out, "No todos yet") {
		t.Errorf("empty: code %d, stdout %q", r.code, r.out)
	}

	r = run(t, "", "--api", failing(t), "list")
	if r.code != exitOK {
		t.Fatalf("offline: code %d", r.code)
	}
	if !strings.Contains(r.err, "Failed to load todos. Working offline with local items.") {
		t.Errorf("offline stderr: %q", r.err)
	}
}

func TestDoneTogglesRemote(t *testing.T) {
	isolate(t)
	base := backend(t, seed()...)

	r := run(t, "", "--api", base, "done", "1")
	if r.code != exitOK || !strings.Contains(r.out, "marked done") {
		t.Fatalf("code %d, stdout %q, stderr %q", r.code, r.out, r.err)
	}
	if items := remoteItems(t, base); !items[0].IsCompleted {
		t.Errorf("item 1 not completed: %+v", items[0])
	}

	r = run(t, "", "--api", base, "done", "1")
	if !strings.Contains(r.out, "marked pending") {
		t.Errorf("second toggle: %q", r.out)
	}
	if items := remoteItems(t, base); items[0].IsCompleted {
		t.Errorf("item 1 still completed: %+v", items[0])
	}
}

func TestRemoveRemote(t *testing.T) {
	isolate(t)
	base := backend(t, seed()...)

	r := run(t, "", "--api", base, "rm", "2")
	if r.code != exitOK || !strings.Contains(r.out, "removed") {
		t.Fatalf("code %d, stdout %q, stderr %q", r.code, r.out, r.err)
	}
	items := remoteItems(t, base)
	if len(items) != 1 || items[0].Title != "Buy milk" {
		t.Errorf("remote items: %+v", items)
	}
}

func TestIndexErrors(t *testing.T) {
	isolate(t)
	base := backend(t, seed()...)
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"out of range", []string{"done", "3"}, "index out of range"},
		{"zero", []string{"rm", "0"}, "index out of range"},
		{"not a number", []string{"rm", "two"}, "not a number"},
		{"missing", []string{"done"}, "usage: todo done"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := run(t, "", append([]string{"--api", base}, tt.args...)...)
			if r.code != exitUsage {
				t.Errorf("code: got %d, want %d", r.code, exitUsage)
			}
			if !strings.Contains(r.err, tt.want) {
				t.Errorf("stderr %q does not contain %q", r.err, tt.want)
			}
		})
	}
	if n := len(remoteItems(t, base)); n != 2 {
		t.Errorf("remote changed: %d items", n)
	}
}

func TestStats(t *testing.T) {
	isolate(t)
	r := run(t, "", "--api", backend(t, seed()...), "stats")
	if r.code != exitOK {
		t.Fatalf("code %d, stderr %q", r.code, r.err)
	}
	for _, want := range []string{"Total 2", "Completed 1", "Remaining 1", "50%"} {
		if !strings.Contains(r.out, want) {
			t.Errorf("stats output missing %q:\n%s", want, r.out)
		}
	}
}

func TestTokenIsSent(t *testing.T) {
	isolate(t)
	srv := devserver.New(devserver.Config{Token: "secret"}, nil)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	base := ts.URL + devserver.DefaultBasePath

	r := run(t, "", "--api", base, "add", "Locked")
	if !strings.Contains(r.out, "local only") {
		t.Fatalf("unauthenticated add should fall back: %q", r.out)
	}
	if !strings.Contains(r.err, loginHint) {
		t.Errorf("expected login hint on 401, stderr %q", r.err)
	}

	t.Setenv("TADA_TOKEN", "secret")
	r = run(t, "", "--api", base, "add", "Unlocked")
	if strings.Contains(r.out, "local only") {
		t.Errorf("authenticated add fell back: %q / %q", r.out, r.err)
	}
}

func TestAuthFlow(t *testing.T) {
	isolate(t)

	r := run(t, "", "auth", "status")
	if r.code != exitOK || !strings.Contains(r.out, "not logged in") {
		t.Fatalf("status before login: %d %q", r.code, r.out)
	}
	if r := run(t, "", "auth", "whoami"); r.code != exitUsage {
		t.Errorf("whoami before login: got %d, want %d", r.code, exitUsage)
	}

	r = run(t, "opaque-token\n", "auth", "login")
	if r.code != exitOK || !strings.Contains(r.out, "logged in") {
		t.Fatalf("login: %d %q %q", r.code, r.out, r.err)
	}
	r = run(t, "", "auth", "status")
	if !strings.Contains(r.out, "source: file") {
		t.Errorf("status after login: %q", r.out)
	}
	r = run(t, "", "auth", "whoami")
	if r.code != exitOK || !strings.Contains(r.out, "Opaque token") {
		t.Errorf("whoami: %d %q", r.code, r.out)
	}

	r = run(t, "", "auth", "logout")
	if r.code != exitOK {
		t.Fatalf("logout: %d %q", r.code, r.err)
	}
	r = run(t, "", "auth", "status")
	if !strings.Contains(r.out, "not logged in") {
		t.Errorf("status after logout: %q", r.out)
	}
}

func TestAuthUsage(t *testing.T) {
	isolate(t)
	for _, args := range [][]string{{"auth"}, {"auth", "nope"}} {
		if r := run(t, "", args...); r.code != exitUsage {
			t.Errorf("%v: got %d, want %d", args, r.code, exitUsage)
		}
	}
	if r := run(t, "", "auth", "login"); r.code != exitError {
		t.Errorf("login with empty input: got %d, want %d", r.code, exitError)
	}
}
