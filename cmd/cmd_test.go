// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"fdoconf/cli/internal/config"
	apierrors "fdoconf/cli/internal/errors"
	"fdoconf/cli/internal/keychain"
	"fdoconf/cli/internal/terminal"

	"github.com/99designs/keyring"
	"github.com/pterm/pterm"
)

const testSession = "cli-session"

type fakeServer struct {
	*httptest.Server
	purged     atomic.Int32
	registered atomic.Value // last registration body
}

func newFakeServer(t *testing.T) *fakeServer {
	t.Helper()
	fs := &fakeServer{}
	authorized := func(r *http.Request) bool {
		c, err := r.Cookie("session")
		return err == nil && c.Value == testSession
	}
	reply := func(w http.ResponseWriter, status int, body any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}
	ok := map[string]string{"status": "ok"}
	unauthorized := map[string]string{"status": "failed", "errorMessage": "Unauthorized!"}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/user/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "secret" {
			reply(w, http.StatusUnauthorized, map[string]string{"status": "failed", "errorMessage": "Invalid email or password"})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "session", Value: testSession, Path: "/"})
		reply(w, http.StatusOK, ok)
	})
	mux.HandleFunc("GET /api/user/loggedin", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			reply(w, http.StatusUnauthorized, unauthorized)
			return
		}
		reply(w, http.StatusOK, ok)
	})
	mux.HandleFunc("POST /api/user/logout", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, ok)
	})
	mux.HandleFunc("GET /api/user/config", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, map[string]any{"mode": "online", "devices": 3})
	})
	mux.HandleFunc("POST /api/user/purgetests", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			reply(w, http.StatusUnauthorized, unauthorized)
			return
		}
		fs.purged.Add(1)
		reply(w, http.StatusOK, ok)
	})
	mux.HandleFunc("POST /api/user/register", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		fs.registered.Store(body)
		reply(w, http.StatusOK, ok)
	})
	mux.HandleFunc("GET /api/oauth2/github/init", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, map[string]string{"status": "ok", "redirect_url": "https://github.com/login/oauth/authorize?client_id=x"})
	})

	fs.Server = httptest.NewServer(mux)
	t.Cleanup(fs.Close)
	return fs
}

// setupCLI isolates one test from the user's keychain, config and terminal.
func setupCLI(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	keychain.SetManager(keychain.NewManagerWithRing(keyring.NewArrayKeyring(nil)))
	pterm.DisableOutput()
	t.Cleanup(func() {
		keychain.SetManager(nil)
		pterm.EnableOutput()
	})
}

// run executes the CLI against serverURL with stdin and returns its output.
func run(t *testing.T, serverURL, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--url", serverURL}, args...))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func resetFlags() {
	showVersion, serverURL, verbose = false, "", false
	loginEmail, loginPasswordStdin, loginOnprem, loginForce = "", false, false, false
	registerEmail, registerName, registerCompany, registerPhone = "", "", "", ""
	registerPasswordStdin = false
	oauthNoBrowser = false
	purgeYes = false
}

func login(t *testing.T, serverURL string) {
	t.Helper()
	if _, err := run(t, serverURL, "secret\n", "login", "--email", "dev@example.org", "--password-stdin"); err != nil {
		t.Fatalf("login error = %v", err)
	}
}

func TestLoginStatusLogout(t *testing.T) {
	setupCLI(t)
	srv := newFakeServer(t)

	out, err := run(t, srv.URL, "", "status")
	if err != nil {
		t.Fatalf("status error = %v", err)
	}
	if !strings.Contains(out, "Not logged in") {
		t.Errorf("status before login = %q", out)
	}

	login(t, srv.URL)

	out, err = run(t, srv.URL, "", "whoami")
	if err != nil {
		t.Fatalf("whoami error = %v", err)
	}
	if !strings.Contains(out, "Logged in as dev@example.org") {
		t.Errorf("whoami after login = %q", out)
	}

	out, err = run(t, srv.URL, "", "login", "--email", "dev@example.org")
	if err != nil || !strings.Contains(out, "Already logged in") {
		t.Errorf("second login = %q, %v", out, err)
	}

	if out, err = run(t, srv.URL, "", "logout"); err != nil || !strings.Contains(out, "Logged out") {
		t.Fatalf("logout = %q, %v", out, err)
	}
	km, _ := keychain.GetManager()
	if data, _ := km.LoadSession(); data != nil {
		t.Errorf("session still stored after logout: %s", data)
	}
}

func TestLoginRejected(t *testing.T) {
	setupCLI(t)
	srv := newFakeServer(t)

	_, err := run(t, srv.URL, "wrong\n", "login", "-e", "dev@example.org", "--password-stdin")
	var shown *reportedError
	if !errors.As(err, &shown) {
		t.Fatalf("err = %v, want reportedError", err)
	}
	if !errors.Is(err, apierrors.ErrRequestFailed) {
		t.Errorf("err = %v, want request_failed", err)
	}
}

func TestLoginWithoutCredentialsRejectedLocally(t *testing.T) {
	setupCLI(t)
	srv := newFakeServer(t)

	// An empty email line followed by an empty password.
	_, err := run(t, srv.URL, "\n", "login", "--password-stdin")
	if !errors.Is(err, apierrors.ErrInvalidInput) {
		t.Errorf("err = %v, want invalid_input", err)
	}
}

func TestConfigRequiresLogin(t *testing.T) {
	setupCLI(t)
	srv := newFakeServer(t)

	_, err := run(t, srv.URL, "", "config")
	if !errors.Is(err, errNotLoggedIn) {
		t.Fatalf("config before login err = %v, want errNotLoggedIn", err)
	}

	login(t, srv.URL)
	out, err := run(t, srv.URL, "", "config")
	if err != nil {
		t.Fatalf("config error = %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("config output is not JSON: %q", out)
	}
	if got["mode"] != "online" || got["devices"] != float64(3) {
		t.Errorf("config = %v", got)
	}
}

func TestPurgeTests(t *testing.T) {
	setupCLI(t)
	srv := newFakeServer(t)
	login(t, srv.URL)

	out, err := run(t, srv.URL, "n\n", "purge-tests")
	if err != nil || !strings.Contains(out, "Aborted") {
		t.Fatalf("purge-tests declined = %q, %v", out, err)
	}
	if n := srv.purged.Load(); n != 0 {
		t.Fatalf("purged %d times after declining", n)
	}

	out, err = run(t, srv.URL, "", "purge-tests", "--yes")
	if err != nil || !strings.Contains(out, "Test runs purged") {
		t.Fatalf("purge-tests = %q, %v", out, err)
	}
	if n := srv.purged.Load(); n != 1 {
		t.Errorf("purged %d times, want 1", n)
	}
}

func TestRegister(t *testing.T) {
	setupCLI(t)
	srv := newFakeServer(t)

	args := []string{"register", "--email", "new@example.org", "--name", "Ada", "--company", "ACME", "--phone", "555", "--password-stdin"}
	out, err := run(t, srv.URL, "pw\npw\n", args...)
	if err != nil {
		t.Fatalf("register error = %v", err)
	}
	if !strings.Contains(out, "Registered") {
		t.Errorf("register output = %q", out)
	}
	body, _ := srv.registered.Load().(map[string]any)
	if body["email"] != "new@example.org" || body["password"] != "pw" || body["company"] != "ACME" {
		t.Errorf("registered body = %v", body)
	}
	if _, ok := body["password_repeat"]; ok {
		t.Error("password repetition was sent to the server")
	}
}

func TestRegisterPasswordMismatch(t *testing.T) {
	setupCLI(t)
	srv := newFakeServer(t)

	args := []string{"register", "--email", "new@example.org", "--name", "Ada", "--company", "ACME", "--phone", "555", "--password-stdin"}
	_, err := run(t, srv.URL, "pw\nother\n", args...)
	if !errors.Is(err, apierrors.ErrPasswordMismatch) {
		t.Errorf("err = %v, want password_mismatch", err)
	}
	if srv.registered.Load() != nil {
		t.Error("mismatching registration reached the server")
	}
}

func TestRegisterPromptsForMissingFields(t *testing.T) {
	setupCLI(t)
	srv := newFakeServer(t)

	// Email, name and company are prompted; phone comes from the flag.
	// Off a terminal the password cannot be read without --password-stdin.
	_, err := run(t, srv.URL, "new@example.org\nAda\nACME\n", "register", "--phone", "555")
	if !errors.Is(err, terminal.ErrNotInteractive) {
		t.Fatalf("err = %v, want ErrNotInteractive", err)
	}
	if srv.registered.Load() != nil {
		t.Error("registration reached the server without a password")
	}
}

func TestOAuthGithubPrintsLink(t *testing.T) {
	setupCLI(t)
	srv := newFakeServer(t)

	out, err := run(t, srv.URL, "", "oauth", "github", "--no-browser")
	if err != nil {
		t.Fatalf("oauth github error = %v", err)
	}
	if !strings.Contains(out, "https://github.com/login/oauth/authorize?client_id=x") {
		t.Errorf("output = %q", out)
	}
}

func TestStatusServerUnreachable(t *testing.T) {
	setupCLI(t)
	srv := newFakeServer(t)
	url := srv.URL
	srv.Close()

	if _, err := run(t, url, "", "status"); err == nil {
		t.Error("status against a closed server returned no error")
	}
}

func TestVersionFlag(t *testing.T) {
	setupCLI(t)
	out, err := run(t, "http://localhost:1", "", "--version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "fdoconf "+Version) {
		t.Errorf("output = %q", out)
	}
}

func TestConfigSetURL(t *testing.T) {
	setupCLI(t)

	out, err := run(t, "http://localhost:1", "", "config", "set-url", "https://conformance.example.org/")
	if err != nil {
		t.Fatalf("config set-url error = %v", err)
	}
	if !strings.Contains(out, "https://conformance.example.org") {
		t.Errorf("output = %q", out)
	}

	c, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if c.BaseURL != "https://conformance.example.org" {
		t.Errorf("saved BaseURL = %q", c.BaseURL)
	}

	if _, err := run(t, "http://localhost:1", "", "config", "set-url", "ftp://nowhere"); err == nil {
		t.Error("set-url accepted a non-http address")
	}
}
