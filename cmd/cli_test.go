package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// fakeWalkerServer stands in for the walker API. It issues a fixed token on
// login and requires it on every authenticated route.
type fakeWalkerServer struct {
	*httptest.Server

	mu         sync.Mutex
	lastBearer string
}

func newFakeWalkerServer(t *testing.T) *fakeWalkerServer {
	t.Helper()

	fake := &fakeWalkerServer{}
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/walkerlogin", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"test-token"}`))
	})

	authed := func(handler http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			fake.mu.Lock()
			fake.lastBearer = r.Header.Get("Authorization")
			fake.mu.Unlock()

			if r.Header.Get("Authorization") != "Bearer test-token" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			handler(w, r)
		}
	}

	mux.HandleFunc("GET /api/me", authed(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"name":"Ana Perez","email":"ana@example.com","price_hour":"15","is_available":true}`))
	}))

	mux.HandleFunc("GET /api/walks/pending", authed(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":7,"status":"pending","pet_name":"Rocky","owner_name":"Maria","scheduled_at":"2026-08-28 15:00:00"}]`))
	}))

	mux.HandleFunc("GET /api/walks/accepted", authed(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))

	mux.HandleFunc("GET /api/walks", authed(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":2,"status":"finished","pet_name":"Luna"}]`))
	}))

	mux.HandleFunc("POST /api/walkers/availability", authed(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	mux.HandleFunc("POST /api/walkers/location", authed(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	mux.HandleFunc("GET /api/reviews", authed(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"rating":5,"comment":"great","walk_id":7,"user":{"id":3,"name":"Maria"}}]`))
	}))

	fake.Server = httptest.NewServer(mux)
	t.Cleanup(fake.Close)
	t.Setenv("PASEO_API_BASE_URL", fake.URL+"/api")

	return fake
}

func TestVersionPrintsBuildVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dev")
}

func TestLoginRequiresCredentialFlags(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "login", "--email", "ana@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"password\" not set")
}

func TestLoginThenProfileUsesStoredToken(t *testing.T) {
	server := newFakeWalkerServer(t)
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "login", "--email", "ana@example.com", "--password", "secret")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Logged in as ana@example.com")

	stdout, _, err = executeCLI(t, home, "profile")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Ana Perez")
	assert.Contains(t, stdout, "ana@example.com")
	assert.Contains(t, stdout, "available:    yes")
	assert.NotContains(t, stdout, "cached profile")

	server.mu.Lock()
	defer server.mu.Unlock()
	assert.Equal(t, "Bearer test-token", server.lastBearer)
}

func TestProfileFallsBackToCacheWhenServerDown(t *testing.T) {
	server := newFakeWalkerServer(t)
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "login", "--email", "ana@example.com", "--password", "secret")
	require.NoError(t, err)

	server.Close()

	stdout, _, err := executeCLI(t, home, "profile")
	require.NoError(t, err)
	assert.Contains(t, stdout, "offline: showing cached profile")
	assert.Contains(t, stdout, "ana@example.com")
	assert.Contains(t, stdout, "available:    no")
}

func TestLogoutTwiceSucceeds(t *testing.T) {
	newFakeWalkerServer(t)
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "login", "--email", "ana@example.com", "--password", "secret")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "logout")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "logout")
	require.NoError(t, err)
}

func TestWalksListRendersBoardSections(t *testing.T) {
	newFakeWalkerServer(t)
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "login", "--email", "ana@example.com", "--password", "secret")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "walks", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "pending: 1  accepted: 0  history: 1")
	assert.Contains(t, stdout, "#7 Rocky with Maria")
	assert.Contains(t, stdout, "#2 Luna")
}

func TestWalksListPendingFlagFiltersBoard(t *testing.T) {
	newFakeWalkerServer(t)
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "login", "--email", "ana@example.com", "--password", "secret")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "walks", "list", "--pending")
	require.NoError(t, err)
	assert.Contains(t, stdout, "#7 Rocky with Maria")
	assert.NotContains(t, stdout, "#2 Luna")
}

func TestWalksListWithoutTokenShowsEmptyBoard(t *testing.T) {
	newFakeWalkerServer(t)

	stdout, _, err := executeCLI(t, t.TempDir(), "walks", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "pending: 0  accepted: 0  history: 0")
}

func TestAvailabilityOnWithoutLocationFix(t *testing.T) {
	newFakeWalkerServer(t)
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "login", "--email", "ana@example.com", "--password", "secret")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "availability", "on")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "location reporting could not start")
}

func TestAvailabilityStatusStartsStopped(t *testing.T) {
	newFakeWalkerServer(t)

	stdout, _, err := executeCLI(t, t.TempDir(), "availability", "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Reporting: no")
}

func TestReviewsListRendersStars(t *testing.T) {
	newFakeWalkerServer(t)
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "login", "--email", "ana@example.com", "--password", "secret")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "reviews")
	require.NoError(t, err)
	assert.Contains(t, stdout, "reviews: 1")
	assert.Contains(t, stdout, "Maria")
	assert.Contains(t, stdout, "★★★★★")
}

func TestWalksShowRejectsBadID(t *testing.T) {
	newFakeWalkerServer(t)

	_, _, err := executeCLI(t, t.TempDir(), "walks", "show", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid walk id")
}
