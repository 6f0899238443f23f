package updater

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"clock-app/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const releasesJSON = `[
  {"tag_name": "v0.0.04-dev", "name": "Nightly", "prerelease": true, "html_url": "https://example.test/dev"},
  {"tag_name": "v0.0.03-beta", "name": "Beta 3", "prerelease": true, "html_url": "https://example.test/beta"},
  {"tag_name": "v0.0.02", "name": "Stable 2", "prerelease": false, "html_url": "https://example.test/stable", "body": "notes"},
  {"tag_name": "v0.0.01", "name": "Stable 1", "prerelease": false}
]`

func newServer(t *testing.T, hits *atomic.Int64, body string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		assert.Equal(t, "/repos/DramoraFramei/Clock-App/releases", r.URL.Path)
		assert.Equal(t, "Clock-App", r.Header.Get("User-Agent"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newChecker(api, current string) *Checker {
	c := New("https://github.com/DramoraFramei/Clock-App", current)
	c.API = api
	return c
}

func TestCheckChannels(t *testing.T) {
	srv := newServer(t, nil, releasesJSON, http.StatusOK)

	testCases := []struct {
		channel string
		update  bool
		latest  string
		url     string
	}{
		{"Stable", true, "0.0.02", "https://example.test/stable"},
		{"Beta", true, "0.0.03-beta", "https://example.test/beta"},
		{"Dev", true, "0.0.04-dev", "https://example.test/dev"},
	}

	for _, tc := range testCases {
		t.Run(tc.channel, func(t *testing.T) {
			res := newChecker(srv.URL, "0.0.01").Check(context.Background(), Request{Channel: tc.channel, Source: "GitHub"})
			require.NoError(t, res.Err)
			assert.Equal(t, tc.update, res.HasUpdate)
			assert.Equal(t, tc.latest, res.Latest)
			assert.Equal(t, tc.url, res.URL)
		})
	}
}

func TestCheckUpToDate(t *testing.T) {
	srv := newServer(t, nil, releasesJSON, http.StatusOK)

	res := newChecker(srv.URL, "0.0.02").Check(context.Background(), Request{Channel: "Stable", Source: "GitHub"})
	require.NoError(t, res.Err)
	assert.False(t, res.HasUpdate)
	assert.Equal(t, "0.0.02", res.Latest)
	assert.Equal(t, "https://github.com/DramoraFramei/Clock-App/releases", res.URL)
}

func TestCheckLocalSourceSkipsNetwork(t *testing.T) {
	var hits atomic.Int64
	srv := newServer(t, &hits, releasesJSON, http.StatusOK)

	res := newChecker(srv.URL, "0.0.01").Check(context.Background(), Request{Channel: "Stable", Source: "Local"})
	assert.NoError(t, res.Err)
	assert.False(t, res.HasUpdate)
	assert.Zero(t, hits.Load())
}

func TestCheckErrors(t *testing.T) {
	srv := newServer(t, nil, `{"message": "rate limited"}`, http.StatusForbidden)
	res := newChecker(srv.URL, "0.0.01").Check(context.Background(), Request{Channel: "Stable", Source: "GitHub"})
	assert.ErrorIs(t, res.Err, ErrBadResponse)
	assert.False(t, res.HasUpdate)

	bad := newServer(t, nil, `{"not": "a list"}`, http.StatusOK)
	res = newChecker(bad.URL, "0.0.01").Check(context.Background(), Request{Channel: "Stable", Source: "GitHub"})
	assert.ErrorIs(t, res.Err, ErrBadResponse)

	c := newChecker(srv.URL, "0.0.01")
	c.RepoURL = "https://gitlab.com/a/b"
	res = c.Check(context.Background(), Request{Channel: "Stable", Source: "GitHub"})
	assert.ErrorIs(t, res.Err, ErrBadRepoURL)
}

func TestRepoFromURL(t *testing.T) {
	testCases := []struct {
		url    string
		expect string
		ok     bool
	}{
		{"https://github.com/DramoraFramei/Clock-App", "DramoraFramei/Clock-App", true},
		{"https://github.com/DramoraFramei/Clock-App.git", "DramoraFramei/Clock-App", true},
		{"https://github.com/DramoraFramei/Clock-App/", "DramoraFramei/Clock-App", true},
		{"https://github.com/DramoraFramei/Clock-App/releases", "DramoraFramei/Clock-App", true},
		{"https://github.com/DramoraFramei", "", false},
		{"https://example.com/a/b", "", false},
		{"", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.url, func(t *testing.T) {
			got, err := RepoFromURL(tc.url)
			if !tc.ok {
				assert.ErrorIs(t, err, ErrBadRepoURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expect, got)
		})
	}
}

func TestNewer(t *testing.T) {
	assert.True(t, Newer("0.0.01", "0.0.02"))
	assert.True(t, Newer("0.0.01", "0.0.02-dev"))
	assert.True(t, Newer("0.9", "1.0.0"))
	assert.False(t, Newer("0.0.02", "0.0.02-beta"))
	assert.False(t, Newer("1.0.0", "0.9.9"))
	assert.False(t, Newer("0.0.01", "latest"))
}

func TestInterval(t *testing.T) {
	assert.Equal(t, 24*time.Hour, Interval("Daily"))
	assert.Equal(t, 7*24*time.Hour, Interval("Weekly"))
	assert.Equal(t, 30*24*time.Hour, Interval("Monthly"))
	assert.Equal(t, 24*time.Hour, Interval("Hourly"))
}

func TestSchedulerChecksAutomatically(t *testing.T) {
	srv := newServer(t, nil, releasesJSON, http.StatusOK)

	results := make(chan Result, 1)
	s := &Scheduler{
		Checker: newChecker(srv.URL, "0.0.01"),
		Settings: func() config.Settings {
			return config.Settings{UpdateOption: "Automatic", UpdateChannel: "Stable", UpdateSource: "GitHub", UpdateFrequency: "Daily"}
		},
		OnResult:   func(r Result) { results <- r },
		Do:         func(f func()) { f() },
		FirstDelay: time.Millisecond,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	select {
	case r := <-results:
		assert.True(t, r.HasUpdate)
		assert.Equal(t, "0.0.02", r.Latest)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not check")
	}
}

func TestSchedulerManualSkipsCheck(t *testing.T) {
	var hits atomic.Int64
	srv := newServer(t, &hits, releasesJSON, http.StatusOK)

	var asked atomic.Int64
	s := &Scheduler{
		Checker: newChecker(srv.URL, "0.0.01"),
		Settings: func() config.Settings {
			asked.Add(1)
			return config.Settings{UpdateOption: "Manual", UpdateSource: "GitHub"}
		},
		OnResult:   func(Result) { t.Error("unexpected result") },
		Do:         func(f func()) { f() },
		FirstDelay: time.Millisecond,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return asked.Load() > 0 }, time.Second, time.Millisecond)
	cancel()
	<-done
	assert.Zero(t, hits.Load())
}
