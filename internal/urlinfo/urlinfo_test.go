package urlinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompose_SplitsHostFields(t *testing.T) {
	tests := []struct {
		url        string
		wantDomain string
		wantHost   string
		wantPath   string
	}{
		{"https://mail.google.com/x", "google.com", "mail.google.com", "/x"},
		{"https://www.mail.google.com/inbox", "google.com", "www.mail.google.com", "/inbox"},
		{"https://github.com/runnerr0/dwell", "github.com", "github.com", "/runnerr0/dwell"},
		{"http://blog.example.co.uk/post/1", "example.co.uk", "blog.example.co.uk", "/post/1"},
		{"https://stackoverflow.com", "stackoverflow.com", "stackoverflow.com", ""},
		{"https://example.com:8080/admin", "example.com", "example.com", "/admin"},
		{"HTTPS://WWW.Example.COM/Page", "example.com", "www.example.com", "/Page"},
	}

	for _, tc := range tests {
		info, err := Decompose(tc.url)
		require.NoError(t, err, "url %s", tc.url)
		assert.Equal(t, tc.wantDomain, info.RegistrableDomain, "domain for %s", tc.url)
		assert.Equal(t, tc.wantHost, info.FullHost, "host for %s", tc.url)
		assert.Equal(t, tc.wantPath, info.Path, "path for %s", tc.url)
	}
}

func TestDecompose_RejectsHostlessURLs(t *testing.T) {
	for _, url := range []string{
		"",
		"chrome://newtab/",
		"about:blank",
		"file:///tmp/notes.txt",
		"not a url at all",
		"mailto:someone@example.com",
	} {
		_, err := Decompose(url)
		assert.Error(t, err, "expected failure for %q", url)
	}
}

func TestDecompose_RejectsNonNavigationSchemes(t *testing.T) {
	// chrome:// URLs parse with a hostname ("newtab"), so these must be
	// rejected on scheme, not on a missing host.
	for _, url := range []string{
		"chrome://newtab/",
		"chrome://settings/passwords",
		"chrome-extension://gighmmpiobklfepjocnamgkkbiglidom/options.html",
		"edge://history/",
		"ftp://mirror.example.com/pub",
	} {
		_, err := Decompose(url)
		assert.Error(t, err, "expected failure for %q", url)
	}
}

func TestDecompose_UnlistedHostsFallBackToThemselves(t *testing.T) {
	info, err := Decompose("http://localhost:3000/dev")
	require.NoError(t, err)
	assert.Equal(t, "localhost", info.RegistrableDomain)
	assert.Equal(t, "localhost", info.FullHost)
}

func TestDecompose_IsPure(t *testing.T) {
	a, err := Decompose("https://news.ycombinator.com/item?id=1")
	require.NoError(t, err)
	b, err := Decompose("https://news.ycombinator.com/item?id=1")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
