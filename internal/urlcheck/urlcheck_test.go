package urlcheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, body string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

var banned = []string{"api.abbababa.com", "agents.abbababa.com", "www.abbababa.com"}

func TestScan(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/lib/jobs.ts", "const a = 1;\nfetch(\"https://api.abbababa.com/v1\")\n")
	writeFile(t, root, "src/content/jobs/x.json", `{"u":"http://www.abbababa.com","v":"https://abbababa.com/api/v1"}`)
	writeFile(t, root, "public/readme.md", "see https://agents.abbababa.com and https://agents.abbababa.com/x\n")
	writeFile(t, root, "src/node_modules/pkg/index.ts", "https://api.abbababa.com\n")
	writeFile(t, root, "src/logo.svg", "https://api.abbababa.com\n")

	s := NewScanner(root, []string{"src", "scripts", "public"}, []string{".ts", ".json", ".md"}, banned)
	findings, err := s.Scan()
	require.NoError(t, err)

	require.Len(t, findings, 4)
	assert.Equal(t, "public/readme.md", findings[0].File)
	assert.Equal(t, "agents.abbababa.com", findings[0].Host)
	assert.Equal(t, "https://agents.abbababa.com", findings[1].Match)
	assert.Equal(t, "http://www.abbababa.com", findings[2].Match)
	assert.Equal(t, Finding{File: "src/lib/jobs.ts", Line: 2, Match: "https://api.abbababa.com", Host: "api.abbababa.com"}, findings[3])
}

func TestScan_Clean(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/a.ts", "https://careers.abbababa.com/en\nhttps://abbababa.com/api/v1\n")

	findings, err := NewScanner(root, []string{"src", "missing"}, []string{".ts"}, banned).Scan()
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("method = %s", r.Method)
		}
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewChecker(srv.Client(), time.Second)
	results := c.Check(context.Background(), srv.URL+"/", []string{"/", "/en", "/missing"})

	require.Len(t, results, 3)
	assert.True(t, results[0].OK())
	assert.Equal(t, srv.URL+"/en", results[1].URL)
	assert.False(t, results[2].OK())
	assert.Equal(t, http.StatusNotFound, results[2].Status)
	assert.Contains(t, results[2].Err, "got 404")
}

func TestCheck_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	results := NewChecker(srv.Client(), 50*time.Millisecond).Check(context.Background(), srv.URL, []string{"/"})
	assert.Zero(t, results[0].Status)
	assert.NotEmpty(t, results[0].Err)
}

func TestReason(t *testing.T) {
	assert.Equal(t, "use abbababa.com (no www)", Reason("www.abbababa.com"))
	assert.Equal(t, "banned host", Reason("old.example.com"))
}
