package remote_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"iconbundle/internal/domain"
	"iconbundle/internal/remote"
)

const tabCollection = `{"prefix":"tab","icons":{"x":{"body":"<path d='M0 0h4'/>"}}}`

func newServer(t *testing.T, handler http.HandlerFunc) *remote.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &remote.Client{Base: srv.URL, HTTP: srv.Client()}
}

func TestFetchCollection_OK(t *testing.T) {
	var gotPath string
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(tabCollection))
	})

	var f domain.CollectionFetcher = client
	data, err := f.FetchCollection("tab")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if gotPath != "/tab.json" {
		t.Fatalf("requested %q, want /tab.json", gotPath)
	}
	if string(data) != tabCollection {
		t.Fatalf("payload altered: %q", data)
	}
}

func TestFetchCollection_NotFound(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := client.FetchCollection("ghost")
	if err == nil {
		t.Fatalf("expected error for 404")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Fatalf("err = %v, want status mentioned", err)
	}
}

func TestFetchCollection_RejectsBadPayload(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>rate limited</html>`))
	})
	if _, err := client.FetchCollection("tab"); err == nil {
		t.Fatalf("expected error for non-collection payload")
	}
}

func TestFetchCollection_RejectsWrongPrefix(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(tabCollection))
	})
	if _, err := client.FetchCollection("mdi"); err == nil {
		t.Fatalf("expected error for prefix mismatch")
	}
}
