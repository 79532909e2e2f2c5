package gtfs

import (
	"archive/zip"
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func gtfsZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("zip write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return buf.Bytes()
}

func TestRefresh(t *testing.T) {
	payload := gtfsZip(t, map[string]string{
		"stops.txt":  "stop_id,stop_name,stop_lat,stop_lon\n1,A,30.0,-97.0\n",
		"routes.txt": "route_id,route_short_name,route_long_name,route_type\n1,1,Test,3\n",
		"readme.md":  "not a table\n",
	})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	dir := t.TempDir()
	// A stale table from a previous feed version must not survive.
	writeTable(t, dir, "calendar.txt", "service_id\nold\n")

	files, err := Refresh(dir, srv.URL, &http.Client{Timeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	want := []string{"routes.txt", "stops.txt"}
	if len(files) != len(want) {
		t.Fatalf("expected %v, got %v", want, files)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("expected %v, got %v", want, files)
			break
		}
	}

	if _, err := os.Stat(filepath.Join(dir, "calendar.txt")); !os.IsNotExist(err) {
		t.Error("stale table should have been removed")
	}
	if _, err := os.Stat(filepath.Join(dir, "readme.md")); !os.IsNotExist(err) {
		t.Error("non-table archive members should not be extracted")
	}

	data, err := os.ReadFile(filepath.Join(dir, "stops.txt"))
	if err != nil {
		t.Fatalf("read extracted stops.txt: %v", err)
	}
	if !bytes.Contains(data, []byte("stop_id")) {
		t.Error("extracted stops.txt is missing its header")
	}
}

func TestRefreshHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := Refresh(t.TempDir(), srv.URL, &http.Client{Timeout: 5 * time.Second})
	if err == nil {
		t.Fatal("expected an error for HTTP 404")
	}
}
