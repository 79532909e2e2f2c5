package gtfs

import (
	"archive/zip"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Refresh downloads the static GTFS zip and extracts its tables into dir
// with delete-and-replace semantics: previously extracted tables are
// removed before the new archive is unpacked. Returns the extracted file
// names, sorted.
func Refresh(dir, url string, client *http.Client) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("download static GTFS: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download static GTFS: HTTP %d from %s", resp.StatusCode, url)
	}

	tmp, err := os.CreateTemp("", "gtfs-*.zip")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		return nil, fmt.Errorf("save static GTFS: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, err
	}

	zr, err := zip.OpenReader(tmp.Name())
	if err != nil {
		return nil, fmt.Errorf("open static GTFS archive: %w", err)
	}
	defer zr.Close()

	if err := removeTables(dir); err != nil {
		return nil, err
	}

	var extracted []string
	for _, f := range zr.File {
		name := filepath.Base(f.Name)
		if !strings.HasSuffix(strings.ToLower(name), ".txt") {
			continue
		}
		if err := extractFile(f, filepath.Join(dir, name)); err != nil {
			return nil, fmt.Errorf("extract %s: %w", name, err)
		}
		extracted = append(extracted, name)
	}
	sort.Strings(extracted)
	return extracted, nil
}

func removeTables(dir string) error {
	old, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return err
	}
	for _, path := range old {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove stale table: %w", err)
		}
	}
	return nil
}

func extractFile(f *zip.File, dest string) error {
	r, err := f.Open()
	if err != nil {
		return err
	}
	defer r.Close()
	w, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
