// Package export writes the accumulated log entries to a local artifact.
// Artifacts are written wholesale after the retrieval session succeeds; a
// failed session never leaves a partial file behind.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

// WriteJSON serializes entries as an indented JSON array and writes the
// file atomically via a temp file in the destination directory.
func WriteJSON(path string, entries []json.RawMessage) error {
	data, err := marshalEntries(entries)
	if err != nil {
		return err
	}
	return writeAtomic(path, data)
}

// WriteJSONGz writes the same artifact gzip-compressed.
func WriteJSONGz(path string, entries []json.RawMessage) error {
	data, err := marshalEntries(entries)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".logfetch-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	gz := gzip.NewWriter(tmp)
	if _, err := gz.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("compress artifact: %w", err)
	}
	if err := gz.Close(); err != nil {
		tmp.Close()
		return fmt.Errorf("compress artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}

// marshalEntries renders a JSON array even when entries is nil, so an
// export that matched nothing still produces a valid artifact.
func marshalEntries(entries []json.RawMessage) ([]byte, error) {
	if entries == nil {
		entries = []json.RawMessage{}
	}
	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encode artifact: %w", err)
	}
	return data, nil
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".logfetch-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}
