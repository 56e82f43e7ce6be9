package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.json")
	entries := []json.RawMessage{
		json.RawMessage(`{"n":1}`),
		json.RawMessage(`{"n":2}`),
	}

	if err := WriteJSON(path, entries); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}

	var decoded []map[string]int
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}
	if len(decoded) != 2 || decoded[0]["n"] != 1 || decoded[1]["n"] != 2 {
		t.Errorf("unexpected artifact content: %v", decoded)
	}
}

func TestWriteJSON_EmptyResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.json")

	if err := WriteJSON(path, nil); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	var decoded []json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("artifact is not a JSON array: %v", err)
	}
	if len(decoded) != 0 {
		t.Errorf("expected empty array, got %d entries", len(decoded))
	}
}

func TestWriteJSONGz(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.json.gz")
	entries := []json.RawMessage{json.RawMessage(`{"msg":"hello"}`)}

	if err := WriteJSONGz(path, entries); err != nil {
		t.Fatalf("WriteJSONGz failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open artifact: %v", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("artifact is not gzip: %v", err)
	}
	defer gz.Close()

	var decoded []map[string]string
	if err := json.NewDecoder(gz).Decode(&decoded); err != nil {
		t.Fatalf("decompressed artifact is not valid JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0]["msg"] != "hello" {
		t.Errorf("unexpected artifact content: %v", decoded)
	}
}

func TestWriteJSON_NoPartialFileOnMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "logs.json")
	if err := WriteJSON(path, nil); err == nil {
		t.Fatal("expected error for missing directory")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected no artifact to exist")
	}
}
