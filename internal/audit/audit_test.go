package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sealbox/sealbox/internal/configs"
)

// withTempDataDir points the audit log at a temp directory.
func withTempDataDir(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	originalSettings := configs.UserSealboxSettings
	configs.UserSealboxSettings = &configs.UserSettings{
		UserDataPath: tempDir,
		Username:     "testuser",
	}
	t.Cleanup(func() {
		configs.UserSealboxSettings = originalSettings
	})
	return tempDir
}

func TestLog_CreatesFile(t *testing.T) {
	tempDir := withTempDataDir(t)

	entry := Entry{
		User:      "testuser",
		Operation: "encrypt",
		Input:     "notes.txt",
		Output:    "notes.txt.sealed",
	}
	Log(entry)

	logPath := filepath.Join(tempDir, "audit.jsonl")
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Fatalf("Audit log file was not created")
	}
}

func TestLog_AppendsEntries(t *testing.T) {
	tempDir := withTempDataDir(t)

	Log(Entry{User: "alice", Operation: "encrypt"})
	Log(Entry{User: "bob", Operation: "decrypt"})
	Log(Entry{User: "carol", Operation: "encrypt"})

	data, err := os.ReadFile(filepath.Join(tempDir, "audit.jsonl"))
	if err != nil {
		t.Fatalf("Failed to read audit log: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Errorf("Expected 3 lines, got %d", len(lines))
	}
}

func TestLog_ValidJSON(t *testing.T) {
	tempDir := withTempDataDir(t)

	entry := Entry{
		User:      "testuser",
		Operation: "encrypt",
		Input:     "notes.txt",
		Output:    "notes.txt.sealed",
		Bytes:     1024,
		CostN:     1 << 15,
		CostR:     8,
		CostP:     1,
	}
	Log(entry)

	data, err := os.ReadFile(filepath.Join(tempDir, "audit.jsonl"))
	if err != nil {
		t.Fatalf("Failed to read audit log: %v", err)
	}

	var parsed Entry
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &parsed); err != nil {
		t.Fatalf("Entry is not valid JSON: %v", err)
	}

	if parsed.User != "testuser" {
		t.Errorf("Expected user testuser, got %s", parsed.User)
	}
	if parsed.Operation != "encrypt" {
		t.Errorf("Expected operation encrypt, got %s", parsed.Operation)
	}
	if parsed.Bytes != 1024 {
		t.Errorf("Expected 1024 bytes, got %d", parsed.Bytes)
	}
	if parsed.CostN != 1<<15 {
		t.Errorf("Expected cost_n %d, got %d", 1<<15, parsed.CostN)
	}
}

func TestLog_TimestampFormat(t *testing.T) {
	tempDir := withTempDataDir(t)

	// Log an entry without timestamp (should be auto-set).
	Log(Entry{User: "testuser", Operation: "encrypt"})

	data, err := os.ReadFile(filepath.Join(tempDir, "audit.jsonl"))
	if err != nil {
		t.Fatalf("Failed to read audit log: %v", err)
	}

	var parsed Entry
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &parsed); err != nil {
		t.Fatalf("Entry is not valid JSON: %v", err)
	}

	// Check timestamp format: 2006-01-02T15:04:05.000000Z.
	if parsed.Timestamp == "" {
		t.Errorf("Timestamp should be auto-set")
	}
	if !strings.HasSuffix(parsed.Timestamp, "Z") {
		t.Errorf("Timestamp should end with Z, got %s", parsed.Timestamp)
	}
	if !strings.Contains(parsed.Timestamp, ".") {
		t.Errorf("Timestamp should contain microseconds, got %s", parsed.Timestamp)
	}
}

func TestLog_OmitsEmptyFields(t *testing.T) {
	tempDir := withTempDataDir(t)

	// Log an entry with only required fields.
	Log(Entry{User: "testuser", Operation: "decrypt"})

	data, err := os.ReadFile(filepath.Join(tempDir, "audit.jsonl"))
	if err != nil {
		t.Fatalf("Failed to read audit log: %v", err)
	}

	line := strings.TrimSpace(string(data))

	if strings.Contains(line, `"input"`) {
		t.Errorf("Empty input field should be omitted")
	}
	if strings.Contains(line, `"bytes"`) {
		t.Errorf("Empty bytes field should be omitted")
	}
	if strings.Contains(line, `"duration_ms"`) {
		t.Errorf("Empty duration_ms field should be omitted")
	}
}

func TestLog_NoDataPath(t *testing.T) {
	originalSettings := configs.UserSealboxSettings
	configs.UserSealboxSettings = &configs.UserSettings{UserDataPath: ""}
	defer func() {
		configs.UserSealboxSettings = originalSettings
	}()

	// Log should not panic or error.
	Log(Entry{User: "testuser", Operation: "encrypt"}) // Should silently do nothing.
}

func TestNewEntry(t *testing.T) {
	withTempDataDir(t)

	entry := NewEntry("encrypt")

	if entry.Operation != "encrypt" {
		t.Errorf("Expected operation encrypt, got %s", entry.Operation)
	}
	if entry.User != "testuser" {
		t.Errorf("Expected user testuser, got %s", entry.User)
	}
	if len(entry.ID) != 36 {
		t.Errorf("Expected a 36-character entry ID, got %q", entry.ID)
	}

	second := NewEntry("encrypt")
	if second.ID == entry.ID {
		t.Error("Two entries share an ID")
	}
}

func TestReadEntries_RoundTrip(t *testing.T) {
	withTempDataDir(t)

	Log(Entry{User: "alice", Operation: "encrypt", Input: "a.txt"})
	Log(Entry{User: "alice", Operation: "decrypt", Input: "a.txt.sealed"})

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	if entries[0].Operation != "encrypt" || entries[1].Operation != "decrypt" {
		t.Errorf("Entries out of order: %+v", entries)
	}
}

func TestReadEntries_MissingLog(t *testing.T) {
	withTempDataDir(t)

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}

	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

func TestParseEntries_ValidData(t *testing.T) {
	data := []byte(`{"ts":"2024-01-15T10:30:00.123456Z","user":"alice","op":"encrypt"}
{"ts":"2024-01-15T10:35:00.456789Z","user":"bob","op":"decrypt"}
`)

	entries, err := ParseEntries(data)
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}

	if len(entries) != 2 {
		t.Errorf("Expected 2 entries, got %d", len(entries))
	}

	if entries[0].User != "alice" {
		t.Errorf("Expected first user alice, got %s", entries[0].User)
	}
	if entries[1].User != "bob" {
		t.Errorf("Expected second user bob, got %s", entries[1].User)
	}
}

func TestParseEntries_SkipsMalformedLines(t *testing.T) {
	data := []byte(`{"ts":"2024-01-15T10:30:00.123456Z","user":"alice","op":"encrypt"}
this is not valid json
{"ts":"2024-01-15T10:35:00.456789Z","user":"bob","op":"decrypt"}
`)

	entries, err := ParseEntries(data)
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}

	if len(entries) != 2 {
		t.Errorf("Expected 2 valid entries (malformed should be skipped), got %d", len(entries))
	}
}

func TestParseEntries_EmptyData(t *testing.T) {
	entries, err := ParseEntries([]byte{})
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}

	if entries != nil {
		t.Errorf("Expected nil entries for empty data, got %v", entries)
	}
}

func TestLogPath_WithDataDir(t *testing.T) {
	originalSettings := configs.UserSealboxSettings
	configs.UserSealboxSettings = &configs.UserSettings{UserDataPath: "/test/data/sealbox"}
	defer func() {
		configs.UserSealboxSettings = originalSettings
	}()

	path := LogPath()
	expected := "/test/data/sealbox/audit.jsonl"
	if path != expected {
		t.Errorf("Expected %s, got %s", expected, path)
	}
}

func TestLogPath_NoDataDir(t *testing.T) {
	originalSettings := configs.UserSealboxSettings
	configs.UserSealboxSettings = &configs.UserSettings{UserDataPath: ""}
	defer func() {
		configs.UserSealboxSettings = originalSettings
	}()

	path := LogPath()
	if path != "" {
		t.Errorf("Expected empty path, got %s", path)
	}
}
