package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/sealbox/sealbox/internal/configs"
)

// Entry represents a single audit log entry.
type Entry struct {
	Timestamp string `json:"ts"`   // RFC3339 with microseconds.
	ID        string `json:"id"`   // Random identifier for this entry.
	User      string `json:"user"` // OS username performing the operation.
	Operation string `json:"op"`   // Operation name.

	// Optional fields depending on operation.
	Input      string `json:"input,omitempty"`       // Input file path.
	Output     string `json:"output,omitempty"`      // Output file path.
	Bytes      int64  `json:"bytes,omitempty"`       // Plaintext size in bytes.
	CostN      int    `json:"cost_n,omitempty"`      // scrypt N used.
	CostR      int    `json:"cost_r,omitempty"`      // scrypt r used.
	CostP      int    `json:"cost_p,omitempty"`      // scrypt p used.
	DurationMs int64  `json:"duration_ms,omitempty"` // Wall time of the operation.
}

// Log appends an entry to the audit log.
// If logging fails, the entry is dropped; operations should not fail
// just because audit logging failed.
func Log(entry Entry) {
	// Set timestamp if not already set.
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	logPath := LogPath()
	if logPath == "" {
		return
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// NewEntry is a convenience function that populates the identity fields.
func NewEntry(op string) Entry {
	return Entry{
		ID:        uuid.New().String(),
		User:      configs.UserSealboxSettings.Username,
		Operation: op,
	}
}

// LogPath returns the path to the audit log file.
func LogPath() string {
	if configs.UserSealboxSettings == nil || configs.UserSealboxSettings.UserDataPath == "" {
		return ""
	}
	return filepath.Join(configs.UserSealboxSettings.UserDataPath, "audit.jsonl")
}

// ReadEntries reads all entries from the audit log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries() ([]Entry, error) {
	logPath := LogPath()
	if logPath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				// Skip malformed entries.
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
