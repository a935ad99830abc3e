package export

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// writeTempCSV writes content to a temp file and returns its path.
func writeTempCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestReadIdentifiers(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		column      string
		expected    []string
		expectError string
	}{
		{
			name:     "single column",
			content:  "username\nalice\nbob\n",
			column:   "username",
			expected: []string{"alice", "bob"},
		},
		{
			name:     "identifier column among others",
			content:  "id,username,notes\n1,alice,x\n2,bob,y\n",
			column:   "username",
			expected: []string{"alice", "bob"},
		},
		{
			name:     "default column name",
			content:  "username\ncarol\n",
			column:   "",
			expected: []string{"carol"},
		},
		{
			name:     "blank cells skipped",
			content:  "username\nalice\n\nbob\n",
			column:   "username",
			expected: []string{"alice", "bob"},
		},
		{
			name:     "order preserved",
			content:  "username\nzeta\nalpha\nmid\n",
			column:   "username",
			expected: []string{"zeta", "alpha", "mid"},
		},
		{
			name:     "header only",
			content:  "username\n",
			column:   "username",
			expected: nil,
		},
		{
			name:        "missing column",
			content:     "login\nalice\n",
			column:      "username",
			expectError: `no "username" column`,
		},
		{
			name:        "empty file",
			content:     "",
			column:      "username",
			expectError: "empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempCSV(t, tt.content)

			identifiers, err := ReadIdentifiers(path, tt.column)

			if tt.expectError != "" {
				if err == nil {
					t.Fatal("Expected error but got nil")
				}
				if !strings.Contains(err.Error(), tt.expectError) {
					t.Errorf("Error = %q, want it to contain %q", err.Error(), tt.expectError)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !reflect.DeepEqual(identifiers, tt.expected) {
				t.Errorf("Identifiers = %v, want %v", identifiers, tt.expected)
			}
		})
	}
}

func TestReadIdentifiers_MissingFile(t *testing.T) {
	_, err := ReadIdentifiers(filepath.Join(t.TempDir(), "nope.csv"), "username")
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
}
