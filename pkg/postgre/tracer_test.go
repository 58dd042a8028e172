package postgre

import "testing"

func TestOperation(t *testing.T) {
	tests := map[string]string{
		"SELECT id FROM tasks":           "SELECT",
		"\n\t\tinsert into tasks (id)":   "INSERT",
		"   ":                            "UNKNOWN",
		"":                               "UNKNOWN",
		"DELETE FROM meetings WHERE id=": "DELETE",
	}
	for sql, want := range tests {
		if got := operation(sql); got != want {
			t.Errorf("operation(%q) = %q, want %q", sql, got, want)
		}
	}
}
