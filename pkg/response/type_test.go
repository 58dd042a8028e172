package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"personal-assistant/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	d := response.Date(time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC))

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}
	if string(b) != `"2024-05-01"` {
		t.Errorf("expected \"2024-05-01\", got %s", b)
	}
}

func TestTimestampMarshalJSON(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	ts := response.Timestamp(time.Date(2024, 5, 1, 15, 30, 0, 0, loc))

	b, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("unexpected error marshaling Timestamp: %v", err)
	}
	if string(b) != `"2024-05-01T15:30:00+07:00"` {
		t.Errorf("unexpected output %s", b)
	}
}
