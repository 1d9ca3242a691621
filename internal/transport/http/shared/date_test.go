package shared

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "date only",
			input: "1990-01-01",
			want:  time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339",
			input: "1990-01-01T00:00:00Z",
			want:  time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "empty is zero",
			input: "",
			want:  time.Time{},
		},
		{
			name:    "garbage",
			input:   "01/01/1990",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDate(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected parse error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}
