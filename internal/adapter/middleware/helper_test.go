package middleware

import (
	"testing"
	"time"
)

func TestParseAxRequestAt(t *testing.T) {
	epoch := time.Date(2025, 9, 5, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{"epoch seconds", "1757066400", epoch, false},
		{"epoch millis", "1757066400000", epoch, false},
		{"rfc3339 zulu", "2025-09-05T10:00:00Z", epoch, false},
		{"rfc3339 offset", "2025-09-05T17:00:00+07:00", epoch, false},
		{"naive local time", "2025-09-05T10:00:00", time.Time{}, true},
		{"empty", "", time.Time{}, true},
		{"garbage", "yesterday", time.Time{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseAxRequestAt(tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("parsed %q to %v, want error", tc.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse %q: %v", tc.raw, err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestValidReqID(t *testing.T) {
	valid := []string{
		"0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f",
		"123e4567-e89b-12d3-a456-426614174000",
		"  0F0F0F0F0F0F0F0F0F0F0F0F0F0F0F0F  ", // trimmed and lowercased
	}
	for _, id := range valid {
		if !validReqID(id) {
			t.Fatalf("rejected valid id %q", id)
		}
	}

	invalid := []string{"", "abc", "123e4567-e89b-62d3-a456-426614174000", "not-a-request-id"}
	for _, id := range invalid {
		if validReqID(id) {
			t.Fatalf("accepted invalid id %q", id)
		}
	}
}

func TestBuildKey(t *testing.T) {
	got := buildKey("POST", "/api/borrows", "aaaa", "rrrr")
	want := "idemp:ax:post:/api/borrows:aaaa:rrrr"
	if got != want {
		t.Fatalf("key = %q, want %q", got, want)
	}
}
