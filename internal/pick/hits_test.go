package pick

import (
	"errors"
	"testing"

	"selection-issue/internal/selection"
)

func TestDecodeLastWinsSyntheticBuffer(t *testing.T) {
	buf := []uint32{1, 0, 0, 7, 1, 0, 0, 3}
	got, err := DecodeLastWins(buf, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 3 {
		t.Errorf("expected last record to win with 3, got %d", got)
	}
}

func TestDecodeStrategies(t *testing.T) {
	tests := []struct {
		name     string
		buf      []uint32
		hits     int
		strategy Strategy
		want     int
	}{
		{"last wins ignores depth", []uint32{1, 10, 10, 7, 1, 90, 90, 3}, 2, LastWins, 3},
		{"nearest picks min depth", []uint32{1, 10, 10, 7, 1, 90, 90, 3}, 2, Nearest, 7},
		{"nearest on ties keeps first", []uint32{1, 0, 0, 7, 1, 0, 0, 3}, 2, Nearest, 7},
		{"nearest later record closer", []uint32{1, 90, 95, 7, 1, 5, 95, 3}, 2, Nearest, 3},
		{"only first name counts", []uint32{3, 0, 0, 4, 5, 6}, 1, LastWins, 4},
		{"nameless record is skipped", []uint32{1, 0, 0, 8, 0, 0, 0}, 2, LastWins, 8},
		{"no hits", []uint32{1, 0, 0, 8}, 0, LastWins, selection.None},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			records, err := ParseHitRecords(tc.buf, tc.hits)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got := Decode(records, tc.strategy); got != tc.want {
				t.Errorf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestParseHitRecordsKeepsRawStream(t *testing.T) {
	buf := []uint32{2, 11, 12, 4, 5, 1, 13, 14, 9, 0xdead}
	records, err := ParseHitRecords(buf, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].MinDepth != 11 || records[0].MaxDepth != 12 || len(records[0].Names) != 2 || records[0].Names[1] != 5 {
		t.Errorf("unexpected first record %+v", records[0])
	}
	if records[1].MinDepth != 13 || records[1].Names[0] != 9 {
		t.Errorf("unexpected second record %+v", records[1])
	}
	// Parsed names must not alias the buffer.
	buf[3] = 99
	if records[0].Names[0] != 4 {
		t.Error("record names alias the select buffer")
	}
}

func TestParseHitRecordsFailsFastOnTruncation(t *testing.T) {
	tests := []struct {
		name string
		buf  []uint32
		hits int
	}{
		{"missing header", []uint32{1, 0, 0, 7, 1, 0}, 2},
		{"names past end", []uint32{1, 0, 0, 7, 4, 0, 0, 3}, 2},
		{"more hits than data", []uint32{}, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseHitRecords(tc.buf, tc.hits)
			if !errors.Is(err, ErrMalformedHitRecord) {
				t.Errorf("expected ErrMalformedHitRecord, got %v", err)
			}
		})
	}
}

func TestParseHitRecordsOverflow(t *testing.T) {
	if _, err := ParseHitRecords([]uint32{1, 0, 0, 1}, -1); !errors.Is(err, ErrBufferOverflow) {
		t.Errorf("expected ErrBufferOverflow, got %v", err)
	}
	if got, err := DecodeLastWins(nil, -1); got != selection.None || err == nil {
		t.Errorf("expected None and an error, got %d, %v", got, err)
	}
}

func TestParseStrategy(t *testing.T) {
	for _, s := range []Strategy{LastWins, Nearest} {
		got, err := ParseStrategy(s.String())
		if err != nil || got != s {
			t.Errorf("ParseStrategy(%q) = %v, %v", s.String(), got, err)
		}
	}
	if _, err := ParseStrategy("closest"); err == nil {
		t.Error("expected error for unknown strategy")
	}
	if Nearest.Next() != LastWins {
		t.Error("expected Next to wrap around")
	}
}
