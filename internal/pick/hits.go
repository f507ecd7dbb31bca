package pick

import (
	"errors"
	"fmt"
	"strings"

	"selection-issue/internal/selection"
)

var (
	ErrBufferOverflow     = errors.New("pick: hit buffer overflow")
	ErrMalformedHitRecord = errors.New("pick: malformed hit record")
)

// HitRecord is one entry of the select buffer:
// [nameCount, minDepth, maxDepth, names...].
type HitRecord struct {
	MinDepth uint32
	MaxDepth uint32
	Names    []uint32
}

// First returns the bottom name of the record's name stack. Names pushed on
// top of it are not composed into a path.
func (r HitRecord) First() (uint32, bool) {
	if len(r.Names) == 0 {
		return 0, false
	}
	return r.Names[0], true
}

func (r HitRecord) String() string {
	names := make([]string, len(r.Names))
	for i, n := range r.Names {
		names[i] = fmt.Sprint(n)
	}
	return fmt.Sprintf("[%d %#08x %#08x %s]", len(r.Names), r.MinDepth, r.MaxDepth, strings.Join(names, " "))
}

// ParseHitRecords walks hits records from the front of buf. A record that
// runs past the end of buf is an error, never a short read.
func ParseHitRecords(buf []uint32, hits int) ([]HitRecord, error) {
	if hits < 0 {
		return nil, ErrBufferOverflow
	}
	records := make([]HitRecord, 0, hits)
	pos := 0
	for i := 0; i < hits; i++ {
		if pos+3 > len(buf) {
			return records, fmt.Errorf("%w: record %d header at %d, buffer has %d words", ErrMalformedHitRecord, i, pos, len(buf))
		}
		count := int(buf[pos])
		if count > len(buf)-pos-3 {
			return records, fmt.Errorf("%w: record %d claims %d names, %d words left", ErrMalformedHitRecord, i, count, len(buf)-pos-3)
		}
		rec := HitRecord{
			MinDepth: buf[pos+1],
			MaxDepth: buf[pos+2],
			Names:    append([]uint32(nil), buf[pos+3:pos+3+count]...),
		}
		records = append(records, rec)
		pos += 3 + count
	}
	return records, nil
}

// DecodeLastWins reproduces the demo's decode straight off the buffer: every
// record overwrites the candidate, so the final record wins regardless of depth.
func DecodeLastWins(buf []uint32, hits int) (int, error) {
	records, err := ParseHitRecords(buf, hits)
	if err != nil {
		return selection.None, err
	}
	return Decode(records, LastWins), nil
}

// Decode turns parsed records into a selection. Records without names carry
// no candidate and are skipped.
func Decode(records []HitRecord, s Strategy) int {
	selected := selection.None
	switch s {
	case Nearest:
		var best uint32
		for _, rec := range records {
			name, ok := rec.First()
			if !ok {
				continue
			}
			// Равная глубина: остаётся первая запись
			if selected == selection.None || rec.MinDepth < best {
				selected = int(name)
				best = rec.MinDepth
			}
		}
	default:
		for _, rec := range records {
			if name, ok := rec.First(); ok {
				selected = int(name)
			}
		}
	}
	return selected
}
