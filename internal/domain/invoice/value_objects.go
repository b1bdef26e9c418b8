package invoice

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var (
	ErrInvalidID         = errors.New("invalid invoice id")
	ErrSequenceExhausted = errors.New("invoice sequence exhausted for month")
)

// ID is a month-scoped invoice number of the form YYMM###: two-digit year,
// two-digit month, three-digit sequence starting at 001 each month.
type ID string

var (
	idPattern = regexp.MustCompile(`^(\d{2})(\d{2})(\d{3})$`)
	// notePattern finds an embedded invoice id in a free-text ledger note,
	// e.g. "[2601007] Budi (Tunai) - Kenzo".
	notePattern = regexp.MustCompile(`\[(\d{4})(\d{3})\]`)
)

func NewID(prefix string, sequence int) (ID, error) {
	if len(prefix) != 4 || sequence < 1 {
		return "", ErrInvalidID
	}
	if sequence > 999 {
		return "", ErrSequenceExhausted
	}
	return ID(fmt.Sprintf("%s%03d", prefix, sequence)), nil
}

func ParseID(s string) (ID, error) {
	if !idPattern.MatchString(s) {
		return "", ErrInvalidID
	}
	return ID(s), nil
}

func (id ID) String() string {
	return string(id)
}

// Prefix is the YYMM month bucket of the id.
func (id ID) Prefix() string {
	return string(id)[:4]
}

// Sequence is the three-digit counter within the month.
func (id ID) Sequence() int {
	n, _ := strconv.Atoi(string(id)[4:])
	return n
}

// MonthPrefix builds the YYMM bucket for a point in business time.
func MonthPrefix(t time.Time) string {
	return t.Format("0601")
}

// NextInMonth computes the next id for the month bucket by scanning the ids
// already issued (structured column first, bracket-embedded notes for legacy
// rows) and taking max+1, or 001 when the month is empty. Out-of-order ledger
// writes do not confuse it; concurrent callers must be serialized by the
// caller.
func NextInMonth(prefix string, issued []ID, legacyNotes []string) (ID, error) {
	maxSeq := 0
	for _, id := range issued {
		if len(id) == 7 && id.Prefix() == prefix {
			if seq := id.Sequence(); seq > maxSeq {
				maxSeq = seq
			}
		}
	}
	for _, note := range legacyNotes {
		for _, m := range notePattern.FindAllStringSubmatch(note, -1) {
			if m[1] != prefix {
				continue
			}
			if seq, err := strconv.Atoi(m[2]); err == nil && seq > maxSeq {
				maxSeq = seq
			}
		}
	}
	return NewID(prefix, maxSeq+1)
}

// FromNote extracts the embedded invoice id from a ledger note.
func FromNote(note string) (ID, bool) {
	m := notePattern.FindStringSubmatch(note)
	if m == nil {
		return "", false
	}
	return ID(m[1] + m[2]), true
}
