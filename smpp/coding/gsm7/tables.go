package gsm7

import (
	"errors"
	"sort"
	"strings"
)

// Escape is the septet that switches the next septet to the single shift table.
const Escape = 0x1B

// ErrUnknownTable is returned when a language name does not match any table.
var ErrUnknownTable = errors.New("gsm7: unknown language table")

// Table is a National Language Identifier as defined by 3GPP TS 23.038.
type Table uint8

const (
	Default Table = iota
	Turkish
	Spanish
	Portuguese
	Bengali
	Gujarati
	Hindi
	Kannada
	Malayalam
	Oriya
	Punjabi
	Tamil
	Telugu
	Urdu

	numTables
)

var tableNames = [numTables]string{
	"default", "turkish", "spanish", "portuguese", "bengali", "gujarati", "hindi",
	"kannada", "malayalam", "oriya", "punjabi", "tamil", "telugu", "urdu",
}

func (t Table) String() string {
	if t >= numTables {
		return "unknown"
	}
	return tableNames[t]
}

// Valid reports whether t names one of the predefined tables.
func (t Table) Valid() bool {
	return t < numTables
}

// ParseTable resolves a case-insensitive language name. An empty name is Default.
func ParseTable(name string) (Table, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Default, nil
	}
	for i, n := range tableNames {
		if n == name {
			return Table(i), nil
		}
	}
	return Default, ErrUnknownTable
}

// MarshalText renders t by name, so JSON carries "turkish" rather than 1.
func (t Table) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, ErrUnknownTable
	}
	return []byte(t.String()), nil
}

func (t *Table) UnmarshalText(text []byte) error {
	parsed, err := ParseTable(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Tables returns every identifier in ascending order.
func Tables() []Table {
	all := make([]Table, numTables)
	for i := range all {
		all[i] = Table(i)
	}
	return all
}

// ShiftTables selects the single shift and locking shift tables used for one
// encode or decode call. The zero value uses the default alphabet on both sides.
type ShiftTables struct {
	Single  Table `json:"single"`
	Locking Table `json:"locking"`
}

func (st ShiftTables) String() string {
	return st.Locking.String() + "/" + st.Single.String()
}

// Mapping pairs a code point with the septet that encodes it.
type Mapping struct {
	CodePoint uint16
	Septet    byte
}

// LanguageTable is an immutable alphabet: septet to code point and back.
type LanguageTable struct {
	forward [128]uint16
	reverse []Mapping
}

func newLanguageTable(forward *[128]uint16) *LanguageTable {
	lt := &LanguageTable{forward: *forward}
	lt.forward[Escape] = 0

	seen := make(map[uint16]struct{}, len(forward))
	for septet, cp := range lt.forward {
		if cp == 0 {
			continue
		}
		// reference data repeats a few symbols, the lowest septet wins
		if _, dup := seen[cp]; dup {
			continue
		}
		seen[cp] = struct{}{}
		lt.reverse = append(lt.reverse, Mapping{CodePoint: cp, Septet: byte(septet)})
	}
	sort.Slice(lt.reverse, func(i, j int) bool {
		return lt.reverse[i].CodePoint < lt.reverse[j].CodePoint
	})
	return lt
}

// Rune returns the code point stored at septet, or false for an unmapped slot.
func (lt *LanguageTable) Rune(septet byte) (uint16, bool) {
	cp := lt.forward[septet&0x7F]
	return cp, cp != 0
}

// Septet finds the septet for cp by binary search of the reverse list.
func (lt *LanguageTable) Septet(cp uint16) (byte, bool) {
	i := sort.Search(len(lt.reverse), func(i int) bool {
		return lt.reverse[i].CodePoint >= cp
	})
	if i < len(lt.reverse) && lt.reverse[i].CodePoint == cp {
		return lt.reverse[i].Septet, true
	}
	return 0, false
}

// Mappings returns a copy of the reverse list, sorted by code point.
func (lt *LanguageTable) Mappings() []Mapping {
	return append([]Mapping(nil), lt.reverse...)
}

var (
	lockingTables [numTables]*LanguageTable
	singleTables  [numTables]*LanguageTable
)

func init() {
	for t := Default; t < numTables; t++ {
		lockingTables[t] = newLanguageTable(lockingData[t])
		singleTables[t] = newLanguageTable(singleShiftData[t])
	}
}

// LockingTable returns the locking shift alphabet for t. Unknown identifiers
// fall back to Default.
func LockingTable(t Table) *LanguageTable {
	if !t.Valid() {
		t = Default
	}
	return lockingTables[t]
}

// SingleShiftTable returns the single shift (escape) alphabet for t. Unknown
// identifiers fall back to Default.
func SingleShiftTable(t Table) *LanguageTable {
	if !t.Valid() {
		t = Default
	}
	return singleTables[t]
}
