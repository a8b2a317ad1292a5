// Package machine holds the cabinet state that survives between plays: the
// credit counter and the high-score table.
package machine

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

const (
	Magic = "CKONGM1*"

	// Scores is the length of the high-score table.
	Scores = 5

	MaxCredits = 99

	// DefaultHighScore seeds the top of a fresh table.
	DefaultHighScore = 998779
)

// ErrBadMagic is returned when a machine file does not start with Magic.
var ErrBadMagic = errors.New("machine: bad magic")

// Score is one high-score table entry.
type Score struct {
	Name  [3]byte
	Score uint32
}

// Initials returns the entry name as a string.
func (s Score) Initials() string {
	return strings.TrimRight(string(s.Name[:]), "\x00 ")
}

// NewScore builds an entry, padding or cutting name to three upper case
// letters.
func NewScore(name string, score uint32) Score {
	s := Score{Name: [3]byte{' ', ' ', ' '}, Score: score}
	copy(s.Name[:], strings.ToUpper(name))
	return s
}

// Machine is the persistent cabinet state.
type Machine struct {
	Credits uint8
	Table   [Scores]Score
}

// New returns a machine with no credits and the stock high-score table.
func New() *Machine {
	m := &Machine{}
	stock := [Scores]struct {
		name  string
		score uint32
	}{
		{"JMP", DefaultHighScore},
		{"DKG", 610100},
		{"PLN", 500000},
		{"MRO", 250000},
		{"OIL", 100000},
	}
	for i, s := range stock {
		m.Table[i] = NewScore(s.name, s.score)
	}
	return m
}

// HighScore returns the top table entry's score.
func (m *Machine) HighScore() uint32 {
	return m.Table[0].Score
}

// AddCredit increments the credit counter up to MaxCredits.
func (m *Machine) AddCredit() bool {
	if m.Credits >= MaxCredits {
		return false
	}
	m.Credits++
	return true
}

// UseCredit consumes one credit.
func (m *Machine) UseCredit() bool {
	if m.Credits == 0 {
		return false
	}
	m.Credits--
	return true
}

// Qualifies reports whether score would enter the table.
func (m *Machine) Qualifies(score uint32) bool {
	return score > m.Table[Scores-1].Score
}

// Insert places the score in the table and returns its rank, or -1 when it
// does not qualify.
func (m *Machine) Insert(name string, score uint32) int {
	if !m.Qualifies(score) {
		return -1
	}
	entries := append(m.Table[:Scores-1:Scores-1], NewScore(name, score))
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	copy(m.Table[:], entries)
	for i, e := range m.Table {
		if e.Score == score && e.Initials() == NewScore(name, score).Initials() {
			return i
		}
	}
	return -1
}

// Encode writes the machine in file format.
func (m *Machine) Encode(w io.Writer) error {
	if _, err := io.WriteString(w, Magic); err != nil {
		return fmt.Errorf("machine: write magic: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, m); err != nil {
		return fmt.Errorf("machine: write: %w", err)
	}
	return nil
}

// Decode reads a machine in file format.
func Decode(r io.Reader) (*Machine, error) {
	header := make([]byte, len(Magic))
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("machine: read magic: %w", err)
	}
	if !bytes.Equal(header, []byte(Magic)) {
		return nil, ErrBadMagic
	}
	m := &Machine{}
	if err := binary.Read(r, binary.LittleEndian, m); err != nil {
		return nil, fmt.Errorf("machine: read: %w", err)
	}
	if m.Credits > MaxCredits {
		m.Credits = MaxCredits
	}
	return m, nil
}

// Load reads the machine file at path. On error a fresh machine is returned
// with it.
func Load(path string) (*Machine, error) {
	f, err := os.Open(path)
	if err != nil {
		return New(), fmt.Errorf("machine: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Decode(bufio.NewReader(f))
	if err != nil {
		return New(), err
	}
	return m, nil
}

// Save writes the machine file to path.
func (m *Machine) Save(path string) error {
	var buf bytes.Buffer
	if err := m.Encode(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("machine: write %s: %w", path, err)
	}
	return nil
}
