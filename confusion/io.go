package confusion

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// ErrCorruptMatrix reports a persisted matrix that cannot be trusted:
// unparseable JSON, a negative or non-finite cost, or a missing default.
// Loading refuses to return a partially valid matrix.
var ErrCorruptMatrix = errors.New("confusion: corrupt matrix")

// Write serializes the matrix as indented JSON.
func (m *Matrix) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(m)
}

// Save writes the matrix to path, replacing any previous file.
func (m *Matrix) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := m.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Read parses and validates a matrix written by Write.
func Read(r io.Reader) (*Matrix, error) {
	var m Matrix
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptMatrix, err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	if m.Sub == nil {
		m.Sub = map[string]map[string]float64{}
	}
	if m.Ins == nil {
		m.Ins = map[string]float64{}
	}
	if m.Del == nil {
		m.Del = map[string]float64{}
	}
	return &m, nil
}

// Load reads a matrix file from disk.
func Load(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

func (m *Matrix) validate() error {
	check := func(where string, c float64) error {
		if math.IsNaN(c) || math.IsInf(c, 0) || c < 0 {
			return fmt.Errorf("%w: %s cost %v", ErrCorruptMatrix, where, c)
		}
		return nil
	}
	for from, row := range m.Sub {
		for to, c := range row {
			if err := check(fmt.Sprintf("sub %q->%q", from, to), c); err != nil {
				return err
			}
		}
	}
	for to, c := range m.Ins {
		if err := check(fmt.Sprintf("ins %q", to), c); err != nil {
			return err
		}
	}
	for from, c := range m.Del {
		if err := check(fmt.Sprintf("del %q", from), c); err != nil {
			return err
		}
	}
	if err := check("default sub", m.DefaultSub); err != nil {
		return err
	}
	if err := check("default ins", m.DefaultIns); err != nil {
		return err
	}
	return check("default del", m.DefaultDel)
}
