package tracekit

import (
	"fmt"
	"sync"
)

// CheckedSet wraps a record set so every mutation is validated before it
// is committed. A mutation that fails the checks leaves the held set
// untouched and returns the *Report describing the first violation.
//
// The set can be frozen, after which every mutator fails with ErrReadOnly.
// Unchanged content is not re-validated: commits compare fingerprints
// against the last set that passed.
//
// Example:
//
//	cs, err := tracekit.NewCheckedSet(records)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := cs.SetField("evdp", 33.0); err != nil {
//		log.Fatal(err)
//	}
type CheckedSet struct {
	mu      sync.Mutex
	records RecordSet
	extra   []string
	frozen  bool
	lastOK  uint64
}

// NewCheckedSet validates set and wraps a deep copy of it. The extra
// required attributes apply to every later check as well.
func NewCheckedSet(set RecordSet, extraRequired ...string) (*CheckedSet, error) {
	dup := set.Clone()
	if rep := Check(dup, extraRequired...); rep != nil {
		return nil, rep
	}
	return &CheckedSet{
		records: dup,
		extra:   append([]string(nil), extraRequired...),
		lastOK:  dup.Fingerprint(),
	}, nil
}

// Records returns a deep copy of the held set.
func (cs *CheckedSet) Records() RecordSet {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.records.Clone()
}

// Len returns the number of records held.
func (cs *CheckedSet) Len() int {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return len(cs.records)
}

// Append validates the set extended with the given records and commits it
// when the checks pass.
func (cs *CheckedSet) Append(recs ...*Record) error {
	return cs.Apply(func(set RecordSet) (RecordSet, error) {
		for _, r := range recs {
			set = append(set, r.Clone())
		}
		return set, nil
	})
}

// SetField assigns a numeric header field on every record, committing
// only when the result passes the checks.
func (cs *CheckedSet) SetField(name string, v float64) error {
	return cs.Apply(func(set RecordSet) (RecordSet, error) {
		return set.SetField(name, v)
	})
}

// SetString assigns a character header field on every record, committing
// only when the result passes the checks.
func (cs *CheckedSet) SetString(name, v string) error {
	return cs.Apply(func(set RecordSet) (RecordSet, error) {
		return set.SetString(name, v)
	})
}

// Apply runs mutate on a deep copy of the held set, validates the result
// and commits it when the checks pass. Returning an error from mutate
// aborts the commit.
func (cs *CheckedSet) Apply(mutate func(RecordSet) (RecordSet, error)) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if cs.frozen {
		return fmt.Errorf("apply: %w", ErrReadOnly)
	}

	candidate, err := mutate(cs.records.Clone())
	if err != nil {
		return err
	}
	return cs.commit(candidate)
}

// commit validates candidate unless its fingerprint matches the last set
// that passed, then swaps it in. Callers hold the lock.
func (cs *CheckedSet) commit(candidate RecordSet) error {
	fp := candidate.Fingerprint()
	if fp != cs.lastOK {
		if rep := Check(candidate, cs.extra...); rep != nil {
			return rep
		}
	}
	cs.records = candidate
	cs.lastOK = fp
	return nil
}

// Freeze makes the set read-only. There is no thaw.
func (cs *CheckedSet) Freeze() {
	cs.mu.Lock()
	cs.frozen = true
	cs.mu.Unlock()
}

// Frozen reports whether the set is read-only.
func (cs *CheckedSet) Frozen() bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.frozen
}
