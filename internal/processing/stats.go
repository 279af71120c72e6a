// Package processing provides record analysis and statistics.
package processing

import (
	"sort"

	"github.com/lgbarn/kiaak-go/internal/notation"
	"github.com/lgbarn/kiaak-go/internal/record"
)

// ThrowStats counts the stick throws of one hazard.
type ThrowStats struct {
	Attempted  int `json:"attempted"`
	Successful int `json:"successful"`
}

// Failed returns the number of unsuccessful throws.
func (t ThrowStats) Failed() int {
	return t.Attempted - t.Successful
}

func (t *ThrowStats) add(s *notation.StickThrow) {
	if s == nil {
		return
	}
	t.Attempted++
	if s.Successful {
		t.Successful++
	}
}

// RecordStats holds counts gathered from one or more records.
type RecordStats struct {
	Records    int
	Moves      int
	Errors     int
	Duplicates int // records repeating an earlier record's moves
	ByKind     [notation.NumKinds]int
	Wildcards  int // ordinary moves whose piece is not known
	Parachutes int
	Tam        int
	Water      ThrowStats
	Bridge     ThrowStats

	// Sizes counts stated stick sizes across both hazards; Unstated counts
	// throws whose size was written as unspecified.
	Sizes    map[int]int
	Unstated int
}

// NewRecordStats returns empty statistics.
func NewRecordStats() *RecordStats {
	return &RecordStats{Sizes: make(map[int]int)}
}

// Analyze gathers statistics for one record.
func Analyze(rec *record.Record) *RecordStats {
	st := NewRecordStats()
	if rec == nil {
		return st
	}
	st.Records = 1
	st.Errors = len(rec.Errors)
	for _, e := range rec.Entries {
		st.AddMove(e.Move)
	}
	return st
}

// AddMove counts a single move.
func (st *RecordStats) AddMove(m notation.Move) {
	st.Moves++
	if m.Kind.Valid() {
		st.ByKind[m.Kind]++
	}
	switch {
	case m.Kind == notation.Parachute:
		st.Parachutes++
	case m.Kind.IsTam():
		st.Tam++
	case m.IsWildcard():
		st.Wildcards++
	}

	st.Water.add(m.Water)
	st.Bridge.add(m.Bridge)
	st.addSize(m.Water)
	st.addSize(m.Bridge)
}

func (st *RecordStats) addSize(s *notation.StickThrow) {
	if s == nil {
		return
	}
	if s.Size == nil {
		st.Unstated++
		return
	}
	if st.Sizes == nil {
		st.Sizes = make(map[int]int)
	}
	st.Sizes[*s.Size]++
}

// Merge adds other into st.
func (st *RecordStats) Merge(other *RecordStats) {
	if other == nil {
		return
	}
	st.Records += other.Records
	st.Moves += other.Moves
	st.Errors += other.Errors
	st.Duplicates += other.Duplicates
	for k, n := range other.ByKind {
		st.ByKind[k] += n
	}
	st.Wildcards += other.Wildcards
	st.Parachutes += other.Parachutes
	st.Tam += other.Tam
	st.Water.Attempted += other.Water.Attempted
	st.Water.Successful += other.Water.Successful
	st.Bridge.Attempted += other.Bridge.Attempted
	st.Bridge.Successful += other.Bridge.Successful
	st.Unstated += other.Unstated
	if len(other.Sizes) > 0 && st.Sizes == nil {
		st.Sizes = make(map[int]int)
	}
	for size, n := range other.Sizes {
		st.Sizes[size] += n
	}
}

// SizeKeys returns the stated sizes seen, in ascending order.
func (st *RecordStats) SizeKeys() []int {
	keys := make([]int, 0, len(st.Sizes))
	for k := range st.Sizes {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
