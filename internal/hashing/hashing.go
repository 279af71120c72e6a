// Package hashing provides duplicate detection for game records.
package hashing

import (
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/lgbarn/kiaak-go/internal/notation"
)

// RecordSignature identifies a move sequence.
type RecordSignature struct {
	Hash      uint64
	MoveCount int
	Name      string // record the signature was first seen in
	moves     string // canonical sequence; kept only for exact matching
}

// HashMoves hashes the canonical notation of moves. Two sequences that
// decode to the same moves hash the same however they were written.
func HashMoves(moves []notation.Move) uint64 {
	return xxhash.Sum64String(canonical(moves))
}

func canonical(moves []notation.Move) string {
	var sb strings.Builder
	for _, m := range moves {
		sb.WriteString(m.String())
		sb.WriteByte(' ')
	}
	return sb.String()
}

// DuplicateDetector detects records whose move sequences were already seen.
type DuplicateDetector struct {
	hashTable      map[uint64][]RecordSignature
	useExactMatch  bool
	duplicateCount int
}

// NewDuplicateDetector creates a detector. With exactMatch the full move
// sequences are compared on a hash hit; otherwise hash and move count are
// trusted.
func NewDuplicateDetector(exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]RecordSignature),
		useExactMatch: exactMatch,
	}
}

// CheckAndAdd records the move sequence of name and reports the name of an
// earlier record with the same moves, if any. Empty sequences are never
// duplicates.
func (d *DuplicateDetector) CheckAndAdd(name string, moves []notation.Move) (string, bool) {
	if len(moves) == 0 {
		return "", false
	}

	sig := RecordSignature{
		Hash:      HashMoves(moves),
		MoveCount: len(moves),
		Name:      name,
	}
	if d.useExactMatch {
		sig.moves = canonical(moves)
	}

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return existing.Name, true
		}
	}

	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return "", false
}

func (d *DuplicateDetector) signaturesMatch(a, b RecordSignature) bool {
	if a.Hash != b.Hash || a.MoveCount != b.MoveCount {
		return false
	}
	if d.useExactMatch && a.moves != b.moves {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of distinct sequences seen.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}
