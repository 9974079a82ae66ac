package diag

import (
	"sort"
	"sync"
)

// Bag accumulates diagnostics for a single binder run. Its methods are
// safe for concurrent use so ResolveAll-style parallel monomorphization
// passes can report through the same bag without racing.
type Bag struct {
	mu    sync.Mutex
	items []Diagnostic
}

// NewBag creates an empty bag, optionally preallocating capacity.
func NewBag(capacityHint int) *Bag {
	return &Bag{items: make([]Diagnostic, 0, capacityHint)}
}

// Add appends a diagnostic.
func (b *Bag) Add(d Diagnostic) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append(b.items, d)
}

// Len reports the number of accumulated diagnostics.
func (b *Bag) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

// Items returns a snapshot of the accumulated diagnostics.
func (b *Bag) Items() []Diagnostic {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Diagnostic, len(b.items))
	copy(out, b.items)
	return out
}

// HasErrors reports whether any diagnostic has error severity.
func (b *Bag) HasErrors() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, d := range b.items {
		if d.Severity == SevError {
			return true
		}
	}
	return false
}

// CountCode reports how many diagnostics carry the given code, used by tests
// asserting "exactly one Duplicate_identifier_0" style invariants.
func (b *Bag) CountCode(code Code) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, d := range b.items {
		if d.Code == code {
			n++
		}
	}
	return n
}

// Sort orders diagnostics by file, start, end, then severity descending —
// giving deterministic, human-friendly output.
func (b *Bag) Sort() {
	b.mu.Lock()
	defer b.mu.Unlock()
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		return di.Severity > dj.Severity
	})
}
