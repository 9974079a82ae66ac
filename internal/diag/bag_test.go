package diag

import (
	"sync"
	"testing"

	"tsbind/internal/source"
)

func TestBagAddAndLen(t *testing.T) {
	bag := NewBag(4)
	if bag.Len() != 0 {
		t.Fatalf("expected empty bag, got %d", bag.Len())
	}
	bag.Add(Diagnostic{Severity: SevError, Code: SemaCannotFindName, Message: "boom"})
	if bag.Len() != 1 {
		t.Fatalf("expected len 1, got %d", bag.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	bag := NewBag(4)
	bag.Add(Diagnostic{Severity: SevWarning})
	if bag.HasErrors() {
		t.Fatal("expected no errors with only a warning")
	}
	bag.Add(Diagnostic{Severity: SevError})
	if !bag.HasErrors() {
		t.Fatal("expected HasErrors to be true once an error is added")
	}
}

func TestBagCountCode(t *testing.T) {
	bag := NewBag(4)
	bag.Add(Diagnostic{Code: SemaDuplicateIdentifier})
	bag.Add(Diagnostic{Code: SemaDuplicateIdentifier})
	bag.Add(Diagnostic{Code: SemaCannotFindName})
	if got := bag.CountCode(SemaDuplicateIdentifier); got != 2 {
		t.Fatalf("expected 2 duplicate-identifier diagnostics, got %d", got)
	}
	if got := bag.CountCode(SemaExportConflict); got != 0 {
		t.Fatalf("expected 0 export-conflict diagnostics, got %d", got)
	}
}

func TestBagSortOrdersByFileThenStartThenEndThenSeverityDescending(t *testing.T) {
	bag := NewBag(4)
	bag.Add(Diagnostic{Severity: SevWarning, Primary: source.Range{File: 2, Start: 0, End: 1}})
	bag.Add(Diagnostic{Severity: SevError, Primary: source.Range{File: 1, Start: 10, End: 12}})
	bag.Add(Diagnostic{Severity: SevError, Primary: source.Range{File: 1, Start: 0, End: 5}})
	bag.Add(Diagnostic{Severity: SevWarning, Primary: source.Range{File: 1, Start: 0, End: 5}})

	bag.Sort()
	items := bag.Items()
	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(items))
	}
	if items[0].Primary.File != 1 || items[0].Primary.Start != 0 || items[0].Severity != SevError {
		t.Fatalf("expected file 1 start 0 error first, got %+v", items[0])
	}
	if items[1].Primary.File != 1 || items[1].Primary.Start != 0 || items[1].Severity != SevWarning {
		t.Fatalf("expected file 1 start 0 warning second (same span, error before warning), got %+v", items[1])
	}
	if items[2].Primary.Start != 10 {
		t.Fatalf("expected file 1 start 10 third, got %+v", items[2])
	}
	if items[3].Primary.File != 2 {
		t.Fatalf("expected file 2 last, got %+v", items[3])
	}
}

func TestBagItemsReturnsSnapshot(t *testing.T) {
	bag := NewBag(2)
	bag.Add(Diagnostic{Code: SemaCannotFindName})
	items := bag.Items()
	items[0].Code = SemaExportConflict
	if bag.Items()[0].Code != SemaCannotFindName {
		t.Fatal("expected Items() to return a copy, mutation leaked into the bag")
	}
}

func TestBagConcurrentAddIsSafe(t *testing.T) {
	bag := NewBag(0)
	const n = 64
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			bag.Add(Diagnostic{Code: SemaCannotFindName})
		}()
	}
	wg.Wait()
	if bag.Len() != n {
		t.Fatalf("expected %d diagnostics after concurrent adds, got %d", n, bag.Len())
	}
}
