package diag

import (
	"testing"

	"svlift/internal/source"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	if !b.Add(NewError(ResShapeMismatch, span(1, 0, 1), "one")) {
		t.Fatal("first add rejected")
	}
	if !b.Add(NewError(ResShapeMismatch, span(1, 2, 3), "two")) {
		t.Fatal("second add rejected")
	}
	if b.Add(NewError(ResShapeMismatch, span(1, 4, 5), "three")) {
		t.Fatal("add past the limit accepted")
	}
	if b.Len() != 2 {
		t.Fatalf("len: got %d, want 2", b.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	b := NewBag(8)
	b.Add(New(SevInfo, ElabInfo, span(1, 0, 0), "info"))
	if b.HasErrors() || b.HasWarnings() {
		t.Fatal("info-only bag must report no warnings or errors")
	}
	b.Add(NewWarning(ElabWarning, span(1, 0, 0), "warn"))
	if !b.HasWarnings() || b.HasErrors() {
		t.Fatal("warning must count as warning, not error")
	}
	b.Add(NewError(ResBadTarget, span(1, 0, 0), "err"))
	if !b.HasErrors() {
		t.Fatal("error not detected")
	}
}

func TestBagSortDeterministic(t *testing.T) {
	b := NewBag(8)
	b.Add(NewError(ResShapeMismatch, span(2, 0, 1), "later file"))
	b.Add(NewWarning(ElabWarning, span(1, 5, 6), "warn"))
	b.Add(NewError(ResBadTarget, span(1, 5, 6), "same span, higher severity"))
	b.Add(NewError(ResShapeMismatch, span(1, 0, 1), "first"))
	b.Sort()

	items := b.Items()
	if items[0].Message != "first" {
		t.Errorf("items[0]: got %q", items[0].Message)
	}
	if items[1].Severity != SevError || items[2].Severity != SevWarning {
		t.Errorf("severity must order errors before warnings at the same span")
	}
	if items[3].Primary.File != 2 {
		t.Errorf("items[3]: got file %d, want 2", items[3].Primary.File)
	}
}

func TestBagDedup(t *testing.T) {
	b := NewBag(8)
	d := NewError(ResShapeMismatch, span(1, 0, 1), "dup")
	b.Add(d)
	b.Add(d)
	b.Add(NewError(ResBadTarget, span(1, 0, 1), "kept"))
	b.Dedup()
	if b.Len() != 2 {
		t.Fatalf("len after dedup: got %d, want 2", b.Len())
	}
}

func TestBagMergeGrowsLimit(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(ResShapeMismatch, span(1, 0, 1), "a"))
	other := NewBag(2)
	other.Add(NewError(ResBadTarget, span(1, 2, 3), "b"))
	other.Add(NewError(ResBadTarget, span(1, 4, 5), "c"))
	a.Merge(other)
	if a.Len() != 3 {
		t.Fatalf("len after merge: got %d, want 3", a.Len())
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(8)
	r := NewDedupReporter(BagReporter{Bag: bag})
	ReportError(r, ResShapeMismatch, span(1, 0, 1), "dup")
	ReportError(r, ResShapeMismatch, span(1, 0, 1), "dup")
	ReportError(r, ResShapeMismatch, span(1, 0, 1), "different message")
	if bag.Len() != 2 {
		t.Fatalf("len: got %d, want 2", bag.Len())
	}
}
