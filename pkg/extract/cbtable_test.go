package extract

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestExtractCBTable_FullRows(t *testing.T) {
	text := "49VU AIR COND/ACSC1/SPLY 1CA1 D01 101-150\n" +
		"Panel list continues:\n" +
		"121VU AIR COND/ACSC2/SPLY 2CA2 E05\n"

	got := ExtractCBTable(text, "ALL")
	want := []CBRow{
		{Panel: "49VU", Designation: "AIR COND/ACSC1/SPLY", FIN: "1CA1", Location: "D01", FSN: "101-150"},
		{Panel: "121VU", Designation: "AIR COND/ACSC2/SPLY", FIN: "2CA2", Location: "E05", FSN: "ALL"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("full rows = %+v, want %+v", got, want)
	}
}

func TestExtractCBTable_PartialFallback(t *testing.T) {
	text := "The breaker 1CA1 at D01 must be opened before the reset.\n"

	got := ExtractCBTable(text, "051-070")
	want := []CBRow{{FIN: "1CA1", Location: "D01", FSN: "051-070"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("partial rows = %+v, want %+v", got, want)
	}
}

func TestExtractCBTable_FullPatternWins(t *testing.T) {
	// Pattern families are not merged: when the full row pattern matches,
	// partial-only fragments elsewhere in the block are ignored.
	text := "49VU AIR COND/ACSC1/SPLY 1CA1 D01 101-150\n" +
		"Also check 2XY3 at B02 before closing up.\n"

	got := ExtractCBTable(text, "ALL")
	if len(got) != 1 {
		t.Fatalf("expected only the full row, got %+v", got)
	}
	if got[0].FIN != "1CA1" {
		t.Errorf("row FIN = %q, want 1CA1", got[0].FIN)
	}
}

func TestExtractCBTable_DedupeByFIN(t *testing.T) {
	text := "49VU AIR COND/ACSC1/SPLY 1CA1 D01 101-150\n" +
		"repeat of the same breaker:\n" +
		"49VU AIR COND/OTHER/SPLY 1CA1 D02\n"

	got := ExtractCBTable(text, "ALL")
	if len(got) != 1 {
		t.Fatalf("expected 1 unique row, got %+v", got)
	}
	if got[0].Designation != "AIR COND/ACSC1/SPLY" {
		t.Errorf("first occurrence must win, got %+v", got[0])
	}
}

func TestExtractCBTable_CapAtTen(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 12; i++ {
		fmt.Fprintf(&b, "check %dAA%d at A%02d.\n", i, i, i)
	}

	got := ExtractCBTable(b.String(), "ALL")
	if len(got) != maxCBRows {
		t.Errorf("row count = %d, want cap %d", len(got), maxCBRows)
	}
}

func TestExtractCBTable_NoMatches(t *testing.T) {
	if got := ExtractCBTable("no tabular data in this block at all", "ALL"); len(got) != 0 {
		t.Errorf("expected no rows, got %+v", got)
	}
}
