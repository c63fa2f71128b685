package extract

import (
	"reflect"
	"testing"
)

func TestExtractWarnings_MultipleInOrder(t *testing.T) {
	text := "WARNING: STAY CLEAR OF MOVING SURFACES AND FLAPS.\n" +
		"WARNING: DO NOT TOUCH THE PITOT PROBES, THEY ARE HOT.\n"

	got := ExtractWarnings(text)
	want := []string{
		"STAY CLEAR OF MOVING SURFACES AND FLAPS.",
		"DO NOT TOUCH THE PITOT PROBES, THEY ARE HOT.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("warnings = %v, want %v", got, want)
	}
}

func TestExtractWarnings_CollapsesLineBreaks(t *testing.T) {
	text := "WARNING: THE SLATS CAN\nMOVE WITHOUT HYDRAULIC POWER.\n\nunrelated prose.\n"

	got := ExtractWarnings(text)
	want := []string{"THE SLATS CAN MOVE WITHOUT HYDRAULIC POWER."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("warnings = %v, want %v", got, want)
	}
}

func TestExtractWarnings_BlankLineTerminates(t *testing.T) {
	text := "WARNING: KEEP THE AREA CLEAR OF PERSONNEL.\n\nTHIS SENTENCE IS NOT PART OF IT.\n"

	got := ExtractWarnings(text)
	want := []string{"KEEP THE AREA CLEAR OF PERSONNEL."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("warnings = %v, want %v", got, want)
	}
}

func TestExtractWarnings_ShortFragmentsDropped(t *testing.T) {
	if got := ExtractWarnings("WARNING: SHORT\n\n"); len(got) != 0 {
		t.Errorf("short warning should be dropped, got %v", got)
	}
	if got := ExtractWarnings("no advisory here"); len(got) != 0 {
		t.Errorf("expected no warnings, got %v", got)
	}
}

func TestExtractCautions(t *testing.T) {
	text := "CAUTION: DO NOT RUN THE PUMP WITHOUT FLUID.\n\n" +
		"some text follows.\n\n" +
		"CAUTION: LET THE UNIT COOL DOWN FIRST.\n"

	got := ExtractCautions(text)
	want := []string{
		"DO NOT RUN THE PUMP WITHOUT FLUID.",
		"LET THE UNIT COOL DOWN FIRST.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("cautions = %v, want %v", got, want)
	}
}

func TestExtractNotes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			"collapsed to one line",
			"NOTE: The reset can take\nup to 30 seconds.\n",
			"The reset can take up to 30 seconds.",
		},
		{
			"stops at next field",
			"NOTE: Only on ground.\nWARNING: STAY CLEAR OF THE GEAR DOORS.\n",
			"Only on ground.",
		},
		{
			"absent",
			"no annotations in this block",
			"",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractNotes(tc.text); got != tc.want {
				t.Errorf("ExtractNotes = %q, want %q", got, tc.want)
			}
		})
	}
}
