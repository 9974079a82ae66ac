package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"tsbind/internal/diag"
	"tsbind/internal/source"
)

func TestPrettyIncludesLocationSeverityAndCode(t *testing.T) {
	files := map[source.FileID]string{1: "main.ts"}
	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SemaCannotFindName,
		Message:  "Cannot find name 'foo'.",
		Primary:  source.Range{File: 1, Start: 10, End: 13},
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, files, PrettyOptions{})
	out := buf.String()

	for _, want := range []string{"main.ts:10-13", "error", "Cannot_find_name_0", "Cannot find name 'foo'."} {
		if !strings.Contains(out, want) {
			t.Errorf("Pretty output missing %q, got:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "1 error(s), 0 warning(s)") {
		t.Errorf("Pretty output missing summary line, got:\n%s", out)
	}
}

func TestPrettyShowNotes(t *testing.T) {
	files := map[source.FileID]string{1: "main.ts"}
	bag := diag.NewBag(1)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SemaDuplicateIdentifier,
		Message:  "Duplicate identifier 'x'.",
		Primary:  source.Range{File: 1, Start: 20, End: 21},
		Notes:    []diag.Note{{Range: source.Range{File: 1, Start: 0, End: 1}, Msg: "previous declaration here"}},
	})

	var withNotes, withoutNotes bytes.Buffer
	Pretty(&withNotes, bag, files, PrettyOptions{ShowNotes: true})
	Pretty(&withoutNotes, bag, files, PrettyOptions{ShowNotes: false})

	if !strings.Contains(withNotes.String(), "previous declaration here") {
		t.Errorf("expected note text with ShowNotes=true, got:\n%s", withNotes.String())
	}
	if strings.Contains(withoutNotes.String(), "previous declaration here") {
		t.Errorf("did not expect note text with ShowNotes=false, got:\n%s", withoutNotes.String())
	}
}

func TestPrettyMaxTruncates(t *testing.T) {
	files := map[source.FileID]string{1: "main.ts"}
	bag := diag.NewBag(3)
	for i := 0; i < 3; i++ {
		bag.Add(diag.Diagnostic{Severity: diag.SevWarning, Code: diag.SemaOperationNotSupported, Message: "x", Primary: source.Range{File: 1}})
	}

	var buf bytes.Buffer
	Pretty(&buf, bag, files, PrettyOptions{Max: 1})
	out := buf.String()

	if strings.Count(out, "Operation_not_supported") != 1 {
		t.Errorf("expected exactly one printed diagnostic, got:\n%s", out)
	}
	if !strings.Contains(out, "2 more diagnostics omitted") {
		t.Errorf("expected omission notice, got:\n%s", out)
	}
	if !strings.Contains(out, "0 error(s), 3 warning(s)") {
		t.Errorf("summary should count all diagnostics regardless of Max, got:\n%s", out)
	}
}

func TestPrettyUnknownFileFallsBackToID(t *testing.T) {
	bag := diag.NewBag(1)
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.SemaCannotFindName, Message: "x", Primary: source.Range{File: 7, Start: 1, End: 2}})

	var buf bytes.Buffer
	Pretty(&buf, bag, nil, PrettyOptions{})
	if !strings.Contains(buf.String(), "<file 7>") {
		t.Errorf("expected fallback file placeholder, got:\n%s", buf.String())
	}
}

func TestJSONRoundTrips(t *testing.T) {
	files := map[source.FileID]string{1: "main.ts"}
	bag := diag.NewBag(2)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SemaPropertyDoesNotExist,
		Message:  "Property 'y' does not exist on type 'X'.",
		Primary:  source.Range{File: 1, Start: 5, End: 6},
		Notes:    []diag.Note{{Range: source.Range{File: 1, Start: 0, End: 1}, Msg: "type declared here"}},
	})

	var buf bytes.Buffer
	if err := JSON(&buf, bag, files, JSONOptions{IncludeNotes: true}); err != nil {
		t.Fatalf("JSON returned error: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got Count=%d len=%d", out.Count, len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Severity != "error" || d.Code != "Property_0_does_not_exist_on_type_1" {
		t.Errorf("unexpected severity/code: %+v", d)
	}
	if d.Location.File != "main.ts" || d.Location.Start != 5 || d.Location.End != 6 {
		t.Errorf("unexpected location: %+v", d.Location)
	}
	if len(d.Notes) != 1 || d.Notes[0].Message != "type declared here" {
		t.Errorf("unexpected notes: %+v", d.Notes)
	}
}

func TestJSONMaxTruncates(t *testing.T) {
	bag := diag.NewBag(3)
	for i := 0; i < 3; i++ {
		bag.Add(diag.Diagnostic{Severity: diag.SevWarning, Code: diag.SemaOperationNotSupported, Message: "x"})
	}

	var buf bytes.Buffer
	if err := JSON(&buf, bag, nil, JSONOptions{Max: 2}); err != nil {
		t.Fatalf("JSON returned error: %v", err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}
	if out.Count != 3 || len(out.Diagnostics) != 2 || !out.Truncated {
		t.Errorf("expected Count=3 len=2 Truncated=true, got %+v", out)
	}
}
