package source

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/finpulse/internal/model"
)

// writeRecords creates a temp JSONL file and returns a DiscoveredFile for it.
func writeRecords(t *testing.T, lines ...string) DiscoveredFile {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "records.jsonl")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	return DiscoveredFile{Path: path}
}

func TestParseFile_AllKinds(t *testing.T) {
	df := writeRecords(t,
		`{"kind":"transaction","timestamp":"2026-03-01T09:00:00Z","amount":"-42.10","description":"Groceries","category":"food","currency":"usd"}`,
		`{"kind":"transaction","timestamp":"2026-03-02","amount":-250,"description":"ETF","investment":true}`,
		`{"kind":"asset","name":"Checking","category":"cash","current_value":"1500.55","currency":"USD"}`,
		`{"kind":"liability","name":"Car","category":"car_loan","remaining_amount":"8000","monthly_payment":"250","interest_rate":null}`,
		`{"kind":"goal","name":"Trip","target_amount":"2000","current_amount":"500"}`,
		`{"kind":"recurring","name":"Gym","amount":"40","frequency":"Monthly","active":false}`,
	)

	result := ParseFile(df)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if result.ParseErrors != 0 {
		t.Fatalf("ParseErrors = %d: %v", result.ParseErrors, result.LineErrors)
	}
	if result.Records != 6 {
		t.Fatalf("Records = %d, want 6", result.Records)
	}

	b := result.Batch
	if len(b.Transactions) != 2 || len(b.Assets) != 1 || len(b.Liabilities) != 1 || len(b.Goals) != 1 || len(b.Recurring) != 1 {
		t.Fatalf("batch = %+v", b)
	}
	if got := b.Transactions[0].Amount.String(); got != "-42.1" {
		t.Errorf("amount = %s, want -42.1", got)
	}
	if b.Transactions[0].Currency != "USD" {
		t.Errorf("currency = %q, want USD", b.Transactions[0].Currency)
	}
	if !model.HasInvestmentTag(b.Transactions[1].Description) {
		t.Errorf("description = %q, want investment tag", b.Transactions[1].Description)
	}
	if b.Liabilities[0].InterestRate != nil || b.Liabilities[0].MonthlyPayment == nil {
		t.Errorf("liability optional fields = %v / %v", b.Liabilities[0].InterestRate, b.Liabilities[0].MonthlyPayment)
	}
	if b.Goals[0].Status != model.GoalActive {
		t.Errorf("goal status = %q, want active", b.Goals[0].Status)
	}
	if b.Recurring[0].IsActive || b.Recurring[0].Frequency != model.FrequencyMonthly {
		t.Errorf("recurring = %+v", b.Recurring[0])
	}
}

func TestParseFile_DeterministicIDs(t *testing.T) {
	df := writeRecords(t,
		`{"kind":"transaction","timestamp":"2026-03-01T09:00:00Z","amount":"-1"}`,
		`{"kind":"transaction","id":"given","timestamp":"2026-03-01T09:00:00Z","amount":"-1"}`,
	)
	a := ParseFile(df)
	b := ParseFile(df)
	if a.Batch.Transactions[0].ID == "" || a.Batch.Transactions[0].ID != b.Batch.Transactions[0].ID {
		t.Fatalf("generated ids differ: %q vs %q", a.Batch.Transactions[0].ID, b.Batch.Transactions[0].ID)
	}
	if a.Batch.Transactions[1].ID != "given" {
		t.Fatalf("explicit id = %q, want given", a.Batch.Transactions[1].ID)
	}
}

func TestParseFile_BadLinesAreCounted(t *testing.T) {
	df := writeRecords(t,
		`# comment`,
		``,
		`not json at all`,
		`{"kind":"budget","amount":"1"}`,
		`{"kind":"transaction","timestamp":"2026-03-01T09:00:00Z","amount":"0"}`,
		`{"kind":"asset","name":"Boat","category":"yacht","current_value":"1"}`,
		`{"kind":"goal","name":"x","target_amount":"0"}`,
		`{"kind":"transaction","timestamp":"yesterday","amount":"5"}`,
		`{"kind":"transaction","timestamp":"2026-03-01T09:00:00Z","amount":"5"}`,
	)

	result := ParseFile(df)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if result.ParseErrors != 6 {
		t.Fatalf("ParseErrors = %d, want 6: %v", result.ParseErrors, result.LineErrors)
	}
	if result.Records != 1 {
		t.Fatalf("Records = %d, want 1", result.Records)
	}

	var sawZero, sawKind bool
	for _, le := range result.LineErrors {
		if errors.Is(le.Err, model.ErrZeroAmount) {
			sawZero = true
		}
		if errors.Is(le.Err, model.ErrUnknownKind) {
			sawKind = true
		}
	}
	if !sawZero || !sawKind {
		t.Fatalf("line errors = %v, want zero-amount and unknown-kind", result.LineErrors)
	}
}

func TestParseFile_MissingFile(t *testing.T) {
	result := ParseFile(DiscoveredFile{Path: filepath.Join(t.TempDir(), "nope.jsonl")})
	if result.Err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestScanDir(t *testing.T) {
	root := t.TempDir()
	mustWrite := func(rel string) {
		p := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte("{}\n"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	mustWrite("b.jsonl")
	mustWrite("nested/a.JSONL")
	mustWrite("notes.txt")
	mustWrite(".hidden/c.jsonl")

	files, err := ScanDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("files = %+v, want 2", files)
	}
	if files[0].SizeBytes != 3 || files[0].MtimeNs == 0 {
		t.Fatalf("file info = %+v", files[0])
	}

	single, err := ScanDir(filepath.Join(root, "notes.txt"))
	if err != nil || len(single) != 1 {
		t.Fatalf("single file scan = %v, %v", single, err)
	}

	missing, err := ScanDir(filepath.Join(root, "missing"))
	if err != nil || missing != nil {
		t.Fatalf("missing scan = %v, %v", missing, err)
	}
}

func TestExtractTopLevelKind(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"transaction", `{"kind":"transaction","amount":"1"}`, "transaction"},
		{"spaced", `{"kind": "asset"}`, "asset"},
		{"nested kind ignored", `{"meta":{"kind":"goal"},"kind":"recurring"}`, "recurring"},
		{"kind as value", `{"label":"kind","kind":"goal"}`, "goal"},
		{"no kind field", `{"amount":"1"}`, ""},
		{"non-string kind", `{"kind":3}`, ""},
		{"empty", `{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractTopLevelKind([]byte(tt.input))
			if got != tt.want {
				t.Errorf("extractTopLevelKind(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// FuzzExtractTopLevelKind checks the byte-level scanner never panics on
// arbitrary input, since import files are user supplied.
func FuzzExtractTopLevelKind(f *testing.F) {
	f.Add([]byte(`{"kind":"transaction","amount":"-1"}`))
	f.Add([]byte(`{"meta":{"kind":"nested"},"kind":"asset"}`))
	f.Add([]byte(`not json`))
	f.Add([]byte(`{}`))
	f.Add([]byte(`{"kind":null}`))
	f.Add([]byte(``))
	f.Add([]byte(`{"kind":"transac`)) // unterminated string

	f.Fuzz(func(t *testing.T, data []byte) {
		result := extractTopLevelKind(data)
		if len(result) > 20 {
			t.Errorf("kind %q longer than the scanner allows", result)
		}
	})
}
