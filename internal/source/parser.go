// Package source discovers and parses JSONL finance record files.
package source

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/theirongolddev/finpulse/internal/model"
)

// idNamespace seeds deterministic ids for records that carry none, so
// re-importing a file replaces its rows instead of duplicating them.
var idNamespace = uuid.MustParse("6f1c0a52-8f0e-4d8b-9a51-2f4c1b9e7d30")

// LineError describes one rejected line.
type LineError struct {
	Line int
	Err  error
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// ParseResult holds the output of parsing a single JSONL file.
type ParseResult struct {
	File        DiscoveredFile
	Batch       model.Snapshot
	Records     int
	ParseErrors int
	LineErrors  []LineError // first few only
	Err         error
}

const maxLineErrors = 10

// ParseFile reads a JSONL record file. Lines that are blank or start with '#'
// are skipped. A line that is malformed, has an unknown kind or breaks a
// record invariant is counted as a parse error and dropped; the rest of the
// file still loads.
func ParseFile(df DiscoveredFile) ParseResult {
	result := ParseResult{File: df}

	f, err := os.Open(df.Path)
	if err != nil {
		result.Err = err
		return result
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 || line[0] == '#' {
			continue
		}

		if err := parseLine(line, df.Path, lineNo, &result.Batch); err != nil {
			result.ParseErrors++
			if len(result.LineErrors) < maxLineErrors {
				result.LineErrors = append(result.LineErrors, LineError{Line: lineNo, Err: err})
			}
			continue
		}
		result.Records++
	}
	if err := scanner.Err(); err != nil {
		result.Err = err
	}
	return result
}

func parseLine(line []byte, path string, lineNo int, batch *model.Snapshot) error {
	kind, err := model.ParseRecordKind(extractTopLevelKind(line))
	if err != nil {
		return err
	}
	fallbackID := uuid.NewSHA1(idNamespace, []byte(path+":"+strconv.Itoa(lineNo))).String()

	switch kind {
	case model.KindTransaction:
		var raw RawTransaction
		if err := json.Unmarshal(line, &raw); err != nil {
			return err
		}
		t, err := raw.toModel()
		if err != nil {
			return err
		}
		t.ID = orDefault(t.ID, fallbackID)
		batch.Transactions = append(batch.Transactions, t)

	case model.KindAsset:
		var raw RawAsset
		if err := json.Unmarshal(line, &raw); err != nil {
			return err
		}
		cat, err := model.ParseAssetCategory(raw.Category)
		if err != nil {
			return err
		}
		a := model.Asset{
			ID:           orDefault(raw.ID, fallbackID),
			Name:         raw.Name,
			Category:     cat,
			CurrentValue: raw.CurrentValue,
			Currency:     strings.ToUpper(raw.Currency),
		}
		if err := a.Validate(); err != nil {
			return err
		}
		batch.Assets = append(batch.Assets, a)

	case model.KindLiability:
		var raw RawLiability
		if err := json.Unmarshal(line, &raw); err != nil {
			return err
		}
		cat, err := model.ParseLiabilityCategory(raw.Category)
		if err != nil {
			return err
		}
		l := model.Liability{
			ID:              orDefault(raw.ID, fallbackID),
			Name:            raw.Name,
			Category:        cat,
			RemainingAmount: raw.RemainingAmount,
			Currency:        strings.ToUpper(raw.Currency),
		}
		if raw.InterestRate.Valid {
			l.InterestRate = &raw.InterestRate.Decimal
		}
		if raw.MonthlyPayment.Valid {
			l.MonthlyPayment = &raw.MonthlyPayment.Decimal
		}
		if err := l.Validate(); err != nil {
			return err
		}
		batch.Liabilities = append(batch.Liabilities, l)

	case model.KindGoal:
		var raw RawGoal
		if err := json.Unmarshal(line, &raw); err != nil {
			return err
		}
		st, err := model.ParseGoalStatus(raw.Status)
		if err != nil {
			return err
		}
		g := model.SavingsGoal{
			ID:            orDefault(raw.ID, fallbackID),
			Name:          raw.Name,
			TargetAmount:  raw.TargetAmount,
			CurrentAmount: raw.CurrentAmount,
			Status:        st,
		}
		if err := g.Validate(); err != nil {
			return err
		}
		batch.Goals = append(batch.Goals, g)

	case model.KindRecurring:
		var raw RawRecurring
		if err := json.Unmarshal(line, &raw); err != nil {
			return err
		}
		freq, err := model.ParseFrequency(raw.Frequency)
		if err != nil {
			return err
		}
		r := model.RecurringExpense{
			ID:        orDefault(raw.ID, fallbackID),
			Name:      raw.Name,
			Amount:    raw.Amount,
			Frequency: freq,
			IsActive:  raw.Active == nil || *raw.Active,
		}
		if err := r.Validate(); err != nil {
			return err
		}
		batch.Recurring = append(batch.Recurring, r)
	}
	return nil
}

func (raw RawTransaction) toModel() (model.Transaction, error) {
	ts, err := parseTimestamp(raw.Timestamp)
	if err != nil {
		return model.Transaction{}, err
	}
	typ, err := model.ParseTransactionType(raw.Type)
	if err != nil {
		return model.Transaction{}, err
	}
	desc := raw.Description
	if raw.Investment {
		desc = model.TagInvestment(desc)
	}
	t := model.Transaction{
		ID:          raw.ID,
		Timestamp:   ts,
		Amount:      raw.Amount,
		Type:        typ,
		Category:    raw.Category,
		Description: desc,
		Currency:    strings.ToUpper(raw.Currency),
	}
	return t, t.Validate()
}

// parseTimestamp accepts RFC 3339 or a bare date, read in local time.
func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("missing timestamp")
	}
	if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return ts, nil
	}
	ts, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp %q: want RFC 3339 or YYYY-MM-DD", s)
	}
	return ts, nil
}

func orDefault(s, def string) string {
	if s != "" {
		return s
	}
	return def
}

// kindKey is the byte sequence for a JSON key named "kind" (with quotes).
var kindKey = []byte(`"kind"`)

// extractTopLevelKind finds the top-level "kind" field in a JSONL line.
// Tracks brace depth and string boundaries so nested "kind" keys are ignored.
func extractTopLevelKind(line []byte) string {
	depth := 0
	for i := 0; i < len(line); {
		switch line[i] {
		case '"':
			if depth == 1 && bytes.HasPrefix(line[i:], kindKey) {
				val, isKey := kindValue(line, i+len(kindKey))
				if isKey {
					return val
				}
				// "kind" appeared as a value, not a key. Continue scanning.
			}
			i = skipJSONString(line, i)
		case '{':
			depth++
			i++
		case '}':
			depth--
			i++
		default:
			i++
		}
	}
	return ""
}

// kindValue checks whether pos follows a JSON key (expects : then value).
// isKey=false means "kind" appeared as a value and the caller should continue.
func kindValue(line []byte, pos int) (val string, isKey bool) {
	i := skipSpaces(line, pos)
	if i >= len(line) || line[i] != ':' {
		return "", false
	}
	i = skipSpaces(line, i+1)
	if i >= len(line) || line[i] != '"' {
		return "", true
	}
	i++

	end := bytes.IndexByte(line[i:], '"')
	if end < 0 || end > 20 {
		return "", true
	}
	return string(line[i : i+end]), true
}

// skipJSONString advances past a JSON string starting at the opening quote.
//
//nolint:gosec // manual bounds checking throughout
func skipJSONString(line []byte, i int) int {
	i++ // skip opening quote
	for i < len(line) {
		switch line[i] {
		case '\\':
			i += 2
		case '"':
			return i + 1
		default:
			i++
		}
	}
	return i
}

func skipSpaces(line []byte, i int) int {
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return i
}
