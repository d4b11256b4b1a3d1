package importer

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"

	"certify/internal/model"
	"certify/internal/store"
)

// fieldPattern matches one CSV field: either a double-quoted run or a run of
// non-comma characters. This mirrors how the data files were produced and is
// looser than encoding/csv, which would reject the ragged lines we are
// required to skip-and-continue over instead.
var fieldPattern = regexp.MustCompile(`"[^"]*"|[^,]+`)

// Importer parses participant CSV files and appends the results to the store.
type Importer struct {
	store   *store.Store
	baseURL string
}

// New creates an importer writing to st; baseURL is used for the per-record
// summary URLs.
func New(st *store.Store, baseURL string) *Importer {
	return &Importer{store: st, baseURL: baseURL}
}

// Run imports the CSV file at path. All successfully parsed rows are appended
// to the store in a single write; zero parsed rows leaves the store untouched.
// The parsed records are returned so the caller can report them.
func (im *Importer) Run(path string) ([]model.Participant, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	records := Parse(string(raw))
	if len(records) == 0 {
		return nil, nil
	}
	if err := im.store.Append(records); err != nil {
		return nil, err
	}
	return records, nil
}

// Summary prints the human-readable import report for records, including the
// public and claim URLs for each.
func (im *Importer) Summary(records []model.Participant) {
	fmt.Printf("\nImported %d participant(s):\n\n", len(records))
	for _, p := range records {
		fmt.Printf("  %s\n", p.Name)
		fmt.Printf("  Public:  %s/cert/%s\n", im.baseURL, p.ID)
		fmt.Printf("  Claim:   %s/cert/%s/claim/%s\n", im.baseURL, p.ID, p.ClaimKey)
		fmt.Println()
	}
}

// Parse extracts participant records from raw CSV text.
//
// If the first line mentions both "name" and "date" (case-insensitive) it is
// treated as a header and skipped. Each data line must yield at least two
// fields; the first two are name and date, anything beyond is ignored.
// Malformed lines are logged with their line number and skipped — a bad row
// never aborts the batch.
func Parse(raw string) []model.Participant {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	if len(lines) == 0 {
		return nil
	}

	start := 0
	first := strings.ToLower(lines[0])
	if strings.Contains(first, "name") && strings.Contains(first, "date") {
		start = 1
	}

	var records []model.Participant
	for i := start; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		parts := fieldPattern.FindAllString(line, -1)
		if len(parts) < 2 {
			log.Printf("skipping malformed line %d: %s", i+1, line)
			continue
		}

		name := cleanField(parts[0])
		date := cleanField(parts[1])
		if name == "" || date == "" {
			log.Printf("skipping line %d: missing name or date", i+1)
			continue
		}

		records = append(records, model.Participant{
			ID:       randomHex(4),
			ClaimKey: randomHex(6),
			Name:     name,
			Date:     date,
			Program:  model.DefaultProgram,
		})
	}
	return records
}

// cleanField strips one pair of wrapping double quotes and surrounding
// whitespace from a raw CSV field.
func cleanField(field string) string {
	field = strings.TrimPrefix(field, `"`)
	field = strings.TrimSuffix(field, `"`)
	return strings.TrimSpace(field)
}

// randomHex returns n cryptographically random bytes as lowercase hex.
func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}
