package amr

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/shenwei356/xopen"
)

// GeneCounts holds, for one sample, the number of report rows per gene or
// allele identifier.
type GeneCounts struct {
	Sample string
	Column string
	Counts map[string]float64
}

// ReadGeneCounts parses a tab-separated tool report and counts how many
// rows carry each value of the identifier column (e.g. "ARO Accession"
// or "Gene symbol"). Gzipped reports are read transparently.
func ReadGeneCounts(path, column, sample string) (*GeneCounts, error) {
	f, err := xopen.Ropen(path)
	if err == xopen.ErrNoContent {
		return nil, fmt.Errorf("%s: empty report", path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rd := csv.NewReader(f)
	rd.Comma = '\t'
	rd.LazyQuotes = true
	rd.FieldsPerRecord = -1
	rows, err := rd.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %v", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty report", path)
	}

	col := -1
	for i, name := range rows[0] {
		if name == column {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("%s: no %q column", path, column)
	}

	gc := &GeneCounts{
		Sample: sample,
		Column: column,
		Counts: make(map[string]float64),
	}
	for _, fields := range rows[1:] {
		if col >= len(fields) {
			continue
		}
		id := strings.TrimSpace(fields[col])
		if id == "" {
			continue
		}
		gc.Counts[id]++
	}
	return gc, nil
}

// CountTable is a sample x gene identifier frequency matrix. Columns are
// the union of all observed identifiers, absent cells are zero, and both
// samples and identifiers are kept in sorted order, so the table built
// from a set of per-sample counts does not depend on their input order.
type CountTable struct {
	samples  []string
	features []string
	cells    map[string]map[string]float64
}

// NewCountTable returns an empty table.
func NewCountTable() *CountTable {
	return &CountTable{cells: make(map[string]map[string]float64)}
}

// CreateCountTable merges per-sample gene counts into a single frequency
// table. An empty list is an error: there are no samples to build a
// table from.
func CreateCountTable(list []*GeneCounts) (*CountTable, error) {
	if len(list) == 0 {
		return nil, fmt.Errorf("cannot create a count table from an empty list of annotations")
	}
	t := NewCountTable()
	for _, gc := range list {
		if _, ok := t.cells[gc.Sample]; ok {
			return nil, fmt.Errorf("duplicate sample %q in annotation list", gc.Sample)
		}
		row := make(map[string]float64, len(gc.Counts))
		for id, n := range gc.Counts {
			row[id] = n
		}
		t.cells[gc.Sample] = row
	}
	t.reindex()
	return t, nil
}

func (t *CountTable) reindex() {
	t.samples = nil
	t.features = nil
	seen := make(map[string]bool)
	for s, row := range t.cells {
		t.samples = append(t.samples, s)
		for id := range row {
			if !seen[id] {
				seen[id] = true
				t.features = append(t.features, id)
			}
		}
	}
	sort.Strings(t.samples)
	sort.Strings(t.features)
}

// Samples returns the sample ids in sorted order.
func (t *CountTable) Samples() []string { return t.samples }

// Features returns the gene identifiers in sorted order.
func (t *CountTable) Features() []string { return t.features }

// Get returns the cell value, zero when the sample never hit the gene.
func (t *CountTable) Get(sample, feature string) float64 {
	return t.cells[sample][feature]
}

// Set stores a cell value, growing the matrix as needed.
func (t *CountTable) Set(sample, feature string, v float64) {
	row, ok := t.cells[sample]
	if !ok {
		row = make(map[string]float64)
		t.cells[sample] = row
	}
	row[feature] = v
	t.reindex()
}

// Merge folds another table into t. The same sample appearing in both
// tables is an error; this is the collate step for feature tables built
// from partitioned annotation runs.
func (t *CountTable) Merge(o *CountTable) error {
	for _, s := range o.samples {
		if _, ok := t.cells[s]; ok {
			return fmt.Errorf("sample %q appears in more than one table", s)
		}
	}
	for s, row := range o.cells {
		dst := make(map[string]float64, len(row))
		for id, v := range row {
			dst[id] = v
		}
		t.cells[s] = dst
	}
	t.reindex()
	return nil
}

// WriteTSV writes the table with a sample_id column followed by one
// column per gene identifier.
func (t *CountTable) WriteTSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write(append([]string{"sample_id"}, t.features...)); err != nil {
		return err
	}
	for _, s := range t.samples {
		fields := make([]string, 0, len(t.features)+1)
		fields = append(fields, s)
		for _, id := range t.features {
			fields = append(fields, strconv.FormatFloat(t.Get(s, id), 'g', -1, 64))
		}
		if err := cw.Write(fields); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCountTable saves the table as a tab-separated file.
func WriteCountTable(t *CountTable, path string) error {
	w, err := os.Create(path)
	if err != nil {
		return err
	}
	defer w.Close()
	return t.WriteTSV(w)
}

// ReadCountTable loads a table written by WriteCountTable.
func ReadCountTable(path string) (*CountTable, error) {
	f, err := xopen.Ropen(path)
	if err == xopen.ErrNoContent {
		return nil, fmt.Errorf("%s: not a feature table", path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rd := csv.NewReader(f)
	rd.Comma = '\t'
	rows, err := rd.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %v", path, err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 || rows[0][0] != "sample_id" {
		return nil, fmt.Errorf("%s: not a feature table", path)
	}

	t := NewCountTable()
	ids := rows[0][1:]
	for _, fields := range rows[1:] {
		sample := fields[0]
		if _, ok := t.cells[sample]; ok {
			return nil, fmt.Errorf("%s: duplicate sample %q", path, sample)
		}
		// Zero cells are kept: every header column is an observed
		// identifier and must survive a write/read round trip.
		row := make(map[string]float64, len(ids))
		for i, id := range ids {
			v, err := strconv.ParseFloat(fields[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("%s: sample %s, column %s: %v", path, sample, id, err)
			}
			row[id] = v
		}
		t.cells[sample] = row
	}
	t.reindex()
	return t, nil
}
