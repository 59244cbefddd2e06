package amrfinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type commandRecorder struct {
	calls   [][]string
	handler func(dir string, args []string) error
}

func (r *commandRecorder) run(dir, name string, args ...string) error {
	r.calls = append(r.calls, append([]string{name}, args...))
	if r.handler != nil {
		return r.handler(dir, args)
	}
	return nil
}

func stubCommands(t *testing.T, handler func(dir string, args []string) error) *commandRecorder {
	t.Helper()
	rec := &commandRecorder{handler: handler}
	orig := runCommand
	runCommand = rec.run
	t.Cleanup(func() { runCommand = orig })
	return rec
}

// fakeAMRFinder writes the reports amrfinder would leave in the scratch
// directory.
func fakeAMRFinder(dir string, args []string) error {
	report := "Protein identifier\tGene symbol\tClass\n" +
		"prot1\tblaOXA\tBETA-LACTAM\n" +
		"prot2\tblaOXA\tBETA-LACTAM\n"
	for name, content := range map[string]string{
		AnnotationsFile: report,
		MutationsFile:   "Protein identifier\tGene symbol\n",
		GenesFile:       ">blaOXA\nACGT\n",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}

func makeMAGs(t *testing.T, bins map[string][]string) string {
	t.Helper()
	dir := t.TempDir()
	for sample, names := range bins {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, sample), 0755))
		for _, bin := range names {
			require.NoError(t, os.WriteFile(filepath.Join(dir, sample, bin+".fasta"),
				[]byte(">contig1\nACGT\n"), 0644))
		}
	}
	return dir
}

func TestAnnotateMAGs(t *testing.T) {
	rec := stubCommands(t, fakeAMRFinder)
	mags := makeMAGs(t, map[string][]string{"s1": {"bin1"}, "s2": {"bin1"}})
	db := t.TempDir()
	annotOut := t.TempDir()
	mutOut := t.TempDir()
	genesOut := t.TempDir()

	table, err := AnnotateMAGs(mags, db, annotOut, mutOut, genesOut, Options{
		Organism:    "Escherichia",
		Plus:        true,
		IdentMin:    -1,
		CoverageMin: -1,
		Threads:     2,
	})
	require.NoError(t, err)

	require.Len(t, rec.calls, 2)
	call := rec.calls[0]
	assert.Equal(t, "amrfinder", call[0])
	assert.Contains(t, call, "-n")
	assert.Contains(t, call, "--database")
	assert.Contains(t, call, db)
	assert.Contains(t, call, "--print_node")
	assert.Contains(t, call, "--nucleotide_output")
	assert.Contains(t, call, "--mutation_all")
	assert.Contains(t, call, "--organism")
	assert.Contains(t, call, "Escherichia")
	assert.Contains(t, call, "--plus")
	assert.Contains(t, call, "--threads")
	assert.NotContains(t, call, "--ident_min")
	assert.NotContains(t, call, "--coverage_min")

	assert.Equal(t, []string{"s1/bin1", "s2/bin1"}, table.Samples())
	assert.Equal(t, 2.0, table.Get("s1/bin1", "blaOXA"))

	assert.FileExists(t, filepath.Join(annotOut, "s1", "bin1", AnnotationsFile))
	assert.FileExists(t, filepath.Join(mutOut, "s1", "bin1", MutationsFile))
	assert.FileExists(t, filepath.Join(genesOut, "s1_bin1_"+GenesFile))
}

func TestAnnotateMAGsThresholds(t *testing.T) {
	rec := stubCommands(t, fakeAMRFinder)
	mags := makeMAGs(t, map[string][]string{"s1": {"bin1"}})

	_, err := AnnotateMAGs(mags, t.TempDir(), t.TempDir(), t.TempDir(), t.TempDir(), Options{
		IdentMin:         0.9,
		CoverageMin:      0.8,
		TranslationTable: "11",
		ReportAllEqual:   true,
	})
	require.NoError(t, err)

	call := rec.calls[0]
	assert.Contains(t, call, "--ident_min")
	assert.Contains(t, call, "0.9")
	assert.Contains(t, call, "--coverage_min")
	assert.Contains(t, call, "0.8")
	assert.Contains(t, call, "--translation_table")
	assert.Contains(t, call, "11")
	assert.Contains(t, call, "--report_all_equal")
}

func TestAnnotateMAGsNoBins(t *testing.T) {
	stubCommands(t, nil)
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "s1"), 0755))

	_, err := AnnotateMAGs(dir, t.TempDir(), t.TempDir(), t.TempDir(), t.TempDir(), Options{IdentMin: -1, CoverageMin: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no bin fastas")
}

func TestUpdateDB(t *testing.T) {
	rec := stubCommands(t, nil)
	dir := filepath.Join(t.TempDir(), "db")

	require.NoError(t, UpdateDB(dir))
	require.Len(t, rec.calls, 1)
	assert.Equal(t, []string{"amrfinder_update", "-d", dir}, rec.calls[0])
	assert.DirExists(t, dir)
}
