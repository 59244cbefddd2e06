package card

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeMAGAnnotations(t *testing.T, bins map[string][]string) string {
	t.Helper()
	dir := t.TempDir()
	for sample, names := range bins {
		for _, bin := range names {
			dest := filepath.Join(dir, sample, bin)
			require.NoError(t, os.MkdirAll(dest, 0755))
			require.NoError(t, os.WriteFile(filepath.Join(dest, AnnotationTXT), []byte("ORF_ID\tARO\n"), 0644))
			require.NoError(t, os.WriteFile(filepath.Join(dest, AnnotationJSON), []byte("{}"), 0644))
		}
	}
	return dir
}

// fakeKmerQuery writes the analysis files rgi kmer_query would leave in
// the scratch directory, for the given modes.
func fakeKmerQuery(mode string) func(dir string, args []string) error {
	return func(dir string, args []string) error {
		if args[0] != "kmer_query" {
			return nil
		}
		prefix := filepath.Join(dir, "output_61mer_analysis")
		var names []string
		if mode == "--rgi" {
			names = []string{prefix + ".json", prefix + "_rgi_summary.txt"}
		} else {
			names = []string{prefix + ".json", prefix + ".allele.txt", prefix + ".gene.txt"}
		}
		for _, name := range names {
			if err := os.WriteFile(name, []byte("x"), 0644); err != nil {
				return err
			}
		}
		return nil
	}
}

func TestKmerQueryMAGs(t *testing.T) {
	rec := stubCommands(t, fakeKmerQuery("--rgi"))
	annotations := makeMAGAnnotations(t, map[string][]string{"s1": {"bin1"}, "s2": {"bin1"}})
	out := t.TempDir()

	err := KmerQueryMAGs(annotations, makeCardDB(t), t.TempDir(), out, KmerOptions{})
	require.NoError(t, err)

	// One k-mer db load plus one query per bin.
	require.Len(t, rec.calls, 3)
	assert.Equal(t, "load", rec.calls[0][1])
	query := rec.calls[1]
	assert.Equal(t, "kmer_query", query[1])
	assert.Contains(t, query, "--rgi")
	assert.Contains(t, query, "--kmer_size")
	assert.Contains(t, query, "61")

	for _, s := range []string{"s1", "s2"} {
		assert.FileExists(t, filepath.Join(out, s, "bin1", "61mer_analysis.json"))
		assert.FileExists(t, filepath.Join(out, s, "bin1", "61mer_analysis_rgi_summary.txt"))
	}
}

func TestKmerQueryMAGsNoAnnotations(t *testing.T) {
	stubCommands(t, nil)
	err := KmerQueryMAGs(t.TempDir(), makeCardDB(t), t.TempDir(), t.TempDir(), KmerOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no annotations")
}

func TestKmerQueryReads(t *testing.T) {
	rec := stubCommands(t, fakeKmerQuery("--bwt"))
	annotations := t.TempDir()
	for _, s := range []string{"s1", "s2"} {
		dest := filepath.Join(annotations, s)
		require.NoError(t, os.MkdirAll(dest, 0755))
		writeTestBAM(t, filepath.Join(dest, SortedBAM), 1, 0)
	}
	alleleOut := t.TempDir()
	geneOut := t.TempDir()

	err := KmerQueryReads(annotations, makeCardDB(t), t.TempDir(), alleleOut, geneOut, KmerOptions{Minimum: 5})
	require.NoError(t, err)

	require.Len(t, rec.calls, 3)
	query := rec.calls[1]
	assert.Contains(t, query, "--bwt")
	assert.Contains(t, query, "--minimum")
	assert.Contains(t, query, "5")

	for _, s := range []string{"s1", "s2"} {
		assert.FileExists(t, filepath.Join(alleleOut, s, "61mer_analysis.json"))
		assert.FileExists(t, filepath.Join(alleleOut, s, "61mer_analysis.allele.txt"))
		assert.FileExists(t, filepath.Join(geneOut, s, "61mer_analysis.gene.txt"))
	}
}
