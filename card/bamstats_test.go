package card

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestBAM writes a small BAM with the given numbers of mapped and
// unmapped records.
func writeTestBAM(t *testing.T, path string, mapped, unmapped int) {
	t.Helper()

	ref, err := sam.NewReference("ARO_3000796", "", "", 100, nil, nil)
	require.NoError(t, err)
	header, err := sam.NewHeader(nil, []*sam.Reference{ref})
	require.NoError(t, err)

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	w, err := bam.NewWriter(f, header, 1)
	require.NoError(t, err)

	seq := []byte("ACGT")
	qual := []byte{40, 40, 40, 40}
	cigar := []sam.CigarOp{sam.NewCigarOp(sam.CigarMatch, len(seq))}
	for i := 0; i < mapped; i++ {
		rec, err := sam.NewRecord("mapped", ref, nil, 0, -1, 0, 30, cigar, seq, qual, nil)
		require.NoError(t, err)
		require.NoError(t, w.Write(rec))
	}
	for i := 0; i < unmapped; i++ {
		rec, err := sam.NewRecord("unmapped", nil, nil, -1, -1, 0, 0, nil, seq, qual, nil)
		require.NoError(t, err)
		rec.Flags |= sam.Unmapped
		require.NoError(t, w.Write(rec))
	}
	require.NoError(t, w.Close())
}

func TestReadBAMStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), SortedBAM)
	writeTestBAM(t, path, 3, 2)

	stats, err := ReadBAMStats(path)
	require.NoError(t, err)
	assert.Equal(t, MappingStats{Total: 5, Mapped: 3, Unmapped: 2}, stats)
}

func TestMappingStatsWriteTSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), BAMStatsFile)
	st := MappingStats{Total: 5, Mapped: 3, Unmapped: 2}
	require.NoError(t, st.WriteTSV(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "total\tmapped\tunmapped\n5\t3\t2\n", string(data))
}
