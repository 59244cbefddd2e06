package amr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadManifest(t *testing.T) {
	path := writeTempFile(t, "manifest.tsv",
		"sampleID\tfq1\tfq2\n"+
			"s1\ts1_R1.fastq.gz\ts1_R2.fastq.gz\n"+
			"s2\ts2_R1.fastq.gz\t\n")

	samples, err := ReadManifest(path)
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, SampleReads{Sample: "s1", Fwd: "s1_R1.fastq.gz", Rev: "s1_R2.fastq.gz"}, samples[0])
	assert.Equal(t, "s2", samples[1].Sample)
	assert.Empty(t, samples[1].Rev)
}

func TestReadManifestDuplicateSample(t *testing.T) {
	path := writeTempFile(t, "manifest.tsv",
		"sampleID\tfq1\n"+
			"s1\ta.fastq.gz\n"+
			"s1\tb.fastq.gz\n")
	_, err := ReadManifest(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dup sampleID:s1")
}

func TestReadManifestMissingFq1(t *testing.T) {
	path := writeTempFile(t, "manifest.tsv", "sampleID\tfq1\ns1\t\n")
	_, err := ReadManifest(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no fq1")
}

func TestReadManifestEmpty(t *testing.T) {
	path := writeTempFile(t, "manifest.tsv", "sampleID\tfq1\n")
	_, err := ReadManifest(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty manifest")
}
