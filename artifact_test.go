package amr

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSampleTree(t *testing.T, samples ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, s := range samples {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, s, "bin1"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, s, "bin1", "amr_annotation.txt"),
			[]byte("ORF_ID\tARO\n"+s+"_orf\t3000796\n"), 0644))
	}
	return dir
}

func TestSampleDirs(t *testing.T) {
	dir := makeSampleTree(t, "s2", "s1")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stray.txt"), []byte("x"), 0644))

	samples, err := SampleDirs(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s2"}, samples)
}

func TestPartitionPerSample(t *testing.T) {
	dir := makeSampleTree(t, "s1", "s2", "s3")
	out := t.TempDir()

	parts, err := PartitionSamples(dir, out, 0)
	require.NoError(t, err)
	require.Len(t, parts, 3)
	// One partition per sample is keyed by the sample name.
	for _, s := range []string{"s1", "s2", "s3"} {
		p, ok := parts[s]
		require.True(t, ok)
		assert.FileExists(t, filepath.Join(p, s, "bin1", "amr_annotation.txt"))
	}
}

func TestPartitionChunks(t *testing.T) {
	dir := makeSampleTree(t, "s1", "s2", "s3")
	out := t.TempDir()

	parts, err := PartitionSamples(dir, out, 2)
	require.NoError(t, err)
	require.Len(t, parts, 2)
	assert.FileExists(t, filepath.Join(parts["1"], "s1", "bin1", "amr_annotation.txt"))
	assert.FileExists(t, filepath.Join(parts["1"], "s2", "bin1", "amr_annotation.txt"))
	assert.FileExists(t, filepath.Join(parts["2"], "s3", "bin1", "amr_annotation.txt"))
}

func TestPartitionClampsToSampleCount(t *testing.T) {
	dir := makeSampleTree(t, "s1", "s2")
	out := t.TempDir()

	parts, err := PartitionSamples(dir, out, 5)
	require.NoError(t, err)
	assert.Len(t, parts, 2)
}

func TestPartitionCollateRoundTrip(t *testing.T) {
	dir := makeSampleTree(t, "s1", "s2", "s3")

	parts, err := PartitionSamples(dir, t.TempDir(), 0)
	require.NoError(t, err)

	var dirs []string
	for _, p := range parts {
		dirs = append(dirs, p)
	}
	out := t.TempDir()
	require.NoError(t, CollateSamples(dirs, out))

	samples, err := SampleDirs(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s2", "s3"}, samples)
	for _, s := range samples {
		assert.FileExists(t, filepath.Join(out, s, "bin1", "amr_annotation.txt"))
	}
}

func TestCollateDuplicateSample(t *testing.T) {
	a := makeSampleTree(t, "s1")
	b := makeSampleTree(t, "s1")

	err := CollateSamples([]string{a, b}, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `sample "s1" appears in both`)
}

func TestMoveFile(t *testing.T) {
	src := writeTempFile(t, "src.txt", "payload")
	dst := filepath.Join(t.TempDir(), "nested", "dst.txt")

	require.NoError(t, MoveFile(dst, src))
	assert.NoFileExists(t, src)
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}
