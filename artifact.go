package amr

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

// Directory artifacts are opaque file trees with one subdirectory per
// sample (for MAGs, one nested subdirectory per bin). Their internal
// file names are fixed by the annotation steps that write them.

// SampleDirs lists the sample subdirectories of an artifact, sorted.
func SampleDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// CopyFile copies src to dst, creating parent directories.
func CopyFile(dst, src string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

// MoveFile renames src to dst, falling back to copy-and-remove when the
// two live on different file systems (scratch directories usually do).
func MoveFile(dst, src string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := CopyFile(dst, src); err != nil {
		return err
	}
	return os.Remove(src)
}

// CopyTree copies the file tree rooted at src into dst.
func CopyTree(dst, src string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		return CopyFile(target, path)
	})
}

// PartitionSamples splits the sample subdirectories of an artifact into
// num balanced partitions under outDir and returns partition key ->
// partition directory. A non-positive num, or one past the number of
// samples, partitions per sample; one-per-sample partitions are keyed by
// sample name, larger ones by "1".."num".
func PartitionSamples(dir, outDir string, num int) (map[string]string, error) {
	samples, err := SampleDirs(dir)
	if err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("no samples to partition in %s", dir)
	}
	if num > len(samples) {
		Warn.Printf("You have requested %d partitions, but there are only %d samples. Partitioning by sample instead.\n",
			num, len(samples))
	}
	if num <= 0 || num > len(samples) {
		num = len(samples)
	}

	parts := make(map[string]string, num)
	base := len(samples) / num
	rem := len(samples) % num
	next := 0
	for i := 0; i < num; i++ {
		size := base
		if i < rem {
			size++
		}
		chunk := samples[next : next+size]
		next += size

		key := strconv.Itoa(i + 1)
		if num == len(samples) {
			key = chunk[0]
		}
		dest := filepath.Join(outDir, key)
		for _, s := range chunk {
			if err := CopyTree(filepath.Join(dest, s), filepath.Join(dir, s)); err != nil {
				return nil, err
			}
		}
		parts[key] = dest
	}
	return parts, nil
}

// CollateSamples fans partitioned artifacts back together into outDir.
// The same sample appearing in more than one partition is an error.
func CollateSamples(dirs []string, outDir string) error {
	if len(dirs) == 0 {
		return fmt.Errorf("no artifacts to collate")
	}
	seen := make(map[string]string)
	for _, d := range dirs {
		samples, err := SampleDirs(d)
		if err != nil {
			return err
		}
		for _, s := range samples {
			if prev, ok := seen[s]; ok {
				return fmt.Errorf("sample %q appears in both %s and %s", s, prev, d)
			}
			seen[s] = d
			if err := CopyTree(filepath.Join(outDir, s), filepath.Join(d, s)); err != nil {
				return err
			}
		}
	}
	return nil
}
