package card

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	amr "github.com/VinzentRisch/q2-amr"
)

// KmerOptions controls the rgi kmer_query invocations.
type KmerOptions struct {
	KmerSize int // classifier k-mer length, CARD ships 61
	Minimum  int // minimum k-mers in the called category
	Threads  int
}

func (o KmerOptions) kmerSize() int {
	if o.KmerSize > 0 {
		return o.KmerSize
	}
	return 61
}

// KmerQueryMAGs runs CARD's k-mer pathogen-of-origin classifier on the
// json reports of AnnotateMAGs. Results land in
// outDir/<sample>/<bin>/<k>mer_analysis{.json,_rgi_summary.txt}.
func KmerQueryMAGs(annotations, cardDB, kmerDB, outDir string, opts KmerOptions) error {
	k := opts.kmerSize()

	type binInput struct {
		sample string
		bin    string
		json   string
	}
	var bins []binInput
	samples, err := amr.SampleDirs(annotations)
	if err != nil {
		return err
	}
	for _, sample := range samples {
		binNames, err := amr.SampleDirs(filepath.Join(annotations, sample))
		if err != nil {
			return err
		}
		for _, bin := range binNames {
			bins = append(bins, binInput{
				sample: sample,
				bin:    bin,
				json:   filepath.Join(annotations, sample, bin, AnnotationJSON),
			})
		}
	}
	if len(bins) == 0 {
		return fmt.Errorf("no annotations under %s", annotations)
	}

	tmp, err := os.MkdirTemp("", "card-kmer")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmp)

	if err := LoadKmerDB(tmp, cardDB, kmerDB, k); err != nil {
		return err
	}

	bar := startProgress(len(bins))
	for _, b := range bins {
		if err := runKmerQuery(tmp, b.json, "--rgi", opts); err != nil {
			return err
		}
		dest := filepath.Join(outDir, b.sample, b.bin)
		prefix := filepath.Join(tmp, fmt.Sprintf("output_%dmer_analysis", k))
		for src, name := range map[string]string{
			prefix + ".json":            fmt.Sprintf("%dmer_analysis.json", k),
			prefix + "_rgi_summary.txt": fmt.Sprintf("%dmer_analysis_rgi_summary.txt", k),
		} {
			if err := amr.MoveFile(filepath.Join(dest, name), src); err != nil {
				return err
			}
		}
		incrProgress(bar)
	}
	finishProgress(bar)
	return nil
}

// KmerQueryReads runs the classifier on the sorted BAMs of
// AnnotateReads. Allele-level results land in alleleOut/<sample>/,
// gene-level ones in geneOut/<sample>/; the json report is kept with
// the allele results.
func KmerQueryReads(alleleAnnotations, cardDB, kmerDB, alleleOut, geneOut string, opts KmerOptions) error {
	k := opts.kmerSize()

	samples, err := amr.SampleDirs(alleleAnnotations)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no annotations under %s", alleleAnnotations)
	}

	tmp, err := os.MkdirTemp("", "card-kmer")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmp)

	if err := LoadKmerDB(tmp, cardDB, kmerDB, k); err != nil {
		return err
	}

	bar := startProgress(len(samples))
	for _, sample := range samples {
		bamPath := filepath.Join(alleleAnnotations, sample, SortedBAM)
		if err := runKmerQuery(tmp, bamPath, "--bwt", opts); err != nil {
			return err
		}
		prefix := filepath.Join(tmp, fmt.Sprintf("output_%dmer_analysis", k))
		moves := map[string]string{
			prefix + ".json":       filepath.Join(alleleOut, sample, fmt.Sprintf("%dmer_analysis.json", k)),
			prefix + ".allele.txt": filepath.Join(alleleOut, sample, fmt.Sprintf("%dmer_analysis.allele.txt", k)),
			prefix + ".gene.txt":   filepath.Join(geneOut, sample, fmt.Sprintf("%dmer_analysis.gene.txt", k)),
		}
		for src, dst := range moves {
			if err := amr.MoveFile(dst, src); err != nil {
				return err
			}
		}
		incrProgress(bar)
	}
	finishProgress(bar)
	return nil
}

func runKmerQuery(dir, input, mode string, opts KmerOptions) error {
	args := []string{
		"kmer_query", mode,
		"--input", input,
		"--kmer_size", strconv.Itoa(opts.kmerSize()),
		"--output", filepath.Join(dir, "output"),
		"--local",
	}
	if opts.Minimum > 0 {
		args = append(args, "--minimum", strconv.Itoa(opts.Minimum))
	}
	if opts.Threads > 0 {
		args = append(args, "--threads", strconv.Itoa(opts.Threads))
	}
	return runCommand(dir, "rgi", args...)
}
