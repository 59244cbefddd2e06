package card

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	amr "github.com/VinzentRisch/q2-amr"
)

// MAGsOptions controls the rgi main invocations.
type MAGsOptions struct {
	AlignmentTool     string // BLAST or DIAMOND
	SplitProdigalJobs bool
	IncludeLoose      bool
	IncludeNudge      bool
	LowQuality        bool
	Threads           int
}

// AnnotateMAGs runs rgi main on every bin fasta of every sample under
// magsDir, moves the txt and json reports into outDir/<sample>/<bin>/
// and returns the frequency table of ARO hits across all bins. Samples
// are processed sequentially; rgi's own --num_threads is the only
// parallelism.
func AnnotateMAGs(magsDir, cardDB, outDir string, opts MAGsOptions) (*amr.CountTable, error) {
	samples, err := amr.SampleDirs(magsDir)
	if err != nil {
		return nil, err
	}

	type binInput struct {
		sample string
		bin    string
		path   string
	}
	var bins []binInput
	for _, sample := range samples {
		fastas, err := binFastas(filepath.Join(magsDir, sample))
		if err != nil {
			return nil, err
		}
		for _, p := range fastas {
			bin := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
			bins = append(bins, binInput{sample: sample, bin: bin, path: p})
		}
	}
	if len(bins) == 0 {
		return nil, fmt.Errorf("no bin fastas under %s", magsDir)
	}

	tmp, err := os.MkdirTemp("", "card-mags")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmp)

	if err := LoadDB(tmp, cardDB); err != nil {
		return nil, err
	}

	bar := startProgress(len(bins))
	var list []*amr.GeneCounts
	for _, b := range bins {
		if err := runRGIMain(tmp, b.path, opts); err != nil {
			return nil, err
		}

		gc, err := amr.ReadGeneCounts(filepath.Join(tmp, AnnotationTXT), "ARO", b.sample+"/"+b.bin)
		if err != nil {
			return nil, err
		}
		list = append(list, gc)

		dest := filepath.Join(outDir, b.sample, b.bin)
		for _, name := range []string{AnnotationTXT, AnnotationJSON} {
			if err := amr.MoveFile(filepath.Join(dest, name), filepath.Join(tmp, name)); err != nil {
				return nil, err
			}
		}
		incrProgress(bar)
	}
	finishProgress(bar)

	return amr.CreateCountTable(list)
}

func binFastas(dir string) ([]string, error) {
	var fastas []string
	for _, pattern := range []string{"*.fasta", "*.fa"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		fastas = append(fastas, matches...)
	}
	return fastas, nil
}

func runRGIMain(dir, inputSeq string, opts MAGsOptions) error {
	args := []string{
		"main",
		"--input_sequence", inputSeq,
		"--output_file", filepath.Join(dir, "amr_annotation"),
		"--input_type", "contig",
		"--local",
		"--clean",
	}
	if opts.AlignmentTool != "" {
		args = append(args, "--alignment_tool", opts.AlignmentTool)
	}
	if opts.Threads > 0 {
		args = append(args, "--num_threads", strconv.Itoa(opts.Threads))
	}
	if opts.IncludeLoose {
		args = append(args, "--include_loose")
	}
	if opts.IncludeNudge {
		args = append(args, "--include_nudge")
	}
	if opts.LowQuality {
		args = append(args, "--low_quality")
	}
	if opts.SplitProdigalJobs {
		args = append(args, "--split_prodigal_jobs")
	}
	return runCommand(dir, "rgi", args...)
}
