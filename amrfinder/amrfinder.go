// Package amrfinder annotates MAGs and feature sequences with NCBI's
// AMRFinderPlus and reshapes its reports into frequency tables.
package amrfinder

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	amr "github.com/VinzentRisch/q2-amr"
)

// File names inside the annotation artifacts.
const (
	AnnotationsFile = "amr_annotations.tsv"
	MutationsFile   = "amr_mutations.tsv"
	GenesFile       = "amr_genes.fasta"
	ProteinsFile    = "amr_proteins.fasta"
)

// runCommand is swapped out in tests.
var runCommand = amr.RunCommand

// Options controls the amrfinder invocations. Negative IdentMin and
// CoverageMin leave the tool's curated defaults in place.
type Options struct {
	Organism         string
	Plus             bool
	ReportAllEqual   bool
	IdentMin         float64
	CoverageMin      float64
	TranslationTable string
	Threads          int
}

func (o Options) args() []string {
	var args []string
	if o.Threads > 0 {
		args = append(args, "--threads", strconv.Itoa(o.Threads))
	}
	if o.Organism != "" {
		args = append(args, "--organism", o.Organism)
	}
	if o.Plus {
		args = append(args, "--plus")
	}
	if o.ReportAllEqual {
		args = append(args, "--report_all_equal")
	}
	if o.IdentMin >= 0 {
		args = append(args, "--ident_min", strconv.FormatFloat(o.IdentMin, 'g', -1, 64))
	}
	if o.CoverageMin >= 0 {
		args = append(args, "--coverage_min", strconv.FormatFloat(o.CoverageMin, 'g', -1, 64))
	}
	if o.TranslationTable != "" {
		args = append(args, "--translation_table", o.TranslationTable)
	}
	return args
}

// AnnotateMAGs runs amrfinder in nucleotide mode on every bin fasta of
// every sample under magsDir. Annotation and mutation reports land in
// annotOut/<sample>/<bin>/ resp. mutOut/<sample>/<bin>/, the detected
// gene sequences in genesOut/<sample>_<bin>_amr_genes.fasta. Returns
// the frequency table of gene symbols across all bins.
func AnnotateMAGs(magsDir, db, annotOut, mutOut, genesOut string, opts Options) (*amr.CountTable, error) {
	samples, err := amr.SampleDirs(magsDir)
	if err != nil {
		return nil, err
	}

	tmp, err := os.MkdirTemp("", "amrfinder-mags")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmp)

	var list []*amr.GeneCounts
	for _, sample := range samples {
		fastas, err := binFastas(filepath.Join(magsDir, sample))
		if err != nil {
			return nil, err
		}
		for _, p := range fastas {
			bin := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
			if err := runAMRFinderN(tmp, db, p, opts); err != nil {
				return nil, err
			}

			gc, err := amr.ReadGeneCounts(filepath.Join(tmp, AnnotationsFile), "Gene symbol", sample+"/"+bin)
			if err != nil {
				return nil, err
			}
			list = append(list, gc)

			moves := map[string]string{
				AnnotationsFile: filepath.Join(annotOut, sample, bin, AnnotationsFile),
				MutationsFile:   filepath.Join(mutOut, sample, bin, MutationsFile),
				GenesFile:       filepath.Join(genesOut, sample+"_"+bin+"_"+GenesFile),
			}
			for name, dst := range moves {
				src := filepath.Join(tmp, name)
				if _, err := os.Stat(src); os.IsNotExist(err) {
					amr.Warn.Printf("%s/%s: amrfinder produced no %s\n", sample, bin, name)
					continue
				}
				if err := amr.MoveFile(dst, src); err != nil {
					return nil, err
				}
			}
		}
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("no bin fastas under %s", magsDir)
	}
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

func runAMRFinderN(dir, db, inputSeq string, opts Options) error {
	args := []string{
		"-n", inputSeq,
		"--database", db,
		"-o", filepath.Join(dir, AnnotationsFile),
		"--print_node",
		"--nucleotide_output", filepath.Join(dir, GenesFile),
		"--mutation_all", filepath.Join(dir, MutationsFile),
	}
	args = append(args, opts.args()...)
	return runCommand(dir, "amrfinder", args...)
}

// UpdateDB lets AMRFinderPlus download its own latest database into dir.
func UpdateDB(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return runCommand(dir, "amrfinder_update", "-d", dir)
}
