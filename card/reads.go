package card

import (
	"os"
	"path/filepath"
	"strconv"

	amr "github.com/VinzentRisch/q2-amr"
)

// ReadsOptions controls the rgi bwt invocations.
type ReadsOptions struct {
	Aligner            string // kma, bowtie2 or bwa
	Threads            int
	IncludeWildcard    bool
	IncludeOtherModels bool
}

// AnnotateReads maps every manifest sample against CARD with rgi bwt.
// Allele-level outputs (mapping data, rgi's mapping stats, the sorted
// BAM plus stats recounted from it) land in alleleOut/<sample>/, the
// gene-level mapping data in geneOut/<sample>/. Returns the allele and
// gene frequency tables of ARO accessions.
func AnnotateReads(manifestPath, cardDB, alleleOut, geneOut string, opts ReadsOptions) (*amr.CountTable, *amr.CountTable, error) {
	samples, err := amr.ReadManifest(manifestPath)
	if err != nil {
		return nil, nil, err
	}

	tmp, err := os.MkdirTemp("", "card-reads")
	if err != nil {
		return nil, nil, err
	}
	defer os.RemoveAll(tmp)

	if err := LoadDBFasta(tmp, cardDB, opts.IncludeWildcard, opts.IncludeOtherModels); err != nil {
		return nil, nil, err
	}

	bar := startProgress(len(samples))
	var alleles, genes []*amr.GeneCounts
	for _, s := range samples {
		if err := runRGIBwt(tmp, s, opts); err != nil {
			return nil, nil, err
		}
		prefix := filepath.Join(tmp, "output")

		ac, err := amr.ReadGeneCounts(prefix+"."+AlleleMappingData, "ARO Accession", s.Sample)
		if err != nil {
			return nil, nil, err
		}
		alleles = append(alleles, ac)

		gc, err := amr.ReadGeneCounts(prefix+"."+GeneMappingData, "ARO Accession", s.Sample)
		if err != nil {
			return nil, nil, err
		}
		genes = append(genes, gc)

		alleleDest := filepath.Join(alleleOut, s.Sample)
		if err := moveBwtOutput(prefix, alleleDest, s.Sample, geneOut); err != nil {
			return nil, nil, err
		}
		incrProgress(bar)
	}
	finishProgress(bar)

	alleleTable, err := amr.CreateCountTable(alleles)
	if err != nil {
		return nil, nil, err
	}
	geneTable, err := amr.CreateCountTable(genes)
	if err != nil {
		return nil, nil, err
	}
	return alleleTable, geneTable, nil
}

func moveBwtOutput(prefix, alleleDest, sample, geneOut string) error {
	// Recount mapped and unmapped reads from the BAM before it moves;
	// rgi's own stats file is kept alongside as the tool reported it.
	bamPath := prefix + "." + SortedBAM
	if _, err := os.Stat(bamPath); err == nil {
		stats, err := ReadBAMStats(bamPath)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(alleleDest, 0755); err != nil {
			return err
		}
		if err := stats.WriteTSV(filepath.Join(alleleDest, BAMStatsFile)); err != nil {
			return err
		}
		if err := amr.MoveFile(filepath.Join(alleleDest, SortedBAM), bamPath); err != nil {
			return err
		}
	} else {
		amr.Warn.Printf("sample %s: rgi bwt produced no %s\n", sample, SortedBAM)
	}

	for _, name := range []string{AlleleMappingData, MappingStatsFile} {
		src := prefix + "." + name
		if _, err := os.Stat(src); os.IsNotExist(err) && name == MappingStatsFile {
			amr.Warn.Printf("sample %s: rgi bwt produced no %s\n", sample, name)
			continue
		}
		if err := amr.MoveFile(filepath.Join(alleleDest, name), src); err != nil {
			return err
		}
	}
	return amr.MoveFile(filepath.Join(geneOut, sample, GeneMappingData), prefix+"."+GeneMappingData)
}

func runRGIBwt(dir string, s amr.SampleReads, opts ReadsOptions) error {
	args := []string{"bwt", "--read_one", s.Fwd}
	if s.Rev != "" {
		args = append(args, "--read_two", s.Rev)
	}
	args = append(args,
		"--output_file", filepath.Join(dir, "output"),
		"--local",
		"--clean",
	)
	if opts.Aligner != "" {
		args = append(args, "--aligner", opts.Aligner)
	}
	if opts.Threads > 0 {
		args = append(args, "--threads", strconv.Itoa(opts.Threads))
	}
	if opts.IncludeWildcard {
		args = append(args, "--include_wildcard")
	}
	if opts.IncludeOtherModels {
		args = append(args, "--include_other_models")
	}
	return runCommand(dir, "rgi", args...)
}
