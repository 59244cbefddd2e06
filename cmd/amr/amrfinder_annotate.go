package main

import (
	"flag"
	"path/filepath"

	"github.com/VinzentRisch/q2-amr/amrfinder"
)

type cmdMAGsAMRFinder struct {
	cmdConfig

	mags           *string
	outdir         *string
	organism       *string
	plus           *bool
	reportAllEqual *bool
	identMin       *float64
	coverageMin    *float64
	translTable    *string
}

func (cmd *cmdMAGsAMRFinder) Flags(fs *flag.FlagSet) *flag.FlagSet {
	cmd.cmdConfig.Flags(fs)
	cmd.mags = fs.String("i", "", "folder of MAG bins, one subfolder per sample.")
	cmd.outdir = fs.String("o", "amrfinder_mags", "output folder.")
	cmd.organism = fs.String("organism", "", "taxon for point mutation screening.")
	cmd.plus = fs.Bool("plus", false, "include the plus genes (virulence, biocide, metal resistance).")
	cmd.reportAllEqual = fs.Bool("report_all_equal", false, "report all equally scoring reference hits.")
	cmd.identMin = fs.Float64("ident_min", -1, "minimum identity of a hit, -1 for curated cutoffs.")
	cmd.coverageMin = fs.Float64("coverage_min", -1, "minimum coverage of a reference, -1 for curated cutoffs.")
	cmd.translTable = fs.String("translation_table", "", "NCBI genetic code for translated BLAST.")
	return fs
}

func (cmd *cmdMAGsAMRFinder) Run(args []string) {
	cmd.ParseConfig()
	opts := amrfinder.Options{
		Organism:         *cmd.organism,
		Plus:             *cmd.plus,
		ReportAllEqual:   *cmd.reportAllEqual,
		IdentMin:         *cmd.identMin,
		CoverageMin:      *cmd.coverageMin,
		TranslationTable: *cmd.translTable,
		Threads:          *cmd.ncpu,
	}
	table, err := amrfinder.AnnotateMAGs(*cmd.mags, cmd.amrfinderDB,
		filepath.Join(*cmd.outdir, "annotations"),
		filepath.Join(*cmd.outdir, "mutations"),
		filepath.Join(*cmd.outdir, "genes"), opts)
	if err != nil {
		ERROR.Fatalln(err)
	}
	writeTable(table, filepath.Join(*cmd.outdir, "feature_table.tsv"))
}

type cmdSeqsAMRFinder struct {
	cmdConfig

	dna      *string
	protein  *string
	gff      *string
	outdir   *string
	organism *string
	plus     *bool
	identMin *float64
}

func (cmd *cmdSeqsAMRFinder) Flags(fs *flag.FlagSet) *flag.FlagSet {
	cmd.cmdConfig.Flags(fs)
	cmd.dna = fs.String("n", "", "DNA feature sequences in fasta format.")
	cmd.protein = fs.String("p", "", "protein feature sequences in fasta format.")
	cmd.gff = fs.String("g", "", "GFF linking DNA and protein sequences.")
	cmd.outdir = fs.String("o", "amrfinder_seqs", "output folder.")
	cmd.organism = fs.String("organism", "", "taxon for point mutation screening.")
	cmd.plus = fs.Bool("plus", false, "include the plus genes.")
	cmd.identMin = fs.Float64("ident_min", -1, "minimum identity of a hit, -1 for curated cutoffs.")
	return fs
}

func (cmd *cmdSeqsAMRFinder) Run(args []string) {
	cmd.ParseConfig()
	opts := amrfinder.Options{
		Organism:    *cmd.organism,
		Plus:        *cmd.plus,
		IdentMin:    *cmd.identMin,
		CoverageMin: -1,
		Threads:     *cmd.ncpu,
	}
	in := amrfinder.SequenceInput{DNA: *cmd.dna, Protein: *cmd.protein, GFF: *cmd.gff}
	var genesOut, proteinsOut string
	if *cmd.dna != "" {
		genesOut = filepath.Join(*cmd.outdir, "genes")
	}
	if *cmd.protein != "" {
		proteinsOut = filepath.Join(*cmd.outdir, "proteins")
	}
	err := amrfinder.AnnotateSequences(in, cmd.amrfinderDB,
		filepath.Join(*cmd.outdir, "annotations"),
		filepath.Join(*cmd.outdir, "mutations"),
		genesOut, proteinsOut, opts)
	if err != nil {
		ERROR.Fatalln(err)
	}
	INFO.Printf("annotations written to %s\n", *cmd.outdir)
}
