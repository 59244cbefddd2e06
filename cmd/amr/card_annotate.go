package main

import (
	"flag"
	"path/filepath"

	amr "github.com/VinzentRisch/q2-amr"
	"github.com/VinzentRisch/q2-amr/card"
)

type cmdMAGsCARD struct {
	cmdConfig

	mags          *string
	outdir        *string
	alignmentTool *string
	splitProdigal *bool
	includeLoose  *bool
	includeNudge  *bool
	lowQuality    *bool
}

func (cmd *cmdMAGsCARD) Flags(fs *flag.FlagSet) *flag.FlagSet {
	cmd.cmdConfig.Flags(fs)
	cmd.mags = fs.String("i", "", "folder of MAG bins, one subfolder per sample.")
	cmd.outdir = fs.String("o", "card_mags", "output folder.")
	cmd.alignmentTool = fs.String("aligner", "", "alignment tool for rgi main (BLAST or DIAMOND).")
	cmd.splitProdigal = fs.Bool("split_prodigal_jobs", false, "run multiple prodigal jobs simultaneously.")
	cmd.includeLoose = fs.Bool("include_loose", false, "include loose hits.")
	cmd.includeNudge = fs.Bool("include_nudge", false, "include hits nudged from loose to strict.")
	cmd.lowQuality = fs.Bool("low_quality", false, "use presets for low quality or merged metagenomic sequences.")
	return fs
}

func (cmd *cmdMAGsCARD) Run(args []string) {
	cmd.ParseConfig()
	opts := card.MAGsOptions{
		AlignmentTool:     *cmd.alignmentTool,
		SplitProdigalJobs: *cmd.splitProdigal,
		IncludeLoose:      *cmd.includeLoose,
		IncludeNudge:      *cmd.includeNudge,
		LowQuality:        *cmd.lowQuality,
		Threads:           *cmd.ncpu,
	}
	table, err := card.AnnotateMAGs(*cmd.mags, cmd.cardDB, filepath.Join(*cmd.outdir, "annotations"), opts)
	if err != nil {
		ERROR.Fatalln(err)
	}
	writeTable(table, filepath.Join(*cmd.outdir, "feature_table.tsv"))
}

type cmdReadsCARD struct {
	cmdConfig

	manifest    *string
	outdir      *string
	aligner     *string
	wildcard    *bool
	otherModels *bool
}

func (cmd *cmdReadsCARD) Flags(fs *flag.FlagSet) *flag.FlagSet {
	cmd.cmdConfig.Flags(fs)
	cmd.manifest = fs.String("m", "", "manifest of read files, one row per sample.")
	cmd.outdir = fs.String("o", "card_reads", "output folder.")
	cmd.aligner = fs.String("aligner", "", "read aligner for rgi bwt.")
	cmd.wildcard = fs.Bool("include_wildcard", false, "align against wildcard variants too.")
	cmd.otherModels = fs.Bool("include_other_models", false, "align against all model types.")
	return fs
}

func (cmd *cmdReadsCARD) Run(args []string) {
	cmd.ParseConfig()
	opts := card.ReadsOptions{
		Aligner:            *cmd.aligner,
		Threads:            *cmd.ncpu,
		IncludeWildcard:    *cmd.wildcard,
		IncludeOtherModels: *cmd.otherModels,
	}
	alleleOut := filepath.Join(*cmd.outdir, "allele_annotations")
	geneOut := filepath.Join(*cmd.outdir, "gene_annotations")
	alleleTable, geneTable, err := card.AnnotateReads(*cmd.manifest, cmd.cardDB, alleleOut, geneOut, opts)
	if err != nil {
		ERROR.Fatalln(err)
	}
	writeTable(alleleTable, filepath.Join(*cmd.outdir, "allele_feature_table.tsv"))
	writeTable(geneTable, filepath.Join(*cmd.outdir, "gene_feature_table.tsv"))
}

func writeTable(t *amr.CountTable, path string) {
	if err := amr.WriteCountTable(t, path); err != nil {
		ERROR.Fatalln(err)
	}
	INFO.Printf("wrote %d samples x %d features to %s\n", len(t.Samples()), len(t.Features()), path)
}
