package main

import (
	"flag"
	"strings"

	amr "github.com/VinzentRisch/q2-amr"
	"github.com/VinzentRisch/q2-amr/normalize"
)

type cmdPartition struct {
	indir  *string
	outdir *string
	num    *int
}

func (cmd *cmdPartition) Flags(fs *flag.FlagSet) *flag.FlagSet {
	cmd.indir = fs.String("i", "", "annotation folder, one subfolder per sample.")
	cmd.outdir = fs.String("o", "partitions", "output folder.")
	cmd.num = fs.Int("n", 0, "number of partitions, 0 for one per sample.")
	return fs
}

func (cmd *cmdPartition) Run(args []string) {
	registerLogger()
	parts, err := amr.PartitionSamples(*cmd.indir, *cmd.outdir, *cmd.num)
	if err != nil {
		ERROR.Fatalln(err)
	}
	INFO.Printf("wrote %d partitions to %s\n", len(parts), *cmd.outdir)
}

type cmdCollate struct {
	outdir *string
}

func (cmd *cmdCollate) Flags(fs *flag.FlagSet) *flag.FlagSet {
	cmd.outdir = fs.String("o", "collated", "output folder.")
	return fs
}

func (cmd *cmdCollate) Run(args []string) {
	registerLogger()
	if len(args) == 0 {
		ERROR.Fatalln("no partition folders given")
	}
	if err := amr.CollateSamples(args, *cmd.outdir); err != nil {
		ERROR.Fatalln(err)
	}
	INFO.Printf("collated %d partitions into %s\n", len(args), *cmd.outdir)
}

type cmdMergeTables struct {
	out *string
}

func (cmd *cmdMergeTables) Flags(fs *flag.FlagSet) *flag.FlagSet {
	cmd.out = fs.String("o", "feature_table.tsv", "output table.")
	return fs
}

func (cmd *cmdMergeTables) Run(args []string) {
	registerLogger()
	if len(args) == 0 {
		ERROR.Fatalln("no tables given")
	}
	merged := amr.NewCountTable()
	for _, path := range args {
		t, err := amr.ReadCountTable(path)
		if err != nil {
			ERROR.Fatalln(err)
		}
		if err := merged.Merge(t); err != nil {
			ERROR.Fatalln(err)
		}
	}
	writeTable(merged, *cmd.out)
}

type cmdNormalize struct {
	in     *string
	out    *string
	method *string
	genes  *string
}

func (cmd *cmdNormalize) Flags(fs *flag.FlagSet) *flag.FlagSet {
	cmd.in = fs.String("i", "", "input gene frequency table.")
	cmd.out = fs.String("o", "normalized_table.tsv", "output table.")
	cmd.method = fs.String("method", "tpm", "normalization method, tpm or mor.")
	cmd.genes = fs.String("genes", "", "fasta of gene sequences, required for tpm.")
	return fs
}

func (cmd *cmdNormalize) Run(args []string) {
	registerLogger()
	t, err := amr.ReadCountTable(*cmd.in)
	if err != nil {
		ERROR.Fatalln(err)
	}
	var out *amr.CountTable
	switch strings.ToLower(*cmd.method) {
	case "tpm":
		lengths, err := normalize.GeneLengths(*cmd.genes)
		if err != nil {
			ERROR.Fatalln(err)
		}
		out, err = normalize.TPM(t, lengths)
		if err != nil {
			ERROR.Fatalln(err)
		}
	case "mor":
		var factors map[string]float64
		out, factors, err = normalize.MOR(t)
		if err != nil {
			ERROR.Fatalln(err)
		}
		for _, sample := range out.Samples() {
			INFO.Printf("size factor %s: %g\n", sample, factors[sample])
		}
	default:
		ERROR.Fatalf("unknown normalization method %q\n", *cmd.method)
	}
	writeTable(out, *cmd.out)
}

type cmdExportXLSX struct {
	in  *string
	out *string
}

func (cmd *cmdExportXLSX) Flags(fs *flag.FlagSet) *flag.FlagSet {
	cmd.in = fs.String("i", "", "input gene frequency table.")
	cmd.out = fs.String("o", "feature_table.xlsx", "output workbook.")
	return fs
}

func (cmd *cmdExportXLSX) Run(args []string) {
	registerLogger()
	t, err := amr.ReadCountTable(*cmd.in)
	if err != nil {
		ERROR.Fatalln(err)
	}
	if err := t.WriteXLSX(*cmd.out); err != nil {
		ERROR.Fatalln(err)
	}
	INFO.Printf("wrote %s\n", *cmd.out)
}
