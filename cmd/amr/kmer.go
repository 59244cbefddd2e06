package main

import (
	"flag"
	"path/filepath"

	"github.com/VinzentRisch/q2-amr/card"
)

type cmdKmerMAGs struct {
	cmdConfig

	annotations *string
	outdir      *string
	kmerSize    *int
	minimum     *int
}

func (cmd *cmdKmerMAGs) Flags(fs *flag.FlagSet) *flag.FlagSet {
	cmd.cmdConfig.Flags(fs)
	cmd.annotations = fs.String("i", "", "folder of MAG annotations from the magscard command.")
	cmd.outdir = fs.String("o", "kmer_mags", "output folder.")
	cmd.kmerSize = fs.Int("kmer_size", 61, "k-mer length of the database.")
	cmd.minimum = fs.Int("minimum", 0, "minimum number of k-mers to call a taxon.")
	return fs
}

func (cmd *cmdKmerMAGs) Run(args []string) {
	cmd.ParseConfig()
	opts := card.KmerOptions{KmerSize: *cmd.kmerSize, Minimum: *cmd.minimum, Threads: *cmd.ncpu}
	if err := card.KmerQueryMAGs(*cmd.annotations, cmd.cardDB, cmd.kmerDB, *cmd.outdir, opts); err != nil {
		ERROR.Fatalln(err)
	}
	INFO.Printf("k-mer analyses written to %s\n", *cmd.outdir)
}

type cmdKmerReads struct {
	cmdConfig

	annotations *string
	outdir      *string
	kmerSize    *int
	minimum     *int
}

func (cmd *cmdKmerReads) Flags(fs *flag.FlagSet) *flag.FlagSet {
	cmd.cmdConfig.Flags(fs)
	cmd.annotations = fs.String("i", "", "folder of allele annotations from the readscard command.")
	cmd.outdir = fs.String("o", "kmer_reads", "output folder.")
	cmd.kmerSize = fs.Int("kmer_size", 61, "k-mer length of the database.")
	cmd.minimum = fs.Int("minimum", 0, "minimum number of k-mers to call a taxon.")
	return fs
}

func (cmd *cmdKmerReads) Run(args []string) {
	cmd.ParseConfig()
	opts := card.KmerOptions{KmerSize: *cmd.kmerSize, Minimum: *cmd.minimum, Threads: *cmd.ncpu}
	alleleOut := filepath.Join(*cmd.outdir, "allele_analyses")
	geneOut := filepath.Join(*cmd.outdir, "gene_analyses")
	if err := card.KmerQueryReads(*cmd.annotations, cmd.cardDB, cmd.kmerDB, alleleOut, geneOut, opts); err != nil {
		ERROR.Fatalln(err)
	}
	INFO.Printf("k-mer analyses written to %s\n", *cmd.outdir)
}

type cmdHeatmap struct {
	cmdConfig

	annotations *string
	outdir      *string
	category    *string
	cluster     *string
	display     *string
	frequency   *bool
}

func (cmd *cmdHeatmap) Flags(fs *flag.FlagSet) *flag.FlagSet {
	cmd.cmdConfig.Flags(fs)
	cmd.annotations = fs.String("i", "", "folder of MAG annotations from the magscard command.")
	cmd.outdir = fs.String("o", "heatmap", "output folder.")
	cmd.category = fs.String("category", "", "categorize the genes (drug_class, resistance_mechanism or gene_family).")
	cmd.cluster = fs.String("cluster", "", "cluster axis (samples, genes or both).")
	cmd.display = fs.String("display", "", "how to display categories (plain, fill or text).")
	cmd.frequency = fs.Bool("frequency", false, "display genes by identical resistome frequency.")
	return fs
}

func (cmd *cmdHeatmap) Run(args []string) {
	cmd.ParseConfig()
	opts := card.HeatmapOptions{
		Category:  *cmd.category,
		Cluster:   *cmd.cluster,
		Display:   *cmd.display,
		Frequency: *cmd.frequency,
	}
	if err := card.Heatmap(*cmd.annotations, *cmd.outdir, opts); err != nil {
		ERROR.Fatalln(err)
	}
	INFO.Printf("heatmap written to %s\n", *cmd.outdir)
}
