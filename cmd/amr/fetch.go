package main

import (
	"flag"

	"github.com/VinzentRisch/q2-amr/amrfinder"
	"github.com/VinzentRisch/q2-amr/card"
)

type cmdFetchCARD struct {
	outdir  *string
	kmerdir *string
}

func (cmd *cmdFetchCARD) Flags(fs *flag.FlagSet) *flag.FlagSet {
	cmd.outdir = fs.String("o", "card_db", "output folder for the CARD database.")
	cmd.kmerdir = fs.String("k", "kmer_db", "output folder for the k-mer database.")
	return fs
}

func (cmd *cmdFetchCARD) Run(args []string) {
	registerLogger()
	if err := card.FetchDB(card.DataURL, *cmd.outdir); err != nil {
		ERROR.Fatalln(err)
	}
	if err := card.FetchKmerDB(card.VariantsURL, *cmd.kmerdir); err != nil {
		ERROR.Fatalln(err)
	}
	INFO.Printf("CARD databases written to %s and %s\n", *cmd.outdir, *cmd.kmerdir)
}

type cmdUpdateAMRFinderDB struct {
	outdir *string
}

func (cmd *cmdUpdateAMRFinderDB) Flags(fs *flag.FlagSet) *flag.FlagSet {
	cmd.outdir = fs.String("o", "amrfinderplus_db", "output folder for the AMRFinderPlus database.")
	return fs
}

func (cmd *cmdUpdateAMRFinderDB) Run(args []string) {
	registerLogger()
	if err := amrfinder.UpdateDB(*cmd.outdir); err != nil {
		ERROR.Fatalln(err)
	}
	INFO.Printf("AMRFinderPlus database written to %s\n", *cmd.outdir)
}
