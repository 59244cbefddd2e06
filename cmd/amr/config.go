package main

import (
	"flag"
	"path/filepath"
	"runtime"

	"github.com/VinzentRisch/q2-amr/card"
	"github.com/spf13/viper"
)

// Config to read flags and configure file.
type cmdConfig struct {
	// Flags.
	workspace *string // workspace.
	config    *string // configure file name.
	ncpu      *int    // number of CPUs for using.

	// Database locations.
	cardDB       string // loaded CARD database folder.
	kmerDB       string // CARD k-mer database folder.
	amrfinderDB  string // AMRFinderPlus database folder.
	showProgress bool   // show progress bars.
}

func (cmd *cmdConfig) Flags(fs *flag.FlagSet) *flag.FlagSet {
	cmd.workspace = fs.String("w", "", "workspace.")
	cmd.config = fs.String("c", "config.yaml", "configure file in YAML format.")
	cmd.ncpu = fs.Int("ncpu", runtime.NumCPU(), "number of CPUs for using.")
	return fs
}

// Parse configs.
func (cmd *cmdConfig) ParseConfig() {
	viper.SetConfigFile(filepath.Join(*cmd.workspace, *cmd.config))
	viper.SetDefault("progress", true)
	if err := viper.ReadInConfig(); err != nil {
		ERROR.Fatalln(err)
	}
	cmd.cardDB = cmd.resolve(viper.GetString("card.db"))
	cmd.kmerDB = cmd.resolve(viper.GetString("card.kmer_db"))
	cmd.amrfinderDB = cmd.resolve(viper.GetString("amrfinderplus.db"))
	cmd.showProgress = viper.GetBool("progress")
	card.ShowProgress = cmd.showProgress

	registerLogger()
	runtime.GOMAXPROCS(*cmd.ncpu)
}

// Paths in the configure file are relative to the workspace.
func (cmd *cmdConfig) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(*cmd.workspace, p)
}
