package main

import (
	"log"
	"os"
	"runtime"

	amr "github.com/VinzentRisch/q2-amr"
	"github.com/rakyll/command"
)

var (
	DefaultMaxProcs = runtime.NumCPU()
	INFO            *log.Logger
	WARN            *log.Logger
	ERROR           *log.Logger
)

func main() {
	runtime.GOMAXPROCS(DefaultMaxProcs)
	// Register loggers.
	INFO = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WARN = log.New(os.Stdout, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
	ERROR = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	// Register commands.
	command.On("fetchcard", "download the CARD and WildCARD databases", &cmdFetchCARD{}, []string{})
	command.On("updateamrfinderdb", "download the latest AMRFinderPlus database", &cmdUpdateAMRFinderDB{}, []string{})
	command.On("magscard", "annotate MAG bins with RGI against CARD", &cmdMAGsCARD{}, []string{})
	command.On("readscard", "annotate reads with RGI bwt against CARD", &cmdReadsCARD{}, []string{})
	command.On("magsamrfinder", "annotate MAG bins with AMRFinderPlus", &cmdMAGsAMRFinder{}, []string{})
	command.On("seqsamrfinder", "annotate feature sequences with AMRFinderPlus", &cmdSeqsAMRFinder{}, []string{})
	command.On("kmermags", "CARD k-mer pathogen-of-origin prediction for MAG annotations", &cmdKmerMAGs{}, []string{})
	command.On("kmerreads", "CARD k-mer pathogen-of-origin prediction for read annotations", &cmdKmerReads{}, []string{})
	command.On("heatmap", "draw an RGI heatmap from MAG annotations", &cmdHeatmap{}, []string{})
	command.On("partition", "split an annotation artifact into partitions", &cmdPartition{}, []string{})
	command.On("collate", "merge annotation partitions back together", &cmdCollate{}, []string{})
	command.On("mergetables", "merge gene frequency tables", &cmdMergeTables{}, []string{})
	command.On("normalize", "normalize a gene frequency table (TPM or MOR)", &cmdNormalize{}, []string{})
	command.On("exportxlsx", "export a gene frequency table as XLSX", &cmdExportXLSX{}, []string{})
	// Parse and run commands.
	command.ParseAndRun()
}

// The library declares its logger convention itself; reassert it here
// in case another main has swapped the loggers out.
func registerLogger() {
	amr.Info = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime)
	amr.Warn = log.New(os.Stderr, "WARN: ", log.Ldate|log.Ltime)
}
