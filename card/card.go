// Package card annotates MAGs and reads with resistance genes from the
// CARD database by shelling out to RGI, and reshapes its reports into
// frequency tables.
package card

import (
	amr "github.com/VinzentRisch/q2-amr"
)

// File names inside the annotation artifacts and the database
// directories. RGI writes most of them itself; bam_stats.tsv is
// computed here from the sorted BAM.
const (
	AnnotationTXT  = "amr_annotation.txt"
	AnnotationJSON = "amr_annotation.json"

	AlleleMappingData = "allele_mapping_data.txt"
	GeneMappingData   = "gene_mapping_data.txt"
	MappingStatsFile  = "overall_mapping_stats.txt"
	SortedBAM         = "sorted.length_100.bam"
	BAMStatsFile      = "bam_stats.tsv"

	CardJSON  = "card.json"
	KmerJSON  = "kmer_db.json"
	KmerTXT   = "amr_kmers.txt"
	IndexFile = "index-for-model-sequences.txt"
)

// runCommand is swapped out in tests.
var runCommand = amr.RunCommand
