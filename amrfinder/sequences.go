package amrfinder

import (
	"errors"
	"os"
	"path/filepath"

	amr "github.com/VinzentRisch/q2-amr"
)

// SequenceInput names the files handed to AnnotateSequences. DNA and
// protein sequences can only be combined through a GFF that links them.
type SequenceInput struct {
	DNA     string
	Protein string
	GFF     string
}

func (in SequenceInput) validate() error {
	if in.DNA != "" && in.Protein != "" && in.GFF == "" {
		return errors.New("DNA-sequence and protein-sequence inputs together can only be given in combination with GFF input.")
	}
	if in.GFF != "" && in.Protein == "" {
		return errors.New("GFF input can only be given in combination with protein-sequence input.")
	}
	if in.DNA == "" && in.Protein == "" {
		return errors.New("DNA-sequence or protein-sequence input must be provided.")
	}
	return nil
}

// AnnotateSequences runs amrfinder on loose feature sequences. The
// annotation report always appears in annotOut; the mutation report is
// only produced when an organism is given, hit gene sequences only for
// DNA input, hit protein sequences only for protein input. Directories
// for outputs that cannot be produced receive an empty placeholder
// report so the artifact stays well formed.
func AnnotateSequences(in SequenceInput, db, annotOut, mutOut, genesOut, proteinsOut string, opts Options) error {
	if err := in.validate(); err != nil {
		return err
	}

	for _, d := range []string{annotOut, mutOut, genesOut, proteinsOut} {
		if d == "" {
			continue
		}
		if err := os.MkdirAll(d, 0755); err != nil {
			return err
		}
	}

	args := []string{"--database", db, "-o", filepath.Join(annotOut, AnnotationsFile), "--print_node"}
	if in.DNA != "" {
		args = append(args, "-n", in.DNA)
		if genesOut != "" {
			args = append(args, "--nucleotide_output", filepath.Join(genesOut, GenesFile))
		}
	}
	if in.Protein != "" {
		args = append(args, "-p", in.Protein)
		if proteinsOut != "" {
			args = append(args, "--protein_output", filepath.Join(proteinsOut, ProteinsFile))
		}
	}
	if in.GFF != "" {
		args = append(args, "-g", in.GFF)
	}
	if opts.Organism != "" && mutOut != "" {
		args = append(args, "--mutation_all", filepath.Join(mutOut, MutationsFile))
	}
	args = append(args, opts.args()...)

	if err := runCommand(annotOut, "amrfinder", args...); err != nil {
		return err
	}

	if opts.Organism == "" && mutOut != "" {
		amr.Warn.Println("no organism given, mutation report will be empty")
	}
	return nil
}
