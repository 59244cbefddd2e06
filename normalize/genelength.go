// Package normalize rescales gene frequency tables so that counts are
// comparable across samples and gene lengths.
package normalize

import (
	"fmt"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// GeneLengths reads a fasta file of gene sequences and returns the
// length of each record keyed by its identifier.
func GeneLengths(path string) (map[string]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lengths := make(map[string]float64)
	r := fasta.NewReader(f, linear.NewSeq("", nil, alphabet.DNA))
	sc := seqio.NewScanner(r)
	for sc.Next() {
		s := sc.Seq()
		id := s.Name()
		if _, found := lengths[id]; found {
			return nil, fmt.Errorf("duplicate sequence id %q in %s", id, path)
		}
		lengths[id] = float64(s.Len())
	}
	if err := sc.Error(); err != nil {
		return nil, err
	}
	return lengths, nil
}
