package card

// BAM file operations.

import (
	"fmt"
	"io"
	"os"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
)

// MappingStats summarizes read placement in the sorted BAM rgi bwt
// leaves next to its mapping data.
type MappingStats struct {
	Total    int
	Mapped   int
	Unmapped int
}

// ReadBAMStats reads a BAM file and counts mapped and unmapped records.
func ReadBAMStats(path string) (MappingStats, error) {
	var stats MappingStats

	f, err := os.Open(path)
	if err != nil {
		return stats, err
	}
	defer f.Close()

	reader, err := bam.NewReader(f, 0)
	if err != nil {
		return stats, err
	}
	defer reader.Close()

	for {
		r, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, err
		}
		stats.Total++
		if r.Flags&sam.Unmapped == 0 {
			stats.Mapped++
		} else {
			stats.Unmapped++
		}
	}
	return stats, nil
}

// WriteTSV saves the stats as a one-row tab-separated file.
func (st MappingStats) WriteTSV(path string) error {
	w, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "total\tmapped\tunmapped\n%d\t%d\t%d\n", st.Total, st.Mapped, st.Unmapped); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
