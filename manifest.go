package amr

import (
	"fmt"

	"github.com/liserjrqlxue/goUtil/textUtil"
)

// SampleReads is one row of a reads manifest: a sample id, a forward
// fastq and, for paired-end data, a reverse fastq.
type SampleReads struct {
	Sample string
	Fwd    string
	Rev    string
}

// ReadManifest parses a tab-separated manifest with sampleID, fq1 and
// optional fq2 columns.
func ReadManifest(path string) ([]SampleReads, error) {
	rows, _ := textUtil.File2MapArray(path, "\t", nil)

	seen := make(map[string]bool)
	var samples []SampleReads
	for _, item := range rows {
		id := item["sampleID"]
		if id == "" {
			return nil, fmt.Errorf("%s: row without sampleID", path)
		}
		if seen[id] {
			return nil, fmt.Errorf("%s: dup sampleID:%s", path, id)
		}
		seen[id] = true
		if item["fq1"] == "" {
			return nil, fmt.Errorf("%s: sample %s has no fq1", path, id)
		}
		samples = append(samples, SampleReads{
			Sample: id,
			Fwd:    item["fq1"],
			Rev:    item["fq2"],
		})
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("%s: empty manifest", path)
	}
	return samples, nil
}
