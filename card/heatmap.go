package card

import (
	"fmt"
	"os"
	"path/filepath"

	amr "github.com/VinzentRisch/q2-amr"
)

// HeatmapOptions mirror rgi heatmap's category, clustering and display
// switches.
type HeatmapOptions struct {
	Category  string // drug_class, resistance_mechanism or gene_family
	Cluster   string // samples, genes or both
	Display   string // plain, fill or text
	Frequency bool
}

// Heatmap collects the json reports of AnnotateMAGs into one directory
// and renders rgi's resistance-profile heatmap into
// outDir/{heatmap.png,heatmap.csv}.
func Heatmap(annotations, outDir string, opts HeatmapOptions) error {
	tmp, err := os.MkdirTemp("", "card-heatmap")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmp)

	jsonDir := filepath.Join(tmp, "json")
	if err := os.MkdirAll(jsonDir, 0755); err != nil {
		return err
	}

	samples, err := amr.SampleDirs(annotations)
	if err != nil {
		return err
	}
	n := 0
	for _, sample := range samples {
		bins, err := amr.SampleDirs(filepath.Join(annotations, sample))
		if err != nil {
			return err
		}
		for _, bin := range bins {
			src := filepath.Join(annotations, sample, bin, AnnotationJSON)
			if _, err := os.Stat(src); os.IsNotExist(err) {
				continue
			}
			if err := amr.CopyFile(filepath.Join(jsonDir, sample+"_"+bin+".json"), src); err != nil {
				return err
			}
			n++
		}
	}
	if n == 0 {
		return fmt.Errorf("no %s files under %s", AnnotationJSON, annotations)
	}

	args := []string{
		"heatmap",
		"--input", jsonDir,
		"--output", filepath.Join(tmp, "heatmap"),
	}
	if opts.Category != "" {
		args = append(args, "--category", opts.Category)
	}
	if opts.Cluster != "" {
		args = append(args, "--cluster", opts.Cluster)
	}
	if opts.Display != "" {
		args = append(args, "--display", opts.Display)
	}
	if opts.Frequency {
		args = append(args, "--frequency")
	}
	if err := runCommand(tmp, "rgi", args...); err != nil {
		return err
	}

	// rgi appends the sample count to the output name.
	if err := moveGlob(filepath.Join(tmp, "heatmap-*.png"), filepath.Join(outDir, "heatmap.png")); err != nil {
		return err
	}
	if err := moveGlob(filepath.Join(tmp, "heatmap-*.csv"), filepath.Join(outDir, "heatmap.csv")); err != nil {
		amr.Warn.Printf("rgi heatmap produced no csv: %v\n", err)
	}
	return nil
}

func moveGlob(pattern, dst string) error {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		return fmt.Errorf("no file matching %s", pattern)
	}
	return amr.MoveFile(dst, matches[0])
}
