package card

import (
	"archive/tar"
	"compress/bzip2"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Default CARD download locations.
var (
	DataURL     = "https://card.mcmaster.ca/latest/data"
	VariantsURL = "https://card.mcmaster.ca/latest/variants"
)

// LoadDB loads card.json into RGI's local database directory, which is
// the scratch directory the subsequent rgi invocations run in.
func LoadDB(dir, cardDB string) error {
	return runCommand(dir, "rgi",
		"load", "--card_json", filepath.Join(cardDB, CardJSON), "--local")
}

// LoadDBFasta loads the database together with its annotation fastas,
// as rgi bwt requires. With other models included the "_all" fastas are
// loaded instead; with wildcard the in silico predicted variants are
// loaded on top.
func LoadDBFasta(dir, cardDB string, includeWildcard, includeOtherModels bool) error {
	cardFasta, err := findFasta(cardDB, "card_database_v*", includeOtherModels)
	if err != nil {
		return err
	}
	args := []string{
		"load",
		"-i", filepath.Join(cardDB, CardJSON),
		"--card_annotation", cardFasta,
		"--local",
	}
	if includeWildcard {
		wildcardFasta, err := findFasta(cardDB, "wildcard_database_v*", includeOtherModels)
		if err != nil {
			return err
		}
		args = append(args,
			"--wildcard_annotation", wildcardFasta,
			"--wildcard_index", filepath.Join(cardDB, IndexFile),
		)
	}
	return runCommand(dir, "rgi", args...)
}

// LoadKmerDB loads the k-mer classifier database on top of card.json.
func LoadKmerDB(dir, cardDB, kmerDB string, kmerSize int) error {
	return runCommand(dir, "rgi",
		"load",
		"--card_json", filepath.Join(cardDB, CardJSON),
		"--kmer_database", filepath.Join(kmerDB, KmerJSON),
		"--amr_kmers", filepath.Join(kmerDB, KmerTXT),
		"--kmer_size", strconv.Itoa(kmerSize),
		"--local",
	)
}

// The annotation fastas carry the database version in their name, so
// they are discovered by glob rather than by parsing card.json.
func findFasta(cardDB, prefix string, all bool) (string, error) {
	matches, err := filepath.Glob(filepath.Join(cardDB, prefix+".fasta"))
	if err != nil {
		return "", err
	}
	var hits []string
	for _, m := range matches {
		isAll := strings.HasSuffix(m, "_all.fasta")
		if isAll == all {
			hits = append(hits, m)
		}
	}
	if len(hits) == 0 {
		return "", fmt.Errorf("no %s fasta in %s, run fetchcard first", prefix, cardDB)
	}
	if len(hits) > 1 {
		return "", fmt.Errorf("more than one %s fasta in %s", prefix, cardDB)
	}
	return hits[0], nil
}

// FetchDB downloads and extracts the CARD archive into outDir, then
// generates the annotation fastas with rgi card_annotation.
func FetchDB(url, outDir string) error {
	if url == "" {
		url = DataURL
	}
	if err := downloadTarBz2(url, outDir); err != nil {
		return err
	}
	return runCommand(outDir, "rgi",
		"card_annotation", "--input", filepath.Join(outDir, CardJSON))
}

// FetchKmerDB downloads and extracts the WildCARD variants archive,
// which carries the k-mer classifier files.
func FetchKmerDB(url, outDir string) error {
	if url == "" {
		url = VariantsURL
	}
	return downloadTarBz2(url, outDir)
}

func downloadTarBz2(url, outDir string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download %s: %s", url, resp.Status)
	}

	tr := tar.NewReader(bzip2.NewReader(resp.Body))
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		name := filepath.Clean(hdr.Name)
		if name == ".." || strings.HasPrefix(name, ".."+string(os.PathSeparator)) || filepath.IsAbs(name) {
			return fmt.Errorf("archive entry %q escapes %s", hdr.Name, outDir)
		}
		target := filepath.Join(outDir, name)
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return err
		}
		w, err := os.Create(target)
		if err != nil {
			return err
		}
		if _, err := io.Copy(w, tr); err != nil {
			w.Close()
			return err
		}
		if err := w.Close(); err != nil {
			return err
		}
	}
	return nil
}
