// internal/seqio/discover.go
package seqio

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// input suffixes, matched case-insensitively
var suffixes = []string{".fastq", ".fastq.gz", ".fasta", ".fasta.gz"}

func hasReadSuffix(name string) bool {
	lower := strings.ToLower(name)
	for _, s := range suffixes {
		if strings.HasSuffix(lower, s) {
			return true
		}
	}
	return false
}

// FindInputFiles resolves an input path to the sorted list of read files to
// process. A plain file is returned as-is; a directory is searched
// recursively for FASTQ/FASTA files (optionally gzipped). A missing path or
// an empty search is an error.
func FindInputFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("could not find %s", path)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && hasReadSuffix(d.Name()) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("searching %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("could not find FASTQ/FASTA files in %s", path)
	}
	sort.Strings(files)
	return files, nil
}
