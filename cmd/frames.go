package cmd

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// framePair is one frame's detector document matched with its
// classifier document.
type framePair struct {
	Stem            string
	Detections      string
	Classifications string
}

func stemOf(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// framePairs matches same-stem JSON documents across the detection
// and classification directories, sorted by stem. Unpaired files are
// skipped.
func framePairs(detectionsDir, classificationsDir string) ([]framePair, error) {
	detFiles, err := filepath.Glob(filepath.Join(detectionsDir, "*.json"))
	if err != nil {
		return nil, err
	}
	clsFiles, err := filepath.Glob(filepath.Join(classificationsDir, "*.json"))
	if err != nil {
		return nil, err
	}

	clsByStem := lo.KeyBy(clsFiles, stemOf)

	pairs := make([]framePair, 0, len(detFiles))
	for _, det := range detFiles {
		stem := stemOf(det)
		cls, ok := clsByStem[stem]
		if !ok {
			continue
		}
		pairs = append(pairs, framePair{Stem: stem, Detections: det, Classifications: cls})
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Stem < pairs[j].Stem })
	return pairs, nil
}
