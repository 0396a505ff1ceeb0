// Package manifest records the files involved in a conversion run together
// with their SHA-256 digests.
package manifest

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"example.com/navtext/internal/common"
)

type Item struct {
	Path   string `json:"path"`
	Role   string `json:"role"`
	Size   int64  `json:"size"`
	Sha256 string `json:"sha256"`
	Type   string `json:"type"`
}

type Manifest struct {
	CreatedAt time.Time `json:"createdAt"`
	ShaAlgo   string    `json:"shaAlgo"`
	Items     []Item    `json:"items"`
}

// Entry names a file and its role in the run (input, output, trigger, ...).
type Entry struct {
	Path string
	Role string
}

func Build(entries []Entry) (Manifest, error) {
	m := Manifest{CreatedAt: time.Now().UTC(), ShaAlgo: "sha256"}
	for _, e := range entries {
		if strings.TrimSpace(e.Path) == "" {
			continue
		}
		hex, sz, err := common.Sha256OfFile(e.Path)
		if err != nil {
			return m, err
		}
		typ := "other"
		switch {
		case hasExt(e.Path, ".nav", ".bin"):
			typ = "navframe"
		case hasExt(e.Path, ".csv", ".txt"):
			typ = "text"
		case hasExt(e.Path, ".json"):
			typ = "json"
		case hasExt(e.Path, ".pdf"):
			typ = "pdf"
		}
		m.Items = append(m.Items, Item{Path: e.Path, Role: e.Role, Size: sz, Sha256: hex, Type: typ})
	}
	return m, nil
}

func hasExt(path string, exts ...string) bool {
	lower := strings.ToLower(path)
	for _, e := range exts {
		if strings.HasSuffix(lower, e) {
			return true
		}
	}
	return false
}

func Save(m Manifest, out string) error {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(out, b, 0644)
}
