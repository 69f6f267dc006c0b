package scan

import (
	"context"
	"fmt"

	"github.com/fenilsonani/diskscout/pkg/sizefmt"
)

// scanDuplicates flags same-size groups as duplicate candidates. Files
// are grouped by exact byte size during a single walk; any non-empty
// size shared by two or more files contributes every member except the
// first encountered. The reason carries the full group count, kept
// member included.
//
// Which member is withheld depends on walk order. WalkDir visits
// entries lexically within a directory, so the designation is stable
// for a given tree, but callers must not rely on it across trees or
// filesystems. Zero-byte files never form candidate groups.
func scanDuplicates(ctx context.Context, root string) ([]Finding, int64, error) {
	groups := make(map[int64][]string)
	var order []int64 // sizes in first-seen order

	err := walk(ctx, root, func(rec FileRecord) {
		if _, seen := groups[rec.Size]; !seen {
			order = append(order, rec.Size)
		}
		groups[rec.Size] = append(groups[rec.Size], rec.Path)
	})
	if err != nil {
		return nil, 0, err
	}

	var findings []Finding
	var total int64

	for _, size := range order {
		paths := groups[size]
		if size == 0 || len(paths) < 2 {
			continue
		}

		reason := fmt.Sprintf("Potential duplicate (%d files with same size)", len(paths))
		for _, path := range paths[1:] { // keep first, flag the rest
			findings = append(findings, Finding{
				Path:   path,
				SizeMB: sizefmt.ToMB(size),
				Reason: reason,
			})
			total += size
		}
	}

	return findings, total, nil
}
