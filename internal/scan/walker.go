package scan

import (
	"context"
	"io/fs"
	"path/filepath"
)

// walk enumerates every regular file under root exactly once, in
// lexical per-directory order, and hands each record to fn. Entries
// whose metadata cannot be read are skipped; a single unreadable file
// never aborts the walk. Symlinked directories are not descended into,
// which also rules out traversal cycles.
//
// The context is checked between entries so callers can bound latency
// on very large trees.
func walk(ctx context.Context, root string, fn func(FileRecord)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Permission denied or other errors - skip and continue
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}

		fn(FileRecord{
			Path:    rel,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})

		return nil
	})
}
