package pipeline

import (
	cp "github.com/otiai10/copy"
)

// Copier copies a single file with its permission bits and modification times,
// replacing whatever is at the destination.
type Copier struct {
	opts cp.Options
}

func NewCopier() *Copier {
	return &Copier{
		opts: cp.Options{
			PreserveTimes: true,
			OnSymlink: func(string) cp.SymlinkAction {
				return cp.Deep
			},
		},
	}
}

func (c *Copier) CopyFile(src, dst string) error {
	return cp.Copy(src, dst, c.opts)
}
