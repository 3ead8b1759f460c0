package template

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"
)

// multiFS implements fs.FS over an ordered set of filesystems.
type multiFS struct {
	// A cache for minimizing ascertaining which filesystem holds the template.
	cache map[string]fs.FS

	fss []fs.FS

	sync.Mutex
}

func newMultiFS(fss ...fs.FS) *multiFS {
	return &multiFS{cache: make(map[string]fs.FS), fss: fss}
}

// Open opens the file matching the name from the first filesystem holding it.
//
// Whenever a file is found and is not present in the cache, it is added.
// Nothing removes references from the cache.
//
// If a file is removed from a filesystem during runtime,
// then a reference to it from the cache returns the same error (fs.ErrNotExist)
// as if the cache did not have that reference.
func (mfs *multiFS) Open(name string) (fs.File, error) {
	mfs.Lock()
	fsys, ok := mfs.cache[name]
	mfs.Unlock()
	if ok {
		return fsys.Open(name)
	}

	for _, fsys := range mfs.fss {
		file, err := fsys.Open(name)
		if err == nil {
			mfs.Lock()
			mfs.cache[name] = fsys
			mfs.Unlock()

			return file, nil
		}

		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			continue
		}

		return nil, fmt.Errorf("unable to open template: %w", err)
	}

	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}
