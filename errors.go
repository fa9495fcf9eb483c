package lsblk

import "fmt"

// ReadDirError reports a symlink index directory that exists but cannot be
// listed. A directory that simply does not exist is not an error; some
// systems never populate certain indexes.
type ReadDirError struct {
	Path string
	Err  error
}

func (e *ReadDirError) Error() string {
	return fmt.Sprintf("cannot read directory %s: %v", e.Path, e.Err)
}

func (e *ReadDirError) Unwrap() error { return e.Err }

// BadSymlinkError reports a symlink that could not be resolved to a
// canonical target: dangling, unreadable, or racing with device removal.
type BadSymlinkError struct {
	Path string
	Err  error
}

func (e *BadSymlinkError) Error() string {
	return fmt.Sprintf("cannot canonicalize broken symlink %s: %v", e.Path, e.Err)
}

func (e *BadSymlinkError) Unwrap() error { return e.Err }

// ReadFileError reports a mount table or sysfs metadata file that could not
// be opened or read.
type ReadFileError struct {
	Path string
	Err  error
}

func (e *ReadFileError) Error() string {
	return fmt.Sprintf("cannot read file %s: %v", e.Path, e.Err)
}

func (e *ReadFileError) Unwrap() error { return e.Err }
