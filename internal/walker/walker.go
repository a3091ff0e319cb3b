package walker

import (
	"os"
	"path/filepath"
	"sort"
)

// Options configures file collection.
type Options struct {
	Recursive      bool
	RespectIgnores bool // honor .gitignore files during recursive descent
}

// Collect resolves the given path arguments into an ordered list of
// regular-file paths, sorted lexicographically by path string.
//
// A path that is a regular file is included directly. A directory is
// fully descended when Recursive is set and silently skipped otherwise.
// Traversal errors (unreadable subdirectories, entries that vanish
// mid-walk) are filtered out and returned separately; the walk itself
// never fails. Symlinks are not followed.
func Collect(paths []string, opts Options) ([]string, []error) {
	var files []string
	var errs []error
	var stack *ignoreStack
	if opts.RespectIgnores {
		stack = newIgnoreStack()
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			errs = append(errs, &WalkError{Path: p, Err: err})
			continue
		}
		if info.Mode().IsRegular() {
			files = append(files, p)
			continue
		}
		if info.IsDir() && opts.Recursive {
			files, errs = walkDir(p, stack, files, errs)
		}
	}

	sort.Strings(files)
	return files, errs
}

// walkDir descends into dir, appending every regular file to files.
// Entries are visited in the sorted order os.ReadDir provides; the
// final Collect result is re-sorted across all roots anyway.
func walkDir(dir string, stack *ignoreStack, files []string, errs []error) ([]string, []error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		errs = append(errs, &WalkError{Path: dir, Err: err})
		return files, errs
	}

	if stack != nil {
		stack.push(dir)
		defer stack.pop()
	}

	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			if stack != nil && stack.isIgnored(full, true) {
				continue
			}
			files, errs = walkDir(full, stack, files, errs)
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}
		if stack != nil && stack.isIgnored(full, false) {
			continue
		}
		files = append(files, full)
	}
	return files, errs
}

// WalkError represents an error during directory traversal.
type WalkError struct {
	Path string
	Err  error
}

func (e *WalkError) Error() string {
	return "walk " + e.Path + ": " + e.Err.Error()
}

func (e *WalkError) Unwrap() error {
	return e.Err
}
