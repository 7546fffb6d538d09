package blog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrContentDirRequired indicates the service was constructed without a content directory.
	ErrContentDirRequired = errors.New("blog: content directory is required")
	// ErrPostNotFound is the absence value for single-slug lookups. Callers
	// render a not-found page; they must not treat it as a crash.
	ErrPostNotFound = errors.New("blog: post not found")
	// ErrDuplicateSlug indicates two source files normalized to the same slug.
	ErrDuplicateSlug = errors.New("blog: duplicate slug")
)

// DuplicateSlugError reports the colliding source files behind a slug.
// Listing fails loudly on collisions so routing never silently picks one of
// two records claiming the same slug.
type DuplicateSlugError struct {
	Slug  string
	Files []string
}

func (e *DuplicateSlugError) Error() string {
	if e == nil {
		return ErrDuplicateSlug.Error()
	}
	if len(e.Files) > 0 {
		return fmt.Sprintf("%s: slug=%s files=%s", ErrDuplicateSlug.Error(), e.Slug, strings.Join(e.Files, ","))
	}
	return fmt.Sprintf("%s: slug=%s", ErrDuplicateSlug.Error(), e.Slug)
}

func (e *DuplicateSlugError) Unwrap() error {
	return ErrDuplicateSlug
}

// StorageError wraps a failure to read the backing content store. It
// propagates out of bulk listing operations so a broken content directory
// fails the build instead of rendering an empty blog.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	if e == nil {
		return "blog: storage error"
	}
	return fmt.Sprintf("blog: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
