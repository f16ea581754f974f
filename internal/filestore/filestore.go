// Package filestore manages the durable, app-private directory that note
// cover images are cached into.
package filestore

import "context"

// FileStore caches externally supplied image files into a durable directory
// so notes keep working after the original file goes away.
type FileStore interface {
	// CacheImage returns a durable path for uri.
	//
	// An empty uri yields an empty result. A path already inside the store's
	// directory is returned unchanged without copying. Anything else is
	// copied in under its original filename. If the copy fails the original
	// uri is returned as-is: a possibly fragile external reference beats
	// losing the image.
	CacheImage(ctx context.Context, uri string) string

	// Dir returns the durable directory path.
	Dir() string
}
