package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"
)

// ObjectStore is the blob store uploaded audio is written to.
type ObjectStore interface {
	// Put refuses a key that is already stored with apperrors.ErrObjectExists.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	PublicURL(key string) string
	Delete(ctx context.Context, key string) error
}

// ObjectKey returns the per-user object key "<userID>/<filename>". Directory
// components of filename are dropped so a key can never escape the user prefix.
func ObjectKey(userID, filename string) string {
	name := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" || name == ".." {
		name = "upload"
	}
	return strings.ReplaceAll(userID, "/", "_") + "/" + name
}
