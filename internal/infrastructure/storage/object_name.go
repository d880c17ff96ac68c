package storage

import (
	"fmt"
	"strings"
	"time"
)

const (
	FolderAvatars = "avatars"
	FolderItems   = "items"
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

func IsImage(contentType string) bool {
	_, ok := imageExtensions[strings.ToLower(contentType)]
	return ok
}

// ObjectName builds "<folder>/<id>-<timestamp><ext>".
func ObjectName(folder, contentType, id string, at time.Time) string {
	ext, ok := imageExtensions[strings.ToLower(contentType)]
	if !ok {
		ext = ".bin"
	}
	folder = strings.Trim(folder, "/")
	return fmt.Sprintf("%s/%s-%s%s", folder, id, at.UTC().Format("20060102150405"), ext)
}
