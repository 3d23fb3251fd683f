package core

import (
	"fmt"
	"path"
	"strings"
)

func NormalizePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if p != "/" && strings.HasSuffix(p, "/") {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

// ValidateAssetPath checks a request path before it is mapped onto the
// static directory.
func ValidateAssetPath(p string) error {
	if p == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("path must start with /")
	}

	if strings.Contains(p, "..") {
		return fmt.Errorf("path cannot contain parent directory references")
	}

	if strings.ContainsRune(p, 0) {
		return fmt.Errorf("path cannot contain NUL bytes")
	}

	return nil
}

// AssetRelPath maps a validated request path to a slash path relative to
// the static directory.
func AssetRelPath(p string) string {
	return strings.TrimPrefix(path.Clean(NormalizePath(p)), "/")
}
