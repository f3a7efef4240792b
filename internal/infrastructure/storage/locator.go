package storage

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/cliptube/cliptube/internal/domain/repository"
)

var (
	// ErrInvalidLocator is returned when a locator cannot be resolved to a
	// storage identifier and asset kind.
	ErrInvalidLocator = errors.New("invalid asset locator")
)

// ParseLocator derives the bucket-relative object key and asset kind from a
// locator URL. Resolution is purely structural: the kind is the "video" or
// "image" path segment and the identifier is the final segment with its
// extension stripped. No out-of-band lookup is performed.
//
// Locator shape: {scheme}://{host}/{bucket}/{kind}/{id}.{ext}
func ParseLocator(locator string) (key string, kind repository.AssetKind, err error) {
	if locator == "" {
		return "", "", fmt.Errorf("%w: empty locator", ErrInvalidLocator)
	}

	u, err := url.Parse(locator)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidLocator, err)
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for _, seg := range segments {
		switch repository.AssetKind(seg) {
		case repository.AssetVideo:
			kind = repository.AssetVideo
		case repository.AssetImage:
			kind = repository.AssetImage
		}
	}
	if kind == "" {
		return "", "", fmt.Errorf("%w: no asset kind segment in %q", ErrInvalidLocator, u.Path)
	}

	filename := segments[len(segments)-1]
	id := strings.TrimSuffix(filename, path.Ext(filename))
	if id == "" {
		return "", "", fmt.Errorf("%w: no object identifier in %q", ErrInvalidLocator, u.Path)
	}

	return path.Join(kind.String(), id), kind, nil
}
