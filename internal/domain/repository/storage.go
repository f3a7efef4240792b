package repository

import "context"

// AssetKind identifies the remote storage resource type of an asset.
// It is recoverable from a locator's path structure.
type AssetKind string

const (
	AssetVideo AssetKind = "video"
	AssetImage AssetKind = "image"
)

func (k AssetKind) IsValid() bool {
	return k == AssetVideo || k == AssetImage
}

func (k AssetKind) String() string {
	return string(k)
}

// UploadResult describes a stored asset. Duration is reported only for
// video assets and is zero for images.
type UploadResult struct {
	Locator  string
	Duration float64
}

// MediaStore defines the interface for the remote media storage service.
// Implementations should be provided by the infrastructure layer.
type MediaStore interface {
	// UploadFile stores a local scratch file as a remote object of the given
	// kind and returns its locator. The local file is removed on every exit
	// path, success or failure.
	UploadFile(ctx context.Context, localPath string, kind AssetKind) (*UploadResult, error)

	// DeleteByLocator removes the remote object a locator references. An
	// already-absent object is treated as success; deletion is idempotent.
	DeleteByLocator(ctx context.Context, locator string) error
}
