package service

import "context"

// ImageStorage stores an uploaded image and returns the public URL to
// persist on the owning record. Resizing and cloud backends live behind
// this interface and are not part of the core pipeline.
type ImageStorage interface {
	// Store writes the image bytes under the given file name and returns
	// the URL where it can be served.
	Store(ctx context.Context, fileName string, data []byte) (string, error)
}
