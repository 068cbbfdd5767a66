package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// LoadError reports a frame that could not be opened or decoded.
//
// The message matches what downstream consumers of the JSON payload expect,
// while Unwrap exposes the underlying I/O or decode failure.
type LoadError struct {
	// Path is the path exactly as it was requested.
	Path string

	// Err is the open or decode error.
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("Could not read image at %s", e.Path)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads and decodes a frame from disk.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Supported formats are
//     PNG, JPEG, GIF, BMP, TIFF and WebP.
//
// Returns:
//   - image.Image: The decoded frame. The concrete type depends on the format
//     and color model (e.g., *image.RGBA, *image.NRGBA, *image.YCbCr).
//   - string: The format name reported by the decoder ("png", "jpeg", ...).
//   - error: A *LoadError if the file cannot be opened or decoded.
func Load(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", &LoadError{Path: path, Err: err}
	}

	return img, format, nil
}

// FrameInfo contains metadata about a loaded frame.
type FrameInfo struct {
	// Path is the file the frame was read from.
	Path string `json:"path"`

	// Width is the frame width in pixels.
	Width int `json:"width"`

	// Height is the frame height in pixels.
	Height int `json:"height"`

	// Format is the decoder name: "png", "jpeg", "gif", "bmp", "tiff" or "webp".
	Format string `json:"format"`

	// FileSizeBytes is the size of the frame file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// Describe returns metadata about a frame that has already been decoded.
//
// A failed stat leaves FileSizeBytes at zero rather than failing, since the
// frame itself is already in memory.
func Describe(path string, img image.Image, format string) FrameInfo {
	bounds := img.Bounds()
	info := FrameInfo{
		Path:   path,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: format,
	}
	if stat, err := os.Stat(path); err == nil {
		info.FileSizeBytes = stat.Size()
	}
	return info
}
