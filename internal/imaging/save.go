package imaging

import (
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/pkg/errors"
)

// jpegQuality is used for .jpg/.jpeg outputs.
const jpegQuality = 95

// Save writes an image to disk, choosing the encoder from the file extension.
//
// Supported extensions are .png, .jpg, .jpeg and .bmp (case-insensitive).
// The parent directory is created if it does not exist.
func Save(path string, img image.Image) error {
	encoder, err := encoderFor(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "failed to create directory for %s", path)
		}
	}

	if err := imgio.Save(path, img, encoder); err != nil {
		return errors.Wrapf(err, "failed to save image %s", path)
	}
	return nil
}

func encoderFor(path string) (imgio.Encoder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return imgio.PNGEncoder(), nil
	case ".jpg", ".jpeg":
		return imgio.JPEGEncoder(jpegQuality), nil
	case ".bmp":
		return imgio.BMPEncoder(), nil
	default:
		return nil, errors.Errorf("unsupported output format for %s", path)
	}
}
