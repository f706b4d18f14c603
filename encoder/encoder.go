package encoder

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"webpconv/logger"
)

// DecodeFunc is the function signature for any registered decoder.
type DecodeFunc func(r io.Reader) (image.Image, error)

// Registry maps a lowercase extension (no dot) to its decoder.
var Registry = map[string]DecodeFunc{}

// Register adds a decoder for an extension, replacing any previous one.
func Register(ext string, fn DecodeFunc) {
	Registry[strings.ToLower(ext)] = fn
	logger.Debugf("decoder [%s] registered", ext)
}

// Get looks up the decoder for an extension.
func Get(ext string) (DecodeFunc, bool) {
	fn, ok := Registry[strings.ToLower(ext)]
	return fn, ok
}

// RegisterDefaults wires the decoders for every supported input format.
func RegisterDefaults() {
	Register("png", png.Decode)
	Register("jpg", jpeg.Decode)
	Register("jpeg", jpeg.Decode)
	Register("bmp", bmp.Decode)
}

// DecodeFile reads and decodes one source image, picking the decoder by
// file extension (case-insensitive).
func DecodeFile(path string) (image.Image, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	dec, ok := Get(ext)
	if !ok {
		return nil, fmt.Errorf("no decoder for extension %q", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	img, err := dec(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}
