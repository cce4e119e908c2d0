package imagepkg

import (
	"bytes"
	"fmt"
	"image"

	"github.com/bwmarrin/snowflake"
	"github.com/disintegration/imaging"
)

// EncodeQuality is the JPEG quality for generated images; 90 keeps text
// edges clean at roughly a third of the PNG size.
const EncodeQuality = 90

// FileExt is the extension of generated files.
const FileExt = ".jpg"

// FilenamePrefix starts every generated filename.
const FilenamePrefix = "featured-image-"

// Encode serializes img as JPEG at EncodeQuality.
func Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(EncodeQuality)); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// NewFilename returns featured-image-<id>.jpg. Snowflake ids are unique and
// time ordered per node.
func NewFilename(node *snowflake.Node) string {
	return FilenamePrefix + node.Generate().String() + FileExt
}
