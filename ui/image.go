package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Image is the header asset held in memory for the life of the process.
type Image struct {
	Data        []byte
	ContentType string
}

// LoadImage reads the header image at path. A missing file or a file that
// does not sniff as an image is an error.
func LoadImage(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read header image: %w", err)
	}
	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, fmt.Errorf("header image %s is %s, not an image", path, mtype.String())
	}
	return &Image{Data: data, ContentType: mtype.String()}, nil
}
