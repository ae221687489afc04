package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/sevenzip"
	"github.com/pkg/errors"
)

// LoadFile loads the given file and performs decompression if necessary. ROM
// images may be stored raw (.gb, .gbc, .bin) or wrapped in a gzip, zip or 7z
// archive, in which case the first file in the archive is returned.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", filename)
	}

	var decoder io.Reader
	switch filepath.Ext(filename) {
	case ".gz":
		decoder, err = gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, errors.Wrapf(err, "opening gzip %s", filename)
		}
	case ".zip":
		zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, errors.Wrapf(err, "opening zip %s", filename)
		}
		if len(zipReader.File) == 0 {
			return nil, errors.Errorf("empty zip archive %s", filename)
		}
		decoder, err = zipReader.File[0].Open()
		if err != nil {
			return nil, errors.Wrapf(err, "opening zip entry in %s", filename)
		}
	case ".7z":
		r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, errors.Wrapf(err, "opening 7z %s", filename)
		}
		if len(r.File) == 0 {
			return nil, errors.Errorf("empty 7z archive %s", filename)
		}
		decoder, err = r.File[0].Open()
		if err != nil {
			return nil, errors.Wrapf(err, "opening 7z entry in %s", filename)
		}
	default:
		// raw image
		return data, nil
	}

	data, err = io.ReadAll(decoder)
	if err != nil {
		return nil, errors.Wrapf(err, "decompressing %s", filename)
	}
	return data, nil
}
