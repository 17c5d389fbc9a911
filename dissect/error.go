package dissect

import (
	"errors"
	"io"
	"io/fs"
)

var ErrMissingInput = errors.New("dissect: input file not found")
var ErrInvalidFolder = errors.New("dissect: not a fight history folder")
var ErrInvalidEncoding = errors.New("dissect: input is not base64")

// Ok returns true if err only pertains to EOF (read was successful).
func Ok(err error) bool {
	return err == nil || errors.Is(err, io.EOF)
}

// Missing returns true if err reports an input file that does not exist.
func Missing(err error) bool {
	return errors.Is(err, ErrMissingInput) || errors.Is(err, fs.ErrNotExist)
}
