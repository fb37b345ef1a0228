package regfile

import "errors"

// ErrUnsupportedEncoding indicates an output encoding other than UTF-8 or
// UTF-16LE.
var ErrUnsupportedEncoding = errors.New("regfile: unsupported output encoding")
