package docxgen

import (
	"fmt"
	"io"

	"github.com/alnah/go-docxgen/internal/fileutil"
)

// WriteTo serializes the document as a .docx archive to w.
// Two calls without an intervening mutation produce identical bytes.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := d.pack().WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("%w: %w", ErrWriteDocument, err)
	}
	return n, nil
}

// Save writes the document to path, overwriting any existing file. The
// archive is streamed to a temporary file next to path and renamed over it,
// so a failed save leaves a previous file intact. OS errors stay reachable
// through errors.Is, for example errors.Is(err, os.ErrPermission).
func (d *Document) Save(path string) error {
	err := fileutil.WriteFile(path, func(w io.Writer) error {
		_, err := d.pack().WriteTo(w)
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteDocument, err)
	}
	return nil
}
