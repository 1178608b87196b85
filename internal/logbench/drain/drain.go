package drain

import (
	"errors"
	"io"
	"os"
	"sync"

	"github.com/shandysiswandi/logbench/internal/logbench/entity"
	"github.com/shandysiswandi/logbench/internal/pkg/pkgerror"
)

// DefaultBufferSize is the read size used when none is configured.
const DefaultBufferSize = 32 * 1024

// Drainer reads files to end of input and throws the bytes away.
// It is safe for concurrent use; each call borrows its own buffer.
type Drainer struct {
	bufSize int
	bufs    sync.Pool
}

// New returns a Drainer reading bufSize bytes at a time.
func New(bufSize int) *Drainer {
	if bufSize < 1 {
		bufSize = DefaultBufferSize
	}

	d := &Drainer{bufSize: bufSize}
	d.bufs.New = func() any {
		b := make([]byte, d.bufSize)
		return &b
	}

	return d
}

// BufferSize returns the configured read size.
func (d *Drainer) BufferSize() int {
	return d.bufSize
}

// Drain opens ref, reads it until EOF and closes it on every path. It returns
// the number of bytes read.
func (d *Drainer) Drain(ref entity.FileRef) (n int64, err error) {
	f, err := os.Open(ref.Path)
	if err != nil {
		return 0, pkgerror.NewIO(err, ref.Path, pkgerror.CodeFileOpen)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = pkgerror.NewIO(cerr, ref.Path, pkgerror.CodeFileRead)
		}
	}()

	bp := d.bufs.Get().(*[]byte)
	defer d.bufs.Put(bp)
	buf := *bp

	for {
		m, rerr := f.Read(buf)
		n += int64(m)
		if errors.Is(rerr, io.EOF) {
			return n, nil
		}
		if rerr != nil {
			return n, pkgerror.NewIO(rerr, ref.Path, pkgerror.CodeFileRead)
		}
	}
}
