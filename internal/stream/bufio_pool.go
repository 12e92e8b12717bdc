package stream

import (
	"bufio"
	"io"
	"sync"
)

// DefaultBufioReaderPool is shared by server connections.
var DefaultBufioReaderPool BufioReaderPool

// BufioReaderPool recycles bufio.Readers between connections.
type BufioReaderPool struct {
	pool    sync.Pool
	MaxSize int
}

func (rdp *BufioReaderPool) Get(reader io.Reader) *bufio.Reader {
	if rd := rdp.pool.Get(); rd != nil {
		br := rd.(*bufio.Reader)
		br.Reset(reader)
		return br
	}
	if rdp.MaxSize > 0 {
		return bufio.NewReaderSize(reader, rdp.MaxSize)
	}
	return bufio.NewReader(reader)
}

func (rdp *BufioReaderPool) Put(reader *bufio.Reader) {
	reader.Reset(nil)
	rdp.pool.Put(reader)
}
