package cursor

// Writer is a position-tracking view over a destination byte slice. It
// never grows the slice; writes past the end fail.
type Writer struct {
	buf []byte
	pos int
	ctx Endian
}

// NewWriter creates a Writer over buf starting at position 0.
func NewWriter(buf []byte, ctx Endian) *Writer {
	return &Writer{buf: buf, ctx: ctx}
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return w.pos
}

// Bytes returns the written prefix of the buffer.
func (w *Writer) Bytes() []byte {
	return w.buf[:w.pos]
}

func (w *Writer) Bool(v bool) error       { return Write(w.buf, &w.pos, v, w.ctx) }
func (w *Writer) Uint8(v uint8) error     { return Write(w.buf, &w.pos, v, w.ctx) }
func (w *Writer) Int8(v int8) error       { return Write(w.buf, &w.pos, v, w.ctx) }
func (w *Writer) Uint16(v uint16) error   { return Write(w.buf, &w.pos, v, w.ctx) }
func (w *Writer) Int16(v int16) error     { return Write(w.buf, &w.pos, v, w.ctx) }
func (w *Writer) Uint32(v uint32) error   { return Write(w.buf, &w.pos, v, w.ctx) }
func (w *Writer) Int32(v int32) error     { return Write(w.buf, &w.pos, v, w.ctx) }
func (w *Writer) Uint64(v uint64) error   { return Write(w.buf, &w.pos, v, w.ctx) }
func (w *Writer) Int64(v int64) error     { return Write(w.buf, &w.pos, v, w.ctx) }
func (w *Writer) Float32(v float32) error { return Write(w.buf, &w.pos, v, w.ctx) }
func (w *Writer) Float64(v float64) error { return Write(w.buf, &w.pos, v, w.ctx) }

// Encode encodes e at the current position.
func (w *Writer) Encode(e Encoder) error {
	return WriteValue(w.buf, &w.pos, e, w.ctx)
}
