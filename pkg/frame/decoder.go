package frame

import "io"

// Decoder reads frames of one layout from a byte stream.
type Decoder struct {
	Layout *Layout

	r   io.Reader
	buf []byte
}

// NewDecoder creates a Decoder reading from r.
func NewDecoder(r io.Reader, layout *Layout) *Decoder {
	return &Decoder{Layout: layout, r: r, buf: make([]byte, layout.Size)}
}

// Bytes returns the last frame read. It is overwritten by the next read.
func (d *Decoder) Bytes() []byte {
	return d.buf
}

// Sync reads exactly one byte and accepts it only if it is the header.
func (d *Decoder) Sync() error {
	n, err := d.r.Read(d.buf[:1])
	if n == 1 {
		if d.buf[0] != d.Layout.Header {
			return ErrNoHeader
		}
		return nil
	}
	if err != nil {
		return &ReadError{Err: err}
	}
	return ErrTimeout
}

// ReadBody reads the remaining bytes of a frame after a successful Sync.
func (d *Decoder) ReadBody() error {
	for got := 1; got < len(d.buf); {
		n, err := d.r.Read(d.buf[got:])
		got += n
		if got >= len(d.buf) {
			break
		}
		if err != nil {
			return &ReadError{Err: err}
		}
		if n == 0 {
			return ErrShortFrame
		}
	}
	return nil
}

// Decode validates and decodes the frame read by ReadBody.
func (d *Decoder) Decode() (Telemetry, error) {
	return d.Layout.Decode(d.buf)
}

// Next performs one synchronization step and, if it finds a header, reads
// and decodes a whole frame. ErrNoHeader means one byte was discarded.
func (d *Decoder) Next() (Telemetry, error) {
	if err := d.Sync(); err != nil {
		return Telemetry{}, err
	}
	if err := d.ReadBody(); err != nil {
		return Telemetry{}, err
	}
	return d.Decode()
}
