package telnet

import (
	"bytes"
	"compress/zlib"
	"errors"
	"io"
)

// compressor drives the outbound half of MCCP2: once active, every byte
// handed to sendRaw is deflated instead of sent verbatim. Because we
// always control the input end of deflate, there is no pull-vs-push
// mismatch here — Write followed by Flush (Z_SYNC_FLUSH) behaves exactly
// like libtelnet.c's _send() deflate loop.
type compressor struct {
	w   *zlib.Writer
	buf bytes.Buffer
}

func newCompressor() *compressor {
	c := &compressor{}
	c.w = zlib.NewWriter(&c.buf)
	return c
}

// deflate compresses data and returns the bytes ready to go on the wire.
func (c *compressor) deflate(data []byte) ([]byte, error) {
	if _, err := c.w.Write(data); err != nil {
		return nil, err
	}
	if err := c.w.Flush(); err != nil {
		return nil, err
	}
	out := append([]byte(nil), c.buf.Bytes()...)
	c.buf.Reset()
	return out, nil
}

// decompressor drives the inbound half of MCCP2. Go's compress/flate is
// a pull-based io.Reader: once it returns an error it is permanently
// dead, and there is no API to "feed it more bytes and try again"
// without blocking on a goroutine or io.Pipe — which would introduce
// exactly the hidden concurrency this codec forbids. Instead we keep
// every compressed byte received since activation and, on each Receive,
// replay the whole history through a fresh zlib.Reader: flate decoding
// is deterministic, so replaying a longer prefix of the same stream
// always reproduces the same output prefix plus whatever new bytes the
// extra input now makes decodable. emitted tracks how much of that
// output has already been handed to the decoder so it is never
// processed twice. This trades CPU (re-decoding from the start every
// call) for staying synchronous and allocation-bounded in the number of
// distinct buffers held, which is the tradeoff the spec calls for.
type decompressor struct {
	raw     []byte
	emitted int
}

// feed appends newly received compressed bytes and returns any newly
// available decompressed bytes. A nil, nil result means the stream is
// merely incomplete so far (wait for more input); a non-nil error means
// a genuine decode failure, at which point compression must be torn
// down.
func (d *decompressor) feed(data []byte) ([]byte, error) {
	d.raw = append(d.raw, data...)

	r, rerr := zlib.NewReader(bytes.NewReader(d.raw))
	if rerr != nil {
		if isIncomplete(rerr) {
			return nil, nil
		}
		return nil, rerr
	}
	defer r.Close()

	decoded, rerr := io.ReadAll(r)
	if rerr != nil && !isIncomplete(rerr) {
		return nil, rerr
	}

	if d.emitted > len(decoded) {
		// Can't happen in correct use, but guard against it rather than
		// panic on a negative slice bound.
		d.emitted = len(decoded)
	}
	fresh := decoded[d.emitted:]
	d.emitted = len(decoded)
	return fresh, nil
}

func isIncomplete(err error) bool {
	return errors.Is(err, io.ErrUnexpectedEOF)
}
