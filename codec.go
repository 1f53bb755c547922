package telnet

// state is the byte-level parser state, named and ordered after
// libtelnet.c's telnet_state_t.
type state int

const (
	stateData state = iota
	stateIAC
	stateWill
	stateWont
	stateDo
	stateDont
	stateSB
	stateSBData
	stateSBDataIAC
)

// Config configures a new Codec. Supports lists the options the local
// side is willing to WILL and/or DO; Proxy puts the Codec into pure
// pass-through negotiation mode (see the Proxy field below).
type Config struct {
	Supports []Support
	Handler  Handler

	// Proxy disables RFC 1143 bookkeeping for negotiation: every
	// WILL/WONT/DO/DONT byte is reported to the handler as-is and never
	// answered automatically. Mirrors libtelnet's TELNET_FLAG_PROXY, for
	// programs that relay negotiation between two peers rather than
	// participating in it.
	Proxy bool
}

// Codec is a synchronous TELNET protocol engine. It holds no socket, no
// goroutine, and no timer: all I/O happens through Handler callbacks
// invoked from inside Receive and the Send* methods. A Codec is not
// safe for concurrent use — exactly like libtelnet's telnet_t, it
// expects a single caller thread (or, in Go terms, a single goroutine)
// driving it at a time.
type Codec struct {
	handler Handler
	support supportTable
	queue   negotiationQueue
	proxy   bool

	st     state
	sb     subBuffer
	sbOpt  byte

	deflate *compressor   // non-nil once outbound compression is active
	inflate *decompressor // non-nil once inbound compression is active
}

// NewCodec creates a Codec ready to have bytes pushed into it via
// Receive. cfg.Handler must be non-nil; a Codec with no event sink can
// observe nothing and send nothing.
func NewCodec(cfg Config) *Codec {
	if cfg.Handler == nil {
		panic("telnet: Config.Handler must not be nil")
	}
	return &Codec{
		handler: cfg.Handler,
		support: newSupportTable(cfg.Supports),
		proxy:   cfg.Proxy,
	}
}

func (c *Codec) emit(ev Event) {
	c.handler(c, ev)
}

func (c *Codec) warn(kind ErrorKind, msg string) {
	c.emit(Event{Kind: EventWarning, Err: &Error{Kind: kind, Msg: msg}})
}

func (c *Codec) fail(kind ErrorKind, msg string) {
	c.emit(Event{Kind: EventError, Err: &Error{Kind: kind, Msg: msg}})
}

// sendRaw pushes bytes to the handler as an EventSend, deflating them
// first if outbound compression is active. This is the single funnel
// every outbound path (negotiation, escaped data, subnegotiations) goes
// through, matching libtelnet.c's _send().
func (c *Codec) sendRaw(data []byte) {
	if c.deflate != nil {
		out, err := c.deflate.deflate(data)
		if err != nil {
			c.fail(ErrCompress, "deflate: "+err.Error())
			c.deflate = nil
			return
		}
		if len(out) > 0 {
			c.emit(Event{Kind: EventSend, Data: out})
		}
		return
	}
	c.emit(Event{Kind: EventSend, Data: data})
}
