package telnet

// Command sends a bare IAC command such as GA, NOP, or EOR.
func (c *Codec) Command(cmd byte) {
	c.sendRaw([]byte{CmdIAC, cmd})
}

// Send transmits data as application bytes, doubling any IAC byte it
// contains so the remote decoder can't mistake it for a command.
// Mirrors libtelnet.c's telnet_send().
func (c *Codec) Send(data []byte) {
	l := 0
	for i, b := range data {
		if b == CmdIAC {
			if i != l {
				c.sendRaw(data[l:i])
			}
			l = i + 1
			c.sendRaw([]byte{CmdIAC, CmdIAC})
		}
	}
	if l != len(data) {
		c.sendRaw(data[l:])
	}
}

// SendText is a convenience wrapper for Send(append([]byte(text), "\r\n"...)).
func (c *Codec) SendText(text string) {
	c.Send([]byte(text + "\r\n"))
}

// BeginSubnegotiation sends IAC SB <option>. Pair with FinishSubnegotiation,
// or use Subnegotiation for the common case of a single complete payload.
func (c *Codec) BeginSubnegotiation(option byte) {
	c.sendRaw([]byte{CmdIAC, CmdSB, option})
}

// FinishSubnegotiation sends IAC SE.
func (c *Codec) FinishSubnegotiation() {
	c.sendRaw([]byte{CmdIAC, CmdSE})
}

// Subnegotiation sends a complete subnegotiation: header, IAC-escaped
// payload, footer.
func (c *Codec) Subnegotiation(option byte, data []byte) {
	c.BeginSubnegotiation(option)
	c.Send(data)
	c.FinishSubnegotiation()
}

// SendTypedSubnegotiation sends a TTYPE/ENVIRON/NEW-ENVIRON/MSSP-style
// subnegotiation built from (type byte, string) pairs, mirroring
// libtelnet.c's telnet_format_sb().
func (c *Codec) SendTypedSubnegotiation(option byte, fields ...TypedField) {
	c.BeginSubnegotiation(option)
	for _, f := range fields {
		c.Send([]byte{f.Type})
		c.Send([]byte(f.Data))
	}
	c.FinishSubnegotiation()
}

// SendZMP sends a ZMP command: a subnegotiation whose payload is argv
// joined with NUL separators, each entry NUL-terminated, mirroring
// libtelnet.c's telnet_send_zmp().
func (c *Codec) SendZMP(argv []string) {
	c.BeginSubnegotiation(OptZMP)
	for _, arg := range argv {
		c.Send([]byte(arg))
		c.Send([]byte{0})
	}
	c.FinishSubnegotiation()
}

// BeginCompress2 activates outbound compression (server role only,
// matching RFC 1961 MCCP2): it sends the COMPRESS2 marker uncompressed,
// then every subsequent Send/Command/Subnegotiation is deflated.
// Mirrors libtelnet.c's telnet_begin_compress2().
func (c *Codec) BeginCompress2() {
	if c.deflate != nil {
		c.warn(ErrBadValue, "cannot initialize compression twice")
		return
	}
	c.emit(Event{Kind: EventSend, Data: []byte{CmdIAC, CmdSB, OptCompress2, CmdIAC, CmdSE}})
	c.deflate = newCompressor()
	c.emit(Event{Kind: EventCompress, Compressing: true})
}
