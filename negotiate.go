package telnet

// receiveNegotiate implements the RFC 1143 state machine for a WILL,
// WONT, DO, or DONT byte seen on the wire. It is a direct port of
// libtelnet.c's _negotiate(), with the PROXY-mode shortcut split out
// into process (see decoder.go, which reports the byte via proxyKind)
// since Go doesn't need to smuggle that branch through the same
// function the way the C code does.
func (c *Codec) receiveNegotiate(command, option byte) {
	q := c.queue.get(option)

	switch command {
	case CmdWILL:
		switch q.him {
		case qNo:
			if c.support.allows(option, false) {
				c.queue.set(option, q.us, qYes)
				c.sendNegotiate(CmdDO, option)
				c.emit(Event{Kind: EventWill, Option: option})
			} else {
				c.sendNegotiate(CmdDONT, option)
			}
		case qWantNo:
			c.queue.set(option, q.us, qNo)
			c.emit(Event{Kind: EventWont, Option: option})
			c.warn(ErrProtocol, "DONT answered by WILL")
		case qWantNoOp:
			c.queue.set(option, q.us, qYes)
			c.emit(Event{Kind: EventWill, Option: option})
			c.warn(ErrProtocol, "DONT answered by WILL")
		case qWantYes:
			c.queue.set(option, q.us, qYes)
			c.emit(Event{Kind: EventWill, Option: option})
		case qWantYesOp:
			c.queue.set(option, q.us, qWantNo)
			c.sendNegotiate(CmdDONT, option)
			c.emit(Event{Kind: EventWill, Option: option})
		}

	case CmdWONT:
		switch q.him {
		case qYes:
			c.queue.set(option, q.us, qNo)
			c.sendNegotiate(CmdDONT, option)
			c.emit(Event{Kind: EventWont, Option: option})
		case qWantNo:
			c.queue.set(option, q.us, qNo)
			c.emit(Event{Kind: EventWont, Option: option})
		case qWantNoOp:
			c.queue.set(option, q.us, qWantYes)
			c.emit(Event{Kind: EventDo, Option: option})
		case qWantYes, qWantYesOp:
			c.queue.set(option, q.us, qNo)
		}

	case CmdDO:
		switch q.us {
		case qNo:
			if c.support.allows(option, true) {
				c.queue.set(option, qYes, q.him)
				c.sendNegotiate(CmdWILL, option)
				c.emit(Event{Kind: EventDo, Option: option})
			} else {
				c.sendNegotiate(CmdWONT, option)
			}
		case qWantNo:
			c.queue.set(option, qNo, q.him)
			c.emit(Event{Kind: EventDont, Option: option})
			c.warn(ErrProtocol, "WONT answered by DO")
		case qWantNoOp:
			c.queue.set(option, qYes, q.him)
			c.emit(Event{Kind: EventDo, Option: option})
			c.warn(ErrProtocol, "WONT answered by DO")
		case qWantYes:
			c.queue.set(option, qYes, q.him)
			c.emit(Event{Kind: EventDo, Option: option})
		case qWantYesOp:
			c.queue.set(option, qWantNo, q.him)
			c.sendNegotiate(CmdWONT, option)
			c.emit(Event{Kind: EventDo, Option: option})
		}

	case CmdDONT:
		switch q.us {
		case qYes:
			c.queue.set(option, qNo, q.him)
			c.sendNegotiate(CmdWONT, option)
			c.emit(Event{Kind: EventDont, Option: option})
		case qWantNo:
			c.queue.set(option, qNo, q.him)
			c.emit(Event{Kind: EventWont, Option: option})
		case qWantNoOp:
			c.queue.set(option, qWantYes, q.him)
			c.emit(Event{Kind: EventWill, Option: option})
		case qWantYes, qWantYesOp:
			c.queue.set(option, qNo, q.him)
		}
	}
}

// Will announces our intent to enable option, following the RFC 1143
// send-side table (libtelnet.c's telnet_negotiate case TELNET_WILL): a
// byte only actually goes out when we're not already mid-negotiation.
func (c *Codec) Will(option byte) { c.negotiate(CmdWILL, option) }

// Wont announces we will no longer use option.
func (c *Codec) Wont(option byte) { c.negotiate(CmdWONT, option) }

// Do asks the remote end to enable option.
func (c *Codec) Do(option byte) { c.negotiate(CmdDO, option) }

// Dont asks the remote end to stop using option.
func (c *Codec) Dont(option byte) { c.negotiate(CmdDONT, option) }

// negotiate is the caller-initiated (send-side) half of the RFC 1143
// state machine, ported from libtelnet.c's telnet_negotiate(). It only
// emits a wire command on the transitions the table allows; redundant
// calls (asking for something already active, or already pending) are
// absorbed silently, which is exactly what prevents WILL/DO loops
// between two well-behaved peers.
func (c *Codec) negotiate(command, option byte) {
	if c.proxy {
		c.sendNegotiate(command, option)
		return
	}

	q := c.queue.get(option)

	switch command {
	case CmdWILL:
		switch q.us {
		case qNo:
			c.queue.set(option, qWantYes, q.him)
			c.sendNegotiate(CmdWILL, option)
		case qWantNo:
			c.queue.set(option, qWantNoOp, q.him)
		case qWantYesOp:
			c.queue.set(option, qWantYes, q.him)
		}

	case CmdWONT:
		switch q.us {
		case qYes:
			c.queue.set(option, qWantNo, q.him)
			c.sendNegotiate(CmdWONT, option)
		case qWantYes:
			c.queue.set(option, qWantYesOp, q.him)
		case qWantNoOp:
			c.queue.set(option, qWantNo, q.him)
		}

	case CmdDO:
		switch q.him {
		case qNo:
			c.queue.set(option, q.us, qWantYes)
			c.sendNegotiate(CmdDO, option)
		case qWantNo:
			c.queue.set(option, q.us, qWantNoOp)
		case qWantYesOp:
			c.queue.set(option, q.us, qWantYes)
		}

	case CmdDONT:
		switch q.him {
		case qYes:
			c.queue.set(option, q.us, qWantNo)
			c.sendNegotiate(CmdDONT, option)
		case qWantYes:
			c.queue.set(option, q.us, qWantYesOp)
		case qWantNoOp:
			c.queue.set(option, q.us, qWantNo)
		}
	}
}

func (c *Codec) sendNegotiate(command, option byte) {
	c.sendRaw([]byte{CmdIAC, command, option})
}
