package telnet

// Receive is the single entry point for inbound bytes. It decodes as
// much of data as it can into Events delivered synchronously to the
// handler, buffering only the minimum needed to finish an in-progress
// command or subnegotiation. Receive never blocks. While inbound
// compression is active, the compressed bytes received since activation
// are also kept (see decompressor).
func (c *Codec) Receive(data []byte) {
	if c.inflate != nil {
		fresh, err := c.inflate.feed(data)
		if err != nil {
			c.fail(ErrCompress, "inflate: "+err.Error())
			c.inflate = nil
			c.emit(Event{Kind: EventCompress, Compressing: false})
			return
		}
		if fresh == nil {
			return // stream not yet complete enough to decode further
		}
		c.process(fresh)
		return
	}
	c.process(data)
}

// process runs the byte-level state machine, a direct port of
// libtelnet.c's _process(). start marks the beginning of the current
// run of plain data bytes not yet flushed as an EventData.
func (c *Codec) process(buf []byte) {
	start := 0

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		switch c.st {
		case stateData:
			if b == CmdIAC {
				if i != start {
					c.emit(Event{Kind: EventData, Data: buf[start:i]})
				}
				c.st = stateIAC
			}

		case stateIAC:
			switch b {
			case CmdSB:
				c.st = stateSB
			case CmdWILL:
				c.st = stateWill
			case CmdWONT:
				c.st = stateWont
			case CmdDO:
				c.st = stateDo
			case CmdDONT:
				c.st = stateDont
			case CmdIAC:
				c.emit(Event{Kind: EventData, Data: buf[i : i+1]})
				start = i + 1
				c.st = stateData
			default:
				c.emit(Event{Kind: EventCommand, Command: b})
				start = i + 1
				c.st = stateData
			}

		case stateWill, stateWont, stateDo, stateDont:
			cmd := negotiationCommand(c.st)
			if c.proxy {
				c.emit(Event{Kind: proxyKind(cmd), Option: b})
			} else {
				c.receiveNegotiate(cmd, b)
			}
			start = i + 1
			c.st = stateData

		case stateSB:
			c.sbOpt = b
			c.sb.reset()
			c.st = stateSBData

		case stateSBData:
			if b == CmdIAC {
				c.st = stateSBDataIAC
			} else if err := c.sb.push(b); err != nil {
				c.warn(ErrOverflow, err.Error())
				start = i + 1
				c.st = stateData
			}

		case stateSBDataIAC:
			switch b {
			case CmdSE:
				start = i + 1
				c.st = stateData

				if c.subnegotiate() {
					// COMPRESS2 just activated: any bytes left in this
					// buffer are compressed. Hand them to Receive's
					// top-level entry point (which will now route
					// through the freshly installed decompressor) and
					// stop processing this buffer — reprocessing it here
					// would double-handle those bytes.
					c.Receive(buf[start:])
					return
				}

			case CmdIAC:
				if err := c.sb.push(CmdIAC); err != nil {
					c.warn(ErrOverflow, err.Error())
					start = i + 1
					c.st = stateData
				} else {
					c.st = stateSBData
				}

			default:
				c.warn(ErrProtocol, "unexpected byte after IAC inside subnegotiation")
				start = i + 1
				c.st = stateIAC

				if c.subnegotiate() {
					c.Receive(buf[start:])
					return
				}
				// Re-evaluate this byte as the start of a fresh IAC
				// command, matching libtelnet.c's recursive _process call,
				// then keep scanning the rest of buf from i+1 as normal.
				c.process(buf[i : i+1])
			}
		}
	}

	if c.st == stateData && len(buf) != start {
		c.emit(Event{Kind: EventData, Data: buf[start:]})
	}
}

func negotiationCommand(st state) byte {
	switch st {
	case stateWill:
		return CmdWILL
	case stateWont:
		return CmdWONT
	case stateDo:
		return CmdDO
	default:
		return CmdDONT
	}
}

func proxyKind(cmd byte) EventKind {
	switch cmd {
	case CmdWILL:
		return EventWill
	case CmdWONT:
		return EventWont
	case CmdDO:
		return EventDo
	default:
		return EventDont
	}
}
