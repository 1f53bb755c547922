package telnet

import "bytes"

// subnegotiate dispatches a completed subnegotiation buffer (c.sbOpt,
// c.sb) to the right parser and emits the resulting event(s). It
// returns true exactly when it just turned on inbound compression,
// signalling to the caller (decoder.go) that any bytes left in the
// current Receive buffer are compressed and must be rerouted through
// Receive's top-level entry point rather than processed here — the
// same "abort and reprocess" contract as libtelnet.c's _subnegotiate().
func (c *Codec) subnegotiate() bool {
	data := c.sb.data

	switch c.sbOpt {
	case OptCompress2:
		if c.inflate != nil {
			c.warn(ErrBadValue, "cannot initialize compression twice")
			return false
		}
		c.emit(Event{Kind: EventSubnegotiation, Option: c.sbOpt, Data: append([]byte(nil), data...)})
		c.inflate = &decompressor{}
		c.emit(Event{Kind: EventCompress, Compressing: true})
		return true

	case OptZMP:
		c.emitZMP(data)
		return false

	case OptTTYPE, OptEnviron, OptNewEnviron, OptMSSP:
		c.emitTypedFields(data)
		return false

	default:
		c.emit(Event{Kind: EventSubnegotiation, Option: c.sbOpt, Data: append([]byte(nil), data...)})
		return false
	}
}

// emitZMP splits a ZMP subnegotiation payload into its NUL-separated
// argv, mirroring libtelnet.c's TELNET_TELOPT_ZMP case. A payload that
// doesn't end in a NUL is an incomplete frame: the raw data is still
// reported, just without a parsed argv.
func (c *Codec) emitZMP(data []byte) {
	if len(data) == 0 || data[len(data)-1] != 0 {
		c.warn(ErrProtocol, "incomplete ZMP frame")
		c.emit(Event{Kind: EventSubnegotiation, Option: OptZMP, Data: append([]byte(nil), data...)})
		return
	}

	var fields []TypedField
	for _, part := range bytes.Split(data[:len(data)-1], []byte{0}) {
		fields = append(fields, TypedField{Data: string(part)})
	}
	c.emit(Event{Kind: EventSubnegotiation, Option: OptZMP, Data: append([]byte(nil), data...), Fields: fields})
}

// emitTypedFields parses the TTYPE/ENVIRON/NEW-ENVIRON/MSSP family:
// each argument is a type byte in {0,1,2,3} followed by its string data,
// running until the next type byte or end of buffer. Mirrors
// libtelnet.c's shared case for those four telopts.
func (c *Codec) emitTypedFields(data []byte) {
	raw := append([]byte(nil), data...)

	if len(data) == 0 {
		c.emit(Event{Kind: EventSubnegotiation, Option: c.sbOpt, Data: raw})
		return
	}

	if data[0] > 3 {
		c.warn(ErrProtocol, "subnegotiation has invalid leading type byte")
		c.emit(Event{Kind: EventSubnegotiation, Option: c.sbOpt, Data: raw})
		return
	}

	var fields []TypedField
	i := 0
	for i < len(data) {
		typ := data[i]
		j := i + 1
		for j < len(data) && data[j] > 3 {
			j++
		}
		fields = append(fields, TypedField{Type: typ, Data: string(data[i+1 : j])})
		i = j
	}

	c.emit(Event{Kind: EventSubnegotiation, Option: c.sbOpt, Data: raw, Fields: fields})
}
