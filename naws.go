package telnet

// NAWS (option 31) is fixed-width — two 16-bit big-endian values — so it
// doesn't fit the type-byte-plus-string family in subneg.go and gets its
// own small codec, grounded on plyul-telnet's window-size handler.

// EncodeNAWS builds the NAWS subnegotiation payload for a given
// terminal width and height.
func EncodeNAWS(width, height uint16) []byte {
	return []byte{
		byte(width >> 8), byte(width),
		byte(height >> 8), byte(height),
	}
}

// DecodeNAWS parses a NAWS subnegotiation payload. ok is false if data
// isn't exactly 4 bytes.
func DecodeNAWS(data []byte) (width, height uint16, ok bool) {
	if len(data) != 4 {
		return 0, 0, false
	}
	width = uint16(data[0])<<8 | uint16(data[1])
	height = uint16(data[2])<<8 | uint16(data[3])
	return width, height, true
}

// SendNAWS sends the current terminal size as a NAWS subnegotiation.
func (c *Codec) SendNAWS(width, height uint16) {
	c.Subnegotiation(OptNAWS, EncodeNAWS(width, height))
}
