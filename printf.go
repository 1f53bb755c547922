package telnet

import "fmt"

// Printf formats text like fmt.Sprintf and sends it, translating every
// \r into \r\0 and every \n into \r\n in addition to escaping IAC bytes,
// matching libtelnet.c's telnet_printf() line-ending convention for
// text sent to a NVT-compliant terminal.
func (c *Codec) Printf(format string, args ...any) {
	text := fmt.Sprintf(format, args...)

	l := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case CmdIAC, '\r', '\n':
			if i != l {
				c.sendRaw([]byte(text[l:i]))
			}
			l = i + 1
			switch text[i] {
			case CmdIAC:
				c.sendRaw([]byte{CmdIAC, CmdIAC})
			case '\r':
				c.sendRaw([]byte{'\r', 0})
			case '\n':
				c.sendRaw([]byte{'\r', '\n'})
			}
		}
	}
	if l != len(text) {
		c.sendRaw([]byte(text[l:]))
	}
}

// Printf2 formats text like fmt.Sprintf and sends it through Send,
// escaping only IAC bytes and leaving line endings untouched. Mirrors
// libtelnet.c's telnet_printf2().
func (c *Codec) Printf2(format string, args ...any) {
	c.Send([]byte(fmt.Sprintf(format, args...)))
}
