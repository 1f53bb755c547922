package telnet

// Support records whether an option may be enabled locally (us) and/or
// requested of the remote end (him) — the two independent permissions
// libtelnet.c's telnet_telopt_t table grants per option.
type Support struct {
	Option byte
	Us     bool // we may WILL this option
	Him    bool // we may DO (request the peer enable) this option
}

// supportTable is a small, linearly-scanned list of option permissions.
// Real sessions enable a handful of options (BINARY, SGA, TTYPE, NAWS,
// COMPRESS2, ...), never the full 256-entry option space, so a slice
// scanned with a loop — exactly libtelnet.c's _check_telopt — is both
// simpler and cheaper than a 256-byte bitmap.
type supportTable struct {
	entries []Support
}

func newSupportTable(supports []Support) supportTable {
	return supportTable{entries: append([]Support(nil), supports...)}
}

func (t *supportTable) allows(option byte, us bool) bool {
	for _, s := range t.entries {
		if s.Option == option {
			if us {
				return s.Us
			}
			return s.Him
		}
	}
	return false
}
