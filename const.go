package telnet

// Command bytes, valid immediately after an IAC byte. Named and valued
// after libtelnet.h's TELNET_* command constants.
const (
	CmdSE    byte = 240 // end subnegotiation
	CmdNOP   byte = 241
	CmdDM    byte = 242
	CmdBRK   byte = 243
	CmdIP    byte = 244
	CmdAO    byte = 245
	CmdAYT   byte = 246
	CmdEC    byte = 247
	CmdEL    byte = 248
	CmdGA    byte = 249
	CmdSB    byte = 250 // begin subnegotiation
	CmdWILL  byte = 251
	CmdWONT  byte = 252
	CmdDO    byte = 253
	CmdDONT  byte = 254
	CmdIAC   byte = 255 // interpret as command
	CmdEOR   byte = 239
	CmdABORT byte = 238
	CmdSUSP  byte = 237
	CmdEOF   byte = 236
)

// Option codes, as carried by WILL/WONT/DO/DONT and SB.
const (
	OptBinary         byte = 0
	OptEcho           byte = 1
	OptRCP            byte = 2
	OptSGA            byte = 3
	OptNAMS           byte = 4
	OptStatus         byte = 5
	OptTM             byte = 6
	OptRCTE           byte = 7
	OptNAOL           byte = 8
	OptNAOP           byte = 9
	OptNAOCRD         byte = 10
	OptNAOHTS         byte = 11
	OptNAOHTD         byte = 12
	OptNAOFFD         byte = 13
	OptNAOVTS         byte = 14
	OptNAOVTD         byte = 15
	OptNAOLFD         byte = 16
	OptXASCII         byte = 17
	OptLogout         byte = 18
	OptBM             byte = 19
	OptDET            byte = 20
	OptSUPDUP         byte = 21
	OptSUPDUPOutput   byte = 22
	OptSNDLOC         byte = 23
	OptTTYPE          byte = 24
	OptEOR            byte = 25
	OptTUID           byte = 26
	OptOUTMRK         byte = 27
	OptTTYLOC         byte = 28
	Opt3270Regime     byte = 29
	OptX3PAD          byte = 30
	OptNAWS           byte = 31
	OptTSPEED         byte = 32
	OptLFLOW          byte = 33
	OptLinemode       byte = 34
	OptXDisploc       byte = 35
	OptEnviron        byte = 36
	OptAuthentication byte = 37
	OptEncrypt        byte = 38
	OptNewEnviron     byte = 39
	OptMSSP           byte = 70
	OptCompress       byte = 85 // MCCP1, superseded by COMPRESS2
	OptCompress2      byte = 86 // MCCP2
	OptZMP            byte = 93
	OptEXOPL          byte = 255
)

// Sub-codes for the TTYPE/ENVIRON/NEW-ENVIRON "type byte + string" family.
const (
	TTYPEIs   byte = 0
	TTYPESend byte = 1

	EnvironIs      byte = 0
	EnvironSend    byte = 1
	EnvironInfo    byte = 2
	EnvironVar     byte = 0
	EnvironValue   byte = 1
	EnvironEsc     byte = 2
	EnvironUservar byte = 3

	MSSPVar byte = 1
	MSSPVal byte = 2
)

// subBufferSizes is the fixed growth ladder for the subnegotiation
// buffer: it starts at 0 and only ever grows to the next rung, never
// shrinking mid-subnegotiation. Reaching the end of the ladder without
// a terminating IAC SE is an overflow. Mirrors libtelnet.c's
// _buffer_sizes.
var subBufferSizes = [...]int{0, 512, 2048, 8192, 16384}
