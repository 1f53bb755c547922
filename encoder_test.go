package telnet

import (
	"bytes"
	"testing"
)

func TestSendEscapesIAC(t *testing.T) {
	var events []Event
	c := NewCodec(Config{Handler: collect(&events)})

	c.Send([]byte{'a', CmdIAC, 'b'})

	got := sentBytes(events)
	want := []byte{'a', CmdIAC, CmdIAC, 'b'}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSubnegotiationRoundTrip(t *testing.T) {
	var events []Event
	c := NewCodec(Config{Handler: collect(&events)})

	c.Subnegotiation(200, []byte{1, CmdIAC, 2})

	got := sentBytes(events)
	want := buildSubneg(200, []byte{1, CmdIAC, CmdIAC, 2})
	if !bytes.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	// Feed our own output back in and recover the original payload.
	var roundTrip []Event
	c2 := NewCodec(Config{Handler: collect(&roundTrip)})
	c2.Receive(got)

	for _, ev := range roundTrip {
		if ev.Kind == EventSubnegotiation {
			if !bytes.Equal(ev.Data, []byte{1, CmdIAC, 2}) {
				t.Fatalf("got %v, want %v", ev.Data, []byte{1, CmdIAC, 2})
			}
			return
		}
	}
	t.Fatalf("no subnegotiation event reassembled: %+v", roundTrip)
}

func TestSendZMP(t *testing.T) {
	var events []Event
	c := NewCodec(Config{Handler: collect(&events)})

	c.SendZMP([]string{"zmp.ping", "arg1"})

	var recv []Event
	c2 := NewCodec(Config{Handler: collect(&recv)})
	c2.Receive(sentBytes(events))

	for _, ev := range recv {
		if ev.Kind == EventSubnegotiation {
			want := []TypedField{{Data: "zmp.ping"}, {Data: "arg1"}}
			if len(ev.Fields) != len(want) || ev.Fields[0] != want[0] || ev.Fields[1] != want[1] {
				t.Fatalf("got %+v, want %+v", ev.Fields, want)
			}
			return
		}
	}
	t.Fatalf("no subnegotiation event: %+v", recv)
}

func TestPrintfTranslatesLineEndings(t *testing.T) {
	var events []Event
	c := NewCodec(Config{Handler: collect(&events)})

	c.Printf("hi\n")

	got := sentBytes(events)
	want := []byte{'h', 'i', '\r', '\n'}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
