package telnet

import (
	"reflect"
	"testing"
)

func TestZMPParsing(t *testing.T) {
	var events []Event
	c := NewCodec(Config{Handler: collect(&events)})

	payload := []byte("zmp.ping\x00arg1\x00")
	c.Receive(buildSubneg(OptZMP, payload))

	var sub *Event
	for i := range events {
		if events[i].Kind == EventSubnegotiation {
			sub = &events[i]
		}
	}
	if sub == nil {
		t.Fatalf("no subnegotiation event: %+v", events)
	}
	want := []TypedField{{Data: "zmp.ping"}, {Data: "arg1"}}
	if !reflect.DeepEqual(sub.Fields, want) {
		t.Fatalf("got %+v, want %+v", sub.Fields, want)
	}
}

func TestZMPIncompleteFrameWarns(t *testing.T) {
	var events []Event
	c := NewCodec(Config{Handler: collect(&events)})

	c.Receive(buildSubneg(OptZMP, []byte("zmp.ping"))) // no trailing NUL

	found := false
	for _, ev := range events {
		if ev.Kind == EventWarning {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a warning for an incomplete ZMP frame, got %+v", events)
	}
}

func TestTTYPETypedFields(t *testing.T) {
	var events []Event
	c := NewCodec(Config{Handler: collect(&events)})

	payload := append([]byte{TTYPEIs}, []byte("xterm-256color")...)
	c.Receive(buildSubneg(OptTTYPE, payload))

	var sub *Event
	for i := range events {
		if events[i].Kind == EventSubnegotiation {
			sub = &events[i]
		}
	}
	if sub == nil {
		t.Fatalf("no subnegotiation event: %+v", events)
	}
	want := []TypedField{{Type: TTYPEIs, Data: "xterm-256color"}}
	if !reflect.DeepEqual(sub.Fields, want) {
		t.Fatalf("got %+v, want %+v", sub.Fields, want)
	}
}

func TestEnvironMultipleFields(t *testing.T) {
	var events []Event
	c := NewCodec(Config{Handler: collect(&events)})

	payload := []byte{}
	payload = append(payload, EnvironVar)
	payload = append(payload, []byte("TERM")...)
	payload = append(payload, EnvironValue)
	payload = append(payload, []byte("xterm")...)
	payload = append(payload, EnvironVar)
	payload = append(payload, []byte("USER")...)
	payload = append(payload, EnvironValue)
	payload = append(payload, []byte("guest")...)

	c.Receive(buildSubneg(OptEnviron, payload))

	var sub *Event
	for i := range events {
		if events[i].Kind == EventSubnegotiation {
			sub = &events[i]
		}
	}
	if sub == nil {
		t.Fatalf("no subnegotiation event: %+v", events)
	}
	want := []TypedField{
		{Type: EnvironVar, Data: "TERM"},
		{Type: EnvironValue, Data: "xterm"},
		{Type: EnvironVar, Data: "USER"},
		{Type: EnvironValue, Data: "guest"},
	}
	if !reflect.DeepEqual(sub.Fields, want) {
		t.Fatalf("got %+v, want %+v", sub.Fields, want)
	}
}

func TestNAWSRoundTrip(t *testing.T) {
	data := EncodeNAWS(80, 24)
	w, h, ok := DecodeNAWS(data)
	if !ok || w != 80 || h != 24 {
		t.Fatalf("got w=%d h=%d ok=%v, want 80 24 true", w, h, ok)
	}
}
