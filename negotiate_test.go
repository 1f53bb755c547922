package telnet

import "testing"

func TestWillAcceptedByPeer(t *testing.T) {
	var events []Event
	c := NewCodec(Config{
		Handler:  collect(&events),
		Supports: []Support{{Option: OptSGA, Us: true}},
	})

	c.Will(OptSGA)
	if got := sentBytes(events); string(got) != string([]byte{CmdIAC, CmdWILL, OptSGA}) {
		t.Fatalf("expected WILL SGA to be sent, got %v", got)
	}

	events = nil
	c.Receive([]byte{CmdIAC, CmdDO, OptSGA})

	foundDo := false
	for _, ev := range events {
		if ev.Kind == EventDo && ev.Option == OptSGA {
			foundDo = true
		}
	}
	if !foundDo {
		t.Fatalf("expected EventDo after peer confirms, got %+v", events)
	}

	// A second Will() call must be a no-op: option already enabled.
	events = nil
	c.Will(OptSGA)
	if len(sentBytes(events)) != 0 {
		t.Fatalf("expected no bytes sent for redundant WILL, got %v", events)
	}
}

func TestDoRejectedByPeer(t *testing.T) {
	var events []Event
	c := NewCodec(Config{
		Handler:  collect(&events),
		Supports: []Support{{Option: OptTTYPE, Him: true}},
	})

	c.Do(OptTTYPE)
	events = nil
	c.Receive([]byte{CmdIAC, CmdWONT, OptTTYPE})

	for _, ev := range events {
		if ev.Kind == EventSend {
			t.Fatalf("WONT from a not-yet-enabled option should not provoke a reply: %+v", events)
		}
	}
}

func TestUnsupportedOptionRefused(t *testing.T) {
	var events []Event
	c := NewCodec(Config{Handler: collect(&events)}) // no supports configured

	c.Receive([]byte{CmdIAC, CmdWILL, OptEcho})

	got := sentBytes(events)
	want := []byte{CmdIAC, CmdDONT, OptEcho}
	if string(got) != string(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for _, ev := range events {
		if ev.Kind == EventWill {
			t.Fatalf("unsupported option must not raise EventWill: %+v", events)
		}
	}
}

func TestProxyModePassesThroughWithoutTracking(t *testing.T) {
	var events []Event
	c := NewCodec(Config{Handler: collect(&events), Proxy: true})

	c.Receive([]byte{CmdIAC, CmdWILL, OptCompress2})

	if len(sentBytes(events)) != 0 {
		t.Fatalf("proxy mode must not auto-respond, got %v", events)
	}
	if len(events) != 1 || events[0].Kind != EventWill || events[0].Option != OptCompress2 {
		t.Fatalf("expected a single passthrough EventWill, got %+v", events)
	}
}

func TestQMethodDoesNotLoopOnRepeatedWill(t *testing.T) {
	var events []Event
	c := NewCodec(Config{
		Handler:  collect(&events),
		Supports: []Support{{Option: OptEcho, Him: true}},
	})

	c.Receive([]byte{CmdIAC, CmdWILL, OptEcho})
	firstReply := sentBytes(events)

	events = nil
	c.Receive([]byte{CmdIAC, CmdWILL, OptEcho})
	secondReply := sentBytes(events)

	if len(firstReply) == 0 {
		t.Fatalf("expected a DO reply to the first WILL")
	}
	if len(secondReply) != 0 {
		t.Fatalf("repeated WILL for an already-enabled option must not re-send DO, got %v", secondReply)
	}
}
