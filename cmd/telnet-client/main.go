// Command telnet-client is a minimal interactive TELNET client: it
// dials a server, puts the local terminal into raw mode, and relays
// bytes between stdin/stdout and the connection through a telnet.Codec.
// It mirrors telnet-client.c from the original libtelnet distribution.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/mudlib/telnet"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <host:port>\n", os.Args[0])
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	addr := flag.Arg(0)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		log.Fatalf("dial %s: %v", addr, err)
	}
	defer conn.Close()

	var restore func()
	if term.IsTerminal(int(os.Stdin.Fd())) {
		prev, err := term.MakeRaw(int(os.Stdin.Fd()))
		if err != nil {
			log.Fatalf("raw mode: %v", err)
		}
		restore = func() { term.Restore(int(os.Stdin.Fd()), prev) }
		defer restore()
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	codec := telnet.NewCodec(telnet.Config{
		Supports: []telnet.Support{
			{Option: telnet.OptBinary, Us: true, Him: true},
			{Option: telnet.OptSGA, Us: true, Him: true},
			{Option: telnet.OptTTYPE, Us: true},
			{Option: telnet.OptNAWS, Us: true},
			{Option: telnet.OptCompress2, Him: true},
		},
		Handler: func(c *telnet.Codec, ev telnet.Event) {
			switch ev.Kind {
			case telnet.EventData:
				os.Stdout.Write(ev.Data)
			case telnet.EventSend:
				conn.Write(ev.Data)
			case telnet.EventDo:
				if ev.Option == telnet.OptTTYPE {
					c.SendTypedSubnegotiation(telnet.OptTTYPE,
						telnet.TypedField{Type: telnet.TTYPEIs, Data: "xterm"})
				}
				if ev.Option == telnet.OptNAWS {
					c.SendNAWS(uint16(width), uint16(height))
				}
			case telnet.EventWarning:
				log.Printf("warning: %v", ev.Err)
			case telnet.EventError:
				log.Printf("error: %v", ev.Err)
			}
		},
	})

	codec.Will(telnet.OptTTYPE)
	codec.Will(telnet.OptNAWS)
	codec.Do(telnet.OptCompress2)

	go func() {
		buf := make([]byte, 4096)
		for {
			n, err := conn.Read(buf)
			if n > 0 {
				codec.Receive(buf[:n])
			}
			if err != nil {
				cancel()
				return
			}
		}
	}()

	go func() {
		buf := make([]byte, 512)
		for {
			n, err := os.Stdin.Read(buf)
			if n > 0 {
				codec.Send(buf[:n])
			}
			if err != nil {
				if err != io.EOF {
					log.Printf("stdin: %v", err)
				}
				cancel()
				return
			}
		}
	}()

	<-ctx.Done()
}
