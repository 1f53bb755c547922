// Command telnet-proxy listens for one client connection, relays it to
// a remote TELNET server, and logs every command, negotiation, and
// subnegotiation it sees passing through in either direction. Neither
// side tracks RFC 1143 state of its own — the whole point of a proxy is
// to pass negotiation through untouched — so both Codecs run in Proxy
// mode. Mirrors telnet-proxy.c from the original libtelnet distribution.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/mudlib/telnet"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <remote host:port> <local port>\n", os.Args[0])
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}
	remoteAddr := flag.Arg(0)
	localPort := flag.Arg(1)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ln, err := net.Listen("tcp", ":"+localPort)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	log.Printf("listening on :%s, relaying to %s", localPort, remoteAddr)

	client, err := ln.Accept()
	if err != nil {
		log.Fatalf("accept: %v", err)
	}
	defer client.Close()

	server, err := net.Dial("tcp", remoteAddr)
	if err != nil {
		log.Fatalf("dial %s: %v", remoteAddr, err)
	}
	defer server.Close()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return relay(gctx, "CLIENT", client, server) })
	g.Go(func() error { return relay(gctx, "SERVER", server, client) })

	if err := g.Wait(); err != nil {
		log.Printf("proxy stopped: %v", err)
	}
}

// relay pumps bytes from src to dst, decoding them with a proxy-mode
// Codec purely for logging — the Codec's own EventSend output is
// ignored, since in Proxy mode negotiation is never auto-answered and
// every byte of src is forwarded to dst verbatim regardless of how the
// Codec classified it.
func relay(ctx context.Context, name string, src, dst net.Conn) error {
	codec := telnet.NewCodec(telnet.Config{
		Proxy: true,
		Handler: func(_ *telnet.Codec, ev telnet.Event) {
			logEvent(name, ev)
		},
	})

	buf := make([]byte, 512)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			dst.Write(buf[:n])
			codec.Receive(buf[:n])
		}
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
}

func logEvent(name string, ev telnet.Event) {
	switch ev.Kind {
	case telnet.EventCommand:
		log.Printf("%s IAC %d", name, ev.Command)
	case telnet.EventWill, telnet.EventWont, telnet.EventDo, telnet.EventDont:
		log.Printf("%s %s %d", name, ev.Kind, ev.Option)
	case telnet.EventSubnegotiation:
		log.Printf("%s SUB %d [%d bytes]", name, ev.Option, len(ev.Data))
	case telnet.EventCompress:
		log.Printf("%s COMPRESSION %v", name, ev.Compressing)
	case telnet.EventWarning, telnet.EventError:
		log.Printf("%s %s: %v", name, ev.Kind, ev.Err)
	}
}
