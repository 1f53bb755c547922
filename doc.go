// Package telnet implements the TELNET application-layer protocol as a
// pure, event-driven codec: it turns a bidirectional byte stream into
// semantic events and back, without ever touching a socket itself.
//
// A Codec owns no network connection, goroutine, or timer. Callers feed
// it inbound bytes via Receive and get a callback invoked once per
// event; callers get outbound bytes the same way, via the same callback,
// tagged as a send event. This mirrors libtelnet's single
// telnet_event_handler_t design: one seam between the protocol engine
// and the world outside it.
package telnet
