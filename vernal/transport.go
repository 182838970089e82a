// Package vernal implements wildcard vernalization (spec §4.7): the
// two-party online protocol that binds a wildcard input or output column
// after key generation, via Beaver-style correlations precomputed by
// keygen. It is grounded on the teacher's lack of an online protocol layer
// (the teacher's DPF is entirely offline); the synchronous/asynchronous
// read-write pairing below follows the request/response pattern the
// teacher's pcg package uses for its own network-facing pieces, adapted to
// this module's wildcard-binding semantics, and is transported over
// gorilla/websocket the way the rest of the pack's network-facing repos do.
package vernal

import (
	"context"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/rometsch-lab/grotto-dpf/block"
)

// Transport is the minimal peer-to-peer channel vernalization needs: one
// block written, one block read, strictly alternating per spec §5
// ("the protocol is strictly alternating within each column's flow").
type Transport interface {
	WriteBlock(ctx context.Context, b block.Block) error
	ReadBlock(ctx context.Context) (block.Block, error)
}

// WebSocketTransport implements Transport over a gorilla/websocket
// connection, sending/receiving each block as one binary message.
type WebSocketTransport struct {
	conn *websocket.Conn
}

// NewWebSocketTransport wraps an already-established websocket connection.
func NewWebSocketTransport(conn *websocket.Conn) *WebSocketTransport {
	return &WebSocketTransport{conn: conn}
}

func (w *WebSocketTransport) WriteBlock(ctx context.Context, b block.Block) error {
	raw := b.Bytes()
	if err := w.conn.WriteMessage(websocket.BinaryMessage, raw[:]); err != nil {
		return fmt.Errorf("vernal: transport write failed: %w", err)
	}
	return nil
}

func (w *WebSocketTransport) ReadBlock(ctx context.Context) (block.Block, error) {
	kind, data, err := w.conn.ReadMessage()
	if err != nil {
		return block.Zero, fmt.Errorf("vernal: transport read failed: %w", err)
	}
	if kind != websocket.BinaryMessage || len(data) != 16 {
		return block.Zero, fmt.Errorf("vernal: short or malformed read (%d bytes)", len(data))
	}
	var raw [16]byte
	copy(raw[:], data)
	return block.FromBytes(raw), nil
}

// InMemoryTransport pairs two in-process parties over buffered channels,
// used by tests and by single-process simulations of the protocol.
type InMemoryTransport struct {
	out chan<- block.Block
	in  <-chan block.Block
}

// NewInMemoryPipe returns a connected pair of transports.
func NewInMemoryPipe() (*InMemoryTransport, *InMemoryTransport) {
	ab := make(chan block.Block, 8)
	ba := make(chan block.Block, 8)
	return &InMemoryTransport{out: ab, in: ba}, &InMemoryTransport{out: ba, in: ab}
}

func (t *InMemoryTransport) WriteBlock(ctx context.Context, b block.Block) error {
	select {
	case t.out <- b:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (t *InMemoryTransport) ReadBlock(ctx context.Context) (block.Block, error) {
	select {
	case b := <-t.in:
		return b, nil
	case <-ctx.Done():
		return block.Zero, ctx.Err()
	}
}
