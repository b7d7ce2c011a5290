package dispatch

import (
	"context"
	"errors"

	"github.com/padservo/padservo/controller"
)

// ErrExhausted is returned by Transport.Poll when the transport has no more
// input to deliver, ever. The loop stops cleanly when it sees it.
var ErrExhausted = errors.New("transport exhausted")

// Listener receives connect and disconnect notifications from a transport.
// Transports must not call it concurrently with Poll.
type Listener interface {
	OnConnect(h controller.Handle)
	OnDisconnect(h controller.Handle)
}

// Transport discovers controllers and delivers their frames.
type Transport interface {
	// Start begins discovery. Connections found later are reported to l.
	Start(l Listener) error
	// Poll refreshes controller state and reports whether any tracked
	// controller has new data this tick. It must not block for long.
	Poll(ctx context.Context) (bool, error)
	Close() error
}
