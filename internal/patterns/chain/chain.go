// Package chain demonstrates the chain of responsibility: a request travels
// along linked handlers until one of them accepts it.
package chain

import (
	"errors"
	"fmt"
	"io"
)

// ErrUnhandled is returned when a request falls off the end of a chain.
var ErrUnhandled = errors.New("request not handled")

// Handler decides whether it handles a request.
type Handler interface {
	Handle(request int) bool
}

// RangeHandler accepts requests in (Low, High].
type RangeHandler struct {
	Label int
	Low   int
	High  int
	out   io.Writer
}

// NewRangeHandler returns a handler for Low < request <= High.
func NewRangeHandler(out io.Writer, label, low, high int) *RangeHandler {
	return &RangeHandler{Label: label, Low: low, High: high, out: out}
}

// Handle implements Handler.
func (h *RangeHandler) Handle(request int) bool {
	if request <= h.Low || request > h.High {
		return false
	}
	fmt.Fprintf(h.out, "Request %d handled in handler %d\n", request, h.Label)
	return true
}

// DefaultHandler accepts everything. It belongs at the end of a chain.
type DefaultHandler struct {
	out io.Writer
}

// NewDefaultHandler returns a catch-all handler.
func NewDefaultHandler(out io.Writer) *DefaultHandler {
	return &DefaultHandler{out: out}
}

// Handle implements Handler.
func (h *DefaultHandler) Handle(request int) bool {
	fmt.Fprintf(h.out, "End of chain, no handler for %d\n", request)
	return true
}

var (
	_ Handler = (*RangeHandler)(nil)
	_ Handler = (*DefaultHandler)(nil)
	_ Handler = (*Link)(nil)
)

// Link is one node in the chain.
type Link struct {
	handler   Handler
	successor *Link
}

// NewChain links handlers in the given order and returns the head, or nil
// when no handlers are given.
func NewChain(handlers ...Handler) *Link {
	var head *Link
	for i := len(handlers) - 1; i >= 0; i-- {
		head = &Link{handler: handlers[i], successor: head}
	}
	return head
}

// Handle implements Handler by walking the chain.
func (l *Link) Handle(request int) bool {
	for link := l; link != nil; link = link.successor {
		if link.handler.Handle(request) {
			return true
		}
	}
	return false
}

// Dispatch is Handle with an error for requests nobody accepted.
func (l *Link) Dispatch(request int) error {
	if !l.Handle(request) {
		return fmt.Errorf("request %d: %w", request, ErrUnhandled)
	}
	return nil
}

// Client owns a chain and feeds it requests.
type Client struct {
	chain *Link
}

// NewClient returns a client with the classic two-handler chain: requests in
// 1..10 are handled, anything else reaches the default handler.
func NewClient(out io.Writer) *Client {
	return &Client{
		chain: NewChain(NewRangeHandler(out, 1, 0, 10), NewDefaultHandler(out)),
	}
}

// NewClientWithChain returns a client that uses chain.
func NewClientWithChain(chain *Link) *Client {
	return &Client{chain: chain}
}

// Delegate sends each request in turn, stopping at the first unhandled one.
func (c *Client) Delegate(requests []int) error {
	if c.chain == nil {
		return fmt.Errorf("empty chain: %w", ErrUnhandled)
	}
	for _, request := range requests {
		if err := c.chain.Dispatch(request); err != nil {
			return err
		}
	}
	return nil
}
