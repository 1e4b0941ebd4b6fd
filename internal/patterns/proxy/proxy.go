// Package proxy demonstrates a cheap stand-in that decides when to involve an
// expensive object.
package proxy

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"patternshell/internal/catalog"
)

// Producer is the expensive object.
type Producer struct {
	out io.Writer
}

// NewProducer returns a producer printing to out.
func NewProducer(out io.Writer) *Producer {
	return &Producer{out: out}
}

// Produce does the producer's work.
func (p *Producer) Produce() {
	fmt.Fprintln(p.out, "producer is working hard")
}

// Meet greets the artist.
func (p *Producer) Meet() {
	fmt.Fprintln(p.out, "Producer has time to meet you now")
}

// Proxy stands between the artist and the producer.
type Proxy struct {
	out   io.Writer
	delay time.Duration

	mu       sync.Mutex
	occupied bool
	producer *Producer
}

// New returns a proxy that takes delay to check on the producer.
func New(out io.Writer, delay time.Duration) *Proxy {
	return &Proxy{out: out, delay: delay}
}

// Occupied reports whether the producer is busy.
func (p *Proxy) Occupied() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.occupied
}

// SetOccupied marks the producer busy or free.
func (p *Proxy) SetOccupied(occupied bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.occupied = occupied
}

// Produce checks on the producer and arranges a meeting if it is free. The
// producer is only created the first time it is free.
func (p *Proxy) Produce(ctx context.Context) error {
	fmt.Fprintln(p.out, "Artist checking if producer is available...")

	busy := p.Occupied()
	if err := catalog.Sleep(ctx, p.delay); err != nil {
		return fmt.Errorf("checking producer: %w", err)
	}

	if busy {
		fmt.Fprintln(p.out, "Producer is busy!")
		return nil
	}
	p.Producer().Meet()
	return nil
}

// Producer returns the producer, creating it on first use.
func (p *Proxy) Producer() *Producer {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.producer == nil {
		p.producer = NewProducer(p.out)
	}
	return p.producer
}

// Instantiated reports whether the producer has been created yet.
func (p *Proxy) Instantiated() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.producer != nil
}
