package httpclient

import (
	"net/http"
	"sync"
	"time"
)

// Pool hands out reusable HTTP clients for outbound API calls
type Pool struct {
	clients chan *http.Client
	factory func() *http.Client
	mu      sync.RWMutex
	closed  bool
}

// NewPool creates a pool pre-populated with maxClients clients
func NewPool(maxClients int) *Pool {
	pool := &Pool{
		clients: make(chan *http.Client, maxClients),
		factory: newOutboundClient,
	}

	for i := 0; i < maxClients; i++ {
		pool.clients <- pool.factory()
	}

	return pool
}

// newOutboundClient creates an HTTP client tuned for the messaging API
func newOutboundClient() *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// Get retrieves an HTTP client from the pool, creating one if the pool
// is exhausted
func (p *Pool) Get() *http.Client {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return p.factory()
	}

	select {
	case client := <-p.clients:
		return client
	default:
		return p.factory()
	}
}

// Put returns an HTTP client to the pool; full pools discard the client
func (p *Pool) Put(client *http.Client) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return
	}

	select {
	case p.clients <- client:
	default:
	}
}

// Close closes the pool
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	close(p.clients)
}

var (
	globalPool *Pool
	once       sync.Once
)

// GetGlobalPool returns the shared pool for outbound calls
func GetGlobalPool() *Pool {
	once.Do(func() {
		globalPool = NewPool(20)
	})
	return globalPool
}
