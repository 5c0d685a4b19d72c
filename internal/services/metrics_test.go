package services

import (
	"context"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
)

func TestMetricsHubConcurrentAddRemove(t *testing.T) {
	hub := NewMetricsHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conn := &websocket.Conn{}
			hub.Add(conn)
			hub.Remove(conn)
		}()
	}
	wg.Wait()

	hub.mu.Lock()
	remaining := len(hub.clients)
	hub.mu.Unlock()
	if remaining != 0 {
		t.Fatalf("expected empty client set, got %d", remaining)
	}
}

func TestMetricsHubSnapshotCopiesClients(t *testing.T) {
	hub := NewMetricsHub()
	first := &websocket.Conn{}
	second := &websocket.Conn{}
	hub.Add(first)
	hub.Add(second)

	conns := hub.snapshot()
	if len(conns) != 2 {
		t.Fatalf("expected 2 clients in snapshot, got %d", len(conns))
	}
	hub.Remove(first)
	hub.Remove(second)
	if len(hub.snapshot()) != 0 {
		t.Fatal("expected empty snapshot after removals")
	}
}

func TestMetricsHubBroadcastNeverBlocks(t *testing.T) {
	hub := NewMetricsHub()
	// no Run loop draining; the buffered channel overflows and drops
	for i := 0; i < 100; i++ {
		hub.Broadcast(MetricSample{})
	}
}
