package roster

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"chanpick/internal/eventbus"
)

func TestWatcherFiresOnRosterWrite(t *testing.T) {
	path := writeRoster(t, sampleRoster)

	bus := eventbus.New()
	defer bus.Stop()

	var mu sync.Mutex
	fired := 0
	unsub := bus.Subscribe(eventbus.EventRosterChanged, func(eventbus.DomainEvent) {
		mu.Lock()
		fired++
		mu.Unlock()
	})
	defer unsub()

	w, err := NewWatcher(bus, path)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	// Give the watch loop a moment to come up before writing
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(sampleRoster+"\n"), 0644))

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		mu.Lock()
		n := fired
		mu.Unlock()
		if n > 0 {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("expected a roster change event")
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	path := writeRoster(t, sampleRoster)

	bus := eventbus.New()
	defer bus.Stop()

	var mu sync.Mutex
	fired := 0
	unsub := bus.Subscribe(eventbus.EventRosterChanged, func(eventbus.DomainEvent) {
		mu.Lock()
		fired++
		mu.Unlock()
	})
	defer unsub()

	w, err := NewWatcher(bus, path)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	time.Sleep(50 * time.Millisecond)
	sibling := path + ".bak"
	require.NoError(t, os.WriteFile(sibling, []byte("x"), 0644))

	time.Sleep(300 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	require.Zero(t, fired, "writes to other files must not fire")
}
