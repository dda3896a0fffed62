// Package ws streams draft snapshots to spectating browser tabs. The stream
// is read-only: clients never send commands, they just watch the board update
// after every accepted transition.
package ws

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// Broadcaster fans out draft snapshots per analyst session.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[uuid.UUID]map[*websocket.Conn]bool
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[uuid.UUID]map[*websocket.Conn]bool)}
}

// Subscribe registers a connection to an analyst's draft stream.
func (b *Broadcaster) Subscribe(userID uuid.UUID, conn *websocket.Conn) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs[userID] == nil {
		b.subs[userID] = make(map[*websocket.Conn]bool)
	}
	b.subs[userID][conn] = true
}

// Unsubscribe drops the connection without closing it; the caller owns the
// connection lifetime.
func (b *Broadcaster) Unsubscribe(userID uuid.UUID, conn *websocket.Conn) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.subs[userID], conn)
	if len(b.subs[userID]) == 0 {
		delete(b.subs, userID)
	}
}

// Publish pushes a snapshot to every subscriber of the analyst's session.
// Dead connections are pruned on write failure.
func (b *Broadcaster) Publish(userID uuid.UUID, snapshot interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for conn := range b.subs[userID] {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(snapshot); err != nil {
			log.Printf("ERROR [ws.Publish] dropping subscriber: %v", err)
			conn.Close()
			delete(b.subs[userID], conn)
		}
	}
	if len(b.subs[userID]) == 0 {
		delete(b.subs, userID)
	}
}
