// Package spectate streams simulation snapshots to websocket clients and
// feeds their dispatch commands back to the simulation.
package spectate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
)

// Message types.
const (
	MsgSnapshot = "snapshot"

	CmdDispatchAmbulance = "dispatch_ambulance"
	CmdDispatchTow       = "dispatch_tow"
	CmdDispatchSchoolBus = "dispatch_school_bus"
	CmdTriggerAccident   = "trigger_accident"
	CmdReset             = "reset"
)

// Envelope wraps every message in both directions.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// IsCommand reports whether t names a command clients may send.
func IsCommand(t string) bool {
	switch t {
	case CmdDispatchAmbulance, CmdDispatchTow, CmdDispatchSchoolBus, CmdTriggerAccident, CmdReset:
		return true
	}
	return false
}

// Hub tracks connected clients and fans broadcasts out to them. A client
// whose send buffer is full is dropped rather than stalling the rest.
type Hub struct {
	logger   *log.Logger
	commands chan<- string

	clients    map[*client]bool
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	done       chan struct{}

	// last is replayed to each new client so it can draw immediately.
	last []byte
}

// NewHub returns a hub that forwards client commands to commands.
func NewHub(logger *log.Logger, commands chan<- string) *Hub {
	return &Hub{
		logger:     logger,
		commands:   commands,
		clients:    map[*client]bool{},
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, 256),
		done:       make(chan struct{}),
	}
}

// Run serves registrations and broadcasts until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			return
		case c := <-h.register:
			h.clients[c] = true
			h.logger.Info("spectator joined", "client", c.id, "clients", len(h.clients))
			if h.last != nil {
				c.send <- h.last
			}
		case c := <-h.unregister:
			if h.clients[c] {
				delete(h.clients, c)
				close(c.send)
				h.logger.Info("spectator left", "client", c.id, "clients", len(h.clients))
			}
		case msg := <-h.broadcast:
			h.last = msg
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					delete(h.clients, c)
					close(c.send)
					h.logger.Warn("dropping slow spectator", "client", c.id)
				}
			}
		}
	}
}

// Broadcast queues payload for every client under msgType. It never blocks;
// when the queue is full the message is dropped.
func (h *Hub) Broadcast(msgType string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding %s payload: %w", msgType, err)
	}
	msg, err := json.Marshal(Envelope{Type: msgType, Payload: raw})
	if err != nil {
		return fmt.Errorf("encoding envelope: %w", err)
	}
	select {
	case h.broadcast <- msg:
	default:
		h.logger.Warn("broadcast queue full, dropping", "type", msgType)
	}
	return nil
}

// enqueue hands a client command to the runner without blocking the reader.
func (h *Hub) enqueue(c *client, cmd string) {
	select {
	case h.commands <- cmd:
		h.logger.Debug("command queued", "client", c.id, "command", cmd)
	default:
		h.logger.Warn("command queue full, dropping", "client", c.id, "command", cmd)
	}
}
