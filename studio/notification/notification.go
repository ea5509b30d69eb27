/*
 *     Copyright 2024 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

//go:generate mockgen -destination mocks/notification_mock.go -source notification.go -package mocks

package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/atomic"

	logger "d7y.io/studio/internal/dflog"
	"d7y.io/studio/studio/config"
	"d7y.io/studio/studio/metrics"
)

// Notifier publishes project events.
type Notifier interface {
	// Publish sends event with data to the clients that joined the project.
	Publish(ctx context.Context, projectID uint, event string, data any) error
}

// Hub relays project events to websocket clients. With redis every
// replica receives every event and delivers it to its own clients.
type Hub struct {
	cfg      *config.NotificationConfig
	rdb      redis.UniversalClient
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	rooms   map[uint]map[*client]struct{}
	clients map[*client]struct{}

	connected *atomic.Int64
	dropped   *atomic.Uint64
}

// New returns a new Hub, rdb may be nil for a single replica.
func New(cfg *config.NotificationConfig, rdb redis.UniversalClient) *Hub {
	return &Hub{
		cfg: cfg,
		rdb: rdb,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		rooms:     make(map[uint]map[*client]struct{}),
		clients:   make(map[*client]struct{}),
		connected: atomic.NewInt64(0),
		dropped:   atomic.NewUint64(0),
	}
}

// Publish sends event with data to the clients that joined the project.
func (h *Hub) Publish(ctx context.Context, projectID uint, event string, data any) error {
	msg, err := NewMessage(projectID, event, data)
	if err != nil {
		return err
	}

	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	metrics.NotificationCount.WithLabelValues(event).Inc()
	logger.WithProject(projectID).Debugf("publish %s: %s", event, string(msg.Data))
	if h.rdb == nil {
		h.deliver(projectID, b)
		return nil
	}

	if err := h.rdb.Publish(ctx, h.cfg.Channel, b).Err(); err != nil {
		logger.WithProject(projectID).Warnf("relay %s failed, deliver locally: %s", event, err.Error())
		h.deliver(projectID, b)
		return err
	}

	return nil
}

// Serve relays events published by every replica until ctx is done.
func (h *Hub) Serve(ctx context.Context) error {
	if h.rdb == nil {
		<-ctx.Done()
		return nil
	}

	pubsub := h.rdb.Subscribe(ctx, h.cfg.Channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return err
	}

	logger.SocketLogger.Infof("subscribed to notification channel %s", h.cfg.Channel)
	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case m, ok := <-ch:
			if !ok {
				return nil
			}

			var msg Message
			if err := json.Unmarshal([]byte(m.Payload), &msg); err != nil {
				logger.SocketLogger.Warnf("invalid notification %q: %s", m.Payload, err.Error())
				continue
			}

			h.deliver(msg.ProjectID, []byte(m.Payload))
		}
	}
}

// ServeWS upgrades the request to a websocket client. The projectId query
// joins a project at connection time.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, projectIDs ...uint) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := newClient(uuid.NewString(), conn, h.cfg.SendBufferSize)
	h.register(c)
	for _, projectID := range projectIDs {
		h.join(c, projectID)
	}

	go c.writePump(h.cfg)
	go c.readPump(h)
	return nil
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int64 {
	return h.connected.Load()
}

// Dropped returns the number of clients dropped for being slow.
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

// Close disconnects every client.
func (h *Hub) Close() error {
	h.mu.Lock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	var errs error
	deadline := time.Now().Add(h.cfg.WriteTimeout)
	for _, c := range clients {
		msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutdown")
		if err := c.conn.WriteControl(websocket.CloseMessage, msg, deadline); err != nil && err != websocket.ErrCloseSent {
			errs = multierror.Append(errs, err)
		}

		h.unregister(c)
	}

	return errs
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	metrics.SocketClientGauge.Inc()
	h.connected.Inc()
	logger.WithClient(c.id).Infof("client connected from %s", c.conn.RemoteAddr())
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; !ok {
		h.mu.Unlock()
		return
	}

	delete(h.clients, c)
	for projectID := range c.projects {
		h.removeFromRoom(c, projectID)
	}
	h.mu.Unlock()

	c.close()
	metrics.SocketClientGauge.Dec()
	h.connected.Dec()
	logger.WithClient(c.id).Info("client disconnected")
}

func (h *Hub) join(c *client, projectID uint) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; !ok {
		return
	}

	room, ok := h.rooms[projectID]
	if !ok {
		room = make(map[*client]struct{})
		h.rooms[projectID] = room
	}

	room[c] = struct{}{}
	c.projects[projectID] = struct{}{}
	logger.WithClient(c.id).Debugf("client joined project %d", projectID)
}

func (h *Hub) leave(c *client, projectID uint) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeFromRoom(c, projectID)
	delete(c.projects, projectID)
}

// removeFromRoom requires h.mu.
func (h *Hub) removeFromRoom(c *client, projectID uint) {
	room, ok := h.rooms[projectID]
	if !ok {
		return
	}

	delete(room, c)
	if len(room) == 0 {
		delete(h.rooms, projectID)
	}
}

// deliver never blocks, clients whose buffer is full are dropped.
func (h *Hub) deliver(projectID uint, b []byte) {
	var slow []*client
	h.mu.RLock()
	for c := range h.rooms[projectID] {
		if !c.enqueue(b) {
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		logger.WithClient(c.id).Warnf("drop slow client of project %d", projectID)
		metrics.NotificationDroppedCount.Inc()
		h.dropped.Inc()
		h.unregister(c)
	}
}
