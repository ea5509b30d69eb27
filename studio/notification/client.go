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

package notification

import (
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/atomic"

	logger "d7y.io/studio/internal/dflog"
	"d7y.io/studio/studio/config"
)

type client struct {
	id       string
	conn     *websocket.Conn
	send     chan []byte
	closed   *atomic.Bool
	projects map[uint]struct{}
}

func newClient(id string, conn *websocket.Conn, bufferSize int) *client {
	return &client{
		id:       id,
		conn:     conn,
		send:     make(chan []byte, bufferSize),
		closed:   atomic.NewBool(false),
		projects: make(map[uint]struct{}),
	}
}

// enqueue returns false when the send buffer is full.
func (c *client) enqueue(b []byte) bool {
	if c.closed.Load() {
		return true
	}

	select {
	case c.send <- b:
		return true
	default:
		return false
	}
}

func (c *client) close() {
	if c.closed.CAS(false, true) {
		close(c.send)
	}
}

func (c *client) readPump(h *Hub) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(h.cfg.MaxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(h.cfg.PongTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(h.cfg.PongTimeout))
	})

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.WithClient(c.id).Warnf("read failed: %s", err.Error())
			}

			return
		}

		switch msg.Type {
		case MessageTypeJoin:
			h.join(c, msg.ProjectID)
		case MessageTypeLeave:
			h.leave(c, msg.ProjectID)
		default:
			logger.WithClient(c.id).Warnf("unknown message type %q", msg.Type)
		}
	}
}

func (c *client) writePump(cfg *config.NotificationConfig) {
	ticker := time.NewTicker(cfg.PingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case b, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(cfg.WriteTimeout))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, b); err != nil {
				logger.WithClient(c.id).Warnf("write failed: %s", err.Error())
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(cfg.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
