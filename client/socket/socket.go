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

package socket

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/atomic"

	logger "d7y.io/studio/internal/dflog"
	"d7y.io/studio/studio/notification"
)

const (
	// DefaultWriteTimeout is the deadline of one client message.
	DefaultWriteTimeout = 10 * time.Second

	wsPath = "/ws"
)

// ErrClosed is returned when writing to a closed client.
var ErrClosed = errors.New("socket is closed")

// Client receives project events from the studio notification channel.
// Events are dispatched on the read goroutine in arrival order.
type Client struct {
	*Dispatcher

	conn    *websocket.Conn
	writeMu sync.Mutex
	closed  *atomic.Bool
	done    chan struct{}
	err     error
}

// Dial connects to the notification channel of endpoint and joins
// projectIDs at connection time. Endpoint is the http address of the studio.
func Dial(ctx context.Context, endpoint string, projectIDs ...uint) (*Client, error) {
	u, err := socketURL(endpoint, projectIDs)
	if err != nil {
		return nil, err
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u, nil)
	if err != nil {
		return nil, err
	}

	c := &Client{
		Dispatcher: NewDispatcher(),
		conn:       conn,
		closed:     atomic.NewBool(false),
		done:       make(chan struct{}),
	}

	go c.readLoop()
	return c, nil
}

func socketURL(endpoint string, projectIDs []uint) (string, error) {
	u, err := url.Parse(strings.TrimSuffix(endpoint, "/") + wsPath)
	if err != nil {
		return "", err
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	}

	query := url.Values{}
	for _, projectID := range projectIDs {
		query.Add("projectId", strconv.FormatUint(uint64(projectID), 10))
	}
	u.RawQuery = query.Encode()

	return u.String(), nil
}

// Join receives the events of projectID as well.
func (c *Client) Join(projectID uint) error {
	return c.write(notification.ClientMessage{Type: notification.MessageTypeJoin, ProjectID: projectID})
}

// Leave stops receiving the events of projectID.
func (c *Client) Leave(projectID uint) error {
	return c.write(notification.ClientMessage{Type: notification.MessageTypeLeave, ProjectID: projectID})
}

func (c *Client) write(msg notification.ClientMessage) error {
	if c.closed.Load() {
		return ErrClosed
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(DefaultWriteTimeout)); err != nil {
		return err
	}

	return c.conn.WriteJSON(msg)
}

func (c *Client) readLoop() {
	defer close(c.done)

	for {
		var msg notification.Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if !c.closed.Load() && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.SocketLogger.Warnf("read notification failed: %s", err.Error())
				c.err = err
			}

			return
		}

		logger.SocketLogger.Debugf("receive %s of project %d", msg.Event, msg.ProjectID)
		c.Dispatch(msg.Event, msg.ProjectID, msg.Data)
	}
}

// Done is closed once the connection is gone.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// Err returns the read error that ended the connection, if any. It is set
// once Done is closed.
func (c *Client) Err() error {
	<-c.done
	return c.err
}

// Close closes the connection and waits for the read goroutine.
func (c *Client) Close() error {
	if !c.closed.CAS(false, true) {
		return nil
	}

	c.writeMu.Lock()
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	err := c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(DefaultWriteTimeout))
	c.writeMu.Unlock()
	if err != nil && !errors.Is(err, websocket.ErrCloseSent) {
		logger.SocketLogger.Warnf("write close message failed: %s", err.Error())
	}

	select {
	case <-c.done:
	case <-time.After(DefaultWriteTimeout):
	}

	return c.conn.Close()
}
