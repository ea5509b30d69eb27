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
	"encoding/json"
	"sync"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/atomic"
)

// Handler handles the payload of an event of a project.
type Handler func(projectID uint, data json.RawMessage)

// Dispatcher fans events out to their subscribers.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string]map[uint64]Handler
	nextID   *atomic.Uint64
}

// NewDispatcher returns an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string]map[uint64]Handler),
		nextID:   atomic.NewUint64(0),
	}
}

// Subscribe registers handler for event until the subscription is closed.
func (d *Dispatcher) Subscribe(event string, handler Handler) *Subscription {
	id := d.nextID.Inc()

	d.mu.Lock()
	handlers, ok := d.handlers[event]
	if !ok {
		handlers = make(map[uint64]Handler)
		d.handlers[event] = handlers
	}
	handlers[id] = handler
	d.mu.Unlock()

	return &Subscription{
		dispatcher: d,
		event:      event,
		id:         id,
		closed:     atomic.NewBool(false),
	}
}

// Dispatch calls the handlers of event for projectID and returns how many
// were called.
// Handlers run on the calling goroutine without the dispatcher lock held,
// so they may subscribe or close subscriptions.
func (d *Dispatcher) Dispatch(event string, projectID uint, data json.RawMessage) int {
	d.mu.RLock()
	handlers := make([]Handler, 0, len(d.handlers[event]))
	for _, handler := range d.handlers[event] {
		handlers = append(handlers, handler)
	}
	d.mu.RUnlock()

	for _, handler := range handlers {
		handler(projectID, data)
	}

	return len(handlers)
}

// Len returns the number of handlers of event.
func (d *Dispatcher) Len(event string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.handlers[event])
}

func (d *Dispatcher) remove(event string, id uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	handlers, ok := d.handlers[event]
	if !ok {
		return
	}

	delete(handlers, id)
	if len(handlers) == 0 {
		delete(d.handlers, event)
	}
}

// Subscription is a registered handler.
type Subscription struct {
	dispatcher *Dispatcher
	event      string
	id         uint64
	closed     *atomic.Bool
}

// Event returns the subscribed event.
func (s *Subscription) Event() string {
	return s.event
}

// Close removes the handler. Closing twice is a no-op.
func (s *Subscription) Close() error {
	if !s.closed.CAS(false, true) {
		return nil
	}

	s.dispatcher.remove(s.event, s.id)
	return nil
}

// Scope owns subscriptions and closes them together.
type Scope struct {
	mu            sync.Mutex
	subscriptions []*Subscription
	closed        bool
}

// NewScope returns an empty Scope.
func NewScope() *Scope {
	return &Scope{}
}

// Add hands sub over to the scope. A sub added to a closed scope is closed
// immediately.
func (s *Scope) Add(sub *Subscription) *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		sub.Close() // nolint: errcheck
		return sub
	}

	s.subscriptions = append(s.subscriptions, sub)
	return sub
}

// Len returns the number of subscriptions owned by the scope.
func (s *Scope) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subscriptions)
}

// Close closes every subscription of the scope.
func (s *Scope) Close() error {
	s.mu.Lock()
	subscriptions := s.subscriptions
	s.subscriptions = nil
	s.closed = true
	s.mu.Unlock()

	var errs error
	for _, sub := range subscriptions {
		if err := sub.Close(); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	return errs
}
