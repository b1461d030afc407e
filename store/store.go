// Package store provides a Flux-style action store. Handlers are
// registered by action name and dispatched against the store's state;
// subscribers are notified with the result of every handled action.
package store

import (
	"slices"

	"github.com/theflywheel/dhash"
)

// Handler computes the next state from the current one.
type Handler[S any] func(state S) S

// Subscriber observes the state produced by a dispatched action.
type Subscriber[S any] func(state S, action string)

// Subscription identifies a registered subscriber.
type Subscription uint64

type subscriber[S any] struct {
	id Subscription
	fn Subscriber[S]
}

// Store holds a state value, its action handlers and its subscribers.
// It is not safe for concurrent use.
type Store[S any] struct {
	handlers    *dhash.Table[Handler[S]]
	subscribers []subscriber[S]
	nextID      Subscription
	state       S
	logger      *dhash.Logger
}

// Option configures a Store.
type Option func(*options)

type options struct {
	tableOpts []dhash.Option
	logger    *dhash.Logger
}

// WithTableOptions passes options to the handler registry table.
func WithTableOptions(opts ...dhash.Option) Option {
	return func(o *options) {
		o.tableOpts = append(o.tableOpts, opts...)
	}
}

// WithLogger configures the logger used for dispatches. The logger is
// also handed to the handler registry.
func WithLogger(l *dhash.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = dhash.NoopLogger()
		}
		o.logger = l
	}
}

// New creates a store holding initial.
func New[S any](initial S, opts ...Option) *Store[S] {
	o := options{logger: dhash.NoopLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	tableOpts := append([]dhash.Option{dhash.WithLogger(o.logger)}, o.tableOpts...)

	return &Store[S]{
		handlers: dhash.New[Handler[S]](0, tableOpts...),
		state:    initial,
		logger:   o.logger,
		nextID:   1,
	}
}

// CreateAction registers h as the handler for action, replacing any
// handler registered before. A nil handler is ignored.
func (s *Store[S]) CreateAction(action string, h Handler[S]) {
	if h == nil {
		s.logger.Warn("ignoring nil handler", "action", action)
		return
	}
	s.handlers.Insert(action, h)
}

// Subscribe registers fn to be called after every handled dispatch.
func (s *Store[S]) Subscribe(fn Subscriber[S]) Subscription {
	id := s.nextID
	s.nextID++
	s.subscribers = append(s.subscribers, subscriber[S]{id: id, fn: fn})
	return id
}

// Unsubscribe removes a subscriber. It reports whether id was registered.
// Removing a subscriber during a dispatch takes effect from the next
// dispatch.
func (s *Store[S]) Unsubscribe(id Subscription) bool {
	for i, sub := range s.subscribers {
		if sub.id == id {
			// Copy so an in-flight Dispatch keeps ranging over the old list.
			s.subscribers = slices.Delete(slices.Clone(s.subscribers), i, i+1)
			return true
		}
	}
	return false
}

// Dispatch runs the handler registered for action and notifies every
// subscriber, in subscription order, with the new state. An unknown
// action leaves the state as is and notifies nobody.
func (s *Store[S]) Dispatch(action string) S {
	h, ok := s.handlers.Get(action)
	if !ok {
		s.logger.Debug("no handler for action", "action", action)
		return s.state
	}

	s.state = h(s.state)

	for _, sub := range s.subscribers {
		sub.fn(s.state, action)
	}

	s.logger.Debug("action dispatched",
		"action", action,
		"subscribers", len(s.subscribers),
	)
	return s.state
}

// State returns the current state.
func (s *Store[S]) State() S {
	return s.state
}
