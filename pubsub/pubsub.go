package pubsub

import (
	"errors"
	"sync"

	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
)

var (
	// ErrDuplicateClientID is returned when a client tries to register
	// a subscriber with an existing client ID.
	ErrDuplicateClientID = errors.New("clientID already exists")

	// ErrAlreadySubscribed is returned when a subscriber subscribes
	// twice to the same topic.
	ErrAlreadySubscribed = errors.New("already subscribed")

	// ErrSubscriptionNotFound is returned when unsubscribing from a
	// topic that was never subscribed.
	ErrSubscriptionNotFound = errors.New("subscription not found")

	ErrNilHandler = errors.New("handler is nil")
)

// Topic routes events to the subscribers interested in them.
type Topic string

// ClientID names one subscriber.
type ClientID string

// Event is anything the engine announces; implementations live next
// to the module that emits them.
type Event interface {
	GetTopic() Topic
}

// Handler consumes one event. Handlers run on the subscriber's own
// goroutines; use Subscriber.Wait to drain before inspecting effects.
type Handler func(Event)

type operation int

const (
	opSub operation = iota
	opPub
	opUnsub
	opShutdown
)

type cmd struct {
	op operation

	topic      Topic
	subscriber *Subscriber
	clientID   ClientID

	event Event
}

// Publisher fans events out to subscribers. All bookkeeping runs on a
// single loop goroutine, so subscribe/publish ordering is serialized.
type Publisher struct {
	cmn.BaseService
	name string

	cmds chan cmd

	mtx           sync.RWMutex
	subscribers   map[ClientID]map[Topic]struct{}
	subscriptions map[Topic]map[ClientID]*Subscriber
}

func NewPublisher(name string, logger log.Logger) *Publisher {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	publisher := &Publisher{
		name:        name,
		cmds:        make(chan cmd),
		subscribers: make(map[ClientID]map[Topic]struct{}),
	}
	publisher.BaseService = *cmn.NewBaseService(logger, name, publisher)
	return publisher
}

func (publisher *Publisher) OnStart() error {
	publisher.subscriptions = make(map[Topic]map[ClientID]*Subscriber)
	go publisher.loop()
	return nil
}

func (publisher *Publisher) OnStop() {
	publisher.cmds <- cmd{op: opShutdown}
}

// Publish hands an event to the dispatch loop. It blocks until the
// loop accepts it or the publisher stops.
func (publisher *Publisher) Publish(event Event) {
	select {
	case publisher.cmds <- cmd{op: opPub, event: event}:
	case <-publisher.Quit():
	}
}

// HasSubscribed reports whether the client currently subscribes to
// the topic.
func (publisher *Publisher) HasSubscribed(clientID ClientID, topic Topic) bool {
	publisher.mtx.RLock()
	defer publisher.mtx.RUnlock()
	topics, ok := publisher.subscribers[clientID]
	if !ok {
		return false
	}
	_, ok = topics[topic]
	return ok
}

// NewSubscriber registers a client ID and returns its subscriber
// handle.
func (publisher *Publisher) NewSubscriber(clientID ClientID) (*Subscriber, error) {
	publisher.mtx.Lock()
	defer publisher.mtx.Unlock()
	if _, ok := publisher.subscribers[clientID]; ok {
		return nil, ErrDuplicateClientID
	}
	publisher.subscribers[clientID] = make(map[Topic]struct{})
	return &Subscriber{
		clientID: clientID,
		pub:      publisher,
		handlers: make(map[Topic]Handler),
	}, nil
}

func (publisher *Publisher) loop() {
	for c := range publisher.cmds {
		switch c.op {
		case opShutdown:
			publisher.mtx.Lock()
			publisher.subscribers = make(map[ClientID]map[Topic]struct{})
			publisher.subscriptions = make(map[Topic]map[ClientID]*Subscriber)
			publisher.mtx.Unlock()
			return

		case opSub:
			subs, ok := publisher.subscriptions[c.topic]
			if !ok {
				subs = make(map[ClientID]*Subscriber)
				publisher.subscriptions[c.topic] = subs
			}
			subs[c.clientID] = c.subscriber

		case opUnsub:
			if subs, ok := publisher.subscriptions[c.topic]; ok {
				delete(subs, c.clientID)
			}

		case opPub:
			for _, sub := range publisher.subscriptions[c.event.GetTopic()] {
				sub.dispatch(c.event)
			}
		}
	}
}

// Subscriber consumes events for one client ID. Handlers for
// different topics may run concurrently.
type Subscriber struct {
	clientID ClientID
	pub      *Publisher

	mtx      sync.RWMutex
	handlers map[Topic]Handler
	wg       sync.WaitGroup
}

// Subscribe registers a handler for the topic.
func (s *Subscriber) Subscribe(topic Topic, handler Handler) error {
	if handler == nil {
		return ErrNilHandler
	}
	if s.pub.HasSubscribed(s.clientID, topic) {
		return ErrAlreadySubscribed
	}

	s.mtx.Lock()
	s.handlers[topic] = handler
	s.mtx.Unlock()

	select {
	case s.pub.cmds <- cmd{op: opSub, topic: topic, subscriber: s, clientID: s.clientID}:
		s.pub.mtx.Lock()
		s.pub.subscribers[s.clientID][topic] = struct{}{}
		s.pub.mtx.Unlock()
		return nil
	case <-s.pub.Quit():
		return nil
	}
}

// Unsubscribe removes the handler for the topic.
func (s *Subscriber) Unsubscribe(topic Topic) error {
	if !s.pub.HasSubscribed(s.clientID, topic) {
		return ErrSubscriptionNotFound
	}

	s.mtx.Lock()
	delete(s.handlers, topic)
	s.mtx.Unlock()

	select {
	case s.pub.cmds <- cmd{op: opUnsub, topic: topic, clientID: s.clientID}:
		s.pub.mtx.Lock()
		delete(s.pub.subscribers[s.clientID], topic)
		s.pub.mtx.Unlock()
		return nil
	case <-s.pub.Quit():
		return nil
	}
}

// Wait blocks until every handler invocation dispatched so far has
// returned.
func (s *Subscriber) Wait() {
	s.wg.Wait()
}

func (s *Subscriber) dispatch(event Event) {
	s.mtx.RLock()
	handler, ok := s.handlers[event.GetTopic()]
	s.mtx.RUnlock()
	if !ok {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		handler(event)
	}()
}
