package state

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Dispatcher interface {
	Dispatch(a Action)
}

// Store holds the current State. Subscribers run synchronously, in
// subscription order, after every Dispatch.
type Store struct {
	mu     sync.Mutex
	state  State
	subs   map[int]func(State)
	order  []int
	nextID int
}

func NewStore(initial State) *Store {
	return &Store{state: initial, subs: make(map[int]func(State))}
}

func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	next := s.state
	listeners := make([]func(State), 0, len(s.order))
	for _, id := range s.order {
		listeners = append(listeners, s.subs[id])
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
}

func (s *Store) GetState() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.order = append(s.order, id)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[id]; !ok {
			return
		}
		delete(s.subs, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i:i], s.order[i+1:]...)
				break
			}
		}
	}
}

const DefaultAlertTimeout = 5 * time.Second

// Alerter queues self-clearing alerts.
type Alerter struct {
	d Dispatcher
}

func NewAlerter(d Dispatcher) *Alerter {
	return &Alerter{d: d}
}

// SetAlert shows msg and removes it after timeout, or DefaultAlertTimeout
// when timeout is not positive. It returns the alert id.
func (a *Alerter) SetAlert(msg string, t AlertType, timeout time.Duration) string {
	if timeout <= 0 {
		timeout = DefaultAlertTimeout
	}
	id := uuid.NewString()
	a.d.Dispatch(SetAlert{Alert: Alert{ID: id, Msg: msg, Type: t}})
	time.AfterFunc(timeout, func() {
		a.d.Dispatch(RemoveAlert{ID: id})
	})
	return id
}
