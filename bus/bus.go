package bus

import (
	"fmt"
	"reflect"

	"github.com/df-mc/dragonfly/server/event"
	"github.com/sirupsen/logrus"
)

// Bus is a synchronous, typed publish/subscribe dispatcher. Handlers of an event type run in the order they
// were subscribed, on the goroutine that publishes the event. A handler may cancel the event through its
// context; later handlers still run and are expected to honour ctx.Cancelled().
type Bus struct {
	log  logrus.FieldLogger
	subs map[reflect.Type][]any

	dispatching map[reflect.Type]bool
}

// New returns an empty Bus. A nil logger falls back to the logrus standard logger.
func New(log logrus.FieldLogger) *Bus {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Bus{
		log:         log,
		subs:        make(map[reflect.Type][]any),
		dispatching: make(map[reflect.Type]bool),
	}
}

// Subscribe registers h to be called for every published event of type E.
func Subscribe[E any](b *Bus, h func(ctx *event.Context[E])) {
	t := reflect.TypeFor[E]()
	b.subs[t] = append(b.subs[t], h)
}

// Publish dispatches e to all handlers of its type and returns the context, so the publisher can check
// whether any handler cancelled it. Publishing an event type from within one of its own handlers panics.
func Publish[E any](b *Bus, e E) *event.Context[E] {
	t := reflect.TypeFor[E]()
	if b.dispatching[t] {
		panic(fmt.Sprintf("bus: re-entrant publish of %v", t))
	}
	b.dispatching[t] = true
	defer delete(b.dispatching, t)

	ctx := event.C(e)
	for _, h := range b.subs[t] {
		h.(func(*event.Context[E]))(ctx)
	}
	if ctx.Cancelled() {
		b.log.WithField("event", t.String()).Debug("event cancelled")
	}
	return ctx
}

// Subscribers returns the number of handlers registered for events of type E.
func Subscribers[E any](b *Bus) int {
	return len(b.subs[reflect.TypeFor[E]()])
}
