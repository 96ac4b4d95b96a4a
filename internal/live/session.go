package live

import (
	"context"
	"sync"
	"time"

	"polaris-api/internal/alert"
	"polaris-api/internal/model"
	"polaris-api/internal/realtime"
	"polaris-api/internal/report"
	"polaris-api/pkg/hook"
	"polaris-api/pkg/log"
)

// SearchLimit caps each report search result.
const SearchLimit = 10

// Session holds the hooks and subscriptions of one live connection. Handle
// is called from a single goroutine. Release frees everything and may be
// called from any goroutine.
type Session struct {
	l     log.Logger
	sc    model.Scope
	svc   Services
	sub   realtime.Subscriber
	emit  func(Frame)
	clock func() time.Time

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	watches  map[View]*watch
	subs     map[subKey]*realtime.Subscription
	search   *hook.Search[model.Report]
	alerts   *hook.Optimistic[model.Alert]
	released bool
	wg       sync.WaitGroup
}

type subKey struct {
	collection string
	event      realtime.Event
}

// watch is one watched view. The first frame is either the state captured
// right after subscribing or the first published one, whichever comes first.
type watch struct {
	q     *hook.Query[any]
	unsub func()
	stale []*realtime.Subscription

	mu        sync.Mutex
	delivered bool
}

// NewSession builds a session. sub may be nil, which disables subscribe
// and change driven refetches. emit must not block.
func NewSession(ctx context.Context, l log.Logger, sc model.Scope, svc Services, sub realtime.Subscriber, emit func(Frame)) *Session {
	ctx, cancel := context.WithCancel(ctx)
	return &Session{
		l:       l,
		sc:      sc,
		svc:     svc,
		sub:     sub,
		emit:    emit,
		clock:   time.Now,
		ctx:     ctx,
		cancel:  cancel,
		watches: make(map[View]*watch),
		subs:    make(map[subKey]*realtime.Subscription),
	}
}

// Handle runs one command. Failures are reported to the client as error
// frames and returned.
func (s *Session) Handle(cmd Command) error {
	err := s.handle(cmd)
	if err != nil {
		s.emit(Frame{Type: FrameError, View: cmd.View, Error: err.Error(), At: s.clock()})
	}
	return err
}

func (s *Session) handle(cmd Command) error {
	s.mu.Lock()
	released := s.released
	s.mu.Unlock()
	if released {
		return ErrSessionClosed
	}

	switch cmd.Action {
	case ActionWatch:
		return s.watch(cmd.View, cmd.Params)
	case ActionRefetch:
		return s.refetch(cmd.View)
	case ActionUnwatch:
		return s.unwatch(cmd.View)
	case ActionSearch:
		s.setQuery(cmd.Query)
		return nil
	case ActionUpdateAlert:
		return s.updateAlert(cmd.ID, model.AlertStatus(cmd.Status))
	case ActionSubscribe:
		return s.subscribe(cmd.Collection, cmd.Event)
	case ActionUnsubscribe:
		return s.unsubscribe(cmd.Collection, cmd.Event)
	}
	return ErrUnknownAction
}

func (s *Session) watch(view View, p Params) error {
	op, err := s.svc.operation(s.sc, view, p)
	if err != nil {
		return err
	}

	s.mu.Lock()
	w, ok := s.watches[view]
	s.mu.Unlock()
	if ok {
		w.q.Update(op, p)
		return nil
	}

	w = &watch{}
	w.q = hook.NewQuery(s.ctx, op, p)
	w.unsub = w.q.Subscribe(func(st hook.State[any]) {
		w.mu.Lock()
		defer w.mu.Unlock()
		w.delivered = true
		s.emitState(view, st)
	})
	w.mu.Lock()
	if !w.delivered {
		w.delivered = true
		s.emitState(view, w.q.State())
	}
	w.mu.Unlock()

	w.stale = s.refetchOnChange(w.q, collections(view))

	s.mu.Lock()
	if s.released {
		s.mu.Unlock()
		w.release()
		return ErrSessionClosed
	}
	s.watches[view] = w
	s.mu.Unlock()
	return nil
}

// refetchOnChange refetches q whenever one of collections changes.
func (s *Session) refetchOnChange(q *hook.Query[any], collections []string) []*realtime.Subscription {
	if s.sub == nil {
		return nil
	}

	subs := make([]*realtime.Subscription, 0, len(collections))
	for _, c := range collections {
		sub, err := s.sub.Subscribe(s.ctx, c, realtime.EventAll, func(realtime.Change) { q.Refetch() })
		if err != nil {
			s.l.Warnf(s.ctx, "internal.live.Session.refetchOnChange.Subscribe: %s: %v", c, err)
			continue
		}
		subs = append(subs, sub)
	}
	return subs
}

func (s *Session) refetch(view View) error {
	s.mu.Lock()
	w, ok := s.watches[view]
	s.mu.Unlock()
	if !ok {
		return ErrNotWatching
	}

	w.q.Refetch()
	return nil
}

func (s *Session) unwatch(view View) error {
	s.mu.Lock()
	w, ok := s.watches[view]
	delete(s.watches, view)
	s.mu.Unlock()
	if !ok {
		return ErrNotWatching
	}

	w.release()
	return nil
}

func (w *watch) release() {
	for _, sub := range w.stale {
		sub.Unsubscribe()
	}
	w.unsub()
	w.q.Close()
	w.q.Wait()
}

func (s *Session) setQuery(query string) {
	s.mu.Lock()
	if s.released {
		s.mu.Unlock()
		return
	}
	if s.search == nil {
		s.search = hook.NewSearch(s.ctx, func(ctx context.Context, q string) ([]model.Report, error) {
			return s.svc.Report.Search(ctx, s.sc, report.SearchInput{Query: q, Limit: SearchLimit})
		}, hook.DefaultDebounce)
		s.search.Subscribe(func(st hook.SearchState[model.Report]) {
			f := Frame{Type: FrameState, View: ViewSearch, Data: st.Results, Loading: st.Loading, At: s.clock()}
			if st.Err != nil {
				f.Error = st.Err.Error()
			}
			s.emit(f)
		})
	}
	search := s.search
	s.mu.Unlock()

	search.SetQuery(query)
}

// updateAlert patches the alert's status on the session's list at once and
// rolls it back if the write fails. The list is loaded on first use.
func (s *Session) updateAlert(id string, status model.AlertStatus) error {
	if id == "" {
		return ErrMissingID
	}
	if !status.IsValid() {
		return alert.ErrInvalidStatus
	}

	s.mu.Lock()
	if s.released {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	if s.alerts == nil {
		s.alerts = hook.NewOptimistic[model.Alert](nil, func(a model.Alert) string { return a.ID })
		s.alerts.Subscribe(func(st hook.OptimisticState[model.Alert]) {
			f := Frame{Type: FrameState, View: ViewAlertUpdates, Data: st.Items, Loading: st.Loading, At: s.clock()}
			if st.Err != nil {
				f.Error = st.Err.Error()
			}
			s.emit(f)
		})
	}
	list := s.alerts
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()

		if !contains(list.State().Items, id) {
			alerts, err := s.svc.Alert.List(s.ctx, s.sc, alert.ListInput{})
			if err != nil {
				s.emit(Frame{Type: FrameError, View: ViewAlertUpdates, Error: err.Error(), At: s.clock()})
				return
			}
			list.Set(alerts)
		}

		err := list.Update(s.ctx, id,
			func(a model.Alert) model.Alert {
				a.Status = status
				return a
			},
			func(ctx context.Context, patched model.Alert) (model.Alert, error) {
				return s.svc.Alert.UpdateStatus(ctx, s.sc, alert.UpdateStatusInput{ID: patched.ID, Status: patched.Status})
			},
		)
		if err == hook.ErrItemNotFound {
			s.emit(Frame{Type: FrameError, View: ViewAlertUpdates, Error: alert.ErrAlertNotFound.Error(), At: s.clock()})
		}
	}()
	return nil
}

func contains(alerts []model.Alert, id string) bool {
	for _, a := range alerts {
		if a.ID == id {
			return true
		}
	}
	return false
}

func (s *Session) subscribe(collection string, event realtime.Event) error {
	if s.sub == nil {
		return ErrRealtimeOff
	}
	if event == "" {
		event = realtime.EventAll
	}

	key := subKey{collection: collection, event: event}
	s.mu.Lock()
	_, ok := s.subs[key]
	s.mu.Unlock()
	if ok {
		return nil
	}

	sub, err := s.sub.Subscribe(s.ctx, collection, event, func(c realtime.Change) {
		s.emit(Frame{Type: FrameChange, Change: &c, At: s.clock()})
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.released {
		s.mu.Unlock()
		sub.Unsubscribe()
		return ErrSessionClosed
	}
	s.subs[key] = sub
	s.mu.Unlock()
	return nil
}

func (s *Session) unsubscribe(collection string, event realtime.Event) error {
	if event == "" {
		event = realtime.EventAll
	}

	key := subKey{collection: collection, event: event}
	s.mu.Lock()
	sub, ok := s.subs[key]
	delete(s.subs, key)
	s.mu.Unlock()
	if !ok {
		return ErrNotSubscribed
	}

	sub.Unsubscribe()
	return nil
}

func (s *Session) emitState(view View, st hook.State[any]) {
	f := Frame{Type: FrameState, View: view, Data: st.Data, Loading: st.Loading, At: s.clock()}
	if st.Err != nil {
		f.Error = st.Message()
	}
	s.emit(f)
}

// Release drops every watch, search, alert list and subscription and waits
// for their goroutines. It is idempotent.
func (s *Session) Release() {
	s.mu.Lock()
	if s.released {
		s.mu.Unlock()
		return
	}
	s.released = true
	watches, subs := s.watches, s.subs
	s.watches, s.subs = nil, nil
	search, alerts := s.search, s.alerts
	s.mu.Unlock()

	for _, sub := range subs {
		sub.Unsubscribe()
	}
	s.cancel()
	for _, w := range watches {
		w.release()
	}
	if search != nil {
		search.Close()
		search.Wait()
	}
	s.wg.Wait()
	if alerts != nil {
		alerts.Close()
	}
}
