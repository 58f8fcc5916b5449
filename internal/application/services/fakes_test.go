package services

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"

	emailDomain "user-directory-api/internal/domain/email"
	userDomain "user-directory-api/internal/domain/user"
	"user-directory-api/internal/infrastructure/mq"
)

type fakeMQ struct {
	in chan mq.Event
}

func newFakeMQ() *fakeMQ { return &fakeMQ{in: make(chan mq.Event, 64)} }

func (f *fakeMQ) Connect(ctx context.Context, dsn string) error { return nil }
func (f *fakeMQ) Init() error                                    { return nil }
func (f *fakeMQ) PublisherWorker(ctx context.Context)            {}
func (f *fakeMQ) GetInputChan() chan mq.Event                    { return f.in }
func (f *fakeMQ) GetConn() *amqp091.Connection                   { return nil }

func (f *fakeMQ) drain() []mq.Event {
	var out []mq.Event
	for {
		select {
		case e := <-f.in:
			out = append(out, e)
		default:
			return out
		}
	}
}

func newTestCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "test", Name: "general_counters"},
		[]string{"result"},
	)
}

// store is an in-memory stand-in for the users and emails tables.
type store struct {
	mu     sync.Mutex
	users  map[uuid.UUID]userDomain.User
	emails map[uuid.UUID]emailDomain.Email
}

func newStore() *store {
	return &store{
		users:  make(map[uuid.UUID]userDomain.User),
		emails: make(map[uuid.UUID]emailDomain.Email),
	}
}

type memUserRepo struct{ s *store }

func (r memUserRepo) FetchUserByID(ctx context.Context, id userDomain.UUID) (*userDomain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r memUserRepo) CreateUser(ctx context.Context, req userDomain.User) (userDomain.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	req.UUID = uuid.New()
	r.s.users[req.UUID] = req
	return req.UUID, nil
}

func (r memUserRepo) DeactivateUser(ctx context.Context, id userDomain.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return false, nil
	}
	u.Status = userDomain.StatusInactive
	r.s.users[id] = u
	return true, nil
}

func (r memUserRepo) ExistsActive(ctx context.Context, id userDomain.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	return ok && u.Status == userDomain.StatusActive, nil
}

type memEmailRepo struct{ s *store }

func (r memEmailRepo) FetchEmailByID(ctx context.Context, id emailDomain.UUID) (*emailDomain.Email, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.emails[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r memEmailRepo) FetchEmails(ctx context.Context, q emailDomain.Query) (emailDomain.Emails, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	set := make(map[string]struct{}, len(q.Addresses))
	for _, a := range q.Addresses {
		set[a] = struct{}{}
	}

	out := make(emailDomain.Emails, 0)
	for _, e := range r.s.emails {
		if len(set) > 0 {
			if _, ok := set[e.Address]; !ok {
				continue
			}
		}
		if q.UserID != nil && e.UserID != *q.UserID {
			continue
		}
		e := e
		out = append(out, &e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Address < out[j].Address })

	return out, nil
}

func (r memEmailRepo) CreateEmail(ctx context.Context, req emailDomain.AddEmail) (emailDomain.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[req.UserID]; !ok {
		return emailDomain.UUID{}, emailDomain.ErrUnknownUser
	}
	id := uuid.New()
	r.s.emails[id] = emailDomain.Email{UUID: id, Address: req.Address, UserID: req.UserID}
	return id, nil
}

func (r memEmailRepo) DeleteEmail(ctx context.Context, id emailDomain.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.emails[id]; !ok {
		return false, nil
	}
	delete(r.s.emails, id)
	return true, nil
}

// FakeEmailRepository lets a test script individual repository answers.
type FakeEmailRepository struct {
	FetchEmailByIDFunc func(ctx context.Context, id emailDomain.UUID) (*emailDomain.Email, error)
	FetchEmailsFunc    func(ctx context.Context, q emailDomain.Query) (emailDomain.Emails, error)
	CreateEmailFunc    func(ctx context.Context, req emailDomain.AddEmail) (emailDomain.UUID, error)
	DeleteEmailFunc    func(ctx context.Context, id emailDomain.UUID) (bool, error)
}

func (f *FakeEmailRepository) FetchEmailByID(ctx context.Context, id emailDomain.UUID) (*emailDomain.Email, error) {
	return f.FetchEmailByIDFunc(ctx, id)
}
func (f *FakeEmailRepository) FetchEmails(ctx context.Context, q emailDomain.Query) (emailDomain.Emails, error) {
	return f.FetchEmailsFunc(ctx, q)
}
func (f *FakeEmailRepository) CreateEmail(ctx context.Context, req emailDomain.AddEmail) (emailDomain.UUID, error) {
	return f.CreateEmailFunc(ctx, req)
}
func (f *FakeEmailRepository) DeleteEmail(ctx context.Context, id emailDomain.UUID) (bool, error) {
	return f.DeleteEmailFunc(ctx, id)
}

type directories struct {
	store  *store
	mq     *fakeMQ
	users  *UserDirectory
	emails *EmailDirectory
}

func newDirectories() directories {
	s := newStore()
	q := newFakeMQ()
	users := NewUserDirectory(memUserRepo{s}, q, newTestCounter())
	emails := NewEmailDirectory(memEmailRepo{s}, users, q, newTestCounter())

	return directories{
		store:  s,
		mq:     q,
		users:  users.(*UserDirectory),
		emails: emails.(*EmailDirectory),
	}
}
