package service_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"event-ticketing/internal/model"
	"event-ticketing/internal/queue"
	"event-ticketing/internal/repository"
	apperrors "event-ticketing/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// memStore 以記憶體模擬 events / bookings / users / booking_activities。
// 與 Postgres 一樣只有 FindByEventIDWithLock 會取得活動列鎖，鎖到交易結束才釋放；
// 交易失敗時還原被鎖住活動的資料（該活動的訂位只會在持有鎖時變動）。
type memStore struct {
	mu sync.Mutex

	events     map[int]*model.Event
	bookings   map[int]*model.Booking
	users      map[int]*model.User
	activities []*model.BookingActivity
	rowLocks   map[int]*sync.Mutex

	nextEventID    int
	nextBookingID  int
	nextUserID     int
	nextActivityID int64
}

func newMemStore() *memStore {
	return &memStore{
		events:   make(map[int]*model.Event),
		bookings: make(map[int]*model.Booking),
		users:    make(map[int]*model.User),
		rowLocks: make(map[int]*sync.Mutex),
	}
}

// memTx 記錄交易持有的列鎖與還原動作；其餘 pgx.Tx 方法不會被呼叫
type memTx struct {
	pgx.Tx
	held map[int]*sync.Mutex
	undo []func()
}

// --- TxManager ---

func (s *memStore) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx := &memTx{held: make(map[int]*sync.Mutex)}
	err := fn(tx)
	if err != nil {
		s.mu.Lock()
		for i := len(tx.undo) - 1; i >= 0; i-- {
			tx.undo[i]()
		}
		s.mu.Unlock()
	}
	for _, l := range tx.held {
		l.Unlock()
	}
	return err
}

// WithReadOnlyTx 不取鎖；測試只在寫入結束後讀取
func (s *memStore) WithReadOnlyTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(&memTx{held: make(map[int]*sync.Mutex)})
}

// lockEvent 等同 SELECT ... FOR UPDATE
func (s *memStore) lockEvent(tx pgx.Tx, eventID uuid.UUID) (*model.Event, error) {
	mt, ok := tx.(*memTx)
	if !ok || mt == nil {
		return nil, errors.New("memstore: row lock outside transaction")
	}

	s.mu.Lock()
	e := s.eventByUUID(eventID)
	if e == nil {
		s.mu.Unlock()
		return nil, apperrors.ErrEventNotFound
	}
	id := e.ID
	if _, held := mt.held[id]; held {
		c := *e
		s.mu.Unlock()
		return &c, nil
	}
	l, ok := s.rowLocks[id]
	if !ok {
		l = &sync.Mutex{}
		s.rowLocks[id] = l
	}
	s.mu.Unlock()

	l.Lock()

	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok = s.events[id]
	if !ok {
		// 等鎖期間活動已被刪除
		l.Unlock()
		return nil, apperrors.ErrEventNotFound
	}
	mt.held[id] = l
	mt.undo = append(mt.undo, s.restorePoint(id))
	c := *e
	return &c, nil
}

// restorePoint 記下活動與其訂位目前的狀態；回傳的函式須在持有 mu 時呼叫
func (s *memStore) restorePoint(eventID int) func() {
	event := *s.events[eventID]
	bookings := make([]model.Booking, 0)
	for _, b := range s.bookings {
		if b.EventID == eventID {
			bookings = append(bookings, *b)
		}
	}
	return func() {
		e := event
		s.events[eventID] = &e
		for id, b := range s.bookings {
			if b.EventID == eventID {
				delete(s.bookings, id)
			}
		}
		for _, b := range bookings {
			b := b
			s.bookings[b.ID] = &b
		}
	}
}

// --- helpers ---

func (s *memStore) addUser(username string, isAdmin bool) *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextUserID++
	u := &model.User{ID: s.nextUserID, Username: username, Email: username + "@example.com", IsAdmin: isAdmin}
	s.users[u.ID] = u
	return u
}

func (s *memStore) eventByUUID(id uuid.UUID) *model.Event {
	for _, e := range s.events {
		if e.EventID == id {
			return e
		}
	}
	return nil
}

func (s *memStore) sortedBookings(filter func(*model.Booking) bool) []*model.Booking {
	out := make([]*model.Booking, 0)
	for _, b := range s.bookings {
		if filter(b) {
			c := *b
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// --- EventRepository ---

type memEventRepo struct{ s *memStore }

var _ repository.EventRepository = memEventRepo{}

func (r memEventRepo) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.events {
		if e.Name == event.Name && e.Venue == event.Venue {
			return nil, apperrors.ErrEventAlreadyExists
		}
	}
	r.s.nextEventID++
	created := *event
	created.ID = r.s.nextEventID
	created.Version = 1
	created.CreatedAt = time.Now().UTC()
	created.UpdatedAt = created.CreatedAt
	r.s.events[created.ID] = &created
	out := created
	return &out, nil
}

func (r memEventRepo) List(ctx context.Context) ([]*model.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*model.Event, 0, len(r.s.events))
	for _, e := range r.s.events {
		c := *e
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memEventRepo) FindByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error) {
	return r.FindByEventIDTx(ctx, nil, eventID)
}

func (r memEventRepo) FindByEventIDTx(ctx context.Context, tx pgx.Tx, eventID uuid.UUID) (*model.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e := r.s.eventByUUID(eventID)
	if e == nil {
		return nil, apperrors.ErrEventNotFound
	}
	c := *e
	return &c, nil
}

func (r memEventRepo) FindByEventIDWithLock(ctx context.Context, tx pgx.Tx, eventID uuid.UUID) (*model.Event, error) {
	return r.s.lockEvent(tx, eventID)
}

func (r memEventRepo) Update(ctx context.Context, tx pgx.Tx, id int, params model.UpdateEventParams) (*model.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.events[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	name, venue := e.Name, e.Venue
	if params.Name != nil {
		name = *params.Name
	}
	if params.Venue != nil {
		venue = *params.Venue
	}
	for _, other := range r.s.events {
		if other.ID != id && other.Name == name && other.Venue == venue {
			return nil, apperrors.ErrEventAlreadyExists
		}
	}
	e.Name, e.Venue = name, venue
	if params.Date != nil {
		e.Date = *params.Date
	}
	if params.Price != nil {
		e.Price = *params.Price
	}
	if params.Description != nil {
		e.Description = *params.Description
	}
	if params.Status != nil {
		e.Status = *params.Status
	}
	e.Version++
	e.UpdatedAt = time.Now().UTC()
	c := *e
	return &c, nil
}

func (r memEventRepo) SetCapacity(ctx context.Context, tx pgx.Tx, id int, total int, available int) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.events[id]
	if !ok {
		return 0, apperrors.ErrEventNotFound
	}
	// 對應 events_capacity_check
	if available < 0 || available > total {
		return 0, apperrors.ErrCapacityInvariant
	}
	e.TotalTickets = total
	e.AvailableTickets = available
	e.Version++
	return e.Version, nil
}

func (r memEventRepo) Delete(ctx context.Context, tx pgx.Tx, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.events[id]; !ok {
		return apperrors.ErrEventNotFound
	}
	delete(r.s.events, id)
	// ON DELETE CASCADE
	for bid, b := range r.s.bookings {
		if b.EventID == id {
			delete(r.s.bookings, bid)
		}
	}
	return nil
}

// --- BookingRepository ---

type memBookingRepo struct{ s *memStore }

var _ repository.BookingRepository = memBookingRepo{}

func (r memBookingRepo) ListByUserID(ctx context.Context, userID int) ([]*model.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := r.s.sortedBookings(func(b *model.Booking) bool { return b.UserID == userID })
	for _, b := range out {
		if e, ok := r.s.events[b.EventID]; ok {
			b.Event = &model.EventSummary{EventID: e.EventID, Name: e.Name, Venue: e.Venue, Date: e.Date}
		}
	}
	return out, nil
}

func (r memBookingRepo) Create(ctx context.Context, tx pgx.Tx, booking *model.Booking) (*model.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !booking.Status.IsValid() {
		return nil, apperrors.ErrInvalidBookingStatus
	}
	for _, b := range r.s.bookings {
		if b.EventID == booking.EventID && b.UserID == booking.UserID {
			return nil, apperrors.ErrAlreadyBooked
		}
	}
	r.s.nextBookingID++
	created := *booking
	created.ID = r.s.nextBookingID
	created.CreatedAt = time.Now().UTC()
	created.UpdatedAt = created.CreatedAt
	r.s.bookings[created.ID] = &created
	out := created
	return &out, nil
}

func (r memBookingRepo) FindActive(ctx context.Context, tx pgx.Tx, eventID int, userID int) (*model.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, b := range r.s.bookings {
		if b.EventID == eventID && b.UserID == userID {
			c := *b
			return &c, nil
		}
	}
	return nil, apperrors.ErrBookingNotFound
}

func (r memBookingRepo) NextWaiting(ctx context.Context, tx pgx.Tx, eventID int) (*model.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	waiting := r.s.sortedBookings(func(b *model.Booking) bool {
		return b.EventID == eventID && b.Status == model.BookingStatusWaiting
	})
	if len(waiting) == 0 {
		return nil, apperrors.ErrBookingNotFound
	}
	return waiting[0], nil
}

func (r memBookingRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id int, status model.BookingStatus) (*model.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.bookings[id]
	if !ok {
		return nil, apperrors.ErrBookingNotFound
	}
	b.Status = status
	b.UpdatedAt = time.Now().UTC()
	c := *b
	return &c, nil
}

func (r memBookingRepo) Delete(ctx context.Context, tx pgx.Tx, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.bookings[id]; !ok {
		return apperrors.ErrBookingNotFound
	}
	delete(r.s.bookings, id)
	return nil
}

func (r memBookingRepo) CountByEvent(ctx context.Context, tx pgx.Tx, eventID int) (repository.BookingCounts, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var counts repository.BookingCounts
	for _, b := range r.s.bookings {
		if b.EventID != eventID {
			continue
		}
		switch b.Status {
		case model.BookingStatusConfirmed:
			counts.Confirmed++
		case model.BookingStatusWaiting:
			counts.Waiting++
		}
	}
	return counts, nil
}

func (r memBookingRepo) ListUserIDs(ctx context.Context, tx pgx.Tx, eventID int, status model.BookingStatus) ([]int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ids := make([]int, 0)
	for _, b := range r.s.sortedBookings(func(b *model.Booking) bool { return b.EventID == eventID && b.Status == status }) {
		ids = append(ids, b.UserID)
	}
	return ids, nil
}

// --- UserRepository ---

type memUserRepo struct{ s *memStore }

var _ repository.UserRepository = memUserRepo{}

func (r memUserRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email || u.Username == user.Username {
			return nil, apperrors.ErrUserAlreadyExists
		}
	}
	r.s.nextUserID++
	created := *user
	created.ID = r.s.nextUserID
	r.s.users[created.ID] = &created
	out := created
	return &out, nil
}

func (r memUserRepo) List(ctx context.Context) ([]*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*model.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		c := *u
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memUserRepo) FindByID(ctx context.Context, id int) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	c := *u
	return &c, nil
}

func (r memUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// --- ActivityRepository ---

type memActivityRepo struct{ s *memStore }

var _ repository.ActivityRepository = memActivityRepo{}

func (r memActivityRepo) Create(ctx context.Context, activity *model.BookingActivity) (*model.BookingActivity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextActivityID++
	activity.ID = r.s.nextActivityID
	r.s.activities = append(r.s.activities, activity)
	return activity, nil
}

func (r memActivityRepo) ListByEventID(ctx context.Context, eventID uuid.UUID, limit int) ([]*model.BookingActivity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*model.BookingActivity, 0)
	for i := len(r.s.activities) - 1; i >= 0; i-- {
		if r.s.activities[i].EventID == eventID {
			out = append(out, r.s.activities[i])
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// --- EventStatusCache ---

type memStatusCache struct {
	mu      sync.Mutex
	entries map[uuid.UUID]model.EventStatusSnapshot
	removed map[uuid.UUID]bool
}

func newMemStatusCache() *memStatusCache {
	return &memStatusCache{
		entries: make(map[uuid.UUID]model.EventStatusSnapshot),
		removed: make(map[uuid.UUID]bool),
	}
}

func (c *memStatusCache) Get(ctx context.Context, eventID uuid.UUID) (*model.EventStatusSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.removed[eventID] {
		return nil, apperrors.ErrEventNotFound
	}
	s, ok := c.entries[eventID]
	if !ok {
		return nil, apperrors.ErrCacheMiss
	}
	return &s, nil
}

func (c *memStatusCache) Set(ctx context.Context, eventID uuid.UUID, status model.EventStatusSnapshot) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.removed[eventID] {
		return false, nil
	}
	if cur, ok := c.entries[eventID]; ok && cur.Version >= status.Version {
		return false, nil
	}
	c.entries[eventID] = status
	return true, nil
}

func (c *memStatusCache) Invalidate(ctx context.Context, eventID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, eventID)
	return nil
}

func (c *memStatusCache) MarkRemoved(ctx context.Context, eventID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, eventID)
	c.removed[eventID] = true
	return nil
}

// --- ActivityQueue ---

type recordingQueue struct {
	mu         sync.Mutex
	activities []*model.BookingActivity
}

func (q *recordingQueue) PublishActivity(ctx context.Context, activity *model.BookingActivity) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.activities = append(q.activities, activity)
	return nil
}

func (q *recordingQueue) SubscribeActivities(ctx context.Context) (<-chan queue.Delivery, error) {
	ch := make(chan queue.Delivery)
	close(ch)
	return ch, nil
}

func (q *recordingQueue) Close() error { return nil }

func (q *recordingQueue) actions() []model.BookingAction {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]model.BookingAction, 0, len(q.activities))
	for _, a := range q.activities {
		out = append(out, a.Action)
	}
	return out
}
