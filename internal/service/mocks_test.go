package service

import (
	"context"
	"sort"
	"time"

	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// fakeStore is the shared in-memory backing state for the mock repositories.
// The fake transaction manager snapshots it before running the unit of work
// and restores the snapshot on error, mirroring rollback semantics.
type fakeStore struct {
	users    []model.User
	orders   []model.Order
	items    []model.OrderLineItem
	bookings []model.Booking
	contacts []model.ContactMessage
	audits   []model.IntakeAudit
}

func (s *fakeStore) snapshot() fakeStore {
	return fakeStore{
		users:    append([]model.User(nil), s.users...),
		orders:   append([]model.Order(nil), s.orders...),
		items:    append([]model.OrderLineItem(nil), s.items...),
		bookings: append([]model.Booking(nil), s.bookings...),
		contacts: append([]model.ContactMessage(nil), s.contacts...),
		audits:   append([]model.IntakeAudit(nil), s.audits...),
	}
}

type fakeTxManager struct {
	store *fakeStore
}

func (f *fakeTxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	snap := f.store.snapshot()
	if err := fn(ctx); err != nil {
		*f.store = snap
		return err
	}
	return nil
}

// --- order repository mock ---

type mockOrderRepo struct {
	store         *fakeStore
	createErr     error
	createItemErr error
}

func (m *mockOrderRepo) Create(_ context.Context, order *model.Order) error {
	if m.createErr != nil {
		return m.createErr
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	m.store.orders = append(m.store.orders, *order)
	return nil
}

func (m *mockOrderRepo) CreateItem(_ context.Context, item *model.OrderLineItem) error {
	if m.createItemErr != nil {
		return m.createItemErr
	}
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	m.store.items = append(m.store.items, *item)
	return nil
}

func (m *mockOrderRepo) FindByIDWithItems(_ context.Context, id uuid.UUID) (*model.Order, error) {
	for i := range m.store.orders {
		if m.store.orders[i].ID == id {
			order := m.store.orders[i]
			order.Items = nil
			for _, item := range m.store.items {
				if item.OrderID == id {
					order.Items = append(order.Items, item)
				}
			}
			return &order, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockOrderRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]model.Order, error) {
	var out []model.Order
	for _, o := range m.store.orders {
		if o.UserID != nil && *o.UserID == userID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *mockOrderRepo) List(_ context.Context, _, _ int) ([]model.Order, int64, error) {
	return append([]model.Order(nil), m.store.orders...), int64(len(m.store.orders)), nil
}

func (m *mockOrderRepo) UpdateStatusGuard(_ context.Context, id uuid.UUID, from, to string) (int64, error) {
	for i := range m.store.orders {
		if m.store.orders[i].ID == id && m.store.orders[i].Status == from {
			m.store.orders[i].Status = to
			return 1, nil
		}
	}
	return 0, nil
}

// --- booking repository mock ---

type mockBookingRepo struct {
	store     *fakeStore
	createErr error
}

func (m *mockBookingRepo) Create(_ context.Context, booking *model.Booking) error {
	if m.createErr != nil {
		return m.createErr
	}
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	m.store.bookings = append(m.store.bookings, *booking)
	return nil
}

func (m *mockBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Booking, error) {
	for i := range m.store.bookings {
		if m.store.bookings[i].ID == id {
			booking := m.store.bookings[i]
			return &booking, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBookingRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]model.Booking, error) {
	var out []model.Booking
	for _, b := range m.store.bookings {
		if b.UserID != nil && *b.UserID == userID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BookingDate.After(out[j].BookingDate) })
	return out, nil
}

func (m *mockBookingRepo) List(_ context.Context, _, _ int) ([]model.Booking, int64, error) {
	return append([]model.Booking(nil), m.store.bookings...), int64(len(m.store.bookings)), nil
}

func (m *mockBookingRepo) UpdateStatusGuard(_ context.Context, id uuid.UUID, from, to string) (int64, error) {
	for i := range m.store.bookings {
		if m.store.bookings[i].ID == id && m.store.bookings[i].Status == from {
			m.store.bookings[i].Status = to
			return 1, nil
		}
	}
	return 0, nil
}

// --- menu repository mock ---

type mockMenuRepo struct {
	existing map[uuid.UUID]bool
}

func (m *mockMenuRepo) Create(_ context.Context, item *model.MenuItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	m.existing[item.ID] = true
	return nil
}

func (m *mockMenuRepo) FindByID(_ context.Context, id uuid.UUID) (*model.MenuItem, error) {
	if m.existing[id] {
		return &model.MenuItem{ID: id}, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMenuRepo) ExistingIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	out := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if m.existing[id] {
			out[id] = true
		}
	}
	return out, nil
}

func (m *mockMenuRepo) List(_ context.Context, _, _ int) ([]model.MenuItem, int64, error) {
	return nil, 0, nil
}

func (m *mockMenuRepo) Update(_ context.Context, _ *model.MenuItem) error { return nil }

func (m *mockMenuRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.existing, id)
	return nil
}

// --- contact repository mock ---

type mockContactRepo struct {
	store     *fakeStore
	createErr error
}

func (m *mockContactRepo) Create(_ context.Context, msg *model.ContactMessage) error {
	if m.createErr != nil {
		return m.createErr
	}
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	m.store.contacts = append(m.store.contacts, *msg)
	return nil
}

func (m *mockContactRepo) List(_ context.Context, _, _ int) ([]model.ContactMessage, int64, error) {
	return append([]model.ContactMessage(nil), m.store.contacts...), int64(len(m.store.contacts)), nil
}

// --- audit repository mock ---

type mockAuditRepo struct {
	store  *fakeStore
	logErr error
}

func (m *mockAuditRepo) Log(_ context.Context, entry *model.IntakeAudit) error {
	if m.logErr != nil {
		return m.logErr
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	m.store.audits = append(m.store.audits, *entry)
	return nil
}

func (m *mockAuditRepo) List(_ context.Context, _, _ int) ([]model.IntakeAudit, int64, error) {
	return append([]model.IntakeAudit(nil), m.store.audits...), int64(len(m.store.audits)), nil
}

// --- user repository mock ---

type mockUserRepo struct {
	store     *fakeStore
	createErr error
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.store.users = append(m.store.users, *user)
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	for i := range m.store.users {
		if m.store.users[i].ID.String() == id {
			user := m.store.users[i]
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for i := range m.store.users {
		if m.store.users[i].Email == email {
			user := m.store.users[i]
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) CountByEmail(_ context.Context, email string) (int64, error) {
	var count int64
	for i := range m.store.users {
		if m.store.users[i].Email == email {
			count++
		}
	}
	return count, nil
}

func (m *mockUserRepo) Update(_ context.Context, _ *model.User) error { return nil }

func (m *mockUserRepo) Delete(_ context.Context, _ string) error { return nil }
