//go:build unit

package commands_test

import (
	"context"
	"time"

	"bloom-express/internal/domain/order"
	"bloom-express/internal/domain/schedule"
	"bloom-express/internal/infra"
	"bloom-express/internal/usecase/commands"
	"bloom-express/internal/usecase/queries"
	"bloom-express/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeStore is an in-memory stand-in for the persistence layer. It backs the
// unit of work, the command reads, and the order queries at once so command
// flows can be exercised end to end without a database.
type fakeStore struct {
	orders    map[uuid.UUID]*order.Order
	blackouts []schedule.BlockedInterval
	zipcodes  map[string]string // zipcode -> city
	admins    map[string]shared.AdminSnapshot
	settings  *shared.StoreSettings // nil until the first upsert

	blackoutCreateErr error
	orderCreateErr    error
	settingsUpsertErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		orders:   make(map[uuid.UUID]*order.Order),
		zipcodes: make(map[string]string),
		admins:   make(map[string]shared.AdminSnapshot),
	}
}

func (s *fakeStore) addOrder(o *order.Order) *order.Order {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	s.orders[o.ID] = o
	return o
}

func (s *fakeStore) byIntent(intentID string) *order.Order {
	for _, o := range s.orders {
		if o.PaymentIntentID == intentID {
			return o
		}
	}
	return nil
}

// --- shared.UnitOfWork ---

type fakeUoW struct {
	store *fakeStore
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{store: u.store}
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Orders() shared.OrderWrites       { return &fakeOrderWrites{store: t.store} }
func (t *fakeTx) Blackouts() shared.BlackoutWrites { return &fakeBlackoutWrites{store: t.store} }
func (t *fakeTx) Zipcodes() shared.ZipcodeWrites   { return &fakeZipcodeWrites{store: t.store} }
func (t *fakeTx) Settings() shared.SettingsWrites  { return &fakeSettingsWrites{store: t.store} }
func (t *fakeTx) Reads() shared.CommandReads       { return &fakeReads{store: t.store} }

// --- writes ---

type fakeOrderWrites struct {
	store *fakeStore
}

func (w *fakeOrderWrites) Create(_ context.Context, o *order.Order) (uuid.UUID, error) {
	if w.store.orderCreateErr != nil {
		return uuid.Nil, w.store.orderCreateErr
	}
	return w.store.addOrder(o).ID, nil
}

func (w *fakeOrderWrites) MarkPaid(_ context.Context, intentID string) (int64, error) {
	o := w.store.byIntent(intentID)
	if o == nil || o.PaymentStatus != order.PaymentPending {
		return 0, nil
	}
	o.PaymentStatus = order.PaymentPaid
	return 1, nil
}

func (w *fakeOrderWrites) MarkFailed(_ context.Context, intentID string) (int64, error) {
	o := w.store.byIntent(intentID)
	if o == nil || o.PaymentStatus != order.PaymentPending {
		return 0, nil
	}
	o.PaymentStatus = order.PaymentFailed
	return 1, nil
}

func (w *fakeOrderWrites) ClaimSlotReservation(_ context.Context, orderID uuid.UUID) (bool, error) {
	o, ok := w.store.orders[orderID]
	if !ok || o.SlotReserved {
		return false, nil
	}
	o.SlotReserved = true
	return true, nil
}

func (w *fakeOrderWrites) UpdateStatus(_ context.Context, id uuid.UUID, status order.Status, deliveredAt *time.Time) error {
	o, ok := w.store.orders[id]
	if !ok {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	o.Status = status
	if deliveredAt != nil {
		o.DeliveredAt = deliveredAt
	}
	return nil
}

func (w *fakeOrderWrites) UpdatePaymentStatus(_ context.Context, id uuid.UUID, status order.PaymentStatus) error {
	o, ok := w.store.orders[id]
	if !ok {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	o.PaymentStatus = status
	return nil
}

func (w *fakeOrderWrites) MarkNotified(_ context.Context, id uuid.UUID) error {
	if o, ok := w.store.orders[id]; ok {
		o.Notified = true
	}
	return nil
}

type fakeBlackoutWrites struct {
	store *fakeStore
}

func (w *fakeBlackoutWrites) Create(_ context.Context, interval schedule.BlockedInterval) (schedule.BlockedInterval, error) {
	if w.store.blackoutCreateErr != nil {
		return schedule.BlockedInterval{}, w.store.blackoutCreateErr
	}
	interval.ID = uuid.New()
	interval.CreatedAt = time.Now()
	w.store.blackouts = append(w.store.blackouts, interval)
	return interval, nil
}

func (w *fakeBlackoutWrites) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	for i, b := range w.store.blackouts {
		if b.ID == id {
			w.store.blackouts = append(w.store.blackouts[:i], w.store.blackouts[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeZipcodeWrites struct {
	store *fakeStore
}

func (w *fakeZipcodeWrites) Create(_ context.Context, zipcode, city string) (uuid.UUID, error) {
	if _, exists := w.store.zipcodes[zipcode]; exists {
		return uuid.Nil, infra.WrapRepoErr("duplicate zipcode", nil, infra.KindDuplicateKey)
	}
	w.store.zipcodes[zipcode] = city
	return uuid.New(), nil
}

func (w *fakeZipcodeWrites) Delete(_ context.Context, _ uuid.UUID) (bool, error) {
	return false, nil
}

type fakeSettingsWrites struct {
	store *fakeStore
}

func (w *fakeSettingsWrites) Upsert(_ context.Context, s shared.StoreSettings) error {
	if w.store.settingsUpsertErr != nil {
		return w.store.settingsUpsertErr
	}
	w.store.settings = &s
	return nil
}

// --- reads ---

type fakeReads struct {
	store *fakeStore
}

func (r *fakeReads) OrderByID(_ context.Context, id uuid.UUID) (*shared.OrderSnapshot, error) {
	o, ok := r.store.orders[id]
	if !ok {
		return nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return snapshotOf(o), nil
}

func (r *fakeReads) OrderByPaymentIntent(_ context.Context, intentID string) (*shared.OrderSnapshot, error) {
	o := r.store.byIntent(intentID)
	if o == nil {
		return nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return snapshotOf(o), nil
}

func (r *fakeReads) ZipcodeServed(_ context.Context, zipcode string) (bool, error) {
	_, ok := r.store.zipcodes[zipcode]
	return ok, nil
}

func (r *fakeReads) AdminByEmail(_ context.Context, email string) (*shared.AdminSnapshot, error) {
	admin, ok := r.store.admins[email]
	if !ok {
		return nil, infra.WrapRepoErr("admin not found", nil, infra.KindNotFound)
	}
	return &admin, nil
}

type fakeSettingsReadStore struct {
	store *fakeStore
}

func (r *fakeSettingsReadStore) Find(context.Context) (*queries.StoreSettingsView, error) {
	s := r.store.settings
	if s == nil {
		return nil, infra.WrapRepoErr("store settings not found", nil, infra.KindNotFound)
	}
	return &queries.StoreSettingsView{
		PhoneNumber:   s.PhoneNumber,
		IsClosed:      s.IsClosed,
		ClosedMessage: s.ClosedMessage,
		ClosedUntil:   s.ClosedUntil,
	}, nil
}

func snapshotOf(o *order.Order) *shared.OrderSnapshot {
	return &shared.OrderSnapshot{
		ID:               o.ID,
		OrderNumber:      o.OrderNumber,
		DeliveryDate:     o.DeliveryDate,
		DeliveryTimeSlot: o.DeliveryTimeSlot,
		PaymentIntentID:  o.PaymentIntentID,
		PaymentStatus:    o.PaymentStatus,
		Status:           o.Status,
		SlotReserved:     o.SlotReserved,
		Notified:         o.Notified,
	}
}

// --- order queries (for the notification path) ---

type fakeOrderQueries struct {
	store *fakeStore
}

func (q *fakeOrderQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.OrderView, error) {
	o, ok := q.store.orders[id]
	if !ok {
		return nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return &queries.OrderView{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		Status:      string(o.Status),
		Notified:    o.Notified,
	}, nil
}

func (q *fakeOrderQueries) GetByNumber(context.Context, string) (*queries.OrderView, error) {
	panic("not used")
}

func (q *fakeOrderQueries) GetByPaymentIntent(context.Context, string) (*queries.OrderView, error) {
	panic("not used")
}

func (q *fakeOrderQueries) List(context.Context, string, int32) ([]queries.OrderListItem, error) {
	panic("not used")
}

func (q *fakeOrderQueries) ListByDeliveryDate(context.Context, time.Time) ([]queries.OrderListItem, error) {
	panic("not used")
}

// --- gateway and notifier ---

type fakeGateway struct {
	intent    *commands.PaymentIntent
	createErr error

	status      commands.IntentStatus
	statusErr   error
	statusCalls int
}

func (g *fakeGateway) CreateIntent(context.Context, int64, map[string]string) (*commands.PaymentIntent, error) {
	if g.createErr != nil {
		return nil, g.createErr
	}
	return g.intent, nil
}

func (g *fakeGateway) RetrieveIntentStatus(context.Context, string) (commands.IntentStatus, error) {
	g.statusCalls++
	if g.statusErr != nil {
		return "", g.statusErr
	}
	return g.status, nil
}

type fakeNotifier struct {
	sent    []string // order numbers
	sendErr error
}

func (n *fakeNotifier) SendOrderPlaced(_ context.Context, view *queries.OrderView) error {
	if n.sendErr != nil {
		return n.sendErr
	}
	n.sent = append(n.sent, view.OrderNumber)
	return nil
}
