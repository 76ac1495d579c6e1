package inventory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/qutubkothari/sak-erp-inventory/internal/domain"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain/entity"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// fakeStore is a mutex-guarded in-memory backend shared by all fake
// repositories, so the conditional mutations behave like their SQL
// counterparts under concurrent callers.
type fakeStore struct {
	mu           sync.Mutex
	levels       map[string]*entity.StockLevel
	movements    []*entity.StockMovement
	reservations map[string]*entity.StockReservation
	demos        map[string]*entity.DemoLoan
	seqs         map[string]int64
	items        map[string]*entity.Item
	warehouses   map[string]*entity.Warehouse
	alerts       []*entity.InventoryAlert
	jobs         []*entity.JobOrder
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		levels:       make(map[string]*entity.StockLevel),
		reservations: make(map[string]*entity.StockReservation),
		demos:        make(map[string]*entity.DemoLoan),
		seqs:         make(map[string]int64),
		items:        make(map[string]*entity.Item),
		warehouses:   make(map[string]*entity.Warehouse),
	}
}

func levelKey(tenantID, itemID, warehouseID, locationID string) string {
	return strings.Join([]string{tenantID, itemID, warehouseID, locationID}, "|")
}

func (s *fakeStore) addItem(it *entity.Item) {
	s.items[it.TenantID+"|"+it.ID] = it
}

func (s *fakeStore) addWarehouse(w *entity.Warehouse) {
	s.warehouses[w.TenantID+"|"+w.ID] = w
}

func (s *fakeStore) seedStock(tenantID, itemID, warehouseID string, qty decimal.Decimal) {
	s.levels[levelKey(tenantID, itemID, warehouseID, "")] = &entity.StockLevel{
		ID:            fmt.Sprintf("lvl-%d", len(s.levels)+1),
		TenantID:      tenantID,
		ItemID:        itemID,
		WarehouseID:   warehouseID,
		Category:      entity.CategoryRawMaterial,
		TotalQuantity: qty,
	}
}

func (s *fakeStore) stock(tenantID, itemID, warehouseID string) *entity.StockLevel {
	return s.levels[levelKey(tenantID, itemID, warehouseID, "")]
}

// --- TxRunner ---

type fakeTxRunner struct{ store *fakeStore }

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	movements repository.StockMovementRepository,
	levels repository.StockLevelRepository,
	reservations repository.ReservationRepository,
	demos repository.DemoRepository,
	sequences repository.SequenceRepository,
) error) error {
	return fn(
		&fakeMovementRepo{r.store},
		&fakeLevelRepo{r.store},
		&fakeReservationRepo{r.store},
		&fakeDemoRepo{r.store},
		&fakeSequenceRepo{r.store},
	)
}

// --- StockMovementRepository ---

type fakeMovementRepo struct{ store *fakeStore }

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.movements {
		if existing.TenantID == m.TenantID && existing.MovementNumber == m.MovementNumber {
			return domain.ErrDuplicate
		}
	}
	cp := *m
	r.store.movements = append(r.store.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) GetByID(_ context.Context, tenantID, id string) (*entity.StockMovement, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, m := range r.store.movements {
		if m.TenantID == tenantID && m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeMovementRepo) List(_ context.Context, tenantID string, filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.StockMovement
	for _, m := range r.store.movements {
		if m.TenantID != tenantID {
			continue
		}
		if filter.MovementType != "" && m.MovementType != filter.MovementType {
			continue
		}
		if filter.ItemID != "" && m.ItemID != filter.ItemID {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

// --- StockLevelRepository ---

type fakeLevelRepo struct{ store *fakeStore }

func (r *fakeLevelRepo) Get(_ context.Context, tenantID, itemID, warehouseID, locationID string) (*entity.StockLevel, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	s, ok := r.store.levels[levelKey(tenantID, itemID, warehouseID, locationID)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeLevelRepo) List(_ context.Context, tenantID string, _ repository.StockLevelFilter) ([]*entity.StockLevel, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.StockLevel
	for _, s := range r.store.levels {
		if s.TenantID == tenantID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeLevelRepo) ApplyDelta(_ context.Context, tenantID, itemID, warehouseID, locationID string, delta decimal.Decimal, category string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	key := levelKey(tenantID, itemID, warehouseID, locationID)
	s, ok := r.store.levels[key]
	if !ok {
		if category == "" {
			category = entity.CategoryRawMaterial
		}
		s = &entity.StockLevel{
			ID:          fmt.Sprintf("lvl-%d", len(r.store.levels)+1),
			TenantID:    tenantID,
			ItemID:      itemID,
			WarehouseID: warehouseID,
			LocationID:  locationID,
			Category:    category,
		}
		r.store.levels[key] = s
	}
	s.TotalQuantity = s.TotalQuantity.Add(delta)
	s.LastMovementDate = time.Now()
	s.UpdatedAt = time.Now()
	return nil
}

func (r *fakeLevelRepo) ReserveIfAvailable(_ context.Context, tenantID, itemID, warehouseID string, qty decimal.Decimal) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	s, ok := r.store.levels[levelKey(tenantID, itemID, warehouseID, "")]
	if !ok {
		return false, nil
	}
	if s.TotalQuantity.Sub(s.ReservedQuantity).LessThan(qty) {
		return false, nil
	}
	s.ReservedQuantity = s.ReservedQuantity.Add(qty)
	return true, nil
}

func (r *fakeLevelRepo) AdjustReserved(_ context.Context, tenantID, itemID, warehouseID string, delta decimal.Decimal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	s, ok := r.store.levels[levelKey(tenantID, itemID, warehouseID, "")]
	if !ok {
		return nil
	}
	s.ReservedQuantity = s.ReservedQuantity.Add(delta)
	if s.ReservedQuantity.IsNegative() {
		s.ReservedQuantity = decimal.Zero
	}
	return nil
}

func (r *fakeLevelRepo) Snapshot(_ context.Context, tenantID, itemID, warehouseID string) (*repository.StockSnapshot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.snapshotLocked(tenantID, itemID, warehouseID), nil
}

func (r *fakeLevelRepo) snapshotLocked(tenantID, itemID, warehouseID string) *repository.StockSnapshot {
	available := decimal.Zero
	found := false
	for _, s := range r.store.levels {
		if s.TenantID == tenantID && s.ItemID == itemID && s.WarehouseID == warehouseID {
			available = available.Add(s.TotalQuantity.Sub(s.ReservedQuantity))
			found = true
		}
	}
	if !found {
		return nil
	}
	snap := &repository.StockSnapshot{
		ItemID:      itemID,
		WarehouseID: warehouseID,
		Available:   available,
	}
	if it, ok := r.store.items[tenantID+"|"+itemID]; ok {
		snap.ItemCode = it.ItemCode
		snap.ItemName = it.ItemName
		snap.ReorderLevel = it.ReorderLevel
	}
	return snap
}

func (r *fakeLevelRepo) ListBelowReorder(_ context.Context, tenantID string) ([]repository.StockSnapshot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	seen := make(map[string]bool)
	var out []repository.StockSnapshot
	for _, s := range r.store.levels {
		if s.TenantID != tenantID {
			continue
		}
		key := s.ItemID + "|" + s.WarehouseID
		if seen[key] {
			continue
		}
		seen[key] = true
		snap := r.snapshotLocked(tenantID, s.ItemID, s.WarehouseID)
		if snap == nil || !snap.ReorderLevel.GreaterThan(decimal.Zero) {
			continue
		}
		if snap.Available.GreaterThan(snap.ReorderLevel) {
			continue
		}
		out = append(out, *snap)
	}
	return out, nil
}

// --- ReservationRepository ---

type fakeReservationRepo struct{ store *fakeStore }

func (r *fakeReservationRepo) Create(_ context.Context, res *entity.StockReservation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *res
	r.store.reservations[res.ID] = &cp
	return nil
}

func (r *fakeReservationRepo) GetByID(_ context.Context, tenantID, id string) (*entity.StockReservation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	res, ok := r.store.reservations[id]
	if !ok || res.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	cp := *res
	return &cp, nil
}

func (r *fakeReservationRepo) MarkReleased(_ context.Context, tenantID, id string) (*entity.StockReservation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	res, ok := r.store.reservations[id]
	if !ok || res.TenantID != tenantID || res.Released {
		return nil, nil
	}
	res.Released = true
	now := time.Now()
	res.ReleasedAt = &now
	cp := *res
	return &cp, nil
}

// --- DemoRepository ---

type fakeDemoRepo struct{ store *fakeStore }

func (r *fakeDemoRepo) Create(_ context.Context, d *entity.DemoLoan) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.demos[d.TenantID+"|"+d.DemoID]; ok {
		return domain.ErrDuplicate
	}
	cp := *d
	r.store.demos[d.TenantID+"|"+d.DemoID] = &cp
	return nil
}

func (r *fakeDemoRepo) GetByDemoID(_ context.Context, tenantID, demoID string) (*entity.DemoLoan, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	d, ok := r.store.demos[tenantID+"|"+demoID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDemoRepo) Update(_ context.Context, d *entity.DemoLoan) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	existing, ok := r.store.demos[d.TenantID+"|"+d.DemoID]
	if !ok {
		return domain.ErrNotFound
	}
	*existing = *d
	return nil
}

func (r *fakeDemoRepo) List(_ context.Context, tenantID string, filter repository.DemoFilter) ([]*entity.DemoLoan, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.DemoLoan
	for _, d := range r.store.demos {
		if d.TenantID != tenantID {
			continue
		}
		if filter.Status != "" && d.Status != filter.Status {
			continue
		}
		if filter.StaffID != "" && d.IssuedToStaffID != filter.StaffID {
			continue
		}
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

// --- SequenceRepository ---

type fakeSequenceRepo struct{ store *fakeStore }

func (r *fakeSequenceRepo) Next(_ context.Context, tenantID, prefix string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	key := tenantID + "|" + prefix
	r.store.seqs[key]++
	return r.store.seqs[key], nil
}

// --- ItemRepository ---

type fakeItemRepo struct{ store *fakeStore }

func (r *fakeItemRepo) Create(_ context.Context, it *entity.Item) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.items[it.TenantID+"|"+it.ID] = it
	return nil
}

func (r *fakeItemRepo) GetByID(_ context.Context, tenantID, id string) (*entity.Item, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	it, ok := r.store.items[tenantID+"|"+id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *it
	return &cp, nil
}

func (r *fakeItemRepo) List(_ context.Context, tenantID, _ string, _ bool, _, _ int) ([]*entity.Item, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Item
	for _, it := range r.store.items {
		if it.TenantID == tenantID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

// --- WarehouseRepository ---

type fakeWarehouseRepo struct{ store *fakeStore }

func (r *fakeWarehouseRepo) Create(_ context.Context, w *entity.Warehouse) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.warehouses[w.TenantID+"|"+w.ID] = w
	return nil
}

func (r *fakeWarehouseRepo) GetByID(_ context.Context, tenantID, id string) (*entity.Warehouse, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	w, ok := r.store.warehouses[tenantID+"|"+id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *w
	return &cp, nil
}

func (r *fakeWarehouseRepo) Update(_ context.Context, w *entity.Warehouse) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.warehouses[w.TenantID+"|"+w.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.warehouses[w.TenantID+"|"+w.ID] = w
	return nil
}

func (r *fakeWarehouseRepo) ListActive(_ context.Context, tenantID string) ([]*entity.Warehouse, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Warehouse
	for _, w := range r.store.warehouses {
		if w.TenantID == tenantID && w.IsActive {
			cp := *w
			out = append(out, &cp)
		}
	}
	return out, nil
}

// --- AlertRepository ---

type fakeAlertRepo struct {
	store     *fakeStore
	createErr error // when set, Create fails (exercises best-effort paths)
}

func (r *fakeAlertRepo) Create(_ context.Context, a *entity.InventoryAlert) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	cp := *a
	r.store.alerts = append(r.store.alerts, &cp)
	return nil
}

func (r *fakeAlertRepo) ExistsOpen(_ context.Context, tenantID, alertType, itemID, warehouseID, jobOrderNumber string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, a := range r.store.alerts {
		if a.TenantID == tenantID && a.AlertType == alertType && a.ItemID == itemID &&
			a.WarehouseID == warehouseID && a.JobOrderNumber == jobOrderNumber && !a.Acknowledged {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAlertRepo) List(_ context.Context, tenantID string, acknowledged *bool) ([]*entity.InventoryAlert, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.InventoryAlert
	for _, a := range r.store.alerts {
		if a.TenantID != tenantID {
			continue
		}
		if acknowledged != nil && a.Acknowledged != *acknowledged {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeAlertRepo) Acknowledge(_ context.Context, tenantID, id, userID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, a := range r.store.alerts {
		if a.TenantID == tenantID && a.ID == id {
			a.Acknowledged = true
			a.AcknowledgedBy = userID
			now := time.Now()
			a.AcknowledgedAt = &now
			return nil
		}
	}
	return domain.ErrNotFound
}

// --- JobOrderRepository ---

type fakeJobRepo struct{ store *fakeStore }

func (r *fakeJobRepo) ListActiveWithEndDate(_ context.Context, tenantID string) ([]*entity.JobOrder, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.JobOrder
	for _, j := range r.store.jobs {
		if j.TenantID != tenantID || j.EndDate == nil {
			continue
		}
		switch j.Status {
		case entity.JobStatusDraft, entity.JobStatusScheduled, entity.JobStatusInProgress:
			cp := *j
			out = append(out, &cp)
		}
	}
	return out, nil
}
