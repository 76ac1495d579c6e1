package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain/entity"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain/repository"
	"github.com/qutubkothari/sak-erp-inventory/pkg/logger"
	"github.com/qutubkothari/sak-erp-inventory/pkg/metrics"
	"github.com/shopspring/decimal"
)

// dueSoonWindowDays is how far ahead a job order's end date may lie to still
// count as DUE_SOON.
const dueSoonWindowDays = 3

// AlertEngine derives advisory alerts from the stock projection and job-order
// state. It never closes alerts itself: acknowledgment is the only terminal
// transition, and a fresh breach after acknowledgment creates a new row.
type AlertEngine struct {
	levelRepo repository.StockLevelRepository
	alertRepo repository.AlertRepository
	jobRepo   repository.JobOrderRepository
	log       *logger.Logger
}

var _ LowStockChecker = (*AlertEngine)(nil)

// NewAlertEngine builds the engine. jobRepo may be nil when the production
// module is not deployed; job-order sweeps are then a no-op.
func NewAlertEngine(
	levelRepo repository.StockLevelRepository,
	alertRepo repository.AlertRepository,
	jobRepo repository.JobOrderRepository,
	log *logger.Logger,
) *AlertEngine {
	return &AlertEngine{levelRepo: levelRepo, alertRepo: alertRepo, jobRepo: jobRepo, log: log}
}

// CheckLowStock raises a LOW_STOCK alert when available quantity is at or
// below the item's positive reorder level, unless an unacknowledged alert for
// the same (item, warehouse) is already open.
func (e *AlertEngine) CheckLowStock(ctx context.Context, tenantID, itemID, warehouseID string) error {
	snap, err := e.levelRepo.Snapshot(ctx, tenantID, itemID, warehouseID)
	if err != nil {
		return err
	}
	if snap == nil || !snap.ReorderLevel.GreaterThan(decimal.Zero) {
		return nil
	}
	if snap.Available.GreaterThan(snap.ReorderLevel) {
		return nil
	}
	return e.raiseLowStock(ctx, tenantID, *snap)
}

// CheckAllLowStock is the bulk/cron path: it sweeps every stock row of the
// tenant that sits at or below its item's reorder level. Per-row failures are
// logged and skipped so one bad item never aborts the sweep.
func (e *AlertEngine) CheckAllLowStock(ctx context.Context, tenantID string) error {
	snaps, err := e.levelRepo.ListBelowReorder(ctx, tenantID)
	if err != nil {
		return err
	}
	for _, snap := range snaps {
		if err := e.raiseLowStock(ctx, tenantID, snap); err != nil {
			if e.log != nil {
				e.log.Warn().Err(err).
					Str("tenant_id", tenantID).
					Str("item_id", snap.ItemID).
					Str("warehouse_id", snap.WarehouseID).
					Msg("low stock sweep: item skipped")
			}
		}
	}
	return nil
}

func (e *AlertEngine) raiseLowStock(ctx context.Context, tenantID string, snap repository.StockSnapshot) error {
	open, err := e.alertRepo.ExistsOpen(ctx, tenantID, entity.AlertTypeLowStock, snap.ItemID, snap.WarehouseID, "")
	if err != nil {
		return err
	}
	if open {
		return nil
	}
	severity := entity.SeverityHigh
	if !snap.Available.GreaterThan(decimal.Zero) {
		severity = entity.SeverityCritical
	}
	alert := &entity.InventoryAlert{
		ID:                uuid.New().String(),
		TenantID:          tenantID,
		AlertType:         entity.AlertTypeLowStock,
		ItemID:            snap.ItemID,
		WarehouseID:       snap.WarehouseID,
		CurrentQuantity:   snap.Available,
		ThresholdQuantity: snap.ReorderLevel,
		Message: fmt.Sprintf("Low stock alert: %s (%s) - Available: %s, Reorder Point: %s",
			snap.ItemName, snap.ItemCode, snap.Available, snap.ReorderLevel),
		Severity:  severity,
		CreatedAt: time.Now(),
	}
	if err := e.alertRepo.Create(ctx, alert); err != nil {
		return err
	}
	metrics.AlertRaised(entity.AlertTypeLowStock)
	return nil
}

// CheckJobOrderAlerts classifies active job orders with an end date as
// overdue or due soon, deduplicating per (alert_type, item, job_order_number).
func (e *AlertEngine) CheckJobOrderAlerts(ctx context.Context, tenantID string) error {
	if e.jobRepo == nil {
		return nil
	}
	jobs, err := e.jobRepo.ListActiveWithEndDate(ctx, tenantID)
	if err != nil {
		return err
	}
	today := time.Now()
	for _, job := range jobs {
		if job.EndDate == nil {
			continue
		}
		alertType, severity, ok := classifyJobSchedule(*job.EndDate, today)
		if !ok {
			continue
		}
		if err := e.raiseJobAlert(ctx, tenantID, job, alertType, severity); err != nil {
			if e.log != nil {
				e.log.Warn().Err(err).
					Str("tenant_id", tenantID).
					Str("job_order_number", job.JobOrderNumber).
					Msg("job order sweep: order skipped")
			}
		}
	}
	return nil
}

// classifyJobSchedule compares the job's end date against today (date
// precision). OVERDUE when past due, CRITICAL; DUE_SOON within the window,
// HIGH when due today, MEDIUM otherwise.
func classifyJobSchedule(endDate, today time.Time) (alertType, severity string, ok bool) {
	end := truncateToDay(endDate)
	day := truncateToDay(today)
	switch {
	case end.Before(day):
		return entity.AlertTypeJobOverdue, entity.SeverityCritical, true
	case !end.After(day.AddDate(0, 0, dueSoonWindowDays)):
		if end.Equal(day) {
			return entity.AlertTypeJobDueSoon, entity.SeverityHigh, true
		}
		return entity.AlertTypeJobDueSoon, entity.SeverityMedium, true
	default:
		return "", "", false
	}
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (e *AlertEngine) raiseJobAlert(ctx context.Context, tenantID string, job *entity.JobOrder, alertType, severity string) error {
	open, err := e.alertRepo.ExistsOpen(ctx, tenantID, alertType, job.ItemID, "", job.JobOrderNumber)
	if err != nil {
		return err
	}
	if open {
		return nil
	}
	verb := "is due soon"
	if alertType == entity.AlertTypeJobOverdue {
		verb = "is overdue"
	}
	alert := &entity.InventoryAlert{
		ID:             uuid.New().String(),
		TenantID:       tenantID,
		AlertType:      alertType,
		ItemID:         job.ItemID,
		JobOrderNumber: job.JobOrderNumber,
		Message: fmt.Sprintf("Job order %s %s (end date: %s)",
			job.JobOrderNumber, verb, job.EndDate.Format("2006-01-02")),
		Severity:  severity,
		CreatedAt: time.Now(),
	}
	if err := e.alertRepo.Create(ctx, alert); err != nil {
		return err
	}
	metrics.AlertRaised(alertType)
	return nil
}

// Alerts lists alerts, optionally filtered by acknowledged state.
func (e *AlertEngine) Alerts(ctx context.Context, tenantID string, acknowledged *bool) ([]*entity.InventoryAlert, error) {
	return e.alertRepo.List(ctx, tenantID, acknowledged)
}

// Acknowledge marks an alert as handled by a user. Terminal.
func (e *AlertEngine) Acknowledge(ctx context.Context, tenantID, alertID, userID string) error {
	return e.alertRepo.Acknowledge(ctx, tenantID, alertID, userID)
}
