package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/parlour-booking/internal/models"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// Logger persists audit events to the audit_logs table.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		UserID:   ev.UserID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	return errors.Wrap(l.db.WithContext(ctx).Create(&row).Error, "writing audit log")
}

// --------------------------------------------------
// Query
// --------------------------------------------------

type Filter struct {
	Action string
	Entity string
	From   *time.Time
	// To is inclusive of the whole day.
	To *time.Time

	Page  int
	Limit int
}

// Normalize clamps paging to sane bounds.
func (f *Filter) Normalize() {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > maxPageSize {
		f.Limit = defaultPageSize
	}
}

func (l *Logger) List(
	ctx context.Context,
	f Filter,
) ([]models.AuditLog, int64, error) {

	f.Normalize()

	q := l.db.WithContext(ctx).Model(&models.AuditLog{})

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", f.To.Add(24*time.Hour))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "counting audit logs")
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Order("id DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "listing audit logs")
	}

	return logs, total, nil
}

var _ Recorder = (*Logger)(nil)
