// internal/app/lifecycle/lifecycle.go

// Package lifecycle owns the business rules for announcements: which ones
// are currently visible for a given reference date, and the validation and
// state-transition rules applied when an announcement is created, updated,
// or deleted. Persistence and the teacher directory are injected
// collaborators so tests can substitute fakes.
package lifecycle

import (
	"context"
	"fmt"
	"time"

	"github.com/dalemusser/campusboard/internal/domain/models"
	"go.uber.org/zap"
)

// DateLayout is the only date format exchanged with callers and the store:
// a calendar date with no time-of-day or zone component.
const DateLayout = "2006-01-02"

// TeacherDirectory reports whether an identity string belongs to a known
// teacher. Mutating operations consult it before touching the store.
type TeacherDirectory interface {
	Exists(ctx context.Context, username string) (bool, error)
}

// UpdateFields is a partial update: nil means "not supplied, keep the
// stored value". Only non-nil fields are written.
type UpdateFields struct {
	Message        *string
	StartDate      *string
	ExpirationDate *string
	IsActive       *bool
}

// Empty reports whether no field is supplied at all.
func (f UpdateFields) Empty() bool {
	return f.Message == nil && f.StartDate == nil && f.ExpirationDate == nil && f.IsActive == nil
}

// UpdateResult is the store's confirmation signal for a partial update.
type UpdateResult struct {
	Matched  bool
	Modified bool
}

// ScanFilter narrows a store scan. When ActiveOnly is set the store returns
// only records with is_active == true and expiration_date >= Today; the
// start-date window check stays with the Manager.
type ScanFilter struct {
	ActiveOnly bool
	Today      string
}

// AnnouncementStore is the persistence collaborator, keyed by opaque
// identifiers in their normalized string form. ParseID is the store-owned
// capability that decides whether a raw identifier is well-formed; every
// other method expects an identifier that ParseID accepted. Get returns
// (nil, nil) when no record matches.
type AnnouncementStore interface {
	ParseID(raw string) (string, error)
	Insert(ctx context.Context, a models.Announcement) (string, error)
	Get(ctx context.Context, id string) (*models.Announcement, error)
	Update(ctx context.Context, id string, fields UpdateFields) (UpdateResult, error)
	Delete(ctx context.Context, id string) (bool, error)
	Scan(ctx context.Context, filter ScanFilter) ([]models.Announcement, error)
}

// CreateInput is a candidate announcement. StartDate is optional; the
// transport layer resolves the is_active default (true) before calling.
type CreateInput struct {
	Message        string
	StartDate      *string
	ExpirationDate string
	IsActive       bool
}

// Manager applies the announcement business rules and delegates reads and
// writes to the injected collaborators.
type Manager struct {
	directory TeacherDirectory
	store     AnnouncementStore
	log       *zap.Logger
	now       func() time.Time
}

// New constructs a Manager that evaluates visibility against the current
// local calendar date.
func New(directory TeacherDirectory, store AnnouncementStore, logger *zap.Logger) *Manager {
	return NewWithClock(directory, store, logger, time.Now)
}

// NewWithClock is New with an explicit time source. Tests use it to pin the
// reference date.
func NewWithClock(directory TeacherDirectory, store AnnouncementStore, logger *zap.Logger, now func() time.Time) *Manager {
	return &Manager{
		directory: directory,
		store:     store,
		log:       logger,
		now:       now,
	}
}

// today returns the reference date as a YYYY-MM-DD string.
func (m *Manager) today() string {
	return m.now().Format(DateLayout)
}

// List returns the announcements to display. With activeOnly the result is
// limited to active announcements whose date window covers today, boundaries
// inclusive on both ends; otherwise every record is returned unfiltered
// (the admin view). Iteration order is whatever the store yields.
func (m *Manager) List(ctx context.Context, activeOnly bool) ([]models.Announcement, error) {
	today := m.today()

	records, err := m.store.Scan(ctx, ScanFilter{ActiveOnly: activeOnly, Today: today})
	if err != nil {
		return nil, fmt.Errorf("%w: scan: %v", ErrStorageFailure, err)
	}

	if !activeOnly {
		if records == nil {
			records = []models.Announcement{}
		}
		return records, nil
	}

	// The store already filtered on is_active and expiration_date; apply the
	// start-date half of the window here. A start date equal to today is
	// already visible.
	visible := make([]models.Announcement, 0, len(records))
	for _, a := range records {
		if a.StartDate != nil && *a.StartDate > today {
			continue
		}
		visible = append(visible, a)
	}
	return visible, nil
}

// Create validates a candidate announcement and persists it. Validation
// order: teacher identity, expiration date well-formed, expiration not in
// the past, start date well-formed and not after expiration. The returned
// record carries the store-assigned identifier.
func (m *Manager) Create(ctx context.Context, teacherUsername string, in CreateInput) (*models.Announcement, error) {
	if err := m.authenticate(ctx, teacherUsername); err != nil {
		return nil, err
	}

	expiration, err := time.Parse(DateLayout, in.ExpirationDate)
	if err != nil {
		return nil, errBadDateFormat
	}
	today, _ := time.Parse(DateLayout, m.today())
	if expiration.Before(today) {
		return nil, errExpirationInPast
	}
	if in.StartDate != nil {
		start, err := time.Parse(DateLayout, *in.StartDate)
		if err != nil {
			return nil, errBadDateFormat
		}
		if start.After(expiration) {
			return nil, errStartAfterExpiration
		}
	}

	record := models.Announcement{
		Message:        in.Message,
		StartDate:      in.StartDate,
		ExpirationDate: in.ExpirationDate,
		IsActive:       in.IsActive,
	}

	id, err := m.store.Insert(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("%w: insert: %v", ErrStorageFailure, err)
	}
	if id == "" {
		return nil, fmt.Errorf("%w: insert returned no id", ErrStorageFailure)
	}

	record.ID = id
	m.log.Info("announcement created",
		zap.String("id", id),
		zap.String("teacher", teacherUsername))
	return &record, nil
}

// Update applies a partial update. Only supplied fields change; the date
// invariant is re-validated on the effective post-update values. Unlike
// Create there is no not-in-the-past check on the expiration date. An
// update with no fields at all is a no-op that returns the stored record.
func (m *Manager) Update(ctx context.Context, teacherUsername, rawID string, fields UpdateFields) (*models.Announcement, error) {
	if err := m.authenticate(ctx, teacherUsername); err != nil {
		return nil, err
	}

	id, err := m.store.ParseID(rawID)
	if err != nil {
		return nil, errBadAnnouncementID
	}

	existing, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: get: %v", ErrStorageFailure, err)
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	if fields.Empty() {
		return existing, nil
	}

	if err := validateEffectiveDates(existing, fields); err != nil {
		return nil, err
	}

	res, err := m.store.Update(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("%w: update: %v", ErrStorageFailure, err)
	}
	if !res.Matched && !res.Modified {
		return nil, fmt.Errorf("%w: update matched nothing", ErrStorageFailure)
	}

	updated, err := m.store.Get(ctx, id)
	if err != nil || updated == nil {
		return nil, fmt.Errorf("%w: reload after update: %v", ErrStorageFailure, err)
	}

	m.log.Info("announcement updated",
		zap.String("id", id),
		zap.String("teacher", teacherUsername))
	return updated, nil
}

// Delete removes an announcement permanently.
func (m *Manager) Delete(ctx context.Context, teacherUsername, rawID string) error {
	if err := m.authenticate(ctx, teacherUsername); err != nil {
		return err
	}

	id, err := m.store.ParseID(rawID)
	if err != nil {
		return errBadAnnouncementID
	}

	deleted, err := m.store.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: delete: %v", ErrStorageFailure, err)
	}
	if !deleted {
		return ErrNotFound
	}

	m.log.Info("announcement deleted",
		zap.String("id", id),
		zap.String("teacher", teacherUsername))
	return nil
}

// authenticate resolves the teacher identity before any mutation.
func (m *Manager) authenticate(ctx context.Context, teacherUsername string) error {
	known, err := m.directory.Exists(ctx, teacherUsername)
	if err != nil {
		return fmt.Errorf("%w: teacher lookup: %v", ErrStorageFailure, err)
	}
	if !known {
		return ErrUnauthorized
	}
	return nil
}

// validateEffectiveDates re-checks the date invariant on the values the
// record would hold after the update: a supplied field overrides, an absent
// one falls back to the stored value.
func validateEffectiveDates(existing *models.Announcement, fields UpdateFields) error {
	effectiveExpiration := existing.ExpirationDate
	if fields.ExpirationDate != nil {
		effectiveExpiration = *fields.ExpirationDate
	}
	effectiveStart := existing.StartDate
	if fields.StartDate != nil {
		effectiveStart = fields.StartDate
	}

	expiration, err := time.Parse(DateLayout, effectiveExpiration)
	if err != nil {
		return errBadDateFormat
	}
	if effectiveStart != nil {
		start, err := time.Parse(DateLayout, *effectiveStart)
		if err != nil {
			return errBadDateFormat
		}
		if start.After(expiration) {
			return errStartAfterExpiration
		}
	}
	return nil
}
