package commands

import (
	"context"

	"lunchmate/internal/domain/menuday"
	"lunchmate/internal/infra"
	"lunchmate/internal/pkg/clock"
	"lunchmate/internal/pkg/errs"
	"lunchmate/internal/pkg/schedule"

	"github.com/google/uuid"
)

var (
	ErrCookIDRequired          = errs.New("cook id required")
	ErrMenuStatusInvalid       = errs.New("invalid menu status")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type MenuDayRepository interface {
	FindByCookAndDay(ctx context.Context, cookID uuid.UUID, day schedule.Day) (*menuday.MenuDay, error)
	Insert(ctx context.Context, m *menuday.MenuDay) (*menuday.MenuDay, error)
	Update(ctx context.Context, m *menuday.MenuDay) (*menuday.MenuDay, error)
}

type MenuCommands interface {
	UpsertMenuDay(ctx context.Context, cookID uuid.UUID, day schedule.Day, dishes []menuday.Dish, status menuday.Status, timeZone string) (*menuday.MenuDay, error)
	GetOrCreateMenuDay(ctx context.Context, cookID uuid.UUID, day schedule.Day, timeZone string) (*menuday.MenuDay, error)
}

type menuCommandsImpl struct {
	menuRepo MenuDayRepository
	clock    clock.Clock
}

func NewMenuCommands(menuRepo MenuDayRepository, clock clock.Clock) MenuCommands {
	return &menuCommandsImpl{
		menuRepo: menuRepo,
		clock:    clock,
	}
}

// UpsertMenuDay saves a cook's menu for one day, creating the record on first
// save. Cook-side edits are not cutoff-gated; the kitchen stays in control of
// its own menu after orders freeze.
func (m *menuCommandsImpl) UpsertMenuDay(
	ctx context.Context,
	cookID uuid.UUID,
	day schedule.Day,
	dishes []menuday.Dish,
	status menuday.Status,
	timeZone string,
) (*menuday.MenuDay, error) {
	if cookID == uuid.Nil {
		return nil, ErrCookIDRequired
	}
	if !status.IsValid() {
		return nil, ErrMenuStatusInvalid
	}

	now := m.clock.Now().UTC()

	existing, err := m.menuRepo.FindByCookAndDay(ctx, cookID, day)
	switch {
	case err == nil:
		existing.ApplyUpsert(dishes, status, timeZone, now)
		return m.update(ctx, existing)

	case infra.IsKind(err, infra.KindNotFound):
		fresh := menuday.NewMenuDay(cookID, day, timeZone)
		fresh.ApplyUpsert(dishes, status, timeZone, now)

		created, insertErr := m.menuRepo.Insert(ctx, fresh)
		if insertErr == nil {
			return created, nil
		}
		// Lost the insert race: another request created the record first.
		// Re-fetch and apply the update against the winner.
		if !infra.IsKind(insertErr, infra.KindDuplicateKey) {
			return nil, errs.Mark(insertErr, ErrDatabaseOperationFailed)
		}
		winner, refetchErr := m.menuRepo.FindByCookAndDay(ctx, cookID, day)
		if refetchErr != nil {
			return nil, errs.Mark(refetchErr, ErrDatabaseOperationFailed)
		}
		winner.ApplyUpsert(dishes, status, timeZone, now)
		return m.update(ctx, winner)

	default:
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
}

// GetOrCreateMenuDay returns the day's record, lazily creating an empty Draft
// on first access. Concurrent first access is resolved by the storage unique
// key, never by check-then-act alone.
func (m *menuCommandsImpl) GetOrCreateMenuDay(
	ctx context.Context,
	cookID uuid.UUID,
	day schedule.Day,
	timeZone string,
) (*menuday.MenuDay, error) {
	if cookID == uuid.Nil {
		return nil, ErrCookIDRequired
	}

	existing, err := m.menuRepo.FindByCookAndDay(ctx, cookID, day)
	if err == nil {
		return existing, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	created, insertErr := m.menuRepo.Insert(ctx, menuday.NewMenuDay(cookID, day, timeZone))
	if insertErr == nil {
		return created, nil
	}
	if !infra.IsKind(insertErr, infra.KindDuplicateKey) {
		return nil, errs.Mark(insertErr, ErrDatabaseOperationFailed)
	}

	winner, refetchErr := m.menuRepo.FindByCookAndDay(ctx, cookID, day)
	if refetchErr != nil {
		return nil, errs.Mark(refetchErr, ErrDatabaseOperationFailed)
	}
	return winner, nil
}

func (m *menuCommandsImpl) update(ctx context.Context, day *menuday.MenuDay) (*menuday.MenuDay, error) {
	updated, err := m.menuRepo.Update(ctx, day)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return updated, nil
}
