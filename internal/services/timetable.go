package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"campustimetable/internal/domain"
	"campustimetable/internal/timetable"
)

// ownedStore is one owner's timetable and the lock serializing its transitions.
type ownedStore struct {
	mu    sync.Mutex
	store *timetable.Store
}

type timetableService struct {
	logger         *slog.Logger
	userRepo       domain.UserRepository
	emailService   domain.EmailService
	contextTimeout time.Duration

	mu     sync.Mutex
	stores map[string]*ownedStore
}

// NewTimetableService keeps one in-memory timetable per owner for the life of the process.
func NewTimetableService(logger *slog.Logger, userRepo domain.UserRepository, emailService domain.EmailService, timeout time.Duration) domain.TimetableService {
	return &timetableService{
		logger:         logger,
		userRepo:       userRepo,
		emailService:   emailService,
		contextTimeout: timeout,
		stores:         make(map[string]*ownedStore),
	}
}

func (s *timetableService) owned(ownerID string) *ownedStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.stores[ownerID]
	if !ok {
		o = &ownedStore{store: timetable.NewStore()}
		s.stores[ownerID] = o
	}
	return o
}

// with runs fn while holding the owner's lock.
func (s *timetableService) with(ownerID string, fn func(st *timetable.Store) error) error {
	if ownerID == "" {
		return fmt.Errorf("owner is required")
	}
	o := s.owned(ownerID)
	o.mu.Lock()
	defer o.mu.Unlock()
	return fn(o.store)
}

func (s *timetableService) Get(ctx context.Context, ownerID string) (domain.Timetable, error) {
	var t domain.Timetable
	err := s.with(ownerID, func(st *timetable.Store) error {
		t = st.Snapshot()
		return nil
	})
	return t, err
}

func (s *timetableService) GetDay(ctx context.Context, ownerID string, day domain.Weekday) ([]domain.ClassEntry, error) {
	var entries []domain.ClassEntry
	err := s.with(ownerID, func(st *timetable.Store) error {
		var err error
		entries, err = st.Day(day)
		return err
	})
	return entries, err
}

func (s *timetableService) AddClass(ctx context.Context, ownerID string, entry domain.ClassEntry) (domain.Timetable, error) {
	var t domain.Timetable
	err := s.with(ownerID, func(st *timetable.Store) error {
		var err error
		t, err = st.Add(entry)
		return err
	})
	if err != nil {
		s.rejected(ctx, "add class", ownerID, err)
		return nil, err
	}
	s.logger.InfoContext(ctx, "class added", "owner", ownerID, "day", entry.Day, "subject", entry.Subject)
	return t, nil
}

func (s *timetableService) EditClass(ctx context.Context, ownerID string, day domain.Weekday, index int, entry domain.ClassEntry) (domain.Timetable, error) {
	var t domain.Timetable
	err := s.with(ownerID, func(st *timetable.Store) error {
		var err error
		t, err = st.Edit(day, index, entry)
		return err
	})
	if err != nil {
		s.rejected(ctx, "edit class", ownerID, err)
		return nil, err
	}
	s.logger.InfoContext(ctx, "class edited", "owner", ownerID, "day", day, "index", index)
	return t, nil
}

func (s *timetableService) DeleteClass(ctx context.Context, ownerID string, day domain.Weekday, index int) (domain.Timetable, error) {
	var t domain.Timetable
	err := s.with(ownerID, func(st *timetable.Store) error {
		var err error
		t, err = st.Delete(day, index)
		return err
	})
	if err != nil {
		s.rejected(ctx, "delete class", ownerID, err)
		return nil, err
	}
	s.logger.InfoContext(ctx, "class deleted", "owner", ownerID, "day", day, "index", index)
	return t, nil
}

func (s *timetableService) MoveClass(ctx context.Context, ownerID string, gesture domain.DragGesture) (domain.Timetable, bool, error) {
	var (
		t       domain.Timetable
		applied bool
	)
	err := s.with(ownerID, func(st *timetable.Store) error {
		var err error
		t, applied, err = timetable.ApplyDrag(st, gesture)
		return err
	})
	if err != nil {
		s.rejected(ctx, "move class", ownerID, err)
		return nil, false, err
	}
	if applied {
		s.logger.InfoContext(ctx, "class moved", "owner", ownerID,
			"from_day", gesture.Source.Day, "from_index", gesture.Source.Index,
			"to_day", gesture.Destination.Day, "to_index", gesture.Destination.Index)
	}
	return t, applied, nil
}

func (s *timetableService) EmailTimetable(ctx context.Context, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	t, err := s.Get(ctx, ownerID)
	if err != nil {
		return err
	}
	if t.Len() == 0 {
		return domain.ErrEmptyTimetable
	}
	user, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("get user: %w", err)
	}
	data := &domain.TimetableEmailData{
		Email:      user.Email,
		Name:       user.Name,
		Days:       t.Ordered(),
		ClassCount: t.Len(),
	}
	if err := s.emailService.SendTimetable(ctx, data); err != nil {
		return fmt.Errorf("send timetable: %w", err)
	}
	s.logger.InfoContext(ctx, "timetable emailed", "owner", ownerID, "classes", data.ClassCount)
	return nil
}

func (s *timetableService) rejected(ctx context.Context, op, ownerID string, err error) {
	s.logger.DebugContext(ctx, "timetable operation rejected", "op", op, "owner", ownerID, "err", err)
}
