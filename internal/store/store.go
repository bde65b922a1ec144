package store

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/lockerhub/boxhub/internal/kv"
	"github.com/lockerhub/boxhub/internal/metrics"
)

// Store owns the canonical box, history and user collections plus the
// session preferences, and is the single writer for all of them. Reads
// return copies; nothing outside the Store mutates its collections.
//
// Persistence is best-effort and fire-and-forget: every mutation
// commits in memory first, then schedules writes through a per-key
// queue. A storage failure never rolls back or surfaces to the caller;
// it is logged and counted.
type Store struct {
	logger *zap.Logger
	kv     kv.Store
	writer *kv.Writer

	timeNow func() time.Time
	rnd     *rand.Rand

	mu                   sync.RWMutex
	boxes                []Box
	history              []HistoryRecord
	users                []User
	currentUserID        string
	abnormalAlertEnabled bool
	lastAlertBoxID       string
	adminPinHash         string
	isAdminMode          bool
	hasSeenOnboarding    bool
	hydrated             bool
}

func New(kvStore kv.Store, logger *zap.Logger) *Store {
	s := &Store{
		logger:  logger,
		kv:      kvStore,
		timeNow: time.Now,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	s.writer = kv.NewWriter(kvStore, func(key string, err error) {
		metrics.PersistenceFailuresTotal.WithLabelValues(key).Inc()
		logger.Warn("storage write failed", zap.String("key", key), zap.Error(err))
	})

	now := s.timeNow()
	s.users = DefaultUsers()
	s.boxes = DefaultBoxes(now)
	s.currentUserID = s.users[0].ID
	s.abnormalAlertEnabled = true
	return s
}

// Load hydrates the Store from persisted state. Every key is parsed
// independently: a corrupt or missing value falls back to that field's
// default without blocking the others. The Store reports hydrated
// afterwards even when individual keys failed.
func (s *Store) Load(ctx context.Context) {
	values, err := s.kv.MultiGet(ctx, kv.AllKeys())
	if err != nil {
		s.logger.Warn("failed to read persisted state, starting from defaults", zap.Error(err))
		values = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.timeNow()

	if raw, ok := values[kv.KeyBoxes]; ok {
		var boxes []Box
		if err := json.Unmarshal([]byte(raw), &boxes); err != nil {
			s.logger.Warn("corrupt boxes value, keeping defaults", zap.Error(err))
		} else {
			s.boxes = boxes
		}
	}

	if raw, ok := values[kv.KeyHistory]; ok {
		var history []HistoryRecord
		if err := json.Unmarshal([]byte(raw), &history); err != nil {
			s.logger.Warn("corrupt history value, keeping defaults", zap.Error(err))
		} else {
			s.history = normalizeHistory(history, now)
		}
	}

	if raw, ok := values[kv.KeyCurrentUserID]; ok && raw != "" {
		s.currentUserID = raw
	}

	if raw, ok := values[kv.KeyAbnormalAlertEnabled]; ok {
		s.abnormalAlertEnabled = raw == "true"
	}

	if raw, ok := values[kv.KeyLastAlertBoxID]; ok {
		s.lastAlertBoxID = raw
	}

	if raw, ok := values[kv.KeyAdminPin]; ok {
		s.adminPinHash = raw
	}

	if raw, ok := values[kv.KeyHasSeenOnboarding]; ok {
		s.hasSeenOnboarding = raw == "true"
	}

	s.hydrated = true
	metrics.HistorySize.Set(float64(len(s.history)))
	s.logger.Info("store hydrated",
		zap.Int("boxes", len(s.boxes)),
		zap.Int("history", len(s.history)))
}

// normalizeHistory fills in missing ids and date labels on records
// loaded from storage. Existing labels are kept as written, so a
// record labeled "today" yesterday still reads "today" until relabeled
// here on a later load.
func normalizeHistory(history []HistoryRecord, now time.Time) []HistoryRecord {
	for i := range history {
		if history[i].ID == "" {
			history[i].ID = newRecordID(now)
		}
		if history[i].DateLabel == "" {
			history[i].DateLabel = DateLabel(history[i].Timestamp, now)
		}
	}
	return history
}

// newRecordID builds a collision-resistant history id from the event
// timestamp and a random suffix. Rapid successive calls must never
// collide.
func newRecordID(now time.Time) string {
	return fmt.Sprintf("ev-%d-%s", now.UnixNano(), uuid.NewString()[:8])
}

// LogEvent applies one event to a box: the box status, last-updated
// time, last event type and acting user change together with exactly
// one history record prepended, or nothing changes at all.
func (s *Store) LogEvent(boxID string, eventType EventType, note string) (HistoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !eventType.IsValid() {
		return HistoryRecord{}, fmt.Errorf("%w: %q", ErrInvalidEventType, eventType)
	}

	idx := s.boxIndex(boxID)
	if idx < 0 {
		return HistoryRecord{}, fmt.Errorf("%w: %q", ErrBoxNotFound, boxID)
	}

	now := s.timeNow()
	box := &s.boxes[idx]
	box.Status = eventType.NextStatus()
	box.LastUpdated = now
	box.LastEventType = eventType
	box.LastNote = note
	box.CurrentUserID = s.currentUserID

	record := HistoryRecord{
		ID:        newRecordID(now),
		BoxID:     box.ID,
		BoxName:   box.Name,
		UserID:    s.currentUserID,
		UserName:  s.userName(s.currentUserID),
		Type:      eventType,
		Note:      note,
		Timestamp: now,
		DateLabel: DateLabel(now, now),
	}
	s.history = append([]HistoryRecord{record}, s.history...)

	if eventType.IsAbnormal() && s.abnormalAlertEnabled {
		s.lastAlertBoxID = boxID
		s.writer.Set(kv.KeyLastAlertBoxID, boxID)
		metrics.AlertsRaisedTotal.Inc()
	}

	s.persistBoxesLocked()
	s.persistHistoryLocked()

	metrics.EventsLoggedTotal.WithLabelValues(string(eventType)).Inc()
	metrics.HistorySize.Set(float64(len(s.history)))
	s.logger.Debug("event logged",
		zap.String("box_id", boxID),
		zap.String("type", string(eventType)),
		zap.String("status", string(box.Status)))

	return record, nil
}

// ToggleFavoriteBox flips the favorite flag on a box. It never touches
// status or history.
func (s *Store) ToggleFavoriteBox(boxID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.boxIndex(boxID)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrBoxNotFound, boxID)
	}

	s.boxes[idx].IsFavorite = !s.boxes[idx].IsFavorite
	s.persistBoxesLocked()
	return nil
}

func (s *Store) SetCurrentUserID(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userIndex(userID) < 0 {
		return fmt.Errorf("%w: %q", ErrUserNotFound, userID)
	}

	s.currentUserID = userID
	s.writer.Set(kv.KeyCurrentUserID, userID)
	return nil
}

func (s *Store) SetAbnormalAlertEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.abnormalAlertEnabled = enabled
	s.writer.Set(kv.KeyAbnormalAlertEnabled, formatBool(enabled))
}

func (s *Store) SetHasSeenOnboarding(seen bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hasSeenOnboarding = seen
	s.writer.Set(kv.KeyHasSeenOnboarding, formatBool(seen))
}

// ClearLastAlert dismisses the alert banner. Box statuses are not
// affected; an ALERT box stays in ALERT until a new event resets it.
func (s *Store) ClearLastAlert() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastAlertBoxID = ""
	s.writer.Remove(kv.KeyLastAlertBoxID)
}

// SetAdminPin replaces the admin PIN. Only a bcrypt hash of the PIN is
// kept in memory and in storage.
func (s *Store) SetAdminPin(pin string) error {
	if pin == "" {
		return fmt.Errorf("admin pin must not be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin pin: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.adminPinHash = string(hash)
	s.writer.Set(kv.KeyAdminPin, s.adminPinHash)
	return nil
}

// ClearAdminPin removes the PIN and drops out of admin mode.
func (s *Store) ClearAdminPin() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.adminPinHash = ""
	s.isAdminMode = false
	s.writer.Remove(kv.KeyAdminPin)
}

// EnableAdminMode verifies the PIN and, on success, elevates the
// session. A wrong PIN is reported as false and changes nothing.
func (s *Store) EnableAdminMode(pin string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.adminPinHash == "" {
		return false
	}
	if bcrypt.CompareHashAndPassword([]byte(s.adminPinHash), []byte(pin)) != nil {
		return false
	}

	s.isAdminMode = true
	return true
}

func (s *Store) DisableAdminMode() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.isAdminMode = false
}

// Boxes returns a copy of the box collection.
func (s *Store) Boxes() []Box {
	s.mu.RLock()
	defer s.mu.RUnlock()

	boxes := make([]Box, len(s.boxes))
	copy(boxes, s.boxes)
	return boxes
}

// Box returns one box by id.
func (s *Store) Box(boxID string) (Box, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.boxIndex(boxID)
	if idx < 0 {
		return Box{}, fmt.Errorf("%w: %q", ErrBoxNotFound, boxID)
	}
	return s.boxes[idx], nil
}

// History returns a copy of the event log, newest first.
func (s *Store) History() []HistoryRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := make([]HistoryRecord, len(s.history))
	copy(history, s.history)
	return history
}

// Users returns a copy of the resident roster.
func (s *Store) Users() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]User, len(s.users))
	copy(users, s.users)
	return users
}

func (s *Store) CurrentUserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentUserID
}

// CurrentUser resolves the current user id against the roster.
func (s *Store) CurrentUser() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.userIndex(s.currentUserID)
	if idx < 0 {
		return User{}, false
	}
	return s.users[idx], true
}

func (s *Store) AbnormalAlertEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.abnormalAlertEnabled
}

func (s *Store) LastAlertBoxID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastAlertBoxID
}

// ShowAlertBanner derives banner visibility from its two inputs. It is
// never stored, so it cannot diverge from them.
func (s *Store) ShowAlertBanner() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.abnormalAlertEnabled && s.lastAlertBoxID != ""
}

func (s *Store) AdminPinSet() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.adminPinHash != ""
}

func (s *Store) IsAdminMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAdminMode
}

func (s *Store) HasSeenOnboarding() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasSeenOnboarding
}

func (s *Store) Hydrated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hydrated
}

// Flush blocks until all scheduled storage writes have been attempted.
// Called on shutdown; mutations never wait on it.
func (s *Store) Flush() {
	s.writer.Flush()
}

func (s *Store) boxIndex(boxID string) int {
	for i := range s.boxes {
		if s.boxes[i].ID == boxID {
			return i
		}
	}
	return -1
}

func (s *Store) userIndex(userID string) int {
	for i := range s.users {
		if s.users[i].ID == userID {
			return i
		}
	}
	return -1
}

func (s *Store) userName(userID string) string {
	idx := s.userIndex(userID)
	if idx < 0 {
		return "Unknown user"
	}
	return s.users[idx].Name
}

func (s *Store) persistBoxesLocked() {
	raw, err := json.Marshal(s.boxes)
	if err != nil {
		s.logger.Error("failed to marshal boxes", zap.Error(err))
		return
	}
	s.writer.Set(kv.KeyBoxes, string(raw))
}

func (s *Store) persistHistoryLocked() {
	raw, err := json.Marshal(s.history)
	if err != nil {
		s.logger.Error("failed to marshal history", zap.Error(err))
		return
	}
	s.writer.Set(kv.KeyHistory, string(raw))
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
