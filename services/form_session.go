package services

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yeremiapane/bakery-order-app/models"
	"github.com/yeremiapane/bakery-order-app/utils"
)

// FormMaxItems bounds the item rows a single form may hold. The share link
// and the add-item endpoint are unauthenticated, so the row count cannot be
// left to the caller.
const FormMaxItems = 10

// FormSession owns the mutable OrderForm of one customer while they fill the
// form. Stored attachment files belong to the session: they are removed when
// replaced, when their item row is removed, and when the session closes.
type FormSession struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	form       models.OrderForm
	submitting bool
	lastActive time.Time
}

// LastActive reports when the form was last touched.
func (s *FormSession) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// callers hold s.mu
func (s *FormSession) touch() {
	s.lastActive = time.Now()
}

// Mutate applies fn to the form under the session lock.
func (s *FormSession) Mutate(fn func(*models.OrderForm)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	fn(&s.form)
}

// Snapshot returns a copy of the current form, with its own items slice.
func (s *FormSession) Snapshot() models.OrderForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	form := s.form
	form.Items = make([]models.ItemSelection, len(s.form.Items))
	copy(form.Items, s.form.Items)
	return form
}

// AddItem appends an empty item row and returns the new row count.
func (s *FormSession) AddItem() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if len(s.form.Items) >= FormMaxItems {
		return 0, fmt.Errorf("the order is limited to %d products", FormMaxItems)
	}
	s.form.Items = append(s.form.Items, models.ItemSelection{Quantity: 1})
	return len(s.form.Items), nil
}

// RemoveItem deletes an item row and releases its attachment. The form always
// keeps at least one row.
func (s *FormSession) RemoveItem(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if index < 0 || index >= len(s.form.Items) {
		return fmt.Errorf("no product at position %d", index+1)
	}
	if len(s.form.Items) == 1 {
		return fmt.Errorf("the order must keep at least one product")
	}
	removeAttachment(s.form.Items[index].ReferenceImagePath)
	s.form.Items = append(s.form.Items[:index], s.form.Items[index+1:]...)
	return nil
}

// AttachItemImage stores a new reference image path on an item row, releasing
// the previous file if one was attached.
func (s *FormSession) AttachItemImage(index int, localPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if index < 0 || index >= len(s.form.Items) {
		return fmt.Errorf("no product at position %d", index+1)
	}
	removeAttachment(s.form.Items[index].ReferenceImagePath)
	s.form.Items[index].ReferenceImagePath = localPath
	return nil
}

// AttachPaymentScreenshot stores the payment proof path, replacing any
// previous file.
func (s *FormSession) AttachPaymentScreenshot(localPath string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	removeAttachment(s.form.PaymentScreenshotPath)
	s.form.PaymentScreenshotPath = localPath
}

// BeginSubmit marks the session as having a submission in flight. It returns
// false when one already is, so duplicate inserts cannot happen.
func (s *FormSession) BeginSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if s.submitting {
		return false
	}
	s.submitting = true
	return true
}

func (s *FormSession) EndSubmit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
}

func (s *FormSession) releaseFiles() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.form.Items {
		removeAttachment(s.form.Items[i].ReferenceImagePath)
		s.form.Items[i].ReferenceImagePath = ""
	}
	removeAttachment(s.form.PaymentScreenshotPath)
	s.form.PaymentScreenshotPath = ""
}

func removeAttachment(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		utils.ErrorLogger.Printf("Error removing attachment %s: %v", path, err)
	}
}

// SessionStore is the in-process registry of open form sessions. Start runs a
// background sweep that closes forms nobody touched for MaxIdle, so abandoned
// sessions and their attachment files do not pile up.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*FormSession

	SweepInterval time.Duration
	MaxIdle       time.Duration
	stop          chan struct{}
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions:      make(map[string]*FormSession),
		SweepInterval: 15 * time.Minute,
		MaxIdle:       2 * time.Hour,
	}
}

// Start launches the abandoned-session sweeper.
func (st *SessionStore) Start() {
	st.stop = make(chan struct{})
	go func() {
		ticker := time.NewTicker(st.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := st.Sweep(st.MaxIdle); n > 0 {
					utils.InfoLogger.Printf("Closed %d abandoned form session(s)", n)
				}
			case <-st.stop:
				return
			}
		}
	}()
}

func (st *SessionStore) Stop() {
	if st.stop != nil {
		close(st.stop)
	}
}

// Sweep closes every session idle for longer than maxIdle and returns how
// many were closed.
func (st *SessionStore) Sweep(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	st.mu.Lock()
	var expired []*FormSession
	for id, session := range st.sessions {
		if session.LastActive().Before(cutoff) {
			delete(st.sessions, id)
			expired = append(expired, session)
		}
	}
	st.mu.Unlock()

	for _, session := range expired {
		session.releaseFiles()
	}
	return len(expired)
}

// Open creates a session for a subscriber with the requested number of item
// rows (clamped to 1..FormMaxItems), pickup selected by default.
func (st *SessionStore) Open(subscriberID string, numItems int) *FormSession {
	if numItems < 1 {
		numItems = 1
	}
	if numItems > FormMaxItems {
		numItems = FormMaxItems
	}
	items := make([]models.ItemSelection, numItems)
	for i := range items {
		items[i].Quantity = 1
	}

	session := &FormSession{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now(),
		lastActive: time.Now(),
		form: models.OrderForm{
			SubscriberID:   subscriberID,
			Items:          items,
			DeliveryOption: models.DeliveryOptionPickup,
		},
	}

	st.mu.Lock()
	st.sessions[session.ID] = session
	st.mu.Unlock()
	return session
}

func (st *SessionStore) Get(id string) (*FormSession, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	session, ok := st.sessions[id]
	return session, ok
}

// Close removes a session and releases every file it still owns.
func (st *SessionStore) Close(id string) {
	st.mu.Lock()
	session, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()
	if ok {
		session.releaseFiles()
	}
}
