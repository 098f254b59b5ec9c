package billing

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stripe/stripe-go/v79"
	"gorm.io/gorm"

	"github.com/donatinator/donatinator/app/models"
)

// fakeRepository backs the reconciler with in-memory state so the event
// flow can be exercised without a database.
type fakeRepository struct {
	events   []*models.StripeEvent
	accounts []*models.Account

	insertErr error
	nextID    uint
}

func (f *fakeRepository) InsertEvent(event *models.StripeEvent) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	for _, existing := range f.events {
		if existing.EventID == event.EventID {
			return gorm.ErrDuplicatedKey
		}
	}
	f.events = append(f.events, event)
	return nil
}

func (f *fakeRepository) GetAccountByEmail(email string) (*models.Account, error) {
	for _, account := range f.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return nil, nil
}

func (f *fakeRepository) CreateAccount(account *models.Account) error {
	f.nextID++
	account.ID = f.nextID
	f.accounts = append(f.accounts, account)
	return nil
}

func customerEvent(id, eventType, custID, email string) (stripe.Event, []byte) {
	raw, _ := json.Marshal(map[string]string{"id": custID, "email": email})
	event := stripe.Event{
		ID:   id,
		Type: stripe.EventType(eventType),
		Data: &stripe.EventData{Raw: raw},
	}
	payload, _ := json.Marshal(map[string]any{"id": id, "type": eventType})
	return event, payload
}

func TestReconcileRecordsEvent(t *testing.T) {
	repo := &fakeRepository{}
	event, payload := customerEvent("evt_123", "charge.succeeded", "", "")

	if err := NewService(repo).Reconcile(event, payload); err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 stored event, got %d", len(repo.events))
	}
	stored := repo.events[0]
	if stored.EventID != "evt_123" {
		t.Fatalf("stored event id = %q, want %q", stored.EventID, "evt_123")
	}
	if stored.EventType != "charge.succeeded" {
		t.Fatalf("stored event type = %q, want %q", stored.EventType, "charge.succeeded")
	}
	if stored.Payload != string(payload) {
		t.Fatalf("stored payload = %q, want the raw delivery body", stored.Payload)
	}
}

func TestReconcileDuplicateEvent(t *testing.T) {
	repo := &fakeRepository{}
	event, payload := customerEvent("evt_dup", "charge.succeeded", "", "")

	if err := NewService(repo).Reconcile(event, payload); err != nil {
		t.Fatalf("first Reconcile() error = %v", err)
	}

	err := NewService(repo).Reconcile(event, payload)
	if !errors.Is(err, ErrEventAlreadyProcessed) {
		t.Fatalf("second Reconcile() error = %v, want ErrEventAlreadyProcessed", err)
	}
	if len(repo.events) != 1 {
		t.Fatalf("expected 1 stored event after redelivery, got %d", len(repo.events))
	}
}

func TestReconcileRewritesTestEventID(t *testing.T) {
	repo := &fakeRepository{}

	for i := 0; i < 2; i++ {
		event, payload := customerEvent(models.StripeTestEventID, "charge.succeeded", "", "")
		if err := NewService(repo).Reconcile(event, payload); err != nil {
			t.Fatalf("Reconcile() #%d error = %v", i+1, err)
		}
	}

	if len(repo.events) != 2 {
		t.Fatalf("expected 2 stored test events, got %d", len(repo.events))
	}
	for _, stored := range repo.events {
		if stored.EventID == models.StripeTestEventID {
			t.Fatalf("test sentinel id was stored verbatim")
		}
		if !strings.HasPrefix(stored.EventID, "evt_local_") {
			t.Fatalf("rewritten event id = %q, want evt_local_ prefix", stored.EventID)
		}
	}
	if repo.events[0].EventID == repo.events[1].EventID {
		t.Fatalf("rewritten event ids collided: %q", repo.events[0].EventID)
	}
}

func TestReconcileAttributesToSyntheticAccount(t *testing.T) {
	repo := &fakeRepository{}
	event, payload := customerEvent("evt_anon", "charge.succeeded", "", "")

	if err := NewService(repo).Reconcile(event, payload); err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	synthetic, _ := repo.GetAccountByEmail(models.SyntheticStripeEmail)
	if synthetic == nil {
		t.Fatalf("expected synthetic account to be created")
	}
	if synthetic.CanSignIn() {
		t.Fatalf("synthetic account must not be able to sign in")
	}
	if repo.events[0].AccountID == nil || *repo.events[0].AccountID != synthetic.ID {
		t.Fatalf("event not attributed to the synthetic account")
	}

	// A second anonymous event reuses the same synthetic account.
	event2, payload2 := customerEvent("evt_anon_2", "charge.succeeded", "", "")
	if err := NewService(repo).Reconcile(event2, payload2); err != nil {
		t.Fatalf("second Reconcile() error = %v", err)
	}
	if len(repo.accounts) != 1 {
		t.Fatalf("expected 1 account, got %d", len(repo.accounts))
	}
}

func TestReconcileAttributesToKnownAccount(t *testing.T) {
	repo := &fakeRepository{}
	admin, err := models.NewAdminAccount("admin@example.com", "Admin", "correct horse battery")
	if err != nil {
		t.Fatalf("NewAdminAccount() error = %v", err)
	}
	if err := repo.CreateAccount(admin); err != nil {
		t.Fatalf("CreateAccount() error = %v", err)
	}

	event, payload := customerEvent("evt_known", "charge.succeeded", "cus_1", "admin@example.com")
	if err := NewService(repo).Reconcile(event, payload); err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	if repo.events[0].AccountID == nil || *repo.events[0].AccountID != admin.ID {
		t.Fatalf("event not attributed to the matching account")
	}
	if len(repo.accounts) != 1 {
		t.Fatalf("expected no synthetic account when the email matches, got %d accounts", len(repo.accounts))
	}
}

func TestReconcileCustomerCreatedEnsuresAccount(t *testing.T) {
	repo := &fakeRepository{}
	event, payload := customerEvent("evt_cust", "customer.created", "cus_42", "donor@example.com")

	if err := NewService(repo).Reconcile(event, payload); err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	donor, _ := repo.GetAccountByEmail("donor@example.com")
	if donor == nil {
		t.Fatalf("expected donor account to be created")
	}
	if donor.StripeCustomerID == nil || *donor.StripeCustomerID != "cus_42" {
		t.Fatalf("donor account missing stripe customer id")
	}
	if donor.CanSignIn() {
		t.Fatalf("donor account created from an event must not be able to sign in")
	}
}

func TestReconcileCustomerUpdatedIsIdempotent(t *testing.T) {
	repo := &fakeRepository{}

	created, createdPayload := customerEvent("evt_c1", "customer.created", "cus_7", "repeat@example.com")
	if err := NewService(repo).Reconcile(created, createdPayload); err != nil {
		t.Fatalf("Reconcile(created) error = %v", err)
	}

	updated, updatedPayload := customerEvent("evt_c2", "customer.updated", "cus_7", "repeat@example.com")
	if err := NewService(repo).Reconcile(updated, updatedPayload); err != nil {
		t.Fatalf("Reconcile(updated) error = %v", err)
	}

	count := 0
	for _, account := range repo.accounts {
		if account.Email == "repeat@example.com" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 donor account, got %d", count)
	}
}

func TestReconcileInsertErrorIsReturned(t *testing.T) {
	wantErr := errors.New("connection lost")
	repo := &fakeRepository{insertErr: wantErr}
	event, payload := customerEvent("evt_fail", "charge.succeeded", "", "")

	err := NewService(repo).Reconcile(event, payload)
	if !errors.Is(err, wantErr) {
		t.Fatalf("Reconcile() error = %v, want the insert error", err)
	}
}
