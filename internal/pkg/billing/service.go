package billing

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"gorm.io/gorm"

	"github.com/donatinator/donatinator/app/models"
	"github.com/donatinator/donatinator/internal/pkg/database"
)

// ErrEventAlreadyProcessed reports that an event with the same id was
// durably recorded by an earlier delivery. The webhook endpoint treats this
// as success so Stripe's redelivery never turns into a retry storm.
var ErrEventAlreadyProcessed = errors.New("stripe event already processed")

// Service reconciles verified Stripe events against local account state.
// All of one event's writes go through a single Repository, i.e. a single
// execution context.
type Service struct {
	repo Repository
}

// NewService creates an event reconciliation service from an injected
// repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ProcessEvent records a verified event and performs the account
// reconciliation its type calls for, all inside one transaction. When db
// already carries an open transaction it is reused rather than nested.
// payload is the raw delivery body, stored verbatim as the audit record.
func ProcessEvent(db *gorm.DB, event stripe.Event, payload []byte) error {
	return database.WithinTransaction(db, func(tx *gorm.DB) error {
		return NewService(NewRepository(tx)).Reconcile(event, payload)
	})
}

// Reconcile runs the ordered reconciliation steps for one event. The caller
// is responsible for the transactional scope.
func (s *Service) Reconcile(event stripe.Event, payload []byte) error {
	cust := customerFromEvent(event)

	account, err := s.attributionAccount(cust.Email)
	if err != nil {
		return err
	}

	row := &models.StripeEvent{
		EventID:   storableEventID(event.ID),
		EventType: string(event.Type),
		Payload:   string(payload),
	}
	if account != nil {
		row.AccountID = &account.ID
	}

	if err := s.repo.InsertEvent(row); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEventAlreadyProcessed
		}
		return err
	}

	switch event.Type {
	case "customer.created", "customer.updated":
		return s.ensureAccount(cust)
	}

	// not processing this event type; it is still durably recorded above
	return nil
}

// storableEventID rewrites Stripe's fixed test-delivery sentinel (and the
// empty id) to a freshly generated id so repeated test pings never collide.
func storableEventID(id string) string {
	if id == "" || id == models.StripeTestEventID {
		return newEventID()
	}
	return id
}

func newEventID() string {
	return "evt_local_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// attributionAccount resolves which account the stored event row points at:
// the account matching the customer email in the payload when one exists,
// otherwise the synthetic provider account (created on demand).
func (s *Service) attributionAccount(email string) (*models.Account, error) {
	if email != "" {
		account, err := s.repo.GetAccountByEmail(email)
		if err != nil {
			return nil, err
		}
		if account != nil {
			return account, nil
		}
	}

	account, err := s.repo.GetAccountByEmail(models.SyntheticStripeEmail)
	if err != nil {
		return nil, err
	}
	if account != nil {
		return account, nil
	}

	account = models.NewSyntheticAccount(models.SyntheticStripeEmail, "Stripe")
	if err := s.repo.CreateAccount(account); err != nil {
		return nil, err
	}
	return account, nil
}

// ensureAccount makes sure a customer event's email has a local account.
// An existing account is left untouched; this system does not track
// field-level customer drift.
func (s *Service) ensureAccount(cust eventCustomer) error {
	if cust.Email == "" {
		return nil
	}

	account, err := s.repo.GetAccountByEmail(cust.Email)
	if err != nil {
		return err
	}
	if account != nil {
		return nil
	}

	newAccount := &models.Account{
		Email: cust.Email,
	}
	if cust.ID != "" {
		customerID := cust.ID
		newAccount.StripeCustomerID = &customerID
	}
	return s.repo.CreateAccount(newAccount)
}

// eventCustomer is the slice of the event payload this system cares about.
type eventCustomer struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func customerFromEvent(event stripe.Event) eventCustomer {
	var cust eventCustomer
	if event.Data == nil || len(event.Data.Raw) == 0 {
		return cust
	}
	// Non-customer payloads simply won't carry these fields.
	_ = json.Unmarshal(event.Data.Raw, &cust)
	return cust
}
