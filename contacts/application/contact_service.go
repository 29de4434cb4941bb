package application

import (
	"sync"

	"github.com/dfryer1193/agenda/contacts/domain"
	"github.com/dfryer1193/agenda/internal/metrics"
	"github.com/rs/zerolog/log"
)

// SaveResult is what a successful save reports back to the caller.
type SaveResult struct {
	Name           string
	Outcome        domain.Outcome
	Classification domain.Classification
}

// Message combines the add/update status with the phone classification.
func (r SaveResult) Message() string {
	return r.Outcome.Message(r.Name) + "\n" + r.Classification.Message
}

// ContactService is the call contract used by the shell. It checks required
// fields and phone numbers before touching the directory and serializes all
// directory access behind a single lock.
type ContactService struct {
	mu  sync.Mutex
	dir domain.ContactDirectory
}

func NewContactService(dir domain.ContactDirectory) *ContactService {
	return &ContactService{
		dir: dir,
	}
}

// Classify checks a phone number without storing anything.
func (s *ContactService) Classify(phone string) domain.Classification {
	c := domain.Classify(phone)
	metrics.RecordPhoneCheck(string(c.Class))
	return c
}

// Save adds or updates a contact. It returns domain.ErrMissingField when name
// or phone is empty and a *domain.InvalidPhoneError when the phone is rejected.
// A nil or empty image keeps whatever image is already stored.
func (s *ContactService) Save(name, phone string, image []byte) (SaveResult, error) {
	if name == "" || phone == "" {
		log.Info().Str("name", name).Msg("Rejected contact with missing fields")
		return SaveResult{}, domain.ErrMissingField
	}

	classification, err := domain.ValidatePhone(phone)
	metrics.RecordPhoneCheck(string(classification.Class))
	if err != nil {
		log.Info().Str("name", name).Str("phone", phone).Str("reason", classification.Message).Msg("Rejected contact with invalid phone")
		return SaveResult{}, err
	}

	s.mu.Lock()
	outcome := s.dir.AddOrUpdate(name, phone, image)
	size := s.dir.Len()
	bucket := s.dir.BucketOf(name)
	s.mu.Unlock()

	metrics.RecordDirectoryOp("add_or_update", string(outcome), size)
	log.Debug().
		Str("name", name).
		Int("bucket", bucket).
		Bool("image", len(image) > 0).
		Str("outcome", string(outcome)).
		Msg("Saved contact")

	return SaveResult{
		Name:           name,
		Outcome:        outcome,
		Classification: classification,
	}, nil
}

// Find looks up a contact by exact name.
func (s *ContactService) Find(name string) (domain.Contact, bool) {
	s.mu.Lock()
	c, ok := s.dir.Find(name)
	size := s.dir.Len()
	s.mu.Unlock()

	outcome := "found"
	if !ok {
		outcome = string(domain.OutcomeNotFound)
	}
	metrics.RecordDirectoryOp("find", outcome, size)
	log.Debug().Str("name", name).Str("outcome", outcome).Msg("Looked up contact")

	return c, ok
}

// Delete removes a contact. A missing name is reported as domain.OutcomeNotFound.
func (s *ContactService) Delete(name string) domain.Outcome {
	s.mu.Lock()
	outcome := s.dir.Delete(name)
	size := s.dir.Len()
	s.mu.Unlock()

	metrics.RecordDirectoryOp("delete", string(outcome), size)
	log.Debug().Str("name", name).Str("outcome", string(outcome)).Msg("Deleted contact")

	return outcome
}

// BucketOf reports the bucket a name is, or would be, stored in.
func (s *ContactService) BucketOf(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dir.BucketOf(name)
}

// List returns every contact paired with its bucket, in bucket order.
func (s *ContactService) List() []domain.Entry {
	s.mu.Lock()
	entries := s.dir.ListAll()
	s.mu.Unlock()

	metrics.RecordDirectoryOp("list_all", "ok", len(entries))

	return entries
}
