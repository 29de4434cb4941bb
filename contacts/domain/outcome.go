package domain

// Outcome is the result signal of a directory mutation or lookup.
type Outcome string

const (
	OutcomeAdded    Outcome = "added"
	OutcomeUpdated  Outcome = "updated"
	OutcomeDeleted  Outcome = "deleted"
	OutcomeNotFound Outcome = "not_found"
)

// Message renders the status text shown to users for name.
func (o Outcome) Message(name string) string {
	switch o {
	case OutcomeAdded:
		return "contact added: " + name
	case OutcomeUpdated:
		return "contact updated: " + name
	case OutcomeDeleted:
		return "contact deleted: " + name
	case OutcomeNotFound:
		return "contact not found: " + name
	default:
		return string(o) + ": " + name
	}
}
