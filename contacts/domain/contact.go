package domain

import (
	"bytes"
)

// DefaultAvatarURL is shown by clients for contacts without a photo.
const DefaultAvatarURL = "https://cdn-icons-png.flaticon.com/512/747/747376.png"

// Contact represents one stored entry of the directory, keyed by Name.
// Image is an opaque payload; nil means no photo was ever supplied.
type Contact struct {
	Name  string
	Phone string
	Image []byte
}

// HasImage reports whether a photo is stored for the contact.
func (c Contact) HasImage() bool {
	return len(c.Image) > 0
}

func (c Contact) String() string {
	return c.Name + ": " + c.Phone
}

// Clone returns a copy that shares no memory with c.
func (c Contact) Clone() Contact {
	c.Image = bytes.Clone(c.Image)
	return c
}

// Entry pairs a contact with the bucket that holds it.
type Entry struct {
	Bucket  int
	Contact Contact
}

// ContactDirectory is a name-keyed store of contacts.
// Implementations are not required to be safe for concurrent use.
type ContactDirectory interface {
	// AddOrUpdate stores a new contact or overwrites the phone of an existing one.
	// An empty image leaves a previously stored image untouched.
	AddOrUpdate(name, phone string, image []byte) Outcome

	// Find returns the contact stored under name.
	Find(name string) (Contact, bool)

	// Delete removes the contact stored under name.
	Delete(name string) Outcome

	// ListAll returns every contact with its bucket, in bucket then insertion order.
	ListAll() []Entry

	// BucketOf returns the bucket index a name hashes to.
	BucketOf(name string) int

	// Len returns the number of stored contacts.
	Len() int
}
