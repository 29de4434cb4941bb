package persistence

import (
	"bytes"
	"slices"

	"github.com/dfryer1193/agenda/contacts/domain"
)

var _ domain.ContactDirectory = (*HashDirectory)(nil)

// DefaultBucketCount is the bucket count used when none is configured.
const DefaultBucketCount = 10

// HashDirectory implements domain.ContactDirectory as a fixed-size hash table
// with one chain per bucket. The table never grows or rehashes.
// It is not safe for concurrent use.
type HashDirectory struct {
	buckets [][]*domain.Contact
}

// NewHashDirectory creates an empty directory with bucketCount buckets.
// A non-positive bucketCount falls back to DefaultBucketCount.
func NewHashDirectory(bucketCount int) *HashDirectory {
	if bucketCount <= 0 {
		bucketCount = DefaultBucketCount
	}

	return &HashDirectory{
		buckets: make([][]*domain.Contact, bucketCount),
	}
}

// BucketCount returns the fixed number of buckets.
func (d *HashDirectory) BucketCount() int {
	return len(d.buckets)
}

// BucketOf hashes name by summing its code points modulo the bucket count.
// Anagrams always share a bucket.
func (d *HashDirectory) BucketOf(name string) int {
	sum := 0
	for _, r := range name {
		sum += int(r)
	}
	return sum % len(d.buckets)
}

// AddOrUpdate appends a new contact to its bucket chain, or overwrites the
// phone of the existing one. The stored image is only replaced when a
// non-empty image is supplied.
func (d *HashDirectory) AddOrUpdate(name, phone string, image []byte) domain.Outcome {
	idx := d.BucketOf(name)

	if c := d.lookup(idx, name); c != nil {
		c.Phone = phone
		if len(image) > 0 {
			c.Image = bytes.Clone(image)
		}
		return domain.OutcomeUpdated
	}

	c := &domain.Contact{
		Name:  name,
		Phone: phone,
	}
	if len(image) > 0 {
		c.Image = bytes.Clone(image)
	}
	d.buckets[idx] = append(d.buckets[idx], c)

	return domain.OutcomeAdded
}

// Find returns a copy of the contact stored under name.
func (d *HashDirectory) Find(name string) (domain.Contact, bool) {
	c := d.lookup(d.BucketOf(name), name)
	if c == nil {
		return domain.Contact{}, false
	}
	return c.Clone(), true
}

// Delete removes name from its chain, keeping the order of the remaining contacts.
func (d *HashDirectory) Delete(name string) domain.Outcome {
	idx := d.BucketOf(name)

	i := slices.IndexFunc(d.buckets[idx], func(c *domain.Contact) bool {
		return c.Name == name
	})
	if i < 0 {
		return domain.OutcomeNotFound
	}

	d.buckets[idx] = slices.Delete(d.buckets[idx], i, i+1)
	return domain.OutcomeDeleted
}

// ListAll returns copies of every contact, by ascending bucket and then chain order.
func (d *HashDirectory) ListAll() []domain.Entry {
	entries := make([]domain.Entry, 0)
	for i, chain := range d.buckets {
		for _, c := range chain {
			entries = append(entries, domain.Entry{
				Bucket:  i,
				Contact: c.Clone(),
			})
		}
	}
	return entries
}

// Len returns the number of stored contacts.
func (d *HashDirectory) Len() int {
	n := 0
	for _, chain := range d.buckets {
		n += len(chain)
	}
	return n
}

func (d *HashDirectory) lookup(idx int, name string) *domain.Contact {
	for _, c := range d.buckets[idx] {
		if c.Name == name {
			return c
		}
	}
	return nil
}
