package domain

// DomainID identifies an execution domain inside the managed runtime.
// Ids are unique among live registrations but may be reused once a domain
// has been torn down.
type DomainID int32

// Entry is a single named assembly image.
type Entry struct {
	// Name is the assembly name matched against resolution requests.
	Name string

	// Image is the raw assembly bytes, owned by the enclosing BlobSet.
	Image []byte
}

// Len returns the length of the owned image.
func (e Entry) Len() int {
	return len(e.Image)
}

// BlobSet is the set of assembly images registered for one domain.
// It is fully built by NewBlobSet before anything can observe it and is
// never modified afterwards, except by Release.
type BlobSet struct {
	domainID DomainID
	entries  []Entry
	released bool
}

// NewBlobSet creates a set owning the given entries. The caller hands over
// ownership of entries and their images and must not modify them afterwards.
func NewBlobSet(id DomainID, entries []Entry) *BlobSet {
	return &BlobSet{
		domainID: id,
		entries:  entries,
	}
}

// DomainID returns the id of the owning domain.
func (s *BlobSet) DomainID() DomainID {
	return s.domainID
}

// Len returns the number of entries.
func (s *BlobSet) Len() int {
	return len(s.entries)
}

// Entry returns the i-th entry in registration order.
func (s *BlobSet) Entry(i int) Entry {
	return s.entries[i]
}

// Entries returns the entries in registration order. The returned slice is a
// copy; the images are borrowed and must not be modified.
func (s *BlobSet) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Find returns the first entry whose name equals name exactly.
// Later entries with the same name are shadowed.
func (s *BlobSet) Find(name string) (Entry, bool) {
	for _, e := range s.entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// TotalBytes returns the sum of all image lengths.
func (s *BlobSet) TotalBytes() int {
	var total int
	for _, e := range s.entries {
		total += len(e.Image)
	}
	return total
}

// Release drops every owned name and image. It is safe to call more than once.
func (s *BlobSet) Release() {
	for i := range s.entries {
		s.entries[i] = Entry{}
	}
	s.entries = nil
	s.released = true
}

// Released reports whether Release has been called.
func (s *BlobSet) Released() bool {
	return s.released
}
