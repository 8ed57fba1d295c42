// Package store persists named collections as JSON snapshots under dedicated
// keys. Every mutation in the system is staged into a Batch and applied in a
// single atomic step so that cross-collection cascades are never observable
// half-done. The store assumes a single writer process.
package store

// Snapshot keys. The sc_ prefix is kept from the original deployment so that
// exported state remains interchangeable.
const (
	KeyCourses        = "sc_courses"
	KeyTestSeries     = "sc_test_series"
	KeyHeroPosters    = "sc_hero_posters"
	KeyEnrollments    = "sc_enrollments"
	KeyPopup          = "sc_popup"
	KeyStudents       = "sc_students"
	KeyRole           = "sc_role"
	KeyCurrentStudent = "sc_current_student"
)

// Batch collects snapshot writes and deletions to be applied atomically.
type Batch struct {
	sets    map[string][]byte
	deletes map[string]struct{}
	order   []string
}

// NewBatch returns an empty batch.
func NewBatch() *Batch {
	return &Batch{
		sets:    make(map[string][]byte),
		deletes: make(map[string]struct{}),
	}
}

// Set stages a snapshot write for the key.
func (b *Batch) Set(key string, value []byte) {
	if _, seen := b.sets[key]; !seen {
		b.order = append(b.order, key)
	}
	b.sets[key] = value
	delete(b.deletes, key)
}

// Delete stages removal of the key.
func (b *Batch) Delete(key string) {
	delete(b.sets, key)
	b.deletes[key] = struct{}{}
}

// Empty reports whether the batch stages no changes.
func (b *Batch) Empty() bool {
	return len(b.sets) == 0 && len(b.deletes) == 0
}

// Sets returns staged writes in insertion order.
func (b *Batch) Sets() []KV {
	kvs := make([]KV, 0, len(b.sets))
	for _, key := range b.order {
		if value, ok := b.sets[key]; ok {
			kvs = append(kvs, KV{Key: key, Value: value})
		}
	}
	return kvs
}

// Deletes returns staged deletions.
func (b *Batch) Deletes() []string {
	keys := make([]string, 0, len(b.deletes))
	for key := range b.deletes {
		keys = append(keys, key)
	}
	return keys
}

// KV is a staged key/value pair.
type KV struct {
	Key   string
	Value []byte
}
