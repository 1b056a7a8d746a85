package stability

// Store is the ordered collection of finalized batch records, newest first.
// Entries are append-only history: the only mutations are Prepend and
// RemoveAt. A Store is owned by a single workspace and is not safe for
// concurrent use.
type Store struct {
	records []BatchRecord
}

// NewStore builds a store holding copies of records in the given order.
func NewStore(records ...BatchRecord) *Store {
	s := &Store{records: make([]BatchRecord, 0, len(records))}
	for _, record := range records {
		s.records = append(s.records, record.Clone())
	}
	return s
}

// Prepend adds a copy of record to the front of the store.
func (s *Store) Prepend(record BatchRecord) {
	s.records = append([]BatchRecord{record.Clone()}, s.records...)
}

// RemoveAt deletes the record at index and shifts later records down.
// Out-of-range indexes leave the store untouched.
func (s *Store) RemoveAt(index int) error {
	if index < 0 || index >= len(s.records) {
		return recordOutOfRange(index, len(s.records))
	}
	s.records = append(s.records[:index:index], s.records[index+1:]...)
	return nil
}

// At returns a copy of the record at index.
func (s *Store) At(index int) (BatchRecord, error) {
	if index < 0 || index >= len(s.records) {
		return BatchRecord{}, recordOutOfRange(index, len(s.records))
	}
	return s.records[index].Clone(), nil
}

// List returns a copy of every record in store order.
func (s *Store) List() []BatchRecord {
	out := make([]BatchRecord, len(s.records))
	for i, record := range s.records {
		out[i] = record.Clone()
	}
	return out
}

// Len reports the number of stored records.
func (s *Store) Len() int {
	return len(s.records)
}

// Chambers returns the distinct chambers referenced by the stored records.
func (s *Store) Chambers() []string {
	return DistinctChambers(s.records)
}
