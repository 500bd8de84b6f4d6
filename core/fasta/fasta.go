// core/fasta/fasta.go
package fasta

// Record is a single named sequence.
type Record struct {
	ID  string
	Seq string
}

// Records is an order-preserving collection of named sequences. Iteration
// order is the order records were added (file order when parsed), and that
// order is a contract: feature matrix rows and prediction output follow it.
type Records struct {
	list  []Record
	index map[string]int
}

// NewRecords returns an empty collection.
func NewRecords() *Records {
	return &Records{index: make(map[string]int)}
}

// Add appends a record, or replaces the sequence in place when the ID is
// already present (the original position is kept).
func (r *Records) Add(id, seq string) {
	if i, ok := r.index[id]; ok {
		r.list[i].Seq = seq
		return
	}
	r.index[id] = len(r.list)
	r.list = append(r.list, Record{ID: id, Seq: seq})
}

// Len returns the number of records.
func (r *Records) Len() int { return len(r.list) }

// At returns the i-th record in insertion order.
func (r *Records) At(i int) Record { return r.list[i] }

// Get looks a sequence up by ID.
func (r *Records) Get(id string) (string, bool) {
	i, ok := r.index[id]
	if !ok {
		return "", false
	}
	return r.list[i].Seq, true
}

// IDs returns all record IDs in insertion order.
func (r *Records) IDs() []string {
	out := make([]string, len(r.list))
	for i, rec := range r.list {
		out[i] = rec.ID
	}
	return out
}

// Seqs returns all sequences in insertion order.
func (r *Records) Seqs() []string {
	out := make([]string, len(r.list))
	for i, rec := range r.list {
		out[i] = rec.Seq
	}
	return out
}
