package dist

import "fmt"

// Compile-time assertions for capability conformance.
var (
	_ Starter[string]         = (*SparseStart[string])(nil)
	_ Emitter[string, string] = (*SparseEmit[string, string])(nil)
	_ Transor[string]         = (*SparseTrans[string])(nil)
)

// stateSet is an insertion-ordered set of states.
type stateSet[S comparable] struct {
	idx   map[S]int
	order []S
}

func newStateSet[S comparable]() stateSet[S] {
	return stateSet[S]{idx: make(map[S]int)}
}

func (ss *stateSet[S]) add(s S) {
	if _, ok := ss.idx[s]; !ok {
		ss.idx[s] = len(ss.order)
		ss.order = append(ss.order, s)
	}
}

func (ss *stateSet[S]) has(s S) bool {
	_, ok := ss.idx[s]

	return ok
}

func (ss *stateSet[S]) list() []S { return append([]S(nil), ss.order...) }

// SparseStart is a hash-keyed start distribution.
type SparseStart[S comparable] struct {
	states stateSet[S]
	p      map[S]float64
}

// NewSparseStart returns an empty start distribution.
func NewSparseStart[S comparable]() *SparseStart[S] {
	return &SparseStart[S]{states: newStateSet[S](), p: make(map[S]float64)}
}

// Set records P(start = s) = p, registering s.
func (d *SparseStart[S]) Set(s S, p float64) error {
	if err := checkProb(fmt.Sprintf("SparseStart.Set(%v)", s), p); err != nil {
		return err
	}
	d.states.add(s)
	d.p[s] = p

	return nil
}

// Start returns P(start = s); ErrUnknownState when s was never registered.
func (d *SparseStart[S]) Start(s S) (float64, error) {
	p, ok := d.p[s]
	if !ok {
		return 0, unknownState("SparseStart.Start", s)
	}

	return p, nil
}

// States returns the registered states in insertion order.
func (d *SparseStart[S]) States() []S { return d.states.list() }

// SparseEmit is a hash-keyed emission distribution.
type SparseEmit[S, O comparable] struct {
	states stateSet[S]
	rows   map[S]map[O]float64
}

// NewSparseEmit returns an empty emission distribution.
func NewSparseEmit[S, O comparable]() *SparseEmit[S, O] {
	return &SparseEmit[S, O]{states: newStateSet[S](), rows: make(map[S]map[O]float64)}
}

// AddState registers s with no observations; every Emit(s, ·) is then 0.
func (d *SparseEmit[S, O]) AddState(s S) {
	d.states.add(s)
	if d.rows[s] == nil {
		d.rows[s] = make(map[O]float64)
	}
}

// Set records P(o | s) = p, registering s.
func (d *SparseEmit[S, O]) Set(s S, o O, p float64) error {
	if err := checkProb(fmt.Sprintf("SparseEmit.Set(%v,%v)", s, o), p); err != nil {
		return err
	}
	d.AddState(s)
	d.rows[s][o] = p

	return nil
}

// Emit returns P(o | s). An unseen o for a known s is 0; an unknown s is an error.
func (d *SparseEmit[S, O]) Emit(s S, o O) (float64, error) {
	row, ok := d.rows[s]
	if !ok {
		return 0, unknownState("SparseEmit.Emit", s)
	}

	return row[o], nil
}

// States returns the registered states in insertion order.
func (d *SparseEmit[S, O]) States() []S { return d.states.list() }

// SparseTrans is a hash-keyed transition distribution.
type SparseTrans[S comparable] struct {
	states stateSet[S]
	rows   map[S]map[S]float64
}

// NewSparseTrans returns an empty transition distribution.
func NewSparseTrans[S comparable]() *SparseTrans[S] {
	return &SparseTrans[S]{states: newStateSet[S](), rows: make(map[S]map[S]float64)}
}

// AddState registers s without outgoing transitions.
func (d *SparseTrans[S]) AddState(s S) { d.states.add(s) }

// Set records P(to | from) = p, registering both states.
func (d *SparseTrans[S]) Set(from, to S, p float64) error {
	if err := checkProb(fmt.Sprintf("SparseTrans.Set(%v,%v)", from, to), p); err != nil {
		return err
	}
	d.states.add(from)
	d.states.add(to)
	row := d.rows[from]
	if row == nil {
		row = make(map[S]float64)
		d.rows[from] = row
	}
	row[to] = p

	return nil
}

// Trans returns P(to | from). A known from with an unseen to is 0; an unknown from is an error.
func (d *SparseTrans[S]) Trans(from, to S) (float64, error) {
	if !d.states.has(from) {
		return 0, unknownState("SparseTrans.Trans", from)
	}

	return d.rows[from][to], nil
}

// States returns every registered state (sources and targets) in insertion order.
func (d *SparseTrans[S]) States() []S { return d.states.list() }
