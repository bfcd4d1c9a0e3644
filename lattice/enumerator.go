// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/quasicut/quadform"
)

// Enumerator walks the integer vectors satisfying every attached constraint.
// All per-depth state is allocated once; Next advances the walk to the next
// complete vector.
type Enumerator struct {
	dim  int
	inst []*quadform.Instance
	opts Options

	current []int // candidate under construction
	inc     []int // next zigzag increment per depth
	stop    []int // exhaustion marker per depth (range min − 1)

	q     [][]float64       // running minimum per cascade and depth
	exact [][]bool          // q[k][d] is exact
	steps [][]quadform.Step // evaluated level per cascade and depth
	ivs   []quadform.Interval

	depth   int
	started bool
	done    bool
	emitted int
	out     Vector
	err     error
}

// New returns an Enumerator over Q(n+v) ≤ c0·(1+eps) for the form reduced in c.
// c must bound every coordinate (a positive-definite form reduced strictly).
//
// Errors: ErrNilCascade, ErrDimensionMismatch, ErrUnbounded, and
// quadform.ErrInvalidBound for a bad c0.
func New(c *quadform.Cascade, v []float64, c0 float64, opts ...Option) (*Enumerator, error) {
	o := gather(opts)
	if c == nil {
		return nil, fmt.Errorf("New: %w", ErrNilCascade)
	}
	in, err := instance(c, v, c0, o.Epsilon)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return newEnumerator(o, in)
}

// NewDual returns an Enumerator over Q_par(n+v) ≤ c0' and Q_perp(n+v) ≤ c0',
// c0' = c0·(1+eps). combined must be the reduction of Q_par+Q_perp; it is
// checked against 2·c0' and bounds the coordinates that the semidefinite
// par/perp cascades leave open.
//
// Errors: ErrNilCascade, ErrDimensionMismatch, ErrUnbounded, quadform.ErrInvalidBound.
func NewDual(par, perp, combined *quadform.Cascade, v []float64, c0 float64, opts ...Option) (*Enumerator, error) {
	o := gather(opts)
	if par == nil || perp == nil || combined == nil {
		return nil, fmt.Errorf("NewDual: %w", ErrNilCascade)
	}
	if par.Dim() != perp.Dim() || par.Dim() != combined.Dim() {
		return nil, fmt.Errorf("NewDual: par=%d perp=%d combined=%d: %w",
			par.Dim(), perp.Dim(), combined.Dim(), ErrDimensionMismatch)
	}
	ip, err := instance(par, v, c0, o.Epsilon)
	if err != nil {
		return nil, fmt.Errorf("NewDual: %w", err)
	}
	iq, err := instance(perp, v, c0, o.Epsilon)
	if err != nil {
		return nil, fmt.Errorf("NewDual: %w", err)
	}
	ic, err := instance(combined, v, 2*c0, o.Epsilon)
	if err != nil {
		return nil, fmt.Errorf("NewDual: %w", err)
	}

	return newEnumerator(o, ip, iq, ic)
}

func gather(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

func instance(c *quadform.Cascade, v []float64, c0, eps float64) (*quadform.Instance, error) {
	if len(v) != c.Dim() {
		return nil, fmt.Errorf("len(v)=%d, dim=%d: %w", len(v), c.Dim(), ErrDimensionMismatch)
	}

	return c.Instance(v, c0, eps)
}

// newEnumerator allocates the scratch state for the given instances.
func newEnumerator(o Options, inst ...*quadform.Instance) (*Enumerator, error) {
	dim := inst[0].Cascade().Dim()
	var d, k int
	for d = 0; d < dim; d++ {
		bounded := false
		for k = range inst {
			bounded = bounded || inst[k].Bounded(d)
		}
		if !bounded {
			return nil, fmt.Errorf("coordinate %d: %w", d, ErrUnbounded)
		}
	}

	e := &Enumerator{
		dim:     dim,
		inst:    inst,
		opts:    o,
		current: make([]int, dim),
		inc:     make([]int, dim),
		stop:    make([]int, dim),
		q:       make([][]float64, len(inst)),
		exact:   make([][]bool, len(inst)),
		steps:   make([][]quadform.Step, len(inst)),
		ivs:     make([]quadform.Interval, len(inst)),
	}
	for k = range inst {
		e.q[k] = make([]float64, dim)
		e.exact[k] = make([]bool, dim)
		e.steps[k] = make([]quadform.Step, dim)
	}

	return e, nil
}

// Dim returns the lattice dimension.
func (e *Enumerator) Dim() int { return e.dim }

// Next advances to the next vector and reports whether one was found.
// After Next returns false, Err reports why the walk ended (nil when exhausted).
func (e *Enumerator) Next() bool {
	if e.done {
		return false
	}
	if err := e.opts.Ctx.Err(); err != nil {
		e.finish(err)
		return false
	}

	var ok bool
	if !e.started {
		e.started = true
		e.depth = 0
		ok = e.seed(0)
	} else {
		ok = e.step(e.depth)
	}
	for {
		if e.err != nil {
			return false
		}
		if ok {
			if e.depth == e.dim-1 {
				e.out = append(make(Vector, 0, e.dim), e.current...)
				e.emitted++
				return true
			}
			e.depth++
			ok = e.seed(e.depth)
			continue
		}
		if e.depth == 0 {
			e.finish(nil)
			return false
		}
		e.depth--
		ok = e.step(e.depth)
	}
}

// Vector returns the vector found by the last successful Next. The slice is
// fresh for every vector and may be retained.
func (e *Enumerator) Vector() Vector { return e.out }

// Err returns the error that ended the walk, if any.
func (e *Enumerator) Err() error { return e.err }

// Emitted returns the number of vectors yielded so far.
func (e *Enumerator) Emitted() int { return e.emitted }

// All returns the remaining vectors as a single-use sequence.
// Check Err after the loop.
func (e *Enumerator) All() iter.Seq[Vector] {
	return func(yield func(Vector) bool) {
		for e.Next() {
			if !yield(e.Vector()) {
				return
			}
		}
	}
}

// Collect drains the enumerator.
func (e *Enumerator) Collect() ([]Vector, error) {
	var out []Vector
	for e.Next() {
		out = append(out, e.Vector())
	}

	return out, e.Err()
}

func (e *Enumerator) finish(err error) {
	e.done = true
	e.err = err
	e.out = nil
}

// seed opens depth d: computes its integer range for the current prefix and
// places the cursor on the lower middle. Returns false for an empty range.
func (e *Enumerator) seed(d int) bool {
	var k int
	var exact bool
	var qPrev float64
	for k = range e.inst {
		exact, qPrev = true, 0
		if d > 0 {
			exact, qPrev = e.exact[k][d-1], e.q[k][d-1]
		}
		e.steps[k][d] = e.inst[k].Interval(d, e.current, qPrev, exact)
		e.ivs[k] = e.steps[k][d].Interval
	}
	lo, hi, ok := quadform.Intersect(e.ivs...).IntRange()
	if !ok {
		e.finish(fmt.Errorf("coordinate %d: %w", d, ErrUnbounded))
		return false
	}
	if hi < lo {
		return false
	}

	n := hi - lo + 1
	e.current[d] = lo + (n-1)/2
	e.stop[d] = lo - 1
	if n%2 == 1 {
		e.inc[d] = -1
	} else {
		e.inc[d] = 1
	}
	e.update(d)

	return true
}

// step moves depth d to its next zigzag position: +1, −2, +3, ... around the
// seed (mirrored when the first step is −1). Returns false once the walk
// reaches stop[d].
func (e *Enumerator) step(d int) bool {
	e.current[d] += e.inc[d]
	if e.inc[d] > 0 {
		e.inc[d] = -(e.inc[d] + 1)
	} else {
		e.inc[d] = -(e.inc[d] - 1)
	}
	if e.current[d] == e.stop[d] {
		return false
	}
	e.update(d)

	return true
}

// update refreshes the running minima after current[d] changed.
func (e *Enumerator) update(d int) {
	for k, in := range e.inst {
		if !in.Bounded(d) {
			e.exact[k][d] = false
			continue
		}
		e.q[k][d] = in.Value(d, e.steps[k][d], e.current[d])
		e.exact[k][d] = true
	}
}
