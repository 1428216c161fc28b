package traverse

import (
	"errors"

	"github.com/treemetrics/linarr/core"
)

// Sentinel errors for traversal construction.
var (
	// ErrGraphNil is returned when a nil graph is passed to New.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrSourceOutOfRange is returned by StartAt on a bad source vertex.
	ErrSourceOutOfRange = errors.New("traverse: source vertex out of range")
)

// Order selects the frontier container and with it the traversal kind.
type Order int

const (
	// BFS explores the frontier first-in first-out.
	BFS Order = iota
	// DFS explores the frontier last-in first-out.
	DFS
)

// Hooks taking the traversal itself receive read access to the visited
// set, so callbacks can consult Visited mid-run.
type (
	// ProcessOneFn processes a single node.
	ProcessOneFn func(t *Traversal, u int)
	// ProcessTwoFn processes the edge (u,v); natural is false when the
	// edge was reached through its reversed direction.
	ProcessTwoFn func(t *Traversal, u, v int, natural bool)
	// BoolOneFn decides a predicate of one node.
	BoolOneFn func(t *Traversal, u int) bool
	// BoolTwoFn decides a predicate of the edge (u,v).
	BoolTwoFn func(t *Traversal, u, v int) bool
)

// Option configures a Traversal.
type Option func(*Traversal)

// WithShouldTerminate stops the whole traversal when fn returns true.
// Checked after the current node is processed.
func WithShouldTerminate(fn BoolOneFn) Option {
	return func(t *Traversal) {
		if fn != nil {
			t.shouldTerminate = fn
		}
	}
}

// WithProcessCurrent runs fn on every node popped from the frontier.
func WithProcessCurrent(fn ProcessOneFn) Option {
	return func(t *Traversal) {
		if fn != nil {
			t.processCurrent = fn
		}
	}
}

// WithProcessNeighbour runs fn on every examined edge (u,v).
func WithProcessNeighbour(fn ProcessTwoFn) Option {
	return func(t *Traversal) {
		if fn != nil {
			t.processNeighbour = fn
		}
	}
}

// WithShouldAdd filters which neighbours enter the frontier.
func WithShouldAdd(fn BoolTwoFn) Option {
	return func(t *Traversal) {
		if fn != nil {
			t.shouldAdd = fn
		}
	}
}

// WithProcessVisitedNeighbours also reports edges towards already
// visited neighbours to the ProcessNeighbour hook. Default false.
func WithProcessVisitedNeighbours(yes bool) Option {
	return func(t *Traversal) { t.processVisited = yes }
}

// WithReverseEdges additionally follows in-edges on directed graphs.
// Ignored on undirected graphs. Default false.
func WithReverseEdges(yes bool) Option {
	return func(t *Traversal) { t.useReverse = yes }
}

// Traversal is a reusable BFS/DFS run over one graph. Not safe for
// concurrent use.
type Traversal struct {
	g     core.Graph
	dg    *core.Directed // non-nil when g is directed, for in-edges
	order Order

	visited  []bool
	frontier []int
	stopped  bool

	processVisited bool
	useReverse     bool

	shouldTerminate  BoolOneFn
	processCurrent   ProcessOneFn
	processNeighbour ProcessTwoFn
	shouldAdd        BoolTwoFn
}

// New builds a traversal over g with the given frontier order.
func New(g core.Graph, order Order, opts ...Option) (*Traversal, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	t := &Traversal{
		g:                g,
		order:            order,
		visited:          make([]bool, g.NumVertices()),
		shouldTerminate:  func(*Traversal, int) bool { return false },
		processCurrent:   func(*Traversal, int) {},
		processNeighbour: func(*Traversal, int, int, bool) {},
		shouldAdd:        func(*Traversal, int, int) bool { return true },
	}
	if dg, ok := g.(*core.Directed); ok {
		t.dg = dg
	}
	if rt, ok := g.(*core.RootedTree); ok {
		t.dg = &rt.Directed
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Reset clears the visited set, the frontier and the stop flag,
// keeping hooks and options. Complexity: O(n).
func (t *Traversal) Reset() {
	for i := range t.visited {
		t.visited[i] = false
	}
	t.frontier = t.frontier[:0]
	t.stopped = false
}

// Visited reports whether u has been reached so far.
func (t *Traversal) Visited(u int) bool { return t.visited[u] }

// Stopped reports whether the last run ended by early termination.
func (t *Traversal) Stopped() bool { return t.stopped }

// AllVisited reports whether every vertex has been reached.
func (t *Traversal) AllVisited() bool {
	for _, v := range t.visited {
		if !v {
			return false
		}
	}
	return true
}

// StartAt runs the traversal from a single source.
func (t *Traversal) StartAt(source int) error {
	return t.StartAtAll([]int{source})
}

// StartAtAll runs the traversal from every source at once.
func (t *Traversal) StartAtAll(sources []int) error {
	for _, s := range sources {
		if s < 0 || s >= len(t.visited) {
			return ErrSourceOutOfRange
		}
	}
	for _, s := range sources {
		t.visited[s] = true
		t.frontier = append(t.frontier, s)
	}
	t.run()
	return nil
}

func (t *Traversal) run() {
	for len(t.frontier) > 0 && !t.stopped {
		u := t.pop()
		t.processCurrent(t, u)
		if t.shouldTerminate(t, u) {
			t.stopped = true
			return
		}
		t.expand(u, t.g.Neighbours(u), true)
		if t.useReverse && t.dg != nil {
			t.expand(u, t.dg.InNeighbours(u), false)
		}
	}
}

func (t *Traversal) expand(u int, neighbours []int, natural bool) {
	for _, v := range neighbours {
		if t.visited[v] {
			if t.processVisited {
				t.processNeighbour(t, u, v, natural)
			}
			continue
		}
		t.processNeighbour(t, u, v, natural)
		if t.shouldAdd(t, u, v) {
			t.visited[v] = true
			t.frontier = append(t.frontier, v)
		}
	}
}

func (t *Traversal) pop() int {
	var u int
	if t.order == BFS {
		u = t.frontier[0]
		t.frontier = t.frontier[1:]
	} else {
		u = t.frontier[len(t.frontier)-1]
		t.frontier = t.frontier[:len(t.frontier)-1]
	}
	return u
}
