// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package shortestpath computes single source shortest paths in edge
// weighted digraphs with non-negative weights.
package shortestpath

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"github.com/tlnzsr/algorithms-sedgewick-wayne/container/heap"
	"github.com/tlnzsr/algorithms-sedgewick-wayne/graph"
)

// ErrNegativeWeight is returned for a graph that contains an edge with
// a negative weight.
var ErrNegativeWeight = errors.New("negative edge weight")

// ErrInvalidWeight is returned for a graph that contains an edge whose
// weight is NaN.
var ErrInvalidWeight = errors.New("invalid edge weight")

type options struct {
	branching int
}

// Option represents an option to Dijkstra.
type Option func(*options)

// WithBranchingFactor sets the number of children per node in the
// priority queue used to order vertices, the default is 2. Dijkstra
// returns an error if d is less than 2.
func WithBranchingFactor(d int) Option {
	return func(o *options) {
		o.branching = d
	}
}

// Paths holds the shortest paths from a single source vertex.
type Paths struct {
	source int
	distTo []float64
	edgeTo []*graph.DirectedEdge
}

// Dijkstra computes the shortest paths from source to every other vertex
// in g. Progress is logged at debug level to the logger, if any, stored
// in ctx using cloudeng.io/logging/ctxlog.
func Dijkstra(ctx context.Context, g *graph.EdgeWeightedDigraph, source int, opts ...Option) (*Paths, error) {
	o := options{branching: 2}
	for _, fn := range opts {
		fn(&o)
	}
	if o.branching < 2 {
		return nil, fmt.Errorf("branching factor %d is less than 2", o.branching)
	}
	for _, e := range g.Edges() {
		switch {
		case math.IsNaN(e.Weight):
			return nil, fmt.Errorf("%v: %w", e, ErrInvalidWeight)
		case e.Weight < 0:
			return nil, fmt.Errorf("%v: %w", e, ErrNegativeWeight)
		}
	}
	if source < 0 || source >= g.V() {
		return nil, fmt.Errorf("source %d not in [0, %d): %w", source, g.V(), graph.ErrInvalidVertex)
	}
	logger := ctxlog.Logger(ctx).With("source", source)

	p := &Paths{
		source: source,
		distTo: make([]float64, g.V()),
		edgeTo: make([]*graph.DirectedEdge, g.V()),
	}
	for v := range p.distTo {
		p.distTo[v] = math.Inf(1)
	}
	p.distTo[source] = 0

	pq := heap.NewIndexedMin[float64](g.V(), o.branching)
	if err := pq.Insert(source, 0); err != nil {
		return nil, err
	}
	for !pq.IsEmpty() {
		v, err := pq.DeleteMin()
		if err != nil {
			return nil, err
		}
		logger.Debug("settled", "vertex", v, "distance", p.distTo[v])
		for _, e := range g.Adj(v) {
			if err := p.relax(logger, pq, e); err != nil {
				return nil, err
			}
		}
	}
	return p, nil
}

func (p *Paths) relax(logger *slog.Logger, pq *heap.IndexedMin[float64], e graph.DirectedEdge) error {
	w := e.To
	dist := p.distTo[e.From] + e.Weight
	if p.distTo[w] <= dist {
		return nil
	}
	p.distTo[w] = dist
	p.edgeTo[w] = &e
	logger.Debug("relaxed", "from", e.From, "to", w, "distance", dist)
	if pq.Contains(w) {
		return pq.DecreaseKey(w, dist)
	}
	return pq.Insert(w, dist)
}

// Source returns the source vertex.
func (p *Paths) Source() int {
	return p.source
}

// DistTo returns the length of the shortest path from the source to v,
// or +Inf if there is no such path.
func (p *Paths) DistTo(v int) float64 {
	return p.distTo[v]
}

// HasPathTo returns true if there is a path from the source to v.
func (p *Paths) HasPathTo(v int) bool {
	return !math.IsInf(p.distTo[v], 1)
}

// PathTo returns the edges on the shortest path from the source to v in
// the order that they are traversed, or nil if there is no path. The path
// from the source to itself is empty.
func (p *Paths) PathTo(v int) []graph.DirectedEdge {
	if !p.HasPathTo(v) {
		return nil
	}
	path := []graph.DirectedEdge{}
	for e := p.edgeTo[v]; e != nil; e = p.edgeTo[e.From] {
		path = append(path, *e)
	}
	slices.Reverse(path)
	return path
}
