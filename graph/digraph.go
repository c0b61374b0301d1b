// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package graph provides an edge weighted directed graph and a reader for
// its text representation.
package graph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"cloudeng.io/errors"
)

// ErrInvalidVertex is returned for a vertex outside of [0, V).
var ErrInvalidVertex = errors.New("invalid vertex")

// DirectedEdge represents a weighted edge from one vertex to another.
type DirectedEdge struct {
	From, To int
	Weight   float64
}

func (e DirectedEdge) String() string {
	return fmt.Sprintf("%d->%d %.2f", e.From, e.To, e.Weight)
}

// EdgeWeightedDigraph is a directed graph with weighted edges, stored as
// adjacency lists indexed by vertex.
type EdgeWeightedDigraph struct {
	adj [][]DirectedEdge
	e   int
}

// NewEdgeWeightedDigraph returns a graph with v vertices and no edges.
func NewEdgeWeightedDigraph(v int) *EdgeWeightedDigraph {
	if v < 0 {
		panic(fmt.Sprintf("graph: negative number of vertices %d", v))
	}
	return &EdgeWeightedDigraph{adj: make([][]DirectedEdge, v)}
}

// V returns the number of vertices.
func (g *EdgeWeightedDigraph) V() int {
	return len(g.adj)
}

// E returns the number of edges.
func (g *EdgeWeightedDigraph) E() int {
	return g.e
}

// AddEdge adds e to the graph.
func (g *EdgeWeightedDigraph) AddEdge(e DirectedEdge) error {
	if err := g.checkVertex(e.From); err != nil {
		return err
	}
	if err := g.checkVertex(e.To); err != nil {
		return err
	}
	g.adj[e.From] = append(g.adj[e.From], e)
	g.e++
	return nil
}

// Adj returns the edges leaving v.
func (g *EdgeWeightedDigraph) Adj(v int) []DirectedEdge {
	if g.checkVertex(v) != nil {
		return nil
	}
	return g.adj[v]
}

// Edges returns all of the edges in the graph ordered by source vertex.
func (g *EdgeWeightedDigraph) Edges() []DirectedEdge {
	out := make([]DirectedEdge, 0, g.e)
	for _, edges := range g.adj {
		out = append(out, edges...)
	}
	return out
}

func (g *EdgeWeightedDigraph) checkVertex(v int) error {
	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("%d not in [0, %d): %w", v, len(g.adj), ErrInvalidVertex)
	}
	return nil
}

type tokenizer struct {
	sc  *bufio.Scanner
	pos int
}

func (t *tokenizer) next(what string) (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("token %d: missing %s: %w", t.pos, what, io.ErrUnexpectedEOF)
	}
	t.pos++
	return t.sc.Text(), nil
}

func (t *tokenizer) nextInt(what string) (int, error) {
	tok, err := t.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("token %d: %s: %q is not an integer", t.pos, what, tok)
	}
	return v, nil
}

func (t *tokenizer) nextFloat(what string) (float64, error) {
	tok, err := t.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("token %d: %s: %q is not a number", t.pos, what, tok)
	}
	return v, nil
}

// ReadEdgeWeightedDigraph reads a graph in the whitespace separated format
// of the number of vertices, the number of edges and then one
// 'from to weight' triple per edge. All of the invalid edges are reported.
func ReadEdgeWeightedDigraph(r io.Reader) (*EdgeWeightedDigraph, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	tk := &tokenizer{sc: sc}
	v, err := tk.nextInt("number of vertices")
	if err != nil {
		return nil, err
	}
	if v < 0 {
		return nil, fmt.Errorf("negative number of vertices: %d", v)
	}
	e, err := tk.nextInt("number of edges")
	if err != nil {
		return nil, err
	}
	if e < 0 {
		return nil, fmt.Errorf("negative number of edges: %d", e)
	}
	g := NewEdgeWeightedDigraph(v)
	errs := errors.M{}
	for i := 0; i < e; i++ {
		from, err := tk.nextInt("edge source")
		if err != nil {
			errs.Append(err)
			break
		}
		to, err := tk.nextInt("edge destination")
		if err != nil {
			errs.Append(err)
			break
		}
		weight, err := tk.nextFloat("edge weight")
		if err != nil {
			errs.Append(err)
			break
		}
		if err := g.AddEdge(DirectedEdge{From: from, To: to, Weight: weight}); err != nil {
			errs.Append(fmt.Errorf("edge %d: %w", i, err))
		}
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return g, nil
}
