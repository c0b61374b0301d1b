// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package shortestpath_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"
	"testing"
	"time"

	"cloudeng.io/logging/ctxlog"
	"github.com/tlnzsr/algorithms-sedgewick-wayne/graph"
	"github.com/tlnzsr/algorithms-sedgewick-wayne/graph/shortestpath"
)

func readGraph(t *testing.T, name string) *graph.EdgeWeightedDigraph {
	t.Helper()
	f, err := os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	g, err := graph.ReadEdgeWeightedDigraph(f)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func ExampleDijkstra() {
	g := graph.NewEdgeWeightedDigraph(4)
	for _, e := range []graph.DirectedEdge{
		{From: 0, To: 1, Weight: 5},
		{From: 0, To: 2, Weight: 1},
		{From: 2, To: 1, Weight: 2},
		{From: 1, To: 3, Weight: 1},
	} {
		if err := g.AddEdge(e); err != nil {
			panic(err)
		}
	}
	sp, err := shortestpath.Dijkstra(context.Background(), g, 0)
	if err != nil {
		panic(err)
	}
	fmt.Println(sp.DistTo(3), sp.PathTo(3))
	// Output:
	// 4 [0->2 1.00 2->1 2.00 1->3 1.00]
}

func TestTiny(t *testing.T) {
	g := readGraph(t, "../testdata/tinyEWD.txt")
	want := []struct {
		dist float64
		path string
	}{
		{0, ""},
		{1.05, "0->4 0.38 4->5 0.35 5->1 0.32"},
		{0.26, "0->2 0.26"},
		{0.99, "0->2 0.26 2->7 0.34 7->3 0.39"},
		{0.38, "0->4 0.38"},
		{0.73, "0->4 0.38 4->5 0.35"},
		{1.51, "0->2 0.26 2->7 0.34 7->3 0.39 3->6 0.52"},
		{0.60, "0->2 0.26 2->7 0.34"},
	}
	for _, d := range []int{2, 3, 4} {
		sp, err := shortestpath.Dijkstra(context.Background(), g, 0, shortestpath.WithBranchingFactor(d))
		if err != nil {
			t.Fatal(err)
		}
		if got, want := sp.Source(), 0; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		for v, w := range want {
			if got := sp.DistTo(v); math.Abs(got-w.dist) > 1e-9 {
				t.Errorf("d=%v: %v: got %v, want %v", d, v, got, w.dist)
			}
			if !sp.HasPathTo(v) {
				t.Errorf("d=%v: %v: missing path", d, v)
			}
			var parts []string
			for _, e := range sp.PathTo(v) {
				parts = append(parts, e.String())
			}
			if got, want := strings.Join(parts, " "), w.path; got != want {
				t.Errorf("d=%v: %v: got %v, want %v", d, v, got, want)
			}
		}
	}
}

func TestUnreachable(t *testing.T) {
	g := graph.NewEdgeWeightedDigraph(3)
	if err := g.AddEdge(graph.DirectedEdge{From: 1, To: 0, Weight: 1}); err != nil {
		t.Fatal(err)
	}
	sp, err := shortestpath.Dijkstra(context.Background(), g, 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []int{1, 2} {
		if sp.HasPathTo(v) {
			t.Errorf("%v: unexpected path", v)
		}
		if !math.IsInf(sp.DistTo(v), 1) {
			t.Errorf("%v: got %v, want +Inf", v, sp.DistTo(v))
		}
		if sp.PathTo(v) != nil {
			t.Errorf("%v: got %v, want nil", v, sp.PathTo(v))
		}
	}
	if got := sp.PathTo(0); got == nil || len(got) != 0 {
		t.Errorf("got %v, want an empty path", got)
	}
}

func TestErrors(t *testing.T) {
	g := graph.NewEdgeWeightedDigraph(2)
	if err := g.AddEdge(graph.DirectedEdge{From: 0, To: 1, Weight: -0.5}); err != nil {
		t.Fatal(err)
	}
	_, err := shortestpath.Dijkstra(context.Background(), g, 0)
	if !errors.Is(err, shortestpath.ErrNegativeWeight) {
		t.Errorf("got %v, want %v", err, shortestpath.ErrNegativeWeight)
	}
	g = graph.NewEdgeWeightedDigraph(2)
	_, err = shortestpath.Dijkstra(context.Background(), g, 2)
	if !errors.Is(err, graph.ErrInvalidVertex) {
		t.Errorf("got %v, want %v", err, graph.ErrInvalidVertex)
	}
}

func TestInvalidWeights(t *testing.T) {
	// 0 and 1 form a cycle whose weights are NaN.
	g, err := graph.ReadEdgeWeightedDigraph(strings.NewReader("2 2 0 1 NaN 1 0 1"))
	if err != nil {
		t.Fatal(err)
	}
	errCh := make(chan error, 1)
	go func() {
		_, err := shortestpath.Dijkstra(context.Background(), g, 0)
		errCh <- err
	}()
	select {
	case err := <-errCh:
		if !errors.Is(err, shortestpath.ErrInvalidWeight) {
			t.Errorf("got %v, want %v", err, shortestpath.ErrInvalidWeight)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Dijkstra did not return for a graph with NaN weights")
	}
}

func TestBranchingFactor(t *testing.T) {
	g := readGraph(t, "../testdata/tinyEWD.txt")
	for _, d := range []int{-1, 0, 1} {
		sp, err := shortestpath.Dijkstra(context.Background(), g, 0, shortestpath.WithBranchingFactor(d))
		if err == nil || !strings.Contains(err.Error(), "less than 2") {
			t.Errorf("d=%v: missing or unexpected error: %v", d, err)
		}
		if sp != nil {
			t.Errorf("d=%v: got %v, want nil", d, sp)
		}
	}
}

func TestLogging(t *testing.T) {
	g := readGraph(t, "../testdata/tinyEWD.txt")
	buf := &bytes.Buffer{}
	ctx := ctxlog.NewJSONLogger(context.Background(), buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	if _, err := shortestpath.Dijkstra(ctx, g, 0); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if got, want := strings.Count(out, `"msg":"settled"`), g.V(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !strings.Contains(out, `"from":5,"to":1,`) {
		t.Errorf("missing relaxation of 5->1 in: %v", out)
	}
}
