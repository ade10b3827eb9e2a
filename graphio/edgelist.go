// SPDX-License-Identifier: MIT
// Package: netresil/graphio
//
// edgelist.go - delimited edge-list reader.

package graphio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"

	"github.com/katalvlaran/netresil/core"
)

var (
	// ErrMissingColumn indicates a header without a requested column name.
	ErrMissingColumn = errors.New("graphio: column not found in header")

	// ErrShortRecord indicates a record with fewer fields than the endpoint
	// columns require.
	ErrShortRecord = errors.New("graphio: record too short")
)

// Report summarizes one ReadEdgeList call.
type Report struct {
	Records    int // data records read, header excluded
	Edges      int // edges added
	Missing    int // records skipped for an empty or NA endpoint
	SelfLoops  int // records dropped as u == v
	Duplicates int // records naming an existing edge
}

// Open reads the edge list at path. A ".sz" suffix selects snappy framing.
func Open(path string, opts ...Option) (*core.Graph, Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Report{}, fmt.Errorf("Open: %w", err)
	}
	defer f.Close()

	if strings.HasSuffix(path, ".sz") {
		opts = append(opts, WithSnappy())
	}

	return ReadEdgeList(f, opts...)
}

// ReadEdgeList builds a graph from the records in r.
func ReadEdgeList(r io.Reader, opts ...Option) (*core.Graph, Report, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.snappyIn {
		r = snappy.NewReader(r)
	}

	cr := csv.NewReader(r)
	cr.Comma = o.comma
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true
	cr.LazyQuotes = true

	var rep Report
	g := core.NewGraph(core.WithDirected(o.directed))

	if o.header {
		hdr, err := cr.Read()
		if err != nil {
			return nil, rep, fmt.Errorf("ReadEdgeList: header: %w", err)
		}
		if o.fromName != "" {
			if o.from, o.to, err = headerColumns(hdr, o.fromName, o.toName); err != nil {
				return nil, rep, fmt.Errorf("ReadEdgeList: %w", err)
			}
		}
	}

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, rep, fmt.Errorf("ReadEdgeList: %w", err)
		}
		if o.comma == ' ' || o.comma == '\t' {
			rec = compact(rec)
		}
		if len(rec) == 0 {
			continue
		}
		rep.Records++

		if len(rec) <= max(o.from, o.to) {
			line, _ := cr.FieldPos(0)
			return nil, rep, fmt.Errorf("ReadEdgeList: line %d: %d fields: %w", line, len(rec), ErrShortRecord)
		}
		u, v := strings.TrimSpace(rec[o.from]), strings.TrimSpace(rec[o.to])
		switch {
		case u == "" || v == "" || u == o.naValue || v == o.naValue:
			rep.Missing++
			continue
		case u == v:
			rep.SelfLoops++
			if err := g.AddVertex(u); err != nil {
				return nil, rep, fmt.Errorf("ReadEdgeList: %w", err)
			}
			continue
		case g.HasEdge(u, v):
			rep.Duplicates++
			continue
		}

		if _, err := g.AddEdge(u, v); err != nil {
			return nil, rep, fmt.Errorf("ReadEdgeList: %q-%q: %w", u, v, err)
		}
		rep.Edges++
	}

	return g, rep, nil
}

func headerColumns(hdr []string, from, to string) (int, int, error) {
	fi, ti := -1, -1
	for i, name := range hdr {
		switch strings.TrimSpace(name) {
		case from:
			fi = i
		case to:
			ti = i
		}
	}
	if fi < 0 {
		return 0, 0, fmt.Errorf("%q: %w", from, ErrMissingColumn)
	}
	if ti < 0 {
		return 0, 0, fmt.Errorf("%q: %w", to, ErrMissingColumn)
	}

	return fi, ti, nil
}

// compact drops the empty fields produced by repeated blank delimiters.
func compact(rec []string) []string {
	out := rec[:0]
	for _, f := range rec {
		if f != "" {
			out = append(out, f)
		}
	}

	return out
}
