// Package ioformat implements the textual node/edge file grammar at the
// loader boundary: a header-validated, comma-delimited but not RFC-4180
// format where the trailing WKT geometry field may itself contain
// unescaped commas, so only a fixed number of leading commas are treated
// as field separators. Built on bufio.Scanner and strings.SplitN rather
// than encoding/csv, since the variable-width trailing field has no
// clean RFC-4180 representation.
package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arvonne/flowcut/internal/apperror"
	"github.com/arvonne/flowcut/internal/edgestore"
	"github.com/arvonne/flowcut/internal/vertexstore"
)

const (
	vertexHeader = "id,WKT"
	edgeHeader   = "id,source,target,capacity,isvalid,WKT"
)

// LoadVertices reads a vertex input stream: a header line "id,WKT"
// followed by one "id,WKT" record per line, where WKT is the substring
// from after the first comma to end-of-line, copied verbatim. Duplicate
// ids silently dedup (first wins, via vertexstore.Store.InsertUnique).
// bucketHint overrides the vertex store's bucket count; 0 derives it from
// the number of records read.
func LoadVertices(r io.Reader, bucketHint int) (*vertexstore.Store, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		return nil, apperror.NewWithField(apperror.CodeInputRejected, "vertex file is empty", "vertex")
	}
	if header := strings.TrimRight(scanner.Text(), "\r\n"); !strings.HasPrefix(header, vertexHeader) {
		return nil, apperror.NewWithField(apperror.CodeInputRejected, "vertex file header mismatch", "vertex")
	}

	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInputRejected, "failed reading vertex file").WithField("vertex")
	}

	size := bucketHint
	if size <= 0 {
		size = len(lines) + 2
	}
	store := vertexstore.New(size)
	for _, line := range lines {
		v, err := parseVertexLine(line)
		if err != nil {
			continue // malformed records are dropped as input noise, not fatal
		}
		store.InsertUnique(v)
	}
	return store, nil
}

func parseVertexLine(line string) (*vertexstore.Vertex, error) {
	line = strings.TrimRight(line, "\r\n")
	parts := strings.SplitN(line, ",", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("vertex record missing WKT field: %q", line)
	}
	id, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid vertex id %q: %w", parts[0], err)
	}
	return &vertexstore.Vertex{ID: id, Geometry: []byte(parts[1]), Level: -1}, nil
}

// LoadEdges reads an edge input stream: a header line
// "id,source,target,capacity,isvalid,WKT" followed by one record per
// edge. The WKT field extends from after the fifth comma to end-of-line
// and may itself contain commas. When includeInvalid is false, records
// whose isvalid field is "False" are discarded at load time. Duplicate
// ids silently dedup (first wins). bucketHint overrides the edge store's
// bucket count; 0 derives it from the number of records read.
func LoadEdges(r io.Reader, includeInvalid bool, bucketHint int) (*edgestore.Store, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		return nil, apperror.NewWithField(apperror.CodeInputRejected, "edge file is empty", "edge")
	}
	if header := strings.TrimRight(scanner.Text(), "\r\n"); !strings.HasPrefix(header, edgeHeader) {
		return nil, apperror.NewWithField(apperror.CodeInputRejected, "edge file header mismatch", "edge")
	}

	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInputRejected, "failed reading edge file").WithField("edge")
	}

	size := bucketHint
	if size <= 0 {
		size = len(lines) + 2
	}
	store := edgestore.New(size)
	for _, line := range lines {
		e, err := parseEdgeLine(line, includeInvalid)
		if err != nil {
			continue
		}
		if e == nil {
			continue // filtered out: invalid and includeInvalid is false
		}
		store.InsertChecked(e, e.ID)
	}
	return store, nil
}

// parseEdgeLine returns (nil, nil) when the record is well-formed but
// filtered out by includeInvalid.
func parseEdgeLine(line string, includeInvalid bool) (*edgestore.Edge, error) {
	line = strings.TrimRight(line, "\r\n")
	parts := strings.SplitN(line, ",", 6)
	if len(parts) != 6 {
		return nil, fmt.Errorf("edge record has fewer than 6 fields: %q", line)
	}

	id, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid edge id %q: %w", parts[0], err)
	}
	source, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid edge source %q: %w", parts[1], err)
	}
	target, err := strconv.ParseInt(strings.TrimSpace(parts[2]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid edge target %q: %w", parts[2], err)
	}
	capacity, err := parseCapacity(parts[3])
	if err != nil {
		return nil, err
	}
	if capacity < 0 {
		return nil, fmt.Errorf("negative edge capacity %d rejected", capacity)
	}

	validToken := strings.TrimSpace(parts[4])
	valid := validToken == "True"
	if !valid && !includeInvalid {
		return nil, nil
	}

	return &edgestore.Edge{
		ID:       id,
		Source:   source,
		Target:   target,
		Capacity: capacity,
		Flow:     0,
		Valid:    valid,
		Geometry: []byte(parts[5]),
	}, nil
}

// parseCapacity strips at most one leading '"' before parsing the
// remaining digits as decimal, tolerating a single stray quote character
// some upstream exports leave on the capacity field.
func parseCapacity(field string) (int64, error) {
	field = strings.TrimSpace(field)
	field = strings.TrimPrefix(field, `"`)
	v, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid edge capacity %q: %w", field, err)
	}
	return v, nil
}
