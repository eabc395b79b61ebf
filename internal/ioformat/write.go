package ioformat

import (
	"bufio"
	"fmt"
	"io"

	"github.com/arvonne/flowcut/internal/apperror"
	"github.com/arvonne/flowcut/internal/edgestore"
)

// WriteCut writes the cut output stream: header
// "id,source,target,capacity,isvalid,WKT" followed by one record per cut
// edge, using the same grammar as the edge input stream, in the order
// cutEdges is given (Extract already returns them ascending by id).
func WriteCut(w io.Writer, cutEdges []*edgestore.Edge) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(edgeHeader + "\n"); err != nil {
		return apperror.Wrap(err, apperror.CodeOutputWriteFailed, "failed writing cut header")
	}

	for _, e := range cutEdges {
		validity := "False"
		if e.Valid {
			validity = "True"
		}
		line := fmt.Sprintf("%d,%d,%d,%d,%s,%s\n", e.ID, e.Source, e.Target, e.Capacity, validity, e.Geometry)
		if _, err := bw.WriteString(line); err != nil {
			return apperror.Wrap(err, apperror.CodeOutputWriteFailed, "failed writing cut record")
		}
	}

	if err := bw.Flush(); err != nil {
		return apperror.Wrap(err, apperror.CodeOutputWriteFailed, "failed flushing cut output")
	}
	return nil
}
