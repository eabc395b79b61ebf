package metrics

import (
	"os"

	"github.com/prometheus/common/expfmt"

	"github.com/arvonne/flowcut/internal/apperror"
)

// WriteTo renders m's registry as a Prometheus text exposition to path,
// overwriting any existing file. Used by cmd/flowcut when -metrics-out
// is given; skipped entirely otherwise, since nothing serves the
// registry over HTTP in this single-shot process.
func (m *Metrics) WriteTo(path string) error {
	families, err := m.registry.Gather()
	if err != nil {
		return apperror.Wrap(err, apperror.CodeOutputWriteFailed, "failed gathering metrics")
	}

	f, err := os.Create(path)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeOutputWriteFailed, "failed creating metrics output file")
	}
	defer f.Close()

	encoder := expfmt.NewEncoder(f, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := encoder.Encode(mf); err != nil {
			return apperror.Wrap(err, apperror.CodeOutputWriteFailed, "failed encoding metrics family")
		}
	}
	return nil
}
