// SPDX-License-Identifier: MIT
// Package: tenjinx/randgen
//
// api.go — shared entry-point plumbing.
//
// Every public generator follows the same three steps:
//   1. validate the Parameters for its domain (no draw on failure);
//   2. resolve the Source (external → seeded → entropy);
//   3. draw.
// prepare implements steps 1–2 so each domain only writes step 3.

package randgen

// validator checks one domain of Parameters.
type validator func(Parameters) error

// prepare validates p with check and resolves the Source for method.
// Validation errors are tagged with method and logged at debug level.
func prepare(method string, p Parameters, check validator) (Source, error) {
	if err := check(p); err != nil {
		err = generationErrorf(method, err, "")
		p.log().Debug().
			Str("method", method).
			Err(err).
			Msg("rejected generation parameters")
		return nil, err
	}

	src, kind, err := resolveSource(p)
	if err != nil {
		return nil, generationErrorf(method, err, "resolve source")
	}

	p.log().Debug().
		Str("method", method).
		Stringer("source", kind).
		Msg("resolved random source")
	return src, nil
}

// checkCount rejects negative batch sizes.
func checkCount(method string, n int) error {
	if n < 0 {
		return generationErrorf(method, ErrInvalidCount, "n=%d", n)
	}
	return nil
}
