package ring

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"

	"pqbrake/oprferr"
)

// jsonParams mirrors Params but with decimal-string Q/B (q and B both
// routinely exceed int64 at production parameters, so they cannot be
// plain JSON numbers).
type jsonParams struct {
	Q   string `json:"q"`
	N   int    `json:"n"`
	P   int64  `json:"p"`
	Sec int    `json:"sec"`
	B   string `json:"b"`
}

// ParamsFromJSON decodes a {q, n, p, sec, b} document (q and b as decimal
// strings, p and sec optional) and validates it by constructing a Ctx
// from the result, mirroring the teacher's decode-then-validate
// LoadParams(r io.Reader) pattern. b may be omitted (empty string), in
// which case NewCtx derives it from sec as usual.
func ParamsFromJSON(r io.Reader) (*Params, error) {
	dec := json.NewDecoder(r)
	var raw jsonParams
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("ring: decode params: %w", err)
	}

	q, ok := new(big.Int).SetString(raw.Q, 10)
	if !ok {
		return nil, &oprferr.ParameterError{Field: "Q", Reason: "not a valid decimal integer"}
	}

	var b *big.Int
	if raw.B != "" {
		b, ok = new(big.Int).SetString(raw.B, 10)
		if !ok {
			return nil, &oprferr.ParameterError{Field: "B", Reason: "not a valid decimal integer"}
		}
	}

	p := Params{Q: q, N: raw.N, P: raw.P, Sec: raw.Sec, B: b}
	if _, err := NewCtx(p); err != nil {
		return nil, err
	}
	return &p, nil
}
