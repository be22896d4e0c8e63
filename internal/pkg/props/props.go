// Package props handles the free-form property bags attached to offers and leases.
package props

import (
	"encoding/json"

	"lease-engine/internal/pkg/errs"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

type Properties map[string]any

func (p Properties) Clone() Properties {
	if p == nil {
		return Properties{}
	}
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

func (p Properties) Marshal() ([]byte, error) {
	if p == nil {
		return []byte("{}"), nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "marshal properties"), errs.ErrInvalidProperties)
	}
	return b, nil
}

func Unmarshal(raw []byte) (Properties, error) {
	if len(raw) == 0 {
		return Properties{}, nil
	}
	var p Properties
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "unmarshal properties"), errs.ErrInvalidProperties)
	}
	if p == nil {
		p = Properties{}
	}
	return p, nil
}

// Merge applies patch to base as an RFC 7386 merge patch: keys set to null
// are removed, nested objects are merged, everything else is replaced.
func Merge(base, patch Properties) (Properties, error) {
	if patch == nil {
		return base.Clone(), nil
	}
	original, err := base.Marshal()
	if err != nil {
		return nil, err
	}
	delta, err := json.Marshal(patch)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "marshal properties patch"), errs.ErrInvalidProperties)
	}
	merged, err := jsonpatch.MergePatch(original, delta)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "merge properties"), errs.ErrInvalidProperties)
	}
	return Unmarshal(merged)
}
