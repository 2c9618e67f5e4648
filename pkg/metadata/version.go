package metadata

import (
	"errors"

	"github.com/dotscale/substrate-go/pkg/scale"
)

// ErrNotLatestVersion is returned by IntoLatest when a metadata blob was
// produced by a chain still running pre-V13 runtime metadata.
var ErrNotLatestVersion = errors.New("metadata: version is not the latest (V13)")

const latestVersion = 13

// Version is the version-tagged Substrate metadata union. Every version
// below the latest is a bare marker recording only which version a chain
// reported; only V13 carries the materialized module tree.
type Version struct {
	number int
	v13    *V13
}

// VersionNumber returns which metadata version this blob reports, 0-13.
func (v Version) VersionNumber() int {
	return v.number
}

// IntoLatest returns the materialized V13 tree, or ErrNotLatestVersion if
// this blob came from an older runtime.
func (v Version) IntoLatest() (*V13, error) {
	if v.number != latestVersion || v.v13 == nil {
		return nil, ErrNotLatestVersion
	}
	return v.v13, nil
}

func (v Version) EncodeScale(w *scale.Writer) {
	w.WriteDiscriminant(byte(v.number))
	if v.number == latestVersion {
		v.v13.EncodeScale(w)
	}
}

func (v *Version) DecodeScale(r *scale.Reader) {
	d := r.ReadDiscriminant()
	if r.Err() != nil {
		return
	}
	if d > latestVersion {
		r.Fail(scale.ErrInvalidDiscriminant)
		return
	}
	v.number = int(d)
	if d == latestVersion {
		var m V13
		m.DecodeScale(r)
		if r.Err() != nil {
			return
		}
		v.v13 = &m
	} else {
		v.v13 = nil
	}
}
