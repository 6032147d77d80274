package model

import (
	"encoding/gob"
	"os"

	"github.com/ulikunitz/xz"
	"go-ml.dev/pkg/iokit"
	"go-ml.dev/pkg/zorros"
)

/*
Save writes the model artifact as an xz-compressed gob stream through the
output's create/commit protocol. The classifier's concrete type must be
gob-registered (the rf package does this in its init).
*/
func Save(m *Model, out iokit.Output) error {
	wh, err := out.Create()
	if err != nil {
		return zorros.Trace(err)
	}
	defer wh.End()
	xw, err := xz.NewWriter(wh)
	if err != nil {
		return zorros.Trace(err)
	}
	if err = gob.NewEncoder(xw).Encode(m); err != nil {
		return zorros.Wrapf(err, "failed to encode model: %v", err.Error())
	}
	if err = xw.Close(); err != nil {
		return zorros.Trace(err)
	}
	if err = wh.Commit(); err != nil {
		return zorros.Trace(err)
	}
	return nil
}

// Load reads a model artifact written by Save.
func Load(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, zorros.Trace(err)
	}
	defer f.Close()
	xr, err := xz.NewReader(f)
	if err != nil {
		return nil, zorros.Trace(err)
	}
	m := &Model{}
	if err = gob.NewDecoder(xr).Decode(m); err != nil {
		return nil, zorros.Wrapf(err, "failed to decode model: %v", err.Error())
	}
	return m, nil
}
