package chart

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/stackbar/pkg/errors"
)

// Snapshot formats accepted by [Decode].
const (
	FormatJSON = "json"
	FormatTOML = "toml"
)

// Decode parses a dataset snapshot in the given format and validates it.
func Decode(data []byte, format string) (Dataset, error) {
	var (
		ds  Dataset
		err error
	)
	switch format {
	case FormatJSON:
		ds, err = decodeJSON(bytes.NewReader(data))
	case FormatTOML:
		ds, err = decodeTOML(data)
	default:
		return Dataset{}, errors.New(errors.ErrCodeInvalidFormat, "unknown snapshot format %q", format)
	}
	if err != nil {
		return Dataset{}, err
	}
	if err := ds.Validate(); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

// DecodeJSON reads and validates a JSON snapshot.
func DecodeJSON(r io.Reader) (Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Dataset{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read snapshot")
	}
	return Decode(data, FormatJSON)
}

// Load reads a snapshot file, picking the format from its extension.
func Load(path string) (Dataset, error) {
	if err := errors.ValidateSnapshotPath(path); err != nil {
		return Dataset{}, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Dataset{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "snapshot %s", path)
	}
	if err != nil {
		return Dataset{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "snapshot %s", path)
	}
	ds, err := Decode(data, FormatOf(path))
	if err != nil {
		return Dataset{}, errors.Wrap(errors.GetCode(err), err, "snapshot %s", path)
	}
	return ds, nil
}

// FormatOf returns the snapshot format implied by a file extension.
func FormatOf(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

func decodeJSON(r io.Reader) (Dataset, error) {
	var ds Dataset
	dec := json.NewDecoder(r)
	if err := dec.Decode(&ds); err != nil {
		var typeErr *json.UnmarshalTypeError
		if stderrors.As(err, &typeErr) {
			return Dataset{}, errors.Wrap(errors.ErrCodeMalformedInput, err, "field %q", typeErr.Field)
		}
		return Dataset{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
	}
	return ds, nil
}

func decodeTOML(data []byte) (Dataset, error) {
	var ds Dataset
	if _, err := toml.Decode(string(data), &ds); err != nil {
		return Dataset{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
	}
	return ds, nil
}
