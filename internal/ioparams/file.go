package ioparams

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/nmtkit/nmtkit/internal/iodict"
	"github.com/nmtkit/nmtkit/pkg/errcode"
	"github.com/nmtkit/nmtkit/pkg/params"
)

// File extensions for persisted model configurations. Current releases write
// JSON; releases before 1.0 wrote a flat msgpack map which is still accepted
// when the JSON file is absent or unreadable.
const (
	ConfigExt       = ".json"
	LegacyConfigExt = ".dat"
)

// Load reads the persisted configuration belonging to the model at basename,
// migrates legacy parameter names, fills missing parameters with their
// defaults and runs the derivation pass. It accepts both the current JSON
// format at basename+".json" and the legacy msgpack format at
// basename+".dat".
func Load(basename string) (*params.Values, error) {
	spec := params.New()

	raw, err := readConfigFile(basename)
	if err != nil {
		return nil, err
	}

	v := params.NewValues()
	for key, val := range raw {
		p, ok := spec.LookupKey(key)
		if !ok {
			v.Set(key, params.CoerceUnknown(val))
			continue
		}
		coerced, err := params.Coerce(p.Kind, val)
		if err != nil {
			return nil, errcode.Wrap(errcode.ConfigFileMissingError, err,
				"malformed value for %q in config file %s%s",
				key, basename, ConfigExt)
		}
		v.Set(key, coerced)
	}

	// A file written before the current versioning scheme is recognised by
	// the absence of embedding_size (checked before legacy names migrate).
	meta := &params.Meta{
		FromCmdline: false,
		FromLegacy:  !v.Has("embedding_size"),
		VocabSize:   iodict.VocabSize,
	}

	if err := migrateLegacyNames(spec, v); err != nil {
		return nil, err
	}

	// Fill parameters missing from the loaded data with their defaults.
	for _, group := range spec.GroupNames() {
		for _, p := range spec.ParamsByGroup(group) {
			if !v.Has(p.Name) {
				v.Set(p.Name, p.Default)
			}
		}
	}

	if err := spec.Derive(v, meta); err != nil {
		return nil, err
	}
	return v, nil
}

// Save writes the configuration in the current JSON format next to the model
// file at basename.
func Save(v *params.Values, basename string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v.Map()); err != nil {
		return errcode.Wrap(errcode.WriteFileError, err,
			"cannot encode config for %s", basename)
	}
	path := basename + ConfigExt
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errcode.Wrap(errcode.WriteFileError, err,
			"cannot write config file %s", path)
	}
	return nil
}

// readConfigFile parses the current JSON format and falls back to the legacy
// msgpack format. Both failing is reported as a missing config file.
func readConfigFile(basename string) (map[string]any, error) {
	if raw, err := readJSONConfig(basename + ConfigExt); err == nil {
		return raw, nil
	}
	if raw, err := readLegacyConfig(basename + LegacyConfigExt); err == nil {
		return raw, nil
	}
	return nil, errcode.New(errcode.ConfigFileMissingError,
		"config file %s%s is missing", basename, ConfigExt)
}

func readJSONConfig(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func readLegacyConfig(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := msgpack.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// migrateLegacyNames moves values stored under legacy parameter names to the
// current names. A file carrying both the legacy and the current name for
// the same parameter violates the format's invariants.
func migrateLegacyNames(spec *params.Spec, v *params.Values) error {
	for _, group := range spec.GroupNames() {
		for _, p := range spec.ParamsByGroup(group) {
			for _, legacy := range p.LegacyNames {
				if !v.Has(legacy) {
					continue
				}
				if v.Has(p.Name) {
					return errcode.New(errcode.ConfigNameClashError,
						"config file carries both %q and its legacy name %q",
						p.Name, legacy)
				}
				v.Set(p.Name, v.Get(legacy))
				v.Delete(legacy)
			}
		}
	}
	return nil
}
