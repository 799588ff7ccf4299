package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/fairwaylabs/coursesync/pkg/constants"
	"github.com/fairwaylabs/coursesync/pkg/errors"
)

// SetMeta records a run-metadata value under meta.<key> in the container.
func (f *File) SetMeta(key string, value any) {
	if f.Extra == nil {
		f.Extra = make(map[string]any)
	}
	meta, ok := f.Extra["meta"].(map[string]any)
	if !ok {
		meta = make(map[string]any)
	}
	meta[key] = value
	f.Extra["meta"] = meta
}

// Save writes the container to path, with the canonical entries under the
// key they were loaded from and all other top-level fields preserved. The
// format follows the target path's extension, so a YAML catalog can be
// re-exported as JSON and vice versa.
func (f *File) Save(path string) error {
	container := make(map[string]any, len(f.Extra)+1)
	for key, value := range f.Extra {
		container[key] = value
	}
	key := f.Key
	if key == "" {
		key = containerKeys[0]
	}
	container[key] = f.Entries

	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(container)
		if err != nil {
			return errors.WrapParse("yaml", path, err)
		}
	} else {
		data, err = json.MarshalIndent(container, "", "  ")
		if err != nil {
			return errors.WrapParse("json", path, err)
		}
		data = append(data, '\n')
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}
	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
