package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/fairwaylabs/coursesync/pkg/errors"
)

// containerKeys are the recognized top-level keys for the entry array, in
// lookup order. "entries" is current, "courses" is the legacy name.
var containerKeys = []string{"entries", "courses"}

// entryAliases maps each canonical Entry field to its accepted source keys,
// in lookup order. The legacy export format used different names.
var entryAliases = map[string][]string{
	"id":         {"courseCode", "id"},
	"name":       {"courseTitle", "name"},
	"nameKana":   {"courseKana", "nameKana"},
	"prefecture": {"region", "prefecture"},
	"areaCodes":  {"areaTags", "areaCodes"},
	"holeCount":  {"holes", "holeCount"},
	"pars":       {"parList", "pars"},
}

// File is a loaded catalog container: its entries in canonical form plus any
// other top-level fields, preserved across a save.
type File struct {
	Path    string
	Key     string // container key the entries were found under
	Extra   map[string]any
	Entries []*Entry
}

// Load reads a catalog container from path. YAML is detected by extension
// (.yaml/.yml); anything else is treated as JSON.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var container map[string]any
	if isYAML(path) {
		if err := yaml.Unmarshal(data, &container); err != nil {
			return nil, errors.WrapParse("yaml", path, err)
		}
	} else {
		if err := json.Unmarshal(data, &container); err != nil {
			return nil, errors.WrapParse("json", path, err)
		}
	}

	file := &File{
		Path:  path,
		Key:   containerKeys[0],
		Extra: make(map[string]any),
	}
	var records []any
	for _, key := range containerKeys {
		if list, ok := container[key].([]any); ok {
			file.Key = key
			records = list
			break
		}
	}
	for key, value := range container {
		if key != file.Key {
			file.Extra[key] = value
		}
	}

	for _, record := range records {
		fields, ok := record.(map[string]any)
		if !ok {
			continue
		}
		file.Entries = append(file.Entries, adaptEntry(fields))
	}
	return file, nil
}

// adaptEntry maps one raw record onto the canonical Entry via the alias
// table. Derived par fields keep their canonical names only.
func adaptEntry(fields map[string]any) *Entry {
	lookup := func(canonical string) any {
		for _, key := range entryAliases[canonical] {
			if value, ok := fields[key]; ok && value != nil {
				return value
			}
		}
		return nil
	}

	entry := &Entry{
		ID:         strings.TrimSpace(asString(lookup("id"))),
		Name:       asString(lookup("name")),
		NameKana:   asString(lookup("nameKana")),
		Prefecture: asString(lookup("prefecture")),
		AreaCodes:  asStringSlice(lookup("areaCodes")),
		HoleCount:  asIntPtr(lookup("holeCount")),
		Pars:       asIntSlice(lookup("pars")),
		ParOut:     asIntPtr(fields["parOut"]),
		ParIn:      asIntPtr(fields["parIn"]),
		ParTotal:   asIntPtr(fields["parTotal"]),
		ParSource:  asString(fields["parSource"]),
		ParTeeName: asString(fields["parTeeName"]),
	}
	entry.GolfCourseAPIID = asIntPtr(fields["golfcourseapiId"])
	return entry
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Loose coercions: JSON decodes numbers as float64, YAML as int64 or
// uint64, and legacy exports stored some ids and codes as numbers.

func asString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}

func asInt(value any) (int, bool) {
	switch v := value.(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint64:
		return int(v), true
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n, true
		}
	}
	return 0, false
}

func asIntPtr(value any) *int {
	if n, ok := asInt(value); ok {
		return &n
	}
	return nil
}

func asIntSlice(value any) []int {
	list, ok := value.([]any)
	if !ok {
		return nil
	}
	result := make([]int, 0, len(list))
	for _, item := range list {
		if n, ok := asInt(item); ok {
			result = append(result, n)
		}
	}
	return result
}

func asStringSlice(value any) []string {
	list, ok := value.([]any)
	if !ok {
		return nil
	}
	result := make([]string, 0, len(list))
	for _, item := range list {
		if s := asString(item); s != "" {
			result = append(result, s)
		}
	}
	return result
}
