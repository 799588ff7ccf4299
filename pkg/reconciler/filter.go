package reconciler

import (
	"strconv"
	"strings"
)

// ParseAreas parses an area-code filter spec: a comma-separated list of
// codes and hyphen ranges, e.g. "25-30,40". Reversed ranges are normalized
// and non-numeric parts ignored. An empty spec returns nil, meaning no
// filtering.
func ParseAreas(spec string) []string {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil
	}

	var codes []string
	seen := make(map[string]bool)
	add := func(code int) {
		s := strconv.Itoa(code)
		if !seen[s] {
			seen[s] = true
			codes = append(codes, s)
		}
	}

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if start, end, ok := strings.Cut(part, "-"); ok {
			lo, errLo := strconv.Atoi(strings.TrimSpace(start))
			hi, errHi := strconv.Atoi(strings.TrimSpace(end))
			if errLo != nil || errHi != nil {
				continue
			}
			if lo > hi {
				lo, hi = hi, lo
			}
			for code := lo; code <= hi; code++ {
				add(code)
			}
			continue
		}
		if code, err := strconv.Atoi(part); err == nil {
			add(code)
		}
	}
	return codes
}

// areaFilter is an allow-list of area codes.
type areaFilter map[string]bool

// newAreaFilter builds a filter from an allow-list, or nil when the list is
// empty.
func newAreaFilter(codes []string) areaFilter {
	if len(codes) == 0 {
		return nil
	}
	filter := make(areaFilter, len(codes))
	for _, code := range codes {
		filter[code] = true
	}
	return filter
}

// matches reports whether any of the entry's area codes is allowed. An
// entry without area codes never matches an active filter.
func (f areaFilter) matches(codes []string) bool {
	for _, code := range codes {
		if f[code] {
			return true
		}
	}
	return false
}
