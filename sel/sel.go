// Package sel selects named items such as benches by include/exclude lists.
//
// Names have the form "group.name". A list entry "group.*" matches every name
// in the group; any other entry matches exactly.
package sel

import (
	"slices"
	"strings"
)

// Filter returns true if a name is allowed.
type Filter func(group, name string) bool

func AllowAll(string, string) bool {
	return true
}

// MakeFilter builds a filter that allows names matched by include (or all names
// when include is empty) unless they are matched by exclude.
func MakeFilter(include, exclude []string) Filter {
	if len(include) == 0 && len(exclude) == 0 {
		return AllowAll
	}

	includeFilter := doMakeFilter(include)
	excludeFilter := doMakeFilter(exclude)

	return func(group, name string) bool {
		if len(includeFilter) != 0 && !includeFilter.Has(group, name) {
			return false
		}

		if len(excludeFilter) != 0 && excludeFilter.Has(group, name) {
			return false
		}

		return true
	}
}

// Allows splits a "group.name" identifier and applies f to it.
func (f Filter) Allows(id string) bool {
	group, name, _ := strings.Cut(id, ".")

	return f(group, name)
}

type filterMap map[string][]string

func (f filterMap) Has(group, name string) bool {
	list, ok := f[group]
	if !ok {
		return false // the group is not listed
	}

	if len(list) == 0 {
		return true // every name of the group is listed
	}

	return slices.Contains(list, name)
}

func doMakeFilter(filter []string) filterMap {
	// keys are group names. values are the names listed for the group.
	// a nil value means the whole group is listed.
	filterMap := make(map[string][]string)

	for _, filter := range filter {
		group, name, _ := strings.Cut(filter, ".")

		l, ok := filterMap[group]
		if ok && len(l) == 0 {
			// the whole group is already listed
			continue
		}

		if name == "*" || name == "" {
			filterMap[group] = nil

			continue
		}

		filterMap[group] = append(filterMap[group], name)
	}

	return filterMap
}
