package main

import (
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/percona/percona-compsci/errors"
	"github.com/percona/percona-compsci/sorting"
)

// algorithmFlag is a --algo value restricted to the known sort algorithms.
type algorithmFlag string

var _ pflag.Value = (*algorithmFlag)(nil)

func (a *algorithmFlag) String() string {
	return string(*a)
}

func (a *algorithmFlag) Set(s string) error {
	if !slices.Contains(sorting.Names(), s) {
		return errors.Errorf("must be one of %s", strings.Join(sorting.Names(), ", "))
	}

	*a = algorithmFlag(s)

	return nil
}

func (a *algorithmFlag) Type() string {
	return "algorithm"
}

func parseInts(args []string) ([]int, error) {
	ints := make([]int, len(args))

	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i+1)
		}

		ints[i] = v
	}

	return ints, nil
}
