// SPDX-License-Identifier: MIT
// Package: graphty/builder
//
// parse.go - textual generator specs for the CLI.

package builder

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// generators maps spec names to their argument parsers.
var generators = map[string]func(args []string) (Constructor, error){
	"path":      oneInt(Path),
	"cycle":     oneInt(Cycle),
	"star":      oneInt(Star),
	"wheel":     oneInt(Wheel),
	"complete":  oneInt(Complete),
	"bipartite": twoInts(CompleteBipartite),
	"grid":      twoInts(Grid),
	"random": func(args []string) (Constructor, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("want n,p")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, err
		}
		p, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return nil, err
		}

		return RandomSparse(n, p), nil
	},
}

// Generators returns the names Parse accepts, sorted.
func Generators() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Parse turns "name:arg[,arg]" into a Constructor, e.g. "cycle:6",
// "grid:3,4", "bipartite:2,3" or "random:20,0.1".
func Parse(spec string) (Constructor, error) {
	name, rawArgs, _ := strings.Cut(strings.TrimSpace(spec), ":")
	gen, ok := generators[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("builder: unknown generator %q (want one of %s): %w",
			name, strings.Join(Generators(), ", "), ErrConstructFailed)
	}
	var args []string
	if rawArgs != "" {
		args = strings.Split(rawArgs, ",")
		for i := range args {
			args[i] = strings.TrimSpace(args[i])
		}
	}
	c, err := gen(args)
	if err != nil {
		return nil, fmt.Errorf("builder: generator %q: %v: %w", spec, err, ErrConstructFailed)
	}

	return c, nil
}

func oneInt(fn func(int) Constructor) func([]string) (Constructor, error) {
	return func(args []string) (Constructor, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("want 1 argument, got %d", len(args))
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, err
		}

		return fn(n), nil
	}
}

func twoInts(fn func(int, int) Constructor) func([]string) (Constructor, error) {
	return func(args []string) (Constructor, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("want 2 arguments, got %d", len(args))
		}
		a, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, err
		}
		b, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, err
		}

		return fn(a, b), nil
	}
}
