package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/cmcutils/array"
	"github.com/katalvlaran/cmcutils/cfgtree"
	"github.com/katalvlaran/cmcutils/join"
	"github.com/katalvlaran/cmcutils/seed"
	"github.com/katalvlaran/cmcutils/text"
)

var errNotFound = errors.New("key not found")

func (a *app) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	return nil
}

func usagef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}

// readTree parses a config file, picking the format from its extension.
func readTree(path string) (*cfgtree.Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m *cfgtree.Mapping
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		m, err = cfgtree.ParseYAML(data)
	case ".json":
		m, err = cfgtree.ParseJSON(data)
	case ".toml":
		m, err = cfgtree.ParseTOML(data)
	default:
		return nil, fmt.Errorf("%s: unsupported format", path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func readTrees(paths []string) ([]*cfgtree.Mapping, error) {
	out := make([]*cfgtree.Mapping, 0, len(paths))
	for _, p := range paths {
		m, err := readTree(p)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (a *app) printTree(m *cfgtree.Mapping) error {
	if a.dump {
		_, err := fmt.Fprint(a.stdout, cfgtree.Dump(m))
		return err
	}
	out, err := cfgtree.MarshalYAML(m)
	if err != nil {
		return err
	}
	_, err = a.stdout.Write(out)
	return err
}

// parseKey reads integer-looking keys as integer keys.
func parseKey(s string) cfgtree.Key {
	if n, err := strconv.Atoi(s); err == nil {
		return cfgtree.IntKey(n)
	}
	return cfgtree.StrKey(s)
}

func (a *app) lcs(args []string) error {
	fmt.Fprintln(a.stdout, text.LongestCommonSubstring(args))
	return nil
}

func (a *app) search(args []string) error {
	fs := a.flags("search")
	withPath := fs.Bool("path", false, "Also print the key path of the match")
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return usagef("search needs KEY and FILE")
	}
	m, err := readTree(fs.Arg(1))
	if err != nil {
		return err
	}

	key := parseKey(fs.Arg(0))
	path, v, ok := cfgtree.SearchPath(m, key)
	if !ok && key.IsInt() {
		path, v, ok = cfgtree.SearchPath(m, cfgtree.StrKey(fs.Arg(0)))
	}
	if !ok {
		return fmt.Errorf("%w: %s", errNotFound, fs.Arg(0))
	}
	if *withPath {
		parts := make([]string, len(path))
		for i, k := range path {
			parts[i] = k.String()
		}
		fmt.Fprintf(a.stdout, "%s: ", strings.Join(parts, "."))
	}
	fmt.Fprintln(a.stdout, v)
	return nil
}

func (a *app) substitute(args []string) error {
	fs := a.flags("substitute")
	with := fs.String("with", "", "File holding the flat substitution mapping")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *with == "" || fs.NArg() != 1 {
		return usagef("substitute needs -with SUBS and one FILE")
	}
	subs, err := readTree(*with)
	if err != nil {
		return err
	}
	m, err := readTree(fs.Arg(0))
	if err != nil {
		return err
	}
	return a.printTree(cfgtree.Substitute(m, subs))
}

func (a *app) join(args []string) error {
	if len(args) == 0 {
		return usagef("join needs at least one FILE")
	}
	ms, err := readTrees(args)
	if err != nil {
		return err
	}
	out, err := join.Dictionaries(ms...)
	if err != nil {
		return err
	}
	return a.printTree(out)
}

func (a *app) params(args []string) error {
	fs := a.flags("params")
	policy := fs.String("on-unmatched", a.cfg.Join.OnUnmatched, "Colliding keys with no merge rule: skip, overwrite or error")
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return usagef("params needs at least one FILE")
	}
	p, err := join.ParseOnUnmatched(*policy)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	ms, err := readTrees(fs.Args())
	if err != nil {
		return err
	}
	out, err := join.PreprocessingParams(ms, join.WithOnUnmatched(p))
	if err != nil {
		return err
	}
	return a.printTree(out)
}

func (a *app) seed(args []string) error {
	fs := a.flags("seed")
	s := fs.Int64("seed", a.cfg.Seed.Value, "Seed value")
	n := fs.Int("n", 3, "Number of draws per stream")
	worker := fs.Int("worker", -1, "Reseed as this data-loader worker first")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *n < 0 {
		return usagef("-n must be >= 0")
	}

	sc := a.cfg.Seed
	sc.Value = *s
	g := sc.Generators()
	prev := seed.Install(g)
	defer seed.Install(prev)
	if *worker >= 0 {
		seed.Worker(*worker)
	}

	general := make([]string, *n)
	for i := range general {
		general[i] = strconv.FormatFloat(g.General.Float64(), 'f', 6, 64)
	}
	fmt.Fprintf(a.stdout, "seed:    %d\n", g.Seed())
	fmt.Fprintf(a.stdout, "general: %s\n", strings.Join(general, " "))

	if *n > 0 {
		d, err := array.Random(1, *n, g.Numeric)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "numeric: %s", d)
	}
	return nil
}

func (a *app) beep(args []string) error {
	if len(args) != 0 {
		return usagef("beep takes no arguments")
	}
	p, err := a.cfg.Sound.Player()
	if err != nil || p == nil {
		return err
	}
	return p.Play(context.Background())
}
