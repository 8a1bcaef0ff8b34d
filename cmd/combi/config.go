package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// loadConfig is a kong.ConfigurationLoader for YAML files.
//
// Keys are flag names, eg.
//
//	grammar: json.ebnf
//	start: Value
//	max-errors: 5
func loadConfig(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		for _, key := range []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")} {
			value, ok := values[key]
			if !ok {
				continue
			}
			if s, ok := value.(string); ok {
				return s, nil
			}
			return fmt.Sprint(value), nil
		}
		return nil, nil
	}), nil
}
