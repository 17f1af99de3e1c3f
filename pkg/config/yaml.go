package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/envkit/pkg/boolstr"
	"github.com/dmitrymomot/envkit/pkg/envvar"
	"github.com/dmitrymomot/envkit/pkg/logger"
)

// LoadYAML reads flat YAML mappings into the process environment.
// Later files override earlier files and the existing environment.
//
// Scalars are stored as written, booleans in canonical form, sequences of
// scalars as lists joined with the accessor separator and null values are
// skipped. Nested mappings are rejected with ErrUnsupportedValue.
//
//	APP_ENV: production
//	DEBUG: false
//	ALLOWED_HOSTS:
//	  - example.com
//	  - api.example.com
func LoadYAML(paths ...string) error {
	return LoadYAMLTo(envvar.Default(), paths...)
}

// LoadYAMLTo is LoadYAML writing through acc.
func LoadYAMLTo(acc *envvar.Accessor, paths ...string) error {
	for _, path := range paths {
		if err := applyYAMLFile(acc, path); err != nil {
			return err
		}
	}
	return nil
}

func applyYAMLFile(acc *envvar.Accessor, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", path, err))
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", path, err))
	}
	if len(doc.Content) == 0 {
		return nil
	}

	root := resolve(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: top level must be a mapping", path))
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i].Value, resolve(root.Content[i+1])
		if err := applyYAMLValue(acc, key, value); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	acc.Logger().Debug("environment file loaded", logger.EnvFile(path), slog.Int("vars", len(root.Content)/2))
	return nil
}

func applyYAMLValue(acc *envvar.Accessor, key string, n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		s, skip, err := scalarString(n)
		if err != nil || skip {
			return err
		}
		return acc.Set(key, s)
	case yaml.SequenceNode:
		values := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			item = resolve(item)
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("%w: %s: list items must be scalars", ErrUnsupportedValue, key)
			}
			s, skip, err := scalarString(item)
			if err != nil {
				return err
			}
			if !skip {
				values = append(values, s)
			}
		}
		return acc.SetList(key, values)
	default:
		return fmt.Errorf("%w: %s: nested mappings are not supported", ErrUnsupportedValue, key)
	}
}

// scalarString returns the environment form of a scalar and whether it is null.
func scalarString(n *yaml.Node) (string, bool, error) {
	switch n.ShortTag() {
	case "!!null":
		return "", true, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return "", false, errors.Join(ErrUnsupportedValue, err)
		}
		return boolstr.FromBool(b), false, nil
	default:
		return n.Value, false, nil
	}
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
