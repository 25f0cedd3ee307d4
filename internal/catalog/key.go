package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LatestVersion is the lookup-only sentinel meaning "greatest version
// present". It is never stored in a catalog.
const LatestVersion = -1

// Key errors
var (
	ErrInvalidKey = errors.New("invalid catalog key")
)

// CatalogKey addresses a single source: an identifier plus a version.
// Version LatestVersion addresses whatever version is numerically
// greatest at lookup time. Value type, equality by value.
type CatalogKey struct {
	Identifier string
	Version    int
}

// NewKey builds a key addressing the latest version of identifier.
func NewKey(identifier string) CatalogKey {
	return CatalogKey{Identifier: identifier, Version: LatestVersion}
}

// String renders the key as "identifier@version", or just the identifier
// when the version is the latest-version sentinel.
func (k CatalogKey) String() string {
	if k.Version == LatestVersion {
		return k.Identifier
	}
	return fmt.Sprintf("%s@%d", k.Identifier, k.Version)
}

// ParseKey parses "identifier" or "identifier@version" into a CatalogKey.
// A bare identifier addresses the latest version.
func ParseKey(s string) (CatalogKey, error) {
	if s == "" {
		return CatalogKey{}, ErrInvalidKey
	}

	ident, verStr, found := strings.Cut(s, "@")
	if !found {
		return NewKey(s), nil
	}
	if ident == "" || verStr == "" {
		return CatalogKey{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}

	ver, err := strconv.Atoi(verStr)
	if err != nil {
		return CatalogKey{}, fmt.Errorf("%w: version in %q is not an integer", ErrInvalidKey, s)
	}
	if ver <= 0 && ver != LatestVersion {
		return CatalogKey{}, fmt.Errorf("%w: version must be positive, got %d", ErrInvalidKey, ver)
	}

	return CatalogKey{Identifier: ident, Version: ver}, nil
}

// MarshalYAML encodes the key as a compact two-element flow sequence,
// e.g. [ds1, 2].
func (k CatalogKey) MarshalYAML() (any, error) {
	return &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: k.Identifier},
			{Kind: yaml.ScalarNode, Value: strconv.Itoa(k.Version)},
		},
	}, nil
}

// UnmarshalYAML decodes the compact sequence form produced by MarshalYAML.
func (k *CatalogKey) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode || len(node.Content) != 2 {
		return fmt.Errorf("%w: expected [identifier, version] sequence", ErrInvalidKey)
	}

	k.Identifier = node.Content[0].Value
	ver, err := strconv.Atoi(node.Content[1].Value)
	if err != nil {
		return fmt.Errorf("%w: version %q is not an integer", ErrInvalidKey, node.Content[1].Value)
	}
	k.Version = ver
	return nil
}
