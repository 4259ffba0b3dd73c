package extattr

import (
	"sort"
	"strings"

	"github.com/pkg/xattr"
	"gitlab.com/tozd/go/errors"
)

// 🏭 System returns a Store backed by the operating system's extended
// attribute calls. Errors from the kernel are passed through unwrapped so
// callers can inspect the underlying errno.
func System() Store {
	return systemStore{}
}

// systemStore maps namespace IDs onto the platform's attribute naming
// scheme. On Linux namespaces are name prefixes (user.*, trusted.*, ...);
// on flat-namespace platforms everything lives in a single "user" space.
type systemStore struct{}

// namespaceDef describes one platform namespace. The osNamespaces table is
// provided per GOOS.
type namespaceDef struct {
	name   string
	id     NamespaceID
	prefix string
}

// qualify turns a bare attribute name into the platform's on-disk name.
func (d namespaceDef) qualify(name string) string {
	return d.prefix + name
}

// trim strips the namespace prefix from an on-disk name, reporting whether
// the name belongs to this namespace at all.
func (d namespaceDef) trim(name string) (string, bool) {
	if d.prefix == "" {
		return name, true
	}
	return strings.CutPrefix(name, d.prefix)
}

func lookupNamespace(ns NamespaceID) (namespaceDef, error) {
	for _, def := range osNamespaces {
		if def.id == ns {
			return def, nil
		}
	}
	return namespaceDef{}, errors.Errorf("%w: id %d", ErrUnknownNamespace, ns)
}

func (systemStore) Namespaces() (map[string]NamespaceID, error) {
	out := make(map[string]NamespaceID, len(osNamespaces))
	for _, def := range osNamespaces {
		out[def.name] = def.id
	}
	return out, nil
}

func (systemStore) List(path string, ns NamespaceID, follow bool) ([]string, error) {
	def, err := lookupNamespace(ns)
	if err != nil {
		return nil, err
	}

	var names []string
	if follow {
		names, err = xattr.List(path)
	} else {
		names, err = xattr.LList(path)
	}
	if err != nil {
		return nil, err
	}

	// The kernel lists every namespace at once; keep only ours.
	out := make([]string, 0, len(names))
	for _, name := range names {
		trimmed, ok := def.trim(name)
		if !ok {
			continue
		}
		out = append(out, trimmed)
	}
	return out, nil
}

func (systemStore) Get(path string, ns NamespaceID, name string, follow bool) ([]byte, error) {
	def, err := lookupNamespace(ns)
	if err != nil {
		return nil, err
	}
	if follow {
		return xattr.Get(path, def.qualify(name))
	}
	return xattr.LGet(path, def.qualify(name))
}

func (systemStore) Set(path string, ns NamespaceID, attrs map[string][]byte, follow bool) error {
	def, err := lookupNamespace(ns)
	if err != nil {
		return err
	}

	// Deterministic write order so a batch always fails on the same name.
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if follow {
			err = xattr.Set(path, def.qualify(name), attrs[name])
		} else {
			err = xattr.LSet(path, def.qualify(name), attrs[name])
		}
		if err != nil {
			return err
		}
	}
	return nil
}
