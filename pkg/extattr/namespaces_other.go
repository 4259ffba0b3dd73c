//go:build !linux

package extattr

// Platforms with a flat attribute space (darwin, the BSDs via their user
// extattr namespace) expose everything as a single "user" namespace.
var osNamespaces = []namespaceDef{
	{name: "user", id: NamespaceUser, prefix: ""},
}
