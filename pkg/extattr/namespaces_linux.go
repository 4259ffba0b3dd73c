//go:build linux

package extattr

// Linux qualifies attribute names with a namespace prefix. The system,
// trusted and security namespaces usually need elevated privileges; lists
// on them simply come back empty for ordinary users.
var osNamespaces = []namespaceDef{
	{name: "user", id: NamespaceUser, prefix: "user."},
	{name: "system", id: NamespaceSystem, prefix: "system."},
	{name: "trusted", id: NamespaceTrusted, prefix: "trusted."},
	{name: "security", id: NamespaceSecurity, prefix: "security."},
}
