/*
Package copytree replicates filesystem trees, optionally carrying extended
attributes along.

	+-----------+
	|   Copy    |
	| (walker)  |
	+-----+-----+
	      |
	+-----+-----+----------+
	|           |          |
	symlinks    files      dirs
	(recreate)  (contents, (recurse,
	            metadata,   stat after
	            attrs)      children)

🎯 Purpose:
- Copy a tree: directories, regular files, symlinks
- Mirror permissions and timestamps, directories after their children
- Propagate extended attributes per namespace through an extattr.Store
- Keep going on per-entry failures and hand the caller every cause

🔄 Error modes:
Copy either collects failures into one flat aggregate (the default) or,
when OnError is set, reports each failure as it happens and returns nil.
Only an unusable top-level source or destination, an invalid option, or
cancellation make Copy fail outright.

🔍 Example:

	err := copytree.Copy(ctx, "/data/src", "/data/dst", &copytree.Options{
		Exclude: []string{".git"},
		Attrs:   copytree.AllAttrs(),
		OnProgress: func(src, dst string) {
			fmt.Println("copying", src)
		},
	})
	for _, cause := range copytree.Errors(err) {
		fmt.Println("failed:", cause)
	}
*/
package copytree
