/*
Package operation implements the business logic for running configured
tree-copy tasks.

	+-------------+
	|  Operation  |
	| (Task Glue) |
	+------+------+
	       |
	+------+------+
	|  copytree   |
	|  (Engine)   |
	+------+------+

🎯 Purpose:
- Turns config.Task values into copytree engine calls
- Routes per-entry results into status tracking and console output
- Runs tasks sequentially or concurrently

🔄 Flow:
1. Tasks builds one copy operation per configured task
2. OperationRunner executes them, isolating failures per task
3. Callbacks feed status.Reporter and log.Logger as entries land

🤝 Interfaces:
- Operation: one executable unit of work
- status.Reporter: records what happened to each entry
- extattr.Store: resolves extended attributes for propagation

The package owns no copy mechanics. Traversal, attribute propagation
and error aggregation live in pkg/copytree; operation only decides
what to copy and reports how it went.
*/
package operation
