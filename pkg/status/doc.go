/*
Package status tracks per-entry results of a tree copy and reports them.

	            +-------------+
	            |   Manager   |
	            | (Tracking)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|  Entries  |           | Format  |
	| (Results) |           | (UI/UX) |
	+-----------+           +---------+

🎯 Purpose:
- Tracks what happened to each source entry (copied, linked, skipped, failed)
- Aggregates outcomes into a run summary
- Provides user-friendly status reporting

🔄 Flow:
1. Operation layer feeds one Entry per processed path
2. Manager stores entries and logs each in a friendly format
3. Summarize/Failures answer "how did the run go" afterwards

🤝 Interfaces:
- Reporter: Tracks and lists entry results
- EntryFormatter: Formats entry and summary messages

The package holds no file system logic. Copying lives in pkg/copytree;
status only remembers and presents what it was told.
*/
package status
