/*
Package status tracks and reports per-file outcomes of tagsync runs.

	            +-------------+
	            |   Status    |
	            | (Tracking)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|  Tracker  |           | Loggers |
	| (Records) |           | (UI/UX) |
	+-----------+           +---------+

🎯 Purpose:
- Records the outcome of every file operation (new, modified, unchanged)
- Formats outcomes for console display
- Provides user-friendly progress feedback

🔄 Flow:
1. Sync and edit operations report each file's outcome to the Tracker
2. The Tracker records it and logs a formatted line
3. The UserLogger surfaces notable changes to the terminal

🤝 Interfaces:
- FileFormatter: formats outcome messages (default emoji or colored variants)
*/
package status
