/*
Package status handles per-file outcome reporting for themefix.

	            +-------------+
	            |   Status    |
	            | (Reporting) |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	| Formatter |           | Logger  |
	| (Markers) |           | (UI/UX) |
	+-----------+           +---------+

🎯 Purpose:
- Formats the three per-file outcomes (changed / skipped / error)
- Prints user-facing console lines via pterm
- Mirrors every line into zerolog for structured logs

📝 Design Philosophy:
Reporting is observational only: it never affects which files are rewritten.
The UserLogger is an append-only sink over the run, one line per processed
file plus the start and end banners.

🤝 Interfaces:
- FileFormatter: formats outcome lines and summaries
- UserLogger: prints and logs file changes, banners, phases
*/
package status
