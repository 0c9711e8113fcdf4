/*
Package operation implements the core rewrite pass for themefix.

	+-------------+
	|  Operation  |
	| (Core Logic)|
	+------+------+
	       |
	+------+------+
	|   Rewrite   |
	| (Transform) |
	+------+------+

🎯 Purpose:
- Discovers the target stylesheets (suffix-filtered directory listing plus
  two explicitly named files)
- Applies the ordered rule table per file and writes back only on change
- Runs the three phases in their fixed order: components, dark mode, then the
  scoped app stylesheet rewrite

🔄 Flow:
1. Discover files for the phase
2. Read the whole file, apply the rules, compare byte for byte
3. Overwrite in place only when the content changed
4. Emit one ChangeReport per file to the status package

⚡ Key Responsibilities:
- File discovery with silent soft-fail on missing directories and files
- Per-file error containment: an I/O failure is that file's outcome and
  never aborts the run
- The dry-run Status pass, which shares the exact same path with writes
  disabled

📝 Design Philosophy:
Each file's processing is independent; nothing is shared across files and no
state survives the run. The operation package owns orchestration and I/O and
delegates all pattern matching to pkg/text and all presentation to pkg/status.
*/
package operation
