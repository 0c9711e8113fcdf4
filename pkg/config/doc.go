/*
Package config manages configuration parsing and validation for themefix.

	            +-------------+
	            |   Config    |
	            | (Rule table)|
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   YAML    |           |   HCL   |
	| Parser    |           | Parser  |
	+-----------+           +---------+

🎯 Purpose:
- Holds the ordered substitution table and the target paths
- Ships a built-in default table (the purple theme migration)
- Parses optional override files in YAML or HCL
- Validates rules at construction time, including the idempotence guard

🔄 Flow:
1. Load reads the file (or falls back to Default)
2. A registered parser decodes the format-specific syntax
3. Validate fills defaults, cleans paths and checks the rule table
4. The engine receives the table via ReplacementRules / ScopedReplacementRules

📝 Design Philosophy:
The config package is the source of truth for the rule table. Rule order is
part of the contract, not an implementation detail: specific patterns come
before general ones, and validation rejects any table where a rule's
replacement could be re-matched by another rule's pattern, so a second run
over already-rewritten files is always a no-op.
*/
package config
