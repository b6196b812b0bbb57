/*
Package config manages persistent defaults for clipcat.

	            +-------------+
	            |   Config    |
	            | (Defaults)  |
	            +------+------+
	                   |
	    +--------------+--------------+
	    |              |              |
	+---+----+    +----+----+    +----+----+
	|  YAML  |    |   HCL   |    |  JSON   |
	| Parser |    | Parser  |    | Parser  |
	+--------+    +---------+    +---------+

🎯 Purpose:
- Loads optional .clipcat.{yaml,hcl,json} files
- Supplies default include/exclude/extension filters and mode flags
- Validates every glob pattern before the collector sees it

🔄 Flow:
1. Reads configuration from file (missing file means zero config)
2. Dispatches to a format-specific parser via the registry
3. Validates patterns with doublestar
4. Commands merge the result under their command-line flags

📝 Design Philosophy:
A config file is a convenience, never a requirement. Everything it can
express is also expressible as flags, and flags win where both are set —
except excludes, which accumulate so a config-level ignore list always
applies.
*/
package config
