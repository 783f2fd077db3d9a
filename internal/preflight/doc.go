// Package preflight runs environment checks before metadata cleaning starts:
// directory access, external tool availability, and desktop notification
// helpers. The check command renders the results as a table.
package preflight
