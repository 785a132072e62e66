// Package report renders form evaluations as plain text using pongo2
// templates. The default template is embedded; callers can supply their own
// through WithFS or WithBaseDir.
package report
