package draft

import "strings"

// NormalizeBuffer prepares editor output for parsing: strips a UTF-8 BOM
// and converts CRLF line endings. Some editors add both.
func NormalizeBuffer(s string) string {
	s = strings.TrimPrefix(s, "﻿")
	return strings.ReplaceAll(s, "\r\n", "\n")
}
