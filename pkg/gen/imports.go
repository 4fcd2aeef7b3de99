package gen

import "strings"

// useDirective opens a logical namespace declaration:
//
//	//writ:use cmds::out::{StatusReport, storage::{StorageMappings}}
//
// The declaration body runs to the end of the line; a trailing
// semicolon is tolerated. Nested brace groups expand the way module
// paths do, each leaf binding its bare name to the full path.
const useDirective = "//writ:use"

// ImportTable maps bare type identifiers to fully qualified
// ::-separated logical paths.
type ImportTable map[string]string

// BuildImportTable extracts every use declaration from one source
// file. Returns nil when the file declares nothing. Declarations with
// unbalanced braces are skipped.
func BuildImportTable(src string) ImportTable {
	var table ImportTable

	for _, line := range strings.Split(src, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, useDirective) {
			continue
		}
		body := strings.TrimSpace(strings.TrimPrefix(trimmed, useDirective))
		body = strings.TrimSuffix(body, ";")
		body = strings.TrimSpace(body)
		if body == "" {
			continue
		}
		if !bracesBalanced(body) {
			log.Warn().Str("declaration", body).Msg("skipping use declaration with unbalanced braces")
			continue
		}

		if table == nil {
			table = make(ImportTable)
		}

		if pos := strings.Index(body, "::{"); pos >= 0 {
			base := body[:pos]
			content := body[pos+3 : len(body)-1]
			expandGroup(base, content, table)
			continue
		}

		if pos := strings.LastIndex(body, "::"); pos >= 0 {
			table[body[pos+2:]] = body
		} else {
			table[body] = body
		}
	}

	return table
}

// ResolveTypePaths resolves bare names through the file's import
// table, preserving input order. Names with no table entry are
// dropped. Returns nil when the file has no use declarations.
func ResolveTypePaths(src string, names []string) []string {
	table := BuildImportTable(src)
	if table == nil {
		return nil
	}

	resolved := make([]string, 0, len(names))
	for _, name := range names {
		if full, ok := table[name]; ok {
			resolved = append(resolved, full)
		}
	}
	return resolved
}

// expandGroup walks one brace group, splitting items on commas at the
// current nesting depth only.
func expandGroup(base string, content string, table ImportTable) {
	var items []string
	var current strings.Builder
	depth := 0

	for _, c := range content {
		switch c {
		case '{':
			depth++
			current.WriteRune(c)
		case '}':
			depth--
			current.WriteRune(c)
		case ',':
			if depth == 0 {
				items = append(items, strings.TrimSpace(current.String()))
				current.Reset()
			} else {
				current.WriteRune(c)
			}
		default:
			current.WriteRune(c)
		}
	}
	if rest := strings.TrimSpace(current.String()); rest != "" {
		items = append(items, rest)
	}

	for _, item := range items {
		if item == "" {
			continue
		}

		if pos := strings.Index(item, "::{"); pos >= 0 {
			subBase := item[:pos]
			subContent := item[pos+3 : len(item)-1]
			if base != "" {
				subBase = base + "::" + subBase
			}
			expandGroup(subBase, subContent, table)
			continue
		}

		full := item
		if base != "" {
			full = base + "::" + item
		}
		if pos := strings.LastIndex(item, "::"); pos >= 0 {
			table[item[pos+2:]] = full
		} else {
			table[item] = full
		}
	}
}

func bracesBalanced(s string) bool {
	depth := 0
	for _, c := range s {
		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}
