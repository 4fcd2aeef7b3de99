package gen

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// taggedRe finds output markers: pipeline.Tagged(<binding>, "<Type>").
// The quoted literal is the declared output type.
var taggedRe = regexp.MustCompile(`pipeline\.Tagged\(\s*[^,]+,\s*"(\w+)"\s*\)`)

// rendererAnnotationRe finds renderer annotations on their own line:
// //writ:renderer <FuncName>
var rendererAnnotationRe = regexp.MustCompile(`(?m)^[ \t]*//writ:renderer[ \t]+(\w+)[ \t]*$`)

// rendererFuncRe extracts the first parameter type of the function
// declaration that follows an annotation. The leading * and a package
// qualifier are part of the capture and stripped afterwards.
var rendererFuncRe = regexp.MustCompile(`func\s+\w+\s*\(\s*\w+\s+\*?([\w.]+)`)

// RendererBinding ties an annotated renderer function to the logical
// path of the output type it accepts.
type RendererBinding struct {
	// Func is the annotated function name, e.g. "RenderHex".
	Func string

	// Output is the resolved logical path of the accepted type.
	Output string

	// File is the path the binding came from, relative to the root.
	File string
}

// eligibleSource reports whether a directory entry is scanned at all.
// Underscore-prefixed files are reserved for templates the Go tool
// already ignores, and test files never declare bindings.
func eligibleSource(name string) bool {
	if filepath.Ext(name) != ".go" {
		return false
	}
	if strings.HasPrefix(name, "_") {
		return false
	}
	if strings.HasSuffix(name, "_test.go") {
		return false
	}
	return true
}

// ScanOutputTypes walks the commands tree and collects every declared
// output type, resolved through each file's use declarations to full
// logical paths. The result is sorted and deduplicated.
func ScanOutputTypes(root string) ([]string, error) {
	dir := filepath.Join(root, CommandsPath)
	seen := make(map[string]struct{})

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !eligibleSource(d.Name()) {
			return nil
		}

		src, err := os.ReadFile(path)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("skipping unreadable source file")
			return nil
		}

		names := outputTypeNames(string(src))
		for _, full := range ResolveTypePaths(string(src), names) {
			seen[full] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	types := make([]string, 0, len(seen))
	for t := range seen {
		types = append(types, t)
	}
	sort.Strings(types)
	return types, nil
}

// outputTypeNames collects the bare type names of every output marker
// in one source file, in order of appearance.
func outputTypeNames(src string) []string {
	var names []string
	for _, m := range taggedRe.FindAllStringSubmatch(src, -1) {
		names = append(names, m[1])
	}
	return names
}

// ScanRenderers walks the renderers tree and collects every annotated
// renderer function together with its accepted output type. Results
// are sorted by function name. Annotations that cannot be completed
// are skipped with a warning.
func ScanRenderers(root string) ([]RendererBinding, error) {
	dir := filepath.Join(root, RenderersPath)
	var bindings []RendererBinding

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !eligibleSource(d.Name()) {
			return nil
		}

		src, err := os.ReadFile(path)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("skipping unreadable source file")
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}

		if b, ok := scanRendererFile(string(src), rel); ok {
			bindings = append(bindings, b)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(bindings, func(i, j int) bool { return bindings[i].Func < bindings[j].Func })
	return bindings, nil
}

// scanRendererFile extracts the first renderer binding of one file.
// The annotation names the function; the accepted type is the first
// parameter of the next function declaration, stripped of its pointer
// marker and package qualifier, then resolved through the file's use
// declarations.
func scanRendererFile(src string, file string) (RendererBinding, bool) {
	loc := rendererAnnotationRe.FindStringSubmatchIndex(src)
	if loc == nil {
		return RendererBinding{}, false
	}
	funcName := src[loc[2]:loc[3]]

	rest := src[loc[1]:]
	m := rendererFuncRe.FindStringSubmatch(rest)
	if m == nil {
		log.Warn().Str("file", file).Str("renderer", funcName).
			Msg("renderer annotation has no following function declaration")
		return RendererBinding{}, false
	}

	paramType := m[1]
	if pos := strings.LastIndex(paramType, "."); pos >= 0 {
		paramType = paramType[pos+1:]
	}

	resolved := ResolveTypePaths(src, []string{paramType})
	if len(resolved) == 0 {
		log.Warn().Str("file", file).Str("renderer", funcName).Str("type", paramType).
			Msg("renderer parameter type does not resolve through use declarations")
		return RendererBinding{}, false
	}

	return RendererBinding{Func: funcName, Output: resolved[0], File: file}, true
}
