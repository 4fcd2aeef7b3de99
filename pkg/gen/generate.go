// Package gen builds the dispatch tables that tie commands, output
// types, and renderers together. It reads registry.toml, scans the
// command and renderer sources for declarations, and expands marker
// templates into the zz_ files under pkg/dispatch. Running it twice
// over unchanged inputs produces byte-identical output.
package gen

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/writ-vcs/writ/pkg/errors"
	"github.com/writ-vcs/writ/pkg/logging"
)

var log = logging.GetLogger("gen")

// Generator runs code generation for the project rooted at Root, the
// directory holding registry.toml and the pkg tree.
type Generator struct {
	Root string
}

func New(root string) *Generator {
	return &Generator{Root: root}
}

// Report summarizes one generation run.
type Report struct {
	Commands  int
	Renderers int
	Overrides int
	Listings  int

	// Files lists every written path, relative to the root.
	Files []string
}

// Generate runs the full pipeline: gather config and source scans,
// build the three dispatch tables, and write the configured listings.
func (g *Generator) Generate() (*Report, error) {
	defer logging.LogOperationStart(log, "generate")()

	var (
		cfg      *Config
		outputs  []string
		bindings []RendererBinding
	)

	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		cfg, err = LoadConfig(filepath.Join(g.Root, RegistryFile))
		return err
	})
	eg.Go(func() error {
		var err error
		outputs, err = ScanOutputTypes(g.Root)
		if err != nil {
			return errors.Wrap(err, errors.ErrScanSource, "scanning command output types")
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		bindings, err = ScanRenderers(g.Root)
		if err != nil {
			return errors.Wrap(err, errors.ErrScanSource, "scanning renderer declarations")
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	reportUnboundOutputs(outputs, bindings)

	report := &Report{}

	commands, err := g.commandEntries(cfg)
	if err != nil {
		return nil, err
	}
	if err := g.writeCommandTable(commands); err != nil {
		return nil, err
	}
	report.Commands = len(commands)
	report.Files = append(report.Files, CommandTableFile)

	rendererArms, err := g.writeRendererTable(bindings)
	if err != nil {
		return nil, err
	}
	report.Renderers = rendererArms
	report.Files = append(report.Files, RendererTableFile)

	overrides := overrideEntries(cfg, bindings)
	if err := g.writeOverrideTable(overrides); err != nil {
		return nil, err
	}
	report.Overrides = len(overrides)
	report.Files = append(report.Files, OverrideTableFile)

	for _, listing := range cfg.Listings {
		written, err := g.writeListing(listing)
		if err != nil {
			return nil, err
		}
		if written {
			report.Listings++
			report.Files = append(report.Files, listing.Path)
		}
	}

	log.Info().
		Int("commands", report.Commands).
		Int("renderers", report.Renderers).
		Int("overrides", report.Overrides).
		Int("listings", report.Listings).
		Msg("generation complete")
	return report, nil
}

// reportUnboundOutputs warns about output types no renderer accepts.
// A command emitting such a type fails at render time unless an
// override renderer is named.
func reportUnboundOutputs(outputs []string, bindings []RendererBinding) {
	bound := make(map[string]struct{}, len(bindings))
	for _, b := range bindings {
		bound[b.Output] = struct{}{}
	}
	for _, out := range outputs {
		if _, ok := bound[out]; !ok {
			log.Warn().Str("type", out).
				Msg("output type has no typed renderer, by-type dispatch cannot route it")
		}
	}
}

// commandEntry carries the placeholder values of one command table
// arm. Impl is the qualified Go reference of the implementing type.
type commandEntry struct {
	Key  string
	Node string
	Impl string
	Pkg  string
}

// commandEntries merges configured and discovered commands, both in
// sorted order and with configured entries first. When two entries
// claim the same node the first one keeps it.
func (g *Generator) commandEntries(cfg *Config) ([]commandEntry, error) {
	var entries []commandEntry
	claimed := make(map[string]commandEntry)

	add := func(e commandEntry) {
		if holder, taken := claimed[e.Node]; taken {
			// A configured entry naming the same type as the file it
			// lives in is the normal dual declaration, not a conflict.
			evt := log.Warn()
			if holder.Impl == e.Impl {
				evt = log.Debug()
			}
			evt.Str("node", e.Node).Str("key", e.Key).Str("holder", holder.Key).
				Msg("node already registered, skipping entry")
			return
		}
		claimed[e.Node] = e
		entries = append(entries, e)
	}

	for _, cc := range cfg.Commands {
		pkg, ref, ok := typeRef(cc.Type)
		if !ok {
			log.Warn().Str("key", cc.Key).Str("type", cc.Type).
				Msg("command type path has no package, skipping entry")
			continue
		}
		add(commandEntry{Key: cc.Key, Node: cc.Node, Impl: ref, Pkg: pkg})
	}

	discovered, err := g.discoverCommands()
	if err != nil {
		return nil, err
	}
	for _, e := range discovered {
		add(e)
	}

	return entries, nil
}

// discoverCommands reads the flat commands directory and derives one
// entry per eligible file by convention: status.go contributes type
// cmd.StatusCommand routed from node "status". Dots and underscores in
// the stem become spaces in the node, so storage_write.go routes from
// "storage write".
func (g *Generator) discoverCommands() ([]commandEntry, error) {
	dir := filepath.Join(g.Root, CommandsPath)
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrScanSource, "cannot read commands directory %s", dir)
	}

	pkg := modulePath + "/" + CommandsPath
	pkgName := filepath.Base(CommandsPath)

	var entries []commandEntry
	for _, de := range dirEntries {
		if de.IsDir() || !eligibleSource(de.Name()) {
			continue
		}
		stem := strings.TrimSuffix(de.Name(), ".go")
		node := strings.NewReplacer(".", " ", "_", " ").Replace(stem)
		entries = append(entries, commandEntry{
			Key:  stem,
			Node: node,
			Impl: pkgName + "." + pascalCase(stem) + "Command",
			Pkg:  pkg,
		})
	}
	return entries, nil
}

// overrideEntry carries the placeholder values of one name table arm.
type overrideEntry struct {
	Name string
	Call string
	Pkg  string
}

// overrideEntries builds the name table from the configured renderers.
// A configured type that matches a scanned binding becomes a typed arm
// guarding the output tag; anything else is a serializer called
// directly on the value.
func overrideEntries(cfg *Config, bindings []RendererBinding) []overrideEntry {
	typed := make(map[string]string, len(bindings))
	for _, b := range bindings {
		ref := filepath.Base(RenderersPath) + "." + b.Func
		typed[ref] = logicalName(b.Output)
	}

	var entries []overrideEntry
	for _, rc := range cfg.Renderers {
		pkg, ref, ok := typeRef(rc.Type)
		if !ok {
			log.Warn().Str("key", rc.Key).Str("type", rc.Type).
				Msg("renderer type path has no package, skipping entry")
			continue
		}
		if tag, isTyped := typed[ref]; isTyped {
			entries = append(entries, overrideEntry{
				Name: rc.Name,
				Call: `renderTyped("` + tag + `", tag, v)`,
			})
			continue
		}
		entries = append(entries, overrideEntry{
			Name: rc.Name,
			Call: ref + "(v)",
			Pkg:  pkg,
		})
	}
	return entries
}

func (g *Generator) writeCommandTable(entries []commandEntry) error {
	imports := []string{modulePath + "/pkg/pipeline"}
	templateEntries := make([]map[string]string, 0, len(entries))
	for _, e := range entries {
		imports = append(imports, e.Pkg)
		templateEntries = append(templateEntries, map[string]string{
			"KEY":  e.Key,
			"NODE": e.Node,
			"IMPL": e.Impl,
		})
	}
	return g.expandInto(CommandTableFile, "zz_commands.go.tmpl", imports, templateEntries)
}

func (g *Generator) writeRendererTable(bindings []RendererBinding) (int, error) {
	rendererPkg := modulePath + "/" + RenderersPath
	imports := []string{modulePath + "/pkg/render"}
	templateEntries := make([]map[string]string, 0, len(bindings))
	for _, b := range bindings {
		pkg, ref, ok := typeRef(b.Output)
		if !ok {
			log.Warn().Str("renderer", b.Func).Str("type", b.Output).
				Msg("output type path has no package, skipping binding")
			continue
		}
		imports = append(imports, pkg, rendererPkg)
		templateEntries = append(templateEntries, map[string]string{
			"TYPE": logicalName(b.Output),
			"REF":  ref,
			"FUNC": filepath.Base(RenderersPath) + "." + b.Func,
		})
	}
	err := g.expandInto(RendererTableFile, "zz_renderers.go.tmpl", imports, templateEntries)
	return len(templateEntries), err
}

func (g *Generator) writeOverrideTable(entries []overrideEntry) error {
	imports := []string{modulePath + "/pkg/render"}
	templateEntries := make([]map[string]string, 0, len(entries))
	for _, e := range entries {
		if e.Pkg != "" {
			imports = append(imports, e.Pkg)
		}
		templateEntries = append(templateEntries, map[string]string{
			"NAME": e.Name,
			"CALL": e.Call,
		})
	}
	return g.expandInto(OverrideTableFile, "zz_override.go.tmpl", imports, templateEntries)
}

// expandInto loads a marker template, substitutes the import block and
// the per-entry arms, and writes the result under the root.
func (g *Generator) expandInto(relPath string, templateName string, imports []string, entries []map[string]string) error {
	raw, err := templatesFS.ReadFile("templates/" + templateName)
	if err != nil {
		return errors.Wrapf(err, errors.ErrTemplateInvalid, "embedded template %s missing", templateName)
	}

	template := strings.ReplaceAll(string(raw), "<<IMPORTS>>", importLines(imports))
	expanded, err := ExpandTemplate(template, entries)
	if err != nil {
		return err
	}

	path := filepath.Join(g.Root, relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory for %s", relPath)
	}
	if err := os.WriteFile(path, []byte(expanded), 0o644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", relPath)
	}
	log.Debug().Str("file", relPath).Int("entries", len(entries)).Msg("wrote generated file")
	return nil
}

// listingTrees maps a [collect.<key>] section key to the source tree
// it indexes.
var listingTrees = map[string]string{
	"commands":  CommandsPath,
	"renderers": RenderersPath,
}

// writeListing writes a markdown index of one source tree. Unknown
// keys are skipped with a warning so a stale config section cannot
// fail the run.
func (g *Generator) writeListing(listing ListingConfig) (bool, error) {
	tree, ok := listingTrees[listing.Key]
	if !ok {
		log.Warn().Str("key", listing.Key).Msg("unknown listing key, skipping")
		return false, nil
	}

	dirEntries, err := os.ReadDir(filepath.Join(g.Root, tree))
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrScanSource, "cannot read %s for listing", tree)
	}

	var stems []string
	for _, de := range dirEntries {
		if de.IsDir() || !eligibleSource(de.Name()) {
			continue
		}
		stems = append(stems, strings.TrimSuffix(de.Name(), ".go"))
	}
	sort.Strings(stems)

	var b strings.Builder
	b.WriteString("# " + strings.ToUpper(listing.Key[:1]) + listing.Key[1:] + "\n\n")
	for _, stem := range stems {
		b.WriteString("- " + stem + "\n")
	}

	path := filepath.Join(g.Root, listing.Path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory for %s", listing.Path)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return false, errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", listing.Path)
	}
	log.Debug().Str("file", listing.Path).Int("entries", len(stems)).Msg("wrote listing")
	return true, nil
}

// typeRef maps a logical path to the Go import path and the qualified
// reference implementing it. cmds::out::HexDump becomes the import
// <module>/pkg/cmds/out and the reference out.HexDump. Paths without a
// package segment cannot be referenced from generated code.
func typeRef(logical string) (importPath string, ref string, ok bool) {
	segments := strings.Split(logical, "::")
	if len(segments) < 2 {
		return "", "", false
	}
	name := segments[len(segments)-1]
	dirs := segments[:len(segments)-1]
	importPath = modulePath + "/pkg/" + strings.Join(dirs, "/")
	ref = dirs[len(dirs)-1] + "." + name
	return importPath, ref, true
}

// logicalName returns the bare type name of a logical path.
func logicalName(logical string) string {
	if pos := strings.LastIndex(logical, "::"); pos >= 0 {
		return logical[pos+2:]
	}
	return logical
}

// importLines renders a sorted, deduplicated import block body.
func importLines(paths []string) string {
	seen := make(map[string]struct{}, len(paths))
	unique := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		unique = append(unique, p)
	}
	sort.Strings(unique)

	lines := make([]string, 0, len(unique))
	for _, p := range unique {
		lines = append(lines, "\t\""+p+"\"")
	}
	return strings.Join(lines, "\n")
}

// pascalCase converts a file stem to the exported type name embedded
// in it: storage_write becomes StorageWrite.
func pascalCase(stem string) string {
	parts := strings.FieldsFunc(stem, func(r rune) bool {
		return r == '_' || r == '.' || r == '-'
	})
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	return b.String()
}
