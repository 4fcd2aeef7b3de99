package gen

import (
	"os"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/writ-vcs/writ/pkg/errors"
)

// Config models registry.toml. Section order inside the file does not
// matter; each slice comes back sorted by section key.
type Config struct {
	Commands  []CommandConfig
	Renderers []RendererConfig
	Listings  []ListingConfig
}

// CommandConfig is one [cmd.<key>] entry. Node is the invocation path
// with the config's dots already replaced by spaces; Type is the
// logical path of the implementing command type.
type CommandConfig struct {
	Key  string
	Node string
	Type string
}

// RendererConfig is one [renderer.<key>] entry naming an override
// renderer and the logical path of its implementation.
type RendererConfig struct {
	Key  string
	Name string
	Type string
}

// ListingConfig is one [collect.<key>] entry: which tree to index and
// where the listing file goes.
type ListingConfig struct {
	Key  string
	Path string
}

// LoadConfig reads and parses registry.toml. A missing or unparseable
// file is an error the caller treats as fatal; entries missing their
// required fields are skipped so one malformed section cannot take
// down generation.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read registry config %s", path)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse registry config %s", path)
	}

	cfg := &Config{}

	for _, key := range sortedSectionKeys(raw, "cmd") {
		entry, ok := sectionEntry(raw, "cmd", key)
		if !ok {
			continue
		}
		node, okNode := entry["node"].(string)
		typ, okType := entry["type"].(string)
		if !okNode || !okType {
			log.Warn().Str("section", "cmd."+key).Msg("skipping entry without node and type")
			continue
		}
		cfg.Commands = append(cfg.Commands, CommandConfig{
			Key:  key,
			Node: strings.ReplaceAll(node, ".", " "),
			Type: typ,
		})
	}

	for _, key := range sortedSectionKeys(raw, "renderer") {
		entry, ok := sectionEntry(raw, "renderer", key)
		if !ok {
			continue
		}
		name, okName := entry["name"].(string)
		typ, okType := entry["type"].(string)
		if !okName || !okType {
			log.Warn().Str("section", "renderer."+key).Msg("skipping entry without name and type")
			continue
		}
		cfg.Renderers = append(cfg.Renderers, RendererConfig{Key: key, Name: name, Type: typ})
	}

	for _, key := range sortedSectionKeys(raw, "collect") {
		entry, ok := sectionEntry(raw, "collect", key)
		if !ok {
			continue
		}
		path, okPath := entry["path"].(string)
		if !okPath {
			log.Warn().Str("section", "collect."+key).Msg("skipping entry without path")
			continue
		}
		cfg.Listings = append(cfg.Listings, ListingConfig{Key: key, Path: path})
	}

	return cfg, nil
}

// sortedSectionKeys lists the subsection keys of one top-level table,
// sorted so generation order never depends on map iteration.
func sortedSectionKeys(raw map[string]any, section string) []string {
	table, ok := raw[section].(map[string]any)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sectionEntry(raw map[string]any, section string, key string) (map[string]any, bool) {
	table, ok := raw[section].(map[string]any)
	if !ok {
		return nil, false
	}
	entry, ok := table[key].(map[string]any)
	return entry, ok
}
