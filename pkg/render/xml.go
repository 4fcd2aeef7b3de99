package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/beevik/etree"
)

// XML renders the value as an XML document. The value is first
// flattened through its JSON form so field tags and ordering behave
// like the other serializers; map keys are emitted sorted.
func XML(v any) (Result, error) {
	var r Result

	data, err := json.Marshal(v)
	if err != nil {
		return r, &SerializeError{Format: "xml", Err: err}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return r, &SerializeError{Format: "xml", Err: err}
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("output")
	appendXML(root, generic)

	doc.Indent(2)
	text, err := doc.WriteToString()
	if err != nil {
		return r, &SerializeError{Format: "xml", Err: err}
	}

	r.Print(text)
	return r, nil
}

func appendXML(parent *etree.Element, v any) {
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			appendXML(parent.CreateElement(elementName(k)), val[k])
		}
	case []any:
		for _, item := range val {
			appendXML(parent.CreateElement("item"), item)
		}
	case json.Number:
		parent.SetText(val.String())
	case string:
		parent.SetText(val)
	case bool:
		parent.SetText(strconv.FormatBool(val))
	case nil:
		// empty element
	default:
		parent.SetText(fmt.Sprintf("%v", val))
	}
}

// elementName rewrites a key into a usable XML element name. JSON
// keys from struct tags are already close; anything that would break
// an element name gets replaced.
func elementName(key string) string {
	if key == "" {
		return "field"
	}
	name := make([]rune, 0, len(key))
	for i, c := range key {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
			name = append(name, c)
		case c >= '0' && c <= '9', c == '-', c == '.':
			if i == 0 {
				name = append(name, '_')
			}
			name = append(name, c)
		default:
			name = append(name, '_')
		}
	}
	return string(name)
}
