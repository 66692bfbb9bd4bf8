package schema

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// JSON document shape:
//
//	{
//	  "modules": {
//	    "SliderModule": {
//	      "type": "Component",
//	      "components": {
//	        "Slider": {
//	          "events": [
//	            {"name": "onChange", "payload": [{"name": "value", "type": "double"}]}
//	          ]
//	        }
//	      }
//	    }
//	  }
//	}
//
// Events, payloads, and enum options are arrays and therefore ordered. The
// modules and components objects are decoded at token level so that their key
// order in the document is preserved too; encoding/json map decoding would
// destroy it.

var kindTags = map[string]Kind{
	"boolean": KindBoolean,
	"string":  KindString,
	"int32":   KindInt32,
	"double":  KindDouble,
	"float":   KindFloat,
	"mixed":   KindMixed,
	"enum":    KindStringEnum,
	"object":  KindObject,
}

type propertyDoc struct {
	Name       string        `json:"name"`
	Type       string        `json:"type"`
	Options    []string      `json:"options"`
	Properties []propertyDoc `json:"properties"`
}

type eventDoc struct {
	Name    string        `json:"name"`
	Payload []propertyDoc `json:"payload"`
}

type componentDoc struct {
	Events []eventDoc `json:"events"`
}

// LoadJSON reads and parses a JSON schema document from path.
func LoadJSON(path string) (Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return Schema{}, fmt.Errorf("opening schema: %w", err)
	}
	defer f.Close()
	s, err := ParseJSON(f)
	if err != nil {
		return Schema{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return s, nil
}

// ParseJSON parses a JSON schema document, preserving declaration order of
// modules and components.
func ParseJSON(r io.Reader) (Schema, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var s Schema
	if err := expectDelim(dec, '{'); err != nil {
		return Schema{}, err
	}
	for dec.More() {
		key, err := stringToken(dec)
		if err != nil {
			return Schema{}, err
		}
		if key != "modules" {
			return Schema{}, fmt.Errorf("unexpected top-level key %q", key)
		}
		if err := expectDelim(dec, '{'); err != nil {
			return Schema{}, err
		}
		for dec.More() {
			name, err := stringToken(dec)
			if err != nil {
				return Schema{}, err
			}
			mod, err := parseModule(dec, name)
			if err != nil {
				return Schema{}, fmt.Errorf("module %s: %w", name, err)
			}
			s.Modules = append(s.Modules, mod)
		}
		if err := expectDelim(dec, '}'); err != nil {
			return Schema{}, err
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return Schema{}, err
	}
	return s, nil
}

func parseModule(dec *json.Decoder, name string) (Module, error) {
	mod := Module{Name: name}
	if err := expectDelim(dec, '{'); err != nil {
		return mod, err
	}
	for dec.More() {
		key, err := stringToken(dec)
		if err != nil {
			return mod, err
		}
		switch key {
		case "type":
			if mod.Type, err = stringToken(dec); err != nil {
				return mod, err
			}
		case "components":
			if err := expectDelim(dec, '{'); err != nil {
				return mod, err
			}
			for dec.More() {
				cname, err := stringToken(dec)
				if err != nil {
					return mod, err
				}
				var doc componentDoc
				if err := dec.Decode(&doc); err != nil {
					return mod, fmt.Errorf("component %s: %w", cname, err)
				}
				comp, err := buildComponent(cname, doc)
				if err != nil {
					return mod, err
				}
				mod.Components = append(mod.Components, comp)
			}
			if err := expectDelim(dec, '}'); err != nil {
				return mod, err
			}
		default:
			return mod, fmt.Errorf("unexpected key %q", key)
		}
	}
	return mod, expectDelim(dec, '}')
}

func buildComponent(name string, doc componentDoc) (Component, error) {
	comp := Component{Name: name}
	for _, ev := range doc.Events {
		if ev.Name == "" {
			return comp, fmt.Errorf("component %s: event with empty name", name)
		}
		event := Event{Name: ev.Name}
		if ev.Payload != nil {
			event.Payload = []Property{}
			for _, p := range ev.Payload {
				prop, err := buildProperty(p)
				if err != nil {
					return comp, fmt.Errorf("component %s, event %s: %w", name, ev.Name, err)
				}
				event.Payload = append(event.Payload, prop)
			}
		}
		comp.Events = append(comp.Events, event)
	}
	return comp, nil
}

func buildProperty(doc propertyDoc) (Property, error) {
	if doc.Name == "" {
		return Property{}, fmt.Errorf("payload property with empty name")
	}
	kind, ok := kindTags[doc.Type]
	if !ok {
		return Property{}, fmt.Errorf("property %s: unknown type tag %q", doc.Name, doc.Type)
	}
	prop := Property{Name: doc.Name, Type: Annotation{Kind: kind}}
	switch kind {
	case KindStringEnum:
		prop.Type.Options = doc.Options
	case KindObject:
		for _, nested := range doc.Properties {
			np, err := buildProperty(nested)
			if err != nil {
				return Property{}, fmt.Errorf("property %s: %w", doc.Name, err)
			}
			prop.Type.Properties = append(prop.Type.Properties, np)
		}
	}
	return prop, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func stringToken(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %v", tok)
	}
	return s, nil
}
