package schema

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
)

// CUE document shape mirrors the JSON one:
//
//	modules: SliderModule: {
//		type: "Component"
//		components: Slider: events: [
//			{name: "onChange", payload: [{name: "value", type: "double"}]},
//		]
//	}
//
// CUE struct fields iterate in declaration order, which satisfies the
// ordering contract without extra bookkeeping.

// LoadCUE loads the CUE package in dir and converts it to a Schema.
func LoadCUE(dir string) (Schema, error) {
	insts := load.Instances([]string{"."}, &load.Config{Dir: dir})
	if len(insts) == 0 {
		return Schema{}, fmt.Errorf("no CUE instances in %s", dir)
	}
	if insts[0].Err != nil {
		return Schema{}, fmt.Errorf("loading CUE package in %s: %w", dir, insts[0].Err)
	}
	val := cuecontext.New().BuildInstance(insts[0])
	if val.Err() != nil {
		return Schema{}, fmt.Errorf("building CUE package in %s: %w", dir, val.Err())
	}
	return FromCUE(val)
}

// FromCUE converts an evaluated CUE value to a Schema.
func FromCUE(val cue.Value) (Schema, error) {
	var s Schema
	mods := val.LookupPath(cue.ParsePath("modules"))
	if mods.Err() != nil {
		return Schema{}, fmt.Errorf("no modules in schema: %w", mods.Err())
	}
	iter, err := mods.Fields()
	if err != nil {
		return Schema{}, err
	}
	for iter.Next() {
		mod, err := cueModule(iter.Selector().String(), iter.Value())
		if err != nil {
			return Schema{}, err
		}
		s.Modules = append(s.Modules, mod)
	}
	return s, nil
}

func cueModule(name string, val cue.Value) (Module, error) {
	mod := Module{Name: name}
	mod.Type, _ = val.LookupPath(cue.ParsePath("type")).String()

	comps := val.LookupPath(cue.ParsePath("components"))
	if comps.Err() != nil {
		return mod, nil
	}
	iter, err := comps.Fields()
	if err != nil {
		return mod, fmt.Errorf("module %s: %w", name, err)
	}
	for iter.Next() {
		comp, err := cueComponent(iter.Selector().String(), iter.Value())
		if err != nil {
			return mod, fmt.Errorf("module %s: %w", name, err)
		}
		mod.Components = append(mod.Components, comp)
	}
	return mod, nil
}

func cueComponent(name string, val cue.Value) (Component, error) {
	comp := Component{Name: name}
	events := val.LookupPath(cue.ParsePath("events"))
	if events.Err() != nil {
		return comp, nil
	}
	iter, err := events.List()
	if err != nil {
		return comp, fmt.Errorf("component %s: events is not a list: %w", name, err)
	}
	for iter.Next() {
		ev := iter.Value()
		event := Event{}
		if event.Name, err = ev.LookupPath(cue.ParsePath("name")).String(); err != nil {
			return comp, fmt.Errorf("component %s: event name: %w", name, err)
		}
		payload := ev.LookupPath(cue.ParsePath("payload"))
		if payload.Err() == nil {
			props, err := cueProperties(payload)
			if err != nil {
				return comp, fmt.Errorf("component %s, event %s: %w", name, event.Name, err)
			}
			event.Payload = props
		}
		comp.Events = append(comp.Events, event)
	}
	return comp, nil
}

// cueProperties converts a CUE list of payload properties. It always returns
// a non-nil slice: a present-but-empty payload list still counts as a
// payload.
func cueProperties(list cue.Value) ([]Property, error) {
	props := []Property{}
	iter, err := list.List()
	if err != nil {
		return nil, fmt.Errorf("payload is not a list: %w", err)
	}
	for iter.Next() {
		prop, err := cueProperty(iter.Value())
		if err != nil {
			return nil, err
		}
		props = append(props, prop)
	}
	return props, nil
}

func cueProperty(val cue.Value) (Property, error) {
	name, err := val.LookupPath(cue.ParsePath("name")).String()
	if err != nil {
		return Property{}, fmt.Errorf("property name: %w", err)
	}
	tag, err := val.LookupPath(cue.ParsePath("type")).String()
	if err != nil {
		return Property{}, fmt.Errorf("property %s: type tag: %w", name, err)
	}
	kind, ok := kindTags[tag]
	if !ok {
		return Property{}, fmt.Errorf("property %s: unknown type tag %q", name, tag)
	}
	prop := Property{Name: name, Type: Annotation{Kind: kind}}
	switch kind {
	case KindStringEnum:
		opts := val.LookupPath(cue.ParsePath("options"))
		if opts.Err() == nil {
			iter, err := opts.List()
			if err != nil {
				return Property{}, fmt.Errorf("property %s: options is not a list: %w", name, err)
			}
			for iter.Next() {
				o, err := iter.Value().String()
				if err != nil {
					return Property{}, fmt.Errorf("property %s: option: %w", name, err)
				}
				prop.Type.Options = append(prop.Type.Options, o)
			}
		}
	case KindObject:
		nested := val.LookupPath(cue.ParsePath("properties"))
		if nested.Err() == nil {
			iter, err := nested.List()
			if err != nil {
				return Property{}, fmt.Errorf("property %s: properties is not a list: %w", name, err)
			}
			for iter.Next() {
				np, err := cueProperty(iter.Value())
				if err != nil {
					return Property{}, fmt.Errorf("property %s: %w", name, err)
				}
				prop.Type.Properties = append(prop.Type.Properties, np)
			}
		}
	}
	return prop, nil
}
