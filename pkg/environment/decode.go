package environment

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// Definitions is the parsed environment definition file.
type Definitions struct {
	names  []string
	tables map[string]Table
}

// Names returns environment names in file order.
func (d *Definitions) Names() []string {
	return d.names
}

// Get returns the table for name.
func (d *Definitions) Get(name string) (Table, bool) {
	table, ok := d.tables[name]
	return table, ok
}

// parseDefinitions decodes `{"env": {"key": "value", ...}, ...}` keeping key order.
// Duplicate keys follow encoding/json semantics: the last one wins, at the position of the first.
func parseDefinitions(data []byte) (*Definitions, error) {
	iter := jsoniter.ParseBytes(jsoniter.ConfigCompatibleWithStandardLibrary, data)
	defs := &Definitions{tables: map[string]Table{}}

	if next := iter.WhatIsNext(); next != jsoniter.ObjectValue {
		if iter.Error != nil {
			return nil, iter.Error
		}
		return nil, fmt.Errorf("expected a JSON object of environments, got %s", describe(next))
	}

	iter.ReadObjectCB(func(iter *jsoniter.Iterator, name string) bool {
		next := iter.WhatIsNext()
		if next == jsoniter.NilValue {
			// A null environment counts as not defined.
			iter.Skip()
			return true
		}
		if next != jsoniter.ObjectValue {
			iter.ReportError("environment "+name, "expected a JSON object of variables, got "+describe(next))
			return false
		}
		table, ok := readTable(iter, name)
		if !ok {
			return false
		}
		if _, seen := defs.tables[name]; !seen {
			defs.names = append(defs.names, name)
		}
		defs.tables[name] = table
		return true
	})
	if iter.Error != nil {
		return nil, iter.Error
	}

	// Anything but whitespace after the top-level object is malformed.
	if iter.WhatIsNext() != jsoniter.InvalidValue || iter.Error == nil {
		return nil, fmt.Errorf("unexpected data after the top-level object")
	}
	return defs, nil
}

func readTable(iter *jsoniter.Iterator, env string) (Table, bool) {
	var table Table
	index := map[string]int{}
	ok := iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
		if next := iter.WhatIsNext(); next != jsoniter.StringValue {
			iter.ReportError("environment "+env, fmt.Sprintf("variable %q must be a string, got %s", key, describe(next)))
			return false
		}
		value := iter.ReadString()
		if i, seen := index[key]; seen {
			table[i].Value = value
			return true
		}
		index[key] = len(table)
		table = append(table, Variable{Key: key, Value: value})
		return true
	})
	return table, ok && iter.Error == nil
}

func describe(t jsoniter.ValueType) string {
	switch t {
	case jsoniter.StringValue:
		return "string"
	case jsoniter.NumberValue:
		return "number"
	case jsoniter.NilValue:
		return "null"
	case jsoniter.BoolValue:
		return "boolean"
	case jsoniter.ArrayValue:
		return "array"
	case jsoniter.ObjectValue:
		return "object"
	default:
		return "invalid value"
	}
}
