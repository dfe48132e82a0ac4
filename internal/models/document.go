package models

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Documents are schema-less. Each model names the fields the server reads and
// keeps everything else in an inline Extra map, so a document written by a
// client comes back with every field it was stored with.

var knownFieldsCache sync.Map // reflect.Type -> map[string]bool

// knownFields returns the JSON names of t's fields, excluding those tagged "-".
func knownFields(t reflect.Type) map[string]bool {
	if v, ok := knownFieldsCache.Load(t); ok {
		return v.(map[string]bool)
	}
	names := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			name = f.Name
		}
		names[name] = true
	}
	knownFieldsCache.Store(t, names)
	return names
}

// marshalWithExtra encodes known and merges the extra fields into the same
// object. Known fields win on a name clash.
func marshalWithExtra(known any, extra bson.M) ([]byte, error) {
	b, err := json.Marshal(known)
	if err != nil || len(extra) == 0 {
		return b, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, err
	}
	merged := make(map[string]any, len(fields)+len(extra))
	for k, v := range extra {
		merged[k] = plainValue(v)
	}
	for k, v := range fields {
		merged[k] = v
	}
	return json.Marshal(merged)
}

// unmarshalWithExtra decodes data into known and returns the fields known does
// not declare. Numbers keep their integer form when they have one.
func unmarshalWithExtra(data []byte, known any) (bson.M, error) {
	if err := json.Unmarshal(data, known); err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var all map[string]any
	if err := dec.Decode(&all); err != nil {
		return nil, err
	}
	names := knownFields(reflect.TypeOf(known).Elem())
	var extra bson.M
	for k, v := range all {
		if names[k] {
			continue
		}
		if extra == nil {
			extra = bson.M{}
		}
		extra[k] = numberValue(v)
	}
	return extra, nil
}

// plainValue turns ordered BSON documents and arrays, as decoded into an
// interface value, into JSON-friendly maps and slices.
func plainValue(v any) any {
	switch t := v.(type) {
	case primitive.D:
		m := make(map[string]any, len(t))
		for _, e := range t {
			m[e.Key] = plainValue(e.Value)
		}
		return m
	case primitive.M:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = plainValue(e)
		}
		return m
	case primitive.A:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = plainValue(e)
		}
		return out
	default:
		return v
	}
}

// numberValue converts json.Number to int64 or float64 so the driver stores a
// BSON number, recursing into nested objects and arrays.
func numberValue(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		f, _ := t.Float64()
		return f
	case map[string]any:
		for k, e := range t {
			t[k] = numberValue(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = numberValue(e)
		}
		return t
	default:
		return v
	}
}
