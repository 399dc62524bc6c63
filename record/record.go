/*
Package record holds emoji records with an open set of JSON fields.

An emoji record is whatever object the primary dataset carries for a
character. Only a few fields are interpreted by this module (unified, name,
sort_order, keywords); all others are passed through unchanged. Records
remember the order of their fields, so that output reproduces the layout of
the input, with new fields appended at the end.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package record

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to emojikw.record .
func tracer() tracing.Trace {
	return tracing.Select("emojikw.record")
}

// Field names interpreted by this module.
const (
	Unified   = "unified"
	Name      = "name"
	SortOrder = "sort_order"
	Keywords  = "keywords"
)

// Record is an ordered set of JSON fields.
//
// Values are of type string, json.Number, bool, nil, []interface{} or
// *Record, as produced by decoding. Clients may set values of other types,
// e.g. []string; these will be marshalled with package encoding/json.
type Record struct {
	fields *linkedhashmap.Map
}

// linkedhashmap does not report nil values as present.
type jsonNull struct{}

// New creates an empty record.
func New() *Record {
	return &Record{fields: linkedhashmap.New()}
}

// Len returns the number of fields of r.
func (r *Record) Len() int {
	return r.fields.Size()
}

// Keys returns the field names of r in order.
func (r *Record) Keys() []string {
	keys := make([]string, 0, r.fields.Size())
	for _, k := range r.fields.Keys() {
		keys = append(keys, k.(string))
	}
	return keys
}

// Has is true if r has a field named key. This includes fields with a value of null.
func (r *Record) Has(key string) bool {
	_, found := r.fields.Get(key)
	return found
}

// Get returns the value of field key.
func (r *Record) Get(key string) (interface{}, bool) {
	v, found := r.fields.Get(key)
	if !found {
		return nil, false
	}
	if _, ok := v.(jsonNull); ok {
		return nil, true
	}
	return v, true
}

// String returns the value of field key if it is a string.
func (r *Record) String(key string) (string, bool) {
	v, found := r.fields.Get(key)
	if !found {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Set sets the value of field key. An existing field keeps its position,
// a new one is appended.
func (r *Record) Set(key string, value interface{}) {
	if value == nil {
		value = jsonNull{}
	}
	r.fields.Put(key, value)
}

// Remove deletes field key from r.
func (r *Record) Remove(key string) {
	r.fields.Remove(key)
}

// Each calls f for every field of r, in order.
func (r *Record) Each(f func(key string, value interface{})) {
	it := r.fields.Iterator()
	for it.Next() {
		v := it.Value()
		if _, ok := v.(jsonNull); ok {
			v = nil
		}
		f(it.Key().(string), v)
	}
}

// Clone returns a copy of r. Nested values are shared with r.
func (r *Record) Clone() *Record {
	c := New()
	it := r.fields.Iterator()
	for it.Next() {
		c.fields.Put(it.Key(), it.Value())
	}
	return c
}
