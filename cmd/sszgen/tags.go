// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"reflect"
	"strings"
)

const (
	sszTagIdent     = "ssz"
	sszNameTagIdent = "ssz-name"
	sszSizeTagIdent = "ssz-size"
	sszMaxTagIdent  = "ssz-max"
)

// sizeTag describes the size restriction of one dimension of a field. Values
// are capacity expressions: numbers, preset symbols or products of those.
type sizeTag struct {
	size  string // empty means the size is undefined
	limit string // empty means the limit is undefined
}

// fieldTags is the parsed ssz configuration of a struct field.
type fieldTags struct {
	ignored bool
	desc    string // explicit type descriptor, overriding inference
	name    string // explicit wire name
	dims    []sizeTag
}

// dim returns the size restriction of the i-th dimension.
func (t *fieldTags) dim(i int) sizeTag {
	if t == nil || i >= len(t.dims) {
		return sizeTag{}
	}
	return t.dims[i]
}

func parseTags(input string) (*fieldTags, error) {
	var (
		tag  = reflect.StructTag(input)
		tags = new(fieldTags)
	)
	if v, ok := tag.Lookup(sszTagIdent); ok {
		if v == "-" {
			tags.ignored = true
			return tags, nil
		}
		tags.desc = strings.TrimSpace(v)
	}
	if v, ok := tag.Lookup(sszNameTagIdent); ok {
		if v = strings.TrimSpace(v); v == "" {
			return nil, fmt.Errorf("empty %s tag", sszNameTagIdent)
		}
		tags.name = v
	}
	for _, ident := range []string{sszSizeTagIdent, sszMaxTagIdent} {
		v, ok := tag.Lookup(ident)
		if !ok {
			continue
		}
		for i, p := range strings.Split(v, ",") {
			p = strings.TrimSpace(p)
			if p == "" {
				return nil, fmt.Errorf("empty dimension %d in %s tag", i, ident)
			}
			if i >= len(tags.dims) {
				tags.dims = append(tags.dims, make([]sizeTag, i-len(tags.dims)+1)...)
			}
			if p == "?" {
				continue
			}
			if ident == sszMaxTagIdent {
				tags.dims[i].limit = p
			} else {
				tags.dims[i].size = p
			}
		}
	}
	for i, dim := range tags.dims {
		if dim.size != "" && dim.limit != "" {
			return nil, fmt.Errorf("dimension %d has both %s and %s", i, sszSizeTagIdent, sszMaxTagIdent)
		}
	}
	return tags, nil
}
