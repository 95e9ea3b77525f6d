// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"go/types"
)

// parsePackage collects the requested struct types of a package, or every
// exported struct if none were named explicitly.
func parsePackage(pkg *types.Package, names []string) ([]*sszContainer, error) {
	explicit := len(names) > 0
	if !explicit {
		for _, name := range pkg.Scope().Names() {
			if obj := pkg.Scope().Lookup(name); obj.Exported() {
				if _, ok := obj.Type().Underlying().(*types.Struct); ok {
					if _, ok := obj.(*types.TypeName); ok {
						names = append(names, name)
					}
				}
			}
		}
	}
	var conts []*sszContainer
	for _, name := range names {
		named, str, err := lookupStruct(pkg.Scope(), name)
		if err != nil {
			return nil, err
		}
		typ, err := newContainer(pkg, named, str)
		if err != nil {
			return nil, err
		}
		if len(typ.fields) == 0 {
			if explicit {
				return nil, fmt.Errorf("type %s has no ssz fields", name)
			}
			log.WithField("type", name).Debug("Skipping struct without ssz fields")
			continue
		}
		conts = append(conts, typ)
	}
	return conts, nil
}

func lookupStruct(scope *types.Scope, name string) (*types.Named, *types.Struct, error) {
	obj := scope.Lookup(name)
	if obj == nil {
		return nil, nil, fmt.Errorf("identifier not found: %s", name)
	}
	typ, ok := obj.(*types.TypeName)
	if !ok {
		return nil, nil, fmt.Errorf("identifier not a type: %s", name)
	}
	dec, ok := typ.Type().(*types.Named)
	if !ok {
		return nil, nil, fmt.Errorf("identifier not a named type: %s", name)
	}
	str, ok := dec.Underlying().(*types.Struct)
	if !ok {
		return nil, nil, fmt.Errorf("identifier not a named struct: %s", name)
	}
	return dec, str, nil
}
