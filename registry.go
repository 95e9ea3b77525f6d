// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Registry maps record names to their schema functions and memoizes the
// container descriptors built from them, once per (record, preset) pair.
//
// A registry is safe for concurrent use. Concurrent lookups of the same record
// and preset are collapsed into a single construction.
type Registry struct {
	schemas map[string]SchemaFunc
	lock    sync.RWMutex

	memo  sync.Map // descriptorKey -> *ContainerType
	group singleflight.Group

	preset *Preset
	logger logrus.FieldLogger
}

// descriptorKey identifies a resolved container descriptor. Presets are keyed
// by identity, so two presets sharing a name never alias.
type descriptorKey struct {
	name   string
	preset *Preset
}

// Option configures a Registry.
type Option func(r *Registry)

// WithPreset sets the preset used when a lookup does not specify one.
func WithPreset(preset *Preset) Option {
	return func(r *Registry) {
		r.preset = preset
	}
}

// WithLogger sets the logger descriptor construction is reported to.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry creates an empty schema registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		schemas: make(map[string]SchemaFunc),
		preset:  Mainnet,
		logger:  logrus.WithField("prefix", "ssz"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a record's schema function under a unique name.
func (r *Registry) Register(name string, fn SchemaFunc) error {
	if name == "" || strings.ContainsAny(name, "[], ") {
		return fmt.Errorf("%w: invalid record name %q", ErrSchemaResolution, name)
	}
	if fn == nil {
		return fmt.Errorf("%w: record %s without schema", ErrSchemaResolution, name)
	}
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.schemas[name]; ok {
		return fmt.Errorf("%w: record %s already registered", ErrSchemaResolution, name)
	}
	r.schemas[name] = fn
	return nil
}

// Records returns the sorted names of all registered records.
func (r *Registry) Records() []string {
	r.lock.RLock()
	defer r.lock.RUnlock()

	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns the default preset of the registry.
func (r *Registry) Preset() *Preset {
	return r.preset
}

// Container returns the descriptor of a registered record under a preset (nil
// meaning the registry default), constructing and caching it on first use.
func (r *Registry) Container(name string, preset *Preset) (*ContainerType, error) {
	if preset == nil {
		preset = r.preset
	}
	key := descriptorKey{name: name, preset: preset}
	if t, ok := r.memo.Load(key); ok {
		return t.(*ContainerType), nil
	}
	t, err, _ := r.group.Do(fmt.Sprintf("%s@%p", name, preset), func() (any, error) {
		return (&Scope{reg: r, preset: preset}).container(name)
	})
	if err != nil {
		return nil, err
	}
	return t.(*ContainerType), nil
}

// Resolve parses a descriptor string under a preset (nil meaning the registry
// default), resolving container references through the registry.
func (r *Registry) Resolve(desc string, preset *Preset) (Type, error) {
	if preset == nil {
		preset = r.preset
	}
	return ParseType(desc, preset, r)
}

// Scope is the resolution context handed to schema functions: the preset the
// descriptor is being built for and the chain of records under construction.
type Scope struct {
	reg    *Registry
	preset *Preset
	stack  []string
}

// Preset returns the preset capacities are resolved against.
func (s *Scope) Preset() *Preset {
	return s.preset
}

// Resolve parses a descriptor string within the scope.
func (s *Scope) Resolve(desc string) (Type, error) {
	return parseType(desc, s)
}

// container resolves a record reference. Nested references are built directly
// rather than through the registry's flight group, so that two constructions
// waiting on each other's records cannot deadlock; the memo keeps the first
// descriptor stored.
func (s *Scope) container(name string) (*ContainerType, error) {
	if s.reg == nil {
		return nil, fmt.Errorf("%w: Container[%s] without registry", ErrSchemaResolution, name)
	}
	key := descriptorKey{name: name, preset: s.preset}
	if t, ok := s.reg.memo.Load(key); ok {
		return t.(*ContainerType), nil
	}
	for _, pending := range s.stack {
		if pending == name {
			return nil, fmt.Errorf("%w: record cycle %s -> %s", ErrSchemaResolution, strings.Join(s.stack, " -> "), name)
		}
	}
	s.reg.lock.RLock()
	fn, ok := s.reg.schemas[name]
	s.reg.lock.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: unknown record %s", ErrSchemaResolution, name)
	}
	s.stack = append(s.stack, name)
	schema, err := fn(s)
	s.stack = s.stack[:len(s.stack)-1]
	if err != nil {
		return nil, err
	}
	if schema.Name == "" {
		named := *schema
		named.Name = name
		schema = &named
	}
	t, err := NewContainerFromSchema(schema)
	if err != nil {
		return nil, fmt.Errorf("record %s: %w", name, err)
	}
	actual, loaded := s.reg.memo.LoadOrStore(key, t)
	if !loaded {
		s.reg.logger.WithFields(logrus.Fields{
			"record": name,
			"preset": s.preset.Name(),
			"fields": len(schema.Fields),
			"fixed":  t.Fixed(),
		}).Debug("Constructed container descriptor")
	}
	return actual.(*ContainerType), nil
}
