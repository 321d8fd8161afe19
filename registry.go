package fieldvet

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// registry caches the descriptor list per model type. Entries are built
// exactly once and are read-only afterwards; concurrent first-time
// lookups for the same type are collapsed so that a single discovery
// pass populates the cache.
type registry struct {
	mu    sync.RWMutex
	cache map[reflect.Type][]FieldDescriptor
	group singleflight.Group
}

func newRegistry() *registry {
	return &registry{cache: make(map[reflect.Type][]FieldDescriptor)}
}

var defaultRegistry = newRegistry()

// typeKey derives the flight key from the type's runtime identity.
// The printed name is not an identity: distinct function-local types
// can share a package path and name, and colliding keys would hand one
// type's descriptors to another.
func typeKey(t reflect.Type) string {
	return strconv.FormatUint(uint64(reflect.ValueOf(t).Pointer()), 16)
}

// descriptors returns the cached descriptor list for t, building it
// from struct tags on first use. Build failures are not cached: a
// malformed declaration fails every call identically until the model
// is fixed.
func (r *registry) descriptors(t reflect.Type) ([]FieldDescriptor, error) {
	r.mu.RLock()
	descs, ok := r.cache[t]
	r.mu.RUnlock()
	if ok {
		return descs, nil
	}

	v, err, _ := r.group.Do(typeKey(t), func() (any, error) {
		// A concurrent caller may have completed the build while this
		// one waited on the flight group.
		r.mu.RLock()
		cached, ok := r.cache[t]
		r.mu.RUnlock()
		if ok {
			return cached, nil
		}

		built, err := buildTagDescriptors(t)
		if err != nil {
			return nil, err
		}
		return r.storeIfAbsent(t, built), nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]FieldDescriptor), nil
}

// storeIfAbsent installs built descriptors for t unless an entry
// already exists. A schema registered while discovery was running wins;
// the cache is never overwritten once populated.
func (r *registry) storeIfAbsent(t reflect.Type, built []FieldDescriptor) []FieldDescriptor {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.cache[t]; ok {
		return existing
	}
	r.cache[t] = built
	return built
}

// register installs an explicit schema for t ahead of tag discovery.
func (r *registry) register(t reflect.Type, fields []FieldSchema) error {
	descs := make([]FieldDescriptor, 0, len(fields))
	for _, f := range fields {
		sf, ok := t.FieldByName(f.name)
		if !ok {
			return newConfigError(t.String(), f.name, "", ErrUnknownField)
		}
		if !sf.IsExported() {
			return newConfigError(t.String(), f.name, "", ErrUnexportedField)
		}
		for _, c := range f.constraints {
			if err := checkConstraint(c, sf.Type, t.String(), f.name); err != nil {
				return err
			}
		}
		descs = append(descs, FieldDescriptor{
			name:        f.name,
			displayName: f.displayName,
			index:       sf.Index,
			constraints: f.constraints,
		})
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.cache[t]; exists {
		return fmt.Errorf("fieldvet: %w: %s", ErrAlreadyRegistered, t.String())
	}
	r.cache[t] = descs
	return nil
}

// Register installs an explicit constraint schema for the model's type,
// bypassing tag discovery. It is intended for models whose patterns
// cannot be expressed in a tag, or for declaring constraints away from
// the type definition. Registration must happen before the type is
// first validated; registering a type whose descriptors already exist
// returns ErrAlreadyRegistered.
func Register(model any, fields ...FieldSchema) error {
	t, err := structTypeOf(model)
	if err != nil {
		return err
	}
	return defaultRegistry.register(t, fields)
}

// Descriptors exposes the registry contract directly: the ordered
// descriptor list for the model's type, building and caching it on
// first use.
func Descriptors(model any) ([]FieldDescriptor, error) {
	t, err := structTypeOf(model)
	if err != nil {
		return nil, err
	}
	return defaultRegistry.descriptors(t)
}

func structTypeOf(model any) (reflect.Type, error) {
	t := reflect.TypeOf(model)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("fieldvet: %w, got %T", ErrNotStruct, model)
	}
	return t, nil
}
