// Package metadata decodes substrate runtime metadata documents into an
// immutable in-memory model and provides name- and id-based lookups over
// it. The document itself is SCALE-encoded; the parser dispatches on the
// version discriminant byte, keeping each schema revision's decode
// routine independent.
package metadata

import (
	errorsmod "cosmossdk.io/errors"
)

// Arg is a named, string-typed argument of an extrinsic. The type is an
// opaque hint interpreted by the caller; the chain's type vocabulary
// changes per runtime build, so no closed type system is attempted here.
type Arg struct {
	Name string
	Type string
}

// ExtrinsicDef describes one callable extrinsic inside a module.
// DispatchID is the extrinsic's position within the module's call list
// and, together with the owning module's id, identifies the call on the
// wire.
type ExtrinsicDef struct {
	Name       string
	DispatchID uint8
	Args       []Arg
	Docs       []string
}

// StorageModifier describes whether a storage entry always holds a value.
type StorageModifier uint8

const (
	StorageOptional StorageModifier = iota
	StorageDefault
)

// StorageHasher identifies the hashing algorithm applied to storage keys.
type StorageHasher uint8

const (
	HasherBlake2_128 StorageHasher = iota
	HasherBlake2_256
	HasherBlake2_128Concat
	HasherTwox128
	HasherTwox256
	HasherTwox64Concat
	HasherIdentity
)

// StorageKind selects which shape a storage entry's type takes.
type StorageKind uint8

const (
	StoragePlain StorageKind = iota
	StorageMap
	StorageDoubleMap
	StorageNMap
)

// StorageEntryType is the tagged type description of a storage entry.
// Only the fields relevant to Kind are populated.
type StorageEntryType struct {
	Kind  StorageKind
	Value string

	// Map and DoubleMap fields.
	Hasher StorageHasher
	Key    string

	// DoubleMap fields.
	Key2       string
	Key2Hasher StorageHasher

	// NMap fields.
	Keys    string
	Hashers []StorageHasher
}

// StorageEntryDef describes one entry of a module's storage.
type StorageEntryDef struct {
	Name     string
	Modifier StorageModifier
	Type     StorageEntryType
	Default  []byte
	Docs     []string
}

// EventDef describes an event a module can deposit. Event arguments are
// bare type hints without names.
type EventDef struct {
	Name string
	Args []string
	Docs []string
}

// ConstantDef describes a module constant together with its SCALE-encoded
// value.
type ConstantDef struct {
	Name  string
	Type  string
	Value []byte
	Docs  []string
}

// ErrorDef describes a dispatch error a module can return.
type ErrorDef struct {
	Name string
	Docs []string
}

// Module is one runtime module (pallet). ModuleID is the dispatch index
// declared by the chain build, not the module's position in the document.
// StoragePrefix is empty when the module declares no storage.
type Module struct {
	Name          string
	ModuleID      uint8
	StoragePrefix string
	Storage       []StorageEntryDef
	Calls         []ExtrinsicDef
	Events        []EventDef
	Constants     []ConstantDef
	Errors        []ErrorDef

	callsByName    map[string]int
	storageByName  map[string]int
	eventsByName   map[string]int
	constsByName   map[string]int
	errorsByName   map[string]int
}

// ExtrinsicVersionInfo records the extrinsic format declared by the
// runtime alongside the signed extensions it expects.
type ExtrinsicVersionInfo struct {
	Version          uint8
	SignedExtensions []string
}

// Metadata is the parsed, read-only model of a runtime metadata document.
// It is safe to share across goroutines; consumers must not mutate the
// exported slices.
type Metadata struct {
	Version   uint8
	Modules   []Module
	Extrinsic ExtrinsicVersionInfo

	modulesByName map[string]int
	modulesByID   map[uint8]int
}

// index builds the lookup tables, rejecting duplicate names within any
// scope and duplicate module ids.
func (m *Metadata) index() error {
	m.modulesByName = make(map[string]int, len(m.Modules))
	m.modulesByID = make(map[uint8]int, len(m.Modules))

	for i := range m.Modules {
		mod := &m.Modules[i]
		if _, ok := m.modulesByName[mod.Name]; ok {
			return errorsmod.Wrapf(ErrDuplicateName, "module %q", mod.Name)
		}
		m.modulesByName[mod.Name] = i

		if prev, ok := m.modulesByID[mod.ModuleID]; ok {
			return errorsmod.Wrapf(ErrDuplicateName,
				"modules %q and %q share id %d", m.Modules[prev].Name, mod.Name, mod.ModuleID)
		}
		m.modulesByID[mod.ModuleID] = i

		if err := mod.index(); err != nil {
			return err
		}
	}
	return nil
}

func (mod *Module) index() error {
	var err error
	if mod.callsByName, err = indexNames(mod.Name, "extrinsic", len(mod.Calls), func(i int) string { return mod.Calls[i].Name }); err != nil {
		return err
	}
	if mod.storageByName, err = indexNames(mod.Name, "storage entry", len(mod.Storage), func(i int) string { return mod.Storage[i].Name }); err != nil {
		return err
	}
	if mod.eventsByName, err = indexNames(mod.Name, "event", len(mod.Events), func(i int) string { return mod.Events[i].Name }); err != nil {
		return err
	}
	if mod.constsByName, err = indexNames(mod.Name, "constant", len(mod.Constants), func(i int) string { return mod.Constants[i].Name }); err != nil {
		return err
	}
	if mod.errorsByName, err = indexNames(mod.Name, "error", len(mod.Errors), func(i int) string { return mod.Errors[i].Name }); err != nil {
		return err
	}
	return nil
}

func indexNames(module, kind string, n int, name func(int) string) (map[string]int, error) {
	byName := make(map[string]int, n)
	for i := 0; i < n; i++ {
		if _, ok := byName[name(i)]; ok {
			return nil, errorsmod.Wrapf(ErrDuplicateName, "%s %q in module %q", kind, name(i), module)
		}
		byName[name(i)] = i
	}
	return byName, nil
}

// FindModule returns the module with the given name.
func (m *Metadata) FindModule(name string) (*Module, error) {
	i, ok := m.modulesByName[name]
	if !ok {
		return nil, errorsmod.Wrapf(ErrNotFound, "module %q", name)
	}
	return &m.Modules[i], nil
}

// FindModuleByID returns the module with the given dispatch index.
func (m *Metadata) FindModuleByID(moduleID uint8) (*Module, error) {
	i, ok := m.modulesByID[moduleID]
	if !ok {
		return nil, errorsmod.Wrapf(ErrNotFound, "module id %d", moduleID)
	}
	return &m.Modules[i], nil
}

// FindModuleExtrinsic resolves (module name, extrinsic name) to the
// owning module and the extrinsic definition. The returned pair of
// module.ModuleID and def.DispatchID identifies the call on the wire.
func (m *Metadata) FindModuleExtrinsic(moduleName, extrinsicName string) (*Module, *ExtrinsicDef, error) {
	mod, err := m.FindModule(moduleName)
	if err != nil {
		return nil, nil, err
	}
	def, err := mod.FindExtrinsic(extrinsicName)
	if err != nil {
		return nil, nil, err
	}
	return mod, def, nil
}

// ExtrinsicByID resolves a wire-level (module id, dispatch id) pair back
// to the module and extrinsic definition.
func (m *Metadata) ExtrinsicByID(moduleID, dispatchID uint8) (*Module, *ExtrinsicDef, error) {
	mod, err := m.FindModuleByID(moduleID)
	if err != nil {
		return nil, nil, err
	}
	if int(dispatchID) >= len(mod.Calls) {
		return nil, nil, errorsmod.Wrapf(ErrNotFound,
			"dispatch id %d in module %q (%d calls)", dispatchID, mod.Name, len(mod.Calls))
	}
	return mod, &mod.Calls[dispatchID], nil
}

// FindExtrinsic returns the named extrinsic of the module.
func (mod *Module) FindExtrinsic(name string) (*ExtrinsicDef, error) {
	i, ok := mod.callsByName[name]
	if !ok {
		return nil, errorsmod.Wrapf(ErrNotFound, "extrinsic %q in module %q", name, mod.Name)
	}
	return &mod.Calls[i], nil
}

// FindStorageEntry returns the named storage entry of the module.
func (mod *Module) FindStorageEntry(name string) (*StorageEntryDef, error) {
	i, ok := mod.storageByName[name]
	if !ok {
		return nil, errorsmod.Wrapf(ErrNotFound, "storage entry %q in module %q", name, mod.Name)
	}
	return &mod.Storage[i], nil
}

// FindEvent returns the named event of the module.
func (mod *Module) FindEvent(name string) (*EventDef, error) {
	i, ok := mod.eventsByName[name]
	if !ok {
		return nil, errorsmod.Wrapf(ErrNotFound, "event %q in module %q", name, mod.Name)
	}
	return &mod.Events[i], nil
}

// FindConstant returns the named constant of the module.
func (mod *Module) FindConstant(name string) (*ConstantDef, error) {
	i, ok := mod.constsByName[name]
	if !ok {
		return nil, errorsmod.Wrapf(ErrNotFound, "constant %q in module %q", name, mod.Name)
	}
	return &mod.Constants[i], nil
}

// FindError returns the named dispatch error of the module.
func (mod *Module) FindError(name string) (*ErrorDef, error) {
	i, ok := mod.errorsByName[name]
	if !ok {
		return nil, errorsmod.Wrapf(ErrNotFound, "error %q in module %q", name, mod.Name)
	}
	return &mod.Errors[i], nil
}
