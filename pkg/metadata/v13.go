// Package metadata parses Substrate runtime metadata: a version-tagged
// union where every version before the latest is a bare marker and only
// the latest carries the actual module/call/storage tree.
package metadata

import (
	"github.com/dotscale/substrate-go/pkg/scale"
)

// StorageHasher names one of Substrate's storage key hashing schemes.
type StorageHasher byte

const (
	HasherBlake2_128 StorageHasher = iota
	HasherBlake2_256
	HasherBlake2_128Concat
	HasherTwox128
	HasherTwox256
	HasherTwox64Concat
	HasherIdentity
)

func (h StorageHasher) EncodeScale(w *scale.Writer) {
	w.WriteDiscriminant(byte(h))
}

func (h *StorageHasher) DecodeScale(r *scale.Reader) {
	d := r.ReadDiscriminant()
	if r.Err() != nil {
		return
	}
	if d > byte(HasherIdentity) {
		r.Fail(scale.ErrInvalidDiscriminant)
		return
	}
	*h = StorageHasher(d)
}

// StorageEntryModifier records whether a storage entry decodes to a
// default value or an Option when absent.
type StorageEntryModifier byte

const (
	ModifierOptional StorageEntryModifier = iota
	ModifierDefault
)

func (m StorageEntryModifier) EncodeScale(w *scale.Writer) {
	w.WriteDiscriminant(byte(m))
}

func (m *StorageEntryModifier) DecodeScale(r *scale.Reader) {
	d := r.ReadDiscriminant()
	if r.Err() != nil {
		return
	}
	if d > byte(ModifierDefault) {
		r.Fail(scale.ErrInvalidDiscriminant)
		return
	}
	*m = StorageEntryModifier(d)
}

// storageEntryKind tags which shape a StorageEntryType carries.
type storageEntryKind byte

const (
	kindPlain storageEntryKind = iota
	kindMap
	kindDoubleMap
	kindNMap
)

// StorageEntryType is a tagged union over the four storage layouts
// Substrate metadata can describe for one entry.
type StorageEntryType struct {
	kind storageEntryKind

	plainType string // Plain

	mapHasher StorageHasher // Map, DoubleMap (as key1 hasher)
	mapKey    string        // Map
	mapValue  string        // Map, DoubleMap, NMap
	mapUnused bool          // Map

	doubleMapKey1       string        // DoubleMap
	doubleMapKey2       string        // DoubleMap
	doubleMapKey2Hasher StorageHasher // DoubleMap

	nMapKeys    string          // NMap
	nMapHashers []StorageHasher // NMap
}

func PlainStorageEntry(ty string) StorageEntryType {
	return StorageEntryType{kind: kindPlain, plainType: ty}
}

func MapStorageEntry(hasher StorageHasher, key, value string, unused bool) StorageEntryType {
	return StorageEntryType{kind: kindMap, mapHasher: hasher, mapKey: key, mapValue: value, mapUnused: unused}
}

func DoubleMapStorageEntry(hasher StorageHasher, key1, key2, value string, key2Hasher StorageHasher) StorageEntryType {
	return StorageEntryType{
		kind: kindDoubleMap, mapHasher: hasher, doubleMapKey1: key1,
		doubleMapKey2: key2, mapValue: value, doubleMapKey2Hasher: key2Hasher,
	}
}

func NMapStorageEntry(keys string, hashers []StorageHasher, value string) StorageEntryType {
	return StorageEntryType{kind: kindNMap, nMapKeys: keys, nMapHashers: hashers, mapValue: value}
}

func (t StorageEntryType) IsPlain() bool      { return t.kind == kindPlain }
func (t StorageEntryType) IsMap() bool        { return t.kind == kindMap }
func (t StorageEntryType) IsDoubleMap() bool  { return t.kind == kindDoubleMap }
func (t StorageEntryType) IsNMap() bool       { return t.kind == kindNMap }
func (t StorageEntryType) PlainType() string  { return t.plainType }
func (t StorageEntryType) MapKey() string     { return t.mapKey }
func (t StorageEntryType) MapValue() string   { return t.mapValue }
func (t StorageEntryType) MapHasher() StorageHasher { return t.mapHasher }

func (t StorageEntryType) EncodeScale(w *scale.Writer) {
	w.WriteDiscriminant(byte(t.kind))
	switch t.kind {
	case kindPlain:
		w.WriteString(t.plainType)
	case kindMap:
		t.mapHasher.EncodeScale(w)
		w.WriteString(t.mapKey)
		w.WriteString(t.mapValue)
		w.WriteBool(t.mapUnused)
	case kindDoubleMap:
		t.mapHasher.EncodeScale(w)
		w.WriteString(t.doubleMapKey1)
		w.WriteString(t.doubleMapKey2)
		w.WriteString(t.mapValue)
		t.doubleMapKey2Hasher.EncodeScale(w)
	case kindNMap:
		w.WriteString(t.nMapKeys)
		scale.WriteCompactSlice(w, t.nMapHashers, func(w *scale.Writer, h StorageHasher) { h.EncodeScale(w) })
		w.WriteString(t.mapValue)
	}
}

func (t *StorageEntryType) DecodeScale(r *scale.Reader) {
	d := r.ReadDiscriminant()
	if r.Err() != nil {
		return
	}
	switch storageEntryKind(d) {
	case kindPlain:
		t.kind = kindPlain
		t.plainType = r.ReadString()
	case kindMap:
		t.kind = kindMap
		t.mapHasher.DecodeScale(r)
		t.mapKey = r.ReadString()
		t.mapValue = r.ReadString()
		t.mapUnused = r.ReadBool()
	case kindDoubleMap:
		t.kind = kindDoubleMap
		t.mapHasher.DecodeScale(r)
		t.doubleMapKey1 = r.ReadString()
		t.doubleMapKey2 = r.ReadString()
		t.mapValue = r.ReadString()
		t.doubleMapKey2Hasher.DecodeScale(r)
	case kindNMap:
		t.kind = kindNMap
		t.nMapKeys = r.ReadString()
		t.nMapHashers = scale.ReadCompactSlice(r, func(r *scale.Reader) StorageHasher {
			var h StorageHasher
			h.DecodeScale(r)
			return h
		})
		t.mapValue = r.ReadString()
	default:
		r.Fail(scale.ErrInvalidDiscriminant)
	}
}

// StorageEntryMetadata describes one storage item within a module.
type StorageEntryMetadata struct {
	Name          string
	Modifier      StorageEntryModifier
	Type          StorageEntryType
	Default       []byte
	Documentation []string
}

func (e StorageEntryMetadata) EncodeScale(w *scale.Writer) {
	w.WriteString(e.Name)
	e.Modifier.EncodeScale(w)
	e.Type.EncodeScale(w)
	w.WriteCompactBytes(e.Default)
	w.WriteCompactStringSlice(e.Documentation)
}

func (e *StorageEntryMetadata) DecodeScale(r *scale.Reader) {
	e.Name = r.ReadString()
	e.Modifier.DecodeScale(r)
	e.Type.DecodeScale(r)
	e.Default = r.ReadCompactBytes()
	e.Documentation = r.ReadCompactStringSlice()
}

// StorageMetadata is a module's storage prefix plus its entries.
type StorageMetadata struct {
	Prefix  string
	Entries []StorageEntryMetadata
}

func (s StorageMetadata) EncodeScale(w *scale.Writer) {
	w.WriteString(s.Prefix)
	scale.WriteCompactSlice(w, s.Entries, func(w *scale.Writer, e StorageEntryMetadata) { e.EncodeScale(w) })
}

func (s *StorageMetadata) DecodeScale(r *scale.Reader) {
	s.Prefix = r.ReadString()
	s.Entries = scale.ReadCompactSlice(r, func(r *scale.Reader) StorageEntryMetadata {
		var e StorageEntryMetadata
		e.DecodeScale(r)
		return e
	})
}

// FunctionArgumentMetadata names one call argument and its Rust type
// string (e.g. "Compact<T::Balance>"), kept verbatim rather than parsed.
type FunctionArgumentMetadata struct {
	Name string
	Type string
}

func (a FunctionArgumentMetadata) EncodeScale(w *scale.Writer) {
	w.WriteString(a.Name)
	w.WriteString(a.Type)
}

func (a *FunctionArgumentMetadata) DecodeScale(r *scale.Reader) {
	a.Name = r.ReadString()
	a.Type = r.ReadString()
}

// FunctionMetadata describes one dispatchable call of a module.
type FunctionMetadata struct {
	Name          string
	Arguments     []FunctionArgumentMetadata
	Documentation []string
}

func (f FunctionMetadata) EncodeScale(w *scale.Writer) {
	w.WriteString(f.Name)
	scale.WriteCompactSlice(w, f.Arguments, func(w *scale.Writer, a FunctionArgumentMetadata) { a.EncodeScale(w) })
	w.WriteCompactStringSlice(f.Documentation)
}

func (f *FunctionMetadata) DecodeScale(r *scale.Reader) {
	f.Name = r.ReadString()
	f.Arguments = scale.ReadCompactSlice(r, func(r *scale.Reader) FunctionArgumentMetadata {
		var a FunctionArgumentMetadata
		a.DecodeScale(r)
		return a
	})
	f.Documentation = r.ReadCompactStringSlice()
}

// EventMetadata describes one event a module can emit.
type EventMetadata struct {
	Name          string
	Arguments     []string
	Documentation []string
}

func (e EventMetadata) EncodeScale(w *scale.Writer) {
	w.WriteString(e.Name)
	w.WriteCompactStringSlice(e.Arguments)
	w.WriteCompactStringSlice(e.Documentation)
}

func (e *EventMetadata) DecodeScale(r *scale.Reader) {
	e.Name = r.ReadString()
	e.Arguments = r.ReadCompactStringSlice()
	e.Documentation = r.ReadCompactStringSlice()
}

// ModuleConstantMetadata describes a compile-time constant exposed by a
// module, with its SCALE-encoded value carried opaquely.
type ModuleConstantMetadata struct {
	Name          string
	Type          string
	Value         []byte
	Documentation []string
}

func (c ModuleConstantMetadata) EncodeScale(w *scale.Writer) {
	w.WriteString(c.Name)
	w.WriteString(c.Type)
	w.WriteCompactBytes(c.Value)
	w.WriteCompactStringSlice(c.Documentation)
}

func (c *ModuleConstantMetadata) DecodeScale(r *scale.Reader) {
	c.Name = r.ReadString()
	c.Type = r.ReadString()
	c.Value = r.ReadCompactBytes()
	c.Documentation = r.ReadCompactStringSlice()
}

// ErrorMetadata names one error variant a module's calls may return.
type ErrorMetadata struct {
	Name          string
	Documentation []string
}

func (e ErrorMetadata) EncodeScale(w *scale.Writer) {
	w.WriteString(e.Name)
	w.WriteCompactStringSlice(e.Documentation)
}

func (e *ErrorMetadata) DecodeScale(r *scale.Reader) {
	e.Name = r.ReadString()
	e.Documentation = r.ReadCompactStringSlice()
}

// ModuleMetadata is one pallet's full metadata: its name, optional
// storage/calls/events, its constants and errors, and its fixed index
// (module_id) within the runtime.
type ModuleMetadata struct {
	Name      string
	Storage   *StorageMetadata
	Calls     *[]FunctionMetadata
	Events    *[]EventMetadata
	Constants []ModuleConstantMetadata
	Errors    []ErrorMetadata
	Index     byte
}

func (m ModuleMetadata) EncodeScale(w *scale.Writer) {
	w.WriteString(m.Name)
	scale.WriteOption(w, m.Storage != nil, func(w *scale.Writer) { m.Storage.EncodeScale(w) })
	scale.WriteOption(w, m.Calls != nil, func(w *scale.Writer) {
		scale.WriteCompactSlice(w, *m.Calls, func(w *scale.Writer, f FunctionMetadata) { f.EncodeScale(w) })
	})
	scale.WriteOption(w, m.Events != nil, func(w *scale.Writer) {
		scale.WriteCompactSlice(w, *m.Events, func(w *scale.Writer, e EventMetadata) { e.EncodeScale(w) })
	})
	scale.WriteCompactSlice(w, m.Constants, func(w *scale.Writer, c ModuleConstantMetadata) { c.EncodeScale(w) })
	scale.WriteCompactSlice(w, m.Errors, func(w *scale.Writer, e ErrorMetadata) { e.EncodeScale(w) })
	w.WriteByte(m.Index)
}

func (m *ModuleMetadata) DecodeScale(r *scale.Reader) {
	m.Name = r.ReadString()

	m.Storage = nil
	scale.ReadOption(r, func(r *scale.Reader) {
		var s StorageMetadata
		s.DecodeScale(r)
		m.Storage = &s
	})

	m.Calls = nil
	scale.ReadOption(r, func(r *scale.Reader) {
		calls := scale.ReadCompactSlice(r, func(r *scale.Reader) FunctionMetadata {
			var f FunctionMetadata
			f.DecodeScale(r)
			return f
		})
		m.Calls = &calls
	})

	m.Events = nil
	scale.ReadOption(r, func(r *scale.Reader) {
		events := scale.ReadCompactSlice(r, func(r *scale.Reader) EventMetadata {
			var e EventMetadata
			e.DecodeScale(r)
			return e
		})
		m.Events = &events
	})
	m.Constants = scale.ReadCompactSlice(r, func(r *scale.Reader) ModuleConstantMetadata {
		var c ModuleConstantMetadata
		c.DecodeScale(r)
		return c
	})
	m.Errors = scale.ReadCompactSlice(r, func(r *scale.Reader) ErrorMetadata {
		var e ErrorMetadata
		e.DecodeScale(r)
		return e
	})
	m.Index = r.ReadByte()
}

// ExtrinsicMetadata records the extrinsic envelope version and the names
// of the signed extensions this chain attaches to every transaction.
type ExtrinsicMetadata struct {
	Version          byte
	SignedExtensions []string
}

func (e ExtrinsicMetadata) EncodeScale(w *scale.Writer) {
	w.WriteByte(e.Version)
	w.WriteCompactStringSlice(e.SignedExtensions)
}

func (e *ExtrinsicMetadata) DecodeScale(r *scale.Reader) {
	e.Version = r.ReadByte()
	e.SignedExtensions = r.ReadCompactStringSlice()
}

// V13 is the fully materialized metadata tree: every pallet in the
// runtime, in the fixed order that assigns each its module_id.
type V13 struct {
	Modules    []ModuleMetadata
	Extrinsics ExtrinsicMetadata
}

func (m V13) EncodeScale(w *scale.Writer) {
	scale.WriteCompactSlice(w, m.Modules, func(w *scale.Writer, mod ModuleMetadata) { mod.EncodeScale(w) })
	m.Extrinsics.EncodeScale(w)
}

func (m *V13) DecodeScale(r *scale.Reader) {
	m.Modules = scale.ReadCompactSlice(r, func(r *scale.Reader) ModuleMetadata {
		var mod ModuleMetadata
		mod.DecodeScale(r)
		return mod
	})
	m.Extrinsics.DecodeScale(r)
}
