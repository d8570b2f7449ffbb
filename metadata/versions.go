package metadata

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/subkit-labs/subkit/scale"
)

// V13 and V12 share the module layout; they differ only in the storage
// entry type union, which grew an NMap variant in V13.

func decodeV13(d *scale.Decoder) (*Metadata, error) {
	return decodeModules(d, true)
}

func decodeV12(d *scale.Decoder) (*Metadata, error) {
	return decodeModules(d, false)
}

func decodeModules(d *scale.Decoder, allowNMap bool) (*Metadata, error) {
	n, err := d.DecodeLen()
	if err != nil {
		return nil, err
	}

	m := &Metadata{Modules: make([]Module, 0, n)}
	for i := 0; i < n; i++ {
		mod, err := decodeModule(d, allowNMap)
		if err != nil {
			return nil, errorsmod.Wrapf(err, "module %d", i)
		}
		m.Modules = append(m.Modules, mod)
	}

	if m.Extrinsic, err = decodeExtrinsicInfo(d); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeModule(d *scale.Decoder, allowNMap bool) (Module, error) {
	var mod Module
	var err error

	if mod.Name, err = d.DecodeString(); err != nil {
		return mod, err
	}

	hasStorage, err := d.DecodeOption()
	if err != nil {
		return mod, err
	}
	if hasStorage {
		if mod.StoragePrefix, err = d.DecodeString(); err != nil {
			return mod, err
		}
		if mod.Storage, err = decodeSeq(d, func() (StorageEntryDef, error) {
			return decodeStorageEntry(d, allowNMap)
		}); err != nil {
			return mod, err
		}
	}

	hasCalls, err := d.DecodeOption()
	if err != nil {
		return mod, err
	}
	if hasCalls {
		if mod.Calls, err = decodeSeq(d, func() (ExtrinsicDef, error) {
			return decodeExtrinsic(d)
		}); err != nil {
			return mod, err
		}
		for i := range mod.Calls {
			mod.Calls[i].DispatchID = uint8(i)
		}
	}

	hasEvents, err := d.DecodeOption()
	if err != nil {
		return mod, err
	}
	if hasEvents {
		if mod.Events, err = decodeSeq(d, func() (EventDef, error) {
			return decodeEvent(d)
		}); err != nil {
			return mod, err
		}
	}

	if mod.Constants, err = decodeSeq(d, func() (ConstantDef, error) {
		return decodeConstant(d)
	}); err != nil {
		return mod, err
	}

	if mod.Errors, err = decodeSeq(d, func() (ErrorDef, error) {
		return decodeError(d)
	}); err != nil {
		return mod, err
	}

	if mod.ModuleID, err = d.DecodeU8(); err != nil {
		return mod, err
	}
	return mod, nil
}

func decodeSeq[T any](d *scale.Decoder, item func() (T, error)) ([]T, error) {
	n, err := d.DecodeLen()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := item()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func decodeStrings(d *scale.Decoder) ([]string, error) {
	return decodeSeq(d, d.DecodeString)
}

func decodeExtrinsic(d *scale.Decoder) (ExtrinsicDef, error) {
	var def ExtrinsicDef
	var err error

	if def.Name, err = d.DecodeString(); err != nil {
		return def, err
	}
	if def.Args, err = decodeSeq(d, func() (Arg, error) {
		var arg Arg
		if arg.Name, err = d.DecodeString(); err != nil {
			return arg, err
		}
		arg.Type, err = d.DecodeString()
		return arg, err
	}); err != nil {
		return def, err
	}
	def.Docs, err = decodeStrings(d)
	return def, err
}

func decodeEvent(d *scale.Decoder) (EventDef, error) {
	var def EventDef
	var err error

	if def.Name, err = d.DecodeString(); err != nil {
		return def, err
	}
	if def.Args, err = decodeStrings(d); err != nil {
		return def, err
	}
	def.Docs, err = decodeStrings(d)
	return def, err
}

func decodeConstant(d *scale.Decoder) (ConstantDef, error) {
	var def ConstantDef
	var err error

	if def.Name, err = d.DecodeString(); err != nil {
		return def, err
	}
	if def.Type, err = d.DecodeString(); err != nil {
		return def, err
	}
	if def.Value, err = d.DecodeBytes(); err != nil {
		return def, err
	}
	def.Docs, err = decodeStrings(d)
	return def, err
}

func decodeError(d *scale.Decoder) (ErrorDef, error) {
	var def ErrorDef
	var err error

	if def.Name, err = d.DecodeString(); err != nil {
		return def, err
	}
	def.Docs, err = decodeStrings(d)
	return def, err
}

func decodeStorageEntry(d *scale.Decoder, allowNMap bool) (StorageEntryDef, error) {
	var def StorageEntryDef

	name, err := d.DecodeString()
	if err != nil {
		return def, err
	}
	def.Name = name

	modifier, err := d.DecodeVariant()
	if err != nil {
		return def, err
	}
	if modifier > uint8(StorageDefault) {
		return def, errorsmod.Wrapf(scale.ErrUnknownVariant, "storage modifier %d for entry %q", modifier, name)
	}
	def.Modifier = StorageModifier(modifier)

	if def.Type, err = decodeStorageType(d, name, allowNMap); err != nil {
		return def, err
	}
	if def.Default, err = d.DecodeBytes(); err != nil {
		return def, err
	}
	def.Docs, err = decodeStrings(d)
	return def, err
}

func decodeStorageType(d *scale.Decoder, entry string, allowNMap bool) (StorageEntryType, error) {
	var ty StorageEntryType

	tag, err := d.DecodeVariant()
	if err != nil {
		return ty, err
	}

	switch {
	case tag == uint8(StoragePlain):
		ty.Kind = StoragePlain
		ty.Value, err = d.DecodeString()
		return ty, err

	case tag == uint8(StorageMap):
		ty.Kind = StorageMap
		if ty.Hasher, err = decodeHasher(d, entry); err != nil {
			return ty, err
		}
		if ty.Key, err = d.DecodeString(); err != nil {
			return ty, err
		}
		if ty.Value, err = d.DecodeString(); err != nil {
			return ty, err
		}
		// The unused flag is carried on the wire but has no meaning.
		_, err = d.DecodeBool()
		return ty, err

	case tag == uint8(StorageDoubleMap):
		ty.Kind = StorageDoubleMap
		if ty.Hasher, err = decodeHasher(d, entry); err != nil {
			return ty, err
		}
		if ty.Key, err = d.DecodeString(); err != nil {
			return ty, err
		}
		if ty.Key2, err = d.DecodeString(); err != nil {
			return ty, err
		}
		if ty.Value, err = d.DecodeString(); err != nil {
			return ty, err
		}
		ty.Key2Hasher, err = decodeHasher(d, entry)
		return ty, err

	case tag == uint8(StorageNMap) && allowNMap:
		ty.Kind = StorageNMap
		if ty.Keys, err = d.DecodeString(); err != nil {
			return ty, err
		}
		if ty.Hashers, err = decodeSeq(d, func() (StorageHasher, error) {
			return decodeHasher(d, entry)
		}); err != nil {
			return ty, err
		}
		ty.Value, err = d.DecodeString()
		return ty, err

	default:
		return ty, errorsmod.Wrapf(scale.ErrUnknownVariant, "storage type %d for entry %q", tag, entry)
	}
}

func decodeHasher(d *scale.Decoder, entry string) (StorageHasher, error) {
	tag, err := d.DecodeVariant()
	if err != nil {
		return 0, err
	}
	if tag > uint8(HasherIdentity) {
		return 0, errorsmod.Wrapf(scale.ErrUnknownVariant, "storage hasher %d for entry %q", tag, entry)
	}
	return StorageHasher(tag), nil
}

func decodeExtrinsicInfo(d *scale.Decoder) (ExtrinsicVersionInfo, error) {
	var info ExtrinsicVersionInfo
	var err error

	if info.Version, err = d.DecodeU8(); err != nil {
		return info, err
	}
	info.SignedExtensions, err = decodeStrings(d)
	return info, err
}
