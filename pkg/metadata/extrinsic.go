package metadata

// ExtrinsicInfo resolves a module/extrinsic name pair against a specific
// metadata blob: the module_id and dispatch_id it returns are only stable
// for that one blob, since a runtime upgrade can reorder pallets or calls.
type ExtrinsicInfo struct {
	ModuleID      int
	DispatchID    int
	ModuleName    string
	ExtrinsicName string
	Args          []FunctionArgumentMetadata
	Documentation []string
}

func (m *V13) toExtrinsicInfo(moduleID, dispatchID int, moduleName string, f FunctionMetadata) ExtrinsicInfo {
	return ExtrinsicInfo{
		ModuleID:      moduleID,
		DispatchID:    dispatchID,
		ModuleName:    moduleName,
		ExtrinsicName: f.Name,
		Args:          f.Arguments,
		Documentation: f.Documentation,
	}
}

// ModulesExtrinsics flattens every dispatchable call across every module
// into a single list, in (module_id, dispatch_id) order.
func (m *V13) ModulesExtrinsics() []ExtrinsicInfo {
	var out []ExtrinsicInfo
	for moduleID, mod := range m.Modules {
		if mod.Calls == nil {
			continue
		}
		for dispatchID, f := range *mod.Calls {
			out = append(out, m.toExtrinsicInfo(moduleID, dispatchID, mod.Name, f))
		}
	}
	return out
}

// FindModuleExtrinsic looks up one call by module and extrinsic name,
// linear-searching both levels the way the metadata tree is ordered.
func (m *V13) FindModuleExtrinsic(module, extrinsic string) (ExtrinsicInfo, bool) {
	for moduleID, mod := range m.Modules {
		if mod.Name != module {
			continue
		}
		if mod.Calls == nil {
			return ExtrinsicInfo{}, false
		}
		for dispatchID, f := range *mod.Calls {
			if f.Name == extrinsic {
				return m.toExtrinsicInfo(moduleID, dispatchID, mod.Name, f), true
			}
		}
		return ExtrinsicInfo{}, false
	}
	return ExtrinsicInfo{}, false
}
