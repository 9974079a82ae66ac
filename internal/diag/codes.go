package diag

// Code identifies a diagnostic message template. Values are bucketed by
// phase the same way the teacher buckets Lex/Syn/Sema codes, leaving room to
// grow without renumbering existing codes.
type Code uint16

const (
	UnknownCode Code = 0

	// Binder-phase diagnostics (spec.md §6/§7).
	SemaDuplicateIdentifier      Code = 3001
	SemaExportConflict           Code = 3002
	SemaModuleHasNoExportedMember Code = 3003
	SemaCannotFindName           Code = 3004
	SemaPropertyDoesNotExist     Code = 3005
	SemaExpectedTypeArguments    Code = 3006
	SemaThisOutsideInstance      Code = 3007
	SemaOperationNotSupported    Code = 3008
)

func (c Code) String() string {
	switch c {
	case SemaDuplicateIdentifier:
		return "Duplicate_identifier_0"
	case SemaExportConflict:
		return "Export_declaration_conflicts_with_exported_declaration_of_0"
	case SemaModuleHasNoExportedMember:
		return "Module_0_has_no_exported_member_1"
	case SemaCannotFindName:
		return "Cannot_find_name_0"
	case SemaPropertyDoesNotExist:
		return "Property_0_does_not_exist_on_type_1"
	case SemaExpectedTypeArguments:
		return "Expected_0_type_arguments_but_got_1"
	case SemaThisOutsideInstance:
		return "_this_cannot_be_referenced_in_current_location"
	case SemaOperationNotSupported:
		return "Operation_not_supported"
	default:
		return "UnknownCode"
	}
}
