// Package ident fixes the small set of delimiters and prefixes the binder
// uses to mangle qualified names. Downstream code generation depends on
// these strings bit-for-bit (spec.md §6), so they live in one place instead
// of being repeated as string literals across the binder.
package ident

const (
	// PathDelim separates a source file's internal path from a simple name,
	// e.g. "path/to/file/exportedName".
	PathDelim = "/"
	// StaticDelim separates a class/namespace internal name from a static
	// member's simple name, e.g. "MyClass.staticField".
	StaticDelim = "."
	// InstanceDelim separates a class internal name from an instance
	// member's simple name, e.g. "MyClass#method".
	InstanceDelim = "#"

	// GetterPrefix is prepended to an accessor's simple name to form the
	// internal name of its getter half.
	GetterPrefix = "get:"
	// SetterPrefix is prepended to an accessor's simple name to form the
	// internal name of its setter half.
	SetterPrefix = "set:"
)

// FileScoped joins a source path and a simple name into a file-local
// qualified name: "<sourcePath>/<name>".
func FileScoped(sourcePath, name string) string {
	return sourcePath + PathDelim + name
}

// Static joins a class/namespace internal name and a static member's simple
// name: "<internalName>.<name>".
func Static(internalName, name string) string {
	return internalName + StaticDelim + name
}

// Instance joins a class internal name and an instance member's simple
// name: "<internalName>#<name>".
func Instance(internalName, name string) string {
	return internalName + InstanceDelim + name
}

// Getter prefixes a simple name with the getter marker: "get:name".
func Getter(name string) string { return GetterPrefix + name }

// Setter prefixes a simple name with the setter marker: "set:name".
func Setter(name string) string { return SetterPrefix + name }
