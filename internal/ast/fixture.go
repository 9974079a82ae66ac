package ast

import (
	"encoding/json"
	"fmt"

	"tsbind/internal/source"
)

// Fixture decoding builds a *File from a JSON document instead of a real
// front end (spec.md §1 places lexing/parsing out of scope; cmd/bindctl
// hand-authors these documents the way a test hand-authors a *Builder
// chain). The schema mirrors this package's node shapes directly: every
// declaration and expression carries a "kind" discriminator matching the
// String() spelling DeclKind/ExprKind already print.

type fixtureFile struct {
	Path   string         `json:"path"`
	Items  []fixtureDecl  `json:"items"`
	Probes []fixtureProbe `json:"probes"`
}

// fixtureProbe names an expression cmd/bindctl's "bind" command reports the
// binding of, alongside the namespace (dotted, empty for file scope) it
// should be evaluated in.
type fixtureProbe struct {
	Name      string       `json:"name"`
	Namespace string       `json:"namespace"`
	Expr      *fixtureExpr `json:"expr"`
}

type fixtureDecorator struct {
	Name     string `json:"name"`
	Argument string `json:"argument"`
}

type fixtureParam struct {
	Name           string       `json:"name"`
	Type           *fixtureType `json:"type"`
	HasInitializer bool         `json:"hasInitializer"`
}

type fixtureTypeParam struct {
	Name string `json:"name"`
}

type fixtureType struct {
	Name          string         `json:"name"`
	TypeArguments []*fixtureType `json:"typeArguments"`
}

type fixtureExpr struct {
	Kind     string       `json:"kind"`
	Name     string       `json:"name"`
	Receiver *fixtureExpr `json:"receiver"`
	Property string       `json:"property"`
	Callee   *fixtureExpr `json:"callee"`
}

type fixtureEnumValue struct {
	Name  string `json:"name"`
	Value *int32 `json:"value"`
}

type fixtureImportSpecifier struct {
	Identifier string `json:"identifier"`
	Local      string `json:"local"`
}

type fixtureExportSpecifier struct {
	Identifier         string `json:"identifier"`
	ExternalIdentifier string `json:"externalIdentifier"`
}

// fixtureDecl is the common shape every declaration and class member is
// decoded through; DecodeFixture dispatches on Kind and only reads the
// fields relevant to that kind.
type fixtureDecl struct {
	Kind           string                   `json:"kind"`
	Name           string                   `json:"name"`
	InternalName   string                   `json:"internalName"`
	Modifiers      []string                 `json:"modifiers"`
	Decorators     []fixtureDecorator       `json:"decorators"`
	Members        []fixtureDecl            `json:"members"`
	Values         []fixtureEnumValue       `json:"values"`
	Type           *fixtureType             `json:"type"`
	TypeParameters []fixtureTypeParam       `json:"typeParameters"`
	Parameters     []fixtureParam           `json:"parameters"`
	ReturnType     *fixtureType             `json:"returnType"`
	HasBody        bool                     `json:"hasBody"`
	Static         bool                     `json:"static"`
	Accessor       string                   `json:"accessor"`
	HasInitializer bool                     `json:"hasInitializer"`
	ConstantInt    *int64                   `json:"constantInt"`
	ConstantFloat  *float64                 `json:"constantFloat"`
	BaseType       *fixtureType             `json:"baseType"`
	Aliased        *fixtureType             `json:"aliased"`
	ModulePath  string `json:"modulePath"`
	// ModuleInternalPath is the resolved internal path of the module named
	// by ModulePath ("./b" -> "b.ts", say). Fixtures have no module
	// resolver behind them, so this defaults to ModulePath itself when
	// omitted: a fixture that names its files by their internal path
	// directly (as the sample fixtures do) needs it in neither field.
	ModuleInternalPath string                   `json:"moduleInternalPath"`
	Specifiers         []fixtureImportSpecifier `json:"specifiers"`
	ExportSpecs        []fixtureExportSpecifier `json:"exportSpecifiers"`
	FromModule         bool                     `json:"fromModule"`
	NamespaceImport    bool                     `json:"namespaceImport"`
	NamespaceAlias     string                   `json:"namespaceAlias"`
}

var modifierNames = map[string]Modifier{
	"import":    ModImport,
	"export":    ModExport,
	"declare":   ModDeclare,
	"const":     ModConst,
	"static":    ModStatic,
	"get":       ModGet,
	"set":       ModSet,
	"readonly":  ModReadonly,
	"private":   ModPrivate,
	"protected": ModProtected,
	"public":    ModPublic,
	"abstract":  ModAbstract,
}

func decodeModifiers(names []string) (Modifier, error) {
	var m Modifier
	for _, n := range names {
		f, ok := modifierNames[n]
		if !ok {
			return 0, fmt.Errorf("unknown modifier %q", n)
		}
		m |= f
	}
	return m, nil
}

func decodeDecorators(fid source.FileID, in []fixtureDecorator) []Decorator {
	out := make([]Decorator, 0, len(in))
	for _, d := range in {
		out = append(out, Decorator{Name: d.Name, Argument: d.Argument, HasArg: d.Argument != ""})
	}
	return out
}

func decodeType(t *fixtureType) *TypeNode {
	if t == nil {
		return nil
	}
	args := make([]*TypeNode, 0, len(t.TypeArguments))
	for _, a := range t.TypeArguments {
		args = append(args, decodeType(a))
	}
	return &TypeNode{Name: t.Name, TypeArguments: args}
}

func decodeExpr(e *fixtureExpr) (*Expr, error) {
	if e == nil {
		return nil, nil
	}
	switch e.Kind {
	case "IDENTIFIER":
		return Identifier(e.Name, source.Range{}), nil
	case "PROPERTYACCESS":
		recv, err := decodeExpr(e.Receiver)
		if err != nil {
			return nil, err
		}
		return PropertyAccess(recv, e.Property, source.Range{}), nil
	case "THIS":
		return This(source.Range{}), nil
	case "NEW":
		callee, err := decodeExpr(e.Callee)
		if err != nil {
			return nil, err
		}
		return New(callee, source.Range{}), nil
	default:
		return nil, fmt.Errorf("unknown expression kind %q", e.Kind)
	}
}

func declBase(fid source.FileID, d fixtureDecl) (DeclBase, error) {
	mods, err := decodeModifiers(d.Modifiers)
	if err != nil {
		return DeclBase{}, fmt.Errorf("%s: %w", d.Name, err)
	}
	internal := d.InternalName
	if internal == "" {
		internal = d.Name
	}
	return DeclBase{
		Name:         d.Name,
		InternalName: internal,
		Modifiers:    mods,
		Decorators:   decodeDecorators(fid, d.Decorators),
	}, nil
}

func decodeTypeParams(in []fixtureTypeParam) []TypeParam {
	out := make([]TypeParam, 0, len(in))
	for _, p := range in {
		out = append(out, TypeParam{Name: p.Name})
	}
	return out
}

func decodeParams(in []fixtureParam) []Param {
	out := make([]Param, 0, len(in))
	for _, p := range in {
		out = append(out, Param{Name: p.Name, Type: decodeType(p.Type), HasInitializer: p.HasInitializer})
	}
	return out
}

// decodeClassMember decodes a FieldDecl or FunctionDecl appearing inside a
// class/interface body.
func decodeClassMember(fid source.FileID, d fixtureDecl) (ClassMember, error) {
	base, err := declBase(fid, d)
	if err != nil {
		return nil, err
	}
	switch d.Kind {
	case "FIELD":
		base.Kind = DeclField
		return &FieldDecl{
			DeclBase:       base,
			Type:           decodeType(d.Type),
			Static:         d.Static,
			HasInitializer: d.HasInitializer,
			ConstantInt:    d.ConstantInt,
			ConstantFloat:  d.ConstantFloat,
		}, nil
	case "METHOD", "FUNCTION":
		base.Kind = DeclFunction
		var accessor Modifier
		switch d.Accessor {
		case "get":
			accessor = ModGet
		case "set":
			accessor = ModSet
		case "":
		default:
			return nil, fmt.Errorf("%s: unknown accessor %q", d.Name, d.Accessor)
		}
		return &FunctionDecl{
			DeclBase:       base,
			TypeParameters: decodeTypeParams(d.TypeParameters),
			Parameters:     decodeParams(d.Parameters),
			ReturnType:     decodeType(d.ReturnType),
			HasBody:        d.HasBody,
			Static:         d.Static,
			Accessor:       accessor,
		}, nil
	default:
		return nil, fmt.Errorf("%s: unexpected class member kind %q", d.Name, d.Kind)
	}
}

// decodeTopLevel decodes any declaration that can appear at file or
// namespace scope.
func decodeTopLevel(fid source.FileID, d fixtureDecl) (Decl, error) {
	base, err := declBase(fid, d)
	if err != nil {
		return nil, err
	}
	switch d.Kind {
	case "NAMESPACE":
		base.Kind = DeclNamespace
		members := make([]Decl, 0, len(d.Members))
		for _, m := range d.Members {
			md, err := decodeTopLevel(fid, m)
			if err != nil {
				return nil, err
			}
			members = append(members, md)
		}
		return &NamespaceDecl{DeclBase: base, Members: members}, nil

	case "ENUM":
		base.Kind = DeclEnum
		values := make([]*EnumValueDecl, 0, len(d.Values))
		for _, v := range d.Values {
			values = append(values, &EnumValueDecl{
				DeclBase: DeclBase{Kind: DeclEnumValue, Name: v.Name, InternalName: v.Name},
				Value:    v.Value,
			})
		}
		return &EnumDecl{DeclBase: base, Values: values}, nil

	case "VARIABLE":
		base.Kind = DeclVariable
		return &VariableDecl{
			DeclBase:       base,
			Type:           decodeType(d.Type),
			HasInitializer: d.HasInitializer,
			ConstantInt:    d.ConstantInt,
			ConstantFloat:  d.ConstantFloat,
		}, nil

	case "FUNCTION":
		base.Kind = DeclFunction
		return &FunctionDecl{
			DeclBase:       base,
			TypeParameters: decodeTypeParams(d.TypeParameters),
			Parameters:     decodeParams(d.Parameters),
			ReturnType:     decodeType(d.ReturnType),
			HasBody:        d.HasBody,
		}, nil

	case "CLASS", "INTERFACE":
		members := make([]ClassMember, 0, len(d.Members))
		for _, m := range d.Members {
			mm, err := decodeClassMember(fid, m)
			if err != nil {
				return nil, err
			}
			members = append(members, mm)
		}
		if d.Kind == "CLASS" {
			base.Kind = DeclClass
			return &ClassDecl{DeclBase: base, TypeParameters: decodeTypeParams(d.TypeParameters), BaseType: decodeType(d.BaseType), Members: members}, nil
		}
		base.Kind = DeclInterface
		return &InterfaceDecl{DeclBase: base, TypeParameters: decodeTypeParams(d.TypeParameters), BaseType: decodeType(d.BaseType), Members: members}, nil

	case "TYPEDECLARATION":
		base.Kind = DeclTypeAlias
		return &TypeAliasDecl{DeclBase: base, Aliased: decodeType(d.Aliased)}, nil

	case "IMPORT":
		base.Kind = DeclImport
		specs := make([]ImportSpecifier, 0, len(d.Specifiers))
		for _, s := range d.Specifiers {
			local := s.Local
			if local == "" {
				local = s.Identifier
			}
			specs = append(specs, ImportSpecifier{Identifier: s.Identifier, Local: local})
		}
		modInternal := d.ModuleInternalPath
		if modInternal == "" {
			modInternal = d.ModulePath
		}
		return &ImportDecl{
			DeclBase:           base,
			ModulePath:         d.ModulePath,
			ModuleInternalPath: modInternal,
			Specifiers:         specs,
			NamespaceImport:    d.NamespaceImport,
			NamespaceAlias:     d.NamespaceAlias,
		}, nil

	case "EXPORT":
		base.Kind = DeclExport
		specs := make([]ExportSpecifier, 0, len(d.ExportSpecs))
		for _, s := range d.ExportSpecs {
			ext := s.ExternalIdentifier
			if ext == "" {
				ext = s.Identifier
			}
			specs = append(specs, ExportSpecifier{Identifier: s.Identifier, ExternalIdentifier: ext})
		}
		modInternal := d.ModuleInternalPath
		if modInternal == "" {
			modInternal = d.ModulePath
		}
		return &ExportDecl{
			DeclBase:           base,
			FromModule:         d.FromModule,
			ModulePath:         d.ModulePath,
			ModuleInternalPath: modInternal,
			Specifiers:         specs,
		}, nil

	default:
		return nil, fmt.Errorf("%s: unexpected top-level kind %q", d.Name, d.Kind)
	}
}

// Probe names an expression, plus the dotted namespace path it should be
// evaluated in ("" for file scope), that a caller wants the resolved
// binding of. Decoded from a fixture's "probes" array.
type Probe struct {
	Name      string
	Namespace string
	Expr      *Expr
}

// Fixture is a decoded fixture document: the *File it describes plus any
// expression probes to resolve against the bound program.
type Fixture struct {
	File   *File
	Probes []Probe
}

// DecodeFixture parses a JSON-encoded fixture document into a Fixture. id is
// assigned to the resulting file; every node's Range is left zero since
// fixtures have no backing byte stream to point diagnostics at beyond the
// file itself.
func DecodeFixture(id source.FileID, data []byte) (*Fixture, error) {
	var ff fixtureFile
	if err := json.Unmarshal(data, &ff); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	f := &File{ID: id, Path: ff.Path}
	for _, item := range ff.Items {
		d, err := decodeTopLevel(id, item)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ff.Path, err)
		}
		f.Items = append(f.Items, d)
	}
	probes := make([]Probe, 0, len(ff.Probes))
	for _, p := range ff.Probes {
		e, err := decodeExpr(p.Expr)
		if err != nil {
			return nil, fmt.Errorf("%s: probe %q: %w", ff.Path, p.Name, err)
		}
		probes = append(probes, Probe{Name: p.Name, Namespace: p.Namespace, Expr: e})
	}
	return &Fixture{File: f, Probes: probes}, nil
}
