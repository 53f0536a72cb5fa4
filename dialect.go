package bem

// Default separators of the BEM convention.
const (
	DefaultElementSeparator  = "__"
	DefaultModifierSeparator = "--"
)

// Options configures a Dialect. Empty fields fall back to the defaults.
type Options struct {
	ElementSeparator  string
	ModifierSeparator string
}

// Dialect is a separator pair bound into every ClassName it constructs.
// Derivations keep the dialect of their origin, so independently configured
// dialects can coexist in one process. The zero Dialect behaves like Default.
type Dialect struct {
	elemSep string
	modSep  string
}

// Configure returns a Dialect for the given options. Each call is
// independent; no state is shared between dialects.
func Configure(opt Options) Dialect {
	d := Dialect{elemSep: opt.ElementSeparator, modSep: opt.ModifierSeparator}
	if d.elemSep == "" {
		d.elemSep = DefaultElementSeparator
	}
	if d.modSep == "" {
		d.modSep = DefaultModifierSeparator
	}
	return d
}

// Default is the out-of-the-box dialect ("__" and "--").
var Default = Configure(Options{})

// New constructs a ClassName in this dialect. The optional parts are
// positional: element first, then modifier.
func (d Dialect) New(block string, parts ...Part) ClassName {
	if d.elemSep == "" || d.modSep == "" {
		d = Configure(Options{ElementSeparator: d.elemSep, ModifierSeparator: d.modSep})
	}
	c := ClassName{block: block, dialect: d}
	if len(parts) > 0 {
		c.element = parts[0]
	}
	if len(parts) > 1 {
		c.modifier = parts[1]
	}
	return c
}

// ElementSeparator returns the separator between block and element.
func (d Dialect) ElementSeparator() string {
	if d.elemSep == "" {
		return DefaultElementSeparator
	}
	return d.elemSep
}

// ModifierSeparator returns the separator before a modifier.
func (d Dialect) ModifierSeparator() string {
	if d.modSep == "" {
		return DefaultModifierSeparator
	}
	return d.modSep
}

// New constructs a ClassName in the default dialect.
func New(block string, parts ...Part) ClassName { return Default.New(block, parts...) }
