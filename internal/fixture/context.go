package fixture

// Context selects the resolver entry point a stream is fed to.
type Context uint8

const (
	ContextDecls Context = iota
	ContextDecl
	ContextPortDecls
	ContextModuleItems
	ContextDeclOrStmt
	ContextForInit
)

var contextNames = map[string]Context{
	"decls":        ContextDecls,
	"decl":         ContextDecl,
	"port_decls":   ContextPortDecls,
	"module_items": ContextModuleItems,
	"decl_or_stmt": ContextDeclOrStmt,
	"for_init":     ContextForInit,
}

// ParseContext maps a context name from a fixture file to its Context.
func ParseContext(name string) (Context, bool) {
	ctx, ok := contextNames[name]
	return ctx, ok
}

func (c Context) String() string {
	for name, ctx := range contextNames {
		if ctx == c {
			return name
		}
	}
	return "decls"
}
