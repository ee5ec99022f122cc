package parser

// Each scope gets a bitset that may contain these flags.
const (
	scopeTop = 1 << iota
	scopeFunction
	scopeAsync
	scopeGenerator
	scopeArrow
	scopeSimpleCatch
	scopeSuper
	scopeDirectSuper
	scopeClassStaticBlock
	scopeClassFieldInit

	scopeVar = scopeTop | scopeFunction | scopeClassStaticBlock | scopeClassFieldInit
)

func functionFlags(async, generator bool) int {
	flags := scopeFunction
	if async {
		flags |= scopeAsync
	}
	if generator {
		flags |= scopeGenerator
	}
	return flags
}

// Used in checkLVal* and declareName to determine the type of a binding.
const (
	// Not a binding
	bindNone = iota
	// Var-style binding
	bindVar
	// Let- or const-style binding
	bindLexical
	// Function declaration
	bindFunction
	// Simple (identifier pattern) catch binding
	bindSimpleCatch
	// Special case for function names as bound inside the function
	bindOutside
)
