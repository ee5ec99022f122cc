package parser

import "github.com/devside/esparse/ast"

// scope is one frame of the context stack.
type scope struct {
	flags int
	// Names var-declared in this scope
	vars []string
	// Names lexically declared in this scope
	lexical []string
	// Function declaration names in this scope
	functions []string
}

// The functions in this file keep track of declared names in the current
// scope in order to detect duplicate variable names.

func (p *Parser) enterScope(flags int) {
	p.scopeStack = append(p.scopeStack, &scope{flags: flags})
}

func (p *Parser) exitScope() {
	p.scopeStack = p.scopeStack[:len(p.scopeStack)-1]
}

// At the top level of a function, or script, function declarations are
// treated like var declarations rather than like lexical declarations.
func (p *Parser) treatFunctionsAsVarInScope(s *scope) bool {
	return s.flags&scopeFunction != 0 || !p.inModule && s.flags&scopeTop != 0
}

func (p *Parser) declareName(name string, bindingType int, pos int) {
	redeclared := false
	switch bindingType {
	case bindLexical:
		s := p.currentScope()
		redeclared = includes(s.lexical, name) || includes(s.functions, name) || includes(s.vars, name)
		s.lexical = append(s.lexical, name)
		if p.inModule && s.flags&scopeTop != 0 {
			delete(p.undefinedExports, name)
		}
	case bindSimpleCatch:
		s := p.currentScope()
		s.lexical = append(s.lexical, name)
	case bindFunction:
		s := p.currentScope()
		if p.treatFunctionsAsVar() {
			redeclared = includes(s.lexical, name)
		} else {
			redeclared = includes(s.lexical, name) || includes(s.vars, name)
		}
		s.functions = append(s.functions, name)
	default:
		for i := len(p.scopeStack) - 1; i >= 0; i-- {
			s := p.scopeStack[i]
			if includes(s.lexical, name) && !(s.flags&scopeSimpleCatch != 0 && s.lexical[0] == name) ||
				!p.treatFunctionsAsVarInScope(s) && includes(s.functions, name) {
				redeclared = true
				break
			}
			s.vars = append(s.vars, name)
			if p.inModule && s.flags&scopeTop != 0 {
				delete(p.undefinedExports, name)
			}
			if s.flags&scopeVar != 0 {
				break
			}
		}
	}
	if redeclared {
		p.raise(pos, DuplicateBinding, "Identifier '"+name+"' has already been declared")
	}
}

func (p *Parser) checkLocalExport(id *ast.Identifier) {
	// scope.functions must be empty as module code is always strict.
	top := p.scopeStack[0]
	if !includes(top.lexical, id.Name) && !includes(top.vars, id.Name) {
		p.undefinedExports[id.Name] = id
	}
}

func (p *Parser) currentScope() *scope {
	return p.scopeStack[len(p.scopeStack)-1]
}

func (p *Parser) currentVarScope() *scope {
	for i := len(p.scopeStack) - 1; ; i-- {
		if s := p.scopeStack[i]; s.flags&scopeVar != 0 {
			return s
		}
	}
}

// The scope that decides what `this`, `new.target`, `super()` and
// `super.x` refer to; arrow functions are transparent.
func (p *Parser) currentThisScope() *scope {
	for i := len(p.scopeStack) - 1; ; i-- {
		if s := p.scopeStack[i]; s.flags&scopeVar != 0 && s.flags&scopeArrow == 0 {
			return s
		}
	}
}

func includes(list []string, name string) bool {
	for _, v := range list {
		if v == name {
			return true
		}
	}
	return false
}
