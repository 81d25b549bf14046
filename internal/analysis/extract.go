package analysis

import (
	"strings"

	"coral66/internal/diag"
	"coral66/internal/source"
	"coral66/internal/symbols"
	"coral66/internal/token"
)

// frame tracks one open scope on the extractor's stack. The bottom frame is
// the global scope and never closes; procedure frames close when the END
// matching their body's BEGIN is consumed (or at the statement terminator
// for bodies written without BEGIN).
type frame struct {
	scope      symbols.ScopeID
	beginDepth int
	awaitBegin bool // header parsed, body's first token not yet seen
	singleStmt bool // body is a single statement, closes at ';'
}

// extractor walks the token stream once, recognizing declaration forms and
// populating the symbol table. It carries explicit paren/bracket depth and
// parameter-list state so that an identifier followed by a colon is only a
// label when the colon cannot belong to a parameter specification.
type extractor struct {
	file  *source.File
	toks  []token.Token
	pos   int
	table *symbols.Table
	rep   diag.Reporter
	stack []frame
	decls map[uint32]symbols.SymbolID

	parenDepth   int
	bracketDepth int
}

func extract(file *source.File, toks []token.Token, table *symbols.Table, rep diag.Reporter) map[uint32]symbols.SymbolID {
	ex := &extractor{
		file:  file,
		toks:  toks,
		table: table,
		rep:   rep,
		stack: []frame{{scope: table.Global}},
		decls: make(map[uint32]symbols.SymbolID),
	}
	for ex.cur().Kind != token.EOF {
		ex.step()
	}
	// Unterminated procedure scopes run to end of input.
	eof := uint32(len(file.Content))
	for len(ex.stack) > 1 {
		ex.closeTop(eof)
	}
	return ex.decls
}

func (ex *extractor) cur() token.Token {
	if ex.pos >= len(ex.toks) {
		return token.Token{Kind: token.EOF}
	}
	return ex.toks[ex.pos]
}

func (ex *extractor) peek(n int) token.Token {
	if ex.pos+n >= len(ex.toks) {
		return token.Token{Kind: token.EOF}
	}
	return ex.toks[ex.pos+n]
}

func (ex *extractor) top() *frame {
	return &ex.stack[len(ex.stack)-1]
}

func (ex *extractor) scope() symbols.ScopeID {
	return ex.top().scope
}

func (ex *extractor) step() {
	t := ex.cur()

	// A procedure whose body does not open with BEGIN is a single statement.
	if ex.top().awaitBegin && t.Kind != token.KwBegin {
		ex.top().awaitBegin = false
		ex.top().singleStmt = true
	}

	switch t.Kind {
	case token.KwInteger, token.KwFloating, token.KwFixed, token.KwUnsigned:
		ex.parseNumberLike()
	case token.KwRecursive:
		ex.pos++
		if ex.cur().Kind == token.KwProcedure {
			ex.parseProcedure("", true, t)
		} else {
			ex.mismatch(t.Span, "RECURSIVE must introduce a procedure declaration")
			ex.skipToStatementEnd()
		}
	case token.KwProcedure:
		ex.parseProcedure("", false, t)
	case token.KwTable:
		ex.parseTable()
	case token.KwSwitch:
		ex.parseSwitch()
	case token.KwOverlay:
		ex.parseOverlay()
	case token.KwBegin:
		if ex.top().awaitBegin {
			ex.top().awaitBegin = false
			ex.top().beginDepth = 1
		} else {
			ex.top().beginDepth++
		}
		ex.parenDepth, ex.bracketDepth = 0, 0
		ex.pos++
	case token.KwEnd:
		ex.parenDepth, ex.bracketDepth = 0, 0
		ex.pos++
		if ex.top().beginDepth > 0 {
			ex.top().beginDepth--
			if ex.top().beginDepth == 0 && len(ex.stack) > 1 {
				ex.closeTop(t.Span.End)
			}
		}
	case token.Semicolon:
		ex.parenDepth, ex.bracketDepth = 0, 0
		if ex.top().singleStmt && len(ex.stack) > 1 {
			ex.closeTop(t.Span.End)
		}
		ex.pos++
	case token.Ident:
		ex.maybeLabel()
	case token.LParen:
		ex.parenDepth++
		ex.pos++
	case token.RParen:
		if ex.parenDepth > 0 {
			ex.parenDepth--
		}
		ex.pos++
	case token.LBracket:
		ex.bracketDepth++
		ex.pos++
	case token.RBracket:
		if ex.bracketDepth > 0 {
			ex.bracketDepth--
		}
		ex.pos++
	default:
		ex.pos++
	}
}

func (ex *extractor) closeTop(end uint32) {
	fr := ex.top()
	if sc := ex.table.Scopes.Get(fr.scope); sc != nil && end > sc.Span.End {
		sc.Span.End = end
	}
	ex.stack = ex.stack[:len(ex.stack)-1]
}

// mismatch reports an unrecognized or malformed declaration head.
func (ex *extractor) mismatch(sp source.Span, msg string) {
	ex.rep.Report(diag.SynPatternMismatch, diag.SevError, sp, msg)
}

// skipToStatementEnd advances to the next statement boundary without
// consuming it, so one malformed declaration never swallows its neighbors.
func (ex *extractor) skipToStatementEnd() {
	for {
		switch ex.cur().Kind {
		case token.Semicolon, token.KwBegin, token.KwEnd, token.EOF:
			return
		}
		ex.pos++
	}
}

// declare enters sym into scope and records the name token as a declaration
// site. On a duplicate the first declaration wins: the site maps to the
// winner and the redeclaration is diagnosed.
func (ex *extractor) declare(scope symbols.ScopeID, sym *symbols.Symbol, nameTok token.Token) symbols.SymbolID {
	id, err := ex.table.Declare(scope, sym)
	if err == symbols.ErrDuplicateSymbol {
		d := diag.NewError(diag.SemaDuplicateSymbol, nameTok.Span,
			"'"+symbols.Normalize(nameTok.Text)+"' is already declared in this scope")
		if first := ex.table.Symbols.Get(id); first != nil {
			d = d.WithNote(first.Span, "first declared here")
		}
		ex.rep.Report(d.Code, d.Severity, d.Primary, d.Message, d.Notes...)
	} else if err != nil {
		return symbols.NoSymbolID
	}
	ex.decls[nameTok.Span.Start] = id
	return id
}

// parseNumberType consumes a number-type descriptor:
// INTEGER | FLOATING | FIXED(t,f) | UNSIGNED(n). Returns the descriptor in
// canonical spelling, or ok=false with a diagnostic already reported.
func (ex *extractor) parseNumberType() (string, bool) {
	t := ex.cur()
	switch t.Kind {
	case token.KwInteger:
		ex.pos++
		return "INTEGER", true
	case token.KwFloating:
		ex.pos++
		return "FLOATING", true
	case token.KwFixed:
		ex.pos++
		total, frac := "", ""
		if !ex.eat(token.LParen) {
			ex.mismatch(t.Span, "FIXED requires (totalbits, fractionbits)")
			return "", false
		}
		total, _ = ex.eatSignedNumeral()
		if !ex.eat(token.Comma) {
			ex.mismatch(t.Span, "FIXED requires (totalbits, fractionbits)")
			return "", false
		}
		frac, _ = ex.eatSignedNumeral()
		if !ex.eat(token.RParen) {
			ex.mismatch(t.Span, "FIXED type is missing its closing parenthesis")
			return "", false
		}
		return "FIXED(" + total + "," + frac + ")", true
	case token.KwUnsigned:
		ex.pos++
		if !ex.eat(token.LParen) {
			ex.mismatch(t.Span, "UNSIGNED requires (bits)")
			return "", false
		}
		bits, _ := ex.eatSignedNumeral()
		if !ex.eat(token.RParen) {
			ex.mismatch(t.Span, "UNSIGNED type is missing its closing parenthesis")
			return "", false
		}
		return "UNSIGNED(" + bits + ")", true
	}
	return "", false
}

func (ex *extractor) eat(k token.Kind) bool {
	if ex.cur().Kind == k {
		ex.pos++
		return true
	}
	return false
}

func (ex *extractor) eatSignedNumeral() (string, bool) {
	text := ""
	if ex.cur().Kind == token.Minus {
		text = "-"
		ex.pos++
	}
	if ex.cur().Kind != token.Numeral {
		return text, false
	}
	text += ex.cur().Text
	ex.pos++
	return text, true
}

// parseNumberLike dispatches everything introduced by a number type:
// scalar declarations, arrays, and typed (function) procedures.
func (ex *extractor) parseNumberLike() {
	start := ex.cur()
	desc, ok := ex.parseNumberType()
	if !ok {
		ex.skipToStatementEnd()
		return
	}

	switch ex.cur().Kind {
	case token.KwArray:
		ex.parseArray(desc, start)
	case token.KwRecursive:
		ex.pos++
		if ex.cur().Kind == token.KwProcedure {
			ex.parseProcedure(desc, true, start)
		} else {
			ex.mismatch(start.Span, "RECURSIVE must introduce a procedure declaration")
			ex.skipToStatementEnd()
		}
	case token.KwProcedure:
		ex.parseProcedure(desc, false, start)
	case token.Ident:
		ex.parseScalarList(desc)
	default:
		ex.mismatch(start.Span, "expected identifier, ARRAY or PROCEDURE after number type")
		ex.skipToStatementEnd()
	}
}

// parseScalarList handles `type id [, id]* [:= expr]`. The preset expression
// is left in the stream for the reference pass.
func (ex *extractor) parseScalarList(desc string) {
	for {
		nameTok := ex.cur()
		ex.pos++
		ex.declare(ex.scope(), &symbols.Symbol{
			Name: nameTok.Text,
			Kind: symbols.SymbolVariable,
			Type: desc,
			Span: nameTok.Span,
			Doc:  docForNumber(desc),
		}, nameTok)
		if ex.cur().Kind != token.Comma {
			break
		}
		ex.pos++
		if ex.cur().Kind != token.Ident {
			ex.mismatch(ex.cur().Span, "expected identifier after comma in declaration list")
			ex.skipToStatementEnd()
			return
		}
	}
	if ex.cur().Kind == token.Assign {
		ex.skipToStatementEnd()
	}
}

// parseArray handles `<number-type> ARRAY id [, id]* [l:u (, l:u)*]`.
// Bound descriptors are stored verbatim; bounds are not evaluated.
func (ex *extractor) parseArray(desc string, start token.Token) {
	ex.pos++ // ARRAY
	var declared []symbols.SymbolID
	for {
		if ex.cur().Kind != token.Ident {
			ex.mismatch(start.Span, "expected array identifier after ARRAY")
			ex.skipToStatementEnd()
			return
		}
		nameTok := ex.cur()
		ex.pos++
		id := ex.declare(ex.scope(), &symbols.Symbol{
			Name: nameTok.Text,
			Kind: symbols.SymbolArray,
			Type: desc + " ARRAY",
			Span: nameTok.Span,
		}, nameTok)
		declared = append(declared, id)
		if ex.cur().Kind != token.Comma {
			break
		}
		ex.pos++
	}

	var dims []string
	if ex.cur().Kind == token.LBracket {
		ex.pos++
		dimStart := ex.cur().Span.Start
		depth := 0
		for {
			t := ex.cur()
			if t.Kind == token.EOF {
				ex.rep.Report(diag.SynUnclosedBracket, diag.SevError, start.Span,
					"array dimension list is missing its closing bracket")
				break
			}
			if t.Kind == token.LBracket {
				depth++
			}
			if (t.Kind == token.Comma && depth == 0) || (t.Kind == token.RBracket && depth == 0) {
				sp := source.Span{File: ex.file.ID, Start: dimStart, End: t.Span.Start}
				if text := strings.TrimSpace(ex.file.Text(sp)); text != "" {
					dims = append(dims, text)
				}
				ex.pos++
				if t.Kind == token.RBracket {
					break
				}
				dimStart = ex.cur().Span.Start
				continue
			}
			if t.Kind == token.RBracket {
				depth--
			}
			ex.pos++
		}
	}

	for _, id := range declared {
		if sym := ex.table.Symbols.Get(id); sym != nil {
			sym.Dims = dims
			sym.Doc = desc + " array with dimensions [" + strings.Join(dims, ", ") + "]"
		}
	}
	if ex.cur().Kind == token.Assign {
		ex.skipToStatementEnd()
	}
}

// parseProcedure handles both procedures and functions (a return-type prefix
// makes it a function). The procedure's scope opens at the declaration head
// and closes with its body.
func (ex *extractor) parseProcedure(returnType string, recursive bool, start token.Token) {
	ex.pos++ // PROCEDURE
	if ex.cur().Kind != token.Ident {
		ex.mismatch(start.Span, "expected procedure identifier after PROCEDURE")
		ex.skipToStatementEnd()
		return
	}
	nameTok := ex.cur()
	ex.pos++

	kind := symbols.SymbolProcedure
	typeStr := "PROCEDURE"
	if returnType != "" {
		kind = symbols.SymbolFunction
		typeStr = returnType + " PROCEDURE"
	}
	if recursive {
		typeStr = "RECURSIVE " + typeStr
	}

	bodyScope := ex.table.OpenScope(symbols.ScopeProcedure, nameTok.Text, ex.scope(),
		source.Span{File: ex.file.ID, Start: start.Span.Start, End: nameTok.Span.End})

	doc := typeStr + " - no return value"
	if returnType != "" {
		doc = typeStr + " - returns " + returnType
	}
	procID := ex.declare(ex.scope(), &symbols.Symbol{
		Name:      nameTok.Text,
		Kind:      kind,
		Type:      typeStr,
		Span:      nameTok.Span,
		Doc:       doc,
		Result:    returnType,
		Recursive: recursive,
		Body:      bodyScope,
	}, nameTok)

	if ex.cur().Kind == token.LParen {
		params := ex.parseParameterList(bodyScope, nameTok.Text)
		if sym := ex.table.Symbols.Get(procID); sym != nil {
			sym.Params = params
		}
	}

	if !ex.eat(token.Semicolon) {
		ex.mismatch(nameTok.Span, "procedure heading is missing its terminating semicolon")
		ex.skipToStatementEnd()
		ex.eat(token.Semicolon)
	}

	ex.stack = append(ex.stack, frame{scope: bodyScope, awaitBegin: true})
}

// parseParameterList consumes `( (VALUE|LOCATION) type : id[,id]* ; ... )`.
// The colon inside a group belongs to the parameter syntax; label detection
// is disabled here by construction, since the whole list is consumed inline.
func (ex *extractor) parseParameterList(bodyScope symbols.ScopeID, procName string) []symbols.SymbolID {
	open := ex.cur()
	ex.pos++ // (
	var params []symbols.SymbolID
	for {
		t := ex.cur()
		if t.Kind == token.RParen {
			ex.pos++
			return params
		}
		if t.Kind == token.EOF || t.Kind == token.KwBegin || t.Kind == token.KwEnd {
			ex.rep.Report(diag.SynUnclosedParen, diag.SevError, open.Span,
				"parameter list is missing its closing parenthesis")
			return params
		}

		mode := ""
		switch t.Kind {
		case token.KwValue:
			mode = "VALUE"
			ex.pos++
		case token.KwLocation:
			mode = "LOCATION"
			ex.pos++
		default:
			ex.mismatch(t.Span, "expected VALUE or LOCATION parameter mode")
			ex.skipToParamBoundary()
			continue
		}

		desc, ok := ex.parseNumberType()
		if !ok {
			ex.mismatch(t.Span, "expected number type after "+mode)
			ex.skipToParamBoundary()
			continue
		}
		if !ex.eat(token.Colon) {
			ex.mismatch(t.Span, "expected ':' before parameter identifiers")
			ex.skipToParamBoundary()
			continue
		}
		for {
			if ex.cur().Kind != token.Ident {
				ex.mismatch(ex.cur().Span, "expected parameter identifier")
				break
			}
			nameTok := ex.cur()
			ex.pos++
			id := ex.declare(bodyScope, &symbols.Symbol{
				Name: nameTok.Text,
				Kind: symbols.SymbolParameter,
				Type: desc,
				Span: nameTok.Span,
				Doc:  "Parameter of " + symbols.Normalize(procName),
				Mode: mode,
			}, nameTok)
			params = append(params, id)
			if ex.cur().Kind != token.Comma {
				break
			}
			ex.pos++
		}
		if ex.cur().Kind == token.Semicolon {
			ex.pos++ // next parameter group
		}
	}
}

func (ex *extractor) skipToParamBoundary() {
	for {
		switch ex.cur().Kind {
		case token.Semicolon:
			ex.pos++
			return
		case token.RParen, token.EOF, token.KwBegin, token.KwEnd:
			return
		}
		ex.pos++
	}
}

// parseTable handles `TABLE id [width, length] [ name type wordpos[,bitpos]; ... ]`.
// Elements live in the table's own scope, reachable only by qualified lookup.
func (ex *extractor) parseTable() {
	start := ex.cur()
	ex.pos++ // TABLE
	if ex.cur().Kind != token.Ident {
		ex.mismatch(start.Span, "expected table identifier after TABLE")
		ex.skipToStatementEnd()
		return
	}
	nameTok := ex.cur()
	ex.pos++

	width, length := "", ""
	if ex.eat(token.LBracket) {
		width, _ = ex.eatSignedNumeral()
		if !ex.eat(token.Comma) {
			ex.mismatch(nameTok.Span, "table size requires [width, length]")
		}
		length, _ = ex.eatSignedNumeral()
		if !ex.eat(token.RBracket) {
			ex.rep.Report(diag.SynUnclosedBracket, diag.SevError, nameTok.Span,
				"table size is missing its closing bracket")
		}
	}

	bodyScope := ex.table.OpenScope(symbols.ScopeTable, nameTok.Text, ex.scope(),
		source.Span{File: ex.file.ID, Start: start.Span.Start, End: nameTok.Span.End})
	tableID := ex.declare(ex.scope(), &symbols.Symbol{
		Name:   nameTok.Text,
		Kind:   symbols.SymbolTable,
		Type:   "TABLE[" + width + "," + length + "]",
		Span:   nameTok.Span,
		Doc:    "Table with width " + width + ", length " + length,
		Width:  width,
		Length: length,
		Body:   bodyScope,
	}, nameTok)

	end := nameTok.Span.End
	var elements []symbols.SymbolID
	if ex.cur().Kind == token.LBracket {
		ex.pos++
		for {
			t := ex.cur()
			if t.Kind == token.RBracket {
				end = t.Span.End
				ex.pos++
				break
			}
			if t.Kind == token.EOF {
				ex.rep.Report(diag.SynUnclosedBracket, diag.SevError, start.Span,
					"table body is missing its closing bracket")
				end = t.Span.End
				break
			}
			if t.Kind == token.Semicolon {
				ex.pos++
				continue
			}
			if id, ok := ex.parseTableElement(bodyScope, nameTok.Text); ok {
				elements = append(elements, id)
			}
		}
	}

	if sc := ex.table.Scopes.Get(bodyScope); sc != nil {
		sc.Span.End = end
	}
	if sym := ex.table.Symbols.Get(tableID); sym != nil {
		sym.Elements = elements
		sym.Span = source.Span{File: ex.file.ID, Start: nameTok.Span.Start, End: nameTok.Span.End}
	}
}

// parseTableElement consumes one `name type wordpos[,bitpos]` entry. Element
// names may collide with keywords (VALUE is a popular element name), so any
// word token is accepted in name position.
func (ex *extractor) parseTableElement(bodyScope symbols.ScopeID, tableName string) (symbols.SymbolID, bool) {
	nameTok := ex.cur()
	if nameTok.Kind != token.Ident && !nameTok.IsKeyword() {
		ex.mismatch(nameTok.Span, "expected element identifier in table body")
		ex.skipToElementBoundary()
		return symbols.NoSymbolID, false
	}
	ex.pos++

	desc, ok := ex.parseNumberType()
	if !ok {
		ex.mismatch(nameTok.Span, "expected element number type after '"+nameTok.Text+"'")
		ex.skipToElementBoundary()
		return symbols.NoSymbolID, false
	}

	// Word position, optional bit position. Values are not evaluated here.
	ex.eatSignedNumeral()
	if ex.cur().Kind == token.Comma {
		ex.pos++
		ex.eatSignedNumeral()
	}

	id := ex.declare(bodyScope, &symbols.Symbol{
		Name: nameTok.Text,
		Kind: symbols.SymbolElement,
		Type: desc,
		Span: nameTok.Span,
		Doc:  "Element of TABLE " + symbols.Normalize(tableName),
	}, nameTok)
	return id, true
}

func (ex *extractor) skipToElementBoundary() {
	for {
		switch ex.cur().Kind {
		case token.Semicolon, token.RBracket, token.EOF:
			return
		}
		ex.pos++
	}
}

// parseSwitch handles `SWITCH id := label[, label]*`. Targets are recorded
// by name only; labels may legally be declared later in the same scope, so
// binding is deferred to the reference pass.
func (ex *extractor) parseSwitch() {
	start := ex.cur()
	ex.pos++ // SWITCH
	if ex.cur().Kind != token.Ident {
		ex.mismatch(start.Span, "expected switch identifier after SWITCH")
		ex.skipToStatementEnd()
		return
	}
	nameTok := ex.cur()
	ex.pos++
	if !ex.eat(token.Assign) {
		ex.mismatch(nameTok.Span, "switch declaration requires ':=' and a label list")
		ex.skipToStatementEnd()
		return
	}

	var targets []string
	for ex.cur().Kind == token.Ident {
		targets = append(targets, symbols.Normalize(ex.cur().Text))
		ex.pos++
		if ex.cur().Kind != token.Comma {
			break
		}
		ex.pos++
	}

	ex.declare(ex.scope(), &symbols.Symbol{
		Name:    nameTok.Text,
		Kind:    symbols.SymbolSwitch,
		Type:    "SWITCH",
		Span:    nameTok.Span,
		Doc:     "Switch with labels: " + strings.Join(targets, ", "),
		Targets: targets,
	}, nameTok)
}

// parseOverlay handles `OVERLAY base WITH ...`. The base identifier is a
// reference to existing storage, not a fresh name; the declaration that
// follows WITH declares its own names and is handled by the main loop.
func (ex *extractor) parseOverlay() {
	start := ex.cur()
	ex.pos++ // OVERLAY
	if ex.cur().Kind != token.Ident {
		ex.mismatch(start.Span, "expected base identifier after OVERLAY")
		ex.skipToStatementEnd()
		return
	}
	baseTok := ex.cur()
	ex.pos++

	// Optional part-location selector on the base, e.g. base[3].
	if ex.cur().Kind == token.LBracket {
		depth := 1
		ex.pos++
		for depth > 0 && ex.cur().Kind != token.EOF {
			switch ex.cur().Kind {
			case token.LBracket:
				depth++
			case token.RBracket:
				depth--
			}
			ex.pos++
		}
	}

	end := baseTok.Span.End
	if ex.cur().Kind == token.KwWith {
		end = ex.cur().Span.End
		ex.pos++
	} else {
		ex.mismatch(baseTok.Span, "OVERLAY requires WITH and an overlaid declaration")
	}

	ex.table.Attach(ex.scope(), &symbols.Symbol{
		Name: baseTok.Text,
		Kind: symbols.SymbolOverlay,
		Type: "OVERLAY",
		Span: source.Span{File: ex.file.ID, Start: start.Span.Start, End: end},
		Doc:  "Overlay on " + symbols.Normalize(baseTok.Text),
		Base: symbols.Normalize(baseTok.Text),
	})
}

// maybeLabel decides whether `ident :` declares a label. The colon must not
// have been fused into ':=' by the lexer, and the extractor must not be
// inside an open paren/bracket context, where a colon belongs to parameter
// or bound syntax instead.
func (ex *extractor) maybeLabel() {
	t := ex.cur()
	if ex.peek(1).Kind != token.Colon {
		ex.pos++
		return
	}
	if ex.parenDepth > 0 || ex.bracketDepth > 0 {
		ex.rep.Report(diag.SemaAmbiguousContext, diag.SevWarning, t.Span,
			"colon after '"+t.Text+"' inside an open bracket context; not treated as a label")
		ex.pos++
		return
	}
	ex.declare(ex.scope(), &symbols.Symbol{
		Name: t.Text,
		Kind: symbols.SymbolLabel,
		Type: "LABEL",
		Span: t.Span,
		Doc:  "Label",
	}, t)
	ex.pos += 2 // identifier and colon
}

func docForNumber(desc string) string {
	if strings.HasPrefix(desc, "FIXED(") {
		inner := strings.TrimSuffix(strings.TrimPrefix(desc, "FIXED("), ")")
		if total, frac, ok := strings.Cut(inner, ","); ok {
			return "Fixed-point variable: " + total + " total bits, " + frac + " fraction bits"
		}
	}
	if strings.HasPrefix(desc, "UNSIGNED(") {
		inner := strings.TrimSuffix(strings.TrimPrefix(desc, "UNSIGNED("), ")")
		return "Unsigned variable: " + inner + " bits"
	}
	return desc + " variable"
}
