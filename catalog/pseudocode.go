package catalog

// Pseudocode mode groups cover the pseudocode.js grammar:
//
//	\begin{algorithm} ( <caption> | <algorithmic> )* \end{algorithm}
//	\begin{algorithmic} ( <ensure> | <require> | <block> )* \end{algorithmic}

var pseudocodeInterface = Group{
	Mode:     ModePseudocode,
	Category: "interface",
	Shape:    ShapeBare,
	Arity:    0,
	Names:    []string{"REQUIRE", "ENSURE", "INPUT", "OUTPUT"},
}

var pseudocodeStatements = Group{
	Mode:     ModePseudocode,
	Category: "statement",
	Shape:    ShapeBare,
	Arity:    0,
	Names:    []string{"STATE", "RETURN", "PRINT"},
}

var pseudocodeCommands = Group{
	Mode:     ModePseudocode,
	Category: "commands",
	Shape:    ShapeBare,
	Arity:    0,
	Names:    []string{"BREAK", "CONTINUE"},
}

var pseudocodeSymbols = Group{
	Mode:     ModePseudocode,
	Category: "symbols",
	Shape:    ShapeBare,
	Arity:    0,
	Names: []string{
		"AND", "OR", "NOT",
		"TRUE", "FALSE",
		"TO", "DOWNTO",
		"textbackslash",
	},
}

var pseudocodeSizes = Group{
	Mode:     ModePseudocode,
	Category: "size",
	Shape:    ShapeBare,
	Arity:    0,
	Names: []string{
		"tiny", "scriptsize", "footnotesize", "small", "normalsize",
		"large", "Large", "LARGE", "huge", "HUGE",
	},
}

var pseudocodeFonts = Group{
	Mode:     ModePseudocode,
	Category: "font",
	Shape:    ShapeBare,
	Arity:    0,
	Names: []string{
		"rmfamily", "sffamily", "ttfamily",
		"upshape", "itshape", "slshape", "scshape",
	},
}

// \caption{<text>}
var pseudocodeCaption = Group{
	Mode:     ModePseudocode,
	Category: "caption",
	Shape:    ShapeArgs,
	Arity:    1,
	Names:    []string{"caption"},
}

// \COMMENT{<text>}
var pseudocodeComment = Group{
	Mode:     ModePseudocode,
	Category: "comment",
	Shape:    ShapeArgs,
	Arity:    1,
	Names:    []string{"COMMENT"},
}

// \IF{<cond>} <block> \ENDIF
var pseudocodeControl = Group{
	Mode:     ModePseudocode,
	Category: "control",
	Shape:    ShapeBlock,
	Arity:    2,
	Names:    []string{"IF", "FOR", "WHILE"},
}

// \ELSEIF{<cond>} <block>
var pseudocodeElseIf = Group{
	Mode:     ModePseudocode,
	Category: "control",
	Shape:    ShapeContinuation,
	Arity:    2,
	Names:    []string{"ELSEIF"},
}

// \REPEAT <block> \UNTIL{<cond>}
var pseudocodeRepeat = Group{
	Mode:     ModePseudocode,
	Category: "control",
	Shape:    ShapeRepeatUntil,
	Arity:    2,
	Names:    []string{"REPEAT"},
}

// \CALL{<name>}{<args>}
var pseudocodeCall = Group{
	Mode:     ModePseudocode,
	Category: "call",
	Shape:    ShapeArgs,
	Arity:    2,
	Names:    []string{"CALL"},
}

// \FUNCTION{<name>}{<params>} <block> \ENDFUNCTION
var pseudocodeSnippets = Group{
	Mode:     ModePseudocode,
	Category: "snippet",
	Shape:    ShapeBlock,
	Arity:    3,
	Names:    []string{"FUNCTION", "PROCEDURE"},
}

// \IF{<cond>} <block> \else <block> \ENDIF
var pseudocodeIfElse = Group{
	Mode:     ModePseudocode,
	Category: "control",
	Shape:    ShapeIfElse,
	Arity:    3,
	Names:    []string{"IFELSE"},
}

var pseudocodeEnvironments = Group{
	Mode:     ModePseudocode,
	Category: "environments",
	Shape:    ShapeEnvironment,
	Arity:    2,
	Names:    []string{"algorithm", "algorithmic"},
}

var pseudocodeGroups = []Group{
	pseudocodeInterface,
	pseudocodeStatements,
	pseudocodeCommands,
	pseudocodeSymbols,
	pseudocodeSizes,
	pseudocodeFonts,
	pseudocodeCaption,
	pseudocodeComment,
	pseudocodeControl,
	pseudocodeElseIf,
	pseudocodeRepeat,
	pseudocodeCall,
	pseudocodeSnippets,
	pseudocodeIfElse,
	pseudocodeEnvironments,
}
