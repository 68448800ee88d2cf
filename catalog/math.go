package catalog

// Math mode groups follow the layout of the KaTeX support table, one row per
// table line, so that a diff against the upstream table stays readable.

var mathArrows = Group{
	Mode:     ModeMath,
	Category: "arrows",
	Shape:    ShapeBare,
	Arity:    0,
	Names: []string{
		"circlearrowleft", "leftharpoonup", "rArr",
		"circlearrowright", "leftleftarrows", "rarr",
		"curvearrowleft", "leftrightarrow", "restriction",
		"curvearrowright", "Leftrightarrow", "rightarrow",
		"Darr", "leftrightarrows", "Rightarrow",
		"dArr", "leftrightharpoons", "rightarrowtail",
		"darr", "leftrightsquigarrow", "rightharpoondown",
		"dashleftarrow", "Lleftarrow", "rightharpoonup",
		"dashrightarrow", "longleftarrow", "rightleftarrows",
		"downarrow", "Longleftarrow", "rightleftharpoons",
		"Downarrow", "longleftrightarrow", "rightrightarrows",
		"downdownarrows", "Longleftrightarrow", "rightsquigarrow",
		"downharpoonleft", "longmapsto", "Rrightarrow",
		"downharpoonright", "longrightarrow", "Rsh",
		"gets", "Longrightarrow", "searrow",
		"Harr", "looparrowleft", "swarrow",
		"hArr", "looparrowright", "to",
		"harr", "Lrarr", "twoheadleftarrow",
		"hookleftarrow", "lrArr", "twoheadrightarrow",
		"hookrightarrow", "lrarr", "Uarr",
		"iff", "Lsh", "uArr",
		"impliedby", "mapsto", "uarr",
		"implies", "nearrow", "uparrow",
		"Larr", "nleftarrow", "Uparrow",
		"lArr", "nLeftarrow", "updownarrow",
		"larr", "nleftrightarrow", "Updownarrow",
		"leadsto", "nLeftrightarrow", "upharpoonleft",
		"leftarrow", "nrightarrow", "upharpoonright",
		"Leftarrow", "nRightarrow", "upuparrows",
		"leftarrowtail", "nwarrow", "leftharpoondown", "Rarr",
	},
}

var mathBigOperators = Group{
	Mode:     ModeMath,
	Category: "big operators",
	Shape:    ShapeBare,
	Arity:    0,
	Names: []string{
		"sum", "prod", "bigotimes", "bigvee",
		"int", "coprod", "bigoplus", "bigwedge",
		"iint", "intop", "bigodot", "bigcap",
		"iiint", "smallint", "biguplus", "bigcup",
		"oint", "oiint", "oiiint", "bigsqcup",
	},
}

var mathBinaryOperators = Group{
	Mode:     ModeMath,
	Category: "binary operators",
	Shape:    ShapeBare,
	Arity:    0,
	Names: []string{
		"cdot", "gtrdot", "pmod",
		"cdotp", "intercal", "pod",
		"centerdot", "land", "rhd",
		"circ", "leftthreetimes", "rightthreetimes",
		"amalg", "circledast", "ldotp", "rtimes",
		"And", "circledcirc", "lor", "setminus",
		"ast", "circleddash", "lessdot", "smallsetminus",
		"barwedge", "Cup", "lhd", "sqcap",
		"bigcirc", "cup", "ltimes", "sqcup",
		"bmod", "curlyvee", "times",
		"boxdot", "curlywedge", "mp", "unlhd",
		"boxminus", "div", "odot", "unrhd",
		"boxplus", "divideontimes", "ominus", "uplus",
		"boxtimes", "dotplus", "oplus", "vee",
		"bullet", "doublebarwedge", "otimes", "veebar",
		"Cap", "doublecap", "oslash", "wedge",
		"cap", "doublecup", "pm", "plusmn", "wr",
	},
}

var mathBinomialInfix = Group{
	Mode:     ModeMath,
	Category: "binomial coefficients",
	Shape:    ShapeBare,
	Arity:    0,
	Names: []string{
		"choose",
	},
}

var mathDebugging = Group{
	Mode:     ModeMath,
	Category: "debugging",
	Shape:    ShapeBare,
	Arity:    0,
	Names: []string{
		"message", "errmessage", "show",
	},
}

var mathDelimiterSizing = Group{
	Mode:     ModeMath,
	Category: "delimiter sizing",
	Shape:    ShapeBare,
	Arity:    0,
	Names: []string{
		"left", "big", "bigl", "bigm", "bigr",
		"middle", "Big", "Bigl", "Bigm", "Bigr",
		"right", "bigg", "biggl", "biggm", "biggr",
		"Bigg", "Biggl", "Biggm", "Biggr",
	},
}

var mathDelimiters = Group{
	Mode:     ModeMath,
	Category: "delimiters",
	Shape:    ShapeBare,
	Arity:    0,
	Names: []string{
		"lparen", "rparen", "lceil", "rceil", "uparrow",
		"lbrack", "rbrack", "lfloor", "rfloor", "downarrow",
		"lbrace", "rbrace", "lmoustache", "rmoustache", "updownarrow",
		"langle", "rangle", "lgroup", "rgroup", "Uparrow",
		"vert", "ulcorner", "urcorner", "Downarrow",
		"Vert", "llcorner", "lrcorner", "Updownarrow",
		"lvert", "rvert", "lVert", "rVert", "backslash",
		"lang", "rang", "lt", "gt", "llbracket", "rrbracket", "lBrace", "rBrace",
	},
}

var mathFractionInfix = Group{
	Mode:     ModeMath,
	Category: "fractions",
	Shape:    ShapeBare,
	Arity:    0,
	Names: []string{
		"over", "above",
	},
}

var mathFontSwitches = Group{
	Mode:     ModeMath,
	Category: "font",
	Shape:    ShapeBare,
	Arity:    0,
	Names: []string{
		"rm", "bf", "it", "sf", "tt",
	},
}

var mathGreekLetters = Group{
	Mode:     ModeMath,
	Category: "greek letters",
	Shape:    ShapeBare,
	Arity:    0,
	Names: []string{
		"Alpha", "Beta", "Gamma", "Delta",
		"Epsilon", "Zeta", "Eta", "Theta",
		"Iota", "Kappa", "Lambda", "Mu",
		"Nu", "Xi", "Omicron", "Pi",
		"Rho", "Sigma", "Tau", "Upsilon",
		"Phi", "Chi", "Psi", "Omega",
		"varGamma", "varDelta", "varTheta", "varLambda",
		"varXi", "varPi", "varSigma", "varUpsilon",
		"varPhi", "varPsi", "varOmega",
		"alpha", "beta", "gamma", "delta",
		"epsilon", "zeta", "eta", "theta",
		"iota", "kappa", "lambda", "mu",
		"nu", "xi", "omicron", "pi",
		"rho", "sigma", "tau", "upsilon",
		"phi", "chi", "psi", "omega",
		"varepsilon", "varkappa", "vartheta", "thetasym",
		"varpi", "varrho", "varsigma", "varphi",
		"digamma",
	},
}

var mathLogic = Group{
	Mode:     ModeMath,
	Category: "logic and set theory",
	Shape:    ShapeBare,
	Arity:    0,
	Names: []string{
		"forall", "complement", "therefore", "emptyset",
		"exists", "subset", "because", "empty",
		"exist", "supset", "mapsto", "varnothing",
		"nexists", "mid", "to", "implies",
		"in", "land", "gets", "impliedby",
		"isin", "lor", "leftrightarrow", "iff",
		"notin", "ni", "notni", "neg", "lnot",
	},
}

var mathMacroPrimitives = Group{
	Mode:     ModeMath,
	Category: "macros",
	Shape:    ShapeBare,
	Arity:    0,
	Names: []string{
		"def", "gdef", "edef", "xdef", "let", "futurelet", "global",
		"newcommand", "renewcommand", "providecommand",
		"long", "char", "mathchoice", "TextOrMath",
		"@ifstar", "@ifnextchar", "@firstoftwo", "@secondoftwo",
		"relax", "expandafter", "noexpand",
	},
}

var mathFunctions = Group{
	Mode:     ModeMath,
	Category: "math operators",
	Shape:    ShapeBare,
	Arity:    0,
	Names: []string{
		"arcsin", "cosec", "deg", "sec",
		"arccos", "cosh", "dim", "sin",
		"arctan", "cot", "exp", "sinh",
		"arctg", "cotg", "hom", "sh",
		"arcctg", "coth", "ker", "tan",
		"arg", "csc", "lg", "tanh",
		"ch", "ctg", "ln", "tg",
		"cos", "cth", "log", "th",
		"argmax", "injlim", "min", "varinjlim",
		"argmin", "lim", "plim", "varliminf",
		"det", "liminf", "Pr", "varlimsup",
		"gcd", "limsup", "projlim", "varprojlim",
		"inf", "max", "sup",
	},
}

var mathNegatedRelations = Group{
	Mode:     ModeMath,
	Category: "negated relations",
	Shape:    ShapeBare,
	Arity:    0,
	Names: []string{
		"gnapprox", "ngeqslant", "nsubseteq", "precneqq",
		"gneq", "ngtr", "nsubseteqq", "precnsim",
		"gneqq", "nleq", "nsucc", "subsetneq",
		"gnsim", "nleqq", "nsucceq", "subsetneqq",
		"gvertneqq", "nleqslant", "nsupseteq", "succnapprox",
		"lnapprox", "nless", "nsupseteqq", "succneqq",
		"lneq", "nmid", "ntriangleleft", "succnsim",
		"lneqq", "notin", "ntrianglelefteq", "supsetneq",
		"lnsim", "notni", "ntriangleright", "supsetneqq",
		"lvertneqq", "nparallel", "ntrianglerighteq", "varsubsetneq",
		"ncong", "nprec", "nvdash", "varsubsetneqq",
		"ne", "npreceq", "nvDash", "varsupsetneq",
		"neq", "nshortmid", "nVDash", "varsupsetneqq",
		"ngeq", "nshortparallel", "nVdash",
		"ngeqq", "nsim", "precnapprox",
	},
}

var mathOtherLetters = Group{
	Mode:     ModeMath,
	Category: "other letters",
	Shape:    ShapeBare,
	Arity:    0,
	Names: []string{
		"imath", "nabla", "Im", "Reals",
		"jmath", "partial", "image", "wp",
		"aleph", "Game", "Bbbk", "weierp",
		"alef", "Finv", "N", "Z",
		"alefsym", "cnums", "natnums",
		"beth", "Complex", "R",
		"gimel", "ell", "Re",
		"daleth", "hbar", "real",
		"eth", "hslash", "reals",
	},
}

var mathRelations = Group{
	Mode:     ModeMath,
	Category: "relations",
	Shape:    ShapeBare,
	Arity:    0,
	Names: []string{
		"doteqdot", "lessapprox", "smile",
		"eqcirc", "lesseqgtr", "sqsubset",
		"eqcolon", "minuscolon", "lesseqqgtr", "sqsubseteq",
		"Eqcolon", "minuscoloncolon", "lessgtr", "sqsupset",
		"approx", "eqqcolon", "equalscolon", "lesssim", "sqsupseteq",
		"approxcolon", "Eqqcolon", "equalscoloncolon", "ll", "Subset",
		"approxcoloncolon", "eqsim", "lll", "subset", "sub",
		"approxeq", "eqslantgtr", "llless", "subseteq", "sube",
		"asymp", "eqslantless", "lt", "subseteqq",
		"backepsilon", "equiv", "mid", "succ",
		"backsim", "fallingdotseq", "models", "succapprox",
		"backsimeq", "frown", "multimap", "succcurlyeq",
		"between", "ge", "origof", "succeq",
		"bowtie", "geq", "owns", "succsim",
		"bumpeq", "geqq", "parallel", "Supset",
		"Bumpeq", "geqslant", "perp", "supset",
		"circeq", "gg", "pitchfork", "supseteq", "supe",
		"colonapprox", "ggg", "prec", "supseteqq",
		"Colonapprox", "coloncolonapprox", "gggtr", "precapprox", "thickapprox",
		"coloneq", "colonminus", "gt", "preccurlyeq", "thicksim",
		"Coloneq", "coloncolonminus", "gtrapprox", "preceq", "trianglelefteq",
		"coloneqq", "colonequals", "gtreqless", "precsim", "triangleq",
		"Coloneqq", "coloncolonequals", "gtreqqless", "propto", "trianglerighteq",
		"colonsim", "gtrless", "risingdotseq", "varpropto",
		"Colonsim", "coloncolonsim", "gtrsim", "shortmid", "vartriangle",
		"cong", "imageof", "shortparallel", "vartriangleleft",
		"curlyeqprec", "in", "isin", "sim", "vartriangleright",
		"curlyeqsucc", "Join", "simcolon", "vcentcolon", "ratio",
		"dashv", "le", "simcoloncolon", "vdash",
		"dblcolon", "coloncolon", "leq", "simeq", "vDash",
		"doteq", "leqq", "smallfrown", "Vdash",
		"Doteq", "leqslant", "smallsmile", "Vvdash",
	},
}

var mathSizes = Group{
	Mode:     ModeMath,
	Category: "size",
	Shape:    ShapeBare,
	Arity:    0,
	Names: []string{
		"Huge", "huge", "LARGE", "Large", "large",
		"normalsize", "small", "footnotesize", "scriptsize", "tiny",
	},
}

var mathSpaces = Group{
	Mode:     ModeMath,
	Category: "spacing",
	Shape:    ShapeBare,
	Arity:    0,
	Names: []string{
		"thinspace", "medspace", "thickspace", "enspace",
		"quad", "qquad", "negthinspace", "negmedspace",
		"nobreakspace", "negthickspace", "space", "mathstrut",
	},
}

var mathStyles = Group{
	Mode:     ModeMath,
	Category: "style",
	Shape:    ShapeBare,
	Arity:    0,
	Names: []string{
		"displaystyle", "textstyle", "scriptstyle", "scriptscriptstyle",
		"limits", "nolimits", "verb",
	},
}

var mathSymbols = Group{
	Mode:     ModeMath,
	Category: "symbols and punctuation",
	Shape:    ShapeBare,
	Arity:    0,
	Names: []string{
		"cdots", "LaTeX",
		"ddots", "TeX",
		"ldots", "nabla",
		"vdots", "infty",
		"dotsb", "infin",
		"dotsc", "checkmark",
		"dotsi", "dag",
		"dotsm", "dagger",
		"dotso",
		"sdot", "ddag",
		"mathellipsis", "ddagger",
		"Box", "Dagger",
		"lq", "square", "angle",
		"blacksquare", "measuredangle",
		"rq", "triangle", "sphericalangle",
		"triangledown", "top",
		"triangleleft", "bot",
		"triangleright",
		"colon", "bigtriangledown",
		"backprime", "bigtriangleup", "pounds",
		"prime", "blacktriangle", "mathsterling",
		"blacktriangledown",
		"blacktriangleleft", "yen",
		"blacktriangleright", "surd",
		"diamond", "degree",
		"Diamond",
		"lozenge", "mho",
		"blacklozenge", "diagdown",
		"star", "diagup",
		"bigstar", "flat",
		"clubsuit", "natural",
		"copyright", "clubs", "sharp",
		"circledR", "diamondsuit", "heartsuit",
		"diamonds", "hearts",
		"circledS", "spadesuit", "spades",
		"maltese", "minuso",
	},
}

var mathAtop = Group{
	Mode:     ModeMath,
	Category: "vertical layout",
	Shape:    ShapeBare,
	Arity:    0,
	Names: []string{
		"atop",
	},
}

var mathAccents = Group{
	Mode:     ModeMath,
	Category: "accents",
	Shape:    ShapeArgs,
	Arity:    1,
	Names: []string{
		"tilde", "mathring",
		"widetilde", "overgroup",
		"utilde", "undergroup",
		"acute", "vec", "Overrightarrow",
		"bar", "overleftarrow", "overrightarrow",
		"breve", "underleftarrow", "underrightarrow",
		"check", "overleftharpoon", "overrightharpoon",
		"dot", "overleftrightarrow", "overbrace",
		"ddot", "underleftrightarrow", "underbrace",
		"grave", "overline", "overlinesegment",
		"hat", "underline", "underlinesegment",
		"widehat", "widecheck", "underbar",
	},
}

var mathAnnotations = Group{
	Mode:     ModeMath,
	Category: "annotation",
	Shape:    ShapeArgs,
	Arity:    1,
	Names: []string{
		"cancel", "overbrace",
		"bcancel", "underbrace",
		"xcancel", "not =",
		"sout", "boxed",
		"phase",
		"tag", "tag*",
	},
}

var mathBraket = Group{
	Mode:     ModeMath,
	Category: "braket notation",
	Shape:    ShapeArgs,
	Arity:    1,
	Names: []string{
		"bra", "Bra", "ket", "Ket", "braket",
	},
}

var mathClassAssignment = Group{
	Mode:     ModeMath,
	Category: "class assignment",
	Shape:    ShapeArgs,
	Arity:    1,
	Names: []string{
		"mathbin", "mathclose", "mathinner", "mathop",
		"mathopen", "mathord", "mathpunct", "mathrel",
	},
}

var mathFonts = Group{
	Mode:     ModeMath,
	Category: "font",
	Shape:    ShapeArgs,
	Arity:    1,
	Names: []string{
		"mathrm", "mathbf", "mathit",
		"mathnormal", "textbf", "textit",
		"textrm", "bold", "Bbb",
		"textnormal", "boldsymbol", "mathbb",
		"text", "bm", "frak",
		"mathsf", "mathtt", "mathfrak",
		"textsf", "texttt", "mathcal", "mathscr",
		"pmb",
	},
}

var mathExtensibleArrows = Group{
	Mode:     ModeMath,
	Category: "extensible arrows",
	Shape:    ShapeArgs,
	Arity:    1,
	Names: []string{
		"xleftarrow", "xrightarrow",
		"xLeftarrow", "xRightarrow",
		"xleftrightarrow", "xLeftrightarrow",
		"xhookleftarrow", "xhookrightarrow",
		"xtwoheadleftarrow", "xtwoheadrightarrow",
		"xleftharpoonup", "xrightharpoonup",
		"xleftharpoondown", "xrightharpoondown",
		"xleftrightharpoons", "xrightleftharpoons",
		"xtofrom", "xmapsto",
		"xlongequal",
	},
}

var mathOperatorNames = Group{
	Mode:     ModeMath,
	Category: "math operators",
	Shape:    ShapeArgs,
	Arity:    1,
	Names: []string{
		"operatorname", "operatorname*", "operatornamewithlimits",
	},
}

var mathOverlap = Group{
	Mode:     ModeMath,
	Category: "overlap",
	Shape:    ShapeArgs,
	Arity:    1,
	Names: []string{
		"mathllap", "mathrlap", "mathclap", "llap", "rlap", "clap", "smash",
	},
}

var mathSpacingCommands = Group{
	Mode:     ModeMath,
	Category: "spacing",
	Shape:    ShapeArgs,
	Arity:    1,
	Names: []string{
		"kern", "mkern", "mskip", "hskip",
		"hspace", "hspace*", "phantom", "hphantom", "vphantom",
	},
}

var mathSqrt = Group{
	Mode:     ModeMath,
	Category: "sqrt",
	Shape:    ShapeArgs,
	Arity:    1,
	Names: []string{
		"sqrt",
	},
}

var mathSubstack = Group{
	Mode:     ModeMath,
	Category: "vertical layout",
	Shape:    ShapeArgs,
	Arity:    1,
	Names: []string{
		"substack",
	},
}

var mathBinomials = Group{
	Mode:     ModeMath,
	Category: "binomial coefficients",
	Shape:    ShapeArgs,
	Arity:    2,
	Names: []string{
		"binom", "dbinom", "tbinom", "brace", "brack",
	},
}

var mathColors = Group{
	Mode:     ModeMath,
	Category: "color",
	Shape:    ShapeArgs,
	Arity:    2,
	Names: []string{
		"color", "textcolor", "colorbox",
	},
}

var mathFractions = Group{
	Mode:     ModeMath,
	Category: "fractions",
	Shape:    ShapeArgs,
	Arity:    2,
	Names: []string{
		"frac", "dfrac", "tfrac", "cfrac", "genfrac",
	},
}

var mathStacking = Group{
	Mode:     ModeMath,
	Category: "vertical layout",
	Shape:    ShapeArgs,
	Arity:    2,
	Names: []string{
		"stackrel", "overset", "underset", "raisebox",
	},
}

var mathEnvironments = Group{
	Mode:     ModeMath,
	Category: "environments",
	Shape:    ShapeEnvironment,
	Arity:    2,
	Names: []string{
		"matrix", "array",
		"pmatrix", "bmatrix",
		"vmatrix", "Vmatrix",
		"Bmatrix",
		"cases", "rcases",
		"smallmatrix", "subarray",
		"equation", "split", "align",
		"gather", "alignat",
		"CD",
		"darray", "dcases", "drcases",
		"matrix*", "pmatrix*", "bmatrix*",
		"Bmatrix*", "vmatrix*", "Vmatrix*",
		"equation*", "gather*", "align*", "alignat*",
		"gathered", "aligned", "alignedat",
	},
}

// mathGroups lists the math groups in completion order: bare commands first,
// then one-slot and two-slot commands, then the environment wrapper.
var mathGroups = []Group{
	mathArrows,
	mathBigOperators,
	mathBinaryOperators,
	mathBinomialInfix,
	mathDebugging,
	mathDelimiterSizing,
	mathDelimiters,
	mathFractionInfix,
	mathFontSwitches,
	mathGreekLetters,
	mathLogic,
	mathMacroPrimitives,
	mathFunctions,
	mathNegatedRelations,
	mathOtherLetters,
	mathRelations,
	mathSizes,
	mathSpaces,
	mathStyles,
	mathSymbols,
	mathAtop,
	mathAccents,
	mathAnnotations,
	mathBraket,
	mathClassAssignment,
	mathFonts,
	mathExtensibleArrows,
	mathOperatorNames,
	mathOverlap,
	mathSpacingCommands,
	mathSqrt,
	mathSubstack,
	mathBinomials,
	mathColors,
	mathFractions,
	mathStacking,
	mathEnvironments,
}
