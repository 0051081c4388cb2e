package soup

// latin1Entities names U+00A0 through U+00FF in order.
var latin1Entities = [96]string{
	"nbsp", "iexcl", "cent", "pound", "curren", "yen", "brvbar", "sect",
	"uml", "copy", "ordf", "laquo", "not", "shy", "reg", "macr",
	"deg", "plusmn", "sup2", "sup3", "acute", "micro", "para", "middot",
	"cedil", "sup1", "ordm", "raquo", "frac14", "frac12", "frac34", "iquest",
	"Agrave", "Aacute", "Acirc", "Atilde", "Auml", "Aring", "AElig", "Ccedil",
	"Egrave", "Eacute", "Ecirc", "Euml", "Igrave", "Iacute", "Icirc", "Iuml",
	"ETH", "Ntilde", "Ograve", "Oacute", "Ocirc", "Otilde", "Ouml", "times",
	"Oslash", "Ugrave", "Uacute", "Ucirc", "Uuml", "Yacute", "THORN", "szlig",
	"agrave", "aacute", "acirc", "atilde", "auml", "aring", "aelig", "ccedil",
	"egrave", "eacute", "ecirc", "euml", "igrave", "iacute", "icirc", "iuml",
	"eth", "ntilde", "ograve", "oacute", "ocirc", "otilde", "ouml", "divide",
	"oslash", "ugrave", "uacute", "ucirc", "uuml", "yacute", "thorn", "yuml",
}

// namedEntities maps runes to the entity names the html formatter writes.
// Quotes are left alone; attribute quoting handles them.
var namedEntities = func() map[rune]string {
	m := map[rune]string{
		0x0026: "amp",
		0x003C: "lt",
		0x003E: "gt",
		0x0152: "OElig",
		0x0153: "oelig",
		0x0160: "Scaron",
		0x0161: "scaron",
		0x0178: "Yuml",
		0x0192: "fnof",
		0x02C6: "circ",
		0x02DC: "tilde",
		0x2002: "ensp",
		0x2003: "emsp",
		0x2009: "thinsp",
		0x200C: "zwnj",
		0x200D: "zwj",
		0x200E: "lrm",
		0x200F: "rlm",
		0x2013: "ndash",
		0x2014: "mdash",
		0x2018: "lsquo",
		0x2019: "rsquo",
		0x201A: "sbquo",
		0x201C: "ldquo",
		0x201D: "rdquo",
		0x201E: "bdquo",
		0x2020: "dagger",
		0x2021: "Dagger",
		0x2022: "bull",
		0x2026: "hellip",
		0x2030: "permil",
		0x2032: "prime",
		0x2033: "Prime",
		0x2039: "lsaquo",
		0x203A: "rsaquo",
		0x203E: "oline",
		0x2044: "frasl",
		0x20AC: "euro",
		0x2122: "trade",
		0x2190: "larr",
		0x2191: "uarr",
		0x2192: "rarr",
		0x2193: "darr",
		0x2194: "harr",
	}
	for i, name := range latin1Entities {
		m[rune(0xA0+i)] = name
	}
	return m
}()
