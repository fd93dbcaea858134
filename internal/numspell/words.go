// Word tables for Russian number-to-text conversion.
package numspell

// forms holds one word in the six cases, indexed by caseIndex:
// nominative, genitive, dative, accusative, instrumental, prepositional.
type forms [6]string

const (
	iNom = iota
	iGen
	iDat
	iAcc
	iIns
	iPrep
)

// soft declines a numeral ending in the soft sign ("пять", "двадцать").
func soft(nom string) forms {
	stem := nom[:len(nom)-len("ь")]
	return forms{nom, stem + "и", stem + "и", nom, nom + "ю", stem + "и"}
}

var zero = forms{"ноль", "ноля", "нолю", "ноль", "нолём", "ноле"}

// units is indexed by digit (1–9); index 0 is unused. Forms for 1 and 2 are masculine.
var units = [10]forms{
	{},
	{"один", "одного", "одному", "один", "одним", "одном"},
	{"два", "двух", "двум", "два", "двумя", "двух"},
	{"три", "трёх", "трём", "три", "тремя", "трёх"},
	{"четыре", "четырёх", "четырём", "четыре", "четырьмя", "четырёх"},
	soft("пять"),
	soft("шесть"),
	soft("семь"),
	{"восемь", "восьми", "восьми", "восемь", "восемью", "восьми"},
	soft("девять"),
}

var (
	oneFeminine = forms{"одна", "одной", "одной", "одну", "одной", "одной"}
	oneNeuter   = forms{"одно", "одного", "одному", "одно", "одним", "одном"}
	twoFeminine = forms{"две", "двух", "двум", "две", "двумя", "двух"}
)

// teens is indexed by n-10 for n in [10, 19].
var teens = [10]forms{
	soft("десять"),
	soft("одиннадцать"),
	soft("двенадцать"),
	soft("тринадцать"),
	soft("четырнадцать"),
	soft("пятнадцать"),
	soft("шестнадцать"),
	soft("семнадцать"),
	soft("восемнадцать"),
	soft("девятнадцать"),
}

// tens is indexed by tens digit (2–9); indexes 0 and 1 are unused.
var tens = [10]forms{
	{},
	{},
	soft("двадцать"),
	soft("тридцать"),
	{"сорок", "сорока", "сорока", "сорок", "сорока", "сорока"},
	{"пятьдесят", "пятидесяти", "пятидесяти", "пятьдесят", "пятьюдесятью", "пятидесяти"},
	{"шестьдесят", "шестидесяти", "шестидесяти", "шестьдесят", "шестьюдесятью", "шестидесяти"},
	{"семьдесят", "семидесяти", "семидесяти", "семьдесят", "семьюдесятью", "семидесяти"},
	{"восемьдесят", "восьмидесяти", "восьмидесяти", "восемьдесят", "восемьюдесятью", "восьмидесяти"},
	{"девяносто", "девяноста", "девяноста", "девяносто", "девяноста", "девяноста"},
}

// hundreds is indexed by hundreds digit (1–9); index 0 is unused.
var hundreds = [10]forms{
	{},
	{"сто", "ста", "ста", "сто", "ста", "ста"},
	{"двести", "двухсот", "двумстам", "двести", "двумястами", "двухстах"},
	{"триста", "трёхсот", "трёмстам", "триста", "тремястами", "трёхстах"},
	{"четыреста", "четырёхсот", "четырёмстам", "четыреста", "четырьмястами", "четырёхстах"},
	{"пятьсот", "пятисот", "пятистам", "пятьсот", "пятьюстами", "пятистах"},
	{"шестьсот", "шестисот", "шестистам", "шестьсот", "шестьюстами", "шестистах"},
	{"семьсот", "семисот", "семистам", "семьсот", "семьюстами", "семистах"},
	{"восемьсот", "восьмисот", "восьмистам", "восемьсот", "восемьюстами", "восьмистах"},
	{"девятьсот", "девятисот", "девятистам", "девятьсот", "девятьюстами", "девятистах"},
}

// scale is a named power of a thousand, declined as a noun.
type scale struct {
	value    int64
	feminine bool
	singular forms
	plural   forms
	ordStem  string // "тысячн" → "тысячный"
}

// scales lists named powers of a thousand from largest to smallest.
var scales = []scale{
	{
		value:    1_000_000_000,
		singular: forms{"миллиард", "миллиарда", "миллиарду", "миллиард", "миллиардом", "миллиарде"},
		plural:   forms{"миллиарды", "миллиардов", "миллиардам", "миллиарды", "миллиардами", "миллиардах"},
		ordStem:  "миллиардн",
	},
	{
		value:    1_000_000,
		singular: forms{"миллион", "миллиона", "миллиону", "миллион", "миллионом", "миллионе"},
		plural:   forms{"миллионы", "миллионов", "миллионам", "миллионы", "миллионами", "миллионах"},
		ordStem:  "миллионн",
	},
	{
		value:    1_000,
		feminine: true,
		singular: forms{"тысяча", "тысячи", "тысяче", "тысячу", "тысячей", "тысяче"},
		plural:   forms{"тысячи", "тысяч", "тысячам", "тысячи", "тысячами", "тысячах"},
		ordStem:  "тысячн",
	},
}

// ordinal endings by gender: masculine, feminine, neuter.
type endings [3]forms

var (
	// endingsY follows "первый", "пятый".
	endingsY = endings{
		{"ый", "ого", "ому", "ый", "ым", "ом"},
		{"ая", "ой", "ой", "ую", "ой", "ой"},
		{"ое", "ого", "ому", "ое", "ым", "ом"},
	}
	// endingsO follows stressed-ending adjectives: "второй", "сороковой".
	endingsO = endings{
		{"ой", "ого", "ому", "ой", "ым", "ом"},
		{"ая", "ой", "ой", "ую", "ой", "ой"},
		{"ое", "ого", "ому", "ое", "ым", "ом"},
	}
)

// third has its own paradigm.
var third = [3]forms{
	{"третий", "третьего", "третьему", "третий", "третьим", "третьем"},
	{"третья", "третьей", "третьей", "третью", "третьей", "третьей"},
	{"третье", "третьего", "третьему", "третье", "третьим", "третьем"},
}

type ordStem struct {
	stem string
	end  *endings
}

var zeroOrdinal = ordStem{"нулев", &endingsO}

// unitOrdinals is indexed by digit; index 3 is handled by third.
var unitOrdinals = [10]ordStem{
	{},
	{"перв", &endingsY},
	{"втор", &endingsO},
	{},
	{"четвёрт", &endingsY},
	{"пят", &endingsY},
	{"шест", &endingsO},
	{"седьм", &endingsO},
	{"восьм", &endingsO},
	{"девят", &endingsY},
}

var teenOrdinals = [10]ordStem{
	{"десят", &endingsY},
	{"одиннадцат", &endingsY},
	{"двенадцат", &endingsY},
	{"тринадцат", &endingsY},
	{"четырнадцат", &endingsY},
	{"пятнадцат", &endingsY},
	{"шестнадцат", &endingsY},
	{"семнадцат", &endingsY},
	{"восемнадцат", &endingsY},
	{"девятнадцат", &endingsY},
}

var tenOrdinals = [10]ordStem{
	{},
	{},
	{"двадцат", &endingsY},
	{"тридцат", &endingsY},
	{"сороков", &endingsO},
	{"пятидесят", &endingsY},
	{"шестидесят", &endingsY},
	{"семидесят", &endingsY},
	{"восьмидесят", &endingsY},
	{"девяност", &endingsY},
}

var hundredOrdinals = [10]ordStem{
	{},
	{"сот", &endingsY},
	{"двухсот", &endingsY},
	{"трёхсот", &endingsY},
	{"четырёхсот", &endingsY},
	{"пятисот", &endingsY},
	{"шестисот", &endingsY},
	{"семисот", &endingsY},
	{"восьмисот", &endingsY},
	{"девятисот", &endingsY},
}
