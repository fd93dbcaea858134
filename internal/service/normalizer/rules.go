package normalizer

// Lexicon holds the language-specific word lists and tables the normalizer consults.
// A Lexicon is read-only once passed to New.
type Lexicon struct {
	// YearMarkers are lemmas that make the preceding numeral an ordinal year.
	YearMarkers map[string]struct{}
	// Months are month names in nominative and genitive form.
	Months map[string]struct{}
	// DistanceUnits are head lemmas that take the locative after LocativePreposition.
	DistanceUnits map[string]struct{}
	// LocativePreposition is the preposition of the "in N kilometers" idiom.
	LocativePreposition string
	// GenitivePrepositions keep a genitive numeral from being demoted to nominative.
	GenitivePrepositions map[string]struct{}

	// Phonemes maps an ARPAbet phoneme without stress to its Cyrillic approximation.
	Phonemes map[string]string

	// Substitutions is the default literal substitution table.
	Substitutions []Substitution

	Hour    [3]string // час, часа, часов
	Minute  [3]string // минута, минуты, минут
	Exactly string
	Whole   [2]string // целая, целых
	Tenth   [2]string // десятая, десятых
}

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

func has(m map[string]struct{}, w string) bool {
	_, ok := m[w]
	return ok
}

// RussianLexicon returns the Russian word lists.
func RussianLexicon() *Lexicon {
	return &Lexicon{
		YearMarkers: set("год", "г", "г."),
		Months: set(
			"январь", "февраль", "март", "апрель", "май", "июнь",
			"июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь",
			"января", "февраля", "марта", "апреля", "мая", "июня",
			"июля", "августа", "сентября", "октября", "ноября", "декабря",
		),
		DistanceUnits:        set("километр", "метр", "миля", "километров", "метров", "миль"),
		LocativePreposition:  "в",
		GenitivePrepositions: set("от", "до", "из", "без", "у", "для", "вокруг", "около", "с"),
		Phonemes: map[string]string{
			// vowels
			"AA": "а", "AE": "а", "AH": "а", "AO": "о", "AW": "ау", "AY": "ай",
			"EH": "е", "ER": "ер", "EY": "ей", "IH": "и", "IY": "и", "OW": "о",
			"OY": "ой", "UH": "у", "UW": "у",
			// consonants
			"B": "б", "CH": "ч", "D": "д", "DH": "з", "F": "ф", "G": "г",
			"HH": "х", "JH": "дж", "K": "к", "L": "л", "M": "м", "N": "н",
			"NG": "н", "P": "п", "R": "р", "S": "с", "SH": "ш", "T": "т",
			"TH": "с", "V": "в", "W": "в", "Y": "й", "Z": "з", "ZH": "ж",
		},
		Substitutions: []Substitution{
			{Pattern: `OpenAI`, Replacement: "Опен Эй-Ай", WholeWord: true},
			{Pattern: `ChatGPT`, Replacement: "Чат Джи-Пи-Ти", WholeWord: true},
			{Pattern: `GPT`, Replacement: "Джи-Пи-Ти", WholeWord: true},
			{Pattern: `Google`, Replacement: "Гугл", WholeWord: true},
			{Pattern: `Nano`, Replacement: "Нано", WholeWord: true},
			{Pattern: `Banana`, Replacement: "Банана", WholeWord: true},
			{Pattern: `Images`, Replacement: "Имиджес", WholeWord: true},
			{Pattern: `Windows`, Replacement: "Виндоус", WholeWord: true},
			{Pattern: `Microsoft`, Replacement: "Майкрософт", WholeWord: true},
			{Pattern: `Android`, Replacement: "Андроид", WholeWord: true},
			{Pattern: `Apple`, Replacement: "Эппл", WholeWord: true},
			{Pattern: `iPhone`, Replacement: "Айфон", WholeWord: true},
			{Pattern: `UTC`, Replacement: "Ю-Ти-Си", WholeWord: true},
			{Pattern: `GMT`, Replacement: "Джи-Эм-Ти", WholeWord: true},
			{Pattern: `USA`, Replacement: "США", WholeWord: true},
			{Pattern: `km`, Replacement: "километров", WholeWord: true},
			{Pattern: `kg`, Replacement: "килограммов", WholeWord: true},
			{Pattern: `км`, Replacement: "километров", WholeWord: true},
			{Pattern: `кг`, Replacement: "килограммов", WholeWord: true},
			// Only after a number: "в г. Москва" abbreviates "город".
			{Pattern: `(\d\s*)г\.`, Replacement: "${1}года"},
			{Pattern: `°C`, Replacement: " градусов Цельсия"},
		},
		Hour:    [3]string{"час", "часа", "часов"},
		Minute:  [3]string{"минута", "минуты", "минут"},
		Exactly: "ровно",
		Whole:   [2]string{"целая", "целых"},
		Tenth:   [2]string{"десятая", "десятых"},
	}
}
