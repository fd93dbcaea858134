package numspell

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alex-dev-neo/xtts-api-server/internal/domain"
)

const (
	nom  = domain.CaseNominative
	gen  = domain.CaseGenitive
	dat  = domain.CaseDative
	acc  = domain.CaseAccusative
	ins  = domain.CaseInstrumental
	prep = domain.CasePrepositional

	masc = domain.GenderMasculine
	fem  = domain.GenderFeminine
	neut = domain.GenderNeuter
)

func TestCardinal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int64
		c    domain.Case
		g    domain.Gender
		want string
	}{
		{0, nom, masc, "ноль"},
		{0, ins, masc, "нолём"},
		{1, nom, masc, "один"},
		{1, nom, fem, "одна"},
		{1, nom, neut, "одно"},
		{1, acc, fem, "одну"},
		{2, nom, fem, "две"},
		{2, gen, masc, "двух"},
		{5, nom, masc, "пять"},
		{8, gen, masc, "восьми"},
		{8, ins, masc, "восемью"},
		{11, dat, masc, "одиннадцати"},
		{21, nom, fem, "двадцать одна"},
		{25, prep, masc, "двадцати пяти"},
		{40, gen, masc, "сорока"},
		{90, ins, masc, "девяноста"},
		{100, gen, masc, "ста"},
		{200, ins, masc, "двумястами"},
		{512, nom, masc, "пятьсот двенадцать"},
		{1000, nom, masc, "тысяча"},
		{1000, ins, masc, "тысячей"},
		{1990, nom, masc, "тысяча девятьсот девяносто"},
		{2000, nom, masc, "две тысячи"},
		{2000, gen, masc, "двух тысяч"},
		{5000, nom, masc, "пять тысяч"},
		{21000, nom, masc, "двадцать одна тысяча"},
		{21000, dat, masc, "двадцати одной тысяче"},
		{1_000_000, nom, masc, "один миллион"},
		{3_000_000, nom, masc, "три миллиона"},
		{5_000_000, prep, masc, "пяти миллионах"},
		{2_000_000_001, nom, fem, "два миллиарда одна"},
		{999_999_999_999, nom, masc, "девятьсот девяносто девять миллиардов девятьсот девяносто девять миллионов девятьсот девяносто девять тысяч девятьсот девяносто девять"},
	}
	for _, tt := range tests {
		got, err := Cardinal(tt.n, tt.c, tt.g)
		require.NoError(t, err, "Cardinal(%d, %s, %s)", tt.n, tt.c, tt.g)
		assert.Equal(t, tt.want, got, "Cardinal(%d, %s, %s)", tt.n, tt.c, tt.g)
	}
}

func TestOrdinal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int64
		c    domain.Case
		g    domain.Gender
		want string
	}{
		{0, nom, masc, "нулевой"},
		{1, nom, masc, "первый"},
		{1, gen, masc, "первого"},
		{1, nom, fem, "первая"},
		{2, prep, masc, "втором"},
		{3, nom, masc, "третий"},
		{3, gen, masc, "третьего"},
		{3, acc, fem, "третью"},
		{3, nom, neut, "третье"},
		{6, ins, masc, "шестым"},
		{8, gen, fem, "восьмой"},
		{12, gen, masc, "двенадцатого"},
		{20, nom, masc, "двадцатый"},
		{21, gen, masc, "двадцать первого"},
		{23, nom, fem, "двадцать третья"},
		{40, nom, masc, "сороковой"},
		{100, nom, masc, "сотый"},
		{300, prep, masc, "трёхсотом"},
		{1000, nom, masc, "тысячный"},
		{1990, prep, masc, "тысяча девятьсот девяностом"},
		{2000, prep, masc, "двухтысячном"},
		{2024, prep, masc, "две тысячи двадцать четвёртом"},
		{2025, gen, masc, "две тысячи двадцать пятого"},
		{5000, nom, masc, "пятитысячный"},
		{21000, nom, masc, "двадцатиоднотысячный"},
		{90000, nom, masc, "девяностотысячный"},
		{100000, nom, masc, "стотысячный"},
		{1_000_000, nom, masc, "миллионный"},
		{3_000_000_000, nom, masc, "трёхмиллиардный"},
		{2_500_000, gen, masc, "два миллиона пятисоттысячного"},
	}
	for _, tt := range tests {
		got, err := Ordinal(tt.n, tt.c, tt.g)
		require.NoError(t, err, "Ordinal(%d, %s, %s)", tt.n, tt.c, tt.g)
		assert.Equal(t, tt.want, got, "Ordinal(%d, %s, %s)", tt.n, tt.c, tt.g)
	}
}

func TestPluralOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int64
		want Plural
	}{
		{0, PluralMany},
		{1, PluralOne},
		{2, PluralFew},
		{4, PluralFew},
		{5, PluralMany},
		{11, PluralMany},
		{12, PluralMany},
		{14, PluralMany},
		{20, PluralMany},
		{21, PluralOne},
		{22, PluralFew},
		{25, PluralMany},
		{111, PluralMany},
		{101, PluralOne},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PluralOf(tt.n), "PluralOf(%d)", tt.n)
	}
}

func TestAgree(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "час", Agree(1, "час", "часа", "часов"))
	assert.Equal(t, "часа", Agree(2, "час", "часа", "часов"))
	assert.Equal(t, "часов", Agree(5, "час", "часа", "часов"))
	assert.Equal(t, "часов", Agree(11, "час", "часа", "часов"))
	assert.Equal(t, "час", Agree(21, "час", "часа", "часов"))
	assert.Equal(t, "часа", Agree(22, "час", "часа", "часов"))
	assert.Equal(t, "часов", Agree(25, "час", "часа", "часов"))
}

func TestSpeller_Spell(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()

	got, err := s.Spell(ctx, 5, Language, domain.GrammaticalDecision{
		Ordinality: domain.Ordinal, Case: gen, Gender: masc,
	})
	require.NoError(t, err)
	assert.Equal(t, "пятого", got)

	got, err = s.Spell(ctx, 5, Language, domain.DefaultDecision())
	require.NoError(t, err)
	assert.Equal(t, "пять", got)
}

func TestSpeller_SpellErrors(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()

	tests := []struct {
		name    string
		value   int64
		lang    string
		d       domain.GrammaticalDecision
		wantErr error
	}{
		{"negative", -1, Language, domain.DefaultDecision(), domain.ErrOutOfRange},
		{"too large", MaxValue, Language, domain.DefaultDecision(), domain.ErrOutOfRange},
		{"language", 5, "en", domain.DefaultDecision(), domain.ErrUnsupported},
		{"empty case", 5, Language, domain.GrammaticalDecision{Ordinality: domain.Cardinal, Gender: masc}, domain.ErrUnsupported},
		{"bad gender", 5, Language, domain.GrammaticalDecision{Ordinality: domain.Cardinal, Case: nom, Gender: "common"}, domain.ErrUnsupported},
		{"bad ordinality", 5, Language, domain.GrammaticalDecision{Ordinality: "fractional", Case: nom, Gender: masc}, domain.ErrUnsupported},
		{"ordinal too large", MaxValue, Language, domain.GrammaticalDecision{Ordinality: domain.Ordinal, Case: nom, Gender: masc}, domain.ErrOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := s.Spell(ctx, tt.value, tt.lang, tt.d)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
