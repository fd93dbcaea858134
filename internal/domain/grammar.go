package domain

import "fmt"

// Case is a grammatical case. The empty value means the feature is absent.
type Case string

const (
	CaseNominative    Case = "nominative"
	CaseGenitive      Case = "genitive"
	CaseDative        Case = "dative"
	CaseAccusative    Case = "accusative"
	CaseInstrumental  Case = "instrumental"
	CasePrepositional Case = "prepositional"
)

func (c Case) String() string { return string(c) }

func (c Case) IsValid() bool {
	switch c {
	case CaseNominative, CaseGenitive, CaseDative, CaseAccusative, CaseInstrumental, CasePrepositional:
		return true
	}
	return false
}

// OrDefault returns c, or def when c is absent or not a known case.
func (c Case) OrDefault(def Case) Case {
	if c.IsValid() {
		return c
	}
	return def
}

// Gender is a grammatical gender. The empty value means the feature is absent.
type Gender string

const (
	GenderMasculine Gender = "masculine"
	GenderFeminine  Gender = "feminine"
	GenderNeuter    Gender = "neuter"
)

func (g Gender) String() string { return string(g) }

func (g Gender) IsValid() bool {
	switch g {
	case GenderMasculine, GenderFeminine, GenderNeuter:
		return true
	}
	return false
}

// OrDefault returns g, or def when g is absent or not a known gender.
func (g Gender) OrDefault(def Gender) Gender {
	if g.IsValid() {
		return g
	}
	return def
}

// Ordinality selects between cardinal ("five") and ordinal ("fifth") numerals.
type Ordinality string

const (
	Cardinal Ordinality = "cardinal"
	Ordinal  Ordinality = "ordinal"
)

func (o Ordinality) String() string { return string(o) }

func (o Ordinality) IsValid() bool {
	return o == Cardinal || o == Ordinal
}

// GrammaticalDecision is the form a numeral token is rendered in.
type GrammaticalDecision struct {
	Ordinality Ordinality
	Case       Case
	Gender     Gender
}

// DefaultDecision is the form used when no rule applies: cardinal, nominative, masculine.
func DefaultDecision() GrammaticalDecision {
	return GrammaticalDecision{
		Ordinality: Cardinal,
		Case:       CaseNominative,
		Gender:     GenderMasculine,
	}
}

func (d GrammaticalDecision) String() string {
	return fmt.Sprintf("%s/%s/%s", d.Ordinality, d.Case, d.Gender)
}

// ParseUDCase maps a Universal Dependencies Case value to a Case.
// Unrecognized values report false; callers fall back to their documented default.
func ParseUDCase(tag string) (Case, bool) {
	switch tag {
	case "Nom":
		return CaseNominative, true
	case "Gen", "Par":
		return CaseGenitive, true
	case "Dat":
		return CaseDative, true
	case "Acc":
		return CaseAccusative, true
	case "Ins":
		return CaseInstrumental, true
	case "Loc":
		return CasePrepositional, true
	}
	return "", false
}

// ParseUDGender maps a Universal Dependencies Gender value to a Gender.
func ParseUDGender(tag string) (Gender, bool) {
	switch tag {
	case "Masc":
		return GenderMasculine, true
	case "Fem":
		return GenderFeminine, true
	case "Neut":
		return GenderNeuter, true
	}
	return "", false
}
