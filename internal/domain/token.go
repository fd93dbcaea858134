package domain

// Features holds the morphological features a parser attached to a token.
// Empty fields mean the parser omitted the feature.
type Features struct {
	Case   Case
	Gender Gender
}

// Token is one analyzed word of the working text.
type Token struct {
	ID     string
	Start  int // byte offset, inclusive
	Stop   int // byte offset, exclusive
	Text   string
	Lemma  string
	Feats  Features
	HeadID string // empty when the token has no head (root or unparsed)
}

// LemmaOrText returns the lowercased lemma, or the lowercased surface text
// when the parser produced no lemma.
func (t Token) LemmaOrText() string {
	if t.Lemma != "" {
		return NormalizeText(t.Lemma)
	}
	return NormalizeText(t.Text)
}

// ReplacementSpan is a pending substitution of Text over [Start, Stop).
type ReplacementSpan struct {
	Start int
	Stop  int
	Text  string
}
