// tokens.go - Prozessweite Token-Konstanten
// Der unkonditionale Prompt ist eine feste Sequenz und wird nie mutiert.
package model

// Special token ids of the text encoder's vocabulary.
const (
	StartOfText int32 = 49406
	EndOfText   int32 = 49407
)

// uncondTokens is the fixed "empty prompt": a start token followed by end
// tokens padding to MaxTextLen.
var uncondTokens = func() []int32 {
	toks := make([]int32, MaxTextLen)
	toks[0] = StartOfText
	for i := 1; i < MaxTextLen; i++ {
		toks[i] = EndOfText
	}
	return toks
}()

// UncondTokens returns a copy of the unconditional token sequence.
func UncondTokens() []int32 {
	out := make([]int32, MaxTextLen)
	copy(out, uncondTokens)
	return out
}
