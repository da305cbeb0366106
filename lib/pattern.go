package gtw

// The result of scoring one guess letter against the goal word.
const (
	LetterAbsent  = 0 // letter does not appear in the goal
	LetterPresent = 1 // letter appears, but not at this position
	LetterCorrect = 2 // letter appears at exactly this position
)

// NumCodes is the number of distinct pattern codes: 3^5.
const NumCodes = 243

// AllCorrect is the code of the all-green pattern, i.e. a winning guess.
const AllCorrect Code = 242

// A Pattern is the per-position scoring of one guess against a goal
// word: five ternary digits, one per letter position.
type Pattern [WordLen]uint8

// A Code is a Pattern packed into a single integer by base-3 positional
// encoding with the leftmost letter most significant. Codes lie in
// [0, NumCodes) and fit in a byte, which is what makes the dense
// pattern matrix practical.
type Code uint8

// Score computes the pattern for a guess against a goal word. Both
// arguments must be 5-letter lowercase words.
//
// Scoring is done in two passes. The first pass finds all the correct
// matches; once found, they play no further role in matching either in
// the goal or in the guess. The first pass also counts, per letter, how
// many unsolved goal positions remain. The second pass walks the guess
// again and scores any letter that still has unsolved occurrences in
// the goal as present-but-misplaced, consuming one occurrence each
// time. This is what gives duplicate letters their expected behavior:
// a guess letter is yellow at most as many times as it appears
// unsolved in the goal.
func Score(guess, goal string) Pattern {
	var p Pattern
	var unsolvedLetterCounts ['z' - 'a' + 1]int8

	for i := 0; i < WordLen; i++ {
		if guess[i] == goal[i] {
			p[i] = LetterCorrect
		} else {
			unsolvedLetterCounts[goal[i]-'a']++
		}
	}

	for i := 0; i < WordLen; i++ {
		if p[i] != LetterCorrect {
			c := guess[i] - 'a'
			if unsolvedLetterCounts[c] > 0 {
				unsolvedLetterCounts[c]--
				p[i] = LetterPresent
			}
		}
	}
	return p
}

// Code packs the pattern into its base-3 code.
func (p Pattern) Code() Code {
	c := 0
	for i := 0; i < WordLen; i++ {
		c = c*3 + int(p[i])
	}
	return Code(c)
}

// Unpack expands a code back into its five-digit pattern.
func (c Code) Unpack() Pattern {
	var p Pattern
	n := int(c)
	for i := WordLen - 1; i >= 0; i-- {
		p[i] = uint8(n % 3)
		n /= 3
	}
	return p
}

// String renders the pattern with one letter per position: G for
// correct, Y for present, B for absent.
func (p Pattern) String() string {
	var buf [WordLen]byte
	for i, d := range p {
		switch d {
		case LetterCorrect:
			buf[i] = 'G'
		case LetterPresent:
			buf[i] = 'Y'
		default:
			buf[i] = 'B'
		}
	}
	return string(buf[:])
}
