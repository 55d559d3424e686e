package core

import (
	"fmt"
	"math"

	"Kleene/utils"
)

// Epsilon stands for the empty string at the head of a Kleene closure.
const Epsilon = "ε"

// Closure holds both closures of Alphabet up to MaxLength.
type Closure struct {
	Alphabet  string   `json:"alphabet"`
	MaxLength int      `json:"max_length"`
	Kleene    []string `json:"kleene"`
	Positive  []string `json:"positive"`
}

func checkAlphabet(alphabet string) error {
	if alphabet == "" {
		return fmt.Errorf("%w: alphabet has no symbols", ErrInvalidInput)
	}
	return nil
}

func checkMaxLength(maxLen int) error {
	if maxLen < 1 {
		return fmt.Errorf("%w: max length %d is below 1", ErrInvalidInput, maxLen)
	}
	return nil
}

// StringsOfLength returns every string of exactly n symbols of alphabet.
// Each symbol occurrence counts as its own choice, so repeated symbols
// repeat strings. The result has len(alphabet)^n items.
func StringsOfLength(alphabet string, n int) ([]string, error) {
	if err := checkAlphabet(alphabet); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: length %d is negative", ErrInvalidInput, n)
	}
	return utils.Product(utils.SplitSymbols(alphabet), n), nil
}

// blocks calls fn with the strings of each length from 1 to maxLen. Every
// block is grown from the previous one.
func blocks(alphabet string, maxLen int, fn func(block []string)) error {
	if err := checkAlphabet(alphabet); err != nil {
		return err
	}
	if err := checkMaxLength(maxLen); err != nil {
		return err
	}
	symbols := utils.SplitSymbols(alphabet)
	block := []string{""}
	for k := 1; k <= maxLen; k++ {
		block = utils.Extend(block, symbols)
		fn(block)
	}
	return nil
}

// KleeneClosure returns Epsilon followed by every string of length 1 to
// maxLen, shorter strings first.
func KleeneClosure(alphabet string, maxLen int) ([]string, error) {
	kleene := []string{Epsilon}
	err := blocks(alphabet, maxLen, func(block []string) {
		kleene = append(kleene, block...)
	})
	if err != nil {
		return nil, err
	}
	return kleene, nil
}

// PositiveClosure is KleeneClosure without the empty string.
func PositiveClosure(alphabet string, maxLen int) ([]string, error) {
	var positive []string
	err := blocks(alphabet, maxLen, func(block []string) {
		positive = append(positive, block...)
	})
	if err != nil {
		return nil, err
	}
	return positive, nil
}

// Closures computes both closures over a single pass of the length blocks.
func Closures(alphabet string, maxLen int) (*Closure, error) {
	c := &Closure{
		Alphabet:  alphabet,
		MaxLength: maxLen,
		Kleene:    []string{Epsilon},
	}
	err := blocks(alphabet, maxLen, func(block []string) {
		c.Kleene = append(c.Kleene, block...)
		c.Positive = append(c.Positive, block...)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ClosureSize is the number of strings in the positive closure of an
// alphabet with symbols symbols, saturating at math.MaxUint64.
func ClosureSize(symbols, maxLen int) uint64 {
	var total uint64
	for k := 1; k <= maxLen; k++ {
		p := utils.Pow(symbols, k)
		if total > math.MaxUint64-p {
			return math.MaxUint64
		}
		total += p
	}
	return total
}
