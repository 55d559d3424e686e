package utils

import "math"

var Alphabet = "abcdefghijklmnopqrstuvwxyz"
var Number = "0123456789"

// Extend appends every element of wordlist to every word of result. The
// outer word changes slower than the appended element.
func Extend(result, wordlist []string) []string {
	tmp := make([]string, 0, len(result)*len(wordlist))
	for _, r := range result {
		for _, word := range wordlist {
			tmp = append(tmp, r+word)
		}
	}
	return tmp
}

// Product returns every word made of exactly depth elements of wordlist,
// counting in mixed radix len(wordlist).
func Product(wordlist []string, depth int) []string {
	if depth <= 0 {
		return []string{""}
	}
	if depth == 1 {
		result := make([]string, len(wordlist))
		copy(result, wordlist)
		return result
	}
	return Extend(Product(wordlist, depth-1), wordlist)
}

// Pow is an integer power that saturates at math.MaxUint64.
func Pow(base, exp int) uint64 {
	if exp <= 0 {
		return 1
	}
	if base <= 0 {
		return 0
	}
	b := uint64(base)
	res := uint64(1)
	for i := 0; i < exp; i++ {
		if res > math.MaxUint64/b {
			return math.MaxUint64
		}
		res *= b
	}
	return res
}
