package utils

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/twmb/murmur3"
)

// CustomMarshal encodes message as indented JSON without escaping "&", "<"
// and ">".
func CustomMarshal(message interface{}) (string, error) {
	bf := bytes.NewBuffer([]byte{})

	jsonEncoder := json.NewEncoder(bf)
	jsonEncoder.SetEscapeHTML(false)
	jsonEncoder.SetIndent("", "    ")

	if err := jsonEncoder.Encode(message); err != nil {
		return "", err
	}

	return bf.String(), nil
}

func Mmh3Hash32(raw []byte) string {
	var h32 = murmur3.New32()
	_, _ = h32.Write(raw)
	return fmt.Sprintf("%d", h32.Sum32())
}

// SplitSymbols returns one string per code point of s, keeping repeats.
func SplitSymbols(s string) []string {
	symbols := make([]string, 0, len(s))
	for _, r := range s {
		symbols = append(symbols, string(r))
	}
	return symbols
}
