package core

import (
	"fmt"
	"strconv"
	"strings"

	"Kleene/utils"
)

const (
	LabelSubstrings = "SUBCADENAS"
	LabelPrefixes   = "PREFIJOS"
	LabelSuffixes   = "SUFIJOS"
	LabelKleene     = "CERRADURA DE KLEENE (Σ*)"
	LabelPositive   = "CERRADURA POSITIVA (Σ+)"

	Delimiter = ", "
)

type Section struct {
	Label string   `json:"label"`
	Items []string `json:"items"`
}

func (s Section) joined(quote bool) string {
	if !quote {
		return strings.Join(s.Items, Delimiter)
	}
	quoted := make([]string, len(s.Items))
	for i, item := range s.Items {
		quoted[i] = "'" + item + "'"
	}
	return strings.Join(quoted, Delimiter)
}

// Report is the printable form of a result: header lines describing the
// input, then one labelled list per section.
type Report struct {
	Header   []string  `json:"header"`
	Sections []Section `json:"sections"`
	Quote    bool      `json:"-"`
	Digest   string    `json:"digest"`
}

func newReport(header []string, quote bool, sections ...Section) *Report {
	r := &Report{
		Header:   header,
		Sections: sections,
		Quote:    quote,
	}
	r.Digest = digest(sections)
	return r
}

// digest identifies the result lists so that two runs can be compared.
func digest(sections []Section) string {
	var b strings.Builder
	for _, s := range sections {
		b.WriteString(s.Label)
		b.WriteByte('\n')
		for _, item := range s.Items {
			b.WriteString(item)
			b.WriteByte(0x1f)
		}
		b.WriteByte(0x1e)
	}
	return utils.Mmh3Hash32([]byte(b.String()))
}

func (d *Decomposition) Report(quote bool) *Report {
	return newReport(
		[]string{"Cadena original: " + d.Input},
		quote,
		Section{Label: LabelSubstrings, Items: d.Substrings},
		Section{Label: LabelPrefixes, Items: d.Prefixes},
		Section{Label: LabelSuffixes, Items: d.Suffixes},
	)
}

func (c *Closure) Report(quote bool) *Report {
	return newReport(
		[]string{
			"Alfabeto: " + c.Alphabet,
			"Longitud máxima: " + strconv.Itoa(c.MaxLength),
		},
		quote,
		Section{Label: LabelKleene, Items: c.Kleene},
		Section{Label: LabelPositive, Items: c.Positive},
	)
}

// Text renders r in the flat layout used for files:
//
//	<header lines>
//
//	LABEL:
//	item, item, item
func (r *Report) Text() string {
	var b strings.Builder
	b.WriteString(strings.Join(r.Header, "\n"))
	for _, s := range r.Sections {
		b.WriteString("\n\n")
		b.WriteString(s.Label)
		b.WriteString(":\n")
		b.WriteString(s.joined(r.Quote))
	}
	return b.String()
}

func (r *Report) JSON() (string, error) {
	return utils.CustomMarshal(r)
}

// Render returns r encoded as "text" (the default) or "json".
func (r *Report) Render(format string) (string, error) {
	switch format {
	case "", "text":
		return r.Text(), nil
	case "json":
		return r.JSON()
	default:
		return "", fmt.Errorf("%w: unknown format %q", ErrInvalidInput, format)
	}
}
