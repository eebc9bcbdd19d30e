package wrapper

import "strings"

type Placeholder struct {
	Token string

	Count int

	Lines []int
}

func (p *Placeholder) Found() bool {
	return p.Count > 0
}

// Scan reports every known placeholder in fixed order, including the ones
// missing from tmpl.
func Scan(tmpl string) []*Placeholder {
	tokens := []string{AppDirPlaceholder, BinaryPlaceholder}
	result := make([]*Placeholder, 0, len(tokens))
	lines := strings.Split(tmpl, "\n")
	for _, token := range tokens {
		p := &Placeholder{Token: token}
		for idx, line := range lines {
			count := strings.Count(line, token)
			if count == 0 {
				continue
			}
			p.Count += count
			p.Lines = append(p.Lines, idx+1)
		}
		result = append(result, p)
	}
	return result
}
