package mock

import "github.com/fwojciec/bookseek"

var _ bookseek.Parser = (*Parser)(nil)

// Parser is a mock implementation of bookseek.Parser.
type Parser struct {
	ParseFn func(html string) ([]bookseek.Book, error)
}

func (p *Parser) Parse(html string) ([]bookseek.Book, error) {
	return p.ParseFn(html)
}
