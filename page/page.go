package page

import (
	"errors"
	"fmt"
	"go-balance-rates/domain"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"io"
	"strings"
)

var (
	ErrNoRateTable    = errors.New("no rate table")
	ErrRateTableShape = errors.New("rate table cells are not currency, buy, cell triples")
	ErrNoProducts     = errors.New("no product cards")
	ErrCardShape      = errors.New("malformed product card")
)

// class names of the banking page markup
const (
	rateTableClass    = "conversion-table"
	productClass      = "product-body"
	currencyClass     = "currency"
	balanceClass      = "balance"
	balanceTableClass = "balance-table"
	rateRowClass      = "rate-box"
)

// RowMode how conversion rows are added to a card
type RowMode string

const (
	// RowsAppend adds rows after any rows already shown
	RowsAppend RowMode = "append"
	// RowsReplace removes rows added by an earlier pass first
	RowsReplace RowMode = "replace"
)

// ParseRowMode validates a configured row mode
func ParseRowMode(s string) (RowMode, error) {
	switch mode := RowMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case RowsAppend, RowsReplace:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown row mode: %q", s)
	}
}

// Document a parsed banking page
type Document struct {
	root *html.Node
}

// Card a product card of the page together with the table its rows go to
type Card struct {
	domain.Card
	rows *html.Node
}

// Parse reads HTML markup.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	return &Document{root: root}, nil
}

// Rates reads the rate table, three cells per currency: name, buy, cell.
func (d *Document) Rates() ([]domain.RateQuote, error) {
	tables := all(d.root, byClass(rateTableClass))
	if len(tables) == 0 {
		return nil, ErrNoRateTable
	}

	var cells []string
	for _, table := range tables {
		for _, tr := range all(table, byAtom(atom.Tr)) {
			for _, td := range all(tr, byAtom(atom.Td)) {
				cells = append(cells, text(td))
			}
		}
	}
	if len(cells)%3 != 0 {
		return nil, fmt.Errorf("%d cells: %w", len(cells), ErrRateTableShape)
	}

	quotes := make([]domain.RateQuote, 0, len(cells)/3)
	for i := 0; i < len(cells); i += 3 {
		quotes = append(quotes, domain.RateQuote{
			Currency: domain.Currency(cells[i]),
			Buy:      cells[i+1],
			Cell:     cells[i+2],
		})
	}
	return quotes, nil
}

// Cards reads the product cards: accounts, cards, deposits.
func (d *Document) Cards() ([]*Card, error) {
	boxes := all(d.root, byClass(productClass))
	if len(boxes) == 0 {
		return nil, ErrNoProducts
	}

	cards := make([]*Card, 0, len(boxes))
	for i, box := range boxes {
		currency := first(box, byClass(currencyClass))
		if currency == nil {
			return nil, fmt.Errorf("card %d: no .%s: %w", i, currencyClass, ErrCardShape)
		}
		balance := first(box, byClass(balanceClass))
		if balance == nil {
			return nil, fmt.Errorf("card %d: no .%s: %w", i, balanceClass, ErrCardShape)
		}
		var rows *html.Node
		if table := first(box, byClass(balanceTableClass)); table != nil {
			rows = first(table, byAtom(atom.Tbody))
		}
		if rows == nil {
			return nil, fmt.Errorf("card %d: no .%s tbody: %w", i, balanceTableClass, ErrCardShape)
		}

		cards = append(cards, &Card{
			Card: domain.Card{
				Currency: domain.Currency(text(currency)),
				Balance:  text(balance),
			},
			rows: rows,
		})
	}
	return cards, nil
}

// Insert adds one row per conversion to the card's balance table.
func (d *Document) Insert(card *Card, conversions []domain.Conversion, mode RowMode) {
	if mode == RowsReplace {
		for _, tr := range all(card.rows, byAtom(atom.Tr)) {
			if hasClass(tr, rateRowClass) {
				tr.Parent.RemoveChild(tr)
			}
		}
	}
	for _, c := range conversions {
		card.rows.AppendChild(row(c))
	}
}

// Write renders the document as HTML.
func (d *Document) Write(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("rendering html: %w", err)
	}
	return nil
}

// row builds
//
//	<tr class="rate-box usd">
//		<td><div class="summ balance">384.62</div></td>
//		<td><div class="currency">USD</div></td>
//	</tr>
func row(c domain.Conversion) *html.Node {
	tr := element(atom.Tr, rateRowClass+" "+strings.ToLower(string(c.Currency)))
	tr.AppendChild(cell("summ "+balanceClass, c.Text))
	tr.AppendChild(cell(currencyClass, string(c.Currency)))
	return tr
}

func cell(class, content string) *html.Node {
	div := element(atom.Div, class)
	div.AppendChild(&html.Node{Type: html.TextNode, Data: content})
	td := element(atom.Td, "")
	td.AppendChild(div)
	return td
}
