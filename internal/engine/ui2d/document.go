package ui2d

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// BlockKind is the kind of a document block.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockListItem
	BlockPre
)

// Run is a span of text with uniform style.
type Run struct {
	Text string
	Bold bool
	Code bool
	Href string
}

// Block is one paragraph-level element.
type Block struct {
	Kind  BlockKind
	Level int // Heading level 1-6
	Runs  []Run
}

// Text returns the block's text without styling.
func (b Block) Text() string {
	var sb strings.Builder
	for _, r := range b.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Document is page content reduced to what the overlay can draw.
type Document struct {
	Blocks []Block
}

// Links returns the hrefs of all linked runs in order.
func (d Document) Links() []string {
	var out []string
	for _, b := range d.Blocks {
		for _, r := range b.Runs {
			if r.Href != "" {
				out = append(out, r.Href)
			}
		}
	}
	return out
}

// ParseDocument tokenizes page HTML into blocks. Unknown tags contribute
// their text; scripts and styles are dropped.
func ParseDocument(src string) Document {
	p := docParser{}
	z := html.NewTokenizer(strings.NewReader(src))

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			p.flush()
			return Document{Blocks: p.blocks}

		case html.TextToken:
			if p.skip > 0 {
				continue
			}
			p.text(string(z.Text()))

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			a := atom.Lookup(name)
			var href string
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				if string(key) == "href" {
					href = string(val)
				}
			}
			p.start(a, href, tt == html.SelfClosingTagToken)

		case html.EndTagToken:
			name, _ := z.TagName()
			p.end(atom.Lookup(name))
		}
	}
}

type docParser struct {
	blocks []Block
	cur    *Block
	bold   int
	code   int
	pre    int
	skip   int
	href   string
}

func (p *docParser) open(kind BlockKind, level int) {
	p.flush()
	p.cur = &Block{Kind: kind, Level: level}
}

func (p *docParser) flush() {
	if p.cur == nil {
		return
	}
	b := *p.cur
	p.cur = nil

	if b.Kind != BlockPre {
		b.Runs = trimRuns(b.Runs)
	}
	if len(b.Runs) > 0 {
		p.blocks = append(p.blocks, b)
	}
}

func (p *docParser) start(a atom.Atom, href string, selfClosing bool) {
	switch a {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		p.open(BlockHeading, int(a.String()[1]-'0'))
	case atom.P, atom.Div, atom.Blockquote:
		p.open(BlockParagraph, 0)
	case atom.Li:
		p.open(BlockListItem, 0)
	case atom.Pre:
		p.open(BlockPre, 0)
		p.pre++
	case atom.Br:
		if p.cur != nil {
			p.add("\n")
		}
	case atom.Strong, atom.B:
		p.bold++
	case atom.Code:
		p.code++
	case atom.A:
		p.href = href
	case atom.Script, atom.Style:
		if !selfClosing {
			p.skip++
		}
	}
}

func (p *docParser) end(a atom.Atom) {
	switch a {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.P, atom.Div, atom.Blockquote, atom.Li:
		p.flush()
	case atom.Pre:
		p.pre = max(p.pre-1, 0)
		p.flush()
	case atom.Strong, atom.B:
		p.bold = max(p.bold-1, 0)
	case atom.Code:
		p.code = max(p.code-1, 0)
	case atom.A:
		p.href = ""
	case atom.Script, atom.Style:
		p.skip = max(p.skip-1, 0)
	}
}

func (p *docParser) text(s string) {
	if p.pre == 0 {
		s = collapseSpace(s)
		if s == "" {
			return
		}
	}
	if p.cur == nil {
		if strings.TrimSpace(s) == "" {
			return
		}
		p.cur = &Block{Kind: BlockParagraph}
	}
	p.add(s)
}

func (p *docParser) add(s string) {
	run := Run{Text: s, Bold: p.bold > 0, Code: p.code > 0 || p.pre > 0, Href: p.href}
	if n := len(p.cur.Runs); n > 0 {
		last := &p.cur.Runs[n-1]
		if last.Bold == run.Bold && last.Code == run.Code && last.Href == run.Href {
			if p.pre == 0 && strings.HasSuffix(last.Text, " ") && strings.HasPrefix(run.Text, " ") {
				run.Text = run.Text[1:]
			}
			last.Text += run.Text
			return
		}
	}
	p.cur.Runs = append(p.cur.Runs, run)
}

// collapseSpace folds whitespace runs into single spaces, keeping one at
// either end when present.
func collapseSpace(s string) string {
	if s == "" {
		return ""
	}
	lead := isSpace(s[0])
	trail := isSpace(s[len(s)-1])
	words := strings.Fields(s)
	if len(words) == 0 {
		return " "
	}
	out := strings.Join(words, " ")
	if lead {
		out = " " + out
	}
	if trail {
		out += " "
	}
	return out
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\t' || c == '\r' || c == '\f'
}

func trimRuns(runs []Run) []Run {
	for len(runs) > 0 {
		runs[0].Text = strings.TrimLeft(runs[0].Text, " ")
		if runs[0].Text != "" {
			break
		}
		runs = runs[1:]
	}
	for len(runs) > 0 {
		last := len(runs) - 1
		runs[last].Text = strings.TrimRight(runs[last].Text, " ")
		if runs[last].Text != "" {
			break
		}
		runs = runs[:last]
	}
	return runs
}
