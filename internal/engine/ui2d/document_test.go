package ui2d

import (
	"slices"
	"testing"
)

func TestParseDocumentBlocks(t *testing.T) {
	doc := ParseDocument(`<h1>Projects</h1>
<p>Some   <strong>bold</strong>
text.</p>
<ul>
<li>one</li>
<li><a href="/about">two</a></li>
</ul>
<pre><code>a  b
c
</code></pre>`)

	want := []struct {
		kind BlockKind
		text string
	}{
		{BlockHeading, "Projects"},
		{BlockParagraph, "Some bold text."},
		{BlockListItem, "one"},
		{BlockListItem, "two"},
		{BlockPre, "a  b\nc\n"},
	}

	if len(doc.Blocks) != len(want) {
		t.Fatalf("got %d blocks %+v, want %d", len(doc.Blocks), doc.Blocks, len(want))
	}
	for i, w := range want {
		b := doc.Blocks[i]
		if b.Kind != w.kind || b.Text() != w.text {
			t.Errorf("block %d = (%v, %q), want (%v, %q)", i, b.Kind, b.Text(), w.kind, w.text)
		}
	}

	if doc.Blocks[0].Level != 1 {
		t.Errorf("heading level = %d, want 1", doc.Blocks[0].Level)
	}
	p := doc.Blocks[1]
	if len(p.Runs) != 3 || !p.Runs[1].Bold || p.Runs[0].Bold {
		t.Errorf("paragraph runs = %+v, want plain/bold/plain", p.Runs)
	}
	if !doc.Blocks[4].Runs[0].Code {
		t.Error("pre block not marked as code")
	}
}

func TestParseDocumentLinks(t *testing.T) {
	doc := ParseDocument(`<p>See <a href="/projects">projects</a> or <a href="https://example.com">elsewhere</a>.</p>`)
	if got := doc.Links(); !slices.Equal(got, []string{"/projects", "https://example.com"}) {
		t.Errorf("Links() = %v", got)
	}
	if got := doc.Blocks[0].Text(); got != "See projects or elsewhere." {
		t.Errorf("Text() = %q", got)
	}
}

func TestParseDocumentDropsScripts(t *testing.T) {
	doc := ParseDocument(`<p>ok</p><script>alert(1)</script><style>p{}</style>`)
	if len(doc.Blocks) != 1 || doc.Blocks[0].Text() != "ok" {
		t.Errorf("blocks = %+v, want only ok", doc.Blocks)
	}
}

func TestParseDocumentLooseText(t *testing.T) {
	doc := ParseDocument("just text <br> on two lines")
	if len(doc.Blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(doc.Blocks))
	}
	if got := doc.Blocks[0].Text(); got != "just text \n on two lines" {
		t.Errorf("Text() = %q", got)
	}
}

func TestParseDocumentEmpty(t *testing.T) {
	if doc := ParseDocument(""); len(doc.Blocks) != 0 {
		t.Errorf("empty input gave %d blocks", len(doc.Blocks))
	}
	if doc := ParseDocument("<p>   </p>"); len(doc.Blocks) != 0 {
		t.Errorf("blank paragraph gave %+v", doc.Blocks)
	}
}
