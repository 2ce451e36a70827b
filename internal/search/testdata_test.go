// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"strings"
	"time"
)

const sampleArxivFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:opensearch="http://a9.com/-/spec/opensearch/1.1/" xmlns:arxiv="http://arxiv.org/schemas/atom">
  <title type="html">ArXiv Query: search_query=all:graph</title>
  <id>http://arxiv.org/api/abc</id>
  <updated>2024-01-25T00:00:00-05:00</updated>
  <opensearch:totalResults>2</opensearch:totalResults>
  <opensearch:startIndex>0</opensearch:startIndex>
  <opensearch:itemsPerPage>10</opensearch:itemsPerPage>
  <entry>
    <id>http://arxiv.org/abs/2401.12345v2</id>
    <updated>2024-01-23T10:00:00Z</updated>
    <published>2024-01-22T18:30:00Z</published>
    <title>Graph Neural Networks
      for Molecules</title>
    <summary>  We study message passing on molecular graphs.
</summary>
    <author><name>Ada Lovelace</name></author>
    <author><name>Alan Turing</name></author>
    <link href="http://arxiv.org/abs/2401.12345v2" rel="alternate" type="text/html"/>
    <link title="pdf" href="http://arxiv.org/pdf/2401.12345v2" rel="related" type="application/pdf"/>
    <arxiv:primary_category term="cs.LG" scheme="http://arxiv.org/schemas/atom"/>
    <category term="cs.LG" scheme="http://arxiv.org/schemas/atom"/>
    <category term="q-bio.BM" scheme="http://arxiv.org/schemas/atom"/>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/hep-th/9901001v1</id>
    <title></title>
  </entry>
</feed>`

const sampleErrorFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:opensearch="http://a9.com/-/spec/opensearch/1.1/">
  <title type="html">ArXiv Query: id_list=bad</title>
  <id>http://arxiv.org/api/xyz</id>
  <opensearch:totalResults>1</opensearch:totalResults>
  <entry>
    <id>http://arxiv.org/api/errors#incorrect_id_format_for_bad</id>
    <title>Error</title>
    <summary>incorrect id format for bad</summary>
  </entry>
</feed>`

// testEntry describes one entry for buildFeed.
type testEntry struct {
	ID        string
	Title     string
	Summary   string
	Published time.Time
}

// buildFeed renders entries as an arXiv Atom feed. total < 0 omits
// opensearch:totalResults.
func buildFeed(total int, entries ...testEntry) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:opensearch="http://a9.com/-/spec/opensearch/1.1/">
  <title>ArXiv Query</title>
  <id>http://arxiv.org/api/test</id>
`)
	if total >= 0 {
		fmt.Fprintf(&b, "  <opensearch:totalResults>%d</opensearch:totalResults>\n", total)
	}
	for _, e := range entries {
		b.WriteString("  <entry>\n")
		fmt.Fprintf(&b, "    <id>http://arxiv.org/abs/%s</id>\n", e.ID)
		fmt.Fprintf(&b, "    <title>%s</title>\n", e.Title)
		fmt.Fprintf(&b, "    <summary>%s</summary>\n", e.Summary)
		if !e.Published.IsZero() {
			fmt.Fprintf(&b, "    <published>%s</published>\n", e.Published.UTC().Format(time.RFC3339))
		}
		b.WriteString("  </entry>\n")
	}
	b.WriteString("</feed>")
	return b.String()
}

// pageEntries returns n entries with sequential identifiers starting at first.
func pageEntries(first, n int) []testEntry {
	entries := make([]testEntry, n)
	for i := range entries {
		entries[i] = testEntry{
			ID:    fmt.Sprintf("2401.%05dv1", first+i),
			Title: fmt.Sprintf("Paper %d", first+i),
		}
	}
	return entries
}
