// Package doctpl renders PDF documents from a declarative JSON template.
//
// A template describes pages as an ordered list of elements. Supported
// element types are heading, paragraph, list, table, rule, and spacer. All
// text is set in the Helvetica family; headings map levels 1-6 to fixed
// sizes.
//
// Example template:
//
//	{
//	  "title": "Quarterly Report",
//	  "pages": [{
//	    "elements": [
//	      {"type": "heading", "text": "Summary", "level": 1},
//	      {"type": "paragraph", "text": "Revenue grew in all regions."},
//	      {"type": "table", "columns": ["Region", "Revenue"],
//	       "rows": [["North", "1.2M"], ["South", "0.9M"]]}
//	    ]
//	  }]
//	}
package doctpl

// Document is the top-level template describing an entire PDF.
type Document struct {
	Title    string  `json:"title,omitempty"`
	Author   string  `json:"author,omitempty"`
	Subject  string  `json:"subject,omitempty"`
	PageSize string  `json:"pageSize,omitempty"` // A4 (default), A3, A5, Letter, Legal
	FontSize float64 `json:"fontSize,omitempty"` // body text size in points (default: 11)
	Pages    []Page  `json:"pages"`
}

// Page is a single page of the document.
type Page struct {
	Elements []Element `json:"elements"`
}

// Element is one block of page content. Type selects which other fields
// apply; unknown types are rejected at render time.
type Element struct {
	Type string `json:"type"` // heading, paragraph, list, table, rule, spacer

	// heading, paragraph
	Text  string `json:"text,omitempty"`
	Level int    `json:"level,omitempty"` // heading level 1-6 (default: 1)
	Align string `json:"align,omitempty"` // L (default), C, R
	Bold  bool   `json:"bold,omitempty"`  // paragraph weight

	// list
	Items   []string `json:"items,omitempty"`
	Ordered bool     `json:"ordered,omitempty"`

	// table
	Columns []string   `json:"columns,omitempty"`
	Rows    [][]string `json:"rows,omitempty"`

	// spacer
	Height float64 `json:"height,omitempty"` // vertical gap in points (default: 12)
}
