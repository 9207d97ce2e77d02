package db

import (
	"context"
	"strings"

	"github.com/fr0stylo/confhub/internal/db/queries"
)

// FieldMatch is one equality test against a JSON path in a document body.
type FieldMatch struct {
	Path  string
	Value any
}

// DocumentFilter selects documents of one type whose body satisfies every match.
type DocumentFilter struct {
	DocType string
	Matches []FieldMatch
}

const findDocumentSelect = `SELECT id, doc_type, body, revision, created_at, updated_at
FROM documents
WHERE doc_type = ?`

// FindDocument returns the most recently updated document matching filter, or
// sql.ErrNoRows. The WHERE clause grows with the match count, so this query is
// built here instead of in the generated package.
func (c *Database) FindDocument(ctx context.Context, filter DocumentFilter) (queries.Document, error) {
	var query strings.Builder
	query.WriteString(findDocumentSelect)
	args := make([]any, 0, 1+2*len(filter.Matches))
	args = append(args, filter.DocType)
	for _, m := range filter.Matches {
		query.WriteString("\n  AND json_extract(body, ?) = ?")
		args = append(args, m.Path, m.Value)
	}
	query.WriteString("\nORDER BY updated_at DESC, id\nLIMIT 1")

	var doc queries.Document
	err := c.conn.QueryRowContext(withQueryName(ctx, "FindDocument"), query.String(), args...).Scan(
		&doc.ID,
		&doc.DocType,
		&doc.Body,
		&doc.Revision,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)
	return doc, err
}
