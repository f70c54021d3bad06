// Package paging turns a ports.SearchQuery into GORM ordering, offset and limit
// clauses shared by every repository.
package paging

import (
	"fmt"
	"strings"

	"frosty/internal/core/ports"
	"frosty/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Columns maps the sort names accepted from callers to column names.
type Columns map[string]string

// Apply orders db by the column query.Sort() names, falling back to fallback when
// no sort is given, and restricts it to the requested page. Rows with equal sort
// keys are ordered by id so pages never overlap. A sort name missing from columns
// yields *errs.ValueIsInvalidError.
//
// Example:
//
//	db, err := paging.Apply(r.db.Model(&ProductDTO{}), query, sortable, "created_at")
//	if err != nil {
//	    return ports.Pagination[*product.Product]{}, err
//	}
//	err = db.Find(&dtos).Error
func Apply(db *gorm.DB, query ports.SearchQuery, columns Columns, fallback string) (*gorm.DB, error) {
	column := fallback
	if query.Sort() != "" {
		c, ok := columns[query.Sort()]
		if !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"sort",
				fmt.Errorf("cannot sort by %q", query.Sort()),
			)
		}
		column = c
	}

	desc := query.Direction() == ports.Desc

	return db.
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: desc}).
		Offset(query.Offset()).
		Limit(query.PerPage()), nil
}

// Contains returns a LIKE pattern matching values that contain terms, ignoring case
// when compared against LOWER(column).
func Contains(terms string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(terms))
	return "%" + escaped + "%"
}
