package postgres

import (
	"ishop/internal/domain/repository"

	"gorm.io/gorm"
)

// filterOpSQL maps list-query comparison operators onto SQL operators.
var filterOpSQL = map[repository.FilterOp]string{
	repository.OpEq:  "=",
	repository.OpNe:  "<>",
	repository.OpGt:  ">",
	repository.OpGte: ">=",
	repository.OpLt:  "<",
	repository.OpLte: "<=",
}

// applyFilters narrows tx by the query's comparison filters and keyword
// search. Field names outside the schema's column allowlist are dropped
// rather than interpolated, so a raw query string can never inject SQL.
// The post-filter count for pagination must be taken from the tx this
// returns.
func applyFilters(tx *gorm.DB, schema resourceSchema, q repository.ListQuery) *gorm.DB {
	for _, f := range q.Filters {
		if !schema.hasColumn(f.Field) {
			continue
		}
		op, ok := filterOpSQL[f.Op]
		if !ok {
			continue
		}
		tx = tx.Where(f.Field+" "+op+" ?", f.Value)
	}

	if q.Keyword != "" && len(schema.searchable) > 0 {
		pattern := "%" + q.Keyword + "%"
		var cond *gorm.DB
		for i, col := range schema.searchable {
			if i == 0 {
				cond = tx.Session(&gorm.Session{NewDB: true}).Where(col+" ILIKE ?", pattern)
			} else {
				cond = cond.Or(col+" ILIKE ?", pattern)
			}
		}
		tx = tx.Where(cond)
	}

	return tx
}

// applyProjection restricts the selected columns to the requested,
// schema-recognized subset. The primary key always rides along so mapped
// entities stay addressable.
func applyProjection(tx *gorm.DB, schema resourceSchema, fields []string) *gorm.DB {
	if len(fields) == 0 {
		return tx
	}

	selected := []string{"id"}
	for _, f := range fields {
		if schema.hasColumn(f) && f != "id" {
			selected = append(selected, f)
		}
	}

	return tx.Select(selected)
}

// applySort orders the result set; default is creation-order descending.
func applySort(tx *gorm.DB, schema resourceSchema, keys []repository.SortKey) *gorm.DB {
	applied := false
	for _, key := range keys {
		if !schema.hasColumn(key.Field) {
			continue
		}
		order := key.Field
		if key.Desc {
			order += " DESC"
		}
		tx = tx.Order(order)
		applied = true
	}

	if !applied {
		tx = tx.Order("created_at DESC")
	}

	return tx
}
