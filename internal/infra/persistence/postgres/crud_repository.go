package postgres

import (
	"context"

	domainerrors "ishop/internal/domain/errors"
	"ishop/internal/domain/repository"
	"ishop/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// resourceSchema describes one resource collection for the generic CRUD
// operations: its entity kind (used in not-found messages), the text
// columns keyword search runs over, the static allowlist of columns a
// partial update may touch, and the full set of exposed columns that
// filters, sorts and projections are checked against.
type resourceSchema struct {
	kind       string
	searchable []string
	updatable  map[string]struct{}
	columns    map[string]struct{}
}

func newResourceSchema(kind string, searchable, updatable, extraColumns []string) resourceSchema {
	s := resourceSchema{
		kind:       kind,
		searchable: searchable,
		updatable:  make(map[string]struct{}, len(updatable)),
		columns:    make(map[string]struct{}),
	}
	for _, c := range updatable {
		s.updatable[c] = struct{}{}
		s.columns[c] = struct{}{}
	}
	for _, c := range extraColumns {
		s.columns[c] = struct{}{}
	}
	for _, c := range searchable {
		s.columns[c] = struct{}{}
	}

	return s
}

func (s resourceSchema) hasColumn(name string) bool {
	_, ok := s.columns[name]

	return ok
}

// allowedUpdates filters a partial-update map down to the schema's static
// updatable allowlist. Anything else a client supplies is dropped.
func (s resourceSchema) allowedUpdates(fields map[string]any) map[string]any {
	allowed := make(map[string]any, len(fields))
	for k, v := range fields {
		if _, ok := s.updatable[k]; ok {
			allowed[k] = v
		}
	}

	return allowed
}

// crudRepository implements repository.CRUDRepository generically over a
// GORM model M and a domain entity E. Concrete repositories embed it and
// add entity-specific lookups.
type crudRepository[M any, E any] struct {
	db       *gorm.DB
	schema   resourceSchema
	toEntity func(*M) *E
	toModel  func(*E) *M
	// preload lists associations loaded on every read.
	preload []string
}

func newCRUDRepository[M any, E any](
	db *gorm.DB,
	schema resourceSchema,
	toEntity func(*M) *E,
	toModel func(*E) *M,
	preload ...string,
) *crudRepository[M, E] {
	return &crudRepository[M, E]{
		db:       db,
		schema:   schema,
		toEntity: toEntity,
		toModel:  toModel,
		preload:  preload,
	}
}

func (r *crudRepository[M, E]) query(ctx context.Context) *gorm.DB {
	tx := r.db.WithContext(ctx)
	for _, assoc := range r.preload {
		tx = tx.Preload(assoc)
	}

	return tx
}

// Insert persists a new entity and copies generated fields back.
func (r *crudRepository[M, E]) Insert(ctx context.Context, entity *E) error {
	m := r.toModel(entity)

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("failed to create " + r.schema.kind)
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid reference on " + r.schema.kind)
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required field on " + r.schema.kind)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create "+r.schema.kind)
	}

	*entity = *r.toEntity(m)

	return nil
}

// FindByID retrieves a single entity by its unique ID.
func (r *crudRepository[M, E]) FindByID(ctx context.Context, id uuid.UUID) (*E, error) {
	var m M
	if err := r.query(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.NewNotFoundError(r.schema.kind, id)
		}

		return nil, errors.Wrap(err, "failed to find "+r.schema.kind+" by id")
	}

	return r.toEntity(&m), nil
}

// UpdateFields applies a partial update restricted to the updatable-field
// allowlist and returns the updated entity. Empty updates degrade to a
// plain read so an all-empty input leaves the record untouched.
func (r *crudRepository[M, E]) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) (*E, error) {
	allowed := r.schema.allowedUpdates(fields)

	if len(allowed) > 0 {
		var m M
		res := r.db.WithContext(ctx).Model(&m).Where("id = ?", id).Updates(allowed)
		if res.Error != nil {
			if isUniqueConstraintViolation(res.Error) {
				return nil, domainerrors.ErrConflict.WrapMessage("failed to update " + r.schema.kind)
			}

			return nil, domainerrors.NewDatabaseExecuteError(res.Error, "failed to update "+r.schema.kind)
		}
		if res.RowsAffected == 0 {
			return nil, domainerrors.NewNotFoundError(r.schema.kind, id)
		}
	}

	return r.FindByID(ctx, id)
}

// DeleteByID removes the entity with the given ID.
func (r *crudRepository[M, E]) DeleteByID(ctx context.Context, id uuid.UUID) error {
	var m M
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&m)
	if res.Error != nil {
		return domainerrors.NewDatabaseExecuteError(res.Error, "failed to delete "+r.schema.kind)
	}
	if res.RowsAffected == 0 {
		return domainerrors.NewNotFoundError(r.schema.kind, id)
	}

	return nil
}

// List performs a bounded collection read. The count driving pagination
// is taken after filters and keyword search so NumberOfPages matches the
// filtered result set.
func (r *crudRepository[M, E]) List(ctx context.Context, q repository.ListQuery) ([]*E, repository.Pagination, error) {
	q.Normalize()

	var m M
	filtered := applyFilters(r.query(ctx).Model(&m), r.schema, q)

	var total int64
	if err := filtered.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, repository.Pagination{}, errors.Wrap(err, "failed to count "+r.schema.kind)
	}

	tx := applyProjection(filtered, r.schema, q.Fields)
	tx = applySort(tx, r.schema, q.Sort)
	tx = tx.Offset(q.Offset()).Limit(q.Limit)

	var models []*M
	if err := tx.Find(&models).Error; err != nil {
		return nil, repository.Pagination{}, errors.Wrap(err, "failed to list "+r.schema.kind)
	}

	entities := make([]*E, len(models))
	for i, mm := range models {
		entities[i] = r.toEntity(mm)
	}

	return entities, repository.Paginate(total, q.Page, q.Limit), nil
}
