package query

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/pkg/constants"
	"github.com/raids-lab/agencyos/pkg/viewmodel"
)

var ErrNoOpenEntry = errors.New("no running time entry")

// Store reads and writes the agency tables.
type Store struct {
	db *gorm.DB
	q  *Query
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db, q: Use(db)}
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

// Scope narrows LoadCollections. Zero values load everything that is not archived.
type Scope struct {
	WorkspaceID string
	SpaceID     string
	FolderID    string
	ProjectID   string
	// FolderIDs restricts folders to the given set when non-nil. An empty set loads nothing.
	FolderIDs       []string
	IncludeArchived bool
	// ClientVisible keeps only projects and tasks shared with clients.
	ClientVisible bool
}

func (sc Scope) spaces(ctx context.Context, q *Query) ISpaceDo {
	s := q.Space
	do := s.WithContext(ctx)
	if sc.WorkspaceID != "" {
		do = do.Where(s.WorkspaceID.Eq(sc.WorkspaceID))
	}
	if sc.SpaceID != "" {
		do = do.Where(s.ID.Eq(sc.SpaceID))
	}
	return do
}

func (sc Scope) folders(ctx context.Context, q *Query) IFolderDo {
	f := q.Folder
	do := f.WithContext(ctx)
	if sc.WorkspaceID != "" || sc.SpaceID != "" {
		do = do.Where(f.Columns(f.SpaceID).In(sc.spaces(ctx, q).Select(q.Space.ID)))
	}
	if sc.FolderID != "" {
		do = do.Where(f.ID.Eq(sc.FolderID))
	}
	if sc.FolderIDs != nil {
		do = do.Where(f.ID.In(sc.FolderIDs...))
	}
	if !sc.IncludeArchived {
		do = do.Where(f.Archived.Is(false))
	}
	return do
}

func (sc Scope) projects(ctx context.Context, q *Query) IProjectDo {
	p := q.Project
	do := p.WithContext(ctx)
	if sc.WorkspaceID != "" || sc.SpaceID != "" || sc.FolderID != "" || sc.FolderIDs != nil || !sc.IncludeArchived {
		do = do.Where(p.Columns(p.FolderID).In(sc.folders(ctx, q).Select(q.Folder.ID)))
	}
	if sc.ProjectID != "" {
		do = do.Where(p.ID.Eq(sc.ProjectID))
	}
	if sc.ClientVisible {
		do = do.Where(p.ClientVisible.Is(true))
	}
	return do
}

func (sc Scope) tasks(ctx context.Context, q *Query) ITaskDo {
	t := q.Task
	do := t.WithContext(ctx).Where(t.Columns(t.ProjectID).In(sc.projects(ctx, q).Select(q.Project.ID)))
	if sc.ClientVisible {
		do = do.Where(t.ClientVisible.Is(true))
	}
	return do
}

// LoadCollections fetches the four entity lists of a scope concurrently.
func (s *Store) LoadCollections(ctx context.Context, scope Scope) (viewmodel.Collections, error) {
	var c viewmodel.Collections
	g, ctx := errgroup.WithContext(ctx)
	q := s.q

	g.Go(func() error {
		rows, err := scope.spaces(ctx, q).Order(q.Space.CreatedAt).Find()
		c.Spaces = lo.FromSlicePtr(rows)
		return err
	})
	g.Go(func() error {
		rows, err := scope.folders(ctx, q).Order(q.Folder.CreatedAt).Find()
		c.Folders = lo.FromSlicePtr(rows)
		return err
	})
	g.Go(func() error {
		rows, err := scope.projects(ctx, q).Order(q.Project.CreatedAt).Find()
		c.Projects = lo.FromSlicePtr(rows)
		return err
	})
	g.Go(func() error {
		rows, err := scope.tasks(ctx, q).Order(q.Task.CreatedAt).Find()
		c.Tasks = lo.FromSlicePtr(rows)
		return err
	})
	if err := g.Wait(); err != nil {
		return viewmodel.Collections{}, fmt.Errorf("load collections: %w", err)
	}
	return c, nil
}

// Paginate is a gorm scope for optional page parameters. Nil values disable paging.
func Paginate(pageIndex, pageSize *int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if pageIndex == nil || pageSize == nil || *pageSize <= 0 {
			return db
		}
		return db.Offset(max(*pageIndex, 0) * *pageSize).Limit(*pageSize)
	}
}

// Get loads one row of T by id.
func Get[T any](ctx context.Context, db *gorm.DB, id string) (*T, error) {
	var out T
	if err := db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// List loads rows of T matching filter and the total count before paging. Both scopes may be nil.
func List[T any](ctx context.Context, db *gorm.DB, filter, page func(*gorm.DB) *gorm.DB) ([]T, int64, error) {
	base := func() *gorm.DB {
		q := db.WithContext(ctx).Model(new(T))
		if filter != nil {
			q = q.Scopes(filter)
		}
		return q
	}
	var count int64
	if err := base().Count(&count).Error; err != nil {
		return nil, 0, err
	}
	q := base()
	if page != nil {
		q = q.Scopes(page)
	}
	rows := []T{}
	if err := q.Order("created_at").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, count, nil
}

func Create[T any](ctx context.Context, db *gorm.DB, v *T) error {
	return db.WithContext(ctx).Create(v).Error
}

// Update applies fields to the row of T with the given id and returns the updated row.
func Update[T any](ctx context.Context, db *gorm.DB, id string, fields map[string]any) (*T, error) {
	if len(fields) > 0 {
		res := db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(fields)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return Get[T](ctx, db, id)
}

func Delete[T any](ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// OpenTimeEntries returns running entries, of one user when userID is set.
func (s *Store) OpenTimeEntries(ctx context.Context, userID string, kind model.TimeEntryKind) ([]model.TimeEntry, error) {
	te := s.q.TimeEntry
	do := te.WithContext(ctx).Where(te.EndedAt.IsNull())
	if userID != "" {
		do = do.Where(te.UserID.Eq(userID))
	}
	if kind != "" {
		do = do.Where(te.Kind.Eq(kind))
	}
	entries, err := do.Order(te.StartedAt).Find()
	if err != nil {
		return nil, err
	}
	return lo.FromSlicePtr(entries), nil
}

// TimeEntries lists a user's entries that started inside [from, to).
func (s *Store) TimeEntries(ctx context.Context, userID string, from, to *time.Time) ([]model.TimeEntry, error) {
	te := s.q.TimeEntry
	do := te.WithContext(ctx)
	if userID != "" {
		do = do.Where(te.UserID.Eq(userID))
	}
	if from != nil {
		do = do.Where(te.StartedAt.Gte(*from))
	}
	if to != nil {
		do = do.Where(te.StartedAt.Lt(*to))
	}
	entries, err := do.Order(te.StartedAt.Desc()).Find()
	if err != nil {
		return nil, err
	}
	return lo.FromSlicePtr(entries), nil
}

// addTrackedHours adds hours to the tracked time of the task behind entry, if any.
func addTrackedHours(ctx context.Context, tx *Query, entry *model.TimeEntry) error {
	if entry.TaskID == nil || entry.Hours == 0 {
		return nil
	}
	t := tx.Task
	_, err := t.WithContext(ctx).
		Where(t.ID.Eq(*entry.TaskID)).
		UpdateSimple(t.TrackedHours.Add(entry.Hours))
	return err
}

// CloseTimeEntry stops a running entry and adds its hours to the tracked time of its task.
func (s *Store) CloseTimeEntry(ctx context.Context, id string, at time.Time) (*model.TimeEntry, error) {
	var entry *model.TimeEntry
	err := s.q.Transaction(func(tx *Query) error {
		te := tx.TimeEntry
		var err error
		entry, err = te.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(te.ID.Eq(id), te.EndedAt.IsNull()).
			First()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoOpenEntry
		}
		if err != nil {
			return err
		}
		entry.Close(at)
		if _, err := te.WithContext(ctx).
			Where(te.ID.Eq(id)).
			UpdateSimple(te.EndedAt.Value(*entry.EndedAt), te.Hours.Value(entry.Hours)); err != nil {
			return err
		}
		return addTrackedHours(ctx, tx, entry)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *Store) Task(ctx context.Context, id string) (*model.Task, error) {
	t := s.q.Task
	return t.WithContext(ctx).Where(t.ID.Eq(id)).First()
}

// StartTimeEntry stores a running entry.
func (s *Store) StartTimeEntry(ctx context.Context, entry *model.TimeEntry) error {
	entry.EndedAt = nil
	entry.Hours = 0
	return s.q.TimeEntry.WithContext(ctx).Create(entry)
}

// AddManualEntry stores a finished entry and adds its hours to the tracked time of its task.
func (s *Store) AddManualEntry(ctx context.Context, entry *model.TimeEntry) error {
	return s.q.Transaction(func(tx *Query) error {
		if err := tx.TimeEntry.WithContext(ctx).Create(entry); err != nil {
			return err
		}
		return addTrackedHours(ctx, tx, entry)
	})
}

type StatusCount struct {
	Status model.TaskStatus
	Count  int64
}

// CountTasksByStatus counts live tasks per status.
func (s *Store) CountTasksByStatus(ctx context.Context) ([]StatusCount, error) {
	t := s.q.Task
	var rows []StatusCount
	err := t.WithContext(ctx).
		Select(t.Status, t.ALL.Count().As("count")).
		Group(t.Status).
		Order(t.Status).
		Scan(&rows)
	return rows, err
}

// CountOverdueTasks counts open tasks due before today.
func (s *Store) CountOverdueTasks(ctx context.Context, today time.Time) (int64, error) {
	t := s.q.Task
	done := []driver.Valuer{model.TaskApproved, model.TaskComplete}
	return t.WithContext(ctx).
		Where(gen.Cond(clause.Lt{Column: clause.Column{Name: "due_date"}, Value: today.Format(constants.DateLayout)})...).
		Where(t.Status.NotIn(done...)).
		Count()
}

// Profiles loads the profiles with the given ids. Unknown ids are skipped.
func (s *Store) Profiles(ctx context.Context, ids []string) ([]model.Profile, error) {
	profiles := []model.Profile{}
	if len(ids) == 0 {
		return profiles, nil
	}
	p := s.q.Profile
	rows, err := p.WithContext(ctx).Where(p.ID.In(ids...)).Find()
	if err != nil {
		return nil, err
	}
	return append(profiles, lo.FromSlicePtr(rows)...), nil
}
