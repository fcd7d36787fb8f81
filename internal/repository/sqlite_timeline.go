package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rowanveldt/chronolane/internal/domain"
)

// itemColumns is the canonical SELECT column list for timeline_items.
const itemColumns = `id, title, type, start_at, end_at, duration_min, percent_complete,
		group_id, parent_id, baseline_id, calendar_id, tags, created_at, updated_at`

// SQLiteTimelineRepo implements TimelineRepo using a SQLite database.
type SQLiteTimelineRepo struct {
	db *sql.DB
}

// NewSQLiteTimelineRepo creates a new SQLiteTimelineRepo.
func NewSQLiteTimelineRepo(db *sql.DB) *SQLiteTimelineRepo {
	return &SQLiteTimelineRepo{db: db}
}

func (r *SQLiteTimelineRepo) EnsureProject(ctx context.Context, projectID, name string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO NOTHING`,
		projectID, name, now, now)
	if err != nil {
		return fmt.Errorf("ensuring project: %w", err)
	}
	return nil
}

func (r *SQLiteTimelineRepo) LoadSnapshot(ctx context.Context, opts FetchOptions) (*domain.Snapshot, error) {
	snap := &domain.Snapshot{ProjectID: opts.ProjectID}

	if err := r.loadItems(ctx, snap, opts); err != nil {
		return nil, err
	}
	if err := r.loadGroups(ctx, snap, opts.ProjectID); err != nil {
		return nil, err
	}
	if err := r.loadMilestones(ctx, snap, opts.ProjectID); err != nil {
		return nil, err
	}
	if err := r.loadDependencies(ctx, snap, opts.ProjectID); err != nil {
		return nil, err
	}
	if err := r.loadBaselines(ctx, snap, opts.ProjectID); err != nil {
		return nil, err
	}
	if err := r.loadOverlays(ctx, snap, opts.ProjectID); err != nil {
		return nil, err
	}
	if err := r.loadWorkload(ctx, snap, opts.ProjectID); err != nil {
		return nil, err
	}
	return snap, nil
}

func (r *SQLiteTimelineRepo) loadItems(ctx context.Context, snap *domain.Snapshot, opts FetchOptions) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM timeline_items WHERE project_id = ? ORDER BY id`,
		opts.ProjectID)
	if err != nil {
		return fmt.Errorf("loading items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return err
		}
		if len(opts.Filters) > 0 && !hasAnyTag(it.Tags, opts.Filters) {
			continue
		}
		snap.Items = append(snap.Items, it)
	}
	return rows.Err()
}

func scanItem(rows *sql.Rows) (*domain.Item, error) {
	var it domain.Item
	var startAt, endAt *string
	var percent *float64
	var tags, createdAt, updatedAt string
	var itemType string
	if err := rows.Scan(&it.ID, &it.Title, &itemType, &startAt, &endAt,
		&it.DurationMinutes, &percent, &it.GroupID, &it.ParentID,
		&it.BaselineID, &it.CalendarID, &tags, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("scanning item: %w", err)
	}
	it.Type = domain.ItemType(itemType)
	it.Start = scanNullableTime(startAt)
	it.End = scanNullableTime(endAt)
	it.PercentComplete = percent
	it.Tags = splitTags(tags)
	if t := domain.ParseTime(createdAt); t != nil {
		it.CreatedAt = *t
	}
	if t := domain.ParseTime(updatedAt); t != nil {
		it.UpdatedAt = *t
	}
	return &it, nil
}

func hasAnyTag(tags, filters []string) bool {
	for _, f := range filters {
		for _, t := range tags {
			if t == f {
				return true
			}
		}
	}
	return false
}

func (r *SQLiteTimelineRepo) loadGroups(ctx context.Context, snap *domain.Snapshot, projectID string) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, parent_id, order_index, color
		 FROM timeline_groups WHERE project_id = ? ORDER BY order_index, id`, projectID)
	if err != nil {
		return fmt.Errorf("loading groups: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var g domain.Group
		var parent *string
		if err := rows.Scan(&g.ID, &g.Name, &parent, &g.OrderIndex, &g.Color); err != nil {
			return fmt.Errorf("scanning group: %w", err)
		}
		if parent != nil {
			g.ParentID = *parent
		}
		snap.Groups = append(snap.Groups, &g)
	}
	return rows.Err()
}

func (r *SQLiteTimelineRepo) loadMilestones(ctx context.Context, snap *domain.Snapshot, projectID string) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, date, color FROM timeline_milestones WHERE project_id = ? ORDER BY id`, projectID)
	if err != nil {
		return fmt.Errorf("loading milestones: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var m domain.Milestone
		var date *string
		if err := rows.Scan(&m.ID, &m.Name, &date, &m.Color); err != nil {
			return fmt.Errorf("scanning milestone: %w", err)
		}
		m.Date = scanNullableTime(date)
		snap.Milestones = append(snap.Milestones, &m)
	}
	return rows.Err()
}

func (r *SQLiteTimelineRepo) loadDependencies(ctx context.Context, snap *domain.Snapshot, projectID string) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, from_id, to_id, type, lead_lag_min
		 FROM timeline_dependencies WHERE project_id = ? ORDER BY id`, projectID)
	if err != nil {
		return fmt.Errorf("loading dependencies: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var d domain.Dependency
		var depType string
		if err := rows.Scan(&d.ID, &d.FromID, &d.ToID, &depType, &d.LeadLagMinutes); err != nil {
			return fmt.Errorf("scanning dependency: %w", err)
		}
		d.Type = domain.DependencyType(depType)
		snap.Dependencies = append(snap.Dependencies, &d)
	}
	return rows.Err()
}

func (r *SQLiteTimelineRepo) loadBaselines(ctx context.Context, snap *domain.Snapshot, projectID string) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, item_id, start_at, end_at, duration_min, saved_at
		 FROM timeline_baselines WHERE project_id = ? ORDER BY id`, projectID)
	if err != nil {
		return fmt.Errorf("loading baselines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var b domain.Baseline
		var startAt, endAt *string
		var savedAt string
		if err := rows.Scan(&b.ID, &b.ItemID, &startAt, &endAt, &b.DurationMinutes, &savedAt); err != nil {
			return fmt.Errorf("scanning baseline: %w", err)
		}
		b.Start = scanNullableTime(startAt)
		b.End = scanNullableTime(endAt)
		if t := domain.ParseTime(savedAt); t != nil {
			b.SavedAt = *t
		}
		snap.Baselines = append(snap.Baselines, &b)
	}
	return rows.Err()
}

func (r *SQLiteTimelineRepo) loadOverlays(ctx context.Context, snap *domain.Snapshot, projectID string) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, kind, label FROM timeline_overlays WHERE project_id = ? ORDER BY id`, projectID)
	if err != nil {
		return fmt.Errorf("loading overlays: %w", err)
	}
	defer rows.Close()
	byID := make(map[string]*domain.Overlay)
	for rows.Next() {
		var o domain.Overlay
		if err := rows.Scan(&o.ID, &o.Kind, &o.Label); err != nil {
			return fmt.Errorf("scanning overlay: %w", err)
		}
		byID[o.ID] = &o
		snap.Overlays = append(snap.Overlays, &o)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	points, err := r.db.QueryContext(ctx,
		`SELECT p.overlay_id, p.item_id, p.value
		 FROM overlay_points p
		 JOIN timeline_overlays o ON p.overlay_id = o.id
		 WHERE o.project_id = ? ORDER BY p.overlay_id, p.item_id`, projectID)
	if err != nil {
		return fmt.Errorf("loading overlay points: %w", err)
	}
	defer points.Close()
	for points.Next() {
		var overlayID string
		var p domain.OverlayPoint
		if err := points.Scan(&overlayID, &p.ItemID, &p.Value); err != nil {
			return fmt.Errorf("scanning overlay point: %w", err)
		}
		if o := byID[overlayID]; o != nil {
			o.Points = append(o.Points, p)
		}
	}
	return points.Err()
}

func (r *SQLiteTimelineRepo) loadWorkload(ctx context.Context, snap *domain.Snapshot, projectID string) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, item_id, person_id, team_id, allocation_min
		 FROM workload_metrics WHERE project_id = ? ORDER BY id`, projectID)
	if err != nil {
		return fmt.Errorf("loading workload metrics: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var w domain.WorkloadMetric
		if err := rows.Scan(&w.ID, &w.ItemID, &w.PersonID, &w.TeamID, &w.AllocationMinutes); err != nil {
			return fmt.Errorf("scanning workload metric: %w", err)
		}
		snap.Workload = append(snap.Workload, &w)
	}
	return rows.Err()
}

// SaveSnapshot replaces the project's persisted timeline in one
// transaction: delete everything, reinsert from the snapshot.
func (r *SQLiteTimelineRepo) SaveSnapshot(ctx context.Context, projectID string, snap *domain.Snapshot) error {
	if snap == nil {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting save transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	tables := []string{
		"overlay_points", "timeline_overlays", "workload_metrics",
		"timeline_baselines", "timeline_dependencies",
		"timeline_milestones", "timeline_items", "timeline_groups",
	}
	for _, table := range tables {
		query := `DELETE FROM ` + table + ` WHERE project_id = ?`
		if table == "overlay_points" {
			query = `DELETE FROM overlay_points WHERE overlay_id IN
				(SELECT id FROM timeline_overlays WHERE project_id = ?)`
		}
		if _, err := tx.ExecContext(ctx, query, projectID); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for _, g := range snap.Groups {
		var parent any
		if g.ParentID != "" {
			parent = g.ParentID
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO timeline_groups (id, project_id, name, parent_id, order_index, color)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			g.ID, projectID, g.Name, parent, g.OrderIndex, g.Color); err != nil {
			return fmt.Errorf("inserting group: %w", err)
		}
	}
	for _, it := range snap.Items {
		if err := insertItem(ctx, tx, projectID, it); err != nil {
			return err
		}
	}
	for _, m := range snap.Milestones {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO timeline_milestones (id, project_id, name, date, color) VALUES (?, ?, ?, ?, ?)`,
			m.ID, projectID, m.Name, nullableTimeToString(m.Date), m.Color); err != nil {
			return fmt.Errorf("inserting milestone: %w", err)
		}
	}
	for _, d := range snap.Dependencies {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO timeline_dependencies (id, project_id, from_id, to_id, type, lead_lag_min)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			d.ID, projectID, d.FromID, d.ToID, string(d.Type), d.LeadLagMinutes); err != nil {
			return fmt.Errorf("inserting dependency: %w", err)
		}
	}
	for _, b := range snap.Baselines {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO timeline_baselines (id, project_id, item_id, start_at, end_at, duration_min, saved_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			b.ID, projectID, b.ItemID, nullableTimeToString(b.Start), nullableTimeToString(b.End),
			b.DurationMinutes, b.SavedAt.UTC().Format(time.RFC3339)); err != nil {
			return fmt.Errorf("inserting baseline: %w", err)
		}
	}
	for _, o := range snap.Overlays {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO timeline_overlays (id, project_id, kind, label) VALUES (?, ?, ?, ?)`,
			o.ID, projectID, o.Kind, o.Label); err != nil {
			return fmt.Errorf("inserting overlay: %w", err)
		}
		for _, p := range o.Points {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO overlay_points (overlay_id, item_id, value) VALUES (?, ?, ?)`,
				o.ID, p.ItemID, p.Value); err != nil {
				return fmt.Errorf("inserting overlay point: %w", err)
			}
		}
	}
	for _, w := range snap.Workload {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO workload_metrics (id, project_id, item_id, person_id, team_id, allocation_min)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			w.ID, projectID, w.ItemID, w.PersonID, w.TeamID, w.AllocationMinutes); err != nil {
			return fmt.Errorf("inserting workload metric: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save transaction: %w", err)
	}
	committed = true
	return nil
}

func (r *SQLiteTimelineRepo) CreateItem(ctx context.Context, projectID string, item *domain.Item) error {
	return insertItem(ctx, r.db, projectID, item)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertItem(ctx context.Context, db execer, projectID string, it *domain.Item) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO timeline_items (id, project_id, title, type, start_at, end_at, duration_min,
			percent_complete, group_id, parent_id, baseline_id, calendar_id, tags, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		it.ID,
		projectID,
		it.Title,
		string(it.Type),
		nullableTimeToString(it.Start),
		nullableTimeToString(it.End),
		it.DurationMinutes,
		it.PercentComplete,
		it.GroupID,
		it.ParentID,
		it.BaselineID,
		it.CalendarID,
		joinTags(it.Tags),
		it.CreatedAt.UTC().Format(time.RFC3339),
		it.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting item: %w", err)
	}
	return nil
}
