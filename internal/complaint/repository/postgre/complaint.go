package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"smartcity-complaints/internal/complaint/repository"
	"smartcity-complaints/internal/model"
)

// CreateComplaint inserts a new complaint row and returns the created
// entity. The single INSERT..RETURNING statement is the per-pipeline
// transaction scope: all fields commit or none do.
func (r *implRepository) CreateComplaint(ctx context.Context, opt repository.CreateComplaintOptions) (model.Complaint, error) {
	const query = `
		INSERT INTO complaints (citizen_name, message, category, reply, action, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at`

	c := model.Complaint{
		CitizenName: opt.CitizenName,
		Message:     opt.Message,
		Category:    opt.Category,
		Reply:       opt.Reply,
		Action:      opt.Action,
	}

	err := r.db.QueryRowContext(ctx, query,
		opt.CitizenName, opt.Message, opt.Category, opt.Reply, opt.Action,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateComplaint"), err)

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Class() == "23" { // integrity constraint violation
			return model.Complaint{}, repository.ErrConstraintViolated
		}
		return model.Complaint{}, repository.ErrFailedToInsert
	}

	return c, nil
}

// GetOneComplaint retrieves a single complaint by the provided filters.
// Returns zero-value Complaint (ID == 0) when not found.
func (r *implRepository) GetOneComplaint(ctx context.Context, opt repository.GetOneComplaintOptions) (model.Complaint, error) {
	const query = `
		SELECT id, citizen_name, message, category, reply, action, created_at
		FROM complaints
		WHERE id = $1
		LIMIT 1`

	var c model.Complaint
	err := r.db.QueryRowContext(ctx, query, opt.ID).Scan(
		&c.ID, &c.CitizenName, &c.Message, &c.Category, &c.Reply, &c.Action, &c.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Complaint{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneComplaint"), err)
		return model.Complaint{}, repository.ErrFailedToGet
	}
	return c, nil
}

// ListComplaints returns a paginated list of complaints, newest first,
// and the total count.
func (r *implRepository) ListComplaints(ctx context.Context, opt repository.ListComplaintsOptions) ([]model.Complaint, int, error) {
	where, args := r.buildListFilter(opt)

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM complaints %s`, where)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListComplaints"), err)
		return nil, 0, repository.ErrFailedToList
	}

	query := fmt.Sprintf(`
		SELECT id, citizen_name, message, category, reply, action, created_at
		FROM complaints %s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, opt.Limit, opt.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListComplaints"), err)
		return nil, 0, repository.ErrFailedToList
	}
	defer rows.Close()

	var complaints []model.Complaint
	for rows.Next() {
		var c model.Complaint
		if err := rows.Scan(&c.ID, &c.CitizenName, &c.Message, &c.Category, &c.Reply, &c.Action, &c.CreatedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListComplaints"), err)
			return nil, 0, repository.ErrFailedToList
		}
		complaints = append(complaints, c)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListComplaints"), err)
		return nil, 0, repository.ErrFailedToList
	}

	return complaints, total, nil
}

func (r *implRepository) buildListFilter(opt repository.ListComplaintsOptions) (string, []interface{}) {
	if opt.Category == "" {
		return "", nil
	}
	return "WHERE category = $1", []interface{}{opt.Category}
}
