package assignments

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type Assignment struct {
	ID        int64     `json:"id"`
	ProjectID int64     `json:"project_id"`
	CompanyID int64     `json:"company_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Detail is an assignment joined with the project and company it links.
type Detail struct {
	ID              int64     `json:"id"`
	ProjectID       int64     `json:"project_id"`
	CompanyID       int64     `json:"company_id"`
	ProjectName     string    `json:"project_name"`
	ProjectStatus   string    `json:"project_status"`
	ProjectProvince string    `json:"project_province"`
	ProjectCity     string    `json:"project_city"`
	CompanyName     string    `json:"company_name"`
	CreatedAt       time.Time `json:"created_at"`
}

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// Create verifies both foreign keys before inserting. The project is checked
// first; when it is missing the company lookup is skipped. The existence
// checks are advisory only: concurrent creates for the same pair race at the
// unique constraint, which maps to ErrAlreadyAssigned.
func (r *Repo) Create(ctx context.Context, projectID, companyID int64) (Assignment, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx,
		`select exists (select 1 from projects where id = $1);`, projectID).
		Scan(&exists); err != nil {
		return Assignment{}, err
	}
	if !exists {
		return Assignment{}, ErrProjectNotFound
	}

	if err := r.db.QueryRowContext(ctx,
		`select exists (select 1 from companies where id = $1);`, companyID).
		Scan(&exists); err != nil {
		return Assignment{}, err
	}
	if !exists {
		return Assignment{}, ErrCompanyNotFound
	}

	const q = `
insert into assignments (project_id, company_id)
values ($1, $2)
returning id, created_at;
`
	a := Assignment{ProjectID: projectID, CompanyID: companyID}
	err := r.db.QueryRowContext(ctx, q, projectID, companyID).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return Assignment{}, ErrAlreadyAssigned
		}
		return Assignment{}, err
	}
	return a, nil
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	const q = `delete from assignments where id = $1;`

	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

func (r *Repo) List(ctx context.Context) ([]Detail, error) {
	const q = `
select a.id, a.project_id, a.company_id,
       p.name, p.status, p.province, p.city,
       c.name,
       a.created_at
from assignments a
join projects p on p.id = a.project_id
join companies c on c.id = a.company_id
order by a.created_at desc;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Detail, 0, 16)
	for rows.Next() {
		var d Detail
		if err := rows.Scan(&d.ID, &d.ProjectID, &d.CompanyID,
			&d.ProjectName, &d.ProjectStatus, &d.ProjectProvince, &d.ProjectCity,
			&d.CompanyName, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
