package projects

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

var ErrNotFound = errors.New("project not found")

type Project struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Budget    float64   `json:"budget"`
	Status    string    `json:"status"`
	Province  string    `json:"province"`
	City      string    `json:"city"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewProject carries the caller-supplied fields for an insert. The name is
// expected to be profanity-filtered before it reaches the repository.
type NewProject struct {
	Name      string
	Budget    float64
	Status    string
	Province  string
	City      string
	Latitude  float64
	Longitude float64
}

// UpdateProject is the mutable subset: name, budget, status, province.
type UpdateProject struct {
	Name     string
	Budget   float64
	Status   string
	Province string
}

type Stats struct {
	TotalProjects int64            `json:"total_projects"`
	TotalBudget   float64          `json:"total_budget"`
	AverageBudget float64          `json:"average_budget"`
	ByStatus      map[string]int64 `json:"by_status"`
	ByProvince    map[string]int64 `json:"by_province"`
}

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Create(ctx context.Context, in NewProject) (Project, error) {
	const q = `
insert into projects (name, budget, status, province, city, latitude, longitude)
values ($1, $2, $3, $4, $5, $6, $7)
returning id, name, budget, status, province, city, latitude, longitude, created_at, updated_at;
`
	var p Project
	err := r.db.QueryRowContext(ctx, q,
		in.Name, in.Budget, in.Status, in.Province, in.City, in.Latitude, in.Longitude).
		Scan(&p.ID, &p.Name, &p.Budget, &p.Status, &p.Province, &p.City,
			&p.Latitude, &p.Longitude, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return Project{}, err
	}
	return p, nil
}

func (r *Repo) List(ctx context.Context) ([]Project, error) {
	const q = `
select id, name, budget, status, province, city, latitude, longitude, created_at, updated_at
from projects
order by created_at desc;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Project, 0, 16)
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Budget, &p.Status, &p.Province, &p.City,
			&p.Latitude, &p.Longitude, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) Get(ctx context.Context, id int64) (Project, error) {
	const q = `
select id, name, budget, status, province, city, latitude, longitude, created_at, updated_at
from projects
where id = $1;
`
	var p Project
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&p.ID, &p.Name, &p.Budget, &p.Status, &p.Province, &p.City,
			&p.Latitude, &p.Longitude, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Project{}, ErrNotFound
	}
	if err != nil {
		return Project{}, err
	}
	return p, nil
}

func (r *Repo) Update(ctx context.Context, id int64, in UpdateProject) (Project, error) {
	const q = `
update projects
set name = $2, budget = $3, status = $4, province = $5, updated_at = now()
where id = $1
returning id, name, budget, status, province, city, latitude, longitude, created_at, updated_at;
`
	var p Project
	err := r.db.QueryRowContext(ctx, q, id, in.Name, in.Budget, in.Status, in.Province).
		Scan(&p.ID, &p.Name, &p.Budget, &p.Status, &p.Province, &p.City,
			&p.Latitude, &p.Longitude, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Project{}, ErrNotFound
	}
	if err != nil {
		return Project{}, err
	}
	return p, nil
}

// Delete removes a project; the database cascades to its assignments.
func (r *Repo) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `delete from projects where id = $1;`

	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *Repo) Stats(ctx context.Context) (Stats, error) {
	s := Stats{
		ByStatus:   map[string]int64{},
		ByProvince: map[string]int64{},
	}

	const totals = `
select count(*), coalesce(sum(budget), 0), coalesce(avg(budget), 0)
from projects;
`
	if err := r.db.QueryRowContext(ctx, totals).
		Scan(&s.TotalProjects, &s.TotalBudget, &s.AverageBudget); err != nil {
		return Stats{}, err
	}

	const byStatus = `select status, count(*) from projects group by status;`
	rows, err := r.db.QueryContext(ctx, byStatus)
	if err != nil {
		return Stats{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var k string
		var n int64
		if err := rows.Scan(&k, &n); err != nil {
			return Stats{}, err
		}
		s.ByStatus[k] = n
	}
	if err := rows.Err(); err != nil {
		return Stats{}, err
	}

	const byProvince = `select province, count(*) from projects group by province;`
	rows2, err := r.db.QueryContext(ctx, byProvince)
	if err != nil {
		return Stats{}, err
	}
	defer rows2.Close()
	for rows2.Next() {
		var k string
		var n int64
		if err := rows2.Scan(&k, &n); err != nil {
			return Stats{}, err
		}
		s.ByProvince[k] = n
	}
	return s, rows2.Err()
}
