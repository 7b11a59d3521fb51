package companies

import (
	"context"
	"database/sql"
	"errors"
)

var ErrNotFound = errors.New("company not found")

type Company struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Province string  `json:"province"`
	City     string  `json:"city"`
	Email    *string `json:"email,omitempty"`
	Number   *string `json:"number,omitempty"`
}

type NewCompany struct {
	Name     string
	Province string
	City     string
	Email    *string
	Number   *string
}

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Create(ctx context.Context, in NewCompany) (Company, error) {
	const q = `
insert into companies (name, province, city, email, number)
values ($1, $2, $3, $4, $5)
returning id, name, province, city, email, number;
`
	return r.scanOne(r.db.QueryRowContext(ctx, q, in.Name, in.Province, in.City, in.Email, in.Number))
}

func (r *Repo) List(ctx context.Context) ([]Company, error) {
	const q = `
select id, name, province, city, email, number
from companies
order by id;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Company, 0, 16)
	for rows.Next() {
		var co Company
		var email, number sql.NullString
		if err := rows.Scan(&co.ID, &co.Name, &co.Province, &co.City, &email, &number); err != nil {
			return nil, err
		}
		co.Email = nullableString(email)
		co.Number = nullableString(number)
		out = append(out, co)
	}
	return out, rows.Err()
}

func (r *Repo) Get(ctx context.Context, id int64) (Company, error) {
	const q = `
select id, name, province, city, email, number
from companies
where id = $1;
`
	co, err := r.scanOne(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Company{}, ErrNotFound
	}
	return co, err
}

// Delete removes a company; the database cascades to its assignments.
func (r *Repo) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `delete from companies where id = $1;`

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

func (r *Repo) scanOne(row *sql.Row) (Company, error) {
	var co Company
	var email, number sql.NullString
	if err := row.Scan(&co.ID, &co.Name, &co.Province, &co.City, &email, &number); err != nil {
		return Company{}, err
	}
	co.Email = nullableString(email)
	co.Number = nullableString(number)
	return co, nil
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}
