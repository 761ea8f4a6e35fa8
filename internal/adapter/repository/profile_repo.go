package repository

import (
	"context"
	"time"

	"cv-composer/internal/domain"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/pkg/errors"
)

// ProfileRepo reads profiles and section records from PostgreSQL.
type ProfileRepo struct {
	pool *pgxpool.Pool
}

func NewProfileRepo(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

const profileColumns = `id, COALESCE(description, ''), active, surnames, first_names,
	COALESCE(nationality, ''), COALESCE(birth_place, ''), birth_date, national_id, sex,
	COALESCE(marital_status, ''), COALESCE(driver_license, ''), COALESCE(phone, ''),
	COALESCE(landline, ''), COALESCE(work_address, ''), COALESCE(home_address, ''),
	COALESCE(website, ''), email, COALESCE(photo, ''),
	show_experience, show_courses, show_recognitions, show_academic_products,
	show_work_products, show_marketplace`

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	var birth *time.Time
	err := row.Scan(&p.ID, &p.Description, &p.Active, &p.Surnames, &p.FirstNames,
		&p.Nationality, &p.BirthPlace, &birth, &p.NationalID, &p.Sex,
		&p.MaritalStatus, &p.DriverLicense, &p.Phone,
		&p.Landline, &p.WorkAddress, &p.HomeAddress,
		&p.Website, &p.Email, &p.Photo,
		&p.Switches.Experience, &p.Switches.Courses, &p.Switches.Recognitions, &p.Switches.AcademicProducts,
		&p.Switches.WorkProducts, &p.Switches.Marketplace)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFoundError{Resource: "profile"}
		}
		return nil, errors.Wrap(err, "scan profile")
	}
	p.BirthDate = birth
	return &p, nil
}

func (r *ProfileRepo) FirstActiveProfile(ctx context.Context) (*domain.Profile, error) {
	return scanProfile(r.pool.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE active ORDER BY id LIMIT 1`))
}

func (r *ProfileRepo) FirstProfile(ctx context.Context) (*domain.Profile, error) {
	return scanProfile(r.pool.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles ORDER BY id LIMIT 1`))
}

// publishedFilter is appended to every record query; $2 carries publishedOnly.
const publishedFilter = ` WHERE profile_id = $1 AND (published OR NOT $2)`

// queryRows runs sql and scans each row with scan.
func queryRows[T any](ctx context.Context, pool *pgxpool.Pool, sql string, scan func(pgx.Rows) (T, error), args ...interface{}) ([]T, error) {
	rows, err := pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *ProfileRepo) Experiences(ctx context.Context, profileID int64, publishedOnly bool) ([]domain.Experience, error) {
	rows, err := queryRows(ctx, r.pool, `SELECT id, profile_id, position, company, location, company_email,
		COALESCE(company_website, ''), contact_name, contact_phone, start_date, end_date, duties, published,
		COALESCE(certificate_file, ''), COALESCE(certificate_link, '')
		FROM experiences`+publishedFilter+` ORDER BY start_date DESC, id`,
		func(row pgx.Rows) (domain.Experience, error) {
			var e domain.Experience
			err := row.Scan(&e.ID, &e.ProfileID, &e.Position, &e.Company, &e.Location, &e.CompanyEmail,
				&e.CompanyWebsite, &e.ContactName, &e.ContactPhone, &e.StartDate, &e.EndDate, &e.Duties, &e.Published,
				&e.Certificate.File, &e.Certificate.Link)
			return e, err
		}, profileID, publishedOnly)
	return rows, errors.Wrap(err, "query experiences")
}

func (r *ProfileRepo) Courses(ctx context.Context, profileID int64, publishedOnly bool) ([]domain.Course, error) {
	rows, err := queryRows(ctx, r.pool, `SELECT id, profile_id, name, start_date, end_date, total_hours, description,
		sponsor, contact_name, contact_phone, sponsor_email, published,
		COALESCE(certificate_file, ''), COALESCE(certificate_link, '')
		FROM courses`+publishedFilter+` ORDER BY end_date DESC, id`,
		func(row pgx.Rows) (domain.Course, error) {
			var c domain.Course
			err := row.Scan(&c.ID, &c.ProfileID, &c.Name, &c.StartDate, &c.EndDate, &c.TotalHours, &c.Description,
				&c.Sponsor, &c.ContactName, &c.ContactPhone, &c.SponsorEmail, &c.Published,
				&c.Certificate.File, &c.Certificate.Link)
			return c, err
		}, profileID, publishedOnly)
	return rows, errors.Wrap(err, "query courses")
}

func (r *ProfileRepo) Recognitions(ctx context.Context, profileID int64, publishedOnly bool) ([]domain.Recognition, error) {
	rows, err := queryRows(ctx, r.pool, `SELECT id, profile_id, kind, date, description, sponsor,
		contact_name, contact_phone, published,
		COALESCE(certificate_file, ''), COALESCE(certificate_link, '')
		FROM recognitions`+publishedFilter+` ORDER BY date DESC, id`,
		func(row pgx.Rows) (domain.Recognition, error) {
			var rc domain.Recognition
			err := row.Scan(&rc.ID, &rc.ProfileID, &rc.Kind, &rc.Date, &rc.Description, &rc.Sponsor,
				&rc.ContactName, &rc.ContactPhone, &rc.Published,
				&rc.Certificate.File, &rc.Certificate.Link)
			return rc, err
		}, profileID, publishedOnly)
	return rows, errors.Wrap(err, "query recognitions")
}

func (r *ProfileRepo) AcademicProducts(ctx context.Context, profileID int64, publishedOnly bool) ([]domain.AcademicProduct, error) {
	rows, err := queryRows(ctx, r.pool, `SELECT id, profile_id, name, classifier, description, published
		FROM academic_products`+publishedFilter+` ORDER BY id`,
		func(row pgx.Rows) (domain.AcademicProduct, error) {
			var a domain.AcademicProduct
			err := row.Scan(&a.ID, &a.ProfileID, &a.Name, &a.Classifier, &a.Description, &a.Published)
			return a, err
		}, profileID, publishedOnly)
	return rows, errors.Wrap(err, "query academic products")
}

func (r *ProfileRepo) WorkProducts(ctx context.Context, profileID int64, publishedOnly bool) ([]domain.WorkProduct, error) {
	rows, err := queryRows(ctx, r.pool, `SELECT id, profile_id, name, date, description, published
		FROM work_products`+publishedFilter+` ORDER BY date DESC, id`,
		func(row pgx.Rows) (domain.WorkProduct, error) {
			var w domain.WorkProduct
			err := row.Scan(&w.ID, &w.ProfileID, &w.Name, &w.Date, &w.Description, &w.Published)
			return w, err
		}, profileID, publishedOnly)
	return rows, errors.Wrap(err, "query work products")
}

func (r *ProfileRepo) MarketplaceItems(ctx context.Context, profileID int64, publishedOnly bool) ([]domain.MarketplaceItem, error) {
	rows, err := queryRows(ctx, r.pool, `SELECT id, profile_id, name, condition, description, price::float8,
		COALESCE(photo, ''), published_at, published
		FROM marketplace_items`+publishedFilter+` ORDER BY published_at DESC, id`,
		func(row pgx.Rows) (domain.MarketplaceItem, error) {
			var m domain.MarketplaceItem
			err := row.Scan(&m.ID, &m.ProfileID, &m.Name, &m.Condition, &m.Description, &m.Price,
				&m.Photo, &m.PublishedAt, &m.Published)
			return m, err
		}, profileID, publishedOnly)
	return rows, errors.Wrap(err, "query marketplace items")
}

func (r *ProfileRepo) UnifiedReport(ctx context.Context, section domain.Section) (*domain.UnifiedReport, error) {
	rep := domain.UnifiedReport{Section: section}
	err := r.pool.QueryRow(ctx, `SELECT file, updated_at FROM unified_reports WHERE section = $1`, string(section)).
		Scan(&rep.File, &rep.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFoundError{Resource: "unified report"}
		}
		return nil, errors.Wrap(err, "query unified report")
	}
	return &rep, nil
}
