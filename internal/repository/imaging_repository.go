package repository

import (
	"context"

	"github.com/spec-kit/dental-records/internal/domain"
)

// ImagingRepository stores references to intraoral photographs and X-rays.
type ImagingRepository interface {
	CreatePicture(ctx context.Context, picture *domain.IntraoralPicture) error
	ListPictures(ctx context.Context, patientID int64) ([]domain.IntraoralPicture, error)
	DeletePicture(ctx context.Context, id int64) error

	CreateXRay(ctx context.Context, xray *domain.XRay) error
	ListXRays(ctx context.Context, patientID int64) ([]domain.XRay, error)
	DeleteXRay(ctx context.Context, id int64) error
}

type imagingRepository struct {
	db DBTX
}

// NewImagingRepository constructs repository.
func NewImagingRepository(db DBTX) ImagingRepository {
	return &imagingRepository{db: db}
}

func (r *imagingRepository) CreatePicture(ctx context.Context, p *domain.IntraoralPicture) error {
	const query = `
        INSERT INTO intraoral_pictures (patient_id, image_url, image_path, description, picture_type, taken_date)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query,
		p.PatientID,
		p.ImageURL,
		p.ImagePath,
		p.Description,
		p.PictureType,
		p.TakenDate,
	).Scan(&p.ID, &p.CreatedAt)
	return translate(err)
}

func (r *imagingRepository) ListPictures(ctx context.Context, patientID int64) ([]domain.IntraoralPicture, error) {
	const query = `
        SELECT id, patient_id, image_url, image_path, description, picture_type, taken_date, created_at
        FROM intraoral_pictures WHERE patient_id=$1
        ORDER BY taken_date DESC, id DESC`
	rows, err := r.db.Query(ctx, query, patientID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	pictures := []domain.IntraoralPicture{}
	for rows.Next() {
		var p domain.IntraoralPicture
		if err := rows.Scan(
			&p.ID,
			&p.PatientID,
			&p.ImageURL,
			&p.ImagePath,
			&p.Description,
			&p.PictureType,
			&p.TakenDate,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		pictures = append(pictures, p)
	}
	return pictures, rows.Err()
}

func (r *imagingRepository) DeletePicture(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM intraoral_pictures WHERE id=$1`, id)
	if err != nil {
		return translate(err)
	}
	return requireAffected(tag)
}

func (r *imagingRepository) CreateXRay(ctx context.Context, x *domain.XRay) error {
	const query = `
        INSERT INTO xrays (patient_id, image_url, image_path, xray_type, description, taken_date)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query,
		x.PatientID,
		x.ImageURL,
		x.ImagePath,
		x.XRayType,
		x.Description,
		x.TakenDate,
	).Scan(&x.ID, &x.CreatedAt)
	return translate(err)
}

func (r *imagingRepository) ListXRays(ctx context.Context, patientID int64) ([]domain.XRay, error) {
	const query = `
        SELECT id, patient_id, image_url, image_path, xray_type, description, taken_date, created_at
        FROM xrays WHERE patient_id=$1
        ORDER BY taken_date DESC, id DESC`
	rows, err := r.db.Query(ctx, query, patientID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	xrays := []domain.XRay{}
	for rows.Next() {
		var x domain.XRay
		if err := rows.Scan(
			&x.ID,
			&x.PatientID,
			&x.ImageURL,
			&x.ImagePath,
			&x.XRayType,
			&x.Description,
			&x.TakenDate,
			&x.CreatedAt,
		); err != nil {
			return nil, err
		}
		xrays = append(xrays, x)
	}
	return xrays, rows.Err()
}

func (r *imagingRepository) DeleteXRay(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM xrays WHERE id=$1`, id)
	if err != nil {
		return translate(err)
	}
	return requireAffected(tag)
}
