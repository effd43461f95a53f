package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/ports"
)

const insertPlantQuery = `
INSERT INTO plants (id, user_id, name, species, watering_freq, last_watered, area, image_url, created_at)
VALUES (:id, :user_id, :name, :species, :watering_freq, :last_watered, :area, :image_url, :created_at);
`

const listPlantsByUserQuery = `
SELECT id, user_id, name, species, watering_freq, last_watered, area, image_url, created_at
FROM plants
WHERE user_id = ?
ORDER BY created_at, name;
`

const updateLastWateredQuery = `
UPDATE plants SET last_watered = ? WHERE user_id = ? AND id = ?;
`

const updateLastWateredByNameQuery = `
UPDATE plants SET last_watered = ? WHERE user_id = ? AND LOWER(name) = LOWER(?);
`

const deletePlantQuery = `
DELETE FROM plants WHERE user_id = ? AND id = ?;
`

type PlantRepository struct {
	db *sqlx.DB
}

type plantRow struct {
	ID           string         `db:"id"`
	UserID       string         `db:"user_id"`
	Name         string         `db:"name"`
	Species      sql.NullString `db:"species"`
	WateringFreq int            `db:"watering_freq"`
	LastWatered  sql.NullTime   `db:"last_watered"`
	Area         sql.NullString `db:"area"`
	ImageURL     sql.NullString `db:"image_url"`
	CreatedAt    time.Time      `db:"created_at"`
}

var _ ports.PlantRepository = (*PlantRepository)(nil)

func NewPlantRepository(db *sqlx.DB) *PlantRepository {
	return &PlantRepository{db: db}
}

func (r *PlantRepository) Create(ctx context.Context, plant domain.Plant) error {
	_, err := r.db.NamedExecContext(ctx, insertPlantQuery, mapPlantToRow(plant))
	return err
}

func (r *PlantRepository) ListByUser(ctx context.Context, userID string) ([]domain.Plant, error) {
	var rows []plantRow
	if err := r.db.SelectContext(ctx, &rows, listPlantsByUserQuery, userID); err != nil {
		return nil, err
	}

	plants := make([]domain.Plant, 0, len(rows))
	for _, row := range rows {
		plants = append(plants, mapPlantRowToDomainPlant(row))
	}

	return plants, nil
}

func (r *PlantRepository) UpdateLastWatered(ctx context.Context, userID, plantID string, when time.Time) error {
	result, err := r.db.ExecContext(ctx, updateLastWateredQuery, when, userID, plantID)
	if err != nil {
		return err
	}
	return requireAffected(result, domain.ErrPlantNotFound)
}

func (r *PlantRepository) UpdateLastWateredByName(ctx context.Context, userID, name string, when time.Time) error {
	// No match is not an error here: watering tasks may mention plants the
	// user has since removed.
	_, err := r.db.ExecContext(ctx, updateLastWateredByNameQuery, when, userID, name)
	return err
}

func (r *PlantRepository) Delete(ctx context.Context, userID, plantID string) error {
	result, err := r.db.ExecContext(ctx, deletePlantQuery, userID, plantID)
	if err != nil {
		return err
	}
	return requireAffected(result, domain.ErrPlantNotFound)
}

func requireAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

func mapPlantToRow(plant domain.Plant) plantRow {
	row := plantRow{
		ID:           plant.ID,
		UserID:       plant.UserID,
		Name:         plant.Name,
		WateringFreq: plant.WateringFreq,
		CreatedAt:    plant.CreatedAt,
	}

	if plant.Species != nil {
		row.Species = sql.NullString{String: *plant.Species, Valid: true}
	}
	if plant.LastWatered != nil {
		row.LastWatered = sql.NullTime{Time: *plant.LastWatered, Valid: true}
	}
	if plant.Area != nil {
		row.Area = sql.NullString{String: string(*plant.Area), Valid: true}
	}
	if plant.ImageURL != nil {
		row.ImageURL = sql.NullString{String: *plant.ImageURL, Valid: true}
	}

	return row
}

func mapPlantRowToDomainPlant(row plantRow) domain.Plant {
	plant := domain.Plant{
		ID:           row.ID,
		UserID:       row.UserID,
		Name:         row.Name,
		WateringFreq: row.WateringFreq,
		CreatedAt:    row.CreatedAt,
	}

	if row.Species.Valid {
		value := row.Species.String
		plant.Species = &value
	}
	if row.LastWatered.Valid {
		value := row.LastWatered.Time
		plant.LastWatered = &value
	}
	if row.Area.Valid {
		value := domain.PlantArea(row.Area.String)
		plant.Area = &value
	}
	if row.ImageURL.Valid {
		value := row.ImageURL.String
		plant.ImageURL = &value
	}

	return plant
}
