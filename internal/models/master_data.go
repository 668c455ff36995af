package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Company is a curated insurer. The import pipeline never creates companies;
// rows that match none are skipped.
type Company struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type InsuranceCategory struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type InsuranceProduct struct {
	ID         uuid.UUID      `json:"id" db:"id"`
	CategoryID uuid.UUID      `json:"category_id" db:"category_id"`
	Name       string         `json:"name" db:"name"`
	Aliases    pq.StringArray `json:"aliases" db:"aliases"`
	CreatedAt  time.Time      `json:"created_at" db:"created_at"`
}
