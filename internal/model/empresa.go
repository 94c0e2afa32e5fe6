package model

import (
	"time"

	"github.com/google/uuid"
)

// Empresa is the tenant boundary: every business entity belongs to exactly
// one Empresa. Deleting an Empresa cascades to all of its children.
type Empresa struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"uniqueIndex;not null"`
	Activo    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Empresa) TableName() string { return "empresas" }
