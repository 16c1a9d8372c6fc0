package entities

import "fmt"

type Publication struct {
	ID              int64   `gorm:"primaryKey" json:"id"`
	Title           string  `json:"title"`
	Abstract        *string `json:"abstract"`
	URL             string  `json:"url"`
	PublicationDate *string `gorm:"column:publication_date" json:"publication_date"`
	Language        *string `json:"language"`
}

func (Publication) TableName() string { return "publications" }

func (p *Publication) GetID() int64   { return p.ID }
func (p *Publication) SetID(id int64) { p.ID = id }

func (p *Publication) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if p.URL == "" {
		return fmt.Errorf("%w: url is required", ErrInvalidInput)
	}
	return nil
}
