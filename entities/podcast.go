package entities

import "fmt"

type Podcast struct {
	ID          int64   `gorm:"primaryKey" json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	URL         string  `json:"url"`
	Language    *string `json:"language"`
}

func (Podcast) TableName() string { return "podcasts" }

func (p *Podcast) GetID() int64   { return p.ID }
func (p *Podcast) SetID(id int64) { p.ID = id }

func (p *Podcast) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if p.URL == "" {
		return fmt.Errorf("%w: url is required", ErrInvalidInput)
	}
	return nil
}
