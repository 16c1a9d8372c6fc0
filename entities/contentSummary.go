package entities

import "fmt"

// ContentSummary links a generated summary to the podcast or publication it
// was derived from. The references are not enforced by this layer.
type ContentSummary struct {
	ID            int64  `gorm:"primaryKey" json:"id"`
	PodcastID     *int64 `gorm:"column:podcast_id" json:"podcast_id"`
	PublicationID *int64 `gorm:"column:publication_id" json:"publication_id"`
	Summary       string `json:"summary"`
}

func (ContentSummary) TableName() string { return "content_summaries" }

func (s *ContentSummary) GetID() int64   { return s.ID }
func (s *ContentSummary) SetID(id int64) { s.ID = id }

func (s *ContentSummary) Validate() error {
	if s.Summary == "" {
		return fmt.Errorf("%w: summary is required", ErrInvalidInput)
	}
	return nil
}
