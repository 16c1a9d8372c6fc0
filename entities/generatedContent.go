package entities

import "fmt"

type GeneratedContent struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	ContentType string `gorm:"column:content_type" json:"content_type"`
	Content     string `json:"content"`
	SummaryID   *int64 `gorm:"column:summary_id" json:"summary_id"`
}

func (GeneratedContent) TableName() string { return "generated_content" }

func (g *GeneratedContent) GetID() int64   { return g.ID }
func (g *GeneratedContent) SetID(id int64) { g.ID = id }

func (g *GeneratedContent) Validate() error {
	if g.ContentType == "" {
		return fmt.Errorf("%w: content_type is required", ErrInvalidInput)
	}
	if g.Content == "" {
		return fmt.Errorf("%w: content is required", ErrInvalidInput)
	}
	return nil
}
