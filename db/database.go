package db

import "gorm.io/gorm"

// Database hands out the gorm handle the repositories run their queries on.
type Database interface {
	GetDB() *gorm.DB
}

type GormDatabase struct {
	DB *gorm.DB
}

func (g *GormDatabase) GetDB() *gorm.DB { return g.DB }
