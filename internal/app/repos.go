package app

import (
	"gorm.io/gorm"

	"github.com/meettonyg/guestify-backend/internal/logger"
	"github.com/meettonyg/guestify-backend/internal/repos"
)

type Repos struct {
	Record     repos.RecordRepo
	Attribute  repos.AttributeRepo
	Submission repos.SubmissionRepo
	AICallLog  repos.AICallLogRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Record:     repos.NewRecordRepo(db, log),
		Attribute:  repos.NewAttributeRepo(db, log),
		Submission: repos.NewSubmissionRepo(db, log),
		AICallLog:  repos.NewAICallLogRepo(db, log),
	}
}
