package server

import (
	"time"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
)

type repositorySelect = repository.SelectCriteria

func parseDay(value string) (time.Time, error) {
	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, goerrors.New("date must be YYYY-MM-DD", goerrors.CategoryBadInput).
			WithCode(goerrors.CodeBadRequest).
			WithTextCode("INVALID_DATE")
	}
	return day, nil
}
