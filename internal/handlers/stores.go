package handlers

import (
	"context"
	"regexp"
	"strconv"

	"github.com/rghamilton3/yogitrack-prototype/internal/models"
)

// Store interfaces are declared on the consumer side; internal/repo provides
// the MongoDB implementations and tests substitute in-memory fakes.

type ClassStore interface {
	Insert(ctx context.Context, cls *models.Class) error
	FindByClassID(ctx context.Context, classID string) (*models.Class, error)
	FindActiveByDaytime(ctx context.Context, day, start, excludeClassID string) (*models.Class, error)
	FindNewestByClassID(ctx context.Context) (*models.Class, error)
	ListActiveIDs(ctx context.Context) ([]models.ClassIDName, error)
	ListActive(ctx context.Context) ([]models.Class, error)
	Deactivate(ctx context.Context, classID string) (*models.Class, error)
}

type InstructorStore interface {
	Insert(ctx context.Context, inst *models.Instructor) error
	FindByID(ctx context.Context, instructorID string) (*models.Instructor, error)
	FindByName(ctx context.Context, firstname, lastname string) (*models.Instructor, error)
	SearchByFirstname(ctx context.Context, query string) (*models.Instructor, error)
	ListIDs(ctx context.Context) ([]models.InstructorIDName, error)
	FindNewestByID(ctx context.Context) (*models.Instructor, error)
	DeleteByID(ctx context.Context, instructorID string) error
}

type CustomerStore interface {
	Insert(ctx context.Context, cust *models.Customer) error
	FindByID(ctx context.Context, customerID string) (*models.Customer, error)
	FindByName(ctx context.Context, firstName, lastName string) (*models.Customer, error)
	SearchByFirstName(ctx context.Context, query string) (*models.Customer, error)
	ListIDs(ctx context.Context) ([]models.CustomerIDName, error)
	FindNewestByID(ctx context.Context) (*models.Customer, error)
	DeleteByID(ctx context.Context, customerID string) error
}

var trailingDigits = regexp.MustCompile(`\d+$`)

// nextIDNumber parses the trailing digits of the newest identifier and
// increments them. An empty or digit-free identifier starts the sequence at 1.
func nextIDNumber(lastID string) int {
	match := trailingDigits.FindString(lastID)
	if match == "" {
		return 1
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 1
	}
	return n + 1
}
