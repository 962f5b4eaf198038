package handlers_test

import (
	"context"
	"sort"
	"strings"

	"github.com/rghamilton3/yogitrack-prototype/internal/models"
	"github.com/rghamilton3/yogitrack-prototype/internal/repo"
)

// In-memory stores standing in for the Mongo repos.

type fakeClassStore struct {
	classes []*models.Class
	err     error
}

func (f *fakeClassStore) Insert(ctx context.Context, cls *models.Class) error {
	if f.err != nil {
		return f.err
	}
	f.classes = append(f.classes, cls)
	return nil
}

func (f *fakeClassStore) FindByClassID(ctx context.Context, classID string) (*models.Class, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, cls := range f.classes {
		if cls.ClassID == classID {
			return cls, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeClassStore) FindActiveByDaytime(ctx context.Context, day, start, excludeClassID string) (*models.Class, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, cls := range f.classes {
		if !cls.Active {
			continue
		}
		if excludeClassID != "" && cls.ClassID == excludeClassID {
			continue
		}
		for _, slot := range cls.Daytime {
			if slot.Day == day && slot.Time == start {
				return cls, nil
			}
		}
	}
	return nil, nil
}

func (f *fakeClassStore) FindNewestByClassID(ctx context.Context) (*models.Class, error) {
	if f.err != nil {
		return nil, f.err
	}
	var newest *models.Class
	for _, cls := range f.classes {
		if newest == nil || cls.ClassID > newest.ClassID {
			newest = cls
		}
	}
	return newest, nil
}

func (f *fakeClassStore) ListActiveIDs(ctx context.Context) ([]models.ClassIDName, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.ClassIDName
	for _, cls := range f.classes {
		if cls.Active {
			out = append(out, models.ClassIDName{ClassID: cls.ClassID, ClassName: cls.ClassName})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ClassID < out[j].ClassID })
	return out, nil
}

func (f *fakeClassStore) ListActive(ctx context.Context) ([]models.Class, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Class
	for _, cls := range f.classes {
		if cls.Active {
			out = append(out, *cls)
		}
	}
	return out, nil
}

func (f *fakeClassStore) Deactivate(ctx context.Context, classID string) (*models.Class, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, cls := range f.classes {
		if cls.ClassID == classID {
			cls.Active = false
			return cls, nil
		}
	}
	return nil, repo.ErrNotFound
}

type fakeInstructorStore struct {
	instructors []*models.Instructor
	err         error
}

func (f *fakeInstructorStore) Insert(ctx context.Context, inst *models.Instructor) error {
	if f.err != nil {
		return f.err
	}
	f.instructors = append(f.instructors, inst)
	return nil
}

func (f *fakeInstructorStore) FindByID(ctx context.Context, instructorID string) (*models.Instructor, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, inst := range f.instructors {
		if inst.InstructorID == instructorID {
			return inst, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeInstructorStore) FindByName(ctx context.Context, firstname, lastname string) (*models.Instructor, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, inst := range f.instructors {
		if inst.Firstname == firstname && inst.Lastname == lastname {
			return inst, nil
		}
	}
	return nil, nil
}

func (f *fakeInstructorStore) SearchByFirstname(ctx context.Context, query string) (*models.Instructor, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, inst := range f.instructors {
		if strings.Contains(strings.ToLower(inst.Firstname), strings.ToLower(query)) {
			return inst, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeInstructorStore) ListIDs(ctx context.Context) ([]models.InstructorIDName, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.InstructorIDName
	for _, inst := range f.instructors {
		out = append(out, models.InstructorIDName{
			InstructorID: inst.InstructorID,
			Firstname:    inst.Firstname,
			Lastname:     inst.Lastname,
		})
	}
	return out, nil
}

func (f *fakeInstructorStore) FindNewestByID(ctx context.Context) (*models.Instructor, error) {
	if f.err != nil {
		return nil, f.err
	}
	var newest *models.Instructor
	for _, inst := range f.instructors {
		if newest == nil || inst.InstructorID > newest.InstructorID {
			newest = inst
		}
	}
	return newest, nil
}

func (f *fakeInstructorStore) DeleteByID(ctx context.Context, instructorID string) error {
	if f.err != nil {
		return f.err
	}
	for i, inst := range f.instructors {
		if inst.InstructorID == instructorID {
			f.instructors = append(f.instructors[:i], f.instructors[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

type fakeCustomerStore struct {
	customers []*models.Customer
	err       error
}

func (f *fakeCustomerStore) Insert(ctx context.Context, cust *models.Customer) error {
	if f.err != nil {
		return f.err
	}
	f.customers = append(f.customers, cust)
	return nil
}

func (f *fakeCustomerStore) FindByID(ctx context.Context, customerID string) (*models.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, cust := range f.customers {
		if cust.CustomerID == customerID {
			return cust, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeCustomerStore) FindByName(ctx context.Context, firstName, lastName string) (*models.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, cust := range f.customers {
		if cust.FirstName == firstName && cust.LastName == lastName {
			return cust, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerStore) SearchByFirstName(ctx context.Context, query string) (*models.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, cust := range f.customers {
		if strings.Contains(strings.ToLower(cust.FirstName), strings.ToLower(query)) {
			return cust, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeCustomerStore) ListIDs(ctx context.Context) ([]models.CustomerIDName, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.CustomerIDName
	for _, cust := range f.customers {
		out = append(out, models.CustomerIDName{
			CustomerID: cust.CustomerID,
			FirstName:  cust.FirstName,
			LastName:   cust.LastName,
		})
	}
	return out, nil
}

func (f *fakeCustomerStore) FindNewestByID(ctx context.Context) (*models.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	var newest *models.Customer
	for _, cust := range f.customers {
		if newest == nil || cust.CustomerID > newest.CustomerID {
			newest = cust
		}
	}
	return newest, nil
}

func (f *fakeCustomerStore) DeleteByID(ctx context.Context, customerID string) error {
	if f.err != nil {
		return f.err
	}
	for i, cust := range f.customers {
		if cust.CustomerID == customerID {
			f.customers = append(f.customers[:i], f.customers[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}
