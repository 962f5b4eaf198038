package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rghamilton3/yogitrack-prototype/internal/models"
	"github.com/rghamilton3/yogitrack-prototype/internal/repo"
)

type InstructorHandler struct {
	Instructors InstructorStore
}

func NewInstructorHandler(instructors InstructorStore) *InstructorHandler {
	return &InstructorHandler{Instructors: instructors}
}

type instructorInput struct {
	InstructorID     string `json:"instructorId"`
	Firstname        string `json:"firstname" binding:"required"`
	Lastname         string `json:"lastname" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone" binding:"required"`
	Address          string `json:"address"`
	PreferredContact string `json:"preferredContact"`
}

func (in *instructorInput) toModel() *models.Instructor {
	return &models.Instructor{
		InstructorID:     in.InstructorID,
		Firstname:        strings.TrimSpace(in.Firstname),
		Lastname:         strings.TrimSpace(in.Lastname),
		Email:            strings.TrimSpace(in.Email),
		Phone:            strings.TrimSpace(in.Phone),
		Address:          strings.TrimSpace(in.Address),
		PreferredContact: in.PreferredContact,
	}
}

func (h *InstructorHandler) Search(c *gin.Context) {
	query := c.Query("firstname")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "firstname required"})
		return
	}
	inst, err := h.Instructors.SearchByFirstname(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No instructor found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, inst)
}

func (h *InstructorHandler) GetInstructor(c *gin.Context) {
	instructorID := c.Query("instructorId")
	if instructorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "instructorId required"})
		return
	}
	inst, err := h.Instructors.FindByID(c.Request.Context(), instructorID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "instructor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, inst)
}

// Add creates an instructor unless another one already has the same name.
// A duplicate name is a soft warning: the caller can resubmit through
// AddConfirmed to create the record anyway.
func (h *InstructorHandler) Add(c *gin.Context) {
	var in instructorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()

	existing, err := h.Instructors.FindByName(ctx,
		strings.TrimSpace(in.Firstname), strings.TrimSpace(in.Lastname))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{
			"message":            "Instructor with this name already exists",
			"confirmRequired":    true,
			"existingInstructor": existing,
		})
		return
	}

	h.create(c, &in)
}

// AddConfirmed persists despite a previously reported duplicate name.
func (h *InstructorHandler) AddConfirmed(c *gin.Context) {
	var in instructorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.create(c, &in)
}

func (h *InstructorHandler) create(c *gin.Context, in *instructorInput) {
	inst := in.toModel()
	if inst.InstructorID == "" {
		newest, err := h.Instructors.FindNewestByID(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		lastID := ""
		if newest != nil {
			lastID = newest.InstructorID
		}
		inst.InstructorID = fmt.Sprintf("I%d", nextIDNumber(lastID))
	}

	if err := h.Instructors.Insert(c.Request.Context(), inst); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	log.Printf("Confirmation sent to %s: welcome to the studio, your instructor id is %s",
		inst.Email, inst.InstructorID)
	c.JSON(http.StatusCreated, gin.H{
		"message":          "Instructor added successfully",
		"instructor":       inst,
		"confirmationSent": true,
	})
}

func (h *InstructorHandler) GetInstructorIDs(c *gin.Context) {
	ids, err := h.Instructors.ListIDs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ids)
}

func (h *InstructorHandler) GetNextID(c *gin.Context) {
	newest, err := h.Instructors.FindNewestByID(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	lastID := ""
	if newest != nil {
		lastID = newest.InstructorID
	}
	c.JSON(http.StatusOK, gin.H{"nextId": fmt.Sprintf("I%d", nextIDNumber(lastID))})
}

func (h *InstructorHandler) DeleteInstructor(c *gin.Context) {
	instructorID := c.Query("instructorId")
	if instructorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "instructorId required"})
		return
	}
	if err := h.Instructors.DeleteByID(c.Request.Context(), instructorID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "instructor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Instructor deleted", "instructorId": instructorID})
}
