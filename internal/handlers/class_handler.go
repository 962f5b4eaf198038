package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/rghamilton3/yogitrack-prototype/internal/models"
	"github.com/rghamilton3/yogitrack-prototype/internal/repo"
	"github.com/rghamilton3/yogitrack-prototype/internal/schedule"
)

type ClassHandler struct {
	Classes     ClassStore
	Instructors InstructorStore
}

func NewClassHandler(classes ClassStore, instructors InstructorStore) *ClassHandler {
	return &ClassHandler{Classes: classes, Instructors: instructors}
}

type slotInput struct {
	Day      string `json:"day" binding:"required,oneof=Mon Tue Wed Thu Fri Sat Sun"`
	Time     string `json:"time" binding:"required,datetime=15:04:05"`
	Duration int    `json:"duration" binding:"required,min=15,max=180"`
}

type classInput struct {
	ClassID      string      `json:"classId"`
	ClassName    string      `json:"className" binding:"required"`
	InstructorID string      `json:"instructorId" binding:"required"`
	ClassType    string      `json:"classType" binding:"required,oneof=General Special"`
	Description  string      `json:"description"`
	Daytime      []slotInput `json:"daytime" binding:"required,min=1,dive"`
	PayRate      float64     `json:"payRate" binding:"required,gte=0"`
}

func toSlots(in []slotInput) []models.ClassSlot {
	slots := make([]models.ClassSlot, 0, len(in))
	for _, s := range in {
		slots = append(slots, models.ClassSlot{Day: s.Day, Time: s.Time, Duration: s.Duration})
	}
	return slots
}

func (h *ClassHandler) GetClass(c *gin.Context) {
	classID := c.Query("classId")
	if classID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "classId required"})
		return
	}
	cls, err := h.Classes.FindByClassID(c.Request.Context(), classID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "class not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cls)
}

func (h *ClassHandler) GetNextID(c *gin.Context) {
	newest, err := h.Classes.FindNewestByClassID(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	lastID := ""
	if newest != nil {
		lastID = newest.ClassID
	}
	c.JSON(http.StatusOK, gin.H{"nextId": fmt.Sprintf("A%03d", nextIDNumber(lastID))})
}

// Add creates a class after conflict screening. On a schedule conflict the
// class is not persisted; the response carries the colliding class, the
// colliding slot, and up to three alternative start times so the caller can
// resubmit through AddWithConflict.
func (h *ClassHandler) Add(c *gin.Context) {
	var in classInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()

	inst, err := h.Instructors.FindByID(ctx, in.InstructorID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "instructor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	slots := toSlots(in.Daytime)
	res, err := schedule.CheckConflict(ctx, h.Classes, slots, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if res.HasConflict {
		alts, err := schedule.SuggestAlternatives(ctx, h.Classes,
			res.ConflictingSlot.Day, res.ConflictingSlot.Time, res.ConflictingSlot.Duration)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusConflict, gin.H{
			"message":               "Schedule conflict detected",
			"conflictRequired":      true,
			"conflictingClass":      res.ConflictingClass,
			"conflictingTime":       res.ConflictingSlot.Day + " " + res.ConflictingSlot.Time,
			"suggestedAlternatives": alts,
		})
		return
	}

	cls, err := h.persist(c, &in, slots)
	if err != nil {
		return
	}
	log.Printf("Confirmation sent to manager: class %q scheduled for %s %s",
		cls.ClassName, inst.Firstname, inst.Lastname)
	log.Printf("Confirmation sent to %s: you have been assigned to teach %q (class id %s)",
		inst.Email, cls.ClassName, cls.ClassID)
	c.JSON(http.StatusCreated, gin.H{
		"message":          "Class added successfully",
		"class":            cls,
		"confirmationSent": true,
	})
}

// AddWithConflict is the override path: the caller has seen the conflict
// report and persists anyway. No conflict re-check is performed.
func (h *ClassHandler) AddWithConflict(c *gin.Context) {
	var in classInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()

	inst, err := h.Instructors.FindByID(ctx, in.InstructorID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "instructor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	cls, err := h.persist(c, &in, toSlots(in.Daytime))
	if err != nil {
		return
	}
	log.Printf("Confirmation sent to manager: class %q scheduled (conflict override)", cls.ClassName)
	log.Printf("Confirmation sent to %s: you have been assigned to teach %q (class id %s)",
		inst.Email, cls.ClassName, cls.ClassID)
	c.JSON(http.StatusCreated, gin.H{
		"message":          "Class added successfully with conflict override",
		"class":            cls,
		"confirmationSent": true,
	})
}

// persist stores the class record. It writes the error response itself, so
// callers only need to stop on a non-nil error.
func (h *ClassHandler) persist(c *gin.Context, in *classInput, slots []models.ClassSlot) (*models.Class, error) {
	ctx := c.Request.Context()

	classID := in.ClassID
	if classID == "" {
		newest, err := h.Classes.FindNewestByClassID(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return nil, err
		}
		lastID := ""
		if newest != nil {
			lastID = newest.ClassID
		}
		classID = fmt.Sprintf("A%03d", nextIDNumber(lastID))
	}

	now := time.Now()
	cls := &models.Class{
		ClassID:      classID,
		ClassName:    in.ClassName,
		InstructorID: in.InstructorID,
		ClassType:    in.ClassType,
		Description:  in.Description,
		Daytime:      slots,
		PayRate:      in.PayRate,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := h.Classes.Insert(ctx, cls); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, err
	}
	return cls, nil
}

func (h *ClassHandler) GetClassIDs(c *gin.Context) {
	ids, err := h.Classes.ListActiveIDs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ids)
}

type scheduleEntry struct {
	models.Class
	InstructorName string `json:"instructorName,omitempty"`
}

// GetSchedule lists active classes sorted by day and time, with instructor
// names joined in from the instructor collection.
func (h *ClassHandler) GetSchedule(c *gin.Context) {
	entries, err := h.scheduleEntries(c)
	if err != nil {
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *ClassHandler) scheduleEntries(c *gin.Context) ([]scheduleEntry, error) {
	ctx := c.Request.Context()

	classes, err := h.Classes.ListActive(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, err
	}

	entries := make([]scheduleEntry, 0, len(classes))
	for _, cls := range classes {
		entry := scheduleEntry{Class: cls}
		inst, err := h.Instructors.FindByID(ctx, cls.InstructorID)
		if err != nil && !errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return nil, err
		}
		if inst != nil {
			entry.InstructorName = inst.Firstname + " " + inst.Lastname
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (h *ClassHandler) DeleteClass(c *gin.Context) {
	classID := c.Query("classId")
	if classID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "classId required"})
		return
	}
	if _, err := h.Classes.Deactivate(c.Request.Context(), classID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "class not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Class deactivated", "classId": classID})
}

// ExportSchedule renders the active weekly schedule as an .xlsx attachment,
// one row per class slot.
func (h *ClassHandler) ExportSchedule(c *gin.Context) {
	entries, err := h.scheduleEntries(c)
	if err != nil {
		return
	}

	f := excelize.NewFile()
	sheet := "Schedule"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Class ID", "Class Name", "Instructor", "Type", "Day", "Start", "Duration (min)", "Pay Rate"}
	for i, hd := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, hd)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	f.SetCellStyle(sheet, "A1", "H1", headerStyle)

	rowIndex := 2
	for _, entry := range entries {
		for _, slot := range entry.Daytime {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", rowIndex), entry.ClassID)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", rowIndex), entry.ClassName)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", rowIndex), entry.InstructorName)
			f.SetCellValue(sheet, fmt.Sprintf("D%d", rowIndex), entry.ClassType)
			f.SetCellValue(sheet, fmt.Sprintf("E%d", rowIndex), slot.Day)
			f.SetCellValue(sheet, fmt.Sprintf("F%d", rowIndex), slot.Time)
			f.SetCellValue(sheet, fmt.Sprintf("G%d", rowIndex), slot.Duration)
			f.SetCellValue(sheet, fmt.Sprintf("H%d", rowIndex), entry.PayRate)
			rowIndex++
		}
	}

	for col := 1; col <= len(headers); col++ {
		colName, _ := excelize.ColumnNumberToName(col)
		f.SetColWidth(sheet, colName, colName, 18)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="weekly_schedule.xlsx"`)
	c.Writer.Write(buf.Bytes())
}
