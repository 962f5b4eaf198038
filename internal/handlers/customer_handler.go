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

type CustomerHandler struct {
	Customers CustomerStore
}

func NewCustomerHandler(customers CustomerStore) *CustomerHandler {
	return &CustomerHandler{Customers: customers}
}

type customerInput struct {
	CustomerID       string `json:"customerId"`
	FirstName        string `json:"firstName" binding:"required"`
	LastName         string `json:"lastName" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone" binding:"required"`
	Senior           bool   `json:"senior"`
	Address          string `json:"address"`
	PreferredContact string `json:"preferredContact"`
}

func (in *customerInput) toModel() *models.Customer {
	return &models.Customer{
		CustomerID:       in.CustomerID,
		FirstName:        strings.TrimSpace(in.FirstName),
		LastName:         strings.TrimSpace(in.LastName),
		Email:            strings.TrimSpace(in.Email),
		Phone:            strings.TrimSpace(in.Phone),
		Senior:           in.Senior,
		Address:          strings.TrimSpace(in.Address),
		PreferredContact: in.PreferredContact,
		ClassBalance:     0, // every new customer starts without purchased classes
	}
}

func (h *CustomerHandler) Search(c *gin.Context) {
	query := c.Query("firstName")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "firstName required"})
		return
	}
	cust, err := h.Customers.SearchByFirstName(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No customer found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cust)
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customerID := c.Query("customerId")
	if customerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customerId required"})
		return
	}
	cust, err := h.Customers.FindByID(c.Request.Context(), customerID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cust)
}

// Add creates a customer unless another one already has the same name; a
// duplicate is a soft warning answered through AddConfirmed.
func (h *CustomerHandler) Add(c *gin.Context) {
	var in customerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()

	existing, err := h.Customers.FindByName(ctx,
		strings.TrimSpace(in.FirstName), strings.TrimSpace(in.LastName))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{
			"message":          "Customer with this name already exists",
			"confirmRequired":  true,
			"existingCustomer": existing,
		})
		return
	}

	h.create(c, &in)
}

// AddConfirmed persists despite a previously reported duplicate name.
func (h *CustomerHandler) AddConfirmed(c *gin.Context) {
	var in customerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.create(c, &in)
}

func (h *CustomerHandler) create(c *gin.Context, in *customerInput) {
	cust := in.toModel()
	if cust.CustomerID == "" {
		newest, err := h.Customers.FindNewestByID(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		lastID := ""
		if newest != nil {
			lastID = newest.CustomerID
		}
		cust.CustomerID = fmt.Sprintf("C%d", nextIDNumber(lastID))
	}

	if err := h.Customers.Insert(c.Request.Context(), cust); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	log.Printf("Confirmation sent to %s: welcome to the studio, your customer id is %s",
		cust.Email, cust.CustomerID)
	c.JSON(http.StatusCreated, gin.H{
		"message":          "Customer added successfully",
		"customer":         cust,
		"confirmationSent": true,
	})
}

func (h *CustomerHandler) GetCustomerIDs(c *gin.Context) {
	ids, err := h.Customers.ListIDs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ids)
}

func (h *CustomerHandler) GetNextID(c *gin.Context) {
	newest, err := h.Customers.FindNewestByID(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	lastID := ""
	if newest != nil {
		lastID = newest.CustomerID
	}
	c.JSON(http.StatusOK, gin.H{"nextId": fmt.Sprintf("C%d", nextIDNumber(lastID))})
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	customerID := c.Query("customerId")
	if customerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customerId required"})
		return
	}
	if err := h.Customers.DeleteByID(c.Request.Context(), customerID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted", "customerId": customerID})
}
