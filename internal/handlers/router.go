package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the studio API under /api. The route names mirror the
// actions the frontend calls.
func RegisterRoutes(r *gin.Engine, ch *ClassHandler, ih *InstructorHandler, cuh *CustomerHandler) {
	class := r.Group("/api/class")
	{
		class.GET("/getClass", ch.GetClass)
		class.GET("/getNextId", ch.GetNextID)
		class.POST("/add", ch.Add)
		class.POST("/addWithConflict", ch.AddWithConflict)
		class.GET("/getClassIds", ch.GetClassIDs)
		class.GET("/getSchedule", ch.GetSchedule)
		class.GET("/exportSchedule", ch.ExportSchedule)
		class.DELETE("/deleteClass", ch.DeleteClass)
	}

	instructor := r.Group("/api/instructor")
	{
		instructor.GET("/search", ih.Search)
		instructor.GET("/getInstructor", ih.GetInstructor)
		instructor.GET("/getNextId", ih.GetNextID)
		instructor.POST("/add", ih.Add)
		instructor.POST("/addConfirmed", ih.AddConfirmed)
		instructor.GET("/getInstructorIds", ih.GetInstructorIDs)
		instructor.DELETE("/deleteInstructor", ih.DeleteInstructor)
	}

	customer := r.Group("/api/customer")
	{
		customer.GET("/search", cuh.Search)
		customer.GET("/getCustomer", cuh.GetCustomer)
		customer.GET("/getNextId", cuh.GetNextID)
		customer.POST("/add", cuh.Add)
		customer.POST("/addConfirmed", cuh.AddConfirmed)
		customer.GET("/getCustomerIds", cuh.GetCustomerIDs)
		customer.DELETE("/deleteCustomer", cuh.DeleteCustomer)
	}
}
