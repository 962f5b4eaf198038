package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/rghamilton3/yogitrack-prototype/internal/config"
	"github.com/rghamilton3/yogitrack-prototype/internal/handlers"
	"github.com/rghamilton3/yogitrack-prototype/internal/middleware"
	"github.com/rghamilton3/yogitrack-prototype/internal/repo"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	client := connectMongo(cfg.MongoURI)
	db := client.Database(cfg.DBName)

	classes := repo.NewClassRepo(db.Collection("class"))
	instructors := repo.NewInstructorRepo(db.Collection("instructor"))
	customers := repo.NewCustomerRepo(db.Collection("customer"))

	r := gin.Default()
	r.Use(middleware.RequestID())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	handlers.RegisterRoutes(r,
		handlers.NewClassHandler(classes, instructors),
		handlers.NewInstructorHandler(instructors),
		handlers.NewCustomerHandler(customers),
	)

	log.Println("Server running on port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func connectMongo(uri string) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal(err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal(err)
	}
	return client
}
