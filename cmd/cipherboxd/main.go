package main

import (
	"cipherbox/handlers"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	router := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000"}
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"}
	config.AllowCredentials = true
	router.Use(cors.New(config))

	cipherHandler := handlers.NewCipherHandler()

	// API Routes
	api := router.Group("/api/v1")
	{
		api.GET("/health", cipherHandler.HealthCheck)

		cipher := api.Group("/cipher")
		{
			cipher.POST("/caesar/encrypt", cipherHandler.CaesarEncrypt)
			cipher.POST("/caesar/decrypt", cipherHandler.CaesarDecrypt)
			cipher.POST("/vigenere/encrypt", cipherHandler.VigenereEncrypt)
			cipher.POST("/vigenere/decrypt", cipherHandler.VigenereDecrypt)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API endpoints:")
	log.Printf("  POST /api/v1/cipher/caesar/encrypt   - Caesar-encrypt a message")
	log.Printf("  POST /api/v1/cipher/caesar/decrypt   - Caesar-decrypt a message")
	log.Printf("  POST /api/v1/cipher/vigenere/encrypt - Vigenère-encrypt a message")
	log.Printf("  POST /api/v1/cipher/vigenere/decrypt - Vigenère-decrypt a message")
	log.Printf("  GET  /api/v1/health                  - Health check")

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
