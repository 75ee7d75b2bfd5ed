package main

// @title Panda Market API
// @version 1.0
// @description REST API for the Panda Market marketplace: products, favorites, articles, comments and image uploads
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/pandamarket/api
// @contact.email support@example.com

// @license.name MIT
// @license.url https://github.com/pandamarket/api/blob/main/LICENSE

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Auth
// @tag.description Signup and login endpoints

// @tag.name Users
// @tag.description Profile and personal listing endpoints

// @tag.name Products
// @tag.description Product management and favorite endpoints

// @tag.name Articles
// @tag.description Article management and like endpoints

// @tag.name Comments
// @tag.description Comment endpoints for products and articles

// @tag.name Images
// @tag.description Image upload and presigned URL endpoints

// @tag.name Health
// @tag.description Health check endpoints

// @tag.name Swagger
// @tag.description Swagger documentation endpoints
