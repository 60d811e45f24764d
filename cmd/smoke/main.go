// Command smoke runs an end-to-end check against a running catalog server.
//
// It walks the public surface, registers a throwaway user, and verifies the
// access rules: anonymous writes are rejected, a user can rate a game exactly
// once, and catalog writes require the ADMIN role. The admin-only part runs
// only when ADMIN_EMAIL/ADMIN_PASSWORD are set.
//
// Environment:
//
//	CATALOG_ADDR    base URL of the server (default http://localhost:8080)
//	ADMIN_EMAIL     credentials of an existing ADMIN account; when unset the
//	ADMIN_PASSWORD  admin section is skipped
package main

import (
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pvaldera/go-game-catalog/models"
)

func main() {
	baseURL := os.Getenv("CATALOG_ADDR")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second)

	// public catalog listing must not require a token
	resp, err := client.R().Get("/videojuegos")
	if err != nil {
		log.Fatalf("list games: %v", err)
	}
	if resp.StatusCode() != http.StatusOK {
		log.Fatalf("list games: expected 200, got %d", resp.StatusCode())
	}

	// anonymous rating submission must be rejected with 401
	resp, err = client.R().
		SetBody(models.RatingRequest{GameID: "none", Score: 5}).
		Post("/valoraciones")
	if err != nil {
		log.Fatalf("anonymous rating: %v", err)
	}
	if resp.StatusCode() != http.StatusUnauthorized {
		log.Fatalf("anonymous rating: expected 401, got %d", resp.StatusCode())
	}

	// register a throwaway user
	suffix := rand.Int63()
	var registered models.LoginResponse
	resp, err = client.R().
		SetBody(models.RegisterRequest{
			Name:     fmt.Sprintf("smoke-%d", suffix),
			Email:    fmt.Sprintf("smoke-%d@example.com", suffix),
			Password: fmt.Sprintf("pw-%d", suffix),
		}).
		SetResult(&registered).
		Post("/auth/register")
	if err != nil {
		log.Fatalf("register: %v", err)
	}
	if resp.StatusCode() != http.StatusCreated {
		log.Fatalf("register: expected 201, got %d", resp.StatusCode())
	}
	if registered.Token == "" || registered.Role != models.RoleUser {
		log.Fatalf("register: unexpected response: %+v", registered)
	}
	userToken := registered.Token

	// a plain user must not be able to write to the catalog
	resp, err = client.R().
		SetAuthToken(userToken).
		SetBody(models.Genre{Name: "smoke"}).
		Post("/generos")
	if err != nil {
		log.Fatalf("user genre create: %v", err)
	}
	if resp.StatusCode() != http.StatusForbidden {
		log.Fatalf("user genre create: expected 403, got %d", resp.StatusCode())
	}

	adminEmail, adminPassword := os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		fmt.Println("✅ catalog smoke test passed (admin section skipped)")
		return
	}

	var adminLogin models.LoginResponse
	resp, err = client.R().
		SetBody(models.LoginRequest{Email: adminEmail, Password: adminPassword}).
		SetResult(&adminLogin).
		Post("/auth/login")
	if err != nil {
		log.Fatalf("admin login: %v", err)
	}
	if resp.StatusCode() != http.StatusOK {
		log.Fatalf("admin login: expected 200, got %d", resp.StatusCode())
	}
	adminToken := adminLogin.Token

	var genre models.Genre
	resp, err = client.R().
		SetAuthToken(adminToken).
		SetBody(models.Genre{Name: fmt.Sprintf("smoke-genre-%d", suffix)}).
		SetResult(&genre).
		Post("/generos")
	if err != nil {
		log.Fatalf("create genre: %v", err)
	}
	if resp.StatusCode() != http.StatusCreated {
		log.Fatalf("create genre: expected 201, got %d", resp.StatusCode())
	}

	var developer models.Developer
	resp, err = client.R().
		SetAuthToken(adminToken).
		SetBody(models.Developer{StudioName: fmt.Sprintf("smoke-studio-%d", suffix), Country: "ES"}).
		SetResult(&developer).
		Post("/desarrolladores")
	if err != nil {
		log.Fatalf("create developer: %v", err)
	}
	if resp.StatusCode() != http.StatusCreated {
		log.Fatalf("create developer: expected 201, got %d", resp.StatusCode())
	}

	var game models.Game
	resp, err = client.R().
		SetAuthToken(adminToken).
		SetBody(models.Game{
			Title:       fmt.Sprintf("smoke-game-%d", suffix),
			GenreID:     genre.ID,
			DeveloperID: developer.ID,
			Platform:    "PC",
			ReleaseDate: time.Now().UTC(),
			PEGIRating:  "PEGI 12",
		}).
		SetResult(&game).
		Post("/videojuegos")
	if err != nil {
		log.Fatalf("create game: %v", err)
	}
	if resp.StatusCode() != http.StatusCreated {
		log.Fatalf("create game: expected 201, got %d", resp.StatusCode())
	}

	// first rating succeeds, second is a conflict
	resp, err = client.R().
		SetAuthToken(userToken).
		SetBody(models.RatingRequest{GameID: game.ID, Score: 9, Comment: "smoke"}).
		Post("/valoraciones")
	if err != nil {
		log.Fatalf("rate game: %v", err)
	}
	if resp.StatusCode() != http.StatusCreated {
		log.Fatalf("rate game: expected 201, got %d", resp.StatusCode())
	}

	resp, err = client.R().
		SetAuthToken(userToken).
		SetBody(models.RatingRequest{GameID: game.ID, Score: 3}).
		Post("/valoraciones")
	if err != nil {
		log.Fatalf("rate game twice: %v", err)
	}
	if resp.StatusCode() != http.StatusConflict {
		log.Fatalf("rate game twice: expected 409, got %d", resp.StatusCode())
	}

	var ratings []models.Rating
	resp, err = client.R().
		SetResult(&ratings).
		Get("/valoraciones/videojuego/" + game.ID)
	if err != nil {
		log.Fatalf("list ratings: %v", err)
	}
	if resp.StatusCode() != http.StatusOK || len(ratings) != 1 {
		log.Fatalf("list ratings: expected one rating, got status %d, count %d", resp.StatusCode(), len(ratings))
	}

	fmt.Printf("✅ catalog smoke test passed: game=%s\n", game.ID)
}
