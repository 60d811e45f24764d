package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/pvaldera/go-game-catalog/models"
)

const (
	createUser = `INSERT INTO users (id, name, email, password_hash, role)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, name, email, password_hash, role, created_at;`

	findUserByEmail = `SELECT id, name, email, password_hash, role, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, name, email, password_hash, role, created_at
    FROM users
    WHERE id = $1;`

	existsUserByEmail = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1);`

	getAllUsers = `SELECT id, name, email, password_hash, role, created_at
    FROM users
    ORDER BY created_at;`

	updateUser = `UPDATE users
    SET name = $2, email = $3, role = $4
    WHERE id = $1
    RETURNING id, name, email, password_hash, role, created_at;`

	deleteUser = `DELETE FROM users WHERE id = $1;`

	createGenre = `INSERT INTO genres (id, name)
    VALUES ($1, $2)
    RETURNING id, name;`

	findGenreByID = `SELECT id, name FROM genres WHERE id = $1;`

	getAllGenres = `SELECT id, name FROM genres ORDER BY name;`

	existsGenreByName = `SELECT EXISTS (SELECT 1 FROM genres WHERE name = $1);`

	updateGenre = `UPDATE genres
    SET name = $2
    WHERE id = $1
    RETURNING id, name;`

	deleteGenre = `DELETE FROM genres WHERE id = $1;`

	createDeveloper = `INSERT INTO developers (id, studio_name, country, founded_year)
    VALUES ($1, $2, $3, $4)
    RETURNING id, studio_name, country, founded_year;`

	findDeveloperByID = `SELECT id, studio_name, country, founded_year
    FROM developers
    WHERE id = $1;`

	getAllDevelopers = `SELECT id, studio_name, country, founded_year
    FROM developers
    ORDER BY studio_name;`

	existsDeveloperByStudioName = `SELECT EXISTS (SELECT 1 FROM developers WHERE studio_name = $1);`

	updateDeveloper = `UPDATE developers
    SET studio_name = $2, country = $3, founded_year = $4
    WHERE id = $1
    RETURNING id, studio_name, country, founded_year;`

	deleteDeveloper = `DELETE FROM developers WHERE id = $1;`

	createGame = `INSERT INTO games (id, title, developer_id, genre_id, platform, release_date, pegi_rating, image_url)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING id, title, developer_id, genre_id, platform, release_date, pegi_rating, image_url;`

	findGameByID = `SELECT id, title, developer_id, genre_id, platform, release_date, pegi_rating, image_url
    FROM games
    WHERE id = $1;`

	updateGame = `UPDATE games
    SET title = $2, developer_id = $3, genre_id = $4, platform = $5, release_date = $6, pegi_rating = $7, image_url = $8
    WHERE id = $1
    RETURNING id, title, developer_id, genre_id, platform, release_date, pegi_rating, image_url;`

	deleteGame = `DELETE FROM games WHERE id = $1;`

	createRating = `INSERT INTO ratings (id, user_id, game_id, score, comment)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, user_id, game_id, score, comment;`

	existsRatingByUserAndGame = `SELECT EXISTS (SELECT 1 FROM ratings WHERE user_id = $1 AND game_id = $2);`

	findRatingsByGame = `SELECT id, user_id, game_id, score, comment
    FROM ratings
    WHERE game_id = $1
    ORDER BY id;`
)

// buildSelectGamesQuery builds the filtered catalog listing query. Filters
// are combined with AND; an empty filter degrades to a plain ordered SELECT.
func buildSelectGamesQuery(filter models.GameFilter) (string, []any, error) {
	builder := sq.
		Select("id", "title", "developer_id", "genre_id", "platform", "release_date", "pegi_rating", "image_url").
		From("games").
		PlaceholderFormat(sq.Dollar)

	if filter.Title != "" {
		builder = builder.Where(sq.ILike{"title": "%" + filter.Title + "%"})
	}
	if filter.GenreID != "" {
		builder = builder.Where(sq.Eq{"genre_id": filter.GenreID})
	}
	if filter.DeveloperID != "" {
		builder = builder.Where(sq.Eq{"developer_id": filter.DeveloperID})
	}
	if filter.Platform != "" {
		builder = builder.Where(sq.Eq{"platform": filter.Platform})
	}

	return builder.OrderBy("title").ToSql()
}
