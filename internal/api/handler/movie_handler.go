package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/conexa/starwars-api/internal/core/domain"
	"github.com/conexa/starwars-api/internal/core/ports"
)

// MovieHandler handles HTTP requests for movie operations.
type MovieHandler struct {
	service ports.MovieService
}

func NewMovieHandler(service ports.MovieService) *MovieHandler {
	return &MovieHandler{service: service}
}

// Create handles POST /movies. Admin only.
//
// @Summary      Create a new movie
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMovieRequest  true  "Movie details"
// @Success      201   {object}  domain.Movie
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /movies [post]
func (h *MovieHandler) Create(c echo.Context) error {
	var req createMovieRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	movie, err := h.service.Create(c.Request().Context(), ports.CreateMovieInput{
		Title:        req.Title,
		EpisodeID:    req.EpisodeID,
		OpeningCrawl: req.OpeningCrawl,
		Director:     req.Director,
		Producer:     req.Producer,
		ReleaseDate:  req.ReleaseDate,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMovieExists) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "movie already exists"})
		}
		return err
	}

	return c.JSON(http.StatusCreated, movie)
}

// FindAll handles GET /movies. Public.
//
// @Summary      Get all movies
// @Tags         movies
// @Produce      json
// @Success      200  {array}  domain.Movie
// @Router       /movies [get]
func (h *MovieHandler) FindAll(c echo.Context) error {
	movies, err := h.service.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movies)
}

// FindOne handles GET /movies/:id. Requires authentication.
//
// @Summary      Get a movie by ID
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Movie id"
// @Success      200  {object}  domain.Movie
// @Failure      404  {object}  map[string]string
// @Router       /movies/{id} [get]
func (h *MovieHandler) FindOne(c echo.Context) error {
	movie, err := h.service.FindOne(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "movie not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, movie)
}

// Update handles PATCH /movies/:id. Admin only.
//
// @Summary      Update a movie
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Movie id"
// @Param        body  body      updateMovieRequest  true  "Fields to update"
// @Success      200   {object}  domain.Movie
// @Failure      404   {object}  map[string]string
// @Router       /movies/{id} [patch]
func (h *MovieHandler) Update(c echo.Context) error {
	var req updateMovieRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	movie, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateMovieInput{
		Title:        req.Title,
		EpisodeID:    req.EpisodeID,
		OpeningCrawl: req.OpeningCrawl,
		Director:     req.Director,
		Producer:     req.Producer,
		ReleaseDate:  req.ReleaseDate,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "movie not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, movie)
}

// Delete handles DELETE /movies/:id. Admin only.
//
// @Summary      Delete a movie
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Movie id"
// @Success      200  {object}  deleteMovieResponse
// @Failure      404  {object}  map[string]string
// @Router       /movies/{id} [delete]
func (h *MovieHandler) Delete(c echo.Context) error {
	result, err := h.service.Remove(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "movie not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, deleteMovieResponse{
		Message: result.Message,
		Movie:   result.Movie,
	})
}
