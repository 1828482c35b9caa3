package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/conexa/starwars-api/internal/core/ports"
)

// StarwarsHandler proxies read requests to the remote catalog.
type StarwarsHandler struct {
	catalog ports.CatalogClient
}

func NewStarwarsHandler(catalog ports.CatalogClient) *StarwarsHandler {
	return &StarwarsHandler{catalog: catalog}
}

// GetFilms handles GET /starwars/films.
//
// @Summary      Get all films
// @Tags         starwars
// @Produce      json
// @Success      200  {array}   ports.Film
// @Failure      502  {object}  map[string]string
// @Router       /starwars/films [get]
func (h *StarwarsHandler) GetFilms(c echo.Context) error {
	films, err := h.catalog.FetchFilms(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "remote catalog unavailable"})
	}
	return c.JSON(http.StatusOK, films)
}

// GetFilmByID handles GET /starwars/films/:id.
//
// @Summary      Get a film by ID
// @Tags         starwars
// @Produce      json
// @Param        id   path      string  true  "Catalog film id"
// @Success      200  {object}  ports.Film
// @Failure      502  {object}  map[string]string
// @Router       /starwars/films/{id} [get]
func (h *StarwarsHandler) GetFilmByID(c echo.Context) error {
	film, err := h.catalog.FetchFilm(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "remote catalog unavailable"})
	}
	return c.JSON(http.StatusOK, film)
}
