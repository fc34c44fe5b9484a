package httpserver

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"runplay-store/internal/domain"
)

func listGamesHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		criteria, err := parseFilter(c)
		if err != nil {
			writeError(c, err)
			return
		}
		listings := svc.Filter(criteria)
		c.JSON(http.StatusOK, toListingList(listings, svc.Len()))
	}
}

func getGameHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
			return
		}
		g, err := svc.Get(id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, toListingResponse(g))
	}
}

func facetsHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Facets())
	}
}

// parseFilter reads platform/category (repeatable or comma separated) and
// min_price/max_price from the query string.
func parseFilter(c *gin.Context) (domain.FilterCriteria, error) {
	criteria := domain.FilterCriteria{
		Platforms:  multiValue(c.QueryArray("platform")),
		Categories: multiValue(c.QueryArray("category")),
	}
	var err error
	if criteria.MinPrice, err = priceParam(c, "min_price"); err != nil {
		return domain.FilterCriteria{}, err
	}
	if criteria.MaxPrice, err = priceParam(c, "max_price"); err != nil {
		return domain.FilterCriteria{}, err
	}
	if err := criteria.Validate(); err != nil {
		return domain.FilterCriteria{}, err
	}
	return criteria, nil
}

func multiValue(raw []string) []string {
	var out []string
	for _, v := range raw {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func priceParam(c *gin.Context, key string) (*decimal.Decimal, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q is not a number", domain.ErrInvalidFilter, key, raw)
	}
	return &d, nil
}
